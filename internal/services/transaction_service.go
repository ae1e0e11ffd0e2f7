package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "dompet/internal/errors"
	"dompet/internal/models"
	"dompet/internal/pagination"
	"dompet/internal/repository"
	"dompet/internal/validator"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	store      *repository.Store[models.Transaction]
	categories *repository.Store[models.Category]
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{
		store:      repository.New[models.Transaction](db),
		categories: repository.New[models.Category](db),
	}
}

// List returns a page of the user's live transactions, newest first.
func (s *transactionService) List(ctx context.Context, userID string, filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	scopes := []repository.Scope{repository.OwnedBy(userID)}
	if filter.CategoryID != nil {
		scopes = append(scopes, equals("category_id", *filter.CategoryID))
	}
	if filter.WalletID != nil {
		scopes = append(scopes, equals("wallet_id", *filter.WalletID))
	}
	if filter.From != nil {
		from := *filter.From
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("transactions.date >= ?", from)
		})
	}
	if filter.To != nil {
		to := *filter.To
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("transactions.date <= ?", to)
		})
	}
	if filter.Before != nil {
		before := *filter.Before
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("transactions.date < ?", before)
		})
	}

	result, err := s.store.Page(ctx, repository.ListOptions{
		PrefixColumn: "description",
		Prefix:       filter.Description,
		Scopes:       scopes,
		Preloads:     []string{"Category"},
	}, page)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// Get returns one of the user's live transactions with its category.
func (s *transactionService) Get(ctx context.Context, userID, id string) (*models.Transaction, error) {
	tx, err := s.store.Get(ctx, id, []repository.Scope{repository.OwnedBy(userID)}, "Category")
	if err != nil {
		return nil, transactionError(err)
	}
	return tx, nil
}

// Create records a transaction for the user. Date defaults to now.
func (s *transactionService) Create(ctx context.Context, userID string, in TransactionInput) (*models.Transaction, error) {
	if err := validator.Struct(in); err != nil {
		return nil, validationError(err)
	}
	if err := s.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	date := in.Date
	if date == nil {
		now := time.Now()
		date = &now
	}

	tx := &models.Transaction{
		UserID:      userID,
		WalletID:    in.WalletID,
		CategoryID:  in.CategoryID,
		BudgetID:    in.BudgetID,
		Description: in.Description,
		SpentAt:     in.SpentAt,
		Amount:      in.Amount,
		Date:        date,
	}
	if err := s.store.Create(ctx, tx); err != nil {
		return nil, transactionError(err)
	}
	return s.Get(ctx, userID, tx.ID)
}

// Update patches one of the user's live transactions.
func (s *transactionService) Update(ctx context.Context, userID, id string, patch TransactionPatch) (*models.Transaction, error) {
	if err := validator.Struct(patch); err != nil {
		return nil, validationError(err)
	}
	if err := s.checkCategory(ctx, patch.CategoryID); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if patch.WalletID != nil {
		fields["wallet_id"] = *patch.WalletID
	}
	if patch.CategoryID != nil {
		fields["category_id"] = *patch.CategoryID
	}
	if patch.BudgetID != nil {
		fields["budget_id"] = *patch.BudgetID
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Amount != nil {
		fields["amount"] = *patch.Amount
	}
	if patch.SpentAt != nil {
		fields["spent_at"] = *patch.SpentAt
	}
	if patch.Date != nil {
		fields["date"] = *patch.Date
	}

	if _, err := s.store.Update(ctx, id, fields, repository.OwnedBy(userID)); err != nil {
		return nil, transactionError(err)
	}
	return s.Get(ctx, userID, id)
}

// Delete soft-deletes the listed transactions of the user and returns how
// many were live.
func (s *transactionService) Delete(ctx context.Context, userID string, ids []string) (int64, error) {
	affected, err := s.store.SoftDelete(ctx, ids, repository.OwnedBy(userID))
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return affected, nil
}

// checkCategory rejects a category id that does not name a live category.
func (s *transactionService) checkCategory(ctx context.Context, categoryID *string) error {
	if categoryID == nil {
		return nil
	}
	if _, err := s.categories.Get(ctx, *categoryID, nil); err != nil {
		return categoryError(err)
	}
	return nil
}

func equals(column, value string) repository.Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}

func transactionError(err error) error {
	if repository.IsNotFound(err) {
		return apperrors.ErrTransactionNotFound
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "wallet_id or budget_id does not reference an existing record")
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
