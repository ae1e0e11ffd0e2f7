package services

import (
	"context"
	"time"

	"dompet/internal/models"
	"dompet/internal/pagination"
	"dompet/internal/token"
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(claims token.UserClaims) (string, error)
}

// RegisterInput is the payload of self-registration and admin user creation.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,max=72"`
}

// ProfileInput carries the profile fields to change. Nil fields are left as they are.
type ProfileInput struct {
	Name    *string
	Picture *string
}

// AuthResult is a freshly issued token together with the user it identifies.
type AuthResult struct {
	Token string
	User  *models.User
}

// AuthServicer defines the contract for authentication and profile logic.
type AuthServicer interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	AddUser(ctx context.Context, in RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	LoginAdmin(ctx context.Context, email, password string) (*AuthResult, error)
	Profile(ctx context.Context, userID string) (*models.User, error)
	EditProfile(ctx context.Context, userID string, in ProfileInput) (*models.User, error)
}

// CategoryFilter narrows category listings. Empty fields match everything.
type CategoryFilter struct {
	Name string
	Type models.CategoryType
}

// CategoryInput is the payload of single category creation.
type CategoryInput struct {
	Name   string              `json:"name" validate:"required"`
	UserID *string             `json:"user_id" validate:"omitempty,uuid"`
	Type   models.CategoryType `json:"type" validate:"category_type"`
	Icon   string              `json:"icon"`
}

// Caller identifies who is changing shared rows such as categories.
type Caller struct {
	UserID string
	Admin  bool
}

// CategoryPatch carries the category fields to change.
type CategoryPatch struct {
	Name    *string
	Type    *models.CategoryType
	Picture *string
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	List(ctx context.Context, filter CategoryFilter) ([]models.Category, error)
	Get(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, in CategoryInput) (*models.Category, error)
	BulkCreate(ctx context.Context, userID string) ([]models.Category, error)
	Update(ctx context.Context, caller Caller, id string, patch CategoryPatch) (*models.Category, error)
	Delete(ctx context.Context, caller Caller, ids []string) (int64, error)
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	Description string
	CategoryID  *string
	WalletID    *string
	From        *time.Time
	To          *time.Time
	Before      *time.Time // exclusive upper bound
}

// TransactionInput is the payload of transaction creation.
type TransactionInput struct {
	WalletID    *string    `json:"wallet_id" validate:"omitempty,uuid"`
	CategoryID  *string    `json:"category_id" validate:"omitempty,uuid"`
	BudgetID    *string    `json:"budget_id" validate:"omitempty,uuid"`
	Description string     `json:"description"`
	Amount      int64      `json:"amount" validate:"gte=0"`
	SpentAt     *time.Time `json:"spent_at"`
	Date        *time.Time `json:"date"`
}

// TransactionPatch carries the transaction fields to change.
type TransactionPatch struct {
	WalletID    *string    `json:"wallet_id" validate:"omitempty,uuid"`
	CategoryID  *string    `json:"category_id" validate:"omitempty,uuid"`
	BudgetID    *string    `json:"budget_id" validate:"omitempty,uuid"`
	Description *string    `json:"description"`
	Amount      *int64     `json:"amount" validate:"omitempty,gte=0"`
	SpentAt     *time.Time `json:"spent_at"`
	Date        *time.Time `json:"date"`
}

// TransactionServicer defines the contract for transaction-related business
// logic. Every method is scoped to the rows owned by userID.
type TransactionServicer interface {
	List(ctx context.Context, userID string, filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	Get(ctx context.Context, userID, id string) (*models.Transaction, error)
	Create(ctx context.Context, userID string, in TransactionInput) (*models.Transaction, error)
	Update(ctx context.Context, userID, id string, patch TransactionPatch) (*models.Transaction, error)
	Delete(ctx context.Context, userID string, ids []string) (int64, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
