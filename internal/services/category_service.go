package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"

	apperrors "dompet/internal/errors"
	"dompet/internal/models"
	"dompet/internal/predefined"
	"dompet/internal/repository"
	"dompet/internal/validator"
)

// categoryService handles category-related business logic.
type categoryService struct {
	store *repository.Store[models.Category]
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{store: repository.New[models.Category](db)}
}

// maxSlugLength matches the width of categories.slug.
const maxSlugLength = 255

// makeSlug returns "<random token>-<slugified name>". The token keeps slugs
// unique across users who pick the same name. Symbols expand into words
// ("&" becomes "and"), so the name part is cut to fit the column.
func makeSlug(name string) (string, error) {
	token, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("failed to generate slug token: %w", err)
	}
	prefix := token + "-"
	named := slug.Make(name)
	if limit := maxSlugLength - len(prefix); len(named) > limit {
		named = strings.TrimRight(named[:limit], "-")
	}
	return prefix + named, nil
}

// List returns live categories whose name starts with filter.Name, newest first.
func (s *categoryService) List(ctx context.Context, filter CategoryFilter) ([]models.Category, error) {
	opts := repository.ListOptions{PrefixColumn: "name", Prefix: filter.Name}
	if filter.Type != "" {
		opts.Scopes = append(opts.Scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("type = ?", filter.Type)
		})
	}

	categories, err := s.store.List(ctx, opts)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// Get returns a live category with its sub-categories.
func (s *categoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	category, err := s.store.Get(ctx, id, nil, "SubCategories")
	if err != nil {
		return nil, categoryError(err)
	}
	return category, nil
}

// Create inserts a single category.
func (s *categoryService) Create(ctx context.Context, in CategoryInput) (*models.Category, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validator.Struct(in); err != nil {
		return nil, validationError(err)
	}

	slugged, err := makeSlug(in.Name)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	category := &models.Category{
		UserID:  in.UserID,
		Name:    in.Name,
		Type:    in.Type,
		Slug:    slugged,
		Picture: in.Icon,
	}
	if err := s.store.Create(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "user_id does not reference an existing user")
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// BulkCreate copies every predefined category to userID in one database
// transaction. It returns nil when there is nothing to copy.
func (s *categoryService) BulkCreate(ctx context.Context, userID string) ([]models.Category, error) {
	entries, err := predefined.Categories()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(entries) == 0 {
		return nil, nil
	}

	owner := userID
	categories := make([]models.Category, 0, len(entries))
	for _, entry := range entries {
		slugged, err := makeSlug(entry.Name)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		categories = append(categories, models.Category{
			UserID:  &owner,
			Name:    entry.Name,
			Type:    entry.Type,
			Slug:    slugged,
			Picture: entry.Icon,
		})
	}

	if err := s.store.CreateMany(ctx, categories); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// Update patches a live category the caller may edit. A new name also gets
// a new slug.
func (s *categoryService) Update(ctx context.Context, caller Caller, id string, patch CategoryPatch) (*models.Category, error) {
	fields := map[string]any{}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, requiredFieldError("name")
		}
		slugged, err := makeSlug(name)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		fields["name"] = name
		fields["slug"] = slugged
	}
	if patch.Type != nil {
		if err := validator.Struct(struct {
			Type models.CategoryType `json:"type" validate:"category_type"`
		}{*patch.Type}); err != nil {
			return nil, validationError(err)
		}
		fields["type"] = *patch.Type
	}
	if patch.Picture != nil {
		fields["picture"] = *patch.Picture
	}

	category, err := s.store.Update(ctx, id, fields, editableBy(caller))
	if err != nil {
		return nil, categoryError(err)
	}
	return category, nil
}

// Delete soft-deletes the listed categories the caller may edit and returns
// how many were live. Other ids are skipped.
func (s *categoryService) Delete(ctx context.Context, caller Caller, ids []string) (int64, error) {
	affected, err := s.store.SoftDelete(ctx, ids, editableBy(caller))
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return affected, nil
}

// editableBy limits categories to the caller's own. Admins also manage the
// ownerless system categories.
func editableBy(caller Caller) repository.Scope {
	if caller.Admin {
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("(user_id = ? OR user_id IS NULL)", caller.UserID)
		}
	}
	return repository.OwnedBy(caller.UserID)
}

func categoryError(err error) error {
	if repository.IsNotFound(err) {
		return apperrors.ErrCategoryNotFound
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
