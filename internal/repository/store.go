// Package repository implements the soft-delete resource store shared by
// every table that embeds models.Base.
//
// Logical deletion is carried by gorm.DeletedAt: every query issued through a
// Store excludes rows whose deleted_at is set, and deletes are updates of that
// column. GetUnscoped is the only read that sees deleted rows.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"dompet/internal/pagination"
)

// ErrNotFound is returned when no live row matches.
var ErrNotFound = gorm.ErrRecordNotFound

// Scope narrows a query, e.g. to the rows owned by one user.
type Scope = func(*gorm.DB) *gorm.DB

// ListOptions narrows List and Page.
type ListOptions struct {
	// PrefixColumn is matched with LIKE 'Prefix%' when Prefix is non-empty.
	// It must be a trusted column name, never user input.
	PrefixColumn string
	Prefix       string
	Scopes       []Scope
	Preloads     []string
}

// Store provides CRUD over the table of T with soft-delete semantics.
type Store[T any] struct {
	db *gorm.DB
}

// New creates a Store bound to db.
func New[T any](db *gorm.DB) *Store[T] {
	return &Store[T]{db: db}
}

// WithTx returns a Store that issues its statements on tx.
func (s *Store[T]) WithTx(tx *gorm.DB) *Store[T] {
	return &Store[T]{db: tx}
}

// OwnedBy scopes queries to rows whose user_id equals userID.
func OwnedBy(userID string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

func (s *Store[T]) query(ctx context.Context, opts ListOptions) *gorm.DB {
	q := s.db.WithContext(ctx).Model(new(T)).Scopes(opts.Scopes...)
	if opts.Prefix != "" && opts.PrefixColumn != "" {
		q = q.Where(opts.PrefixColumn+" LIKE ? ESCAPE '\\'", escapeLike(opts.Prefix)+"%")
	}
	return q
}

// List returns all live rows matching opts, newest first.
func (s *Store[T]) List(ctx context.Context, opts ListOptions) ([]T, error) {
	rows := []T{}
	q := s.query(ctx, opts)
	for _, p := range opts.Preloads {
		q = q.Preload(p)
	}
	if err := q.Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Page returns one page of live rows matching opts, newest first, with the
// total number of matches.
func (s *Store[T]) Page(ctx context.Context, opts ListOptions, page pagination.PageRequest) (*pagination.PageResponse[T], error) {
	page.Defaults()

	var total int64
	if err := s.query(ctx, opts).Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []T
	q := s.query(ctx, opts)
	for _, p := range opts.Preloads {
		q = q.Preload(p)
	}
	if err := q.Scopes(pagination.Paginate(page)).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	result := pagination.NewPageResponse(rows, page.Page, page.PageSize, total)
	return &result, nil
}

// Get returns the live row with the given id. preloads name associations to load.
func (s *Store[T]) Get(ctx context.Context, id string, scopes []Scope, preloads ...string) (*T, error) {
	var row T
	q := s.db.WithContext(ctx).Scopes(scopes...)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	if err := q.Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// GetUnscoped returns the row with the given id even if it was soft-deleted.
func (s *Store[T]) GetUnscoped(ctx context.Context, id string) (*T, error) {
	var row T
	if err := s.db.WithContext(ctx).Unscoped().Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts row.
func (s *Store[T]) Create(ctx context.Context, row *T) error {
	return s.db.WithContext(ctx).Create(row).Error
}

// CreateMany inserts rows in a single database transaction: either all rows
// are stored or none is.
func (s *Store[T]) CreateMany(ctx context.Context, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
}

// Update writes the named columns of the live row with the given id and
// returns the refreshed row. Soft-deleted rows are reported as not found and
// stay deleted.
func (s *Store[T]) Update(ctx context.Context, id string, fields map[string]any, scopes ...Scope) (*T, error) {
	row, err := s.Get(ctx, id, scopes)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return row, nil
	}

	if err := s.db.WithContext(ctx).Model(row).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, id, scopes)
}

// SoftDelete marks every live row whose id is in ids as deleted with a single
// UPDATE statement and returns the number of rows affected.
func (s *Store[T]) SoftDelete(ctx context.Context, ids []string, scopes ...Scope) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := s.db.WithContext(ctx).Scopes(scopes...).Where("id IN ?", ids).Delete(new(T))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// IsNotFound reports whether err means no live row matched.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
