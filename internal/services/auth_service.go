package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "dompet/internal/errors"
	"dompet/internal/models"
	"dompet/internal/repository"
	"dompet/internal/token"
	"dompet/internal/validator"
)

// authService handles registration, login and profile logic.
type authService struct {
	db     *gorm.DB
	users  *repository.Store[models.User]
	issuer TokenIssuer
	hasher PasswordHasher
}

// NewAuthService creates a new AuthServicer.
func NewAuthService(db *gorm.DB, issuer TokenIssuer, hasher PasswordHasher) AuthServicer {
	return &authService{
		db:     db,
		users:  repository.New[models.User](db),
		issuer: issuer,
		hasher: hasher,
	}
}

type credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register creates a USER account and issues a token for it. The insert and
// the token are one unit: a signing failure rolls the user back.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if err := validator.Struct(in); err != nil {
		return nil, validationError(err)
	}

	var result *AuthResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.createUser(tx, in)
		if err != nil {
			return err
		}

		signed, err := s.issuer.Issue(token.UserClaims{ID: user.ID, Email: user.Email, Name: user.Name})
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		result = &AuthResult{Token: signed, User: user}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AddUser creates a USER account on behalf of an admin. No token is issued.
func (s *authService) AddUser(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validator.Struct(in); err != nil {
		return nil, validationError(err)
	}

	var user *models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		user, err = s.createUser(tx, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// createUser inserts a new USER. The email pre-check gives a friendly error
// for the common case; the unique index settles concurrent registrations.
func (s *authService) createUser(tx *gorm.DB, in RegisterInput) (*models.User, error) {
	email := normalizeEmail(in.Email)

	var count int64
	if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Email:    email,
		Password: hashed,
		Name:     strings.TrimSpace(in.Name),
		Role:     models.RoleUser,
	}
	if err := tx.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user, nil
}

// Login checks the credentials and issues a token carrying the user's role.
func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.authenticate(ctx, email, password, false)
	if err != nil {
		return nil, err
	}

	signed, err := s.issueRoleToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: signed, User: user}, nil
}

// LoginAdmin is Login restricted to ADMIN users. Non-admins are refused
// before their password is checked.
func (s *authService) LoginAdmin(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.authenticate(ctx, email, password, true)
	if err != nil {
		return nil, err
	}

	signed, err := s.issueRoleToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: signed, User: user}, nil
}

func (s *authService) authenticate(ctx context.Context, email, password string, adminOnly bool) (*models.User, error) {
	if err := validator.Struct(credentials{Email: email, Password: password}); err != nil {
		return nil, validationError(err)
	}

	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&user).Error; err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrEmailNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if adminOnly && !user.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	if err := s.hasher.Compare(user.Password, password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &user, nil
}

func (s *authService) issueRoleToken(user *models.User) (string, error) {
	signed, err := s.issuer.Issue(token.UserClaims{ID: user.ID, Email: user.Email, Role: string(user.Role)})
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return signed, nil
}

// Profile returns the user with the given id.
func (s *authService) Profile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.Get(ctx, userID, nil)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user, nil
}

// EditProfile updates the name and/or picture of the user and returns the
// refreshed record.
func (s *authService) EditProfile(ctx context.Context, userID string, in ProfileInput) (*models.User, error) {
	fields := map[string]any{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, requiredFieldError("name")
		}
		fields["name"] = name
	}
	if in.Picture != nil {
		fields["picture"] = *in.Picture
	}

	user, err := s.users.Update(ctx, userID, fields)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
