package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "dompet/internal/errors"
	"dompet/internal/models"
	"dompet/internal/response"
	"dompet/internal/token"
)

// Context keys set by Auth.
const (
	UserIDKey = "userID"
	EmailKey  = "email"
	RoleKey   = "role"
)

// TokenVerifier checks a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

// Auth verifies the bearer token and sets the user id, email and role in the
// context. Requests without a valid token are answered with ErrUnauthorized.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Authorization header is required"))
			return
		}

		scheme, tokenString, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, response.TokenType) || tokenString == "" {
			response.Error(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid authorization header format"))
			return
		}

		claims, err := verifier.Verify(strings.TrimSpace(tokenString))
		if err != nil {
			response.Error(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid or expired token"))
			return
		}

		c.Set(UserIDKey, claims.UserClaims.ID)
		c.Set(EmailKey, claims.UserClaims.Email)
		c.Set(RoleKey, models.Role(claims.UserClaims.Role))
		c.Next()
	}
}

// RequireRole allows only requests whose token carries role. It must run
// after Auth.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if got, _ := c.Get(RoleKey); got != role {
			response.Error(c, apperrors.ErrForbidden)
			return
		}
		c.Next()
	}
}
