package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "dompet/internal/errors"
	"dompet/internal/middleware"
	"dompet/internal/models"
	"dompet/internal/services"
	"dompet/internal/validator"
)

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}

// getCaller returns the authenticated user and whether the token carries the
// ADMIN role.
func getCaller(c *gin.Context) (services.Caller, error) {
	userID, err := getUserID(c)
	if err != nil {
		return services.Caller{}, err
	}
	role, _ := c.Get(middleware.RoleKey)
	return services.Caller{UserID: userID, Admin: role == models.RoleAdmin}, nil
}

// parsePathID reads the :id path parameter.
// Returns ErrInvalidInput if the parameter is not a UUID.
func parsePathID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid id")
	}
	return id, nil
}

// bindJSON decodes the request body into dst. Rule violations become a
// per-field ErrValidation; undecodable bodies become ErrInvalidInput.
func bindJSON(c *gin.Context, dst any) error {
	return bindingError(c.ShouldBindJSON(dst))
}

// bindQuery decodes the query string into dst.
func bindQuery(c *gin.Context, dst any) error {
	return bindingError(c.ShouldBindQuery(dst))
}

func bindingError(err error) error {
	if err == nil {
		return nil
	}
	if fields, ok := validator.FieldErrors(err); ok {
		return apperrors.WithDetails(apperrors.ErrValidation, fields)
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid request body")
}

// parseDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
// dateOnly reports whether value was a calendar date. Empty input yields nil.
func parseDate(field, value string) (t *time.Time, dateOnly bool, err error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, false, nil
	}
	if d, err := time.Parse(time.DateOnly, value); err == nil {
		return &d, true, nil
	}
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return &ts, false, nil
	}
	return nil, false, apperrors.WithDetails(apperrors.ErrValidation, []validator.FieldError{{
		Field:      field,
		Validation: "date",
		Message:    field + " must be a date (YYYY-MM-DD) or RFC 3339 timestamp",
	}})
}

// DeleteRequest is the payload of the bulk delete endpoints.
type DeleteRequest struct {
	IDs []string `json:"ids" binding:"required,dive,uuid"`
}
