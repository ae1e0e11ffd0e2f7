package services

import (
	apperrors "dompet/internal/errors"
	"dompet/internal/validator"
)

// validationError converts a validator failure into ErrValidation carrying
// the per-field list.
func validationError(err error) error {
	if fields, ok := validator.FieldErrors(err); ok {
		return apperrors.WithDetails(apperrors.ErrValidation, fields)
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

func requiredFieldError(field string) error {
	return apperrors.WithDetails(apperrors.ErrValidation, []validator.FieldError{{
		Field:      field,
		Validation: "required",
		Message:    field + " is required",
	}})
}
