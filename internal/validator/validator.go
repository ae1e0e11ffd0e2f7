// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldError describes one failed rule on one request field.
type FieldError struct {
	Field      string `json:"field"`
	Validation string `json:"validation"`
	Message    string `json:"message"`
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(fieldName)
		_ = v.RegisterValidation("category_type", validateCategoryType)
	}
}

// fieldName reports fields by their JSON (or query form) name so clients
// see the keys they sent.
func fieldName(fld reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			continue
		}
		return name
	}
	return fld.Name
}

var (
	structValidator *validator.Validate
	structOnce      sync.Once
)

// Struct validates s against its `validate` tags with the same field naming
// and custom rules as request binding.
func Struct(s any) error {
	structOnce.Do(func() {
		structValidator = validator.New()
		structValidator.RegisterTagNameFunc(fieldName)
		_ = structValidator.RegisterValidation("category_type", validateCategoryType)
	})
	return structValidator.Struct(s)
}

func validateCategoryType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "income", "expense":
		return true
	}
	return false
}

// FieldErrors converts a binding error into a per-field list. The second
// result is false when err is not a validation failure (malformed JSON, for
// instance).
func FieldErrors(err error) ([]FieldError, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:      fe.Field(),
			Validation: fe.Tag(),
			Message:    message(fe),
		})
	}
	return out, true
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param()
	case "category_type":
		return fe.Field() + " must be income or expense"
	case "uuid":
		return fe.Field() + " must be a valid id"
	}
	return fe.Field() + " failed on the " + fe.Tag() + " rule"
}
