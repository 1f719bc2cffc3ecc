// Package validators adapts go-playground/validator to echo's Validator
// interface and converts tag failures into the API's validation error shape.
package validators

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tahmid-dev/ripple/internal/apperror"
)

// CustomValidator wraps a single validator instance shared by all requests.
type CustomValidator struct {
	validate *validator.Validate
}

// NewValidator creates the echo request validator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate checks a bound request struct and reports every failing field.
func (v *CustomValidator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.Internal(err)
	}

	details := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, apperror.FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: messageFor(fe),
		})
	}
	return apperror.Validation("Validation failed", details...)
}

func messageFor(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be %s characters or less", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
