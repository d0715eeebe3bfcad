package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/brewcalc/internal/domain"
	"github.com/phrazzld/brewcalc/internal/domain/gravity"
	"github.com/phrazzld/brewcalc/internal/domain/temperature"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, gravity.ErrInvalidMethod),
		errors.Is(err, temperature.ErrInvalidUnit),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for err. Invalid
// arguments name the failed field so a caller can show field-specific
// feedback.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	if field, ok := domain.FieldOf(err); ok {
		return fmt.Sprintf("Invalid %s", field)
	}

	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		return SanitizeValidationError(err)
	case errors.Is(err, gravity.ErrInvalidMethod):
		return "Invalid ABV method"
	case errors.Is(err, temperature.ErrInvalidUnit):
		return "Invalid temperature unit"
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns the first validator failure into a
// user-friendly message.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
	}
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
