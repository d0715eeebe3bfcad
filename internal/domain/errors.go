package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrInvalidArgument is returned when a textual argument cannot be parsed
	// as a floating-point number. It is always wrapped in an
	// InvalidArgumentError that names the failed argument.
	ErrInvalidArgument = errors.New("invalid argument")
)

// InvalidArgumentError reports which named argument failed to parse.
type InvalidArgumentError struct {
	// Field is the semantic role of the argument, e.g. "original gravity value".
	Field string
	// Value is the raw text that was rejected.
	Value string
	// Err is the underlying parse failure.
	Err error
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

// Is reports ErrInvalidArgument as a match so callers can use errors.Is
// without caring about the field.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Unwrap returns the underlying parse failure.
func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

// FieldOf returns the failed field name if err carries an InvalidArgumentError.
func FieldOf(err error) (string, bool) {
	var argErr *InvalidArgumentError
	if errors.As(err, &argErr) {
		return argErr.Field, true
	}
	return "", false
}
