package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing record and maps to 404.
	ErrNotFound = errors.New("not found")
	// ErrForbidden signals a role or ownership mismatch and maps to 403.
	// The message stays generic so it never leaks whether another
	// user's record exists.
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthenticated signals a missing or invalid credential and
	// maps to 401.
	ErrUnauthenticated = errors.New("authentication required")
)

// ValidationError reports a bad input shape or a business-rule
// violation. It maps to 400 with field-level detail.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for a field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
