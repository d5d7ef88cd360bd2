package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicateAccount means a verified account already exists for the email.
	ErrDuplicateAccount = errors.New("account with this email already exists")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotVerified        = errors.New("email not verified")

	// ErrCodeInvalid covers both a wrong and an expired OTP/reset code;
	// callers must not be able to tell the two apart.
	ErrCodeInvalid = errors.New("invalid or expired code")

	// ErrConflict marks constraint violations such as deleting a category
	// that still has entries.
	ErrConflict = errors.New("operation conflicts with existing data")
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Invalid is shorthand for a field-level validation error.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
