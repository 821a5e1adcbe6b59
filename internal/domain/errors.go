package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")

	// ErrSubmissionClosed is returned when a pick submission arrives after
	// the week's lock time. No writes are performed.
	ErrSubmissionClosed = errors.New("submission closed")

	// ErrIdentityConflict is returned when identity resolution loses an
	// insert race and neither the subject nor the email lookup can observe
	// the winning row. It indicates a store anomaly, not routine user error.
	ErrIdentityConflict = errors.New("identity conflict")

	// ErrTransient marks store failures that are safe to retry once at the
	// pipeline boundary: serialization failures, deadlocks, dropped
	// connections.
	ErrTransient = errors.New("transient store error")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}
