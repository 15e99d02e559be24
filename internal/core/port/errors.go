package port

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers missing businesses, creators, proposals, campaigns
	// and metrics rows, and ownership mismatches disguised as not-found.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyProcessed is returned when a status transition finds the
	// proposal no longer pending. Exactly one of any set of concurrent
	// accept calls can win; the rest get this error.
	ErrAlreadyProcessed = errors.New("proposal already processed")

	// ErrUnauthorized is returned for missing, unknown or expired sessions.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError reports malformed or out-of-range input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError constructs a ValidationError for the given field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
