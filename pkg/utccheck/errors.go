package utccheck

import (
	"errors"
	"fmt"
)

// ErrInvalidTimestamp matches every error returned by Check.
// Use errors.Is() to test for it.
var ErrInvalidTimestamp = errors.New("utccheck: invalid timestamp")

// ValidationError explains why a candidate is not a valid timestamp.
type ValidationError struct {
	// Candidate is the string that was checked.
	Candidate string

	// Code is a stable identifier of the broken rule, e.g. "E2003".
	// E1xxx codes are shape errors, E2xxx codes are range errors.
	Code string

	// Reason is a short description, e.g. "hour out of range".
	Reason string

	// Cause is the underlying error.
	Cause error
}

// Error returns a formatted error message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("utccheck: %q is invalid: %s [%s]", e.Candidate, e.Reason, e.Code)
}

// Unwrap returns the underlying cause error.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Is reports whether this error matches the target error.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidTimestamp
}
