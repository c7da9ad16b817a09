package apperrors

import (
	"errors"
	"fmt"
)

// Application-specific errors
var (
	// ErrInvalidQuery rejects empty or whitespace-only input before any
	// classification attempt. It is the only user-visible error in the
	// assistance pipeline.
	ErrInvalidQuery = errors.New("query must not be empty")

	// ErrClassificationUnavailable means the remote classifier was
	// unreachable, returned a non-success status, or returned output that
	// does not parse as the expected structure. Recovered silently by the
	// fallback chain.
	ErrClassificationUnavailable = errors.New("classification unavailable")

	ErrNotFound  = errors.New("resource not found")
	ErrRateLimit = errors.New("rate limit exceeded")
	ErrTimeout   = errors.New("operation timeout")
)

// ClassificationError wraps a failure from a specific classification strategy.
type ClassificationError struct {
	Strategy string
	Err      error
}

func (e ClassificationError) Error() string {
	return fmt.Sprintf("classification error in %s strategy: %v", e.Strategy, e.Err)
}

func (e ClassificationError) Unwrap() error {
	return e.Err
}

// Unavailable builds a ClassificationError that satisfies
// errors.Is(err, ErrClassificationUnavailable).
func Unavailable(strategy string, cause error) error {
	return ClassificationError{
		Strategy: strategy,
		Err:      fmt.Errorf("%w: %w", ErrClassificationUnavailable, cause),
	}
}

// ValidationError represents a request validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
