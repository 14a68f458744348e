package services

import (
	"fmt"
	"time"

	"github.com/iamNilotpal/checksum/internal/core/domain"
)

// Error wraps a failed service operation with its category and time of
// occurrence, so callers can classify failures and decide on retries.
type Error struct {
	Err       error
	Operation string
	Timestamp time.Time
	Category  domain.ErrorCategory
}

// NewError creates an Error for the given operation and category.
func NewError(operation string, category domain.ErrorCategory, err error) *Error {
	return &Error{
		Err:       err,
		Operation: operation,
		Category:  category,
		Timestamp: time.Now(),
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%v] %s: %v", e.Category, e.Operation, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsRetryAble returns whether errors of this category can be retried.
func (e *Error) IsRetryAble() bool {
	switch e.Category {
	case domain.ErrorIO:
		// File operations might fail transiently (contention, mounts).
		return true
	case domain.ErrorCompression:
		// Corrupt frames don't get better on retry.
		return false
	case domain.ErrorManifest:
		// Malformed manifests need regeneration, not retries.
		return false
	case domain.ErrorVerification:
		// The data really differs from the manifest.
		return false
	default:
		return false
	}
}
