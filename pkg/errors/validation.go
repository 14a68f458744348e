package errors

import "errors"

// ValidationError reports a configuration or option value that failed
// validation, carrying the offending field and value alongside the cause.
type ValidationError struct {
	Value any    `json:"value"` // The value that failed validation.
	Field string `json:"field"` // Name of the offending field.
	Err   error  `json:"error"` // Underlying cause.
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field string, value any, err error) *ValidationError {
	return &ValidationError{
		Err:   err,
		Field: field,
		Value: value,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Field + ": " + e.Err.Error()
	}
	return e.Field + ": validation error"
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError checks if a given error is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AsValidationError extracts a ValidationError from err, or returns nil.
func AsValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
