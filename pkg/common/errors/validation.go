package errors

import "fmt"

// ValidationError describes a rejected configuration or argument value.
// It unwraps to ErrInvalidConfiguration so callers can match the class
// of failure with errors.Is without inspecting fields.
type ValidationError struct {
	// Module is the package or component that rejected the value.
	Module string

	// Field is the name of the offending parameter.
	Field string

	// Value is the value that was rejected.
	Value interface{}

	// Reason explains why the value was rejected.
	Reason string

	// Hint optionally suggests a correction.
	Hint string
}

// NewValidationError creates a ValidationError without a hint.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint returns the error with a correction hint attached.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}
