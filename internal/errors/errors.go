package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorNumeric  = 3   // Indicates a non-finite or unrenderable result.
	ExitErrorConfig   = 4   // Indicates a configuration or domain error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// DomainError reports an input that lies outside the domain of the
// expected-trials formula, such as a probability of 100% or an alphabet
// with a single symbol.
type DomainError struct {
	// Field names the offending parameter (e.g. "probability").
	Field string
	// Value is the rejected value.
	Value float64
	// Reason explains which bound was violated.
	Reason string
}

// Error returns a formatted message describing the domain violation.
func (e DomainError) Error() string {
	return fmt.Sprintf("domain error for %s=%g: %s", e.Field, e.Value, e.Reason)
}

// NewDomainError creates a DomainError for the given field and value.
//
// Parameters:
//   - field: The parameter name.
//   - value: The rejected value.
//   - format: A format string for the reason (see fmt.Sprintf).
//   - a: Arguments to be formatted into the reason.
//
// Returns:
//   - error: A new DomainError instance.
func NewDomainError(field string, value float64, format string, a ...any) error {
	return DomainError{Field: field, Value: value, Reason: fmt.Sprintf(format, a...)}
}

// NumericError reports a computed quantity that is not finite or cannot be
// rendered as a duration.
type NumericError struct {
	// Quantity names what was being computed (e.g. "expected trials").
	Quantity string
	// Value is the offending result.
	Value float64
}

// Error returns a formatted message describing the numeric failure.
func (e NumericError) Error() string {
	return fmt.Sprintf("numeric error: %s is not representable (%g)", e.Quantity, e.Value)
}

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause, allowing for error chain inspection.
func (e ConfigError) Unwrap() error { return e.Cause }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCode maps an error to the process exit status.
//
// Parameters:
//   - err: The error returned by the application, possibly nil.
//
// Returns:
//   - int: One of the Exit* constants.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var domainErr DomainError
	var numericErr NumericError
	var configErr ConfigError
	switch {
	case IsContextError(err):
		return ExitErrorCanceled
	case errors.As(err, &numericErr):
		return ExitErrorNumeric
	case errors.As(err, &domainErr), errors.As(err, &configErr):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}
