package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
// Malformed user input is not an exit condition: the sequence prompt always
// exits with ExitSuccess.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

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

// InputError reports a term count that could not be read from the user.
// Input holds the raw token (empty when no token was available) and Cause the
// underlying read or parse failure.
type InputError struct {
	// Input is the raw token that failed to parse.
	Input string
	// Cause is the underlying error (e.g., *strconv.NumError or io.EOF).
	Cause error
}

// Error returns a message describing the rejected input.
//
// Returns:
//   - string: The error message string.
func (e InputError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("missing term count: %v", e.Cause)
	}
	return fmt.Sprintf("invalid term count %q: %v", e.Input, e.Cause)
}

// Unwrap returns the original cause, allowing errors.Is and errors.As to
// inspect it.
//
// Returns:
//   - error: The underlying cause of the InputError.
func (e InputError) Unwrap() error { return e.Cause }

// IsInputError reports whether err, or any error in its chain, is an InputError.
func IsInputError(err error) bool {
	var inputErr InputError
	return errors.As(err, &inputErr)
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
