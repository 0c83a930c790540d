// Package errors provides standardized domain errors that express business intent
// rather than infrastructure details. Domain packages wrap these sentinels so callers
// can classify any failure with errors.Is without string matching.
package errors

import (
	"errors"
	"fmt"
)

// Standard domain errors that can be used across all domain modules.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfiguration indicates a missing or invalid master key or provider credential.
	ErrConfiguration = errors.New("configuration error")

	// ErrFormat indicates a malformed envelope, a wrong field count or an unparsable payload.
	ErrFormat = errors.New("format error")

	// ErrAuthentication indicates the authentication tag did not verify. The data
	// cannot be trusted and no part of it is returned.
	ErrAuthentication = errors.New("authentication error")

	// ErrProvider indicates the secrets provider answered with a non-success status.
	ErrProvider = errors.New("provider error")

	// ErrNetwork indicates the secrets provider could not be reached.
	ErrNetwork = errors.New("network error")
)

// New creates a new error with the given message.
// This is a convenience wrapper around errors.New for consistency.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
// Use this to add context at each layer without losing the original error type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted message while preserving the error chain.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
