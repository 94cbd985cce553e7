// Package errors provides structured error handling with typed error codes.
//
// Error codes are organized into categories:
//   - General errors (1-99): Unknown and general errors
//   - Validation errors (100-199): Invalid parameters, configuration, orders and transactions
//   - Fill data errors (200-299): Reading and parsing fill files
//   - Commission errors (300-399): Commission model construction
//   - Replay errors (400-499): Applying commission models to a stream of fills
//
// Usage:
//
//	// Create a new error
//	err := errors.New(errors.ErrCodeInvalidCommissionCost, "cost must not be negative")
//
//	// Create a formatted error
//	err := errors.Newf(errors.ErrCodeUnsupportedModel, "unknown commission model %q", name)
//
//	// Wrap an existing error
//	err := errors.Wrap(errors.ErrCodeFillQueryFailed, "failed to read fills", originalErr)
//
//	// Check error code
//	if errors.HasCode(err, errors.ErrCodeInvalidMinimumCost) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error with an error code and message.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a new Error with the given code and formatted message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps cause with a new Error containing the given code and message.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Wrapf wraps cause with a new Error containing the given code and formatted message.
func Wrapf(code ErrorCode, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Cause)
	}

	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetCode extracts the ErrorCode from the first *Error in err's chain.
// Returns ErrCodeUnknown if there is none.
func GetCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return ErrCodeUnknown
}

// HasCode checks if an error has a specific ErrorCode.
func HasCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// IsConfigurationError reports whether err was raised while building commission
// models or loading their configuration. These errors abort setup before any
// transaction is priced.
func IsConfigurationError(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidConfiguration,
		ErrCodeInvalidCommissionCost,
		ErrCodeInvalidMinimumCost,
		ErrCodeUnsupportedModel,
		ErrCodeUnsupportedAssetClass,
		ErrCodeUnknownBroker,
		ErrCodeInvalidVersion,
		ErrCodeVersionMismatch:
		return true
	default:
		return false
	}
}
