package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeNotFound indicates a resource was not found upstream.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeConflict indicates a conflict with existing data (e.g., a
	// duplicate email on enrollment).
	ErrCodeConflict ErrorCode = "conflict"
	// ErrCodeValidation indicates invalid input data, rejected either locally
	// or by the upstream API.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeUnauthorized indicates the bearer token was missing, expired,
	// or rejected by the upstream API. The HTTP layer reacts uniformly:
	// clear the session and redirect to login.
	ErrCodeUnauthorized ErrorCode = "unauthorized"
	// ErrCodeUnavailable indicates the upstream API could not be reached or
	// the request timed out.
	ErrCodeUnavailable ErrorCode = "unavailable"
	// ErrCodeInternal indicates an unexpected server-side failure.
	ErrCodeInternal ErrorCode = "internal"
	// ErrCodeCanceled indicates the operation was canceled by the caller.
	ErrCodeCanceled ErrorCode = "canceled"
)

// AppError is a structured application error with a code, a human-readable
// message, and an optional cause. It supports errors.Is/As via Unwrap.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	// Field names the offending form field for validation errors (optional).
	Field string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *AppError) Unwrap() error { return e.Cause }

// NotFound creates a new NotFound error.
func NotFound(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

// Conflict creates a new Conflict error.
func Conflict(message string) *AppError {
	return &AppError{Code: ErrCodeConflict, Message: message}
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// ValidationField creates a Validation error bound to a specific form field.
func ValidationField(field, message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Field: field}
}

// Unauthorized creates a new Unauthorized error.
func Unauthorized(message string) *AppError {
	return &AppError{Code: ErrCodeUnauthorized, Message: message}
}

// Unavailable creates a new Unavailable error.
func Unavailable(message string) *AppError {
	return &AppError{Code: ErrCodeUnavailable, Message: message}
}

// Internal creates a new Internal error.
func Internal(message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message}
}

// Internalf creates a new Internal error with a formatted message.
func Internalf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
// Returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// CodeOf extracts the ErrorCode from err, or ErrCodeInternal when err is not
// an AppError.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// MessageOf extracts the human-readable message from err. For non-AppError
// values a generic fallback is returned so raw transport errors never leak
// into the UI.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "An unexpected error occurred. Please try again."
}

// IsUnauthorized reports whether err carries ErrCodeUnauthorized.
func IsUnauthorized(err error) bool { return hasCode(err, ErrCodeUnauthorized) }

// IsNotFound reports whether err carries ErrCodeNotFound.
func IsNotFound(err error) bool { return hasCode(err, ErrCodeNotFound) }

// IsConflict reports whether err carries ErrCodeConflict.
func IsConflict(err error) bool { return hasCode(err, ErrCodeConflict) }

// IsUnavailable reports whether err carries ErrCodeUnavailable.
func IsUnavailable(err error) bool { return hasCode(err, ErrCodeUnavailable) }

func hasCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}
