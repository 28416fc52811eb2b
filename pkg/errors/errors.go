package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents a unique error code
type ErrorCode string

const (
	// Generic errors
	ErrCodeInternal         ErrorCode = "INTERNAL_ERROR"
	ErrCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrCodeMissingRequired  ErrorCode = "MISSING_REQUIRED"
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Verification flow errors
	ErrCodeInvalidChallenge           ErrorCode = "INVALID_CHALLENGE"
	ErrCodeConfigurationMissing       ErrorCode = "CONFIGURATION_MISSING"
	ErrCodeTokenExpired               ErrorCode = "TOKEN_EXPIRED"
	ErrCodeTokenInvalid               ErrorCode = "TOKEN_INVALID"
	ErrCodeTokenNotFound              ErrorCode = "TOKEN_NOT_FOUND"
	ErrCodeVerificationDispatchFailed ErrorCode = "VERIFICATION_DISPATCH_FAILED"

	// Order notification errors
	ErrCodeCustomerEmailFailed ErrorCode = "CUSTOMER_EMAIL_FAILED"
)

// Error represents a structured error with code, message, and optional details
type Error struct {
	Code    ErrorCode              // Unique error code
	Message string                 // Human-readable error message
	Details map[string]interface{} // Optional additional details
	Err     error                  // Wrapped underlying error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error for errors.Is and errors.As
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error carrying the same code, so that a
// wrapped failure still matches its package sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// HTTPStatusCode returns the appropriate HTTP status code for this error
func (e *Error) HTTPStatusCode() int {
	return MapErrorCodeToHTTPStatus(e.Code)
}

// New creates a new Error with the given code and message
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new Error with formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error with code and message
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WrapAs wraps err with the code and message of an existing sentinel.
func WrapAs(err error, sentinel *Error) *Error {
	return Wrap(err, sentinel.Code, sentinel.Message)
}

// IsCode checks if an error has a specific error code
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error
// Returns ErrCodeInternal if the error is not a structured Error
func GetCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}

// PublicMessage returns the human-readable message of a structured error.
// Anything else collapses to fallback so internal details never reach a client.
func PublicMessage(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return fallback
}

// MapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func MapErrorCodeToHTTPStatus(code ErrorCode) int {
	switch code {
	// 400 Bad Request
	case ErrCodeMissingRequired, ErrCodeValidationFailed, ErrCodeInvalidChallenge:
		return http.StatusBadRequest

	// 401 Unauthorized
	case ErrCodeTokenExpired, ErrCodeTokenInvalid:
		return http.StatusUnauthorized

	// 404 Not Found
	case ErrCodeNotFound, ErrCodeTokenNotFound:
		return http.StatusNotFound

	// 503 Service Unavailable
	case ErrCodeConfigurationMissing:
		return http.StatusServiceUnavailable

	// 500 Internal Server Error (default)
	case ErrCodeInternal, ErrCodeVerificationDispatchFailed, ErrCodeCustomerEmailFailed:
		fallthrough
	default:
		return http.StatusInternalServerError
	}
}

// Common error constructors for frequently used errors

// NotFound creates a "not found" error
func NotFound(resourceType, identifier string) *Error {
	return Newf(ErrCodeNotFound, "%s not found: %s", resourceType, identifier)
}

// MissingRequired creates a "missing required" error for a field
func MissingRequired(field string) *Error {
	return Newf(ErrCodeMissingRequired, "%s is required", field)
}

// ValidationFailed creates a "validation failed" error
func ValidationFailed(message string) *Error {
	return New(ErrCodeValidationFailed, message)
}

// InternalWrap wraps an internal error
func InternalWrap(err error, message string) *Error {
	return Wrap(err, ErrCodeInternal, message)
}
