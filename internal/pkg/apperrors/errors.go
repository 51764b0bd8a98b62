// Package apperrors provides the typed error kinds the core distinguishes:
// validation failures, expected not-found outcomes, state-graph violations,
// authorization violations and group capacity overruns.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeInvalidTransition = "INVALID_STATE_TRANSITION"
	CodeUnauthorizedActor = "UNAUTHORIZED_ACTOR"
	CodeCapacityExceeded  = "CAPACITY_EXCEEDED"
	CodeInternal          = "INTERNAL_ERROR"
)

// AppError represents a typed application error with a stable code
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches errors by code so sentinel comparison works through wrapping
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// HTTPStatus maps the error code to an HTTP status for handlers
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInvalidTransition:
		return http.StatusConflict
	case CodeUnauthorizedActor:
		return http.StatusForbidden
	case CodeCapacityExceeded:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap wraps an error with an AppError
func Wrap(err error, code, message string) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// Validation creates a validation error for malformed input
func Validation(message string) *AppError {
	return New(CodeValidation, message)
}

// Validationf creates a formatted validation error
func Validationf(format string, args ...interface{}) *AppError {
	return New(CodeValidation, fmt.Sprintf(format, args...))
}

// NotFound creates a not-found error; a normal expected outcome, not a
// crash condition
func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource))
}

// InvalidTransition creates a state-graph violation error
func InvalidTransition(from, to string) *AppError {
	return New(CodeInvalidTransition, fmt.Sprintf("cannot transition from %s to %s", from, to))
}

// UnauthorizedActor creates an authorization violation error, kept distinct
// from state-graph violations so callers can surface the right message
func UnauthorizedActor(message string) *AppError {
	return New(CodeUnauthorizedActor, message)
}

// CapacityExceeded creates a group capacity overrun error
func CapacityExceeded(message string) *AppError {
	return New(CodeCapacityExceeded, message)
}

// AsAppError extracts an AppError from an error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsNotFound reports whether the error chain contains a not-found error
func IsNotFound(err error) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == CodeNotFound
}
