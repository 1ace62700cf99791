// Package errors provides custom error types for the expense tracker API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
// Fields carries per-field rule violations for validation failures.
type AppError struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Fields     map[string]string `json:"fields,omitempty"`
	StatusCode int               `json:"-"`
	Internal   error             `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		Fields:     sentinel.Fields,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Validation creates a VALIDATION_ERROR naming each offending field and the
// rule it violated.
func Validation(fields map[string]string) *AppError {
	return &AppError{
		Code:       ErrValidation.Code,
		Message:    ErrValidation.Message,
		Fields:     fields,
		StatusCode: ErrValidation.StatusCode,
	}
}

// Expense errors.
var (
	ErrValidation = &AppError{Code: "VALIDATION_ERROR", Message: "Invalid expense input", StatusCode: http.StatusBadRequest}
	ErrStorage    = &AppError{Code: "STORAGE_ERROR", Message: "The expense store could not complete the request", StatusCode: http.StatusInternalServerError}
)

// General errors.
var (
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrUnavailable    = &AppError{Code: "UNAVAILABLE", Message: "Service unavailable", StatusCode: http.StatusServiceUnavailable}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)
