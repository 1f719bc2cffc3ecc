// Package apperror defines the error taxonomy shared by services and the
// HTTP boundary. Services return *AppError values; the echo error handler
// maps them to status codes and the uniform error envelope.
package apperror

import (
	"errors"
	"net/http"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrValidation     = errors.New("validation error")
	ErrAuthentication = errors.New("authentication error")
	ErrAuthorization  = errors.New("authorization error")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
	ErrInternal       = errors.New("internal error")
)

// AppError carries everything the boundary needs to render an error
// response: HTTP status, a stable machine-readable code, a human-readable
// message and optional structured details (field-level validation info).
type AppError struct {
	Status  int
	Code    string
	Message string
	Details any
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// FieldError is a single field-level validation failure, surfaced in the
// Details of a VALIDATION_ERROR response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func Validation(message string, details ...FieldError) *AppError {
	e := &AppError{
		Status:  http.StatusBadRequest,
		Code:    "VALIDATION_ERROR",
		Message: message,
		Err:     ErrValidation,
	}
	if len(details) > 0 {
		e.Details = details
	}
	return e
}

func Authentication(message string) *AppError {
	if message == "" {
		message = "Authentication required"
	}
	return &AppError{
		Status:  http.StatusUnauthorized,
		Code:    "AUTHENTICATION_ERROR",
		Message: message,
		Err:     ErrAuthentication,
	}
}

func Authorization(message string) *AppError {
	if message == "" {
		message = "Access denied"
	}
	return &AppError{
		Status:  http.StatusForbidden,
		Code:    "AUTHORIZATION_ERROR",
		Message: message,
		Err:     ErrAuthorization,
	}
}

func NotFound(message string) *AppError {
	if message == "" {
		message = "Resource not found"
	}
	return &AppError{
		Status:  http.StatusNotFound,
		Code:    "NOT_FOUND",
		Message: message,
		Err:     ErrNotFound,
	}
}

func Conflict(message string) *AppError {
	return &AppError{
		Status:  http.StatusConflict,
		Code:    "CONFLICT",
		Message: message,
		Err:     ErrConflict,
	}
}

// Internal wraps an unclassified error. The boundary substitutes a generic
// message in production so internals never leak to clients.
func Internal(err error) *AppError {
	return &AppError{
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error",
		Err:     errors.Join(ErrInternal, err),
	}
}
