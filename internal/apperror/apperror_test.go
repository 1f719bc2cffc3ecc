package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsSetStatusAndCode(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		status   int
		code     string
		sentinel error
	}{
		{"validation", Validation("bad input"), http.StatusBadRequest, "VALIDATION_ERROR", ErrValidation},
		{"authentication", Authentication("who are you"), http.StatusUnauthorized, "AUTHENTICATION_ERROR", ErrAuthentication},
		{"authorization", Authorization("not yours"), http.StatusForbidden, "AUTHORIZATION_ERROR", ErrAuthorization},
		{"not found", NotFound("gone"), http.StatusNotFound, "NOT_FOUND", ErrNotFound},
		{"conflict", Conflict("already there"), http.StatusConflict, "CONFLICT", ErrConflict},
		{"internal", Internal(errors.New("boom")), http.StatusInternalServerError, "INTERNAL_ERROR", ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.True(t, errors.Is(tt.err, tt.sentinel))
		})
	}
}

func TestDefaultMessages(t *testing.T) {
	assert.Equal(t, "Authentication required", Authentication("").Message)
	assert.Equal(t, "Access denied", Authorization("").Message)
	assert.Equal(t, "Resource not found", NotFound("").Message)
}

func TestValidationDetails(t *testing.T) {
	plain := Validation("nope")
	assert.Nil(t, plain.Details)

	withFields := Validation("nope", FieldError{Field: "email", Message: "Invalid email format"})
	details, ok := withFields.Details.([]FieldError)
	require.True(t, ok)
	require.Len(t, details, 1)
	assert.Equal(t, "email", details[0].Field)
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("creating follow: %w", Conflict("Already following this user"))

	var appErr *AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.Status)
	assert.True(t, errors.Is(wrapped, ErrConflict))
}

func TestInternalPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal(cause)
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "Internal server error", err.Message)
}
