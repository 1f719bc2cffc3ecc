package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/tahmid-dev/ripple/internal/apperror"
)

// ErrorBody is the uniform error envelope returned by every endpoint.
type ErrorBody struct {
	Message   string `json:"message"`
	Code      string `json:"code"`
	Timestamp string `json:"timestamp"`
	Path      string `json:"path"`
	Details   any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// NewHTTPErrorHandler returns an echo error handler that renders apperror
// values (and stray echo.HTTPErrors) as the uniform envelope. Unclassified
// errors become a generic 500; their real message is exposed only outside
// production.
func NewHTTPErrorHandler(logger zerolog.Logger, production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		code := "INTERNAL_ERROR"
		message := "Internal server error"
		var details any

		var appErr *apperror.AppError
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			status = appErr.Status
			code = appErr.Code
			message = appErr.Message
			details = appErr.Details
			if status >= http.StatusInternalServerError {
				logger.Error().Err(appErr.Err).Str("path", c.Path()).Msg(message)
				if production {
					message = "Internal server error"
				} else if appErr.Err != nil {
					message = appErr.Err.Error()
				}
			} else {
				logger.Warn().Str("path", c.Path()).Str("code", code).Msg(message)
			}
		case errors.As(err, &httpErr):
			// Errors echo raises itself: 404 for unknown routes, 405, bind
			// failures.
			status = httpErr.Code
			code = codeForStatus(status)
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
		default:
			logger.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
			if !production {
				message = err.Error()
			}
		}

		body := ErrorEnvelope{Error: ErrorBody{
			Message:   message,
			Code:      code,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Path:      c.Request().URL.Path,
			Details:   details,
		}}
		// Details travel only for validation failures or outside production.
		if status != http.StatusBadRequest && production {
			body.Error.Details = nil
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, body)
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "VALIDATION_ERROR"
	case http.StatusUnauthorized:
		return "AUTHENTICATION_ERROR"
	case http.StatusForbidden:
		return "AUTHORIZATION_ERROR"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	default:
		return "INTERNAL_ERROR"
	}
}
