package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthCheck is the liveness endpoint.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "ripple-api",
	})
}
