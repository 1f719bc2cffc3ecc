package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tahmid-dev/ripple/internal/apperror"
	"github.com/tahmid-dev/ripple/internal/middleware"
	"github.com/tahmid-dev/ripple/internal/models"
	"github.com/tahmid-dev/ripple/internal/services"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	auth *services.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// RegisterAuthRoutes registers authentication routes. The me route carries
// its own auth middleware since the rest of the group is public.
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group, requireAuth echo.MiddlewareFunc) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/logout", h.Logout)
	g.GET("/me", h.Me, requireAuth)
}

// Register creates a user and returns the profile with a token.
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperror.Validation("Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resp, err := h.auth.Register(req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

// Login authenticates and returns the profile with a token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperror.Validation("Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resp, err := h.auth.Login(req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// Logout acknowledges the logout; tokens are discarded client-side.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out successfully"})
}

// Me returns the authenticated user's own profile, email included.
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.auth.CurrentUser(middleware.UserID(c))
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.Authentication("User not found")
	}
	return c.JSON(http.StatusOK, user.ToFullProfile())
}
