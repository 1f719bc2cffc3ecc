package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/tahmid-dev/ripple/internal/apperror"
	"github.com/tahmid-dev/ripple/internal/middleware"
	"github.com/tahmid-dev/ripple/internal/models"
	"github.com/tahmid-dev/ripple/internal/services"
)

// UserHandler handles HTTP requests related to user profiles
type UserHandler struct {
	users *services.UserService
	posts *services.PostService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users *services.UserService, posts *services.PostService) *UserHandler {
	return &UserHandler{users: users, posts: posts}
}

// RegisterUserRoutes registers user routes. The profile route must be
// registered alongside :id; echo prefers the static segment.
func (h *UserHandler) RegisterUserRoutes(g *echo.Group, requireAuth, optionalAuth echo.MiddlewareFunc) {
	g.GET("", h.ListUsers, requireAuth)
	g.PUT("/profile", h.UpdateOwnProfile, requireAuth)
	g.GET("/:id", h.GetProfile, optionalAuth)
	g.PUT("/:id", h.UpdateProfile, requireAuth)
	g.GET("/:id/posts", h.GetUserPosts)
}

// ListUsers returns a page of profiles annotated with follow info for the
// requester.
func (h *UserHandler) ListUsers(c echo.Context) error {
	profiles, err := h.users.ListUsers(middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profiles)
}

// GetProfile returns the full profile for the owner, the public profile
// for everyone else.
func (h *UserHandler) GetProfile(c echo.Context) error {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	profile, err := h.users.GetProfile(targetID, middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateOwnProfile updates the authenticated user's profile.
func (h *UserHandler) UpdateOwnProfile(c echo.Context) error {
	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return apperror.Validation("Invalid request payload")
	}

	profile, err := h.users.UpdateProfile(middleware.UserID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile updates a profile by id; only the owner may do so.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if middleware.UserID(c) != targetID {
		return apperror.Authorization("You can only update your own profile")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return apperror.Validation("Invalid request payload")
	}

	profile, err := h.users.UpdateProfile(targetID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"user": profile})
}

// GetUserPosts returns one user's posts, newest first.
func (h *UserHandler) GetUserPosts(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	limit, offset, err := parseLimitOffset(c)
	if err != nil {
		return err
	}

	posts, err := h.posts.ByUser(userID, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// parseIDParam parses a numeric path parameter.
func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, apperror.Validation("Invalid user ID")
	}
	return uint(id), nil
}
