package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tahmid-dev/ripple/internal/middleware"
	"github.com/tahmid-dev/ripple/internal/services"
)

// FollowHandler handles follow-graph HTTP requests
type FollowHandler struct {
	follows *services.FollowService
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(follows *services.FollowService) *FollowHandler {
	return &FollowHandler{follows: follows}
}

// RegisterFollowRoutes registers follow routes; all of them require auth.
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/:userId", h.FollowUser)
	g.DELETE("/:userId", h.UnfollowUser)
	g.GET("/:userId/status", h.GetFollowStatus)
}

// FollowUser creates the edge from the requester to the target and returns
// the refreshed status tuple.
func (h *FollowHandler) FollowUser(c echo.Context) error {
	targetID, err := parseIDParam(c, "userId")
	if err != nil {
		return err
	}
	status, err := h.follows.Follow(middleware.UserID(c), targetID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, status)
}

// UnfollowUser removes the edge and returns the refreshed status tuple.
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	targetID, err := parseIDParam(c, "userId")
	if err != nil {
		return err
	}
	status, err := h.follows.Unfollow(middleware.UserID(c), targetID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, status)
}

// GetFollowStatus returns the status tuple without mutation.
func (h *FollowHandler) GetFollowStatus(c echo.Context) error {
	targetID, err := parseIDParam(c, "userId")
	if err != nil {
		return err
	}
	status, err := h.follows.Status(middleware.UserID(c), targetID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, status)
}
