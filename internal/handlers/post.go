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

const (
	defaultFeedLimit = 50
	maxFeedLimit     = 100
)

// PostHandler handles post and feed HTTP requests
type PostHandler struct {
	posts *services.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(posts *services.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// RegisterPostRoutes registers post routes. The static following segment
// must win over :id, which echo guarantees.
func (h *PostHandler) RegisterPostRoutes(g *echo.Group, requireAuth echo.MiddlewareFunc) {
	g.POST("", h.CreatePost, requireAuth)
	g.GET("", h.GetAllPosts)
	g.GET("/following", h.GetFollowingPosts, requireAuth)
	g.GET("/:id", h.GetPostByID)
}

// CreatePost creates a post authored by the authenticated user.
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return apperror.Validation("Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.posts.Create(req.Content, middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post)
}

// GetAllPosts returns the global feed.
func (h *PostHandler) GetAllPosts(c echo.Context) error {
	limit, offset, err := parseLimitOffset(c)
	if err != nil {
		return err
	}
	posts, err := h.posts.All(limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// GetFollowingPosts returns the following-scoped feed for the requester.
func (h *PostHandler) GetFollowingPosts(c echo.Context) error {
	limit, offset, err := parseLimitOffset(c)
	if err != nil {
		return err
	}
	posts, err := h.posts.Following(middleware.UserID(c), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// GetPostByID returns a single post, 404 when absent.
func (h *PostHandler) GetPostByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return apperror.Validation("Invalid post ID")
	}

	post, err := h.posts.ByID(uint(id))
	if err != nil {
		return err
	}
	if post == nil {
		return apperror.NotFound("Post not found")
	}
	return c.JSON(http.StatusOK, post)
}

// parseLimitOffset validates pagination at the boundary: limit 1..100
// defaulting to 50, offset >= 0 defaulting to 0. Services apply the values
// as given.
func parseLimitOffset(c echo.Context) (limit, offset int, err error) {
	limit = defaultFeedLimit
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxFeedLimit {
			return 0, 0, apperror.Validation("Limit must be between 1 and 100")
		}
	}
	if raw := c.QueryParam("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, apperror.Validation("Offset must be non-negative")
		}
	}
	return limit, offset, nil
}
