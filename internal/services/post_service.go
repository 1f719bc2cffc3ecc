package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/tahmid-dev/ripple/internal/apperror"
	"github.com/tahmid-dev/ripple/internal/models"
	"github.com/tahmid-dev/ripple/internal/repositories"
	"gorm.io/gorm"
)

// PostService creates posts and assembles the global, per-user and
// following-scoped feeds.
type PostService struct {
	posts   repositories.PostRepository
	users   repositories.UserRepository
	follows repositories.FollowRepository
	logger  zerolog.Logger
}

// NewPostService creates a new PostService
func NewPostService(posts repositories.PostRepository, users repositories.UserRepository, follows repositories.FollowRepository, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, follows: follows, logger: logger}
}

// Create persists a post with trimmed content. The raw content is length
// checked before trimming; the trimmed content must be non-empty.
func (s *PostService) Create(content string, authorID uint) (*models.PostResponse, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" || utf8.RuneCountInString(content) > 1000 {
		return nil, apperror.Validation("Post content must be between 1 and 1000 characters")
	}

	exists, err := s.users.UserExists(authorID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !exists {
		return nil, apperror.NotFound("Author not found")
	}

	post := &models.Post{Content: trimmed, AuthorID: authorID}
	if err := s.posts.CreatePost(post); err != nil {
		return nil, apperror.Internal(err)
	}

	resp := post.ToResponse()
	return &resp, nil
}

// All returns posts newest first. Limit and offset arrive validated by the
// boundary and are applied as given.
func (s *PostService) All(limit, offset int) ([]models.PostResponse, error) {
	posts, err := s.posts.GetAllPosts(limit, offset)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return toResponses(posts), nil
}

// ByUser returns one author's posts, newest first.
func (s *PostService) ByUser(userID uint, limit, offset int) ([]models.PostResponse, error) {
	posts, err := s.posts.GetPostsByAuthor(userID, limit, offset)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return toResponses(posts), nil
}

// ByID returns the post or nil when absent; absence is recoverable, not an
// error.
func (s *PostService) ByID(id uint) (*models.PostResponse, error) {
	post, err := s.posts.GetPostByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	resp := post.ToResponse()
	return &resp, nil
}

// Following returns posts authored by users the given user follows. An
// empty follow set yields an empty feed. Store faults degrade to an empty
// feed rather than an error so the feed stays available; every degraded
// call is logged at error severity.
func (s *PostService) Following(userID uint, limit, offset int) ([]models.PostResponse, error) {
	ids, err := s.follows.GetFollowingIDs(userID)
	if err != nil {
		s.logger.Error().Err(err).Uint("user_id", userID).Msg("following feed degraded to empty: resolving follow set failed")
		return []models.PostResponse{}, nil
	}
	if len(ids) == 0 {
		return []models.PostResponse{}, nil
	}

	posts, err := s.posts.GetPostsByAuthors(ids, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Uint("user_id", userID).Msg("following feed degraded to empty: fetching posts failed")
		return []models.PostResponse{}, nil
	}
	return toResponses(posts), nil
}

func toResponses(posts []models.Post) []models.PostResponse {
	responses := make([]models.PostResponse, len(posts))
	for i := range posts {
		responses[i] = posts[i].ToResponse()
	}
	return responses
}
