package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/tahmid-dev/ripple/internal/apperror"
	"github.com/tahmid-dev/ripple/internal/models"
	"github.com/tahmid-dev/ripple/internal/repositories"
	"gorm.io/gorm"
)

// listUsersLimit caps the user-suggestion page.
const listUsersLimit = 20

// UserService reads and writes profile fields and applies the visibility
// rule: a user's email appears only in their own view of the profile.
type UserService struct {
	users   repositories.UserRepository
	follows repositories.FollowRepository
}

// NewUserService creates a new UserService
func NewUserService(users repositories.UserRepository, follows repositories.FollowRepository) *UserService {
	return &UserService{users: users, follows: follows}
}

// GetProfile returns the full profile when requestingID is the target,
// otherwise the public profile. requestingID 0 means anonymous.
func (s *UserService) GetProfile(targetID, requestingID uint) (*models.UserProfile, error) {
	user, err := s.users.GetUserByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	var profile models.UserProfile
	if requestingID != 0 && requestingID == targetID {
		profile = user.ToFullProfile()
	} else {
		profile = user.ToPublicProfile()
	}
	return &profile, nil
}

// UpdateProfile applies name and bio changes. A bio that trims to empty is
// cleared to NULL, distinguishing "no bio" from an empty-string bio.
func (s *UserService) UpdateProfile(userID uint, req models.UpdateProfileRequest) (*models.UserProfile, error) {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperror.Validation("Name cannot be empty")
		}
		if utf8.RuneCountInString(name) > 100 {
			return nil, apperror.Validation("Name cannot exceed 100 characters")
		}
		user.Name = name
	}

	if req.Bio != nil {
		// Raw length is checked before trimming.
		if utf8.RuneCountInString(*req.Bio) > 500 {
			return nil, apperror.Validation("Bio cannot exceed 500 characters")
		}
		trimmed := strings.TrimSpace(*req.Bio)
		if trimmed == "" {
			user.Bio = nil
		} else {
			user.Bio = &trimmed
		}
	}

	if err := s.users.UpdateUser(user); err != nil {
		return nil, apperror.Internal(err)
	}

	profile := user.ToFullProfile()
	return &profile, nil
}

// ListUsers returns up to 20 public profiles, newest first, excluding the
// requester. With an authenticated requester each profile is annotated with
// isFollowing and followersCount; anonymous callers get plain profiles.
func (s *UserService) ListUsers(requestingID uint) ([]models.UserProfile, error) {
	users, err := s.users.GetUsers(listUsersLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	filtered := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.ID != requestingID {
			filtered = append(filtered, u)
		}
	}

	profiles := make([]models.UserProfile, 0, len(filtered))
	if requestingID == 0 {
		for i := range filtered {
			profiles = append(profiles, filtered[i].ToPublicProfile())
		}
		return profiles, nil
	}

	ids := make([]uint, len(filtered))
	for i := range filtered {
		ids[i] = filtered[i].ID
	}
	followed, err := s.follows.GetFollowedSet(requestingID, ids)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	for i := range filtered {
		u := &filtered[i]
		count, err := s.follows.GetFollowersCount(u.ID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		p := u.ToPublicProfile()
		isFollowing := followed[u.ID]
		p.IsFollowing = &isFollowing
		p.FollowersCount = &count
		profiles = append(profiles, p)
	}
	return profiles, nil
}
