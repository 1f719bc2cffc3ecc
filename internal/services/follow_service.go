package services

import (
	"errors"

	"github.com/tahmid-dev/ripple/internal/apperror"
	"github.com/tahmid-dev/ripple/internal/models"
	"github.com/tahmid-dev/ripple/internal/repositories"
	"gorm.io/gorm"
)

// FollowService mutates and queries the follow graph. Follows are
// unilateral and immediate: the only states for an ordered pair are
// not-following and following.
type FollowService struct {
	follows repositories.FollowRepository
	users   repositories.UserRepository
}

// NewFollowService creates a new FollowService
func NewFollowService(follows repositories.FollowRepository, users repositories.UserRepository) *FollowService {
	return &FollowService{follows: follows, users: users}
}

// Follow creates the follower→target edge and returns the refreshed status
// tuple for the target.
func (s *FollowService) Follow(followerID, targetID uint) (*models.FollowStatus, error) {
	if followerID == targetID {
		return nil, apperror.Validation("Cannot follow yourself")
	}
	if err := s.requireUsers(followerID, targetID); err != nil {
		return nil, err
	}

	isFollowing, err := s.follows.IsFollowing(followerID, targetID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if isFollowing {
		return nil, apperror.Conflict("Already following this user")
	}

	follow := &models.Follow{FollowerID: followerID, FollowingID: targetID}
	if err := s.follows.CreateFollow(follow); err != nil {
		// Two concurrent follows can both pass the check above; the unique
		// index on (follower_id, following_id) breaks the tie and its
		// violation maps to the same conflict as the pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("Already following this user")
		}
		return nil, apperror.Internal(err)
	}

	return s.statusTuple(followerID, targetID)
}

// Unfollow removes the edge. Unfollowing someone not followed is an input
// error, not a conflict.
func (s *FollowService) Unfollow(followerID, targetID uint) (*models.FollowStatus, error) {
	if err := s.requireUsers(followerID, targetID); err != nil {
		return nil, err
	}

	deleted, err := s.follows.DeleteFollow(followerID, targetID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !deleted {
		return nil, apperror.Validation("Not following this user")
	}

	return s.statusTuple(followerID, targetID)
}

// Status returns the status tuple without mutation.
func (s *FollowService) Status(followerID, targetID uint) (*models.FollowStatus, error) {
	if err := s.requireUsers(followerID, targetID); err != nil {
		return nil, err
	}
	return s.statusTuple(followerID, targetID)
}

// MultipleStatus maps each target id to whether followerID follows it.
// Every requested id appears in the result, defaulting to false.
func (s *FollowService) MultipleStatus(followerID uint, targetIDs []uint) (map[uint]bool, error) {
	followed, err := s.follows.GetFollowedSet(followerID, targetIDs)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return followed, nil
}

func (s *FollowService) requireUsers(ids ...uint) error {
	for _, id := range ids {
		exists, err := s.users.UserExists(id)
		if err != nil {
			return apperror.Internal(err)
		}
		if !exists {
			return apperror.NotFound("User not found")
		}
	}
	return nil
}

// statusTuple computes both counts for the target user: followers of the
// target and users the target follows. The counts are deliberately
// target-relative, not actor-relative.
func (s *FollowService) statusTuple(followerID, targetID uint) (*models.FollowStatus, error) {
	isFollowing, err := s.follows.IsFollowing(followerID, targetID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	followersCount, err := s.follows.GetFollowersCount(targetID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	followingCount, err := s.follows.GetFollowingCount(targetID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &models.FollowStatus{
		IsFollowing:    isFollowing,
		FollowersCount: followersCount,
		FollowingCount: followingCount,
	}, nil
}
