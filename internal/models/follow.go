package models

import "time"

// Follow is a directed edge: FollowerID receives FollowingID's posts in
// their following feed. The composite unique index is the source of truth
// against concurrent duplicate follows.
type Follow struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FollowerID  uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_following;not null"`
	FollowingID uint      `json:"following_id" gorm:"index;uniqueIndex:idx_follower_following;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FollowStatus describes the relationship and popularity of the target user
// relative to a follower. Both counts are computed for the target, not the
// actor: FollowersCount is how many users follow the target, FollowingCount
// is how many users the target follows.
type FollowStatus struct {
	IsFollowing    bool  `json:"isFollowing"`
	FollowersCount int64 `json:"followersCount"`
	FollowingCount int64 `json:"followingCount"`
}
