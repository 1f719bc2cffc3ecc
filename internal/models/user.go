package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"` // Ensure email is unique across all users
	Name      string    `json:"name" gorm:"not null"`
	Password  string    `json:"-" gorm:"not null"` // Store hashed password, ignore for JSON serialization
	Bio       *string   `json:"bio,omitempty" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserProfile is the externally visible view of a user. Email is populated
// only when the requester is the profile's owner; with omitempty the public
// and full shapes are otherwise identical. IsFollowing and FollowersCount
// are filled only on annotated listings.
type UserProfile struct {
	ID             uint      `json:"id"`
	Email          string    `json:"email,omitempty"`
	Name           string    `json:"name"`
	Bio            *string   `json:"bio,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	IsFollowing    *bool     `json:"isFollowing,omitempty"`
	FollowersCount *int64    `json:"followersCount,omitempty"`
}

// ToFullProfile includes the email. Only ever returned to the user themselves.
func (u *User) ToFullProfile() UserProfile {
	p := u.ToPublicProfile()
	p.Email = u.Email
	return p
}

// ToPublicProfile never exposes the email.
func (u *User) ToPublicProfile() UserProfile {
	return UserProfile{
		ID:        u.ID,
		Name:      u.Name,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
	}
}

type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Name     string  `json:"name" validate:"required,max=100"`
	Password string  `json:"password" validate:"required,min=8"`
	Bio      *string `json:"bio,omitempty" validate:"omitempty,max=500"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest uses pointers to distinguish absent fields from empty
// strings: an empty bio clears the column, an omitted bio leaves it untouched.
type UpdateProfileRequest struct {
	Name *string `json:"name,omitempty"`
	Bio  *string `json:"bio,omitempty"`
}

// AuthResponse bundles the user view with the issued token.
type AuthResponse struct {
	User  UserProfile `json:"user"`
	Token string      `json:"token"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
