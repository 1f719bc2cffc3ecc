package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tahmid-dev/ripple/internal/apperror"
	"github.com/tahmid-dev/ripple/internal/models"
)

func TestGetProfileVisibility(t *testing.T) {
	env := newTestEnv(t)
	alice := seedUser(t, env.db, "a@x.com", "Alice")
	bob := seedUser(t, env.db, "b@x.com", "Bob")

	own, err := env.users.GetProfile(alice.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", own.Email)

	asOther, err := env.users.GetProfile(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, asOther.Email)

	asAnonymous, err := env.users.GetProfile(alice.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, asAnonymous.Email)

	// Apart from the email, the views are identical.
	own.Email = ""
	assert.Equal(t, *own, *asOther)
	assert.Equal(t, *asOther, *asAnonymous)
}

func TestGetProfileNotFound(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.users.GetProfile(42, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestUpdateProfileName(t *testing.T) {
	env := newTestEnv(t)
	u := seedUser(t, env.db, "a@x.com", "Alice")

	profile, err := env.users.UpdateProfile(u.ID, models.UpdateProfileRequest{Name: strptr("  New Name  ")})
	require.NoError(t, err)
	assert.Equal(t, "New Name", profile.Name)

	_, err = env.users.UpdateProfile(u.ID, models.UpdateProfileRequest{Name: strptr("   ")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrValidation))

	_, err = env.users.UpdateProfile(u.ID, models.UpdateProfileRequest{Name: strptr(strings.Repeat("n", 101))})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrValidation))
}

func TestUpdateProfileBioBoundaries(t *testing.T) {
	env := newTestEnv(t)
	u := seedUser(t, env.db, "a@x.com", "Alice")

	// Exactly 500 is accepted.
	profile, err := env.users.UpdateProfile(u.ID, models.UpdateProfileRequest{Bio: strptr(strings.Repeat("b", 500))})
	require.NoError(t, err)
	require.NotNil(t, profile.Bio)
	assert.Len(t, *profile.Bio, 500)

	// 501 is rejected, and the raw length counts before trimming.
	_, err = env.users.UpdateProfile(u.ID, models.UpdateProfileRequest{Bio: strptr(strings.Repeat("b", 501))})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrValidation))
}

func TestUpdateProfileBioClearing(t *testing.T) {
	env := newTestEnv(t)
	u := seedUser(t, env.db, "a@x.com", "Alice")

	_, err := env.users.UpdateProfile(u.ID, models.UpdateProfileRequest{Bio: strptr("hello")})
	require.NoError(t, err)

	// Whitespace-only bio clears the field to absent.
	profile, err := env.users.UpdateProfile(u.ID, models.UpdateProfileRequest{Bio: strptr("   ")})
	require.NoError(t, err)
	assert.Nil(t, profile.Bio)

	var stored models.User
	require.NoError(t, env.db.First(&stored, u.ID).Error)
	assert.Nil(t, stored.Bio)
}

func TestUpdateProfileOmittedFieldsUntouched(t *testing.T) {
	env := newTestEnv(t)
	u := seedUser(t, env.db, "a@x.com", "Alice")

	_, err := env.users.UpdateProfile(u.ID, models.UpdateProfileRequest{Bio: strptr("about me")})
	require.NoError(t, err)

	profile, err := env.users.UpdateProfile(u.ID, models.UpdateProfileRequest{Name: strptr("Alicia")})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", profile.Name)
	require.NotNil(t, profile.Bio)
	assert.Equal(t, "about me", *profile.Bio)
}

func TestUpdateProfileNotFound(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.users.UpdateProfile(42, models.UpdateProfileRequest{Name: strptr("Ghost")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestListUsers(t *testing.T) {
	env := newTestEnv(t)
	base := time.Now().Add(-time.Hour)
	alice := seedUser(t, env.db, "a@x.com", "Alice")
	bob := seedUser(t, env.db, "b@x.com", "Bob")
	carol := seedUser(t, env.db, "c@x.com", "Carol")
	for i, u := range []*models.User{alice, bob, carol} {
		require.NoError(t, env.db.Model(u).Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}

	_, err := env.follows.Follow(alice.ID, bob.ID)
	require.NoError(t, err)

	profiles, err := env.users.ListUsers(alice.ID)
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	// Newest first, requester excluded.
	assert.Equal(t, carol.ID, profiles[0].ID)
	assert.Equal(t, bob.ID, profiles[1].ID)
	for _, p := range profiles {
		assert.NotEqual(t, alice.ID, p.ID)
		assert.Empty(t, p.Email)
		require.NotNil(t, p.IsFollowing)
		require.NotNil(t, p.FollowersCount)
	}

	assert.False(t, *profiles[0].IsFollowing)
	assert.True(t, *profiles[1].IsFollowing)
	assert.EqualValues(t, 1, *profiles[1].FollowersCount)
}

func TestListUsersAnonymous(t *testing.T) {
	env := newTestEnv(t)
	seedUser(t, env.db, "a@x.com", "Alice")
	seedUser(t, env.db, "b@x.com", "Bob")

	profiles, err := env.users.ListUsers(0)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	for _, p := range profiles {
		assert.Empty(t, p.Email)
		assert.Nil(t, p.IsFollowing)
		assert.Nil(t, p.FollowersCount)
	}
}
