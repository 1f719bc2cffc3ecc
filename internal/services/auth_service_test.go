package services

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tahmid-dev/ripple/internal/apperror"
	"github.com/tahmid-dev/ripple/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.auth.Register(models.RegisterRequest{
		Email:    "a@x.com",
		Name:     "Alice",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.User.ID)
	assert.Equal(t, "a@x.com", resp.User.Email)
	assert.Equal(t, "Alice", resp.User.Name)
	assert.NotEmpty(t, resp.Token)

	// The stored password is a hash of the submitted one, never plaintext.
	var stored models.User
	require.NoError(t, env.db.First(&stored, resp.User.ID).Error)
	assert.NotEqual(t, "password123", stored.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")))
}

func TestRegisterResponseNeverExposesPassword(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.auth.Register(models.RegisterRequest{
		Email:    "a@x.com",
		Name:     "Alice",
		Password: "password123",
	})
	require.NoError(t, err)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, strings.ToLower(string(raw)), "password")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	req := models.RegisterRequest{Email: "a@x.com", Name: "Alice", Password: "password123"}
	_, err := env.auth.Register(req)
	require.NoError(t, err)

	req.Name = "Imposter"
	_, err = env.auth.Register(req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrConflict))
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"malformed email", models.RegisterRequest{Email: "not-an-email", Name: "A", Password: "password123"}},
		{"email with spaces", models.RegisterRequest{Email: "a b@x.com", Name: "A", Password: "password123"}},
		{"short password", models.RegisterRequest{Email: "a@x.com", Name: "A", Password: "short"}},
		{"blank name", models.RegisterRequest{Email: "a@x.com", Name: "   ", Password: "password123"}},
		{"bio too long", models.RegisterRequest{Email: "a@x.com", Name: "A", Password: "password123", Bio: strptr(strings.Repeat("b", 501))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.auth.Register(tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperror.ErrValidation))
		})
	}
}

func TestRegisterBioHandling(t *testing.T) {
	env := newTestEnv(t)

	// A bio that trims to empty is stored as absent, not empty string.
	resp, err := env.auth.Register(models.RegisterRequest{
		Email: "a@x.com", Name: "Alice", Password: "password123", Bio: strptr("   "),
	})
	require.NoError(t, err)
	assert.Nil(t, resp.User.Bio)

	resp, err = env.auth.Register(models.RegisterRequest{
		Email: "b@x.com", Name: "Bob", Password: "password123", Bio: strptr("  hello  "),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.User.Bio)
	assert.Equal(t, "hello", *resp.User.Bio)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Register(models.RegisterRequest{Email: "a@x.com", Name: "Alice", Password: "password123"})
	require.NoError(t, err)

	resp, err := env.auth.Login(models.LoginRequest{Email: "a@x.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Register(models.RegisterRequest{Email: "a@x.com", Name: "Alice", Password: "password123"})
	require.NoError(t, err)

	_, wrongPassword := env.auth.Login(models.LoginRequest{Email: "a@x.com", Password: "wrongpassword"})
	_, unknownEmail := env.auth.Login(models.LoginRequest{Email: "nobody@x.com", Password: "password123"})

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)

	var e1, e2 *apperror.AppError
	require.True(t, errors.As(wrongPassword, &e1))
	require.True(t, errors.As(unknownEmail, &e2))
	assert.Equal(t, e1.Code, e2.Code)
	assert.Equal(t, e1.Message, e2.Message)
	assert.Equal(t, e1.Status, e2.Status)
	assert.True(t, errors.Is(wrongPassword, apperror.ErrAuthentication))
}

func TestCurrentUser(t *testing.T) {
	env := newTestEnv(t)
	u := seedUser(t, env.db, "a@x.com", "Alice")

	got, err := env.auth.CurrentUser(u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.Email, got.Email)

	// Absent user is nil, not an error.
	got, err = env.auth.CurrentUser(9999)
	require.NoError(t, err)
	assert.Nil(t, got)
}
