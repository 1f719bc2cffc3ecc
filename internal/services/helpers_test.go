package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/tahmid-dev/ripple/internal/models"
	"github.com/tahmid-dev/ripple/internal/repositories"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory SQLite database migrated with the
// full schema. A uniquely named shared-cache DSN keeps the database alive
// across the pool's connections within one test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Follow{}))
	return db
}

type testEnv struct {
	db      *gorm.DB
	users   *UserService
	follows *FollowService
	posts   *PostService
	auth    *AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	userRepo := repositories.NewPostgresUserRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	logger := zerolog.Nop()
	return &testEnv{
		db:      db,
		users:   NewUserService(userRepo, followRepo),
		follows: NewFollowService(followRepo, userRepo),
		posts:   NewPostService(postRepo, userRepo, followRepo, logger),
		auth:    NewAuthService(userRepo, "test-secret", time.Hour, logger),
	}
}

// seedUser inserts a user directly, bypassing registration, for tests that
// do not care about the password.
func seedUser(t *testing.T, db *gorm.DB, email, name string) *models.User {
	t.Helper()
	u := &models.User{Email: email, Name: name, Password: "not-a-real-hash"}
	require.NoError(t, db.Create(u).Error)
	return u
}

// seedPost inserts a post with an explicit creation time so ordering tests
// have distinct timestamps.
func seedPost(t *testing.T, db *gorm.DB, authorID uint, content string, createdAt time.Time) *models.Post {
	t.Helper()
	p := &models.Post{Content: content, AuthorID: authorID, CreatedAt: createdAt, UpdatedAt: createdAt}
	require.NoError(t, db.Create(p).Error)
	return p
}

func strptr(s string) *string { return &s }
