package services

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
	"github.com/tahmid-dev/ripple/internal/apperror"
	"github.com/tahmid-dev/ripple/internal/models"
	"github.com/tahmid-dev/ripple/internal/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// dummyHash is compared against when the login email matches no user, so
// both login failure paths cost one bcrypt comparison.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService registers and authenticates users and issues identity tokens.
// Password hashing is an explicit step here, not a model hook.
type AuthService struct {
	users     repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users repositories.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Register creates a user with a hashed password and returns the full
// profile plus a signed token.
func (s *AuthService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	if !emailPattern.MatchString(req.Email) {
		return nil, apperror.Validation("Invalid email format")
	}
	if len(req.Password) < 8 {
		return nil, apperror.Validation("Password must be at least 8 characters long")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.Validation("Name is required")
	}
	var bio *string
	if req.Bio != nil {
		if utf8.RuneCountInString(*req.Bio) > 500 {
			return nil, apperror.Validation("Bio must be 500 characters or less")
		}
		trimmed := strings.TrimSpace(*req.Bio)
		if trimmed != "" {
			bio = &trimmed
		}
	}

	if _, err := s.users.GetUserByEmail(req.Email); err == nil {
		return nil, apperror.Conflict("User with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Internal(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &models.User{
		Email:    req.Email,
		Name:     name,
		Password: string(hashed),
		Bio:      bio,
	}
	if err := s.users.CreateUser(user); err != nil {
		// The unique index, not the pre-check above, is the real guard
		// against a concurrent registration with the same email.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("User with this email already exists")
		}
		return nil, apperror.Internal(err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	s.logger.Info().Uint("user_id", user.ID).Msg("user registered")

	return &models.AuthResponse{User: user.ToFullProfile(), Token: token}, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password return the exact same error so callers cannot tell which check
// failed.
func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	invalidCredentials := func() error {
		return apperror.Authentication("Invalid email or password")
	}

	user, err := s.users.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Burn a hash comparison anyway to keep both failure paths
			// close in cost.
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(req.Password))
			return nil, invalidCredentials()
		}
		return nil, apperror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, invalidCredentials()
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &models.AuthResponse{User: user.ToFullProfile(), Token: token}, nil
}

// CurrentUser returns the user by id, or nil when absent. A missing user is
// a recoverable condition here, not an error.
func (s *AuthService) CurrentUser(id uint) (*models.User, error) {
	user, err := s.users.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// generateToken signs a JWT bound to the user's id and email.
func (s *AuthService) generateToken(user *models.User) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
