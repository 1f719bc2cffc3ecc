package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/tahmid-dev/ripple/internal/apperror"
	"github.com/tahmid-dev/ripple/internal/models"
)

// Context keys set by the auth middleware.
const (
	ContextUserIDKey = "userID"
	ContextClaimsKey = "claims"
)

// JWTAuth checks for a valid bearer token and stores the verified claims
// in the echo context. Missing, malformed or expired tokens are rejected.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := verifyBearer(c, secret)
			if err != nil {
				return err
			}
			c.Set(ContextUserIDKey, claims.UserID)
			c.Set(ContextClaimsKey, claims)
			return next(c)
		}
	}
}

// OptionalJWTAuth attaches the user identity when a valid bearer token is
// present and treats everything else, including invalid tokens, as an
// anonymous request.
func OptionalJWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if claims, err := verifyBearer(c, secret); err == nil {
				c.Set(ContextUserIDKey, claims.UserID)
				c.Set(ContextClaimsKey, claims)
			}
			return next(c)
		}
	}
}

func verifyBearer(c echo.Context, secret string) (*models.JwtCustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, apperror.Authentication("Access token required")
	}

	// Expecting "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, apperror.Authentication("Invalid Authorization header format")
	}

	claims := &models.JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperror.Authentication("Unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperror.Authentication("Invalid or expired token")
	}
	return claims, nil
}

// UserID returns the authenticated user's id from the context, or 0 for
// anonymous requests.
func UserID(c echo.Context) uint {
	if id, ok := c.Get(ContextUserIDKey).(uint); ok {
		return id
	}
	return 0
}
