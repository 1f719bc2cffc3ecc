package router

import (
	"time"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/tahmid-dev/ripple/internal/handlers"
	"github.com/tahmid-dev/ripple/internal/middleware"
	"github.com/tahmid-dev/ripple/internal/models"
	"github.com/tahmid-dev/ripple/internal/repositories"
	"github.com/tahmid-dev/ripple/internal/services"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo, logger zerolog.Logger) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.RequestLoggerWithConfig(eMiddleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v eMiddleware.RequestLoggerValues) error {
			logger.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request completed")
			return nil
		},
	}))
}

// SetupRoutes runs migrations, wires repositories, services and handlers,
// and mounts the API under /api.
func SetupRoutes(e *echo.Echo, db *gorm.DB, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Follow{},
	); err != nil {
		return err
	}

	userRepo := repositories.NewPostgresUserRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)

	authService := services.NewAuthService(userRepo, jwtSecret, tokenTTL, logger)
	userService := services.NewUserService(userRepo, followRepo)
	followService := services.NewFollowService(followRepo, userRepo)
	postService := services.NewPostService(postRepo, userRepo, followRepo, logger)

	requireAuth := middleware.JWTAuth(jwtSecret)
	optionalAuth := middleware.OptionalJWTAuth(jwtSecret)

	api := e.Group("/api")
	api.GET("/health", handlers.HealthCheck)

	authHandler := handlers.NewAuthHandler(authService)
	authHandler.RegisterAuthRoutes(api.Group("/auth"), requireAuth)

	userHandler := handlers.NewUserHandler(userService, postService)
	userHandler.RegisterUserRoutes(api.Group("/users"), requireAuth, optionalAuth)

	postHandler := handlers.NewPostHandler(postService)
	postHandler.RegisterPostRoutes(api.Group("/posts"), requireAuth)

	followHandler := handlers.NewFollowHandler(followService)
	followHandler.RegisterFollowRoutes(api.Group("/follows", requireAuth))

	return nil
}
