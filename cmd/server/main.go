package main

import (
	"github.com/labstack/echo/v4"
	"github.com/tahmid-dev/ripple/internal/handlers"
	"github.com/tahmid-dev/ripple/internal/router"
	"github.com/tahmid-dev/ripple/pkg/config"
	"github.com/tahmid-dev/ripple/pkg/logger"
	"github.com/tahmid-dev/ripple/pkg/validators"
)

func main() {
	cfg := config.Load()

	log := logger.New(logger.Config{
		Level:      cfg.LogLevel,
		JSONOutput: cfg.IsProduction(),
	})

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer func() {
		if err := config.CloseDB(db); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()
	e.HTTPErrorHandler = handlers.NewHTTPErrorHandler(logger.WithComponent(log, "http"), cfg.IsProduction())

	router.SetupMiddleware(e, logger.WithComponent(log, "request"))
	if err := router.SetupRoutes(e, db, cfg.JWTSecret, cfg.TokenTTL, logger.WithComponent(log, "service")); err != nil {
		log.Fatal().Err(err).Msg("failed to set up routes")
	}

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
