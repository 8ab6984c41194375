// Package providers contains dependency injection providers for the app.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/mochilaapp/mochila-client/internal/config"
	"github.com/mochilaapp/mochila-client/internal/logger"
)

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	return config.Load()
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Environment: cfg.App.Environment,
	})

	log.Info("Starting Mochila",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"api_url", cfg.API.BaseURL,
	)

	return log, nil
}
