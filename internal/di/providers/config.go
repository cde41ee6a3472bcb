// Package providers contains dependency injection providers for the Hueforge API server.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/hueforge/hueforge/internal/config"
	"github.com/hueforge/hueforge/internal/logger"
)

// ConfigProvider provides the application configuration parsed from args.
func ConfigProvider(args []string) func(do.Injector) (*config.Config, error) {
	return func(do.Injector) (*config.Config, error) {
		return config.LoadConfig(args)
	}
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   cfg.App.Environment == "development",
		Environment: cfg.App.Environment,
	})

	log.Info("Starting Hueforge API",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"catalog_overlay", cfg.Catalog.OverlayPath,
		"suggest_model", cfg.Suggest.Model,
	)

	return log, nil
}
