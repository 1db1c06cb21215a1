// Package initializer builds the fully wired engine: config, logger, seeded
// directory, event bus and services.
package initializer

import (
	"fmt"
	"log/slog"

	infraeventbus "github.com/amirasaad/bankist/infra/eventbus"
	"github.com/amirasaad/bankist/pkg/app"
	"github.com/amirasaad/bankist/pkg/config"
)

// Initialize loads configuration and assembles the application.
func Initialize() (*app.App, error) {
	cfg, err := config.Load(slog.Default())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger := setupLogger(cfg.Log)

	directory, err := SeedDirectory(logger)
	if err != nil {
		return nil, fmt.Errorf("seeding directory: %w", err)
	}

	deps := &app.Deps{
		Directory: directory,
		Bus:       infraeventbus.NewWithMemory(logger),
		Logger:    logger,
	}
	return app.New(deps, cfg), nil
}
