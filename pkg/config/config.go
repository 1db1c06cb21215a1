package config

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Session configures the inactivity countdown.
type Session struct {
	// InactivityLimit is the countdown's starting value. The countdown is
	// decremented one unit per elapsed second, so 300s means 300 ticks.
	InactivityLimit time.Duration `envconfig:"INACTIVITY_LIMIT" default:"300s"`
}

// Loan configures the loan grant policy.
type Loan struct {
	// ProcessingDelay defers the grant after validation by this much. Zero
	// applies the grant immediately.
	ProcessingDelay time.Duration `envconfig:"PROCESSING_DELAY" default:"0s"`
}

// Log configures the logger.
type Log struct {
	Level string `envconfig:"LEVEL" default:"info"`
}

// App is the root application configuration, loaded from BANKIST_* variables.
type App struct {
	Session Session `envconfig:"SESSION"`
	Loan    Loan    `envconfig:"LOAN"`
	Log     Log     `envconfig:"LOG"`
}

// Load reads the optional .env file and the environment into an App config.
func Load(logger *slog.Logger) (*App, error) {
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using system environment variables")
	} else {
		logger.Info("Environment variables loaded from .env file")
	}
	var cfg App
	if err := envconfig.Process("BANKIST", &cfg); err != nil {
		return nil, err
	}
	logger.Info("App config loaded",
		"inactivity_limit", cfg.Session.InactivityLimit,
		"loan_processing_delay", cfg.Loan.ProcessingDelay,
	)
	return &cfg, nil
}
