package factory

import (
	"io"
	"log/slog"

	"accountd/internal/dependencies/clock"
	"accountd/internal/services/account"
	"accountd/internal/services/lookup"
)

// App contains all wired application components
type App struct {
	// External dependencies
	Clock clock.Clock

	// Services
	AccountService *account.Service
	LookupClient   *lookup.Client
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Lookup holds remote lookup settings (base URL and timeout)
	Lookup lookup.Config
	// LookupDoer overrides the lookup transport (optional, used by tests)
	LookupDoer lookup.Doer
}

// New creates a new application with all dependencies wired
func New(cfg Config) *App {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	clk := clock.New()

	return newWithDependencies(clk, cfg.Lookup, cfg.LookupDoer, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(clk clock.Clock, lookupCfg lookup.Config, doer lookup.Doer, logger *slog.Logger) *App {
	accountService := account.New(clk, logger)
	lookupClient := lookup.New(lookupCfg, doer, logger)

	return &App{
		Clock:          clk,
		AccountService: accountService,
		LookupClient:   lookupClient,
	}
}
