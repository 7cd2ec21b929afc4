package app

import (
	"log/slog"

	"github.com/thenoetrevino/boards/internal/database"
	"github.com/thenoetrevino/boards/internal/events"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	repo             database.BoardsRepository
	eventClient      events.EventPublisher
	logger           *slog.Logger
	skipDefaultBoard bool
}

// WithRepository uses repo instead of opening the configured backend.
// The App does not close it.
func WithRepository(repo database.BoardsRepository) Option {
	return func(cfg *appConfig) {
		cfg.repo = repo
	}
}

// WithEventPublisher sets the event publisher for the application.
// The App does not close it.
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithoutDefaultBoard starts with an empty repository when no seed file
// is configured
func WithoutDefaultBoard() Option {
	return func(cfg *appConfig) {
		cfg.skipDefaultBoard = true
	}
}
