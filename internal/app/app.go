package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/boards/internal/config"
	"github.com/thenoetrevino/boards/internal/database"
	"github.com/thenoetrevino/boards/internal/events"
	"github.com/thenoetrevino/boards/internal/seed"
	"github.com/thenoetrevino/boards/internal/store"
)

// App holds the repository, event system and store, and provides
// dependency injection for the UI and API layers.
type App struct {
	Config *config.Config

	// Repository layer
	repo database.BoardsRepository

	// Event system for live updates
	eventClient events.EventPublisher

	// Reactive mirror consumed by the TUI and the HTTP API
	Store *store.BoardsStore

	logger  *slog.Logger
	closers []io.Closer
}

// New creates a new App with all components initialized.
// This is the single entry point for creating the application container:
// it opens the configured backend, starts the event broker, seeds an empty
// repository and performs the first sync.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	options := &appConfig{}
	for _, opt := range opts {
		opt(options)
	}

	a := &App{
		Config: cfg,
		logger: options.logger,
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}

	a.repo = options.repo
	if a.repo == nil {
		repo, closer, err := openRepository(ctx, cfg.Storage)
		if err != nil {
			return nil, err
		}
		a.repo = repo
		if closer != nil {
			a.closers = append(a.closers, closer)
		}
	}

	a.eventClient = options.eventClient
	if a.eventClient == nil {
		broker := events.NewBroker(
			events.WithDebounce(cfg.Events.Debounce()),
			events.WithQueueSize(cfg.Events.QueueSize),
		)
		a.eventClient = broker
		// Close the broker before the repository
		a.closers = append([]io.Closer{broker}, a.closers...)
	}

	a.Store = store.New(a.repo, a.eventClient)

	if err := a.seed(ctx, options.skipDefaultBoard); err != nil {
		_ = a.Close()
		return nil, err
	}

	if err := a.Store.SyncBoards(ctx); err != nil {
		_ = a.Close()
		return nil, err
	}

	a.logger.Info("app started",
		"backend", cfg.Storage.Backend,
		"boards", len(a.Store.Boards()))

	return a, nil
}

// openRepository builds the repository for the configured backend.
// The closer is nil for backends that hold no resources.
func openRepository(ctx context.Context, storage config.StorageConfig) (database.BoardsRepository, io.Closer, error) {
	switch storage.Backend {
	case config.BackendMemory:
		return database.NewMemoryRepository(), nil, nil
	case config.BackendSQLite:
		dsn := storage.DSN
		if dsn == "" {
			dsn = database.DefaultDSN
		}
		db, err := database.OpenDB(ctx, dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite repository: %w", err)
		}
		repo := database.NewSQLiteRepository(db)
		return repo, repo, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", database.ErrUnknownBackend, storage.Backend)
	}
}

// seed populates an empty repository from the seed file, or with the
// default board when none is configured
func (a *App) seed(ctx context.Context, skipDefault bool) error {
	existing, err := a.repo.GetBoards(ctx)
	if err != nil {
		return fmt.Errorf("failed to check repository: %w", err)
	}
	if len(existing) > 0 {
		a.logger.Debug("repository not empty, skipping seed", "boards", len(existing))
		return nil
	}

	if a.Config.SeedFile != "" {
		if err := seed.Load(ctx, a.repo, a.Config.SeedFile); err != nil {
			return fmt.Errorf("failed to seed repository: %w", err)
		}
		return nil
	}

	if skipDefault {
		return nil
	}
	return seed.Apply(ctx, a.repo, seed.Default())
}

// Repo returns the underlying repository for direct access.
// Writes made here are not visible in Store until the next SyncBoards.
func (a *App) Repo() database.BoardsRepository {
	return a.repo
}

// Events returns the publisher the store announces changes on
func (a *App) Events() events.EventPublisher {
	return a.eventClient
}

// Close releases what New opened: the broker, then the repository.
// Injected components are left to their owners.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
