package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/thenoetrevino/tablero/internal/commands"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/services/board"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Persistence gateway for the board snapshot
	snapshots database.SnapshotStore

	// Event system for change notifications
	bus     *events.Bus
	metrics *events.Metrics
	logger  *slog.Logger

	// Service layer (business logic)
	BoardService board.Service

	// Name-based dispatch over BoardService
	Commands *commands.Registry
}

// New restores the board from snapshots (or starts from the default board)
// and wires the service, event bus and command registry around it.
// snapshots may be nil for a purely in-memory board.
func New(ctx context.Context, snapshots database.SnapshotStore, opts ...Option) (*App, error) {
	cfg := &appConfig{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.metrics == nil {
		cfg.metrics = events.NewMetrics()
	}

	initial, err := restore(ctx, snapshots, cfg)
	if err != nil {
		return nil, err
	}

	bus := events.NewBus(cfg.metrics, cfg.logger)

	serviceOpts := append([]board.Option{
		board.WithEventPublisher(bus),
		board.WithMetrics(cfg.metrics),
		board.WithLogger(cfg.logger),
	}, cfg.serviceOpts...)
	svc := board.NewService(initial, snapshots, serviceOpts...)

	return &App{
		snapshots:    snapshots,
		bus:          bus,
		metrics:      cfg.metrics,
		logger:       cfg.logger,
		BoardService: svc,
		Commands:     commands.NewRegistry(svc, cfg.logger),
	}, nil
}

func restore(ctx context.Context, snapshots database.SnapshotStore, cfg *appConfig) (*models.Board, error) {
	if snapshots == nil {
		return nil, nil
	}
	return database.LoadOrDefault(ctx, snapshots, cfg.strictLoad, cfg.logger)
}

// Events returns the change event bus
func (a *App) Events() *events.Bus {
	return a.bus
}

// Metrics returns the engine counters
func (a *App) Metrics() *events.Metrics {
	return a.metrics
}

// SnapshotLocation describes where the board is persisted, or "" when in memory
func (a *App) SnapshotLocation() string {
	if a.snapshots == nil {
		return ""
	}
	return a.snapshots.Location()
}

// Close stops event delivery and releases the snapshot store
func (a *App) Close() error {
	var errs []error
	if err := a.bus.Close(); err != nil {
		errs = append(errs, err)
	}
	if a.snapshots != nil {
		if err := a.snapshots.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
