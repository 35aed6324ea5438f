// Package board implements the board command surface: every operation
// takes the board lock for its full duration, applies one logical mutation,
// writes the snapshot, and returns a copy of the resulting board.
package board

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/store"
)

// Service defines all board operations.
// Commands that cannot fail return only the board.
type Service interface {
	// Read operations
	GetBoard(ctx context.Context) *models.Board

	// Columns
	AddColumn(ctx context.Context, title string) *models.Board
	DeleteColumn(ctx context.Context, columnID string) *models.Board

	// Tasks
	AddTask(ctx context.Context, columnID, content string) (*models.Board, error)
	UpdateTask(ctx context.Context, taskID, content string) *models.Board
	UpdateTaskDetails(ctx context.Context, req UpdateTaskDetailsRequest) (*models.Board, error)
	DeleteTask(ctx context.Context, taskID string) *models.Board

	// Nested collections
	AddComment(ctx context.Context, taskID, content string) (*models.Board, error)
	AddAttachment(ctx context.Context, req AddAttachmentRequest) (*models.Board, error)

	// Task movement
	MoveTask(ctx context.Context, req MoveTaskRequest) (*models.Board, error)

	// Reload replaces the board with the persisted snapshot
	Reload(ctx context.Context) (*models.Board, error)
}

// UpdateTaskDetailsRequest encapsulates a partial task update.
// Fields with pointers are optional - nil means don't update.
type UpdateTaskDetailsRequest struct {
	TaskID      string
	Content     *string
	Description *string
	DueDate     *string
	Labels      []string // nil leaves labels unchanged; an empty slice clears them
}

// AddAttachmentRequest encapsulates the metadata of a new attachment
type AddAttachmentRequest struct {
	TaskID   string
	FileName string
	FilePath string
	MimeType string
}

// MoveTaskRequest identifies a task by column and position and where it goes.
// When both columns are the same, DestIndex is relative to the column with
// the task already removed.
type MoveTaskRequest struct {
	SourceColumnID string
	DestColumnID   string
	SourceIndex    int
	DestIndex      int
}

// service implements Service interface
type service struct {
	mu        sync.Mutex // guards the whole board, including the snapshot write
	store     *store.Store
	snapshots database.SnapshotStore
	events    events.EventPublisher
	metrics   *events.Metrics
	logger    *slog.Logger
	newID     func() string
	now       func() time.Time
	author    string
}

// NewService creates the command surface over an initial board.
// snapshots may be nil, in which case nothing is persisted.
func NewService(initial *models.Board, snapshots database.SnapshotStore, opts ...Option) Service {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &service{
		store:     store.New(initial),
		snapshots: snapshots,
		events:    cfg.events,
		metrics:   cfg.metrics,
		logger:    cfg.logger,
		newID:     cfg.newID,
		now:       cfg.now,
		author:    cfg.author,
	}
}

// GetBoard returns a copy of the current board
func (s *service) GetBoard(_ context.Context) *models.Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metrics.IncCommandsTotal()
	return s.store.Snapshot()
}

// Reload replaces the in-memory board with the persisted snapshot.
// Unlike startup restore, a missing or malformed snapshot is an error here
// and the current board stays in place.
func (s *service) Reload(ctx context.Context) (*models.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metrics.IncCommandsTotal()
	if s.snapshots == nil {
		s.metrics.IncCommandsFailed()
		return nil, database.ErrSnapshotNotFound
	}

	b, err := s.snapshots.Load(ctx)
	if err != nil {
		s.metrics.IncCommandsFailed()
		return nil, err
	}

	s.store.Replace(b)
	s.logger.Info("board reloaded", "path", s.snapshots.Location(), "columns", len(b.Columns))
	s.publish(events.EventBoardReloaded, CmdReload)
	return s.store.Snapshot(), nil
}

// apply runs fn under the board lock. fn must validate before it mutates:
// when it returns an error the board must be untouched. On success the
// board is persisted and a change event is published before the lock is
// released.
func (s *service) apply(ctx context.Context, command string, fn func(st *store.Store) error) (*models.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metrics.IncCommandsTotal()
	if err := fn(s.store); err != nil {
		s.metrics.IncCommandsFailed()
		s.logger.Debug("command rejected", "command", command, "error", err)
		return nil, err
	}

	s.metrics.IncMutations()
	s.persist(ctx, command)
	s.publish(events.EventBoardChanged, command)

	return s.store.Snapshot(), nil
}

// persist writes the snapshot. Write failures are logged and counted but
// not returned: the in-memory mutation stands and the durable copy falls
// behind until the next successful write.
func (s *service) persist(ctx context.Context, command string) {
	if s.snapshots == nil {
		return
	}

	// The mutation has already been applied; a cancelled caller must not skip the write.
	if err := s.snapshots.Save(context.WithoutCancel(ctx), s.store.Board()); err != nil {
		s.metrics.IncPersistFailures()
		s.logger.Error("failed to persist board",
			"command", command,
			"path", s.snapshots.Location(),
			"error", err)
	}
}

// publish sends a change event if an event publisher is configured
func (s *service) publish(eventType events.EventType, command string) {
	if s.events == nil {
		return
	}
	s.events.Publish(events.Event{
		Type:      eventType,
		Command:   command,
		Timestamp: s.now(),
	})
}
