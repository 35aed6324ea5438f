package database

import (
	"context"
	"errors"
	"io"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Supported snapshot backends
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Snapshot file names inside the data directory
const (
	JSONFileName   = "board.json"
	SQLiteFileName = "board.db"
)

var (
	// ErrSnapshotNotFound indicates that no snapshot has been saved yet
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrMalformedSnapshot indicates a snapshot that could not be decoded into a board
	ErrMalformedSnapshot = errors.New("malformed snapshot")

	// ErrUnknownBackend indicates a backend name other than json or sqlite
	ErrUnknownBackend = errors.New("unknown snapshot backend")
)

// SnapshotStore persists the whole board wholesale.
// Save replaces the previous snapshot; Load reads the latest one.
type SnapshotStore interface {
	io.Closer

	// Load reads the persisted board. Returns ErrSnapshotNotFound when nothing
	// has been saved and ErrMalformedSnapshot when the data cannot be decoded.
	Load(ctx context.Context) (*models.Board, error)

	// Save writes the full board, replacing the previous snapshot
	Save(ctx context.Context, board *models.Board) error

	// Location describes where snapshots are stored (for logs and CLI output)
	Location() string
}

// Compile-time verification that both stores implement SnapshotStore
var (
	_ SnapshotStore = (*JSONStore)(nil)
	_ SnapshotStore = (*SQLiteStore)(nil)
)
