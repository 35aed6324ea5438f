package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Open creates the snapshot store for backend inside dataDir
func Open(ctx context.Context, backend, dataDir string) (SnapshotStore, error) {
	switch backend {
	case "", BackendJSON:
		return NewJSONStore(filepath.Join(dataDir, JSONFileName))
	case BackendSQLite:
		return NewSQLiteStore(ctx, filepath.Join(dataDir, SQLiteFileName))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// LoadOrDefault restores the board from store. A missing, unreadable, or
// malformed snapshot yields the default board; the failure is logged and
// not returned. With strict set, anything other than a missing snapshot is
// returned as an error instead.
func LoadOrDefault(ctx context.Context, store SnapshotStore, strict bool, logger *slog.Logger) (*models.Board, error) {
	if logger == nil {
		logger = slog.Default()
	}

	board, err := store.Load(ctx)
	switch {
	case err == nil:
		logger.Info("board restored",
			"path", store.Location(),
			"columns", len(board.Columns),
			"tasks", board.TaskCount())
		return board, nil

	case errors.Is(err, ErrSnapshotNotFound):
		logger.Info("no snapshot found, starting with default board", "path", store.Location())
		return models.DefaultBoard(), nil

	case strict:
		return nil, fmt.Errorf("failed to restore board from %s: %w", store.Location(), err)

	default:
		logger.Warn("snapshot could not be restored, starting with default board",
			"path", store.Location(),
			"error", err)
		return models.DefaultBoard(), nil
	}
}
