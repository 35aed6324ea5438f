package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
)

// SQLiteStore keeps the board snapshot as a JSON document in a single-row
// SQLite table
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens the database at path
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := OpenDB(ctx, path)
	if err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db, path: path}, nil
}

// NewSQLiteStoreFromDB wraps an already-migrated connection (used by tests
// with in-memory databases)
func NewSQLiteStoreFromDB(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	if err := runMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &SQLiteStore{db: db, path: ":memory:"}, nil
}

// Load reads the stored snapshot
func (s *SQLiteStore) Load(ctx context.Context) (*models.Board, error) {
	var data string
	err := s.db.QueryRowContext(ctx, "SELECT data FROM board_snapshot WHERE id = 1").Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return decodeBoard([]byte(data))
}

// Save upserts the snapshot row
func (s *SQLiteStore) Save(ctx context.Context, board *models.Board) error {
	data, err := encodeBoard(board)
	if err != nil {
		return err
	}
	return withTx(ctx, s.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO board_snapshot (id, data, saved_at) VALUES (1, ?, ?)
			ON CONFLICT(id) DO UPDATE SET data = excluded.data, saved_at = excluded.saved_at
		`, string(data), time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
		return nil
	})
}

// SavedAt returns when the current snapshot was written
func (s *SQLiteStore) SavedAt(ctx context.Context) (time.Time, error) {
	var savedAt time.Time
	err := s.db.QueryRowContext(ctx, "SELECT saved_at FROM board_snapshot WHERE id = 1").Scan(&savedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, ErrSnapshotNotFound
		}
		return time.Time{}, fmt.Errorf("failed to read snapshot time: %w", err)
	}
	return savedAt, nil
}

// Location returns the database file path
func (s *SQLiteStore) Location() string {
	return s.path
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
