package database

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/tablero/internal/models"
)

// JSONStore keeps the board in a single pretty-printed JSON file
type JSONStore struct {
	path string
}

// NewJSONStore creates a store for the given file path.
// The parent directory is created if missing.
func NewJSONStore(path string) (*JSONStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return &JSONStore{path: path}, nil
}

// Load reads and decodes the snapshot file
func (s *JSONStore) Load(_ context.Context) (*models.Board, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	return decodeBoard(data)
}

// Save writes the snapshot atomically: temp file, fsync, rename.
// A failed write leaves the previous snapshot in place.
func (s *JSONStore) Save(_ context.Context, board *models.Board) error {
	data, err := encodeBoard(board)
	if err != nil {
		return err
	}
	return atomicWriteFile(s.path, data)
}

// Location returns the snapshot file path
func (s *JSONStore) Location() string {
	return s.path
}

// Close is a no-op; the file is opened per call
func (s *JSONStore) Close() error {
	return nil
}

// atomicWriteFile replaces path with content using the temp-file, fsync,
// rename pattern.
func atomicWriteFile(path string, content []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".board-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
