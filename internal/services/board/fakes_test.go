package board

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/models"
)

// recordingStore is an in-memory SnapshotStore that keeps every saved board
type recordingStore struct {
	mu      sync.Mutex
	saves   []*models.Board
	failing bool
}

func (r *recordingStore) Load(_ context.Context) (*models.Board, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.saves) == 0 {
		return nil, database.ErrSnapshotNotFound
	}
	return r.saves[len(r.saves)-1].Clone(), nil
}

func (r *recordingStore) Save(_ context.Context, b *models.Board) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing {
		return errors.New("disk full")
	}
	r.saves = append(r.saves, b.Clone())
	return nil
}

func (r *recordingStore) Location() string { return "memory" }
func (r *recordingStore) Close() error     { return nil }

func (r *recordingStore) saveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.saves)
}

func (r *recordingStore) last() *models.Board {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.saves) == 0 {
		return nil
	}
	return r.saves[len(r.saves)-1]
}

func (r *recordingStore) setFailing(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failing = v
}

// sequentialIDs returns a generator producing id-1, id-2, ...
func sequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// fixedClock returns a clock stuck at the given instant
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
