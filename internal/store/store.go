// Package store holds the canonical in-memory kanban board and the
// structural primitives used to mutate it.
//
// A Store is not safe for concurrent use. Callers serialize access with a
// single lock covering the whole board (see services/board).
package store

import (
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Store owns the canonical board value
type Store struct {
	board *models.Board
}

// New wraps the given board. A nil board is replaced by the default board.
func New(b *models.Board) *Store {
	if b == nil {
		b = models.DefaultBoard()
	}
	b.Normalize()
	return &Store{board: b}
}

// Board returns the live board. Callers must hold the board lock and must
// not retain the pointer past it.
func (s *Store) Board() *models.Board {
	return s.board
}

// Snapshot returns a deep copy of the current board
func (s *Store) Snapshot() *models.Board {
	return s.board.Clone()
}

// Replace swaps in a freshly loaded board wholesale
func (s *Store) Replace(b *models.Board) {
	if b == nil {
		b = models.DefaultBoard()
	}
	b.Normalize()
	s.board = b
}

// ColumnIndex returns the position of the column with the given id
func (s *Store) ColumnIndex(id string) (int, bool) {
	for i := range s.board.Columns {
		if s.board.Columns[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// FindColumn returns a reference to the column with the given id
func (s *Store) FindColumn(id string) (*models.Column, bool) {
	idx, ok := s.ColumnIndex(id)
	if !ok {
		return nil, false
	}
	return &s.board.Columns[idx], true
}

// FindTask scans columns in order and returns the location of the first
// task with the given id.
func (s *Store) FindTask(id string) (colIdx, taskIdx int, ok bool) {
	for ci := range s.board.Columns {
		for ti := range s.board.Columns[ci].Tasks {
			if s.board.Columns[ci].Tasks[ti].ID == id {
				return ci, ti, true
			}
		}
	}
	return -1, -1, false
}

// TaskRef returns a reference to the task with the given id
func (s *Store) TaskRef(id string) (*models.Task, bool) {
	ci, ti, ok := s.FindTask(id)
	if !ok {
		return nil, false
	}
	return &s.board.Columns[ci].Tasks[ti], true
}

// AppendColumn adds a column at the end of the board
func (s *Store) AppendColumn(col models.Column) {
	if col.Tasks == nil {
		col.Tasks = []models.Task{}
	}
	s.board.Columns = append(s.board.Columns, col)
}

// RemoveColumn removes the column with the given id along with its tasks.
// Returns false if no such column exists.
func (s *Store) RemoveColumn(id string) bool {
	idx, ok := s.ColumnIndex(id)
	if !ok {
		return false
	}
	cols := s.board.Columns
	copy(cols[idx:], cols[idx+1:])
	cols[len(cols)-1] = models.Column{}
	s.board.Columns = cols[:len(cols)-1]
	return true
}

// RemoveTask removes the task with the given id from whichever column holds it.
// Returns false if no column holds it.
func (s *Store) RemoveTask(id string) bool {
	ci, ti, ok := s.FindTask(id)
	if !ok {
		return false
	}
	_, err := RemoveTaskAt(&s.board.Columns[ci], ti)
	return err == nil
}

// RemoveTaskAt removes the task at index and hands ownership to the caller
func RemoveTaskAt(col *models.Column, index int) (models.Task, error) {
	if index < 0 || index >= len(col.Tasks) {
		return models.Task{}, fmt.Errorf("%w: index %d, column %q has %d tasks",
			models.ErrIndexOutOfBounds, index, col.ID, len(col.Tasks))
	}
	task := col.Tasks[index]
	copy(col.Tasks[index:], col.Tasks[index+1:])
	col.Tasks[len(col.Tasks)-1] = models.Task{}
	col.Tasks = col.Tasks[:len(col.Tasks)-1]
	return task, nil
}

// InsertTaskAt inserts task at index. An index past the end appends, which
// tolerates stale positions from a client's view of the board.
func InsertTaskAt(col *models.Column, index int, task models.Task) {
	if index < 0 {
		index = 0
	}
	if index >= len(col.Tasks) {
		col.Tasks = append(col.Tasks, task)
		return
	}
	col.Tasks = append(col.Tasks, models.Task{})
	copy(col.Tasks[index+1:], col.Tasks[index:])
	col.Tasks[index] = task
}

// MoveTask removes the task at srcIndex of the source column and inserts it
// at dstIndex of the destination column. When both ids name the same column
// dstIndex is relative to the list with the task already removed.
// A negative dstIndex is rejected. On error the board is unchanged.
func (s *Store) MoveTask(srcColID, dstColID string, srcIndex, dstIndex int) error {
	si, ok := s.ColumnIndex(srcColID)
	if !ok {
		return fmt.Errorf("%w: %q", models.ErrSourceColumnNotFound, srcColID)
	}
	di, ok := s.ColumnIndex(dstColID)
	if !ok {
		return fmt.Errorf("%w: %q", models.ErrDestColumnNotFound, dstColID)
	}
	if dstIndex < 0 {
		return fmt.Errorf("destination: %w: %d", models.ErrIndexOutOfBounds, dstIndex)
	}

	// Take the task out entirely, then reinsert; at no point are two column
	// references held for writing.
	task, err := RemoveTaskAt(&s.board.Columns[si], srcIndex)
	if err != nil {
		return fmt.Errorf("source: %w", err)
	}
	InsertTaskAt(&s.board.Columns[di], dstIndex, task)
	return nil
}
