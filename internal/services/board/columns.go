package board

import (
	"context"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/store"
)

// AddColumn appends a new empty column with a generated id
func (s *service) AddColumn(ctx context.Context, title string) *models.Board {
	b, _ := s.apply(ctx, CmdAddColumn, func(st *store.Store) error {
		st.AppendColumn(models.Column{
			ID:    s.newID(),
			Title: title,
			Tasks: []models.Task{},
		})
		return nil
	})
	return b
}

// DeleteColumn removes the column and all of its tasks. Deleting a column
// that does not exist is a no-op, and the board is still persisted.
func (s *service) DeleteColumn(ctx context.Context, columnID string) *models.Board {
	b, _ := s.apply(ctx, CmdDeleteColumn, func(st *store.Store) error {
		if !st.RemoveColumn(columnID) {
			s.logger.Debug("delete_column: column not present", "column_id", columnID)
		}
		return nil
	})
	return b
}
