package board

import (
	"context"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/store"
)

// MoveTask relocates a task by position, within a column or across columns.
// A destination index past the end of the destination column appends.
// On failure neither column changes and nothing is persisted.
func (s *service) MoveTask(ctx context.Context, req MoveTaskRequest) (*models.Board, error) {
	return s.apply(ctx, CmdMoveTask, func(st *store.Store) error {
		return st.MoveTask(req.SourceColumnID, req.DestColumnID, req.SourceIndex, req.DestIndex)
	})
}
