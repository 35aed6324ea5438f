package database

import (
	"encoding/json"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
)

// encodeBoard renders the board as pretty-printed JSON with a trailing newline
func encodeBoard(board *models.Board) ([]byte, error) {
	data, err := json.MarshalIndent(board, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode board: %w", err)
	}
	return append(data, '\n'), nil
}

// decodeBoard parses a snapshot. Missing collections are tolerated and
// normalized; duplicate identifiers make the snapshot malformed.
func decodeBoard(data []byte) (*models.Board, error) {
	var board models.Board
	if err := json.Unmarshal(data, &board); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	if board.Columns == nil {
		return nil, fmt.Errorf("%w: missing columns", ErrMalformedSnapshot)
	}
	board.Normalize()
	if err := board.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	return &board, nil
}
