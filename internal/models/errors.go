package models

import (
	"errors"
	"fmt"
)

// Domain-specific errors for board mutations
var (
	// ErrColumnNotFound indicates that no column has the requested id
	ErrColumnNotFound = errors.New("column not found")

	// ErrTaskNotFound indicates that no column holds a task with the requested id
	ErrTaskNotFound = errors.New("task not found")

	// ErrIndexOutOfBounds indicates a task index outside the column's current bounds
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrSourceColumnNotFound indicates a move whose source column does not exist
	ErrSourceColumnNotFound = fmt.Errorf("source %w", ErrColumnNotFound)

	// ErrDestColumnNotFound indicates a move whose destination column does not exist
	ErrDestColumnNotFound = fmt.Errorf("destination %w", ErrColumnNotFound)

	// ErrInvalidBoard indicates a board that violates identifier invariants
	ErrInvalidBoard = errors.New("invalid board")
)
