package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	// EventBoardChanged is published after a mutating command has been applied and persisted
	EventBoardChanged EventType = "board_changed"

	// EventBoardReloaded is published after the board was replaced by a fresh load
	EventBoardReloaded EventType = "board_reloaded"
)

// Event represents a board change notification
type Event struct {
	Type       EventType `json:"type"`
	Command    string    `json:"command,omitempty"` // Name of the command that caused the change
	Timestamp  time.Time `json:"timestamp"`         // When the event occurred
	SequenceID int64     `json:"sequence_id"`       // Monotonically increasing sequence number for ordering
}
