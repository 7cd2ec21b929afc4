package events

import (
	"time"

	"github.com/thenoetrevino/boards/internal/types"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	EventBoardsChanged EventType = "boards_changed"
)

// Event represents a board state change notification
type Event struct {
	Type       EventType     `json:"type"`
	BoardID    types.BoardID `json:"boardID,omitempty"` // Which board was modified; empty = any board
	Timestamp  time.Time     `json:"timestamp"`         // When the event occurred
	SequenceID int64         `json:"sequenceID"`        // Monotonically increasing sequence number for ordering
}
