package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID types give each kind of board entity its own string type so a column
// ID can never be passed where a task ID is expected.
// Every ID is a kind prefix followed by a random UUID.

// BoardID identifies a board ("b-<uuid>")
type BoardID string

// ColumnID identifies a column within a board ("bc-<uuid>")
type ColumnID string

// TaskID identifies a task within a column ("bt-<uuid>")
type TaskID string

// ID prefixes
const (
	BoardIDPrefix  = "b-"
	ColumnIDPrefix = "bc-"
	TaskIDPrefix   = "bt-"
)

// ErrInvalidID is returned when an ID does not carry its kind prefix
var ErrInvalidID = errors.New("invalid id")

// NewBoardID returns a fresh board ID
func NewBoardID() BoardID {
	return BoardID(BoardIDPrefix + uuid.NewString())
}

// NewColumnID returns a fresh column ID
func NewColumnID() ColumnID {
	return ColumnID(ColumnIDPrefix + uuid.NewString())
}

// NewTaskID returns a fresh task ID
func NewTaskID() TaskID {
	return TaskID(TaskIDPrefix + uuid.NewString())
}

func (id BoardID) String() string  { return string(id) }
func (id ColumnID) String() string { return string(id) }
func (id TaskID) String() string   { return string(id) }

// Validate checks the board prefix
func (id BoardID) Validate() error {
	return validatePrefix(string(id), BoardIDPrefix, "board")
}

// Validate checks the column prefix
func (id ColumnID) Validate() error {
	return validatePrefix(string(id), ColumnIDPrefix, "column")
}

// Validate checks the task prefix
func (id TaskID) Validate() error {
	return validatePrefix(string(id), TaskIDPrefix, "task")
}

// validatePrefix requires the prefix and at least one character after it
func validatePrefix(id, prefix, kind string) error {
	if !strings.HasPrefix(id, prefix) || len(id) == len(prefix) {
		return fmt.Errorf("%w: %s id %q must start with %q", ErrInvalidID, kind, id, prefix)
	}
	return nil
}
