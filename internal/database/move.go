package database

import (
	"fmt"
	"slices"

	"github.com/thenoetrevino/boards/internal/models"
	"github.com/thenoetrevino/boards/internal/types"
)

// MoveType selects the variant of a task move
type MoveType string

const (
	// MoveToColumn appends the task to the end of the destination column
	MoveToColumn MoveType = "move-to-column"

	// MoveTaskOnTask drops the task before or after a target task
	MoveTaskOnTask MoveType = "move-task-on-task"
)

// MoveTaskParams describes a task move.
// ToTaskID and MoveTaskBefore are only read for MoveTaskOnTask.
type MoveTaskParams struct {
	Type           MoveType       `json:"type"`
	FromColumnID   types.ColumnID `json:"fromColumnID"`
	FromTaskID     types.TaskID   `json:"fromTaskID"`
	ToColumnID     types.ColumnID `json:"toColumnID"`
	ToTaskID       types.TaskID   `json:"toTaskID,omitempty"`
	MoveTaskBefore bool           `json:"moveTaskBefore,omitempty"`
}

// Validate checks the shape of the params. It does not check that the
// referenced columns and tasks exist; misses are handled as no-ops.
func (p MoveTaskParams) Validate() error {
	switch p.Type {
	case MoveToColumn, MoveTaskOnTask:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMoveType, p.Type)
	}
	if err := p.FromColumnID.Validate(); err != nil {
		return err
	}
	if err := p.FromTaskID.Validate(); err != nil {
		return err
	}
	if err := p.ToColumnID.Validate(); err != nil {
		return err
	}
	if p.Type == MoveTaskOnTask {
		if p.ToTaskID == "" {
			return ErrMissingTargetTask
		}
		if err := p.ToTaskID.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// applyMove splices the task described by p out of its column and into the
// destination, mutating boards in place. It returns the columns whose task
// order changed (source first), or nil when the move was a no-op:
//   - the task is dropped on itself
//   - the source or destination column does not exist
//   - the task is not in the source column
//   - the target task is not in the destination column
//
// The target is resolved before the source is modified, so a miss never
// loses the task.
func applyMove(boards []*models.Board, p MoveTaskParams) []*models.Column {
	if p.Type == MoveTaskOnTask && p.FromTaskID == p.ToTaskID {
		return nil
	}

	from := models.FindColumn(boards, p.FromColumnID)
	to := models.FindColumn(boards, p.ToColumnID)
	if from == nil || to == nil {
		return nil
	}

	idx := from.TaskIndex(p.FromTaskID)
	if idx < 0 {
		return nil
	}

	switch p.Type {
	case MoveToColumn:
		task := from.Tasks[idx]
		from.Tasks = slices.Delete(from.Tasks, idx, idx+1)
		to.Tasks = append(to.Tasks, task)

	case MoveTaskOnTask:
		if to.TaskIndex(p.ToTaskID) < 0 {
			return nil
		}
		task := from.Tasks[idx]
		from.Tasks = slices.Delete(from.Tasks, idx, idx+1)

		// Index again: removing the task may have shifted the target
		target := to.TaskIndex(p.ToTaskID)
		if !p.MoveTaskBefore {
			target++
		}
		to.Tasks = slices.Insert(to.Tasks, target, task)

	default:
		return nil
	}

	if from == to {
		return []*models.Column{from}
	}
	return []*models.Column{from, to}
}
