package database

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/boards/internal/models"
	"github.com/thenoetrevino/boards/internal/types"
)

// MemoryRepository keeps every board in process memory.
// Callers never see the stored pointers: writes store copies and reads
// return copies.
type MemoryRepository struct {
	mu     sync.RWMutex
	boards []*models.Board
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{boards: []*models.Board{}}
}

// GetBoards returns a deep copy of every board
func (r *MemoryRepository) GetBoards(ctx context.Context) ([]*models.Board, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	slog.Debug("get boards", "count", len(r.boards))
	return models.CloneBoards(r.boards), nil
}

// CreateBoard appends a copy of the board
func (r *MemoryRepository) CreateBoard(ctx context.Context, board *models.Board) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := board.Validate(); err != nil {
		return fmt.Errorf("invalid board: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := checkUnused(r.boards, boardIDs(board)); err != nil {
		return err
	}

	r.boards = append(r.boards, board.Clone())
	return nil
}

// CreateBoardColumn appends a copy of the column to the board.
// An unknown board is a no-op.
func (r *MemoryRepository) CreateBoardColumn(ctx context.Context, boardID types.BoardID, column *models.Column) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := boardID.Validate(); err != nil {
		return err
	}
	if err := column.Validate(); err != nil {
		return fmt.Errorf("invalid column: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	board := findBoard(r.boards, boardID)
	if board == nil {
		slog.Debug("create column skipped: board not found", "board_id", boardID)
		return nil
	}
	if err := checkUnused(r.boards, columnIDs(column)); err != nil {
		return err
	}

	board.Columns = append(board.Columns, column.Clone())
	return nil
}

// CreateBoardTask appends a copy of the task to the column.
// An unknown column is a no-op.
func (r *MemoryRepository) CreateBoardTask(ctx context.Context, columnID types.ColumnID, task *models.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := columnID.Validate(); err != nil {
		return err
	}
	if err := task.Validate(); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	column := models.FindColumn(r.boards, columnID)
	if column == nil {
		slog.Debug("create task skipped: column not found", "column_id", columnID)
		return nil
	}
	if err := checkUnused(r.boards, []string{string(task.ID)}); err != nil {
		return err
	}

	column.Tasks = append(column.Tasks, task.Clone())
	return nil
}

// MoveBoardTask relocates a task; see applyMove for the no-op cases
func (r *MemoryRepository) MoveBoardTask(ctx context.Context, params MoveTaskParams) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := params.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if applyMove(r.boards, params) == nil {
		slog.Debug("move task skipped",
			"type", params.Type,
			"from_column_id", params.FromColumnID,
			"task_id", params.FromTaskID,
			"to_column_id", params.ToColumnID,
			"to_task_id", params.ToTaskID)
	}
	return nil
}
