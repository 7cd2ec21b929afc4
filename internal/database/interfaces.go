// Package database defines the boards repository and its backends
package database

import (
	"context"

	"github.com/thenoetrevino/boards/internal/models"
	"github.com/thenoetrevino/boards/internal/types"
)

// BoardsRepository is the read/write facade over the board collection.
// Lookup misses (unknown board, column or task) are silent no-ops;
// only validation and storage failures are returned as errors.
type BoardsRepository interface {
	// GetBoards returns a snapshot of every board, in creation order
	GetBoards(ctx context.Context) ([]*models.Board, error)

	// CreateBoard appends a board
	CreateBoard(ctx context.Context, board *models.Board) error

	// CreateBoardColumn appends a column to the end of a board
	CreateBoardColumn(ctx context.Context, boardID types.BoardID, column *models.Column) error

	// CreateBoardTask appends a task to the end of a column
	CreateBoardTask(ctx context.Context, columnID types.ColumnID, task *models.Task) error

	// MoveBoardTask relocates a task within or between columns
	MoveBoardTask(ctx context.Context, params MoveTaskParams) error
}

// Compile-time verification that both backends implement BoardsRepository
var (
	_ BoardsRepository = (*MemoryRepository)(nil)
	_ BoardsRepository = (*SQLiteRepository)(nil)
)
