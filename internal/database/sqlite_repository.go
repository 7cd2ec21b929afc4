package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/boards/internal/models"
	"github.com/thenoetrevino/boards/internal/types"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLiteRepository stores boards in a SQLite database.
// Moves run the same splice as MemoryRepository against a snapshot loaded
// inside the transaction, then rewrite the positions of the touched columns.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository wraps a database opened with OpenDB
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Close closes the underlying database
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// GetBoards loads every board with its columns and tasks
func (r *SQLiteRepository) GetBoards(ctx context.Context) ([]*models.Board, error) {
	boards, err := loadBoards(ctx, r.db)
	if err != nil {
		return nil, fmt.Errorf("failed to load boards: %w", err)
	}
	return boards, nil
}

// CreateBoard inserts the board after the existing ones
func (r *SQLiteRepository) CreateBoard(ctx context.Context, board *models.Board) error {
	if err := board.Validate(); err != nil {
		return fmt.Errorf("invalid board: %w", err)
	}

	return r.withTx(ctx, func(tx *sql.Tx) error {
		boards, err := loadBoards(ctx, tx)
		if err != nil {
			return fmt.Errorf("failed to load boards: %w", err)
		}
		if err := checkUnused(boards, boardIDs(board)); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO boards (id, name, position) VALUES (?, ?, ?)`,
			string(board.ID), board.Name, len(boards),
		); err != nil {
			return fmt.Errorf("failed to create board: %w", err)
		}

		for i, column := range board.Columns {
			if err := insertColumn(ctx, tx, board.ID, column, i); err != nil {
				return err
			}
		}
		return nil
	})
}

// CreateBoardColumn inserts the column at the end of the board.
// An unknown board is a no-op.
func (r *SQLiteRepository) CreateBoardColumn(ctx context.Context, boardID types.BoardID, column *models.Column) error {
	if err := boardID.Validate(); err != nil {
		return err
	}
	if err := column.Validate(); err != nil {
		return fmt.Errorf("invalid column: %w", err)
	}

	return r.withTx(ctx, func(tx *sql.Tx) error {
		boards, err := loadBoards(ctx, tx)
		if err != nil {
			return fmt.Errorf("failed to load boards: %w", err)
		}

		board := findBoard(boards, boardID)
		if board == nil {
			slog.Debug("create column skipped: board not found", "board_id", boardID)
			return nil
		}
		if err := checkUnused(boards, columnIDs(column)); err != nil {
			return err
		}

		return insertColumn(ctx, tx, boardID, column, len(board.Columns))
	})
}

// CreateBoardTask inserts the task at the end of the column.
// An unknown column is a no-op.
func (r *SQLiteRepository) CreateBoardTask(ctx context.Context, columnID types.ColumnID, task *models.Task) error {
	if err := columnID.Validate(); err != nil {
		return err
	}
	if err := task.Validate(); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}

	return r.withTx(ctx, func(tx *sql.Tx) error {
		boards, err := loadBoards(ctx, tx)
		if err != nil {
			return fmt.Errorf("failed to load boards: %w", err)
		}

		column := models.FindColumn(boards, columnID)
		if column == nil {
			slog.Debug("create task skipped: column not found", "column_id", columnID)
			return nil
		}
		if err := checkUnused(boards, []string{string(task.ID)}); err != nil {
			return err
		}

		return insertTask(ctx, tx, columnID, task, len(column.Tasks))
	})
}

// MoveBoardTask relocates a task; see applyMove for the no-op cases
func (r *SQLiteRepository) MoveBoardTask(ctx context.Context, params MoveTaskParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	return r.withTx(ctx, func(tx *sql.Tx) error {
		boards, err := loadBoards(ctx, tx)
		if err != nil {
			return fmt.Errorf("failed to load boards: %w", err)
		}

		touched := applyMove(boards, params)
		if touched == nil {
			slog.Debug("move task skipped",
				"type", params.Type,
				"from_column_id", params.FromColumnID,
				"task_id", params.FromTaskID,
				"to_column_id", params.ToColumnID,
				"to_task_id", params.ToTaskID)
			return nil
		}

		for _, column := range touched {
			for position, task := range column.Tasks {
				if _, err := tx.ExecContext(ctx,
					`UPDATE tasks SET column_id = ?, position = ? WHERE id = ?`,
					string(column.ID), position, string(task.ID),
				); err != nil {
					return fmt.Errorf("failed to reposition task %s: %w", task.ID, err)
				}
			}
		}
		return nil
	})
}

// withTx runs fn in a transaction, committing when fn returns nil.
// fn must only use tx: the pool holds a single connection.
func (r *SQLiteRepository) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertColumn(ctx context.Context, q dbtx, boardID types.BoardID, column *models.Column, position int) error {
	if _, err := q.ExecContext(ctx,
		`INSERT INTO columns (id, board_id, name, position) VALUES (?, ?, ?, ?)`,
		string(column.ID), string(boardID), column.Name, position,
	); err != nil {
		return fmt.Errorf("failed to create column: %w", err)
	}

	for i, task := range column.Tasks {
		if err := insertTask(ctx, q, column.ID, task, i); err != nil {
			return err
		}
	}
	return nil
}

func insertTask(ctx context.Context, q dbtx, columnID types.ColumnID, task *models.Task, position int) error {
	if _, err := q.ExecContext(ctx,
		`INSERT INTO tasks (id, column_id, name, description, position) VALUES (?, ?, ?, ?, ?)`,
		string(task.ID), string(columnID), task.Name, task.Description, position,
	); err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// loadBoards reads the whole board tree in three ordered queries
func loadBoards(ctx context.Context, q dbtx) ([]*models.Board, error) {
	boards := []*models.Board{}
	boardsByID := make(map[types.BoardID]*models.Board)
	columnsByID := make(map[types.ColumnID]*models.Column)

	rows, err := q.QueryContext(ctx, `SELECT id, name FROM boards ORDER BY position`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		b := &models.Board{Columns: []*models.Column{}}
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			_ = rows.Close()
			return nil, err
		}
		boards = append(boards, b)
		boardsByID[b.ID] = b
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	rows, err = q.QueryContext(ctx, `SELECT id, board_id, name FROM columns ORDER BY board_id, position`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var boardID types.BoardID
		c := &models.Column{Tasks: []*models.Task{}}
		if err := rows.Scan(&c.ID, &boardID, &c.Name); err != nil {
			_ = rows.Close()
			return nil, err
		}
		if b, ok := boardsByID[boardID]; ok {
			b.Columns = append(b.Columns, c)
			columnsByID[c.ID] = c
		}
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	rows, err = q.QueryContext(ctx, `SELECT id, column_id, name, description FROM tasks ORDER BY column_id, position`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var columnID types.ColumnID
		t := &models.Task{}
		if err := rows.Scan(&t.ID, &columnID, &t.Name, &t.Description); err != nil {
			_ = rows.Close()
			return nil, err
		}
		if c, ok := columnsByID[columnID]; ok {
			c.Tasks = append(c.Tasks, t)
		}
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	return boards, nil
}

func closeRows(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return err
	}
	return rows.Close()
}
