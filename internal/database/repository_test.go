package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/boards/internal/models"
	"github.com/thenoetrevino/boards/internal/types"
)

// Contract tests: every case runs against each backend

func TestRepository_CreateAndGet(t *testing.T) {
	for name, newRepo := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t)

			boards, err := repo.GetBoards(ctx)
			require.NoError(t, err)
			assert.Empty(t, boards)

			f := seedFixture(t, repo)
			second := models.NewBoard("Backlog")
			require.NoError(t, repo.CreateBoard(ctx, second))

			boards, err = repo.GetBoards(ctx)
			require.NoError(t, err)
			require.Len(t, boards, 2)
			assert.Equal(t, f.board.ID, boards[0].ID)
			assert.Equal(t, second.ID, boards[1].ID)
			assert.Equal(t, []string{"a", "b", "c"}, taskNames(columnByName(t, boards, "Todo")))
			assert.Equal(t, []string{"d", "e"}, taskNames(columnByName(t, boards, "Doing")))
			assert.Empty(t, columnByName(t, boards, "Done").Tasks)
			assert.Equal(t, "task a", columnByName(t, boards, "Todo").Tasks[0].Description)
		})
	}
}

func TestRepository_GetBoardsReturnsCopies(t *testing.T) {
	for name, newRepo := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t)
			f := seedFixture(t, repo)

			// Mutating the caller's fixture and snapshot must not leak into the repository
			f.todo.Tasks = nil
			boards, err := repo.GetBoards(ctx)
			require.NoError(t, err)
			boards[0].Columns[0].Tasks = nil

			boards, err = repo.GetBoards(ctx)
			require.NoError(t, err)
			assert.Len(t, boards[0].Columns[0].Tasks, 3)
		})
	}
}

func TestRepository_CreateBoardColumn(t *testing.T) {
	for name, newRepo := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t)
			f := seedFixture(t, repo)

			archive := models.NewColumn("Archive")
			require.NoError(t, repo.CreateBoardColumn(ctx, f.board.ID, archive))

			boards, err := repo.GetBoards(ctx)
			require.NoError(t, err)
			cols := boards[0].Columns
			require.Len(t, cols, 4)
			assert.Equal(t, archive.ID, cols[3].ID, "new column is appended at the end")
		})
	}
}

func TestRepository_CreateBoardColumn_UnknownBoardIsNoOp(t *testing.T) {
	for name, newRepo := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t)
			seedFixture(t, repo)
			before, err := repo.GetBoards(ctx)
			require.NoError(t, err)

			err = repo.CreateBoardColumn(ctx, types.NewBoardID(), models.NewColumn("Lost"))
			require.NoError(t, err)

			after, err := repo.GetBoards(ctx)
			require.NoError(t, err)
			assert.Equal(t, before, after)
		})
	}
}

func TestRepository_CreateBoardTask(t *testing.T) {
	for name, newRepo := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t)
			f := seedFixture(t, repo)

			task := models.NewTask("f", "new")
			require.NoError(t, repo.CreateBoardTask(ctx, f.done.ID, task))
			require.NoError(t, repo.CreateBoardTask(ctx, f.todo.ID, models.NewTask("g", "")))
			require.NoError(t, repo.CreateBoardTask(ctx, types.NewColumnID(), models.NewTask("lost", "")))

			boards, err := repo.GetBoards(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"f"}, taskNames(columnByName(t, boards, "Done")))
			assert.Equal(t, []string{"a", "b", "c", "g"}, taskNames(columnByName(t, boards, "Todo")))
			assert.Len(t, countTasks(boards), 7)
		})
	}
}

func TestRepository_RejectsDuplicatesAndInvalid(t *testing.T) {
	for name, newRepo := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t)
			f := seedFixture(t, repo)

			// Same board again
			err := repo.CreateBoard(ctx, f.board)
			assert.ErrorIs(t, err, ErrDuplicateID)

			// Existing task ID in a new column
			col := models.NewColumn("Copy")
			col.Tasks = []*models.Task{f.a}
			err = repo.CreateBoardColumn(ctx, f.board.ID, col)
			assert.ErrorIs(t, err, ErrDuplicateID)

			// Existing task ID in another column breaks the one-column invariant
			err = repo.CreateBoardTask(ctx, f.done.ID, f.d)
			assert.ErrorIs(t, err, ErrDuplicateID)

			// Schema violations
			err = repo.CreateBoard(ctx, &models.Board{ID: "board-1", Name: "bad"})
			assert.ErrorIs(t, err, types.ErrInvalidID)
			err = repo.CreateBoardColumn(ctx, f.board.ID, &models.Column{ID: types.NewColumnID()})
			assert.ErrorIs(t, err, models.ErrEmptyName)
			err = repo.CreateBoardTask(ctx, "todo", models.NewTask("x", ""))
			assert.ErrorIs(t, err, types.ErrInvalidID)

			boards, err := repo.GetBoards(ctx)
			require.NoError(t, err)
			require.Len(t, boards, 1)
			assert.Len(t, boards[0].Columns, 3)
			assert.Len(t, countTasks(boards), 5)
		})
	}
}

func TestRepository_MoveBoardTask(t *testing.T) {
	for name, newRepo := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t)
			f := seedFixture(t, repo)

			// a -> end of done
			require.NoError(t, repo.MoveBoardTask(ctx, MoveTaskParams{
				Type: MoveToColumn, FromColumnID: f.todo.ID, FromTaskID: f.a.ID, ToColumnID: f.done.ID,
			}))
			// c -> before d
			require.NoError(t, repo.MoveBoardTask(ctx, MoveTaskParams{
				Type: MoveTaskOnTask, FromColumnID: f.todo.ID, FromTaskID: f.c.ID,
				ToColumnID: f.doing.ID, ToTaskID: f.d.ID, MoveTaskBefore: true,
			}))
			// e -> after a
			require.NoError(t, repo.MoveBoardTask(ctx, MoveTaskParams{
				Type: MoveTaskOnTask, FromColumnID: f.doing.ID, FromTaskID: f.e.ID,
				ToColumnID: f.done.ID, ToTaskID: f.a.ID,
			}))

			boards, err := repo.GetBoards(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"b"}, taskNames(columnByName(t, boards, "Todo")))
			assert.Equal(t, []string{"c", "d"}, taskNames(columnByName(t, boards, "Doing")))
			assert.Equal(t, []string{"a", "e"}, taskNames(columnByName(t, boards, "Done")))

			moved := columnByName(t, boards, "Done").Tasks[0]
			assert.Equal(t, f.a.ID, moved.ID)
			assert.Equal(t, "task a", moved.Description)
		})
	}
}

func TestRepository_MoveBoardTask_MissesLeaveStateUnchanged(t *testing.T) {
	for name, newRepo := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t)
			f := seedFixture(t, repo)
			before, err := repo.GetBoards(ctx)
			require.NoError(t, err)

			moves := []MoveTaskParams{
				{Type: MoveTaskOnTask, FromColumnID: f.todo.ID, FromTaskID: f.a.ID, ToColumnID: f.todo.ID, ToTaskID: f.a.ID},
				{Type: MoveToColumn, FromColumnID: types.NewColumnID(), FromTaskID: f.a.ID, ToColumnID: f.done.ID},
				{Type: MoveToColumn, FromColumnID: f.todo.ID, FromTaskID: f.a.ID, ToColumnID: types.NewColumnID()},
				{Type: MoveToColumn, FromColumnID: f.doing.ID, FromTaskID: f.a.ID, ToColumnID: f.done.ID},
				{Type: MoveTaskOnTask, FromColumnID: f.todo.ID, FromTaskID: f.a.ID, ToColumnID: f.doing.ID, ToTaskID: types.NewTaskID()},
			}
			for _, m := range moves {
				require.NoError(t, repo.MoveBoardTask(ctx, m))
			}

			after, err := repo.GetBoards(ctx)
			require.NoError(t, err)
			assert.Equal(t, before, after)
		})
	}
}

func TestRepository_MoveBoardTask_InvalidParams(t *testing.T) {
	for name, newRepo := range backends() {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)
			f := seedFixture(t, repo)

			err := repo.MoveBoardTask(context.Background(), MoveTaskParams{
				Type: MoveTaskOnTask, FromColumnID: f.todo.ID, FromTaskID: f.a.ID, ToColumnID: f.doing.ID,
			})
			assert.ErrorIs(t, err, ErrMissingTargetTask)
		})
	}
}

func TestMemoryRepository_CanceledContext(t *testing.T) {
	repo := NewMemoryRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.GetBoards(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, repo.CreateBoard(ctx, models.NewBoard("x")), context.Canceled)
}
