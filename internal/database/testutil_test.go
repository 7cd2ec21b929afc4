package database

import (
	"context"
	"testing"

	"github.com/thenoetrevino/boards/internal/models"
	"github.com/thenoetrevino/boards/internal/types"
)

// ============================================================================
// FIXTURE HELPERS
// ============================================================================

// fixture is a board with three columns:
//
//	todo:  a b c
//	doing: d e
//	done:  (empty)
type fixture struct {
	board             *models.Board
	todo, doing, done *models.Column
	a, b, c, d, e     *models.Task
}

func newFixture() *fixture {
	f := &fixture{
		board: models.NewBoard("Sprint"),
		todo:  models.NewColumn("Todo"),
		doing: models.NewColumn("Doing"),
		done:  models.NewColumn("Done"),
		a:     models.NewTask("a", "task a"),
		b:     models.NewTask("b", "task b"),
		c:     models.NewTask("c", "task c"),
		d:     models.NewTask("d", "task d"),
		e:     models.NewTask("e", "task e"),
	}
	f.todo.Tasks = []*models.Task{f.a, f.b, f.c}
	f.doing.Tasks = []*models.Task{f.d, f.e}
	f.board.Columns = []*models.Column{f.todo, f.doing, f.done}
	return f
}

func (f *fixture) boards() []*models.Board {
	return []*models.Board{f.board}
}

// taskNames renders a column as its task names, in order
func taskNames(c *models.Column) []string {
	names := make([]string, 0, len(c.Tasks))
	for _, t := range c.Tasks {
		names = append(names, t.Name)
	}
	return names
}

// columnByName finds a column in a loaded snapshot
func columnByName(t *testing.T, boards []*models.Board, name string) *models.Column {
	t.Helper()
	for _, b := range boards {
		for _, c := range b.Columns {
			if c.Name == name {
				return c
			}
		}
	}
	t.Fatalf("column %q not found", name)
	return nil
}

// countTasks maps every task ID to the number of columns holding it
func countTasks(boards []*models.Board) map[types.TaskID]int {
	counts := make(map[types.TaskID]int)
	for _, b := range boards {
		for _, c := range b.Columns {
			for _, t := range c.Tasks {
				counts[t.ID]++
			}
		}
	}
	return counts
}

// ============================================================================
// BACKEND HELPERS
// ============================================================================

// backends returns a constructor for every repository implementation so
// contract tests run against each of them
func backends() map[string]func(t *testing.T) BoardsRepository {
	return map[string]func(t *testing.T) BoardsRepository{
		"memory": func(t *testing.T) BoardsRepository {
			return NewMemoryRepository()
		},
		"sqlite": func(t *testing.T) BoardsRepository {
			return setupTestSQLite(t)
		},
	}
}

// setupTestSQLite creates an in-memory SQLite repository closed at test end
func setupTestSQLite(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := OpenDB(context.Background(), DefaultDSN)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db)
}

// seedFixture stores a fresh fixture in repo
func seedFixture(t *testing.T, repo BoardsRepository) *fixture {
	t.Helper()
	f := newFixture()
	if err := repo.CreateBoard(context.Background(), f.board); err != nil {
		t.Fatalf("Failed to seed board: %v", err)
	}
	return f
}
