package database

import (
	"errors"
	"reflect"
	"testing"

	"github.com/thenoetrevino/boards/internal/models"
	"github.com/thenoetrevino/boards/internal/types"
	"pgregory.net/rapid"
)

func TestApplyMove(t *testing.T) {
	tests := []struct {
		name        string
		params      func(f *fixture) MoveTaskParams
		wantTouched int
		want        map[string][]string
	}{
		{
			name: "to other column appends at end",
			params: func(f *fixture) MoveTaskParams {
				return MoveTaskParams{Type: MoveToColumn, FromColumnID: f.todo.ID, FromTaskID: f.a.ID, ToColumnID: f.doing.ID}
			},
			wantTouched: 2,
			want:        map[string][]string{"Todo": {"b", "c"}, "Doing": {"d", "e", "a"}, "Done": {}},
		},
		{
			name: "to empty column",
			params: func(f *fixture) MoveTaskParams {
				return MoveTaskParams{Type: MoveToColumn, FromColumnID: f.doing.ID, FromTaskID: f.e.ID, ToColumnID: f.done.ID}
			},
			wantTouched: 2,
			want:        map[string][]string{"Todo": {"a", "b", "c"}, "Doing": {"d"}, "Done": {"e"}},
		},
		{
			name: "to same column moves to end",
			params: func(f *fixture) MoveTaskParams {
				return MoveTaskParams{Type: MoveToColumn, FromColumnID: f.todo.ID, FromTaskID: f.a.ID, ToColumnID: f.todo.ID}
			},
			wantTouched: 1,
			want:        map[string][]string{"Todo": {"b", "c", "a"}, "Doing": {"d", "e"}, "Done": {}},
		},
		{
			name: "before task in other column",
			params: func(f *fixture) MoveTaskParams {
				return MoveTaskParams{Type: MoveTaskOnTask, FromColumnID: f.todo.ID, FromTaskID: f.b.ID, ToColumnID: f.doing.ID, ToTaskID: f.e.ID, MoveTaskBefore: true}
			},
			wantTouched: 2,
			want:        map[string][]string{"Todo": {"a", "c"}, "Doing": {"d", "b", "e"}, "Done": {}},
		},
		{
			name: "after task in other column",
			params: func(f *fixture) MoveTaskParams {
				return MoveTaskParams{Type: MoveTaskOnTask, FromColumnID: f.todo.ID, FromTaskID: f.b.ID, ToColumnID: f.doing.ID, ToTaskID: f.d.ID}
			},
			wantTouched: 2,
			want:        map[string][]string{"Todo": {"a", "c"}, "Doing": {"d", "b", "e"}, "Done": {}},
		},
		{
			name: "after last task",
			params: func(f *fixture) MoveTaskParams {
				return MoveTaskParams{Type: MoveTaskOnTask, FromColumnID: f.todo.ID, FromTaskID: f.a.ID, ToColumnID: f.doing.ID, ToTaskID: f.e.ID}
			},
			wantTouched: 2,
			want:        map[string][]string{"Todo": {"b", "c"}, "Doing": {"d", "e", "a"}, "Done": {}},
		},
		{
			name: "down within column, after later task",
			params: func(f *fixture) MoveTaskParams {
				return MoveTaskParams{Type: MoveTaskOnTask, FromColumnID: f.todo.ID, FromTaskID: f.a.ID, ToColumnID: f.todo.ID, ToTaskID: f.c.ID}
			},
			wantTouched: 1,
			want:        map[string][]string{"Todo": {"b", "c", "a"}, "Doing": {"d", "e"}, "Done": {}},
		},
		{
			name: "down within column, before later task",
			params: func(f *fixture) MoveTaskParams {
				return MoveTaskParams{Type: MoveTaskOnTask, FromColumnID: f.todo.ID, FromTaskID: f.a.ID, ToColumnID: f.todo.ID, ToTaskID: f.c.ID, MoveTaskBefore: true}
			},
			wantTouched: 1,
			want:        map[string][]string{"Todo": {"b", "a", "c"}, "Doing": {"d", "e"}, "Done": {}},
		},
		{
			name: "up within column, before earlier task",
			params: func(f *fixture) MoveTaskParams {
				return MoveTaskParams{Type: MoveTaskOnTask, FromColumnID: f.todo.ID, FromTaskID: f.c.ID, ToColumnID: f.todo.ID, ToTaskID: f.a.ID, MoveTaskBefore: true}
			},
			wantTouched: 1,
			want:        map[string][]string{"Todo": {"c", "a", "b"}, "Doing": {"d", "e"}, "Done": {}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			touched := applyMove(f.boards(), tt.params(f))

			if len(touched) != tt.wantTouched {
				t.Errorf("touched %d columns, want %d", len(touched), tt.wantTouched)
			}
			for _, col := range f.board.Columns {
				got := taskNames(col)
				if !reflect.DeepEqual(got, tt.want[col.Name]) {
					t.Errorf("column %s = %v, want %v", col.Name, got, tt.want[col.Name])
				}
			}
		})
	}
}

func TestApplyMove_PreservesTaskFields(t *testing.T) {
	f := newFixture()
	applyMove(f.boards(), MoveTaskParams{Type: MoveToColumn, FromColumnID: f.todo.ID, FromTaskID: f.b.ID, ToColumnID: f.done.ID})

	if len(f.done.Tasks) != 1 {
		t.Fatalf("Expected 1 task in done, got %d", len(f.done.Tasks))
	}
	moved := f.done.Tasks[0]
	if moved.ID != f.b.ID || moved.Name != "b" || moved.Description != "task b" {
		t.Errorf("moved task changed: %+v", moved)
	}
}

func TestApplyMove_NoOps(t *testing.T) {
	tests := []struct {
		name   string
		params func(f *fixture) MoveTaskParams
	}{
		{
			name: "self move",
			params: func(f *fixture) MoveTaskParams {
				return MoveTaskParams{Type: MoveTaskOnTask, FromColumnID: f.todo.ID, FromTaskID: f.b.ID, ToColumnID: f.todo.ID, ToTaskID: f.b.ID, MoveTaskBefore: true}
			},
		},
		{
			name: "unknown source column",
			params: func(f *fixture) MoveTaskParams {
				return MoveTaskParams{Type: MoveToColumn, FromColumnID: types.NewColumnID(), FromTaskID: f.a.ID, ToColumnID: f.done.ID}
			},
		},
		{
			name: "unknown destination column",
			params: func(f *fixture) MoveTaskParams {
				return MoveTaskParams{Type: MoveToColumn, FromColumnID: f.todo.ID, FromTaskID: f.a.ID, ToColumnID: types.NewColumnID()}
			},
		},
		{
			name: "task not in source column",
			params: func(f *fixture) MoveTaskParams {
				return MoveTaskParams{Type: MoveToColumn, FromColumnID: f.doing.ID, FromTaskID: f.a.ID, ToColumnID: f.done.ID}
			},
		},
		{
			name: "unknown task",
			params: func(f *fixture) MoveTaskParams {
				return MoveTaskParams{Type: MoveToColumn, FromColumnID: f.todo.ID, FromTaskID: types.NewTaskID(), ToColumnID: f.done.ID}
			},
		},
		{
			name: "target task not in destination column",
			params: func(f *fixture) MoveTaskParams {
				return MoveTaskParams{Type: MoveTaskOnTask, FromColumnID: f.todo.ID, FromTaskID: f.a.ID, ToColumnID: f.doing.ID, ToTaskID: f.c.ID}
			},
		},
		{
			name: "unknown move type",
			params: func(f *fixture) MoveTaskParams {
				return MoveTaskParams{Type: "sideways", FromColumnID: f.todo.ID, FromTaskID: f.a.ID, ToColumnID: f.done.ID}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			before := models.CloneBoards(f.boards())

			if touched := applyMove(f.boards(), tt.params(f)); touched != nil {
				t.Errorf("expected no-op, touched %d columns", len(touched))
			}
			if !reflect.DeepEqual(before, f.boards()) {
				t.Error("no-op move changed board state")
			}
		})
	}
}

func TestMoveTaskParams_Validate(t *testing.T) {
	col, task := types.NewColumnID(), types.NewTaskID()

	tests := []struct {
		name    string
		params  MoveTaskParams
		wantErr error
	}{
		{"valid to column", MoveTaskParams{Type: MoveToColumn, FromColumnID: col, FromTaskID: task, ToColumnID: col}, nil},
		{"valid on task", MoveTaskParams{Type: MoveTaskOnTask, FromColumnID: col, FromTaskID: task, ToColumnID: col, ToTaskID: types.NewTaskID()}, nil},
		{"unknown type", MoveTaskParams{Type: "x", FromColumnID: col, FromTaskID: task, ToColumnID: col}, ErrInvalidMoveType},
		{"empty type", MoveTaskParams{FromColumnID: col, FromTaskID: task, ToColumnID: col}, ErrInvalidMoveType},
		{"bad from column", MoveTaskParams{Type: MoveToColumn, FromColumnID: "c1", FromTaskID: task, ToColumnID: col}, types.ErrInvalidID},
		{"bad task", MoveTaskParams{Type: MoveToColumn, FromColumnID: col, FromTaskID: "t1", ToColumnID: col}, types.ErrInvalidID},
		{"bad to column", MoveTaskParams{Type: MoveToColumn, FromColumnID: col, FromTaskID: task, ToColumnID: "b-1"}, types.ErrInvalidID},
		{"missing target", MoveTaskParams{Type: MoveTaskOnTask, FromColumnID: col, FromTaskID: task, ToColumnID: col}, ErrMissingTargetTask},
		{"bad target", MoveTaskParams{Type: MoveTaskOnTask, FromColumnID: col, FromTaskID: task, ToColumnID: col, ToTaskID: "bc-1"}, types.ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ============================================================================
// PROPERTY TESTS
// ============================================================================

// drawBoards builds a random board collection with unique IDs
func drawBoards(rt *rapid.T) []*models.Board {
	nBoards := rapid.IntRange(1, 3).Draw(rt, "boards")
	boards := make([]*models.Board, 0, nBoards)
	for i := 0; i < nBoards; i++ {
		b := models.NewBoard("board")
		nCols := rapid.IntRange(1, 4).Draw(rt, "columns")
		for j := 0; j < nCols; j++ {
			c := models.NewColumn("col")
			nTasks := rapid.IntRange(0, 5).Draw(rt, "tasks")
			for k := 0; k < nTasks; k++ {
				c.Tasks = append(c.Tasks, models.NewTask("task", ""))
			}
			b.Columns = append(b.Columns, c)
		}
		boards = append(boards, b)
	}
	return boards
}

// drawMove picks mostly existing IDs, sometimes unknown ones
func drawMove(rt *rapid.T, boards []*models.Board) MoveTaskParams {
	var columns []*models.Column
	var tasks []types.TaskID
	for _, b := range boards {
		for _, c := range b.Columns {
			columns = append(columns, c)
			for _, t := range c.Tasks {
				tasks = append(tasks, t.ID)
			}
		}
	}

	pickColumn := func(label string) types.ColumnID {
		if rapid.IntRange(0, 9).Draw(rt, label+"_unknown") == 0 {
			return types.NewColumnID()
		}
		return rapid.SampledFrom(columns).Draw(rt, label).ID
	}
	pickTask := func(label string) types.TaskID {
		if len(tasks) == 0 || rapid.IntRange(0, 9).Draw(rt, label+"_unknown") == 0 {
			return types.NewTaskID()
		}
		return rapid.SampledFrom(tasks).Draw(rt, label)
	}

	p := MoveTaskParams{
		Type:         rapid.SampledFrom([]MoveType{MoveToColumn, MoveTaskOnTask}).Draw(rt, "type"),
		FromColumnID: pickColumn("from_column"),
		FromTaskID:   pickTask("from_task"),
		ToColumnID:   pickColumn("to_column"),
	}
	if p.Type == MoveTaskOnTask {
		p.ToTaskID = pickTask("to_task")
		p.MoveTaskBefore = rapid.Bool().Draw(rt, "before")
	}
	return p
}

func TestProperty_MoveNeverDuplicatesOrDropsTasks(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		boards := drawBoards(rt)
		countsBefore := countTasks(boards)

		n := rapid.IntRange(1, 10).Draw(rt, "moves")
		for i := 0; i < n; i++ {
			applyMove(boards, drawMove(rt, boards))
		}

		countsAfter := countTasks(boards)
		if !reflect.DeepEqual(countsBefore, countsAfter) {
			rt.Fatalf("task multiset changed: before %v, after %v", countsBefore, countsAfter)
		}
		for id, n := range countsAfter {
			if n != 1 {
				rt.Fatalf("task %s appears in %d columns", id, n)
			}
		}
	})
}

func TestProperty_MovePlacesTaskNextToTarget(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		boards := drawBoards(rt)
		before := models.CloneBoards(boards)
		p := drawMove(rt, boards)

		touched := applyMove(boards, p)
		if touched == nil {
			if !reflect.DeepEqual(before, boards) {
				rt.Fatalf("no-op move changed state for %+v", p)
			}
			return
		}

		to := models.FindColumn(boards, p.ToColumnID)
		idx := to.TaskIndex(p.FromTaskID)
		if idx < 0 {
			rt.Fatalf("moved task not in destination column")
		}

		switch p.Type {
		case MoveToColumn:
			if idx != len(to.Tasks)-1 {
				rt.Fatalf("task at %d, want end of column (%d)", idx, len(to.Tasks)-1)
			}
		case MoveTaskOnTask:
			target := to.TaskIndex(p.ToTaskID)
			if p.MoveTaskBefore && idx != target-1 {
				rt.Fatalf("task at %d, want directly before target at %d", idx, target)
			}
			if !p.MoveTaskBefore && idx != target+1 {
				rt.Fatalf("task at %d, want directly after target at %d", idx, target)
			}
		}
	})
}
