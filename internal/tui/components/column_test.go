package components

import (
	"strings"
	"testing"

	"github.com/thenoetrevino/boards/internal/models"
)

func columnWithTasks(name string, n int) *models.Column {
	col := models.NewColumn(name)
	for i := 0; i < n; i++ {
		col.Tasks = append(col.Tasks, models.NewTask("task "+string(rune('a'+i)), ""))
	}
	return col
}

func TestRenderColumnHeader(t *testing.T) {
	tests := []struct {
		name     string
		column   *models.Column
		wantText string
	}{
		{"empty column", columnWithTasks("Backlog", 0), "Backlog (0)"},
		{"single task", columnWithTasks("In Progress", 1), "In Progress (1)"},
		{"multiple tasks", columnWithTasks("Done", 3), "Done (3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RenderColumn(ColumnProps{Column: tt.column})
			if !strings.Contains(result, tt.wantText) {
				t.Errorf("RenderColumn() = %q, want to contain %q", result, tt.wantText)
			}
		})
	}
}

func TestRenderColumn_EmptyState(t *testing.T) {
	result := RenderColumn(ColumnProps{Column: columnWithTasks("Todo", 0)})
	if !strings.Contains(result, "No tasks") {
		t.Errorf("empty column should say 'No tasks', got %q", result)
	}
}

func TestRenderColumn_ScrollIndicators(t *testing.T) {
	col := columnWithTasks("Todo", 10)
	height := columnBorderOverhead + headerLines + topIndicatorLines + 1 + 2*TaskCardHeight

	top := RenderColumn(ColumnProps{Column: col, Height: height})
	if strings.Contains(top, "more above") {
		t.Error("unscrolled column should not show 'more above'")
	}
	if !strings.Contains(top, "more below") {
		t.Error("overflowing column should show 'more below'")
	}

	bottom := RenderColumn(ColumnProps{Column: col, Height: height, ScrollOffset: 8})
	if !strings.Contains(bottom, "more above") {
		t.Error("scrolled column should show 'more above'")
	}
	if strings.Contains(bottom, "more below") {
		t.Error("column scrolled to the end should not show 'more below'")
	}
	if !strings.Contains(bottom, "task j") || strings.Contains(bottom, "task a") {
		t.Errorf("expected only the last tasks, got %q", bottom)
	}
}

func TestVisibleTasks_Minimum(t *testing.T) {
	if got := VisibleTasks(0); got != 1 {
		t.Errorf("VisibleTasks(0) = %d, want 1", got)
	}
}

func TestRenderTask_Truncates(t *testing.T) {
	task := models.NewTask(strings.Repeat("x", 40), "first line\nsecond line")
	result := RenderTask(task, false)

	if !strings.Contains(result, "...") {
		t.Error("long name should be truncated with an ellipsis")
	}
	if !strings.Contains(result, "first line") || strings.Contains(result, "second line") {
		t.Errorf("card should show only the first description line, got %q", result)
	}
}

func TestRenderDescription(t *testing.T) {
	if got := RenderDescription("  ", 40); !strings.Contains(got, "No description") {
		t.Errorf("blank description = %q, want placeholder", got)
	}

	got := RenderDescription("# Heading\n\nsome **bold** text", 40)
	if !strings.Contains(got, "Heading") || !strings.Contains(got, "bold") {
		t.Errorf("rendered description lost content: %q", got)
	}
}

func TestRenderTabs(t *testing.T) {
	result := RenderTabs([]string{"Sprint", "Personal"}, 1, 80)
	if !strings.Contains(result, "Sprint") || !strings.Contains(result, "Personal") {
		t.Errorf("RenderTabs() = %q, want both tab names", result)
	}
}
