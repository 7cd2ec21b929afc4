package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/boards/internal/models"
)

// TaskViewProps is everything RenderTaskView needs to draw the detail panel
type TaskViewProps struct {
	Task       *models.Task
	ColumnName string
	Width      int
}

// RenderTaskView renders the task detail panel: name, column, and the
// description rendered as markdown
func RenderTaskView(props TaskViewProps) string {
	// Border and horizontal padding
	contentWidth := max(props.Width-6, 20)

	parts := []string{
		TitleStyle.Render(props.Task.Name),
		SubtleStyle.Render("in " + props.ColumnName + "  " + string(props.Task.ID)),
		"",
		RenderDescription(props.Task.Description, contentWidth),
		"",
		SubtleStyle.Render(TaskViewFooter),
	}

	body := lipgloss.NewStyle().Width(contentWidth).Render(strings.Join(parts, "\n"))
	return TaskViewBoxStyle.Render(body)
}
