package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/boards/internal/models"
)

// ColumnProps is everything RenderColumn needs to draw one column
type ColumnProps struct {
	Column *models.Column

	// Selected marks the column holding the cursor
	Selected bool

	// SelectedTask is the index of the highlighted task; ignored unless Selected
	SelectedTask int

	// Height is the total box height including borders (0 for auto)
	Height int

	// ScrollOffset is the index of the first visible task
	ScrollOffset int
}

// VisibleTasks returns how many task cards fit in a column of the given height
func VisibleTasks(height int) int {
	available := height - columnBorderOverhead - headerLines - topIndicatorLines - 1
	return max(available/TaskCardHeight, 1)
}

// RenderColumn renders a complete column with its title and tasks
//
// Layout:
//
//	{Column Name} ({count})
//	▲ (if scrolled down)
//	{Task 1}
//	{Task 2}
//	...
//	▼ (if more tasks below)
func RenderColumn(props ColumnProps) string {
	tasks := props.Column.Tasks

	// Render column title with task count
	header := fmt.Sprintf("%s (%d)", props.Column.Name, len(tasks))
	content := TitleStyle.Render(header) + "\n"

	if len(tasks) == 0 {
		content += SubtleStyle.Padding(1, 0).Render("No tasks")
	} else {
		maxVisible := len(tasks)
		if props.Height > 0 {
			maxVisible = VisibleTasks(props.Height)
		}

		offset := min(max(props.ScrollOffset, 0), len(tasks)-1)

		// Always reserve space for top indicator
		if offset > 0 {
			content += IndicatorStyle.Render("▲ more above") + "\n"
		} else {
			content += "\n"
		}

		end := min(offset+maxVisible, len(tasks))
		cards := make([]string, 0, end-offset)
		for i := offset; i < end; i++ {
			cards = append(cards, RenderTask(tasks[i], props.Selected && i == props.SelectedTask))
		}
		content += strings.Join(cards, "\n")

		if end < len(tasks) {
			content += "\n" + IndicatorStyle.Render("▼ more below")
		}
	}

	// Apply column styling with selection highlight and fixed height
	style := ColumnStyle
	if props.Selected {
		style = style.BorderForeground(lipgloss.Color(colors.SelectedBorder))
	}
	if props.Height > 0 {
		// Subtract 2 for top and bottom borders since .Height() sets content area height
		style = style.Height(props.Height - 2)
	}

	return style.Render(content)
}
