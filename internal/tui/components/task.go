package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/boards/internal/models"
)

// RenderTask renders a single task as a card
//
//	╭──────────────────────────╮
//	│ {Task Name}              │
//	│ {first description line} │
//	╰──────────────────────────╯
//
// This has a fixed width and height.
func RenderTask(task *models.Task, selected bool) string {
	title := lipgloss.NewStyle().Bold(true).Render(truncate(task.Name))

	hint := SubtleStyle.Render("no description")
	if line := firstLine(task.Description); line != "" {
		hint = SubtleStyle.Italic(false).Render(truncate(line))
	}

	style := TaskStyle
	if selected {
		style = style.BorderForeground(lipgloss.Color(colors.SelectedBorder))
	}
	return style.Render(title + "\n" + hint)
}

// truncate shortens s to the card width, marking the cut with an ellipsis
func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= taskTitleMaxLength {
		return s
	}
	return string(runes[:taskTitleMaxLength]) + "..."
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
