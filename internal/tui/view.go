package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/boards/internal/tui/components"
	"github.com/thenoetrevino/boards/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() string {
	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		return "Loading..."
	}

	switch m.UiState.Mode() {
	case state.HelpMode:
		return m.viewHelp()
	case state.ViewTaskMode:
		if view, ok := m.viewTask(); ok {
			return view
		}
	}

	return m.viewBoard()
}

// viewHelp shows the full key map in a centered box
func (m Model) viewHelp() string {
	h := m.help
	h.ShowAll = true

	content := components.TitleStyle.Render("Keyboard Shortcuts") + "\n\n" +
		h.View(m.keys) + "\n\n" +
		components.SubtleStyle.Render("Press any key to close")

	return lipgloss.Place(
		m.UiState.Width(), m.UiState.Height(),
		lipgloss.Center, lipgloss.Center,
		components.HelpBoxStyle.Render(content),
	)
}

// viewTask shows the selected task's details; false if the task vanished
func (m Model) viewTask() (string, bool) {
	task := m.getCurrentTask()
	col := m.getCurrentColumn()
	if task == nil || col == nil {
		return "", false
	}

	panel := components.RenderTaskView(components.TaskViewProps{
		Task:       task,
		ColumnName: col.Name,
		Width:      max(m.UiState.Width()*2/3, 40),
	})

	return lipgloss.Place(
		m.UiState.Width(), m.UiState.Height(),
		lipgloss.Center, lipgloss.Center,
		panel,
	), true
}

// viewBoard renders tabs, the visible columns, notifications and the
// short help line
func (m Model) viewBoard() string {
	var tabs []string
	for _, b := range m.boards {
		tabs = append(tabs, b.Name)
	}
	if len(tabs) == 0 {
		tabs = []string{"No Boards"}
	}
	tabBar := components.RenderTabs(tabs, m.UiState.SelectedBoard(), m.UiState.Width())

	footer := m.help.View(m.keys)

	allColumns := m.getCurrentColumns()
	if len(allColumns) == 0 {
		msg := "This board has no columns."
		if m.getCurrentBoard() == nil {
			msg = "No boards yet. Seed some with a seed file or the HTTP API."
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			tabBar, "", components.SubtleStyle.Render(msg), "", footer)
	}

	// Calculate visible columns based on viewport
	offset := min(m.UiState.ViewportOffset(), len(allColumns)-1)
	endIdx := min(offset+m.UiState.ViewportSize(), len(allColumns))
	visibleColumns := allColumns[offset:endIdx]

	columnHeight := m.UiState.ContentHeight()

	// Render only visible columns
	columns := make([]string, 0, len(visibleColumns))
	for i, col := range visibleColumns {
		globalIndex := offset + i
		columns = append(columns, components.RenderColumn(components.ColumnProps{
			Column:       col,
			Selected:     globalIndex == m.UiState.SelectedColumn(),
			SelectedTask: m.UiState.SelectedTask(),
			Height:       columnHeight,
			ScrollOffset: m.UiState.TaskScrollOffset(col.ID),
		}))
	}

	// Add scroll indicators
	leftArrow := " "
	rightArrow := " "
	if offset > 0 {
		leftArrow = "◀"
	}
	if endIdx < len(allColumns) {
		rightArrow = "▶"
	}

	columnsView := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	board := lipgloss.JoinHorizontal(lipgloss.Top, leftArrow, " ", columnsView, " ", rightArrow)

	totalTasks := 0
	for _, col := range allColumns {
		totalTasks += len(col.Tasks)
	}
	status := components.SubtleStyle.Render(
		fmt.Sprintf("%d columns  |  %d tasks", len(allColumns), totalTasks))

	elements := []string{tabBar, status}
	for _, n := range m.NotificationState.All() {
		if n.Level == state.LevelError {
			elements = append(elements, components.ErrorBannerStyle.Render("⚠ "+n.Message))
		} else {
			elements = append(elements, components.InfoBannerStyle.Render(n.Message))
		}
	}
	elements = append(elements, board, footer)

	return lipgloss.JoinVertical(lipgloss.Left, elements...)
}
