package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/boards/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case RefreshMsg:
		slog.Debug("refreshing board",
			"board_id", msg.Event.BoardID,
			"sequence", msg.Event.SequenceID)
		m.refresh()

		// Continue listening for more events
		return m, subscribeToEvents(m.Ctx, m.EventChan)

	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.help.Width = msg.Width
		m.UiState.ClampViewport(len(m.getCurrentColumns()))
		return m, nil

	case tea.KeyMsg:
		switch m.UiState.Mode() {
		case state.ViewTaskMode:
			return m.handleViewTaskMode(msg)
		case state.HelpMode:
			return m.handleHelpMode(msg)
		default:
			return m.handleNormalMode(msg)
		}
	}

	return m, nil
}

// handleViewTaskMode closes the detail panel on view/back keys
func (m Model) handleViewTaskMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.handleQuit()
	}
	if key.Matches(msg, m.keys.Back, m.keys.ViewTask, m.keys.Quit) {
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// handleHelpMode closes the help screen on any key
func (m Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.handleQuit()
	}
	m.UiState.SetMode(state.NormalMode)
	return m, nil
}
