package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/boards/internal/config"
	"github.com/thenoetrevino/boards/internal/database"
	"github.com/thenoetrevino/boards/internal/events"
	"github.com/thenoetrevino/boards/internal/models"
	"github.com/thenoetrevino/boards/internal/tui/components"
	"github.com/thenoetrevino/boards/internal/tui/state"
)

// Store is the part of store.BoardsStore the TUI reads and writes through
type Store interface {
	Boards() []*models.Board
	MoveBoardTask(ctx context.Context, params database.MoveTaskParams) error
}

// RefreshMsg is sent when the store announces a change
type RefreshMsg struct {
	Event events.Event
}

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	Config *config.Config

	store     Store
	EventChan <-chan events.Event

	// boards is the store snapshot being rendered
	boards []*models.Board

	UiState           *state.UIState
	NotificationState *state.NotificationState

	keys keyMap
	help help.Model
}

// InitialModel creates the TUI model over store. eventChan may be nil, in
// which case the board only refreshes after the TUI's own moves.
func InitialModel(ctx context.Context, store Store, eventChan <-chan events.Event, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	components.InitStyles(cfg.ColorScheme)

	m := Model{
		Ctx:               ctx,
		Config:            cfg,
		store:             store,
		EventChan:         eventChan,
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		keys:              newKeyMap(cfg.KeyMappings),
		help:              help.New(),
	}
	m.refresh()
	return m
}

// Init starts listening for store changes
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return subscribeToEvents(m.Ctx, m.EventChan)
}

// subscribeToEvents returns a command that waits for the next change event
// and turns it into a RefreshMsg. Returns nil if there is no channel.
func subscribeToEvents(ctx context.Context, ch <-chan events.Event) tea.Cmd {
	if ch == nil {
		return nil
	}

	return func() tea.Msg {
		select {
		case event, ok := <-ch:
			if !ok {
				slog.Info("event channel closed")
				return nil
			}
			return RefreshMsg{Event: event}
		case <-ctx.Done():
			return nil
		}
	}
}

// refresh reloads the snapshot from the store and clamps the selection
// to what still exists
func (m *Model) refresh() {
	m.boards = m.store.Boards()

	if m.UiState.SelectedBoard() >= len(m.boards) {
		m.UiState.SetSelectedBoard(max(len(m.boards)-1, 0))
	}

	columns := m.getCurrentColumns()
	if m.UiState.SelectedColumn() >= len(columns) {
		m.UiState.SetSelectedColumn(max(len(columns)-1, 0))
	}

	tasks := m.getCurrentTasks()
	if m.UiState.SelectedTask() >= len(tasks) {
		m.UiState.SetSelectedTask(max(len(tasks)-1, 0))
	}

	m.UiState.ClampViewport(len(columns))
}

// getCurrentBoard returns the board shown on screen, or nil if there are none
func (m Model) getCurrentBoard() *models.Board {
	idx := m.UiState.SelectedBoard()
	if idx < 0 || idx >= len(m.boards) {
		return nil
	}
	return m.boards[idx]
}

// getCurrentColumns returns the columns of the current board
func (m Model) getCurrentColumns() []*models.Column {
	board := m.getCurrentBoard()
	if board == nil {
		return nil
	}
	return board.Columns
}

// getCurrentColumn returns the currently selected column
// Returns nil if there are no columns
func (m Model) getCurrentColumn() *models.Column {
	columns := m.getCurrentColumns()
	idx := m.UiState.SelectedColumn()
	if idx < 0 || idx >= len(columns) {
		return nil
	}
	return columns[idx]
}

// getCurrentTasks returns the tasks of the currently selected column
// Returns an empty slice if the column has no tasks
func (m Model) getCurrentTasks() []*models.Task {
	col := m.getCurrentColumn()
	if col == nil {
		return []*models.Task{}
	}
	return col.Tasks
}

// getCurrentTask returns the currently selected task
// Returns nil if there are no tasks in the current column or no columns exist
func (m Model) getCurrentTask() *models.Task {
	tasks := m.getCurrentTasks()
	idx := m.UiState.SelectedTask()
	if idx < 0 || idx >= len(tasks) {
		return nil
	}
	return tasks[idx]
}

// selectTask moves the cursor onto the task wherever it is on the current
// board. Returns false if the board no longer holds it.
func (m *Model) selectTask(task *models.Task) bool {
	for colIdx, col := range m.getCurrentColumns() {
		if taskIdx := col.TaskIndex(task.ID); taskIdx >= 0 {
			m.UiState.SetSelectedColumn(colIdx)
			m.UiState.SetSelectedTask(taskIdx)
			m.UiState.EnsureSelectionVisible(colIdx)
			m.ensureTaskVisible()
			return true
		}
	}
	return false
}

// ensureTaskVisible scrolls the current column so the selected task is on screen
func (m *Model) ensureTaskVisible() {
	col := m.getCurrentColumn()
	if col == nil {
		return
	}
	m.UiState.EnsureTaskVisible(col.ID, m.UiState.SelectedTask(), components.VisibleTasks(m.UiState.ContentHeight()))
}
