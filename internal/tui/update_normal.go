package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/boards/internal/database"
	"github.com/thenoetrevino/boards/internal/models"
	"github.com/thenoetrevino/boards/internal/tui/state"
)

func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m.handleQuit()
	case key.Matches(msg, k.ShowHelp):
		return m.handleShowHelp()
	case key.Matches(msg, k.ViewTask):
		return m.handleViewTask()
	case key.Matches(msg, k.PrevColumn):
		return m.handleNavigateLeft()
	case key.Matches(msg, k.NextColumn):
		return m.handleNavigateRight()
	case key.Matches(msg, k.PrevTask):
		return m.handleNavigateUp()
	case key.Matches(msg, k.NextTask):
		return m.handleNavigateDown()
	case key.Matches(msg, k.MoveTaskLeft):
		return m.handleMoveTaskLeft()
	case key.Matches(msg, k.MoveTaskRight):
		return m.handleMoveTaskRight()
	case key.Matches(msg, k.MoveTaskUp):
		return m.handleMoveTaskUp()
	case key.Matches(msg, k.MoveTaskDown):
		return m.handleMoveTaskDown()
	case key.Matches(msg, k.PrevBoard):
		return m.handlePrevBoard()
	case key.Matches(msg, k.NextBoard):
		return m.handleNextBoard()
	}

	return m, nil
}

func (m Model) handleQuit() (tea.Model, tea.Cmd) {
	return m, tea.Quit
}

func (m Model) handleShowHelp() (tea.Model, tea.Cmd) {
	m.UiState.SetMode(state.HelpMode)
	return m, nil
}

func (m Model) handleViewTask() (tea.Model, tea.Cmd) {
	if m.getCurrentTask() == nil {
		m.NotificationState.Add(state.LevelInfo, "No task selected")
		return m, nil
	}
	m.UiState.SetMode(state.ViewTaskMode)
	return m, nil
}

func (m Model) handleNavigateLeft() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedColumn() > 0 {
		m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() - 1)
		m.UiState.SetSelectedTask(0)
		m.UiState.EnsureSelectionVisible(m.UiState.SelectedColumn())
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the first column")
	}
	return m, nil
}

func (m Model) handleNavigateRight() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedColumn() < len(m.getCurrentColumns())-1 {
		m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() + 1)
		m.UiState.SetSelectedTask(0)
		m.UiState.EnsureSelectionVisible(m.UiState.SelectedColumn())
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the last column")
	}
	return m, nil
}

func (m Model) handleNavigateUp() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedTask() > 0 {
		m.UiState.SetSelectedTask(m.UiState.SelectedTask() - 1)
		m.ensureTaskVisible()
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the first task")
	}
	return m, nil
}

func (m Model) handleNavigateDown() (tea.Model, tea.Cmd) {
	tasks := m.getCurrentTasks()
	if len(tasks) > 0 && m.UiState.SelectedTask() < len(tasks)-1 {
		m.UiState.SetSelectedTask(m.UiState.SelectedTask() + 1)
		m.ensureTaskVisible()
	} else if len(tasks) > 0 {
		m.NotificationState.Add(state.LevelInfo, "Already at the last task")
	}
	return m, nil
}

func (m Model) handlePrevBoard() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedBoard() > 0 {
		m.UiState.SetSelectedBoard(m.UiState.SelectedBoard() - 1)
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the first board")
	}
	return m, nil
}

func (m Model) handleNextBoard() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedBoard() < len(m.boards)-1 {
		m.UiState.SetSelectedBoard(m.UiState.SelectedBoard() + 1)
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the last board")
	}
	return m, nil
}

// handleMoveTaskLeft moves the selected task to the end of the previous column
func (m Model) handleMoveTaskLeft() (tea.Model, tea.Cmd) {
	return m.moveToNeighbourColumn(-1, "Already at the first column")
}

// handleMoveTaskRight moves the selected task to the end of the next column
func (m Model) handleMoveTaskRight() (tea.Model, tea.Cmd) {
	return m.moveToNeighbourColumn(1, "Already at the last column")
}

func (m Model) moveToNeighbourColumn(step int, edgeMessage string) (tea.Model, tea.Cmd) {
	task := m.getCurrentTask()
	if task == nil {
		return m, nil
	}

	columns := m.getCurrentColumns()
	target := m.UiState.SelectedColumn() + step
	if target < 0 || target >= len(columns) {
		m.NotificationState.Add(state.LevelInfo, edgeMessage)
		return m, nil
	}

	m.moveTask(task, database.MoveTaskParams{
		Type:         database.MoveToColumn,
		FromColumnID: m.getCurrentColumn().ID,
		FromTaskID:   task.ID,
		ToColumnID:   columns[target].ID,
	})
	return m, nil
}

// handleMoveTaskUp drops the selected task before the task above it
func (m Model) handleMoveTaskUp() (tea.Model, tea.Cmd) {
	task := m.getCurrentTask()
	if task == nil {
		return m, nil
	}
	idx := m.UiState.SelectedTask()
	if idx == 0 {
		m.NotificationState.Add(state.LevelInfo, "Already at the top of the column")
		return m, nil
	}

	col := m.getCurrentColumn()
	m.moveTask(task, database.MoveTaskParams{
		Type:           database.MoveTaskOnTask,
		FromColumnID:   col.ID,
		FromTaskID:     task.ID,
		ToColumnID:     col.ID,
		ToTaskID:       col.Tasks[idx-1].ID,
		MoveTaskBefore: true,
	})
	return m, nil
}

// handleMoveTaskDown drops the selected task after the task below it
func (m Model) handleMoveTaskDown() (tea.Model, tea.Cmd) {
	task := m.getCurrentTask()
	if task == nil {
		return m, nil
	}
	col := m.getCurrentColumn()
	idx := m.UiState.SelectedTask()
	if idx >= len(col.Tasks)-1 {
		m.NotificationState.Add(state.LevelInfo, "Already at the bottom of the column")
		return m, nil
	}

	m.moveTask(task, database.MoveTaskParams{
		Type:           database.MoveTaskOnTask,
		FromColumnID:   col.ID,
		FromTaskID:     task.ID,
		ToColumnID:     col.ID,
		ToTaskID:       col.Tasks[idx+1].ID,
		MoveTaskBefore: false,
	})
	return m, nil
}

// moveTask sends the move through the store, reloads the snapshot, and
// keeps the cursor on the moved task
func (m *Model) moveTask(task *models.Task, params database.MoveTaskParams) {
	if err := m.store.MoveBoardTask(m.Ctx, params); err != nil {
		slog.Error("failed to move task",
			"task_id", task.ID,
			"type", params.Type,
			"error", err)
		m.NotificationState.Add(state.LevelError, "Failed to move task")
		return
	}

	m.refresh()
	if !m.selectTask(task) {
		slog.Debug("moved task no longer on board", "task_id", task.ID)
	}
}
