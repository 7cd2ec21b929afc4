// Package launcher starts the interactive board
package launcher

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/boards/internal/app"
	"github.com/thenoetrevino/boards/internal/config"
	"github.com/thenoetrevino/boards/internal/tui"
)

// Launch starts the TUI over a freshly opened app and blocks until the
// user quits or ctx is cancelled
func Launch(ctx context.Context, cfg *config.Config, opts ...tea.ProgramOption) error {
	application, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing app", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Live updates are optional; the board still refreshes after its own moves
	eventChan, err := application.Events().Listen(ctx)
	if err != nil {
		slog.Warn("failed to listen for board changes", "error", err)
		slog.Info("continuing without live updates")
		eventChan = nil
	}

	model := tui.InitialModel(ctx, application.Store, eventChan, application.Config)
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(model, opts...)

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}

	slog.Info("tui exited")
	return nil
}
