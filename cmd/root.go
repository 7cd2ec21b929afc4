package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/boards/internal/cli"
	"github.com/thenoetrevino/boards/internal/launcher"
	"github.com/thenoetrevino/boards/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "boards",
	Short: "Boards - kanban boards in the terminal and over HTTP",
	Long: `Boards keeps kanban boards of columns and tasks.

Run without a subcommand to open the interactive board, or use
"boards serve" to expose the same boards over a JSON HTTP API.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initLogging,
	PersistentPostRun: closeLogging,
	RunE:              runTUI,
}

// logCloser is the log file opened by initLogging
var logCloser io.Closer

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default $XDG_CONFIG_HOME/boards/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(cli.BoardCmd())
	rootCmd.AddCommand(cli.ColumnCmd())
	rootCmd.AddCommand(cli.TaskCmd())
}

// Execute runs the root command with a context cancelled on SIGINT/SIGTERM
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !cli.IsReported(err) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// initLogging routes logs to the state dir at the configured level.
// The --log-level flag wins over the config file. Config errors are left
// for the command itself to report.
func initLogging(cmd *cobra.Command, args []string) error {
	level := ""
	if cfg, err := cli.LoadConfig(cmd); err == nil {
		level = cfg.LogLevel
	}
	if flag, _ := cmd.Flags().GetString("log-level"); flag != "" {
		level = flag
	}

	closer, err := logging.Init(level)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logCloser = closer
	return nil
}

func closeLogging(cmd *cobra.Command, args []string) {
	if logCloser == nil {
		return
	}
	if err := logCloser.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "error closing log file: %v\n", err)
	}
	logCloser = nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("starting tui", "backend", cfg.Storage.Backend)
	return launcher.Launch(cmd.Context(), cfg, tea.WithAltScreen())
}
