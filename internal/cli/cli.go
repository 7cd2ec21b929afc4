package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boards/internal/app"
	"github.com/thenoetrevino/boards/internal/config"
	"github.com/thenoetrevino/boards/internal/database"
)

// annotationWrites marks commands that change boards
const annotationWrites = "writes"

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with the store and repository
}

// NewCLI opens the configured repository for a single command
func NewCLI(ctx context.Context, cfg *config.Config, opts ...app.Option) (*CLI, error) {
	application, err := app.New(ctx, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}
	return &CLI{App: application}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}

// LoadConfig reads the file named by the --config flag, or the default
// config location when the flag is empty
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}

// Persistent reports whether writes survive the process: only sqlite with
// a file DSN does
func Persistent(cfg *config.Config) bool {
	if cfg.Storage.Backend != config.BackendSQLite {
		return false
	}
	dsn := cfg.Storage.DSN
	return dsn != "" && dsn != database.DefaultDSN && !strings.Contains(dsn, "mode=memory")
}

// run loads config, opens the app, and hands both to fn. Errors are
// reported through the formatter before being returned.
func run(cmd *cobra.Command, code string, fn func(ctx context.Context, c *CLI, out *OutputFormatter) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := NewOutputFormatter(cmd)

	cfg, err := LoadConfig(cmd)
	if err != nil {
		out.Error("CONFIG_ERROR", err.Error())
		return reported{err}
	}

	if cmd.Annotations[annotationWrites] == "true" && !Persistent(cfg) && !out.JSON && !out.Quiet {
		fmt.Fprintln(out.errOut(), "Note: storage is not persistent; this change is discarded when the command exits")
	}

	c, err := NewCLI(ctx, cfg)
	if err != nil {
		out.Error("INITIALIZATION_ERROR", err.Error())
		return reported{err}
	}
	defer func() {
		if err := c.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}()

	if err := fn(ctx, c, out); err != nil {
		out.ErrorWithSuggestion(code, err.Error(), Suggestion(err))
		return reported{err}
	}
	return nil
}

// reported marks an error the formatter has already shown to the user
type reported struct{ err error }

func (r reported) Error() string { return r.err.Error() }
func (r reported) Unwrap() error { return r.err }

// IsReported reports whether err was already written by a command's
// output formatter
func IsReported(err error) bool {
	var r reported
	return errors.As(err, &r)
}

// addOutputFlags adds the agent-friendly output flags
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}
