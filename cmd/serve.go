package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/boards/internal/api"
	"github.com/thenoetrevino/boards/internal/app"
	"github.com/thenoetrevino/boards/internal/cli"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the boards over a JSON HTTP API",
		Long: `Serve the boards over HTTP until interrupted.

Routes:
  GET  /healthz
  GET  /api/boards
  POST /api/boards                      {"name": "..."}
  POST /api/boards/:boardID/columns     {"name": "..."}
  POST /api/columns/:columnID/tasks     {"name": "...", "description": "..."}
  POST /api/tasks/move                  move parameters
  GET  /api/events                      server-sent change events
  GET  /api/metrics`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "listen address (default from config, 127.0.0.1:8080)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.HTTP.Addr = addr
	}

	ctx := cmd.Context()
	application, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer application.Close()

	e := api.NewServer(application.Store, application.Events())
	fmt.Fprintf(cmd.OutOrStdout(), "Serving boards on http://%s\n", cfg.HTTP.Addr)
	return api.Run(ctx, e, cfg.HTTP.Addr)
}
