package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/boards/internal/app"
	"github.com/thenoetrevino/boards/internal/cli"
	"github.com/thenoetrevino/boards/internal/seed"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all boards as a seed file",
		Long: `Write every board as YAML in the seed file format, so it can be
loaded again with the seed_file config option.

Examples:
  boards export > boards.yaml
  boards export --output boards.yaml`,
		RunE: runExport,
	}

	cmd.Flags().StringP("output", "o", "", "write to a file instead of stdout")
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	application, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer application.Close()

	w := cmd.OutOrStdout()
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}

	return seed.Export(w, application.Store.Boards())
}
