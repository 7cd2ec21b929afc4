package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boards/internal/models"
	"github.com/thenoetrevino/boards/internal/types"
)

// ColumnCmd returns the column command group
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage columns",
	}

	cmd.AddCommand(columnCreateCmd())

	return cmd
}

func columnCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Append a column to a board",
		Long: `Append a new, empty column to the end of a board.

Examples:
  boards column create --board=b-... --name="Review"

Writes only outlive the command with a sqlite backend whose dsn is a file
(storage.backend: sqlite, storage.dsn: /path/boards.db). With the default
memory backend every invocation starts from the seed file or a fresh
default board, whose IDs change on each run, and the change is discarded
on exit. Use "boards serve" and the HTTP API for a long-lived board.
`,
		Annotations: map[string]string{annotationWrites: "true"},
		RunE:        runColumnCreate,
	}

	cmd.Flags().String("board", "", "Board ID (required)")
	cmd.Flags().String("name", "", "Column name (required)")
	_ = cmd.MarkFlagRequired("board")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().String("id", "", "Column ID (generated when empty)")
	addOutputFlags(cmd)

	return cmd
}

func runColumnCreate(cmd *cobra.Command, args []string) error {
	boardID, _ := cmd.Flags().GetString("board")
	name, _ := cmd.Flags().GetString("name")
	id, _ := cmd.Flags().GetString("id")

	return run(cmd, "COLUMN_CREATE_ERROR", func(ctx context.Context, c *CLI, out *OutputFormatter) error {
		bid := types.BoardID(boardID)
		if err := bid.Validate(); err != nil {
			return err
		}
		if _, ok := c.App.Store.Board(bid); !ok {
			return fmt.Errorf("board %s: %w", bid, ErrNotFound)
		}

		column := models.NewColumn(name)
		if id != "" {
			column.ID = types.ColumnID(id)
		}
		if err := c.App.Store.CreateBoardColumn(ctx, bid, column); err != nil {
			return err
		}
		return out.Success(column)
	})
}
