package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boards/internal/models"
	"github.com/thenoetrevino/boards/internal/types"
)

// BoardCmd returns the board command group
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage boards",
	}

	cmd.AddCommand(boardCreateCmd())
	cmd.AddCommand(boardListCmd())

	return cmd
}

func boardCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new empty board",
		Long: `Create a new board with no columns.

Examples:
  boards board create --name="Sprint 12"

  # Quiet mode for bash capture
  BOARD_ID=$(boards board create --name="Sprint 12" --quiet)

Writes only outlive the command with a sqlite backend whose dsn is a file
(storage.backend: sqlite, storage.dsn: /path/boards.db). With the default
memory backend every invocation starts from the seed file or a fresh
default board, whose IDs change on each run, and the change is discarded
on exit. Use "boards serve" and the HTTP API for a long-lived board.
`,
		Annotations: map[string]string{annotationWrites: "true"},
		RunE:        runBoardCreate,
	}

	cmd.Flags().String("name", "", "Board name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().String("id", "", "Board ID (generated when empty)")
	addOutputFlags(cmd)

	return cmd
}

func runBoardCreate(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	id, _ := cmd.Flags().GetString("id")

	return run(cmd, "BOARD_CREATE_ERROR", func(ctx context.Context, c *CLI, out *OutputFormatter) error {
		board := models.NewBoard(name)
		if id != "" {
			board.ID = types.BoardID(id)
		}
		if err := c.App.Store.CreateBoard(ctx, board); err != nil {
			return err
		}
		return out.Success(board)
	})
}

func boardListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all boards with their columns and tasks",
		RunE:  runBoardList,
	}
	addOutputFlags(cmd)
	return cmd
}

func runBoardList(cmd *cobra.Command, args []string) error {
	return run(cmd, "BOARD_FETCH_ERROR", func(ctx context.Context, c *CLI, out *OutputFormatter) error {
		boards := c.App.Store.Boards()

		if out.Quiet {
			for _, b := range boards {
				fmt.Fprintln(out.out(), b.ID)
			}
			return nil
		}

		if out.JSON {
			return json.NewEncoder(out.out()).Encode(map[string]any{
				"success": true,
				"boards":  boards,
			})
		}

		if len(boards) == 0 {
			fmt.Fprintln(out.out(), "No boards found")
			return nil
		}
		for _, b := range boards {
			printBoardTree(out, b)
		}
		return nil
	})
}

// printBoardTree writes a board and its contents as an indented tree
func printBoardTree(out *OutputFormatter, b *models.Board) {
	w := out.out()
	fmt.Fprintf(w, "%s (%s)\n", b.Name, b.ID)
	for _, col := range b.Columns {
		fmt.Fprintf(w, "  %s (%s) [%d]\n", col.Name, col.ID, len(col.Tasks))
		for _, task := range col.Tasks {
			fmt.Fprintf(w, "    - %s (%s)\n", task.Name, task.ID)
		}
	}
}
