package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boards/internal/database"
	"github.com/thenoetrevino/boards/internal/models"
	"github.com/thenoetrevino/boards/internal/types"
)

// TaskCmd returns the task command group
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(taskCreateCmd())
	cmd.AddCommand(taskMoveCmd())

	return cmd
}

func taskCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Append a task to a column",
		Long: `Append a new task to the end of a column.

Examples:
  boards task create --column=bc-... --name="Fix login"

  # With a markdown description
  boards task create --column=bc-... --name="Fix login" \
    --description="Users on **Safari** are logged out"

Writes only outlive the command with a sqlite backend whose dsn is a file
(storage.backend: sqlite, storage.dsn: /path/boards.db). With the default
memory backend every invocation starts from the seed file or a fresh
default board, whose IDs change on each run, and the change is discarded
on exit. Use "boards serve" and the HTTP API for a long-lived board.
`,
		Annotations: map[string]string{annotationWrites: "true"},
		RunE:        runTaskCreate,
	}

	cmd.Flags().String("column", "", "Column ID (required)")
	cmd.Flags().String("name", "", "Task name (required)")
	_ = cmd.MarkFlagRequired("column")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().String("description", "", "Task description (markdown)")
	cmd.Flags().String("id", "", "Task ID (generated when empty)")
	addOutputFlags(cmd)

	return cmd
}

func runTaskCreate(cmd *cobra.Command, args []string) error {
	columnID, _ := cmd.Flags().GetString("column")
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	id, _ := cmd.Flags().GetString("id")

	return run(cmd, "TASK_CREATE_ERROR", func(ctx context.Context, c *CLI, out *OutputFormatter) error {
		cid := types.ColumnID(columnID)
		if err := cid.Validate(); err != nil {
			return err
		}
		if _, ok := c.App.Store.FindColumn(cid); !ok {
			return fmt.Errorf("column %s: %w", cid, ErrNotFound)
		}

		task := models.NewTask(name, description)
		if id != "" {
			task.ID = types.TaskID(id)
		}
		if err := c.App.Store.CreateBoardTask(ctx, cid, task); err != nil {
			return err
		}
		return out.Success(task)
	})
}

func taskMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a task to another column or next to another task",
		Long: `Move a task.

With --type=move-to-column the task is appended to the end of --to-column.
With --type=move-task-on-task it is dropped before (--before) or after
--to-task inside --to-column. Moves that name tasks or columns that do not
exist are ignored.

Examples:
  boards task move --from-column=bc-1 --task=bt-1 --to-column=bc-2

  boards task move --type=move-task-on-task \
    --from-column=bc-1 --task=bt-1 --to-column=bc-1 --to-task=bt-3 --before

Writes only outlive the command with a sqlite backend whose dsn is a file
(storage.backend: sqlite, storage.dsn: /path/boards.db). With the default
memory backend every invocation starts from the seed file or a fresh
default board, whose IDs change on each run, and the change is discarded
on exit. Use "boards serve" and the HTTP API for a long-lived board.
`,
		Annotations: map[string]string{annotationWrites: "true"},
		RunE:        runTaskMove,
	}

	cmd.Flags().String("type", string(database.MoveToColumn), "Move type: move-to-column or move-task-on-task")
	cmd.Flags().String("from-column", "", "Column currently holding the task (required)")
	cmd.Flags().String("task", "", "Task to move (required)")
	cmd.Flags().String("to-column", "", "Destination column (required)")
	cmd.Flags().String("to-task", "", "Target task for move-task-on-task")
	cmd.Flags().Bool("before", false, "Drop before the target task instead of after it")
	_ = cmd.MarkFlagRequired("from-column")
	_ = cmd.MarkFlagRequired("task")
	_ = cmd.MarkFlagRequired("to-column")
	addOutputFlags(cmd)

	return cmd
}

func runTaskMove(cmd *cobra.Command, args []string) error {
	moveType, _ := cmd.Flags().GetString("type")
	fromColumn, _ := cmd.Flags().GetString("from-column")
	taskID, _ := cmd.Flags().GetString("task")
	toColumn, _ := cmd.Flags().GetString("to-column")
	toTask, _ := cmd.Flags().GetString("to-task")
	before, _ := cmd.Flags().GetBool("before")

	params := database.MoveTaskParams{
		Type:           database.MoveType(moveType),
		FromColumnID:   types.ColumnID(fromColumn),
		FromTaskID:     types.TaskID(taskID),
		ToColumnID:     types.ColumnID(toColumn),
		ToTaskID:       types.TaskID(toTask),
		MoveTaskBefore: before,
	}

	return run(cmd, "TASK_MOVE_ERROR", func(ctx context.Context, c *CLI, out *OutputFormatter) error {
		if err := c.App.Store.MoveBoardTask(ctx, params); err != nil {
			return err
		}

		task, col, ok := c.App.Store.FindTask(params.FromTaskID)
		if !ok {
			return out.Success("Task not found; nothing moved")
		}
		if out.Quiet {
			return out.Success(task)
		}
		if out.JSON {
			return out.Success(map[string]any{
				"task":     task,
				"columnID": col.ID,
				"position": col.TaskIndex(task.ID),
			})
		}
		return out.Success(fmt.Sprintf("Task %q is now at position %d in %q",
			task.Name, col.TaskIndex(task.ID), col.Name))
	})
}
