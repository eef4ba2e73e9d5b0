package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kcurtet/todo/internal/clock"
	"github.com/kcurtet/todo/internal/task"
	"github.com/kcurtet/todo/internal/tui"
)

// newCompleteCmd creates the complete command.
func newCompleteCmd(global *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a task as complete",
		Long: `Mark a task as complete.

Completing an already-completed task is a no-op and keeps the original
completion timestamp.

Examples:
  todo complete 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComplete(cmd.Context(), cmd.OutOrStdout(), args[0], global)
		},
	}
}

// runComplete executes the complete command.
func runComplete(ctx context.Context, w io.Writer, arg string, global *GlobalFlags) error {
	id, err := parseTaskID(arg)
	if err != nil {
		return err
	}

	out := tui.NewOutput(w, global.Output)
	mgr := task.NewManager(task.ResolveDataFilePath(global.DataFile), clock.RealClock{})

	completed, transitioned, err := mgr.Complete(ctx, id)
	if err != nil {
		return err
	}

	logger := GetLogger()
	logger.Info().
		Uint64("task_id", id).
		Bool("transitioned", transitioned).
		Msg("task completed")

	if global.Output == OutputJSON {
		return out.JSON(completed)
	}
	if !transitioned {
		out.Info(fmt.Sprintf("Task %d is already completed", id))
		return nil
	}
	out.Success(fmt.Sprintf("Task %d marked as complete", id))
	return nil
}
