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

// newDeleteCmd creates the delete command.
func newDeleteCmd(global *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Long: `Delete a task from the store permanently.

Identifiers are never reused: tasks added later keep counting upward.

Examples:
  todo delete 3
  todo rm 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd.Context(), cmd.OutOrStdout(), args[0], global)
		},
	}
}

// runDelete executes the delete command.
func runDelete(ctx context.Context, w io.Writer, arg string, global *GlobalFlags) error {
	id, err := parseTaskID(arg)
	if err != nil {
		return err
	}

	out := tui.NewOutput(w, global.Output)
	mgr := task.NewManager(task.ResolveDataFilePath(global.DataFile), clock.RealClock{})

	if err := mgr.Delete(ctx, id); err != nil {
		return err
	}

	logger := GetLogger()
	logger.Info().Uint64("task_id", id).Msg("task deleted")

	if global.Output == OutputJSON {
		return out.JSON(map[string]uint64{"deleted": id})
	}
	out.Success(fmt.Sprintf("Task %d deleted", id))
	return nil
}
