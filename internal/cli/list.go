package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/kcurtet/todo/internal/clock"
	"github.com/kcurtet/todo/internal/task"
	"github.com/kcurtet/todo/internal/tui"
)

// listFlags holds the flags for the list command.
type listFlags struct {
	tag        string
	excludeTag string
	completed  bool
}

// newListCmd creates the list command.
func newListCmd(global *GlobalFlags) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks, sorted by due date, priority and age.

Completed tasks are hidden unless --completed is given. Tag filters
combine: --tag keeps only tasks carrying the tag, --exclude-tag drops
tasks carrying it.

Examples:
  todo list
  todo list --tag work --exclude-tag urgent
  todo list --completed -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), cmd.OutOrStdout(), flags, global)
		},
	}

	cmd.Flags().StringVarP(&flags.tag, "tag", "t", "", "only show tasks with this tag")
	cmd.Flags().StringVar(&flags.excludeTag, "exclude-tag", "", "hide tasks with this tag")
	cmd.Flags().BoolVarP(&flags.completed, "completed", "c", false, "include completed tasks")

	return cmd
}

// runList executes the list command.
func runList(ctx context.Context, w io.Writer, flags *listFlags, global *GlobalFlags) error {
	out := tui.NewOutput(w, global.Output)
	clk := clock.RealClock{}
	mgr := task.NewManager(task.ResolveDataFilePath(global.DataFile), clk)

	tasks, summary, err := mgr.List(ctx, task.Filter{
		IncludeTag:    flags.tag,
		ExcludeTag:    flags.excludeTag,
		ShowCompleted: flags.completed,
	})
	if err != nil {
		return err
	}

	if global.Output == OutputJSON {
		return out.JSON(tasks)
	}

	if len(tasks) == 0 {
		out.Info("No tasks found matching the criteria")
		return nil
	}

	renderer := tui.NewRenderer(w, clk)
	renderer.TaskList(tasks)
	renderer.Summary(summary)

	logger := GetLogger()
	logger.Debug().
		Int("shown", summary.Shown).
		Int("total", summary.Total).
		Msg("listed tasks")

	return nil
}
