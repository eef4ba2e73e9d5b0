package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kcurtet/todo/internal/clock"
	"github.com/kcurtet/todo/internal/errors"
	"github.com/kcurtet/todo/internal/task"
	"github.com/kcurtet/todo/internal/tui"
)

// editFlags holds the flags for the edit command.
type editFlags struct {
	description string
	priority    int
	due         string
	tags        []string
}

// newEditCmd creates the edit command.
func newEditCmd(global *GlobalFlags) *cobra.Command {
	flags := &editFlags{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing task",
		Long: `Edit fields of an existing task.

Only the fields named by flags change. Description, priority and due
date are overwritten; tags are added to the existing set, never
replaced.

Examples:
  todo edit 3 --description "Buy oat milk"
  todo edit 3 -p 1 -d "next friday"
  todo edit 3 -t urgent -t groceries`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd.Context(), cmd, cmd.OutOrStdout(), args[0], flags, global)
		},
	}

	cmd.Flags().StringVarP(&flags.description, "description", "m", "", "new description")
	cmd.Flags().IntVarP(&flags.priority, "priority", "p", 0, "new priority (1-5, 1 = highest)")
	cmd.Flags().StringVarP(&flags.due, "due", "d", "", "new due date (YYYY-MM-DD, today, tomorrow, friday, ...)")
	cmd.Flags().StringArrayVarP(&flags.tags, "tag", "t", nil, "tag to add (repeatable)")

	return cmd
}

// runEdit executes the edit command.
func runEdit(ctx context.Context, cmd *cobra.Command, w io.Writer, arg string, flags *editFlags, global *GlobalFlags) error {
	id, err := parseTaskID(arg)
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("description") && !cmd.Flags().Changed("priority") &&
		!cmd.Flags().Changed("due") && !cmd.Flags().Changed("tag") {
		return fmt.Errorf("%w: nothing to change, pass at least one of --description, --priority, --due, --tag", errors.ErrInvalidArgument)
	}

	opts := task.EditOptions{
		Due:  flags.due,
		Tags: flags.tags,
	}
	if cmd.Flags().Changed("description") {
		if strings.TrimSpace(flags.description) == "" {
			return fmt.Errorf("%w: description cannot be blanked out", errors.ErrEmptyDescription)
		}
		opts.Description = flags.description
	}
	if cmd.Flags().Changed("priority") {
		opts.Priority = &flags.priority
	}

	out := tui.NewOutput(w, global.Output)
	mgr := task.NewManager(task.ResolveDataFilePath(global.DataFile), clock.RealClock{})

	edited, err := mgr.Edit(ctx, id, opts)
	if err != nil {
		return err
	}

	logger := GetLogger()
	logger.Info().Uint64("task_id", id).Msg("task edited")

	if global.Output == OutputJSON {
		return out.JSON(edited)
	}
	out.Success(fmt.Sprintf("Task %d updated", id))
	return nil
}
