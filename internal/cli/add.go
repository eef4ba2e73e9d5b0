package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/kcurtet/todo/internal/clock"
	"github.com/kcurtet/todo/internal/constants"
	todoerrors "github.com/kcurtet/todo/internal/errors"
	"github.com/kcurtet/todo/internal/task"
	"github.com/kcurtet/todo/internal/tui"
)

// addFlags holds the flags for the add command.
type addFlags struct {
	priority int
	due      string
	tags     []string
}

// newAddCmd creates the add command.
func newAddCmd(global *GlobalFlags) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add [description...]",
		Short: "Add a new task",
		Long: `Add a new task to the store.

Words starting with '@' inside the description become tags. When called
without arguments, an interactive form is launched instead.

Examples:
  todo add "Buy milk"
  todo add Fix the boiler @home --priority 2 --due friday
  todo add "Quarterly report" -p 1 -d 2025-07-15 -t work -t finance`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd.Context(), cmd, cmd.OutOrStdout(), args, flags, global)
		},
	}

	cmd.Flags().IntVarP(&flags.priority, "priority", "p", 0, "priority (1-5, 1 = highest)")
	cmd.Flags().StringVarP(&flags.due, "due", "d", "", "due date (YYYY-MM-DD, today, tomorrow, friday, ...)")
	cmd.Flags().StringArrayVarP(&flags.tags, "tag", "t", nil, "tag for the task (repeatable)")

	return cmd
}

// runAdd executes the add command.
func runAdd(ctx context.Context, cmd *cobra.Command, w io.Writer, args []string, flags *addFlags, global *GlobalFlags) error {
	out := tui.NewOutput(w, global.Output)
	mgr := task.NewManager(task.ResolveDataFilePath(global.DataFile), clock.RealClock{})

	var opts task.AddOptions
	if len(args) == 0 && !cmd.Flags().Changed("priority") && flags.due == "" && len(flags.tags) == 0 {
		interactive, err := runAddInteractive()
		if err != nil {
			return err
		}
		opts = interactive
	} else {
		description, inlineTags := splitDescription(args)
		opts = task.AddOptions{
			Description: description,
			Due:         flags.due,
			Tags:        append(flags.tags, inlineTags...),
		}
		if cmd.Flags().Changed("priority") {
			opts.Priority = &flags.priority
		}
	}

	created, err := mgr.Add(ctx, opts)
	if err != nil {
		return err
	}

	logger := GetLogger()
	logger.Info().Uint64("task_id", created.ID).Str("description", created.Description).Msg("task added")

	if global.Output == OutputJSON {
		return out.JSON(created)
	}
	out.Success(fmt.Sprintf("Task %d added", created.ID))
	return nil
}

// splitDescription separates inline '@tag' words from the description
// text. The remaining words are joined with single spaces.
func splitDescription(args []string) (string, []string) {
	var (
		words []string
		tags  []string
	)
	for _, word := range strings.Fields(strings.Join(args, " ")) {
		if strings.HasPrefix(word, "@") && len(word) > 1 {
			tags = append(tags, word[1:])
			continue
		}
		words = append(words, word)
	}
	return strings.Join(words, " "), tags
}

// runAddInteractive collects the task fields via a form.
func runAddInteractive() (task.AddOptions, error) {
	var (
		description string
		priority    string
		due         string
		tags        string
	)

	priorityOptions := []huh.Option[string]{huh.NewOption("none", "")}
	for p := constants.PriorityMin; p <= constants.PriorityMax; p++ {
		priorityOptions = append(priorityOptions, huh.NewOption(strconv.Itoa(p), strconv.Itoa(p)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Description").
				Description("What needs doing? (required)").
				Value(&description).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return todoerrors.ErrEmptyDescription
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Priority").
				Description("1 = highest urgency").
				Options(priorityOptions...).
				Value(&priority),
			huh.NewInput().
				Title("Due date (optional)").
				Description("YYYY-MM-DD, today, tomorrow, friday, \"in 3 days\"...").
				Value(&due).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					_, err := task.ResolveDueDate(s, clock.RealClock{}.Now())
					return err
				}),
			huh.NewInput().
				Title("Tags (optional)").
				Description("Comma-separated labels").
				Value(&tags),
		),
	)

	if err := form.Run(); err != nil {
		return task.AddOptions{}, fmt.Errorf("form canceled: %w", err)
	}

	opts := task.AddOptions{
		Description: description,
		Due:         strings.TrimSpace(due),
	}
	if priority != "" {
		p, _ := strconv.Atoi(priority) // options are digits only
		opts.Priority = &p
	}
	for _, tag := range strings.Split(tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			opts.Tags = append(opts.Tags, tag)
		}
	}
	return opts, nil
}
