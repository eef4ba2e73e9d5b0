package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/kcurtet/todo/internal/clock"
	"github.com/kcurtet/todo/internal/task"
)

// Renderer draws task listings. Overdue and due-soon highlighting is
// computed against the renderer's clock so output is testable.
type Renderer struct {
	w      io.Writer
	clk    clock.Clock
	styles *OutputStyles
}

// NewRenderer creates a Renderer writing to w.
// A nil clock falls back to the system clock.
func NewRenderer(w io.Writer, clk clock.Clock) *Renderer {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &Renderer{
		w:      w,
		clk:    clk,
		styles: NewOutputStyles(),
	}
}

// TaskList renders each task on its own line, in the order given.
func (r *Renderer) TaskList(tasks []task.Task) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(r.w, r.styles.Dim.Render("No tasks found."))
		return
	}
	for i := range tasks {
		r.Task(&tasks[i])
	}
}

// Task renders one task line: id, priority badge, description, tags,
// due date and completion marker.
func (r *Renderer) Task(t *task.Task) {
	now := r.clk.Now()
	overdue := t.IsOverdue(now)

	var b strings.Builder

	idStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	b.WriteString(fmt.Sprintf("[%s] ", idStyle.Render(fmt.Sprintf("%d", t.ID))))

	if t.Priority != nil {
		b.WriteString(PriorityStyle(*t.Priority).Render(fmt.Sprintf("P%d", *t.Priority)))
		b.WriteString(" ")
	}

	switch {
	case t.Completed:
		b.WriteString(r.styles.Dim.Strikethrough(true).Render(t.Description))
	case overdue:
		b.WriteString(r.styles.Error.Render("⚠ " + t.Description))
	default:
		b.WriteString(t.Description)
	}

	tagStyle := lipgloss.NewStyle().Foreground(ColorTag)
	for _, tag := range t.Tags {
		b.WriteString(" ")
		b.WriteString(tagStyle.Render("#" + tag))
	}

	if t.DueDate != nil {
		b.WriteString(" ")
		b.WriteString(r.renderDueDate(*t.DueDate, overdue))
	}

	if t.Completed {
		label := "(completed)"
		if t.CompletedAt != nil {
			label = fmt.Sprintf("(completed %s)", RelativeDateWith(*t.CompletedAt, r.clk))
		}
		b.WriteString(" ")
		b.WriteString(r.styles.Dim.Foreground(ColorSuccess).Render(label))
	}

	_, _ = fmt.Fprintln(r.w, b.String())
}

// Summary renders the listing footer with store-wide counts.
func (r *Renderer) Summary(s task.Summary) {
	_, _ = fmt.Fprintln(r.w)
	_, _ = fmt.Fprintln(r.w, r.styles.Info.Render(fmt.Sprintf(
		"Showing %d tasks. Total: %d, Completed: %d, Overdue: %d",
		s.Shown, s.Total, s.Completed, s.Overdue)))
}

// renderDueDate colors the due label by proximity: overdue red, due
// today bold yellow, due within three days yellow, otherwise plain.
func (r *Renderer) renderDueDate(due time.Time, overdue bool) string {
	label := fmt.Sprintf("(due %s)", RelativeDateWith(due, r.clk))
	if overdue {
		return r.styles.Error.Render(label)
	}

	days := calendarDays(r.clk.Now(), due)
	switch {
	case days == 0:
		return r.styles.Warning.Bold(true).Render(label)
	case days >= 1 && days <= 3:
		return r.styles.Warning.Render(label)
	default:
		return label
	}
}
