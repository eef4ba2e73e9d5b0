package task

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kcurtet/todo/internal/clock"
	"github.com/kcurtet/todo/internal/constants"
	"github.com/kcurtet/todo/internal/ctxutil"
	todoerrors "github.com/kcurtet/todo/internal/errors"
	"github.com/kcurtet/todo/internal/flock"
)

// LockTimeout is the maximum duration to wait for the advisory writer lock.
const LockTimeout = 5 * time.Second

// lockRetryInterval is the pause between lock acquisition attempts.
const lockRetryInterval = 50 * time.Millisecond

// Manager executes task lifecycle operations against the backing data
// file. Every mutation is one load-mutate-save transaction: the full
// store is read, changed in memory, and atomically replaced on disk.
// Mutations hold an advisory lock on <path>.lock so concurrent writers
// on the same machine serialize instead of racing; the atomic replace
// remains the consistency guarantee for readers.
type Manager struct {
	path string
	clk  clock.Clock
}

// NewManager creates a Manager for the given data file path.
// A nil clock falls back to the system clock.
func NewManager(path string, clk clock.Clock) *Manager {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &Manager{path: path, clk: clk}
}

// Path returns the backing data file location.
func (m *Manager) Path() string {
	return m.path
}

// AddOptions carries the inputs for Add. Zero fields mean "not provided".
type AddOptions struct {
	// Description is the task text. Required, must be non-empty.
	Description string
	// Priority is 1 (highest urgency) to 5, or nil for none.
	Priority *int
	// Due is a free-form due date expression, resolved via ResolveDueDate.
	Due string
	// Tags are labels for the task; duplicates are collapsed.
	Tags []string
}

// EditOptions carries the changes for Edit. Zero fields leave the task
// untouched; a provided description must be non-blank. Tags are unioned
// into the existing set, never replacing it.
type EditOptions struct {
	Description string
	Priority    *int
	Due         string
	Tags        []string
}

// Summary describes the whole store behind a rendered listing.
type Summary struct {
	// Shown is the number of tasks that passed the filter.
	Shown int
	// Total is the number of tasks in the store.
	Total int
	// Completed is the number of completed tasks in the store.
	Completed int
	// Overdue is the number of open tasks past their due date.
	Overdue int
}

// Add validates the options, creates the task and persists the store.
// Validation failures abort before any state change.
func (m *Manager) Add(ctx context.Context, opts AddOptions) (*Task, error) {
	description := strings.TrimSpace(opts.Description)
	if description == "" {
		return nil, fmt.Errorf("failed to add task: %w", todoerrors.ErrEmptyDescription)
	}
	if err := validatePriority(opts.Priority); err != nil {
		return nil, err
	}
	tags, err := normalizeTags(opts.Tags)
	if err != nil {
		return nil, err
	}

	now := m.clk.Now()
	task := Task{
		Description: description,
		Priority:    opts.Priority,
		Tags:        tags,
		CreatedAt:   now,
	}
	if opts.Due != "" {
		due, dueErr := ResolveDueDate(opts.Due, now)
		if dueErr != nil {
			return nil, dueErr
		}
		task.DueDate = &due
	}

	var created Task
	err = m.transact(ctx, func(s *Store) (bool, error) {
		task.ID = s.NextIdentifier()
		s.Tasks = append(s.Tasks, task)
		created = task
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Edit applies the provided changes to an existing task and persists
// the store. Provided description, priority and due date overwrite the
// existing values; provided tags are added to the existing set.
// Returns ErrTaskNotFound when no task has the given id.
func (m *Manager) Edit(ctx context.Context, id uint64, opts EditOptions) (*Task, error) {
	// A provided description that trims to nothing is a validation
	// failure, not a field to skip.
	if opts.Description != "" && strings.TrimSpace(opts.Description) == "" {
		return nil, fmt.Errorf("failed to edit task: %w", todoerrors.ErrEmptyDescription)
	}
	if err := validatePriority(opts.Priority); err != nil {
		return nil, err
	}
	tags, err := normalizeTags(opts.Tags)
	if err != nil {
		return nil, err
	}
	var due *time.Time
	if opts.Due != "" {
		resolved, dueErr := ResolveDueDate(opts.Due, m.clk.Now())
		if dueErr != nil {
			return nil, dueErr
		}
		due = &resolved
	}

	var edited Task
	err = m.transact(ctx, func(s *Store) (bool, error) {
		t := s.Find(id)
		if t == nil {
			return false, fmt.Errorf("%w: %d", todoerrors.ErrTaskNotFound, id)
		}
		if desc := strings.TrimSpace(opts.Description); desc != "" {
			t.Description = desc
		}
		if opts.Priority != nil {
			t.Priority = opts.Priority
		}
		if due != nil {
			t.DueDate = due
		}
		t.AddTags(tags)
		edited = *t
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &edited, nil
}

// Complete marks a task as done. Completing an already-completed task
// is an idempotent no-op: the store is not rewritten and the original
// CompletedAt is preserved. The returned bool reports whether this call
// performed the transition.
func (m *Manager) Complete(ctx context.Context, id uint64) (*Task, bool, error) {
	var (
		completed    Task
		transitioned bool
	)
	err := m.transact(ctx, func(s *Store) (bool, error) {
		t := s.Find(id)
		if t == nil {
			return false, fmt.Errorf("%w: %d", todoerrors.ErrTaskNotFound, id)
		}
		if t.Completed {
			completed = *t
			return false, nil
		}
		now := m.clk.Now()
		t.Completed = true
		t.CompletedAt = &now
		completed = *t
		transitioned = true
		return true, nil
	})
	if err != nil {
		return nil, false, err
	}
	return &completed, transitioned, nil
}

// Delete removes a task entirely and persists the store.
// Returns ErrTaskNotFound when no task has the given id.
func (m *Manager) Delete(ctx context.Context, id uint64) error {
	return m.transact(ctx, func(s *Store) (bool, error) {
		if err := s.Remove(id); err != nil {
			return false, err
		}
		return true, nil
	})
}

// List loads the store, applies the filter and returns the tasks in
// display order together with a summary of the whole store. Read-only:
// no lock is taken, the atomic replace protocol guarantees a consistent
// file.
func (m *Manager) List(ctx context.Context, f Filter) ([]Task, Summary, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, Summary{}, err
	}

	store, err := Load(m.path)
	if err != nil {
		return nil, Summary{}, err
	}

	now := m.clk.Now()
	summary := Summary{Total: len(store.Tasks)}
	for i := range store.Tasks {
		if store.Tasks[i].Completed {
			summary.Completed++
		}
		if store.Tasks[i].IsOverdue(now) {
			summary.Overdue++
		}
	}

	tasks := f.Apply(store.Tasks)
	SortTasks(tasks)
	summary.Shown = len(tasks)
	return tasks, summary, nil
}

// transact runs one load-mutate-save cycle under the advisory writer
// lock. The mutation reports whether the store changed; unchanged
// stores are not rewritten.
func (m *Manager) transact(ctx context.Context, mutate func(*Store) (bool, error)) error {
	release, err := m.acquireLock(ctx)
	if err != nil {
		return err
	}
	defer release()

	store, err := Load(m.path)
	if err != nil {
		return err
	}
	dirty, err := mutate(store)
	if err != nil {
		return err
	}
	if !dirty {
		return nil
	}
	return store.Save(m.path)
}

// acquireLock acquires the exclusive advisory lock for the data file.
// It retries until LockTimeout and respects context cancellation during
// the retry loop.
func (m *Manager) acquireLock(ctx context.Context) (func(), error) {
	if dir := filepath.Dir(m.path); dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return nil, todoerrors.Wrap(err, "failed to create data directory")
		}
	}

	lockPath := m.path + constants.LockFileSuffix
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, filePerm) //#nosec G302,G304 -- lock file needs write access, path derives from the data file
	if err != nil {
		return nil, todoerrors.Wrap(err, "failed to open lock file")
	}

	deadline := time.Now().Add(LockTimeout)
	for {
		if ctxErr := ctxutil.Canceled(ctx); ctxErr != nil {
			_ = f.Close()
			return nil, ctxErr
		}

		if err := flock.Exclusive(f.Fd()); err == nil {
			return func() {
				_ = flock.Unlock(f.Fd())
				_ = f.Close()
			}, nil
		}

		if time.Now().After(deadline) {
			_ = f.Close()
			return nil, fmt.Errorf("failed to lock %s: %w", m.path, todoerrors.ErrLockTimeout)
		}

		time.Sleep(lockRetryInterval)
	}
}

// validatePriority checks the optional priority against the accepted
// range. nil means "no priority" and is always valid.
func validatePriority(p *int) error {
	if p == nil {
		return nil
	}
	if *p < constants.PriorityMin || *p > constants.PriorityMax {
		return fmt.Errorf("%w: %d (priority must be between %d and %d, 1 = highest)",
			todoerrors.ErrInvalidPriority, *p, constants.PriorityMin, constants.PriorityMax)
	}
	return nil
}

// normalizeTags trims labels, rejects empty ones and collapses
// duplicates while preserving first-occurrence order.
func normalizeTags(tags []string) ([]string, error) {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: %q (tags cannot be empty)", todoerrors.ErrInvalidTag, tag)
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out, nil
}
