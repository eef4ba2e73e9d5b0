package task

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcurtet/todo/internal/clock"
	todoerrors "github.com/kcurtet/todo/internal/errors"
)

func testManager(t *testing.T, instant time.Time) *Manager {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.json")
	return NewManager(path, clock.FixedClock{Instant: instant})
}

func TestManagerAdd_Basic(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC)
	mgr := testManager(t, now)

	created, err := mgr.Add(context.Background(), AddOptions{Description: "Buy milk"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), created.ID)
	assert.Equal(t, "Buy milk", created.Description)
	assert.Nil(t, created.Priority)
	assert.Nil(t, created.DueDate)
	assert.False(t, created.Completed)
	assert.Equal(t, now, created.CreatedAt)

	// The task must be durable across a fresh load.
	store, err := Load(mgr.Path())
	require.NoError(t, err)
	require.Len(t, store.Tasks, 1)
	assert.Equal(t, uint64(2), store.NextID)
}

func TestManagerAdd_WithDueDate(t *testing.T) {
	t.Parallel()

	mgr := testManager(t, time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC))

	p := 2
	created, err := mgr.Add(context.Background(), AddOptions{
		Description: "Quarterly report",
		Priority:    &p,
		Due:         "tomorrow",
		Tags:        []string{"work", "finance", "work"},
	})
	require.NoError(t, err)
	require.NotNil(t, created.DueDate)
	assert.Equal(t, time.Date(2025, 7, 9, 23, 59, 59, 0, time.UTC), *created.DueDate)
	assert.Equal(t, []string{"work", "finance"}, created.Tags, "duplicate tags collapse")
}

func TestManagerAdd_ValidationErrors(t *testing.T) {
	t.Parallel()

	mgr := testManager(t, time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	_, err := mgr.Add(ctx, AddOptions{Description: "   "})
	require.ErrorIs(t, err, todoerrors.ErrEmptyDescription)

	for _, p := range []int{0, 6, -1} {
		bad := p
		_, err = mgr.Add(ctx, AddOptions{Description: "x", Priority: &bad})
		require.ErrorIs(t, err, todoerrors.ErrInvalidPriority)
	}

	_, err = mgr.Add(ctx, AddOptions{Description: "x", Tags: []string{"ok", "  "}})
	require.ErrorIs(t, err, todoerrors.ErrInvalidTag)

	_, err = mgr.Add(ctx, AddOptions{Description: "x", Due: "gibberish"})
	require.ErrorIs(t, err, todoerrors.ErrUnparseableDate)

	// Nothing was persisted by any of the failed adds.
	store, loadErr := Load(mgr.Path())
	require.NoError(t, loadErr)
	assert.Empty(t, store.Tasks)
}

func TestManagerAdd_BoundaryPriorities(t *testing.T) {
	t.Parallel()

	mgr := testManager(t, time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC))

	for _, p := range []int{1, 5} {
		valid := p
		created, err := mgr.Add(context.Background(), AddOptions{Description: "x", Priority: &valid})
		require.NoError(t, err)
		require.NotNil(t, created.Priority)
		assert.Equal(t, valid, *created.Priority)
	}
}

func TestManagerComplete(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC)
	mgr := testManager(t, now)
	ctx := context.Background()

	created, err := mgr.Add(ctx, AddOptions{Description: "x"})
	require.NoError(t, err)

	completed, transitioned, err := mgr.Complete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, transitioned)
	assert.True(t, completed.Completed)
	require.NotNil(t, completed.CompletedAt)
	assert.Equal(t, now, *completed.CompletedAt)
}

func TestManagerComplete_Idempotent(t *testing.T) {
	t.Parallel()

	first := time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC)
	mgr := testManager(t, first)
	ctx := context.Background()

	created, err := mgr.Add(ctx, AddOptions{Description: "x"})
	require.NoError(t, err)

	_, _, err = mgr.Complete(ctx, created.ID)
	require.NoError(t, err)

	// A later clock must not move the original completion timestamp.
	later := NewManager(mgr.Path(), clock.FixedClock{Instant: first.Add(48 * time.Hour)})
	completed, transitioned, err := later.Complete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, transitioned)
	require.NotNil(t, completed.CompletedAt)
	assert.Equal(t, first, *completed.CompletedAt)
}

func TestManagerComplete_NotFound(t *testing.T) {
	t.Parallel()

	mgr := testManager(t, time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC))

	_, _, err := mgr.Complete(context.Background(), 99)
	require.ErrorIs(t, err, todoerrors.ErrTaskNotFound)
}

func TestManagerEdit_OverwritesFields(t *testing.T) {
	t.Parallel()

	mgr := testManager(t, time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	p := 3
	created, err := mgr.Add(ctx, AddOptions{Description: "old", Priority: &p, Tags: []string{"a"}})
	require.NoError(t, err)

	newP := 1
	edited, err := mgr.Edit(ctx, created.ID, EditOptions{
		Description: "new text",
		Priority:    &newP,
		Due:         "2025-07-20",
	})
	require.NoError(t, err)
	assert.Equal(t, "new text", edited.Description)
	require.NotNil(t, edited.Priority)
	assert.Equal(t, 1, *edited.Priority)
	require.NotNil(t, edited.DueDate)
	assert.Equal(t, time.Date(2025, 7, 20, 23, 59, 59, 0, time.UTC), *edited.DueDate)
	assert.Equal(t, []string{"a"}, edited.Tags, "tags untouched when none provided")
}

func TestManagerEdit_TagsUnion(t *testing.T) {
	t.Parallel()

	mgr := testManager(t, time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	created, err := mgr.Add(ctx, AddOptions{Description: "x", Tags: []string{"a", "b"}})
	require.NoError(t, err)

	edited, err := mgr.Edit(ctx, created.ID, EditOptions{Tags: []string{"b", "c"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, edited.Tags, "existing tags are kept, new ones appended")
}

func TestManagerEdit_ZeroOptionsLeaveTaskIntact(t *testing.T) {
	t.Parallel()

	mgr := testManager(t, time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	p := 2
	created, err := mgr.Add(ctx, AddOptions{Description: "keep me", Priority: &p, Due: "tomorrow"})
	require.NoError(t, err)

	edited, err := mgr.Edit(ctx, created.ID, EditOptions{})
	require.NoError(t, err)
	assert.Equal(t, created.Description, edited.Description)
	assert.Equal(t, *created.Priority, *edited.Priority)
	assert.Equal(t, *created.DueDate, *edited.DueDate)
}

func TestManagerEdit_WhitespaceDescriptionRejected(t *testing.T) {
	t.Parallel()

	mgr := testManager(t, time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	created, err := mgr.Add(ctx, AddOptions{Description: "keep me"})
	require.NoError(t, err)

	_, err = mgr.Edit(ctx, created.ID, EditOptions{Description: "   "})
	require.ErrorIs(t, err, todoerrors.ErrEmptyDescription)

	// The failed edit must not have touched the store.
	store, loadErr := Load(mgr.Path())
	require.NoError(t, loadErr)
	require.Len(t, store.Tasks, 1)
	assert.Equal(t, "keep me", store.Tasks[0].Description)
}

func TestManagerEdit_NotFound(t *testing.T) {
	t.Parallel()

	mgr := testManager(t, time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC))

	_, err := mgr.Edit(context.Background(), 42, EditOptions{Description: "x"})
	require.ErrorIs(t, err, todoerrors.ErrTaskNotFound)
}

func TestManagerDelete(t *testing.T) {
	t.Parallel()

	mgr := testManager(t, time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	created, err := mgr.Add(ctx, AddOptions{Description: "x"})
	require.NoError(t, err)

	require.NoError(t, mgr.Delete(ctx, created.ID))
	require.ErrorIs(t, mgr.Delete(ctx, created.ID), todoerrors.ErrTaskNotFound)
}

func TestManagerDelete_IDsNeverReused(t *testing.T) {
	t.Parallel()

	mgr := testManager(t, time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	first, err := mgr.Add(ctx, AddOptions{Description: "a"})
	require.NoError(t, err)
	second, err := mgr.Add(ctx, AddOptions{Description: "b"})
	require.NoError(t, err)

	require.NoError(t, mgr.Delete(ctx, first.ID))
	require.NoError(t, mgr.Delete(ctx, second.ID))

	third, err := mgr.Add(ctx, AddOptions{Description: "c"})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), third.ID)
}

func TestManagerList_SummaryAndOrder(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC)
	mgr := testManager(t, now)
	ctx := context.Background()

	overdue, err := mgr.Add(ctx, AddOptions{Description: "late", Due: "2025-07-01"})
	require.NoError(t, err)
	_, err = mgr.Add(ctx, AddOptions{Description: "soon", Due: "tomorrow"})
	require.NoError(t, err)
	done, err := mgr.Add(ctx, AddOptions{Description: "finished"})
	require.NoError(t, err)
	_, _, err = mgr.Complete(ctx, done.ID)
	require.NoError(t, err)

	tasks, summary, err := mgr.List(ctx, Filter{})
	require.NoError(t, err)

	require.Len(t, tasks, 2)
	assert.Equal(t, overdue.ID, tasks[0].ID, "earlier due date sorts first")
	assert.Equal(t, Summary{Shown: 2, Total: 3, Completed: 1, Overdue: 1}, summary)
}

func TestManagerList_EmptyStore(t *testing.T) {
	t.Parallel()

	mgr := testManager(t, time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC))

	tasks, summary, err := mgr.List(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Equal(t, Summary{}, summary)
}

func TestManagerList_CanceledContext(t *testing.T) {
	t.Parallel()

	mgr := testManager(t, time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := mgr.List(ctx, Filter{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestManager_BuyMilkLifecycle(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC)
	mgr := testManager(t, now)
	ctx := context.Background()

	p := 2
	created, err := mgr.Add(ctx, AddOptions{
		Description: "Buy milk",
		Priority:    &p,
		Due:         "tomorrow",
		Tags:        []string{"errand"},
	})
	require.NoError(t, err)
	require.NotNil(t, created.DueDate)
	assert.Equal(t, time.Date(2025, 7, 9, 23, 59, 59, 0, time.UTC), *created.DueDate)

	tasks, _, err := mgr.List(ctx, Filter{IncludeTag: "errand"})
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	_, transitioned, err := mgr.Complete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, transitioned)

	tasks, summary, err := mgr.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Empty(t, tasks, "completed tasks hidden by default")
	assert.Equal(t, 1, summary.Completed)

	require.NoError(t, mgr.Delete(ctx, created.ID))
	_, summary, err = mgr.List(ctx, Filter{ShowCompleted: true})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Total)
}

func TestManagerAdd_LockFileDoesNotPolluteStore(t *testing.T) {
	t.Parallel()

	mgr := testManager(t, time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC))

	_, err := mgr.Add(context.Background(), AddOptions{Description: "x"})
	require.NoError(t, err)

	store, err := Load(mgr.Path())
	require.NoError(t, err)
	assert.Len(t, store.Tasks, 1)
}
