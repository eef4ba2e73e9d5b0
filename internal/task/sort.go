package task

import "sort"

// SortTasks orders tasks for display. The sort is stable, so equal-key
// tasks retain their relative input order, and the key precedence is
// fixed:
//
//  1. open tasks before completed ones
//  2. tasks with a due date before tasks without one
//  3. earlier due date first
//  4. lower priority number first (1 = highest urgency); no priority last
//  5. earlier creation time first
func SortTasks(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return lessTask(&tasks[i], &tasks[j])
	})
}

func lessTask(a, b *Task) bool {
	if a.Completed != b.Completed {
		return !a.Completed
	}

	switch {
	case a.DueDate != nil && b.DueDate == nil:
		return true
	case a.DueDate == nil && b.DueDate != nil:
		return false
	case a.DueDate != nil && b.DueDate != nil:
		if !a.DueDate.Equal(*b.DueDate) {
			return a.DueDate.Before(*b.DueDate)
		}
	}

	switch {
	case a.Priority != nil && b.Priority == nil:
		return true
	case a.Priority == nil && b.Priority != nil:
		return false
	case a.Priority != nil && b.Priority != nil:
		if *a.Priority != *b.Priority {
			return *a.Priority < *b.Priority
		}
	}

	return a.CreatedAt.Before(b.CreatedAt)
}
