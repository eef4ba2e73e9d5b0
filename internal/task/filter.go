package task

// Filter selects tasks by tag and completion criteria. All set fields
// combine with logical AND; the zero value matches every open task.
// Tag matching is case-sensitive and exact.
type Filter struct {
	// IncludeTag, when set, keeps only tasks carrying this tag.
	IncludeTag string
	// ExcludeTag, when set, drops tasks carrying this tag.
	ExcludeTag string
	// ShowCompleted keeps completed tasks in the result.
	ShowCompleted bool
}

// Match reports whether the task passes the filter.
func (f Filter) Match(t *Task) bool {
	if !f.ShowCompleted && t.Completed {
		return false
	}
	if f.IncludeTag != "" && !t.HasTag(f.IncludeTag) {
		return false
	}
	if f.ExcludeTag != "" && t.HasTag(f.ExcludeTag) {
		return false
	}
	return true
}

// Apply returns the tasks matching the filter, in input order.
// No matches is not an error; the result is simply empty.
func (f Filter) Apply(tasks []Task) []Task {
	matched := make([]Task, 0, len(tasks))
	for i := range tasks {
		if f.Match(&tasks[i]) {
			matched = append(matched, tasks[i])
		}
	}
	return matched
}
