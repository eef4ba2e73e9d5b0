// Package task implements the core task pipeline: the persistent JSON
// store, the lifecycle operations (add, edit, complete, delete), due
// date resolution, tag filtering and the display sort order.
//
// The store is the single source of truth. Every command invocation is
// one load-mutate-save cycle; nothing is cached across invocations and
// the file is replaced atomically so a concurrent reader always sees
// either the fully-old or fully-new contents.
package task

import (
	"strings"
	"time"
)

// Task is the sole persisted entity.
//
// Invariants: ids are unique within a store and never reused, and
// CompletedAt is non-nil exactly when Completed is true.
type Task struct {
	ID          uint64     `json:"id"`
	Description string     `json:"description"`
	Priority    *int       `json:"priority"` // 1-5, 1 = highest; nil means no priority
	DueDate     *time.Time `json:"due_date"`
	Tags        []string   `json:"tags"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

// IsOverdue reports whether the task's due date is strictly before now
// and the task is still open.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && !t.Completed && t.DueDate.Before(now)
}

// HasTag reports whether the task carries the given tag.
// Matching is case-sensitive and exact.
func (t *Task) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}

// AddTags unions the given labels into the task's tag set, preserving
// first-occurrence order. Blank labels are skipped; callers validate
// tags before getting here.
func (t *Task) AddTags(tags []string) {
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || t.HasTag(tag) {
			continue
		}
		t.Tags = append(t.Tags, tag)
	}
}
