package task

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	todoerrors "github.com/kcurtet/todo/internal/errors"
)

// Directory and file permission constants.
const (
	dirPerm  = 0o750 // Secure directory permissions
	filePerm = 0o600 // Secure file permissions
)

// Store is the full collection of tasks plus the id counter, exactly as
// persisted on disk.
type Store struct {
	Tasks  []Task `json:"tasks"`
	NextID uint64 `json:"next_id"`
}

// NewStore returns an empty store with the id counter at its starting value.
func NewStore() *Store {
	return &Store{Tasks: []Task{}, NextID: 1}
}

// Load reads the store from path. An absent or empty file yields an
// empty store. A present but malformed file fails with ErrStoreCorrupt
// carrying the path and parse detail; the file is never modified or
// silently discarded.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- path comes from the resolved data file location
	if err != nil {
		if os.IsNotExist(err) {
			return NewStore(), nil
		}
		return nil, todoerrors.Wrapf(err, "failed to read data file %s", path)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return NewStore(), nil
	}

	var store Store
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", todoerrors.ErrStoreCorrupt, path, err)
	}
	if store.Tasks == nil {
		store.Tasks = []Task{}
	}
	// Re-establish the id invariant for hand-edited files: next_id must
	// stay strictly greater than every existing id.
	for i := range store.Tasks {
		if store.Tasks[i].ID >= store.NextID {
			store.NextID = store.Tasks[i].ID + 1
		}
	}
	if store.NextID == 0 {
		store.NextID = 1
	}
	return &store, nil
}

// Save serializes the full store and replaces the file atomically so a
// crash mid-write cannot corrupt the previous valid file.
func (s *Store) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return todoerrors.Wrap(err, "failed to create data directory")
		}
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return todoerrors.Wrap(err, "failed to serialize store")
	}

	return atomicWrite(path, data)
}

// NextIdentifier returns the next task id and advances the counter.
// Ids are monotonically assigned and never reused, even after deletion.
func (s *Store) NextIdentifier() uint64 {
	id := s.NextID
	s.NextID++
	return id
}

// Find returns the task with the given id, or nil when absent.
// The returned pointer aliases the store's backing slice.
func (s *Store) Find(id uint64) *Task {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i]
		}
	}
	return nil
}

// Remove deletes the task with the given id from the store.
// Returns ErrTaskNotFound when no such task exists.
func (s *Store) Remove(id uint64) error {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			s.Tasks = append(s.Tasks[:i], s.Tasks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %d", todoerrors.ErrTaskNotFound, id)
}

// atomicWrite writes data to a file atomically using write-then-rename.
// The temp file lives in the same directory as the target so the rename
// stays on one filesystem.
func atomicWrite(path string, data []byte) error {
	tmpPath := path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm) //#nosec G304 -- path is constructed internally
	if err != nil {
		return todoerrors.Wrap(err, "failed to create temp file")
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return todoerrors.Wrap(err, "failed to write data")
	}

	// Sync to disk (ensure data is persisted before rename)
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return todoerrors.Wrap(err, "failed to sync file")
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return todoerrors.Wrap(err, "failed to close file")
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return todoerrors.Wrap(err, "failed to rename file")
	}

	return nil
}
