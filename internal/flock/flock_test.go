//go:build unix

package flock_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kcurtet/todo/internal/flock"
)

func TestExclusiveLock(t *testing.T) {
	t.Parallel()

	t.Run("acquires and releases lock", func(t *testing.T) {
		t.Parallel()
		lockFile := filepath.Join(t.TempDir(), "tasks.json.lock")

		f, err := os.OpenFile(lockFile, os.O_RDWR|os.O_CREATE, 0o600) // #nosec G304 -- test code using safe temp dir
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		require.NoError(t, flock.Exclusive(f.Fd()))
		require.NoError(t, flock.Unlock(f.Fd()))
	})

	t.Run("second handle cannot lock while held", func(t *testing.T) {
		t.Parallel()
		lockFile := filepath.Join(t.TempDir(), "tasks.json.lock")

		first, err := os.OpenFile(lockFile, os.O_RDWR|os.O_CREATE, 0o600) // #nosec G304 -- test code using safe temp dir
		require.NoError(t, err)
		defer func() { _ = first.Close() }()

		require.NoError(t, flock.Exclusive(first.Fd()))

		second, err := os.OpenFile(lockFile, os.O_RDWR, 0o600) // #nosec G304 -- test code using safe temp dir
		require.NoError(t, err)
		defer func() { _ = second.Close() }()

		require.Error(t, flock.Exclusive(second.Fd()))

		require.NoError(t, flock.Unlock(first.Fd()))
		require.NoError(t, flock.Exclusive(second.Fd()))
		require.NoError(t, flock.Unlock(second.Fd()))
	})
}
