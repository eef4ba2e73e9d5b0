package cli

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kcurtet/todo/internal/errors"
)

func TestIsValidOutputFormat(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidOutputFormat(OutputText))
	assert.True(t, IsValidOutputFormat(OutputJSON))
	assert.False(t, IsValidOutputFormat("yaml"))
	assert.False(t, IsValidOutputFormat(""))
}

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "invalid priority", err: fmt.Errorf("wrapped: %w", errors.ErrInvalidPriority), want: ExitInvalidInput},
		{name: "empty description", err: errors.ErrEmptyDescription, want: ExitInvalidInput},
		{name: "invalid tag", err: errors.ErrInvalidTag, want: ExitInvalidInput},
		{name: "unparseable date", err: errors.ErrUnparseableDate, want: ExitInvalidInput},
		{name: "invalid output format", err: errors.ErrInvalidOutputFormat, want: ExitInvalidInput},
		{name: "invalid argument", err: errors.ErrInvalidArgument, want: ExitInvalidInput},
		{name: "exit code 2 wrapper", err: errors.NewExitCode2Error(stderrors.New("bad input")), want: ExitInvalidInput},
		{name: "cobra unknown flag", err: stderrors.New("unknown flag: --bogus"), want: ExitInvalidInput},
		{name: "cobra unknown command", err: stderrors.New(`unknown command "frobnicate" for "todo"`), want: ExitInvalidInput},
		{name: "task not found", err: errors.ErrTaskNotFound, want: ExitError},
		{name: "corrupt store", err: errors.ErrStoreCorrupt, want: ExitError},
		{name: "lock timeout", err: errors.ErrLockTimeout, want: ExitError},
		{name: "generic", err: stderrors.New("boom"), want: ExitError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, ExitCodeForError(tc.err))
		})
	}
}
