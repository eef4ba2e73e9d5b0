package cli

import (
	"fmt"
	"strconv"

	"github.com/kcurtet/todo/internal/errors"
)

// parseTaskID parses a positional task identifier argument.
// Non-numeric or non-positive values are invalid input.
func parseTaskID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: task id must be a positive integer, got %q", errors.ErrInvalidArgument, arg)
	}
	return id, nil
}
