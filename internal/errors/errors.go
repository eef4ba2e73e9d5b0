// Package errors provides centralized error handling for the todo CLI.
//
// This package defines sentinel errors used for programmatic error
// categorization throughout the application. All error types can be
// checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrTaskNotFound indicates that no task with the requested id
	// exists in the store.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidPriority indicates a priority value outside the
	// accepted range of 1 (highest urgency) to 5.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrEmptyDescription indicates that a task description was empty
	// or contained only whitespace.
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrInvalidTag indicates an empty or whitespace-only tag label.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrUnparseableDate indicates that a due date expression could not
	// be resolved by any supported format.
	ErrUnparseableDate = errors.New("unable to parse date")

	// ErrStoreCorrupt indicates the data file exists but could not be
	// parsed. The file is left untouched so no data is lost.
	ErrStoreCorrupt = errors.New("data file corrupted")

	// ErrLockTimeout indicates the writer lock could not be acquired
	// within the timeout period.
	ErrLockTimeout = errors.New("lock acquisition timeout")

	// ErrInvalidOutputFormat indicates an invalid output format was
	// specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrInvalidArgument indicates that an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
