// Package constants provides centralized constant values used throughout
// the todo CLI. This package is the single source of truth for all shared
// constants and MUST NOT import any other internal packages.
package constants

// AppName is the binary and root command name.
const AppName = "todo"

// Environment variables.
const (
	// DataFileEnvVar overrides the backing data file location.
	DataFileEnvVar = "TODO_DATA_FILE"

	// EnvPrefix is the prefix for environment variable overrides of
	// global flags (e.g. TODO_OUTPUT, TODO_VERBOSE).
	EnvPrefix = "TODO"
)

// File and directory names used for state persistence.
const (
	// ConfigDirName is the directory under the user config dir that
	// holds the default data file and the CLI logs.
	ConfigDirName = "todo"

	// DataFileName is the default data file name.
	DataFileName = "tasks.json"

	// HomeFallbackFileName is the data file name used directly under the
	// home directory when no user config dir is available.
	HomeFallbackFileName = ".todo.json"

	// LockFileSuffix is appended to the data file path to form the
	// advisory writer lock file.
	LockFileSuffix = ".lock"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// CLILogFileName is the rotating CLI log file name.
	CLILogFileName = "todo.log"
)

// Task priority bounds. Priority 1 is the highest urgency.
const (
	// PriorityMin is the highest urgency priority value.
	PriorityMin = 1

	// PriorityMax is the lowest urgency priority value.
	PriorityMax = 5
)

// Log rotation settings for the CLI log file.
const (
	// LogMaxSizeMB is the maximum size in megabytes before rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated files to keep.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age in days of rotated files.
	LogMaxAgeDays = 30

	// LogCompress enables compression of rotated log files.
	LogCompress = true
)
