package task

import (
	"os"
	"path/filepath"

	"github.com/kcurtet/todo/internal/constants"
)

// DataFilePath resolves the backing data file location from the given
// inputs. First present wins:
//
//  1. explicit override (the --data-file flag)
//  2. environment override (TODO_DATA_FILE)
//  3. <configDir>/todo/tasks.json
//  4. <homeDir>/.todo.json
//  5. tasks.json in the current directory
//
// This is a pure function of its arguments so path precedence can be
// tested without touching the filesystem or the environment.
func DataFilePath(override, envOverride, configDir, homeDir string) string {
	switch {
	case override != "":
		return override
	case envOverride != "":
		return envOverride
	case configDir != "":
		return filepath.Join(configDir, constants.ConfigDirName, constants.DataFileName)
	case homeDir != "":
		return filepath.Join(homeDir, constants.HomeFallbackFileName)
	default:
		return constants.DataFileName
	}
}

// ResolveDataFilePath feeds DataFilePath from the real process
// environment. Lookup failures for the config or home directory simply
// fall through to the next candidate.
func ResolveDataFilePath(override string) string {
	configDir, _ := os.UserConfigDir()
	homeDir, _ := os.UserHomeDir()
	return DataFilePath(override, os.Getenv(constants.DataFileEnvVar), configDir, homeDir)
}
