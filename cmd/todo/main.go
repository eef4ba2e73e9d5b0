// Package main provides the entry point for the todo CLI.
package main

import (
	"context"
	"os"

	"github.com/kcurtet/todo/internal/cli"
)

// Build information set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx := context.Background()

	err := cli.Execute(ctx, cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})
	cli.CloseLogFile()

	os.Exit(cli.ExitCodeForError(err))
}
