// Package main provides the entry point for the sitescout CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sitescout-io/sitescout/internal/cli"
)

// Build information set via ldflags.
var (
	version = "" //nolint:gochecknoglobals // Set at build time
	commit  = "" //nolint:gochecknoglobals // Set at build time
	date    = "" //nolint:gochecknoglobals // Set at build time
)

func main() {
	ctx := context.Background()

	err := cli.Execute(ctx, cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})
	cli.CloseLogFile()

	code := cli.ExitCodeForError(err)
	if err != nil && code != cli.ExitSuccess {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(code)
}
