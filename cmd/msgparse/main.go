// Package main is the entry point for the msgparse CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/msgparse/internal/cli"
	"github.com/yaklabco/msgparse/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	code := cli.ExitCode(err)

	// ErrPunycodeFound only selects the exit code; the findings are already printed.
	if err != nil && !errors.Is(err, cli.ErrPunycodeFound) {
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
		if code == cli.ExitUsage {
			logger.Info("run 'msgparse --help' for usage")
		}
	}

	return code
}
