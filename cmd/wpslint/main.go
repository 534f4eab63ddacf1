// Package main is the entry point for the wpslint CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/wpslint/internal/cli"
	"github.com/yaklabco/wpslint/internal/logging"
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

	if err := rootCmd.Execute(); err != nil {
		// Flag sentinels only carry the exit code; they are already reported.
		if errors.Is(err, cli.ErrLintIssuesFound) {
			return cli.ExitLintWarnings
		}
		if errors.Is(err, cli.ErrStrictFlagsFound) {
			return cli.ExitLintInfos
		}

		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
		return 1
	}

	return cli.ExitSuccess
}
