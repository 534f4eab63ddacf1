package cli

import "github.com/yaklabco/wpslint/pkg/runner"

// Exit codes for wpslint.
const (
	// ExitSuccess indicates successful execution with no flags raised.
	ExitSuccess = 0

	// ExitLintWarnings indicates lint completed but raised warn-severity flags.
	ExitLintWarnings = 1

	// ExitLintInfos indicates lint raised only info-severity flags (strict mode).
	ExitLintInfos = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code based on result and strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	warnings := result.Stats.FlagsBySeverity["warn"]

	if warnings > 0 {
		return ExitLintWarnings
	}

	if strict && result.Stats.FlagsTotal > 0 {
		return ExitLintInfos
	}

	return ExitSuccess
}
