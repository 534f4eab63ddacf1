// Package cli provides the Cobra command structure for wpslint.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/wpslint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root wpslint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "wpslint",
		Short: "An accessibility linter for Work Process Schedules",
		Long: `wpslint checks Work Process Schedules (WPS) and Related Training
Instruction (RTI) outlines for non-inclusive phrasing.

It scans plain text, Markdown, Word, and PDF documents against a pack of
pattern rules, reports every flagged phrase with remediation guidance, and
produces a deterministically rewritten clean copy. Clean copies, audit
checklists, and program scaffolding documents can be exported for review.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newLintCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newExtractCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newAskCommand())
	rootCmd.AddCommand(newStartersCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
