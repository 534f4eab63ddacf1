package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func newHelpTestCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "wpslint",
		Short: "Accessibility linter",
		Long:  "Accessibility linter for schedules.",
	}
	root.PersistentFlags().String("color", "auto", "Color mode")

	child := &cobra.Command{
		Use:   "lint [files...]",
		Short: "Lint documents",
		RunE:  func(*cobra.Command, []string) error { return nil },
	}
	child.Flags().StringP("format", "f", "text", "Output format")
	root.AddCommand(child)

	return root
}

func TestHelpFormatterRendersSections(t *testing.T) {
	t.Parallel()

	root := newHelpTestCommand()
	NewHelpFormatter("never", io.Discard).ApplyToCommand(root)

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--help"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Usage:",
		"Available Commands:",
		"lint",
		"Lint documents",
		"Flags:",
		"--color",
		"for more information about a command",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q:\n%s", want, out)
		}
	}
}

func TestHelpFormatterSubcommandFlags(t *testing.T) {
	t.Parallel()

	root := newHelpTestCommand()
	NewHelpFormatter("never", io.Discard).ApplyToCommand(root)

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"lint", "--help"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "--format") {
		t.Errorf("expected local flag in help output:\n%s", out)
	}
	if !strings.Contains(out, "Output format") {
		t.Errorf("expected flag description in help output:\n%s", out)
	}
	if !strings.Contains(out, "Global Flags:") {
		t.Errorf("expected inherited flags section in help output:\n%s", out)
	}
}

func TestColorizeFlagLine(t *testing.T) {
	t.Parallel()

	h := NewHelpFormatter("never", io.Discard)

	got := h.colorizeFlagLine("  -f, --format string   Output format")
	if got != "  -f, --format string   Output format" {
		t.Errorf("unexpected colorized line: %q", got)
	}

	// Lines without a name/description gap pass through untouched.
	if got := h.colorizeFlagLine("no gap here"); got != "no gap here" {
		t.Errorf("expected passthrough, got %q", got)
	}
}

func TestStyleFlagSpecKeepsComma(t *testing.T) {
	t.Parallel()

	h := NewHelpFormatter("never", io.Discard)
	if got := h.styleFlagSpec("-f, --format string"); got != "-f, --format string" {
		t.Errorf("unexpected flag spec: %q", got)
	}
}
