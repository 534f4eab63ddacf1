package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/wpslint/pkg/config"
	"github.com/yaklabco/wpslint/pkg/lint"
)

// FormatFlag formats a single flag for terminal output.
func (s *Styles) FormatFlag(flag *lint.Flag) string {
	var builder strings.Builder

	severity := s.FormatSeverity(flag.Severity)
	ruleDisplay := s.RuleID.Render("(" + flag.RuleID + ")")

	// Main line: severity  "match"  message  (rule-id)
	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		severity,
		s.Match.Render(fmt.Sprintf("%q", flag.Match)),
		s.Message.Render(flag.Message),
		ruleDisplay,
	))

	if flag.Suggestion != "" {
		builder.WriteString("    " + s.Dim.Render("Suggestion:") + " " +
			s.Suggestion.Render(flag.Suggestion) + "\n")
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityWarn:
		return s.Warning.Render("warn")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatDocumentHeader formats a document header for grouped output.
func (s *Styles) FormatDocumentHeader(path string, flagCount int) string {
	header := s.DocPath.Render(path)
	switch {
	case flagCount == 1:
		header += s.Dim.Render(" (1 flag)")
	case flagCount > 1:
		header += s.Dim.Render(fmt.Sprintf(" (%d flags)", flagCount))
	}
	return header
}

// FormatCleanCopy formats a rewritten clean copy block.
func (s *Styles) FormatCleanCopy(clean string) string {
	var builder strings.Builder
	builder.WriteString("\n" + s.CleanHeader.Render("Clean copy") + "\n")
	for _, line := range strings.Split(strings.TrimRight(clean, "\n"), "\n") {
		builder.WriteString("  " + s.CleanBody.Render(line) + "\n")
	}
	return builder.String()
}
