package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/wpslint/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordDocument        = "document"
	wordDocuments       = "documents"
)

func documentWord(n int) string {
	if n == 1 {
		return wordDocument
	}
	return wordDocuments
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "5 flags (4 warn, 1 info) in 2 documents, 1 rewritten".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FlagsTotal == 0 {
		msg := s.Success.Render("No flags raised") +
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.DocumentsProcessed, documentWord(stats.DocumentsProcessed)))
		if stats.DocumentsNoText > 0 {
			msg += ", " + s.Warning.Render(fmt.Sprintf("%d with no usable text", stats.DocumentsNoText))
		}
		return msg + "\n"
	}

	var parts []string

	flagWord := "flags"
	if stats.FlagsTotal == 1 {
		flagWord = "flag"
	}

	var severityParts []string
	if warnings := stats.FlagsBySeverity["warn"]; warnings > 0 {
		severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d warn", warnings)))
	}
	if infos := stats.FlagsBySeverity["info"]; infos > 0 {
		severityParts = append(severityParts, s.Info.Render(fmt.Sprintf("%d info", infos)))
	}

	if len(severityParts) > 0 {
		parts = append(parts, fmt.Sprintf("%d %s (%s)", stats.FlagsTotal, flagWord, strings.Join(severityParts, ", ")))
	} else {
		parts = append(parts, fmt.Sprintf("%d %s", stats.FlagsTotal, flagWord))
	}

	parts = append(parts, fmt.Sprintf("in %d %s", stats.DocumentsWithFlags, documentWord(stats.DocumentsWithFlags)))

	if stats.DocumentsRewritten > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d rewritten", stats.DocumentsRewritten)))
	}
	if stats.DocumentsNoText > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d with no usable text", stats.DocumentsNoText)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Documents checked:   " +
		s.SummaryValue.Render(strconv.Itoa(stats.DocumentsProcessed)) + "\n")

	if stats.DocumentsWithFlags > 0 {
		builder.WriteString("  Documents flagged:   " +
			s.Failure.Render(strconv.Itoa(stats.DocumentsWithFlags)) + "\n")
	}
	if stats.DocumentsNoText > 0 {
		builder.WriteString("  No usable text:      " +
			s.Warning.Render(strconv.Itoa(stats.DocumentsNoText)) + "\n")
	}
	if stats.DocumentsErrored > 0 {
		builder.WriteString("  Documents errored:   " +
			s.Failure.Render(strconv.Itoa(stats.DocumentsErrored)) + "\n")
	}
	if stats.DocumentsRewritten > 0 {
		builder.WriteString("  Documents rewritten: " +
			s.Success.Render(strconv.Itoa(stats.DocumentsRewritten)) + "\n")
	}

	builder.WriteString("\n")

	builder.WriteString("  Total flags:         " +
		s.SummaryValue.Render(strconv.Itoa(stats.FlagsTotal)) + "\n")

	if warnings := stats.FlagsBySeverity["warn"]; warnings > 0 {
		builder.WriteString("    Warn:              " +
			s.Warning.Render(strconv.Itoa(warnings)) + "\n")
	}
	if infos := stats.FlagsBySeverity["info"]; infos > 0 {
		builder.WriteString("    Info:              " +
			s.Info.Render(strconv.Itoa(infos)) + "\n")
	}

	if stats.RuleErrorsTotal > 0 {
		builder.WriteString("  Rules skipped:       " +
			s.Warning.Render(strconv.Itoa(stats.RuleErrorsTotal)) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case stats.FlagsTotal > 0:
		builder.WriteString(s.Warning.Render("Review the flags above before publishing"))
	case stats.DocumentsNoText > 0:
		builder.WriteString(s.Warning.Render("Some documents had no usable text"))
	default:
		builder.WriteString(s.Success.Render("All documents read as inclusive"))
	}
	builder.WriteString("\n")

	return builder.String()
}
