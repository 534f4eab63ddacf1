package reporter

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/yaklabco/wpslint/internal/ui/pretty"
	"github.com/yaklabco/wpslint/pkg/analysis"
)

// maxMatchWidth truncates matched snippets so one long match cannot blow up
// the table layout.
const maxMatchWidth = 40

// TableRenderer formats the flat flag list as one table.
type TableRenderer struct {
	opts   Options
	styles *pretty.Styles
}

// NewTableRenderer creates a new table renderer.
func NewTableRenderer(opts Options) *TableRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TableRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
	}
}

// Render implements Renderer.
func (r *TableRenderer) Render(_ context.Context, report *analysis.Report) error {
	if report.Totals.Flags == 0 {
		fmt.Fprintln(r.opts.Writer, r.styles.Success.Render("No flags raised"))
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.opts.Writer)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Document", "Rule", "Category", "Severity", "Match", "Suggestion"})

	for _, entry := range report.Flags {
		t.AppendRow(table.Row{
			entry.Document,
			entry.RuleID,
			entry.Category,
			entry.Severity,
			text.Trim(entry.Match, maxMatchWidth),
			entry.Suggestion,
		})
	}

	t.AppendFooter(table.Row{"", "", "", "", "Total", report.Totals.Flags})
	t.Render()

	if r.opts.ShowSummary {
		fmt.Fprintf(r.opts.Writer, "%d flags in %d of %d documents\n",
			report.Totals.Flags, report.Totals.DocumentsWithFlag, report.Totals.Documents)
	}

	return nil
}
