package reporter

import (
	"context"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/yaklabco/wpslint/internal/ui/pretty"
	"github.com/yaklabco/wpslint/pkg/analysis"
)

// SummaryRenderer formats results as aggregated per-rule and per-document
// tables.
type SummaryRenderer struct {
	opts   Options
	styles *pretty.Styles
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, report *analysis.Report) error {
	if report.Totals.Flags == 0 {
		fmt.Fprintln(r.opts.Writer, r.styles.Success.Render("No flags raised"))
		return nil
	}

	r.renderRuleTable(report.ByRule)
	fmt.Fprintln(r.opts.Writer)
	r.renderDocumentTable(report.ByDocument)

	fmt.Fprintln(r.opts.Writer)
	fmt.Fprintf(r.opts.Writer, "%d flags (%d warn, %d info) in %d of %d documents\n",
		report.Totals.Flags,
		report.Totals.Warnings,
		report.Totals.Infos,
		report.Totals.DocumentsWithFlag,
		report.Totals.Documents,
	)

	return nil
}

func (r *SummaryRenderer) renderRuleTable(rules []analysis.RuleAnalysis) {
	t := table.NewWriter()
	t.SetOutputMirror(r.opts.Writer)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Flags by rule")
	t.AppendHeader(table.Row{"Rule", "Category", "Flags", "Warn", "Info", "Documents"})

	for _, rule := range rules {
		t.AppendRow(table.Row{
			rule.RuleID,
			rule.Category,
			rule.Flags,
			rule.Warnings,
			rule.Infos,
			strings.Join(rule.Documents, ", "),
		})
	}

	t.Render()
}

func (r *SummaryRenderer) renderDocumentTable(docs []analysis.DocumentAnalysis) {
	t := table.NewWriter()
	t.SetOutputMirror(r.opts.Writer)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Flags by document")
	t.AppendHeader(table.Row{"Document", "Flags", "Warn", "Info", "Rules"})

	for _, doc := range docs {
		t.AppendRow(table.Row{
			doc.Path,
			doc.Flags,
			doc.Warnings,
			doc.Infos,
			strings.Join(doc.Rules, ", "),
		})
	}

	t.Render()
}
