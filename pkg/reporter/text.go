package reporter

import (
	"bufio"
	"context"
	"fmt"
	"sort"

	"github.com/yaklabco/wpslint/internal/ui/pretty"
	"github.com/yaklabco/wpslint/pkg/runner"
)

// TextReporter formats results as styled terminal output, grouped by
// document.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Documents) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No documents to check."))
		}
		return 0, nil
	}

	var total int

	for _, doc := range result.Documents {
		path := r.opts.displayPath(doc.Path)

		if doc.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.DocPath.Render(path),
				r.styles.Failure.Render(fmt.Sprintf("error: %v", doc.Error)),
			)
			continue
		}

		if doc.NoUsableText {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.DocPath.Render(path),
				r.styles.Warning.Render("no usable text"),
			)
			continue
		}

		if doc.Result == nil {
			continue
		}

		flags := doc.Result.Flags
		if len(flags) == 0 && len(doc.Result.RuleErrors) == 0 {
			continue
		}

		fmt.Fprintln(r.bw, r.styles.FormatDocumentHeader(path, len(flags)))

		for i := range flags {
			fmt.Fprint(r.bw, r.styles.FormatFlag(&flags[i]))
			total++
		}

		// Sorted for stable output; map order is random.
		ruleIDs := make([]string, 0, len(doc.Result.RuleErrors))
		for ruleID := range doc.Result.RuleErrors {
			ruleIDs = append(ruleIDs, ruleID)
		}
		sort.Strings(ruleIDs)
		for _, ruleID := range ruleIDs {
			fmt.Fprintf(r.bw, "  %s\n",
				r.styles.Dim.Render(fmt.Sprintf("rule %s skipped: %v", ruleID, doc.Result.RuleErrors[ruleID])))
		}

		if r.opts.ShowClean && len(flags) > 0 {
			fmt.Fprint(r.bw, r.styles.FormatCleanCopy(doc.Result.Clean))
		}

		fmt.Fprintln(r.bw)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}
