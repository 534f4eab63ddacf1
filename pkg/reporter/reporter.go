// Package reporter renders lint runs for humans and machines: styled text,
// tables, stable JSON, and aggregate summaries.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/wpslint/pkg/analysis"
	"github.com/yaklabco/wpslint/pkg/runner"
)

// Compile-time interface check for rendererFacade.
var _ Reporter = (*rendererFacade)(nil)

// Reporter formats and writes lint results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of flags reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// rendererFacade bridges the Reporter interface to Renderer implementations
// that work from a pre-computed analysis report.
type rendererFacade struct {
	renderer     Renderer
	analysisOpts analysis.Options
}

// Report implements Reporter by analyzing the result and rendering it.
func (f *rendererFacade) Report(ctx context.Context, result *runner.Result) (int, error) {
	report := analysis.Analyze(result, f.analysisOpts)
	if err := f.renderer.Render(ctx, report); err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}
	return report.Totals.Flags, nil
}

func newRendererFacade(renderer Renderer, opts Options) *rendererFacade {
	return &rendererFacade{
		renderer: renderer,
		analysisOpts: analysis.Options{
			IncludeFlags:      true,
			IncludeByDocument: true,
			IncludeByRule:     true,
			IncludeByCategory: true,
			SortBy:            analysis.SortByCount,
			SortDesc:          true,
			WorkingDir:        opts.WorkingDir,
		},
	}
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatTable:
		return newRendererFacade(NewTableRenderer(opts), opts), nil
	case FormatSummary:
		return newRendererFacade(NewSummaryRenderer(opts), opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
