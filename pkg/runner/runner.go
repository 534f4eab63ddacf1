package runner

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/yaklabco/wpslint/internal/logging"
	"github.com/yaklabco/wpslint/pkg/extract"
	"github.com/yaklabco/wpslint/pkg/fsutil"
	"github.com/yaklabco/wpslint/pkg/lint"
	"github.com/yaklabco/wpslint/pkg/ruleset"
)

// Runner orchestrates multi-document linting.
type Runner struct {
	engine    *lint.Engine
	rules     *ruleset.RuleSet
	extractor *extract.Service
}

// New creates a Runner linting with the given rule set.
func New(rules *ruleset.RuleSet) *Runner {
	return &Runner{
		engine:    lint.NewEngine(),
		rules:     rules,
		extractor: extract.New(),
	}
}

// Run discovers documents under opts.Paths and lints them concurrently.
// Document outcomes are returned in discovery order regardless of worker
// completion order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Documents: make([]DocumentOutcome, 0, len(files)),
		Stats:     newStats(),
	}
	result.Stats.DocumentsDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan DocumentOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; key by path and rebuild in
	// discovery order.
	outcomes := make(map[string]DocumentOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- DocumentOutcome, opts Options) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.processDocument(ctx, path, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// rewritable reports whether a format can be rewritten in place. Binary
// formats are lint-only.
func rewritable(format extract.Format) bool {
	return format == extract.FormatText || format == extract.FormatMarkdown
}

// processDocument runs the per-document pipeline: read, extract, lint, and
// optionally rewrite in place.
func (r *Runner) processDocument(ctx context.Context, path string, opts Options) DocumentOutcome {
	logger := logging.FromContext(ctx)

	outcome := DocumentOutcome{
		Path:   path,
		Format: extract.DetectFormat(path),
	}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	text := r.extractor.Extract(ctx, content, outcome.Format)
	if strings.TrimSpace(text) == "" {
		outcome.NoUsableText = true
		return outcome
	}

	res, err := r.engine.Lint(ctx, text, r.rules)
	if err != nil {
		outcome.Error = fmt.Errorf("lint %s: %w", path, err)
		return outcome
	}
	outcome.Result = res

	if opts.Write && rewritable(outcome.Format) {
		// Rewrites run over the raw source, not the extracted text, so
		// Markdown structure survives the round trip.
		raw, err := r.engine.Lint(ctx, string(content), r.rules)
		if err != nil {
			outcome.Error = fmt.Errorf("rewrite %s: %w", path, err)
			return outcome
		}
		if raw.Clean != string(content) {
			modified, err := fsutil.CheckModified(ctx, info)
			if err != nil {
				outcome.Error = fmt.Errorf("check %s: %w", path, err)
				return outcome
			}
			if modified {
				logger.Warn("document changed during run, skipping rewrite", logging.FieldPath, path)
				outcome.Skipped = true
				return outcome
			}

			backedUp, err := fsutil.CreateBackup(ctx, path, opts.Backup)
			if err != nil {
				outcome.Error = fmt.Errorf("backup %s: %w", path, err)
				return outcome
			}
			outcome.BackedUp = backedUp

			if err := fsutil.WriteAtomic(ctx, path, []byte(raw.Clean), info.Mode); err != nil {
				outcome.Error = fmt.Errorf("rewrite %s: %w", path, err)
				return outcome
			}
			outcome.Written = true
		}
	}

	return outcome
}
