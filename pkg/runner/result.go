package runner

import (
	"github.com/yaklabco/wpslint/pkg/extract"
	"github.com/yaklabco/wpslint/pkg/lint"
)

// DocumentOutcome is the result of processing one document.
type DocumentOutcome struct {
	// Path is the document path that was processed.
	Path string

	// Format is the detected document format.
	Format extract.Format

	// Result contains the lint result for this document.
	// Nil when the document errored or yielded no usable text.
	Result *lint.Result

	// NoUsableText is set when extraction produced nothing lintable. The
	// document is still reported so the caller can distinguish "clean" from
	// "unreadable".
	NoUsableText bool

	// Written is set when the clean copy was written back in place.
	Written bool

	// BackedUp is set when a sidecar backup was created before rewriting.
	BackedUp bool

	// Skipped is set when an in-place rewrite was aborted because the file
	// changed between read and write.
	Skipped bool

	// Error is set if the document could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// DocumentsDiscovered is the total number of documents found.
	DocumentsDiscovered int

	// DocumentsProcessed is the number of documents successfully linted.
	DocumentsProcessed int

	// DocumentsNoText is the number of documents with no usable text.
	DocumentsNoText int

	// DocumentsErrored is the number of documents that failed outright.
	DocumentsErrored int

	// DocumentsSkipped counts rewrites aborted due to concurrent edits.
	DocumentsSkipped int

	// DocumentsWithFlags is the number of documents with at least one flag.
	DocumentsWithFlags int

	// DocumentsRewritten is the number of documents written in place.
	DocumentsRewritten int

	// FlagsTotal is the total number of flags across all documents.
	FlagsTotal int

	// FlagsBySeverity maps severity strings to counts.
	FlagsBySeverity map[string]int

	// RuleErrorsTotal counts rules skipped at lint time across documents.
	RuleErrorsTotal int
}

// Result is the overall runner result. Documents appear in discovery order.
type Result struct {
	Documents []DocumentOutcome
	Stats     Stats
}

// HasFlags reports whether any document produced flags.
func (r *Result) HasFlags() bool {
	if r == nil {
		return false
	}
	return r.Stats.FlagsTotal > 0
}

// HasErrors reports whether any document failed to process.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.DocumentsErrored > 0
}

func newStats() Stats {
	return Stats{
		FlagsBySeverity: make(map[string]int),
	}
}

// accumulate folds one document outcome into the aggregate result.
func (r *Result) accumulate(outcome DocumentOutcome) {
	r.Documents = append(r.Documents, outcome)

	if outcome.Error != nil {
		r.Stats.DocumentsErrored++
		return
	}

	if outcome.NoUsableText {
		r.Stats.DocumentsNoText++
		return
	}

	if outcome.Result == nil {
		return
	}

	r.Stats.DocumentsProcessed++

	if outcome.Skipped {
		r.Stats.DocumentsSkipped++
	}
	if outcome.Written {
		r.Stats.DocumentsRewritten++
	}

	flagCount := len(outcome.Result.Flags)
	r.Stats.FlagsTotal += flagCount
	if flagCount > 0 {
		r.Stats.DocumentsWithFlags++
	}

	for _, flag := range outcome.Result.Flags {
		r.Stats.FlagsBySeverity[string(flag.Severity)]++
	}

	r.Stats.RuleErrorsTotal += len(outcome.Result.RuleErrors)
}
