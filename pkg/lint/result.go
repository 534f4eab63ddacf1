// Package lint provides the accessibility linting and rewrite engine.
package lint

import (
	"github.com/yaklabco/wpslint/pkg/config"
)

// Flag is a single detection record, immutable after creation.
//
// Match is the literal matched substring of the ORIGINAL text, not the
// partially rewritten clean copy; flags never reflect rewritten text.
type Flag struct {
	// RuleID references the rule that produced this flag.
	RuleID string

	// Category is the rule's semantic grouping label (may be empty).
	Category string

	// Severity is carried through from the rule as data.
	Severity config.Severity

	// Match is the matched substring of the original input.
	Match string

	// Message explains why the match was flagged.
	Message string

	// Suggestion is the rule's remediation guidance.
	Suggestion string
}

// Result contains the outputs of a single lint pass.
type Result struct {
	// Flags holds all detections in rule order, then left-to-right match
	// order within each rule.
	Flags []Flag

	// Clean is the rewritten copy: the original text with each
	// rewrite-eligible rule's substitution applied in rule order, each
	// threading the previous rule's output.
	Clean string

	// RuleErrors records rules skipped during this pass, keyed by rule id.
	// A skipped rule contributes no flags and no rewrite; the pass itself
	// still succeeds.
	RuleErrors map[string]error
}

// HasFlags returns true if any detections were recorded.
func (r *Result) HasFlags() bool {
	return len(r.Flags) > 0
}

// FlagCount returns the total number of detections.
func (r *Result) FlagCount() int {
	return len(r.Flags)
}

// CountBySeverity returns flag counts keyed by severity string.
func (r *Result) CountBySeverity() map[string]int {
	counts := make(map[string]int)
	for _, flag := range r.Flags {
		counts[string(flag.Severity)]++
	}
	return counts
}
