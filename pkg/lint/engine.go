package lint

import (
	"context"
	"fmt"

	"github.com/yaklabco/wpslint/pkg/ruleset"
)

// Engine runs detection and rewrite over a text document in one pass per rule.
//
// The engine is stateless and safe for concurrent use: the rule set is
// immutable after load, each call owns its inputs and outputs, and nothing is
// shared between invocations. Given identical (text, rules) inputs the output
// is byte-identical across runs; rule order in the set is the single source
// of ordering truth.
type Engine struct{}

// NewEngine creates a new Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Lint runs every rule against text and returns the flags plus the clean copy.
//
// For each rule, in rule-set order:
//   - The detection pattern is matched against the ORIGINAL input, scanning
//     left to right without overlap; every match appends a Flag.
//   - If the rule is rewrite-eligible, its substitution is applied to the
//     running clean copy, which starts as the original text and accumulates
//     prior rules' rewrites. Capture-group references in the template are
//     preserved verbatim.
//
// Empty or whitespace-only text is valid input: zero flags, clean equal to
// the input. A rule whose pattern fails to compile is skipped for this call
// only and recorded in Result.RuleErrors; the pass continues with the next
// rule. The only error Lint itself returns is context cancellation.
func (e *Engine) Lint(ctx context.Context, text string, rules *ruleset.RuleSet) (*Result, error) {
	if rules == nil {
		return e.LintRules(ctx, text, nil)
	}
	return e.LintRules(ctx, text, rules.Rules())
}

// LintRules is Lint over an explicit ordered rule slice. It exists for
// callers that assemble rules programmatically; rules built this way may
// carry patterns that never went through load-time validation, which is
// where the per-rule skip policy earns its keep.
func (e *Engine) LintRules(ctx context.Context, text string, rules []ruleset.Rule) (*Result, error) {
	result := &Result{
		Clean:      text,
		RuleErrors: make(map[string]error),
	}

	for _, rule := range rules {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("lint cancelled: %w", ctx.Err())
		default:
		}

		re, err := rule.Regexp()
		if err != nil {
			result.RuleErrors[rule.ID] = err
			continue
		}

		for _, match := range re.FindAllString(text, -1) {
			result.Flags = append(result.Flags, Flag{
				RuleID:     rule.ID,
				Category:   rule.Category,
				Severity:   rule.Severity,
				Match:      match,
				Message:    rule.Message,
				Suggestion: rule.Suggestion,
			})
		}

		if rule.RewriteEligible() {
			result.Clean = re.ReplaceAllString(result.Clean, rule.Rewrite)
		}
	}

	return result, nil
}
