// Package ruleset holds the declarative accessibility rule packs for wpslint.
//
// A rule pack is an ordered list of rule objects. Order is significant: it
// determines both the order flags are reported in and the order rewrite
// substitutions compose, since later rules rewrite text already mutated by
// earlier rules. Validation and pattern compilation happen once at load time
// so the lint hot path never allocates for rule bookkeeping or fails.
//
// Rule patterns are a trust boundary: packs are data supplied by operators.
// Go's regexp engine (RE2) guarantees linear-time matching, so a pathological
// pattern can slow a pass but cannot backtrack catastrophically.
package ruleset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/wpslint/pkg/config"
)

// Load-time rule pack errors.
var (
	// ErrMalformedRule indicates a rule is missing a required field.
	ErrMalformedRule = errors.New("malformed rule")

	// ErrDuplicateRuleID indicates two rules in a pack share an id.
	ErrDuplicateRuleID = errors.New("duplicate rule id")

	// ErrInvalidPattern indicates a rule pattern does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")
)

// Rule is a single accessibility linting rule.
//
// A rule with a non-empty Rewrite is rewrite-eligible: its substitution is
// applied to the running clean copy using the same detection pattern and the
// same case sensitivity. Rules without a Rewrite are detect-only.
type Rule struct {
	// ID is the unique, stable rule identifier (e.g. "R-A1").
	ID string `yaml:"id" json:"id"`

	// Category is an optional semantic grouping label
	// (e.g. "physical-requirement", "soft-skill", "legal-boilerplate").
	Category string `yaml:"category" json:"category"`

	// Severity carries the rule's severity as data; it is not validated
	// against a closed list.
	Severity config.Severity `yaml:"severity" json:"severity"`

	// Pattern is the detection regular expression over the input text.
	Pattern string `yaml:"pattern" json:"pattern"`

	// Flags holds pattern modifier characters. Only "i" (case-insensitive)
	// is recognized; other characters are carried but ignored.
	Flags string `yaml:"flags" json:"flags"`

	// Message explains why a match is flagged.
	Message string `yaml:"message" json:"message"`

	// Suggestion is remediation guidance, independent of the rewrite.
	Suggestion string `yaml:"suggestion" json:"suggestion"`

	// Rewrite is an optional replacement template. It may reference capture
	// groups from Pattern with $1, $2, ... which are preserved verbatim in
	// the rewritten phrase.
	Rewrite string `yaml:"rewrite" json:"rewrite"`

	re *regexp.Regexp
}

// CaseInsensitive reports whether the rule requests case-insensitive matching.
func (r *Rule) CaseInsensitive() bool {
	return strings.ContainsRune(r.Flags, 'i')
}

// RewriteEligible reports whether the rule mutates the clean copy.
func (r *Rule) RewriteEligible() bool {
	return r.Rewrite != ""
}

// Regexp returns the compiled detection pattern, compiling it on first use
// for rules constructed directly rather than through Load.
func (r *Rule) Regexp() (*regexp.Regexp, error) {
	if r.re != nil {
		return r.re, nil
	}
	re, err := compilePattern(r.Pattern, r.CaseInsensitive())
	if err != nil {
		return nil, err
	}
	r.re = re
	return re, nil
}

func compilePattern(pattern string, caseInsensitive bool) (*regexp.Regexp, error) {
	src := pattern
	if caseInsensitive {
		src = "(?i)" + src
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return re, nil
}

// RuleSet is an ordered, uniquely-keyed collection of rules.
// It is immutable after construction and safe for concurrent reads.
type RuleSet struct {
	rules []Rule
	index map[string]int
}

// New builds a RuleSet from validated, pre-ordered rules.
// It enforces required fields, id uniqueness, and pattern compilation,
// exactly like Load does for declarative sources.
func New(rules ...Rule) (*RuleSet, error) {
	rs := &RuleSet{
		rules: make([]Rule, 0, len(rules)),
		index: make(map[string]int, len(rules)),
	}
	for _, rule := range rules {
		if err := validateRule(&rule); err != nil {
			return nil, err
		}
		if _, exists := rs.index[rule.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRuleID, rule.ID)
		}
		re, err := compilePattern(rule.Pattern, rule.CaseInsensitive())
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", rule.ID, err)
		}
		rule.re = re
		rs.index[rule.ID] = len(rs.rules)
		rs.rules = append(rs.rules, rule)
	}
	return rs, nil
}

// Load parses a declarative rule pack (a YAML or JSON array of rule objects)
// into a validated RuleSet. Unknown fields are ignored. Any malformed rule,
// duplicate id, or uncompilable pattern fails the whole load.
func Load(r io.Reader) (*RuleSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read rule pack: %w", err)
	}

	var specs []Rule
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("parse rule pack: %w", err)
	}

	return New(specs...)
}

// LoadFile loads a rule pack from a file path.
func LoadFile(path string) (*RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rule pack: %w", err)
	}
	defer func() { _ = f.Close() }()

	rs, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rs, nil
}

func validateRule(rule *Rule) error {
	required := []struct {
		name  string
		value string
	}{
		{"id", rule.ID},
		{"pattern", rule.Pattern},
		{"severity", string(rule.Severity)},
		{"message", rule.Message},
		{"suggestion", rule.Suggestion},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			if rule.ID != "" {
				return fmt.Errorf("%w: rule %q missing %s", ErrMalformedRule, rule.ID, field.name)
			}
			return fmt.Errorf("%w: missing %s", ErrMalformedRule, field.name)
		}
	}
	return nil
}

// Len returns the number of rules in the set.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Rules returns the rules in insertion order.
// The returned slice is a copy; the set itself is never mutated.
func (rs *RuleSet) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

// Get returns the rule with the given id.
func (rs *RuleSet) Get(id string) (Rule, bool) {
	i, ok := rs.index[id]
	if !ok {
		return Rule{}, false
	}
	return rs.rules[i], true
}

// IDs returns the rule ids in insertion order.
func (rs *RuleSet) IDs() []string {
	out := make([]string, len(rs.rules))
	for i, rule := range rs.rules {
		out[i] = rule.ID
	}
	return out
}
