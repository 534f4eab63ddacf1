package ruleset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/wpslint/pkg/config"
)

func TestLoadPreservesOrder(t *testing.T) {
	t.Parallel()

	src := `
- id: Z-9
  severity: warn
  pattern: foo
  message: m
  suggestion: s
- id: A-1
  severity: info
  pattern: bar
  message: m
  suggestion: s
- id: M-5
  severity: warn
  pattern: baz
  message: m
  suggestion: s
`
	rs, err := Load(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, []string{"Z-9", "A-1", "M-5"}, rs.IDs())
	assert.Equal(t, 3, rs.Len())
}

func TestLoadAcceptsJSON(t *testing.T) {
	t.Parallel()

	src := `[{"id":"R-1","severity":"warn","pattern":"x","message":"m","suggestion":"s"}]`

	rs, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 1, rs.Len())

	rule, ok := rs.Get("R-1")
	require.True(t, ok)
	assert.Equal(t, config.SeverityWarn, rule.Severity)
}

func TestLoadMissingRequiredField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{
			name: "missing id",
			src:  "- severity: warn\n  pattern: x\n  message: m\n  suggestion: s\n",
		},
		{
			name: "missing pattern",
			src:  "- id: R-1\n  severity: warn\n  message: m\n  suggestion: s\n",
		},
		{
			name: "missing severity",
			src:  "- id: R-1\n  pattern: x\n  message: m\n  suggestion: s\n",
		},
		{
			name: "missing message",
			src:  "- id: R-1\n  severity: warn\n  pattern: x\n  suggestion: s\n",
		},
		{
			name: "missing suggestion",
			src:  "- id: R-1\n  severity: warn\n  pattern: x\n  message: m\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(strings.NewReader(tt.src))
			require.ErrorIs(t, err, ErrMalformedRule)
		})
	}
}

func TestLoadDuplicateID(t *testing.T) {
	t.Parallel()

	src := `
- id: X
  severity: warn
  pattern: a
  message: m
  suggestion: s
- id: X
  severity: warn
  pattern: b
  message: m
  suggestion: s
`
	_, err := Load(strings.NewReader(src))
	require.ErrorIs(t, err, ErrDuplicateRuleID)
	assert.Contains(t, err.Error(), `"X"`)
}

func TestLoadInvalidPattern(t *testing.T) {
	t.Parallel()

	src := "- id: R-1\n  severity: warn\n  pattern: '[unclosed'\n  message: m\n  suggestion: s\n"

	_, err := Load(strings.NewReader(src))
	require.ErrorIs(t, err, ErrInvalidPattern)
}

func TestLoadIgnoresUnknownFields(t *testing.T) {
	t.Parallel()

	src := `
- id: R-1
  severity: warn
  pattern: x
  message: m
  suggestion: s
  owner: somebody
  notes: free-form
`
	rs, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 1, rs.Len())
}

func TestCaseInsensitiveFlag(t *testing.T) {
	t.Parallel()

	rule := Rule{ID: "R-1", Severity: "warn", Pattern: "abc", Flags: "i", Message: "m", Suggestion: "s"}
	re, err := rule.Regexp()
	require.NoError(t, err)

	assert.True(t, re.MatchString("ABC"))
	assert.True(t, rule.CaseInsensitive())

	sensitive := Rule{ID: "R-2", Severity: "warn", Pattern: "abc", Message: "m", Suggestion: "s"}
	re, err = sensitive.Regexp()
	require.NoError(t, err)

	assert.False(t, re.MatchString("ABC"))
	assert.False(t, sensitive.CaseInsensitive())
}

func TestRewriteEligibility(t *testing.T) {
	t.Parallel()

	withRewrite := Rule{Rewrite: "x"}
	assert.True(t, withRewrite.RewriteEligible())

	detectOnly := Rule{}
	assert.False(t, detectOnly.RewriteEligible())
}

func TestRulesReturnsCopy(t *testing.T) {
	t.Parallel()

	rs, err := New(Rule{ID: "R-1", Severity: "warn", Pattern: "x", Message: "m", Suggestion: "s"})
	require.NoError(t, err)

	rules := rs.Rules()
	rules[0].ID = "mutated"

	again := rs.Rules()
	assert.Equal(t, "R-1", again[0].ID)
}

func TestDefaultPack(t *testing.T) {
	t.Parallel()

	rs := Default()
	require.Equal(t, []string{"R-A1", "R-A2", "R-B3", "R-D1"}, rs.IDs())

	a1, ok := rs.Get("R-A1")
	require.True(t, ok)
	assert.Equal(t, "ascend", a1.Rewrite)
	assert.True(t, a1.CaseInsensitive())
	assert.Equal(t, "physical-requirement", a1.Category)

	a2, ok := rs.Get("R-A2")
	require.True(t, ok)
	re, err := a2.Regexp()
	require.NoError(t, err)
	assert.Equal(t, "lifting 50 lbs", re.FindString("enjoy lifting 50 lbs daily"))

	d1, ok := rs.Get("R-D1")
	require.True(t, ok)
	assert.False(t, d1.RewriteEligible())
	assert.Equal(t, config.SeverityInfo, d1.Severity)
}

func TestDefaultPackIsStableAcrossCalls(t *testing.T) {
	t.Parallel()

	assert.Same(t, Default(), Default())
}
