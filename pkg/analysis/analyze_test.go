package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/wpslint/pkg/config"
	"github.com/yaklabco/wpslint/pkg/lint"
	"github.com/yaklabco/wpslint/pkg/runner"
)

func flag(ruleID, category string, severity config.Severity, match string) lint.Flag {
	return lint.Flag{
		RuleID:     ruleID,
		Category:   category,
		Severity:   severity,
		Match:      match,
		Message:    "message for " + ruleID,
		Suggestion: "suggestion for " + ruleID,
	}
}

func sampleResult() *runner.Result {
	return &runner.Result{
		Documents: []runner.DocumentOutcome{
			{
				Path: "/work/wps-a.txt",
				Result: &lint.Result{
					Flags: []lint.Flag{
						flag("R-A1", "physical-requirement", config.SeverityWarn, "climbing"),
						flag("R-A1", "physical-requirement", config.SeverityWarn, "climb"),
						flag("R-D1", "legal-boilerplate", config.SeverityInfo, "with or without reasonable accommodation"),
					},
				},
			},
			{
				Path: "/work/wps-b.txt",
				Result: &lint.Result{
					Flags: []lint.Flag{
						flag("R-B3", "soft-skill", config.SeverityWarn, "team player"),
					},
				},
			},
			{
				Path:   "/work/clean.txt",
				Result: &lint.Result{},
			},
			{
				Path:         "/work/empty.txt",
				NoUsableText: true,
			},
			{
				Path:  "/work/broken.txt",
				Error: errors.New("permission denied"),
			},
		},
	}
}

func TestAnalyzeEmptyResult(t *testing.T) {
	t.Parallel()

	report := Analyze(&runner.Result{}, DefaultOptions())

	require.NotNil(t, report)
	assert.Equal(t, 0, report.Totals.Flags)
	assert.Empty(t, report.Flags)
	assert.Empty(t, report.ByDocument)
	assert.Empty(t, report.ByRule)
	assert.Empty(t, report.ByCategory)
	assert.Equal(t, ReportVersion, report.Version)
}

func TestAnalyzeNilResult(t *testing.T) {
	t.Parallel()

	report := Analyze(nil, DefaultOptions())
	require.NotNil(t, report)
	assert.Equal(t, 0, report.Totals.Documents)
}

func TestAnalyzeTotals(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(), DefaultOptions())

	assert.Equal(t, 5, report.Totals.Documents)
	assert.Equal(t, 2, report.Totals.DocumentsWithFlag)
	assert.Equal(t, 1, report.Totals.DocumentsNoText)
	assert.Equal(t, 1, report.Totals.DocumentsErrored)
	assert.Equal(t, 4, report.Totals.Flags)
	assert.Equal(t, 3, report.Totals.Warnings)
	assert.Equal(t, 1, report.Totals.Infos)
	assert.True(t, report.Totals.HasFlags())
}

func TestAnalyzeFlatFlagsKeepDocumentOrder(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(), DefaultOptions())

	require.Len(t, report.Flags, 4)
	assert.Equal(t, "R-A1", report.Flags[0].RuleID)
	assert.Equal(t, "climbing", report.Flags[0].Match)
	assert.Equal(t, "R-B3", report.Flags[3].RuleID)
}

func TestAnalyzeByRuleCountOrder(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(), DefaultOptions())

	require.Len(t, report.ByRule, 3)
	// Count descending: R-A1 (2) first, then R-B3/R-D1 (1 each) by id.
	assert.Equal(t, "R-A1", report.ByRule[0].RuleID)
	assert.Equal(t, 2, report.ByRule[0].Flags)
	assert.Equal(t, "R-B3", report.ByRule[1].RuleID)
	assert.Equal(t, "R-D1", report.ByRule[2].RuleID)

	assert.Equal(t, []string{"/work/wps-a.txt"}, report.ByRule[0].Documents)
	assert.Equal(t, "physical-requirement", report.ByRule[0].Category)
}

func TestAnalyzeByDocumentSkipsCleanDocuments(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(), DefaultOptions())

	require.Len(t, report.ByDocument, 2)
	for _, da := range report.ByDocument {
		assert.NotEqual(t, "/work/clean.txt", da.Path)
	}

	assert.Equal(t, "/work/wps-a.txt", report.ByDocument[0].Path)
	assert.Equal(t, 3, report.ByDocument[0].Flags)
	assert.Equal(t, []string{"R-A1", "R-D1"}, report.ByDocument[0].Rules)
}

func TestAnalyzeByCategoryAlphabetical(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(), DefaultOptions())

	require.Len(t, report.ByCategory, 3)
	assert.Equal(t, "legal-boilerplate", report.ByCategory[0].Category)
	assert.Equal(t, "physical-requirement", report.ByCategory[1].Category)
	assert.Equal(t, "soft-skill", report.ByCategory[2].Category)
	assert.Equal(t, 2, report.ByCategory[1].Flags)
	assert.Equal(t, []string{"R-A1"}, report.ByCategory[1].Rules)
}

func TestAnalyzeRelativePaths(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.WorkingDir = "/work"
	report := Analyze(sampleResult(), opts)

	require.NotEmpty(t, report.ByDocument)
	assert.Equal(t, "wps-a.txt", report.ByDocument[0].Path)
}

func TestAnalyzeSortAlpha(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.SortBy = SortByAlpha
	report := Analyze(sampleResult(), opts)

	require.Len(t, report.ByRule, 3)
	assert.Equal(t, "R-A1", report.ByRule[0].RuleID)
	assert.Equal(t, "R-B3", report.ByRule[1].RuleID)
	assert.Equal(t, "R-D1", report.ByRule[2].RuleID)
}

func TestAnalyzeIncludeToggles(t *testing.T) {
	t.Parallel()

	opts := Options{SortBy: SortByCount}
	report := Analyze(sampleResult(), opts)

	assert.Empty(t, report.Flags)
	assert.Empty(t, report.ByDocument)
	assert.Empty(t, report.ByRule)
	assert.Empty(t, report.ByCategory)
	// Totals are always computed.
	assert.Equal(t, 4, report.Totals.Flags)
}

func TestAnalyzeRuleErrorsCounted(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Documents: []runner.DocumentOutcome{
			{
				Path: "doc.txt",
				Result: &lint.Result{
					RuleErrors: map[string]error{"R-X9": errors.New("bad pattern")},
				},
			},
		},
	}

	report := Analyze(result, DefaultOptions())
	assert.Equal(t, 1, report.Totals.RuleErrors)
}

func TestSortFieldValidity(t *testing.T) {
	t.Parallel()

	assert.True(t, SortByCount.IsValid())
	assert.True(t, SortByAlpha.IsValid())
	assert.True(t, SortBySeverity.IsValid())
	assert.False(t, SortField("bogus").IsValid())
}
