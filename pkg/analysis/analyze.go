// Package analysis turns raw runner results into renderer-ready views:
// a flat flag list plus per-document, per-rule, and per-category groupings
// with deterministic ordering.
package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"time"

	"github.com/yaklabco/wpslint/pkg/runner"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// Severity string constants for internal use.
const (
	severityWarn = "warn"
	severityInfo = "info"
)

// makeRelativePath converts an absolute path to a relative path from workDir.
// If workDir is empty or conversion fails, returns the original path.
func makeRelativePath(absPath, workDir string) string {
	if workDir == "" {
		return absPath
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil {
		return absPath
	}
	return relPath
}

// normalizeSeverity returns the severity string, defaulting to warn.
func normalizeSeverity(sev string) string {
	if sev == "" {
		return severityWarn
	}
	return sev
}

// analysisContext holds temporary state during analysis.
type analysisContext struct {
	docMap        map[string]*DocumentAnalysis
	ruleMap       map[string]*RuleAnalysis
	categoryMap   map[string]*CategoryAnalysis
	docRules      map[string]map[string]bool
	ruleDocs      map[string]map[string]bool
	categoryRules map[string]map[string]bool
	docOrder      []string
}

func newAnalysisContext() *analysisContext {
	return &analysisContext{
		docMap:        make(map[string]*DocumentAnalysis),
		ruleMap:       make(map[string]*RuleAnalysis),
		categoryMap:   make(map[string]*CategoryAnalysis),
		docRules:      make(map[string]map[string]bool),
		ruleDocs:      make(map[string]map[string]bool),
		categoryRules: make(map[string]map[string]bool),
	}
}

func (ctx *analysisContext) document(path string) *DocumentAnalysis {
	if _, ok := ctx.docMap[path]; !ok {
		ctx.docMap[path] = &DocumentAnalysis{Path: path}
		ctx.docRules[path] = make(map[string]bool)
		ctx.docOrder = append(ctx.docOrder, path)
	}
	return ctx.docMap[path]
}

func (ctx *analysisContext) rule(ruleID, category string) *RuleAnalysis {
	if _, ok := ctx.ruleMap[ruleID]; !ok {
		ctx.ruleMap[ruleID] = &RuleAnalysis{RuleID: ruleID, Category: category}
		ctx.ruleDocs[ruleID] = make(map[string]bool)
	}
	return ctx.ruleMap[ruleID]
}

func (ctx *analysisContext) category(name string) *CategoryAnalysis {
	if _, ok := ctx.categoryMap[name]; !ok {
		ctx.categoryMap[name] = &CategoryAnalysis{Category: name}
		ctx.categoryRules[name] = make(map[string]bool)
	}
	return ctx.categoryMap[name]
}

// Analyze transforms a runner.Result into a Report.
// It performs a single pass through flags to compute all views.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
	}

	if result == nil {
		return report
	}

	ctx := newAnalysisContext()

	for _, doc := range result.Documents {
		report.Totals.Documents++

		if doc.Error != nil {
			report.Totals.DocumentsErrored++
			continue
		}
		if doc.NoUsableText {
			report.Totals.DocumentsNoText++
			continue
		}
		if doc.Result == nil {
			continue
		}

		report.Totals.RuleErrors += len(doc.Result.RuleErrors)
		if len(doc.Result.Flags) > 0 {
			report.Totals.DocumentsWithFlag++
		}

		displayPath := makeRelativePath(doc.Path, opts.WorkingDir)
		da := ctx.document(displayPath)

		for _, flag := range doc.Result.Flags {
			report.Totals.Flags++
			severity := normalizeSeverity(string(flag.Severity))

			switch severity {
			case severityWarn:
				report.Totals.Warnings++
				da.Warnings++
			case severityInfo:
				report.Totals.Infos++
				da.Infos++
			}

			da.Flags++
			ctx.docRules[displayPath][flag.RuleID] = true

			ra := ctx.rule(flag.RuleID, flag.Category)
			ra.Flags++
			switch severity {
			case severityWarn:
				ra.Warnings++
			case severityInfo:
				ra.Infos++
			}
			ctx.ruleDocs[flag.RuleID][displayPath] = true

			ca := ctx.category(flag.Category)
			ca.Flags++
			ctx.categoryRules[flag.Category][flag.RuleID] = true

			if opts.IncludeFlags {
				report.Flags = append(report.Flags, FlagEntry{
					Document:   displayPath,
					RuleID:     flag.RuleID,
					Category:   flag.Category,
					Severity:   severity,
					Match:      flag.Match,
					Message:    flag.Message,
					Suggestion: flag.Suggestion,
				})
			}
		}
	}

	if opts.IncludeByRule {
		report.ByRule = ctx.buildByRule(opts)
	}
	if opts.IncludeByDocument {
		report.ByDocument = ctx.buildByDocument(opts)
	}
	if opts.IncludeByCategory {
		report.ByCategory = ctx.buildByCategory()
	}

	return report
}

func (ctx *analysisContext) buildByRule(opts Options) []RuleAnalysis {
	result := make([]RuleAnalysis, 0, len(ctx.ruleMap))
	for ruleID, ra := range ctx.ruleMap {
		for d := range ctx.ruleDocs[ruleID] {
			ra.Documents = append(ra.Documents, d)
		}
		slices.Sort(ra.Documents)
		result = append(result, *ra)
	}
	sortRuleAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

func (ctx *analysisContext) buildByDocument(opts Options) []DocumentAnalysis {
	var result []DocumentAnalysis
	for _, path := range ctx.docOrder {
		da := ctx.docMap[path]
		if da.Flags == 0 {
			continue
		}
		for r := range ctx.docRules[path] {
			da.Rules = append(da.Rules, r)
		}
		slices.Sort(da.Rules)
		result = append(result, *da)
	}
	sortDocumentAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

// buildByCategory always sorts alphabetically; categories are few and a
// stable order reads better than count ordering.
func (ctx *analysisContext) buildByCategory() []CategoryAnalysis {
	result := make([]CategoryAnalysis, 0, len(ctx.categoryMap))
	for name, ca := range ctx.categoryMap {
		for r := range ctx.categoryRules[name] {
			ca.Rules = append(ca.Rules, r)
		}
		slices.Sort(ca.Rules)
		result = append(result, *ca)
	}
	slices.SortFunc(result, func(left, right CategoryAnalysis) int {
		return cmp.Compare(left.Category, right.Category)
	})
	return result
}

func sortRuleAnalysis(rules []RuleAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(rules, func(left, right RuleAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			return cmp.Compare(left.RuleID, right.RuleID)
		case SortBySeverity:
			result := cmp.Compare(right.Warnings, left.Warnings)
			if result == 0 {
				result = cmp.Compare(right.Flags, left.Flags)
			}
			if result == 0 {
				result = cmp.Compare(left.RuleID, right.RuleID)
			}
			return result
		default: // SortByCount
			result := cmp.Compare(left.Flags, right.Flags)
			if desc {
				result = -result
			}
			if result == 0 {
				result = cmp.Compare(left.RuleID, right.RuleID)
			}
			return result
		}
	})
}

func sortDocumentAnalysis(docs []DocumentAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(docs, func(left, right DocumentAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			return cmp.Compare(left.Path, right.Path)
		case SortBySeverity:
			result := cmp.Compare(right.Warnings, left.Warnings)
			if result == 0 {
				result = cmp.Compare(right.Flags, left.Flags)
			}
			if result == 0 {
				result = cmp.Compare(left.Path, right.Path)
			}
			return result
		default: // SortByCount
			result := cmp.Compare(left.Flags, right.Flags)
			if desc {
				result = -result
			}
			if result == 0 {
				result = cmp.Compare(left.Path, right.Path)
			}
			return result
		}
	})
}
