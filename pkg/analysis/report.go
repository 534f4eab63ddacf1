package analysis

import "time"

// Report contains pre-computed views of a lint run.
// Computed once by Analyze(), used by all renderers.
type Report struct {
	// Flags is the flat list for detailed output, in document order.
	Flags []FlagEntry `json:"flags,omitempty"`

	// ByDocument groups flags by document path.
	ByDocument []DocumentAnalysis `json:"byDocument,omitempty"`

	// ByRule groups flags by rule.
	ByRule []RuleAnalysis `json:"byRule,omitempty"`

	// ByCategory groups flags by rule category.
	ByCategory []CategoryAnalysis `json:"byCategory,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// FlagEntry represents a single flag in the report.
type FlagEntry struct {
	Document   string `json:"document"`
	RuleID     string `json:"ruleId"`
	Category   string `json:"category"`
	Severity   string `json:"severity"`
	Match      string `json:"match"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Documents         int `json:"documentsChecked"`
	DocumentsWithFlag int `json:"documentsWithFlags"`
	DocumentsNoText   int `json:"documentsNoText"`
	DocumentsErrored  int `json:"documentsErrored"`
	Flags             int `json:"totalFlags"`
	Warnings          int `json:"warnings"`
	Infos             int `json:"infos"`
	RuleErrors        int `json:"ruleErrors"`
}

// HasFlags returns true if any flags were raised.
func (t Totals) HasFlags() bool {
	return t.Flags > 0
}

// DocumentAnalysis contains aggregated data for a single document.
type DocumentAnalysis struct {
	Path     string   `json:"path"`
	Flags    int      `json:"flags"`
	Warnings int      `json:"warnings"`
	Infos    int      `json:"infos"`
	Rules    []string `json:"rules,omitempty"`
}

// RuleAnalysis contains aggregated data for a single rule.
type RuleAnalysis struct {
	RuleID    string   `json:"ruleId"`
	Category  string   `json:"category"`
	Flags     int      `json:"flags"`
	Warnings  int      `json:"warnings"`
	Infos     int      `json:"infos"`
	Documents []string `json:"documents,omitempty"`
}

// CategoryAnalysis contains aggregated data for a rule category.
type CategoryAnalysis struct {
	Category string   `json:"category"`
	Flags    int      `json:"flags"`
	Rules    []string `json:"rules,omitempty"`
}
