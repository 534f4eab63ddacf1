package analysis

// SortField specifies how to sort analysis results.
type SortField string

const (
	// SortByCount sorts by flag count (descending by default).
	SortByCount SortField = "count"
	// SortByAlpha sorts alphabetically.
	SortByAlpha SortField = "alpha"
	// SortBySeverity sorts by severity (warnings first).
	SortBySeverity SortField = "severity"
)

// IsValid returns true if the sort field is valid.
func (s SortField) IsValid() bool {
	switch s {
	case SortByCount, SortByAlpha, SortBySeverity:
		return true
	default:
		return false
	}
}

// Options configures the Analyze function.
type Options struct {
	// IncludeFlags includes the flat flag list.
	IncludeFlags bool

	// IncludeByDocument includes the per-document analysis.
	IncludeByDocument bool

	// IncludeByRule includes the per-rule analysis.
	IncludeByRule bool

	// IncludeByCategory includes the per-category analysis.
	IncludeByCategory bool

	// SortBy specifies how to sort the grouped views.
	SortBy SortField

	// SortDesc sorts in descending order (highest first).
	SortDesc bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		IncludeFlags:      true,
		IncludeByDocument: true,
		IncludeByRule:     true,
		IncludeByCategory: true,
		SortBy:            SortByCount,
		SortDesc:          true,
	}
}
