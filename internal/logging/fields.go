package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFormat     = "format"
	FieldWorkingDir = "working_dir"

	// Rule fields.
	FieldRule       = "rule"
	FieldRules      = "rules"
	FieldCategory   = "category"
	FieldSeverity   = "severity"
	FieldSuggestion = "suggestion"

	// Run statistics fields.
	FieldDocsDiscovered = "docs_discovered"
	FieldDocsProcessed  = "docs_processed"
	FieldDocsEmpty      = "docs_empty"
	FieldFlagsTotal     = "flags_total"
	FieldJobs           = "jobs"

	// Polish fields.
	FieldModel = "model"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
