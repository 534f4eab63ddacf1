// Package config defines core configuration types for wpslint.
// These types are pure data structures with no dependency on config loaders.
package config

// Severity represents the severity level of a lint flag.
//
// The observed rule packs use "warn" and "info", but severity is an open
// enum: values are carried through from rule data, not validated against a
// fixed list.
type Severity string

const (
	SeverityWarn Severity = "warn"
	SeverityInfo Severity = "info"
)

// OutputFormat specifies the output format for lint results.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// PolishConfig controls the optional LLM polish pass.
// The feature is enabled by the presence of an API key, not by config alone.
type PolishConfig struct {
	// Model is the chat model used for polishing (default "gpt-4o-mini").
	Model string `yaml:"model"`

	// Temperature for the polish request.
	Temperature float32 `yaml:"temperature"`

	// MaxTokens caps the polish response length.
	MaxTokens int `yaml:"max_tokens"`
}

// ExportConfig controls artifact export behavior.
type ExportConfig struct {
	// Dir is the directory where export artifacts are written.
	Dir string `yaml:"dir"`
}

// Config is the root configuration structure for wpslint.
type Config struct {
	// RulesPath points to a YAML/JSON rule pack. Empty means the built-in
	// default rules.
	RulesPath string `yaml:"rules_path"`

	// KnowledgeDir is a directory of .txt reference documents used to ground
	// the ask command. Empty disables knowledge context.
	KnowledgeDir string `yaml:"knowledge_dir"`

	// Ignore contains glob patterns for files to skip during discovery.
	Ignore []string `yaml:"ignore"`

	// Polish configures the optional LLM polish pass.
	Polish PolishConfig `yaml:"polish"`

	// Export configures artifact export.
	Export ExportConfig `yaml:"export"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// Strict treats any flag as a failure for exit-code purposes.
	Strict bool `yaml:"-"`

	// ShowClean includes the clean copy in text output.
	ShowClean bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		RulesPath:    "",
		KnowledgeDir: "",
		Ignore:       nil,
		Polish: PolishConfig{
			Model:       "gpt-4o-mini",
			Temperature: 0.3,
			MaxTokens:   1200,
		},
		Export: ExportConfig{
			Dir: ".",
		},
		Format: FormatText,
		Jobs:   0, // 0 means use GOMAXPROCS
	}
}
