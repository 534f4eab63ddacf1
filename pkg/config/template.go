package config

// DefaultTemplate returns a commented starter configuration file.
func DefaultTemplate() string {
	return `# wpslint configuration
# See 'wpslint rules' for the rule pack in effect.

# Path to a YAML/JSON rule pack. Leave empty for the built-in rules.
rules_path: ""

# Directory of .txt reference documents used by 'wpslint ask'.
knowledge_dir: ""

# Glob patterns for files to skip during discovery.
ignore: []

# Optional LLM polish pass. Enabled by setting OPENAI_API_KEY.
polish:
  model: gpt-4o-mini
  temperature: 0.3
  max_tokens: 1200

# Where 'wpslint export' writes artifacts.
export:
  dir: .
`
}
