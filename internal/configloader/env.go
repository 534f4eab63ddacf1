package configloader

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/yaklabco/wpslint/pkg/config"
)

// envVarPrefix is the prefix for all wpslint environment variables.
const envVarPrefix = "WPSLINT_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeFloat
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"RULES":              {field: "rules_path", typ: envTypeString},
	"KNOWLEDGE_DIR":      {field: "knowledge_dir", typ: envTypeString},
	"IGNORE":             {field: "ignore", typ: envTypeSlice},
	"JOBS":               {field: "jobs", typ: envTypeInt},
	"FORMAT":             {field: "format", typ: envTypeString},
	"STRICT":             {field: "strict", typ: envTypeBool},
	"POLISH_MODEL":       {field: "polish.model", typ: envTypeString},
	"POLISH_TEMPERATURE": {field: "polish.temperature", typ: envTypeFloat},
	"POLISH_MAX_TOKENS":  {field: "polish.max_tokens", typ: envTypeInt},
	"EXPORT_DIR":         {field: "export.dir", typ: envTypeString},
}

// LoadDotenv loads a .env file from the working directory into the process
// environment, without overriding variables that are already set. A missing
// file is not an error; this is how OPENAI_API_KEY typically reaches the
// polish pass during local development.
func LoadDotenv(workDir string) {
	if workDir == "" {
		_ = godotenv.Load()
		return
	}
	path := filepath.Join(workDir, ".env")
	if fileExists(path) {
		_ = godotenv.Load(path)
	}
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with WPSLINT_ (e.g., WPSLINT_FORMAT).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	// OPENAI_MODEL is honored as an alias for WPSLINT_POLISH_MODEL so the
	// variable shared with other OpenAI tooling keeps working.
	if os.Getenv(envVarPrefix+"POLISH_MODEL") == "" {
		if model := os.Getenv("OPENAI_MODEL"); model != "" {
			cfg.Polish.Model = model
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeFloat:
		f, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return fmt.Errorf("invalid number for %s: %q", envVar, value)
		}
		return setFloatField(cfg, mapping.field, float32(f))
	case envTypeSlice:
		parts := parseSliceValue(value)
		return setSliceField(cfg, mapping.field, parts)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "rules_path":
		cfg.RulesPath = value
	case "knowledge_dir":
		cfg.KnowledgeDir = value
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "polish.model":
		cfg.Polish.Model = value
	case "export.dir":
		cfg.Export.Dir = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "strict":
		cfg.Strict = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	case "polish.max_tokens":
		cfg.Polish.MaxTokens = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setFloatField sets a float field on the config by field path.
func setFloatField(cfg *config.Config, field string, value float32) error {
	switch field {
	case "polish.temperature":
		cfg.Polish.Temperature = value
	default:
		return fmt.Errorf("unknown float field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns a list of all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"WPSLINT_RULES":              "Path to a YAML/JSON rule pack",
		"WPSLINT_KNOWLEDGE_DIR":      "Directory of .txt reference documents for 'ask'",
		"WPSLINT_IGNORE":             "Comma-separated list of ignore patterns",
		"WPSLINT_JOBS":               "Number of parallel workers (0 = auto)",
		"WPSLINT_FORMAT":             "Output format: text, table, json, or summary",
		"WPSLINT_STRICT":             "Treat any flag as a failure: true or false",
		"WPSLINT_POLISH_MODEL":       "Chat model used by the polish pass",
		"WPSLINT_POLISH_TEMPERATURE": "Sampling temperature for the polish pass",
		"WPSLINT_POLISH_MAX_TOKENS":  "Response token cap for the polish pass",
		"WPSLINT_EXPORT_DIR":         "Directory where export artifacts are written",
		"OPENAI_API_KEY":             "Enables the polish pass and 'ask'",
		"OPENAI_MODEL":               "Alias for WPSLINT_POLISH_MODEL",
	}
}
