package configloader

import "github.com/yaklabco/wpslint/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	// Start with a shallow copy of base
	result := *base

	if override.RulesPath != "" {
		result.RulesPath = override.RulesPath
	}
	if override.KnowledgeDir != "" {
		result.KnowledgeDir = override.KnowledgeDir
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	// Booleans: false is the zero value, so a config file cannot unset a
	// flag a lower layer enabled. CLI flags always win because they are
	// merged last.
	if override.Strict {
		result.Strict = override.Strict
	}
	if override.ShowClean {
		result.ShowClean = override.ShowClean
	}

	// Polish: merge individual fields
	if override.Polish.Model != "" {
		result.Polish.Model = override.Polish.Model
	}
	if override.Polish.Temperature != 0 {
		result.Polish.Temperature = override.Polish.Temperature
	}
	if override.Polish.MaxTokens != 0 {
		result.Polish.MaxTokens = override.Polish.MaxTokens
	}

	if override.Export.Dir != "" {
		result.Export.Dir = override.Export.Dir
	}

	// Slices: override replaces base entirely if non-nil
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
