package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/wpslint/pkg/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func loadIsolated(t *testing.T, opts LoadOptions) *LoadResult {
	t.Helper()
	opts.IgnoreSystemConfig = true
	opts.IgnoreUserConfig = true
	result, err := Load(context.Background(), opts)
	require.NoError(t, err)
	return result
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	result := loadIsolated(t, LoadOptions{WorkingDir: dir, IgnoreEnv: true})

	assert.Equal(t, config.FormatText, result.Config.Format)
	assert.Equal(t, "gpt-4o-mini", result.Config.Polish.Model)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoadProjectConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".wpslint.yml"), "knowledge_dir: docs/refs\nignore:\n  - drafts/**\n")

	result := loadIsolated(t, LoadOptions{WorkingDir: dir, IgnoreEnv: true})

	assert.Equal(t, "docs/refs", result.Config.KnowledgeDir)
	assert.Equal(t, []string{"drafts/**"}, result.Config.Ignore)
	assert.Equal(t, []string{filepath.Join(dir, ".wpslint.yml")}, result.LoadedFrom)
}

func TestLoadProjectConfigUpwardSearch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".wpslint.yml"), "knowledge_dir: refs\n")
	subDir := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(subDir, 0o755))

	result := loadIsolated(t, LoadOptions{WorkingDir: subDir, IgnoreEnv: true})

	assert.Equal(t, "refs", result.Config.KnowledgeDir)
}

func TestUpwardSearchStopsAtVCSRoot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".wpslint.yml"), "knowledge_dir: refs\n")
	repoDir := filepath.Join(dir, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repoDir, ".git"), 0o755))

	path, err := FindProjectConfig(context.Background(), repoDir)
	require.NoError(t, err)
	assert.Empty(t, path, "config above a VCS root must not be picked up")
}

func TestExplicitConfigOverridesProject(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".wpslint.yml"), "knowledge_dir: project\n")
	explicit := filepath.Join(dir, "custom.yml")
	writeFile(t, explicit, "knowledge_dir: explicit\n")

	result := loadIsolated(t, LoadOptions{
		WorkingDir:   dir,
		ExplicitPath: explicit,
		IgnoreEnv:    true,
	})

	assert.Equal(t, "explicit", result.Config.KnowledgeDir)
	assert.Equal(t, explicit, result.Paths.Explicit)
	require.Len(t, result.LoadedFrom, 2)
	assert.Equal(t, explicit, result.LoadedFrom[1])
}

func TestEnvOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".wpslint.yml"), "knowledge_dir: project\n")
	t.Setenv("WPSLINT_KNOWLEDGE_DIR", "from-env")

	result := loadIsolated(t, LoadOptions{WorkingDir: dir})

	assert.Equal(t, "from-env", result.Config.KnowledgeDir)
}

func TestCLIOverridesEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WPSLINT_FORMAT", "json")

	result := loadIsolated(t, LoadOptions{
		WorkingDir: dir,
		CLIConfig:  &config.Config{Format: config.FormatTable},
	})

	assert.Equal(t, config.FormatTable, result.Config.Format)
}

func TestLoadFromEnvParsesTypes(t *testing.T) {
	t.Setenv("WPSLINT_JOBS", "4")
	t.Setenv("WPSLINT_STRICT", "true")
	t.Setenv("WPSLINT_IGNORE", "drafts/**, archive/**")
	t.Setenv("WPSLINT_POLISH_TEMPERATURE", "0.7")

	cfg := config.NewConfig()
	require.NoError(t, LoadFromEnv(cfg))

	assert.Equal(t, 4, cfg.Jobs)
	assert.True(t, cfg.Strict)
	assert.Equal(t, []string{"drafts/**", "archive/**"}, cfg.Ignore)
	assert.InDelta(t, 0.7, cfg.Polish.Temperature, 0.001)
}

func TestLoadFromEnvRejectsBadValues(t *testing.T) {
	t.Setenv("WPSLINT_JOBS", "many")

	err := LoadFromEnv(config.NewConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WPSLINT_JOBS")
}

func TestOpenAIModelAlias(t *testing.T) {
	t.Setenv("OPENAI_MODEL", "gpt-4o")

	cfg := config.NewConfig()
	require.NoError(t, LoadFromEnv(cfg))
	assert.Equal(t, "gpt-4o", cfg.Polish.Model)

	t.Setenv("WPSLINT_POLISH_MODEL", "gpt-4o-mini")
	cfg = config.NewConfig()
	require.NoError(t, LoadFromEnv(cfg))
	assert.Equal(t, "gpt-4o-mini", cfg.Polish.Model)
}

func TestLoadDotenvBringsKeyIntoEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), "WPSLINT_EXPORT_DIR=out\n")
	t.Setenv("WPSLINT_EXPORT_DIR", "")
	require.NoError(t, os.Unsetenv("WPSLINT_EXPORT_DIR"))

	LoadDotenv(dir)

	assert.Equal(t, "out", os.Getenv("WPSLINT_EXPORT_DIR"))
}

func TestLoadRejectsInvalidFormat(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(context.Background(), LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
		CLIConfig:          &config.Config{Format: "xml"},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".wpslint.yml"), "ignore: [unclosed\n")

	_, err := Load(context.Background(), LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	})

	require.Error(t, err)
}

func TestLoadWarnsOnMissingRulePack(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".wpslint.yml"), "rules_path: no-such-rules.yml\n")

	result := loadIsolated(t, LoadOptions{WorkingDir: dir, IgnoreEnv: true})

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "no-such-rules.yml")
}

func TestMergePrecedence(t *testing.T) {
	base := config.NewConfig()
	base.KnowledgeDir = "base"
	base.Ignore = []string{"a"}

	override := &config.Config{
		KnowledgeDir: "override",
		Ignore:       []string{"b", "c"},
		Strict:       true,
	}

	merged := merge(base, override)

	assert.Equal(t, "override", merged.KnowledgeDir)
	assert.Equal(t, []string{"b", "c"}, merged.Ignore)
	assert.True(t, merged.Strict)
	assert.Equal(t, base.Polish.Model, merged.Polish.Model, "unset override fields keep base values")
}

func TestMergeNilHandling(t *testing.T) {
	cfg := config.NewConfig()

	assert.Equal(t, cfg, merge(nil, cfg))
	assert.Equal(t, cfg, merge(cfg, nil))
	assert.Nil(t, MergeAll())
}

func TestValidateTemperatureRange(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Polish.Temperature = 3.5

	result := Validate(cfg)
	require.False(t, result.Valid())
	assert.Equal(t, "polish.temperature", result.Errors[0].Field)
}

func TestValidateIgnoreGlobs(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Ignore = []string{"[unclosed"}

	result := Validate(cfg)
	require.False(t, result.Valid())
	assert.Contains(t, result.Errors[0].Error(), "invalid glob pattern")
}
