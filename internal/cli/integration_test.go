package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/wpslint/internal/cli"
)

// testScheduleWithFlags trips R-A1 (warn, rewritten) and R-D1 (info).
const testScheduleWithFlags = "Apprentices must climb ladders daily, with or without reasonable accommodation.\n"

// testScheduleInfoOnly trips only the info-severity ADA boilerplate rule.
const testScheduleInfoOnly = "Duties are performed with or without reasonable accommodation.\n"

const testScheduleClean = "Apprentices ascend to elevated work positions using approved equipment.\n"

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}
}

// writeTestConfig writes a minimal explicit config so machine-level configs
// cannot leak into the run.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wpslint.yml")
	require.NoError(t, os.WriteFile(path, []byte("export:\n  dir: .\n"), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func TestIntegration_LintFlaggedDocument(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	docPath := filepath.Join(tmpDir, "wps.txt")
	require.NoError(t, os.WriteFile(docPath, []byte(testScheduleWithFlags), 0o644))

	out, err := execute(t, "lint", "--config", writeTestConfig(t), "--color", "never", docPath)

	require.ErrorIs(t, err, cli.ErrLintIssuesFound)
	assert.Contains(t, out, "R-A1")
	assert.Contains(t, out, "R-D1")
	assert.Contains(t, out, `"climb"`)
	assert.Contains(t, out, "2 flags")
}

func TestIntegration_LintCleanDocument(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	docPath := filepath.Join(tmpDir, "wps.txt")
	require.NoError(t, os.WriteFile(docPath, []byte(testScheduleClean), 0o644))

	out, err := execute(t, "lint", "--config", writeTestConfig(t), "--color", "never", docPath)

	require.NoError(t, err)
	assert.Contains(t, out, "No flags raised")
}

func TestIntegration_StrictElevatesInfoFlags(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	docPath := filepath.Join(tmpDir, "wps.txt")
	require.NoError(t, os.WriteFile(docPath, []byte(testScheduleInfoOnly), 0o644))

	_, err := execute(t, "lint", "--config", writeTestConfig(t), "--color", "never", docPath)
	require.NoError(t, err, "info-only flags pass by default")

	_, err = execute(t, "lint", "--config", writeTestConfig(t), "--color", "never", "--strict", docPath)
	require.ErrorIs(t, err, cli.ErrStrictFlagsFound)
}

func TestIntegration_LintJSONOutput(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	docPath := filepath.Join(tmpDir, "wps.txt")
	require.NoError(t, os.WriteFile(docPath, []byte(testScheduleWithFlags), 0o644))

	out, err := execute(t, "lint", "--config", writeTestConfig(t), "--format", "json", docPath)

	require.ErrorIs(t, err, cli.ErrLintIssuesFound)
	assert.Contains(t, out, `"R-A1"`)
	assert.Contains(t, out, `"summary"`)
}

func TestIntegration_LintShowClean(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	docPath := filepath.Join(tmpDir, "wps.txt")
	require.NoError(t, os.WriteFile(docPath, []byte(testScheduleWithFlags), 0o644))

	out, err := execute(t, "lint", "--config", writeTestConfig(t), "--color", "never", "--clean", docPath)

	require.ErrorIs(t, err, cli.ErrLintIssuesFound)
	assert.Contains(t, out, "ascend")
}

func TestIntegration_LintWriteWithBackup(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	docPath := filepath.Join(tmpDir, "wps.txt")
	require.NoError(t, os.WriteFile(docPath, []byte(testScheduleWithFlags), 0o644))

	_, err := execute(t, "lint", "--config", writeTestConfig(t), "--write", "--backup", docPath)
	require.ErrorIs(t, err, cli.ErrLintIssuesFound)

	rewritten, err := os.ReadFile(docPath)
	require.NoError(t, err)
	assert.Contains(t, string(rewritten), "ascend")
	assert.NotContains(t, string(rewritten), "climb")

	backup, err := os.ReadFile(docPath + ".wpslint.bak")
	require.NoError(t, err)
	assert.Equal(t, testScheduleWithFlags, string(backup))
}

func TestIntegration_RulesJSON(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "rules", "--format", "json")

	require.NoError(t, err)
	assert.Contains(t, out, `"R-A1"`)
	assert.Contains(t, out, `"R-D1"`)
	assert.Contains(t, out, `"rewrites"`)
}

func TestIntegration_RulesCustomPack(t *testing.T) {
	t.Parallel()

	packPath := filepath.Join(t.TempDir(), "pack.yml")
	pack := "- id: X-1\n  severity: warn\n  pattern: foo\n  message: test rule\n  suggestion: use something else\n"
	require.NoError(t, os.WriteFile(packPath, []byte(pack), 0o644))

	out, err := execute(t, "rules", "--format", "json", "--rules", packPath)

	require.NoError(t, err)
	assert.Contains(t, out, `"X-1"`)
	assert.NotContains(t, out, `"R-A1"`)
}

func TestIntegration_Extract(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	docPath := filepath.Join(tmpDir, "wps.txt")
	require.NoError(t, os.WriteFile(docPath, []byte(testScheduleClean), 0o644))

	out, err := execute(t, "extract", docPath)

	require.NoError(t, err)
	assert.Contains(t, out, "elevated work positions")
}

func TestIntegration_ExtractEmptyDocument(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	docPath := filepath.Join(tmpDir, "empty.txt")
	require.NoError(t, os.WriteFile(docPath, []byte("   \n"), 0o644))

	_, err := execute(t, "extract", docPath)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no usable text")
}

func TestIntegration_ExportScaffolding(t *testing.T) {
	t.Parallel()

	outDir := t.TempDir()

	_, err := execute(t, "export", "sop", "--out", outDir)
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(outDir, "Accommodation_SOP_*.md"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	content, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), "Accommodation")
}

func TestIntegration_ExportChecklist(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	docPath := filepath.Join(tmpDir, "wps.txt")
	require.NoError(t, os.WriteFile(docPath, []byte(testScheduleWithFlags), 0o644))
	outDir := t.TempDir()

	_, err := execute(t, "export", "checklist", docPath, "--out", outDir)
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(outDir, "Accessibility_Checklist_*.csv"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	content, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), "R-A1")
	assert.Contains(t, string(content), "rule_id")
}

func TestIntegration_ExportCleanRequiresDocument(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "export", "clean")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a document")
}

func TestIntegration_Init(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), ".wpslint.yml")

	_, err := execute(t, "init", "--output", cfgPath)
	require.NoError(t, err)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "rules_path:")

	_, err = execute(t, "init", "--output", cfgPath)
	require.Error(t, err, "init must not overwrite without --force")

	_, err = execute(t, "init", "--output", cfgPath, "--force")
	require.NoError(t, err)
}

func TestIntegration_Starters(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "starters", "--color", "never")

	require.NoError(t, err)
	assert.Contains(t, out, "Draft my WPS")
	assert.Contains(t, out, "Accommodation SOP")
}

func TestIntegration_AskWithoutKeyFails(t *testing.T) {
	// Not parallel: depends on OPENAI_API_KEY being absent.
	t.Setenv("OPENAI_API_KEY", "")
	require.NoError(t, os.Unsetenv("OPENAI_API_KEY"))

	_, err := execute(t, "ask", "--config", writeTestConfig(t), "How do I phrase this?")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}
