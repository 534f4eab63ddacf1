package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/wpslint/internal/configloader"
	"github.com/yaklabco/wpslint/internal/logging"
	"github.com/yaklabco/wpslint/pkg/config"
	"github.com/yaklabco/wpslint/pkg/extract"
	"github.com/yaklabco/wpslint/pkg/fsutil"
	"github.com/yaklabco/wpslint/pkg/lint"
	"github.com/yaklabco/wpslint/pkg/polish"
	"github.com/yaklabco/wpslint/pkg/reporter"
	"github.com/yaklabco/wpslint/pkg/ruleset"
	"github.com/yaklabco/wpslint/pkg/runner"
)

// ErrLintIssuesFound is returned when warn-severity flags are found.
var ErrLintIssuesFound = errors.New("lint flags found")

// ErrStrictFlagsFound is returned when strict mode elevates info-only flags.
var ErrStrictFlagsFound = errors.New("flags found in strict mode")

type lintFlags struct {
	format    string
	rulesPath string
	ignore    []string
	strict    bool
	showClean bool
	polish    bool
	write     bool
	backup    bool
	compact   bool
}

func newLintCommand() *cobra.Command {
	var cfg config.Config
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint documents for non-inclusive phrasing",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, &cfg, flags)
		},
	}

	addLintFlags(cmd, &cfg, flags)

	return cmd
}

const lintLongDescription = `Lint Work Process Schedules and related documents for phrasing that
excludes candidates with disabilities.

By default, lints all .txt, .md, .docx, and .pdf files in the current
directory and subdirectories. Specify paths to lint specific files or
directories. With no paths and piped input, the text on stdin is linted.

Examples:
  wpslint lint                     # Lint current directory
  wpslint lint schedules/          # Lint a directory
  wpslint lint wps.docx            # Lint a single file
  wpslint lint --clean             # Show the rewritten clean copy
  wpslint lint --write --backup    # Rewrite text/Markdown files in place
  wpslint lint --format json       # Output as JSON for CI
  wpslint lint --strict            # Any flag fails the run
  cat draft.txt | wpslint lint     # Lint stdin`

func runLint(cmd *cobra.Command, args []string, cfg *config.Config, flags *lintFlags) error {
	logger := logging.Default()

	// Map string flags to typed config values.
	cfg.Format = config.OutputFormat(flags.format)
	cfg.Ignore = flags.ignore
	cfg.Strict = cfg.Strict || flags.strict
	cfg.ShowClean = flags.showClean
	if flags.rulesPath != "" {
		cfg.RulesPath = flags.rulesPath
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", loadResult.LoadedFrom)
	}

	rules, err := loadRules(finalCfg.RulesPath)
	if err != nil {
		return err
	}

	logger.Debug("configuration loaded",
		logging.FieldRules, rules.Len(),
		logging.FieldFormat, finalCfg.Format,
		logging.FieldJobs, finalCfg.Jobs,
	)

	// With no paths and piped input, lint stdin instead of the filesystem.
	var result *runner.Result
	if len(args) == 0 && stdinIsPiped(cmd.InOrStdin()) {
		result, err = lintStdin(ctx, cmd.InOrStdin(), rules)
	} else {
		result, err = lintPaths(ctx, args, workDir, finalCfg, rules, flags)
	}
	if err != nil {
		return err
	}

	if flags.polish {
		polishCleanCopies(ctx, result, finalCfg.Polish, logger)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowClean:   finalCfg.ShowClean,
		ShowSummary: true,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	switch ExitCodeFromResult(result, finalCfg.Strict) {
	case ExitLintWarnings:
		return ErrLintIssuesFound
	case ExitLintInfos:
		return ErrStrictFlagsFound
	default:
		return nil
	}
}

// lintPaths runs the document linter over the filesystem.
func lintPaths(
	ctx context.Context,
	args []string,
	workDir string,
	cfg *config.Config,
	rules *ruleset.RuleSet,
	flags *lintFlags,
) (*runner.Result, error) {
	lintRunner := runner.New(rules)

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		Write:        flags.write,
		Backup: fsutil.BackupConfig{
			Enabled: flags.backup,
			Mode:    fsutil.BackupModeSidecar,
		},
	}

	result, err := lintRunner.Run(ctx, runOpts)
	if err != nil {
		return nil, errors.Join(errors.New("lint run failed"), err)
	}
	return result, nil
}

// lintStdin lints piped text as a single pseudo-document.
func lintStdin(ctx context.Context, in io.Reader, rules *ruleset.RuleSet) (*runner.Result, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	res, err := lint.NewEngine().Lint(ctx, string(data), rules)
	if err != nil {
		return nil, fmt.Errorf("lint stdin: %w", err)
	}

	outcome := runner.DocumentOutcome{
		Path:   "<stdin>",
		Format: extract.FormatText,
		Result: res,
	}

	stats := runner.Stats{
		DocumentsDiscovered: 1,
		DocumentsProcessed:  1,
		FlagsTotal:          res.FlagCount(),
		FlagsBySeverity:     res.CountBySeverity(),
		RuleErrorsTotal:     len(res.RuleErrors),
	}
	if res.HasFlags() {
		stats.DocumentsWithFlags = 1
	}

	return &runner.Result{
		Documents: []runner.DocumentOutcome{outcome},
		Stats:     stats,
	}, nil
}

// polishCleanCopies runs the LLM polish pass over every rewritten clean copy.
// Without an API key the pass is a no-op and clean copies pass through.
func polishCleanCopies(ctx context.Context, result *runner.Result, cfg config.PolishConfig, logger *log.Logger) {
	var transformer polish.Transformer
	if client := polish.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"), cfg); client != nil {
		transformer = client
	}
	if transformer == nil {
		logger.Warn("polish requested but OPENAI_API_KEY is not set; clean copies left as-is")
		return
	}

	for i := range result.Documents {
		doc := &result.Documents[i]
		if doc.Result == nil || !doc.Result.HasFlags() {
			continue
		}
		doc.Result.Clean = polish.Polish(ctx, transformer, polish.PolishInstruction, doc.Result.Clean)
	}
}

// loadRules loads the rule pack from path, or the built-in pack when empty.
func loadRules(path string) (*ruleset.RuleSet, error) {
	if path == "" {
		return ruleset.Default(), nil
	}

	rules, err := ruleset.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load rule pack: %w", err)
	}
	return rules, nil
}

// stdinIsPiped reports whether in is process stdin with piped data.
func stdinIsPiped(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok || f != os.Stdin {
		return false
	}
	return !term.IsTerminal(int(f.Fd()))
}

func addLintFlags(cmd *cobra.Command, cfg *config.Config, flags *lintFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, table, json, summary")
	cmd.Flags().StringVar(&flags.rulesPath, "rules", "", "path to a YAML/JSON rule pack")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat any flag as a failure for exit code")
	cmd.Flags().BoolVar(&flags.showClean, "clean", false, "show the rewritten clean copy")
	cmd.Flags().BoolVar(&flags.polish, "polish", false, "polish clean copies with an LLM (needs OPENAI_API_KEY)")
	cmd.Flags().BoolVar(&flags.write, "write", false, "rewrite flagged text/Markdown files in place")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "create sidecar backups before writing")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
}
