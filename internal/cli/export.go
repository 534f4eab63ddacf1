package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/wpslint/internal/logging"
	"github.com/yaklabco/wpslint/pkg/export"
	"github.com/yaklabco/wpslint/pkg/extract"
	"github.com/yaklabco/wpslint/pkg/fsutil"
	"github.com/yaklabco/wpslint/pkg/lint"
)

type exportFlags struct {
	outDir    string
	rulesPath string
}

func newExportCommand() *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export <kind> [file]",
		Short: "Export clean copies, checklists, and program documents",
		Long: `Export review artifacts. Document-derived kinds lint the given file
first; scaffolding kinds are generated from templates.

Document-derived kinds (require a file argument):
  clean        Rewritten clean copy as Markdown
  clean-docx   Rewritten clean copy as a Word document
  checklist    Audit checklist of flags as CSV

Scaffolding kinds:
  rti-outline  Related Training Instruction outline
  sop          Accommodation standard operating procedure
  partner-map  Partner landscape map
  funding-plan Braided funding sketch
  decision-log Decision log template

Examples:
  wpslint export clean wps.docx
  wpslint export checklist wps.txt --out audits/
  wpslint export sop`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runExport(ctx, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.outDir, "out", "o", ".", "directory for exported artifacts")
	cmd.Flags().StringVar(&flags.rulesPath, "rules", "", "path to a YAML/JSON rule pack")

	return cmd
}

func runExport(ctx context.Context, args []string, flags *exportFlags) error {
	logger := logging.Default()
	kind := args[0]
	exporter := export.New(flags.outDir)

	var artifact export.Artifact
	var err error

	switch kind {
	case "clean", "clean-docx", "checklist":
		if len(args) < 2 {
			return fmt.Errorf("export %s requires a document argument", kind)
		}
		artifact, err = exportFromDocument(ctx, exporter, kind, args[1], flags.rulesPath)
	case "rti-outline":
		artifact, err = exporter.RTIOutline(ctx)
	case "sop":
		artifact, err = exporter.AccommodationSOP(ctx)
	case "partner-map":
		artifact, err = exporter.PartnerMap(ctx)
	case "funding-plan":
		artifact, err = exporter.FundingPlan(ctx)
	case "decision-log":
		artifact, err = exporter.DecisionLog(ctx)
	default:
		return fmt.Errorf("unknown export kind %q", kind)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", kind, err)
	}

	logger.Info("artifact written", logging.FieldPath, artifact.Path)
	return nil
}

// exportFromDocument lints path and exports the requested artifact from the
// lint result.
func exportFromDocument(
	ctx context.Context,
	exporter *export.Exporter,
	kind, path, rulesPath string,
) (export.Artifact, error) {
	rules, err := loadRules(rulesPath)
	if err != nil {
		return export.Artifact{}, err
	}

	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return export.Artifact{}, fmt.Errorf("read document: %w", err)
	}

	text := extract.New().Extract(ctx, content, extract.DetectFormat(path))
	if strings.TrimSpace(text) == "" {
		return export.Artifact{}, fmt.Errorf("no usable text in %s", path)
	}

	result, err := lint.NewEngine().Lint(ctx, text, rules)
	if err != nil {
		return export.Artifact{}, fmt.Errorf("lint document: %w", err)
	}

	title := documentTitle(path)

	switch kind {
	case "clean":
		return exporter.CleanMarkdown(ctx, title, result.Clean)
	case "clean-docx":
		return exporter.CleanDocx(ctx, title, result.Clean)
	case "checklist":
		return exporter.Checklist(ctx, result.Flags)
	default:
		return export.Artifact{}, fmt.Errorf("unknown export kind %q", kind)
	}
}

// documentTitle derives a human title from a document path.
func documentTitle(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" {
		return "Work Process Schedule"
	}
	return name + " (clean copy)"
}
