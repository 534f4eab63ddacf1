package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/wpslint/pkg/extract"
	"github.com/yaklabco/wpslint/pkg/fsutil"
)

func newExtractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Print the text extracted from a document",
		Long: `Extract the plain text wpslint would lint from a document and print
it to stdout. Useful for checking what the linter actually sees in a
Word or PDF file.

Examples:
  wpslint extract wps.docx
  wpslint extract schedule.pdf > schedule.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runExtract(ctx, cmd, args[0])
		},
	}

	return cmd
}

func runExtract(ctx context.Context, cmd *cobra.Command, path string) error {
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	format := extract.DetectFormat(path)
	text := extract.New().Extract(ctx, content, format)
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no usable text in %s", path)
	}

	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
