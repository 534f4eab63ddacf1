package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/wpslint/internal/configloader"
	"github.com/yaklabco/wpslint/internal/logging"
	"github.com/yaklabco/wpslint/pkg/knowledge"
	"github.com/yaklabco/wpslint/pkg/polish"
)

// Knowledge context limits for a single ask request.
const (
	askMaxDocs     = 6
	askMaxDocBytes = 4096
)

func newAskCommand() *cobra.Command {
	var knowledgeDir string

	cmd := &cobra.Command{
		Use:   "ask <question...>",
		Short: "Ask the accessibility assistant a one-shot question",
		Long: `Send a single question to the accessibility assistant, grounded in the
configured knowledge directory of reference notes. Requires OPENAI_API_KEY.

Examples:
  wpslint ask "How do I phrase a lifting requirement inclusively?"
  wpslint ask --knowledge docs/refs "Draft an RTI outline for machinists"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runAsk(ctx, cmd, strings.Join(args, " "), knowledgeDir)
		},
	}

	cmd.Flags().StringVar(&knowledgeDir, "knowledge", "", "directory of .txt reference documents")

	return cmd
}

func runAsk(ctx context.Context, cmd *cobra.Command, question, knowledgeDir string) error {
	logger := logging.Default()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: configPath,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}
	cfg := loadResult.Config

	if knowledgeDir == "" {
		knowledgeDir = cfg.KnowledgeDir
	}

	var transformer polish.Transformer
	if client := polish.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"), cfg.Polish); client != nil {
		transformer = client
	}
	if transformer == nil {
		return errors.New("ask requires OPENAI_API_KEY to be set")
	}

	instruction := polish.SystemPersona
	if knowledgeDir != "" {
		corpus, err := knowledge.LoadDir(knowledgeDir)
		if err != nil {
			return fmt.Errorf("load knowledge directory: %w", err)
		}
		if kctx := corpus.Context(askMaxDocs, askMaxDocBytes); kctx != "" {
			instruction += "\n\nReference notes:\n" + kctx
			logger.Debug("knowledge context attached", "documents", corpus.Len())
		}
	}

	answer, err := transformer.Transform(ctx, instruction, question)
	if err != nil {
		return fmt.Errorf("ask assistant: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(answer))
	return nil
}
