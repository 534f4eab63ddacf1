package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/wpslint/internal/logging"
	"github.com/yaklabco/wpslint/pkg/ruleset"
)

type rulesFlags struct {
	format    string
	rulesPath string
}

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID         string `json:"id"`
	Category   string `json:"category,omitempty"`
	Severity   string `json:"severity"`
	Pattern    string `json:"pattern"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
	Rewrites   bool   `json:"rewrites"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rule pack in effect",
		Long: `List every rule in the active pack with its id, category, severity,
detection pattern, and whether it rewrites matched text in the clean copy.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules, err := loadRules(flags.rulesPath)
			if err != nil {
				return err
			}

			if flags.format == formatJSON {
				return outputRulesJSON(cmd, rules.Rules())
			}

			logger := logging.NewInteractive()

			logger.Info("active rule pack", logging.FieldRules, rules.Len())

			for _, rule := range rules.Rules() {
				rewrites := "-"
				if rule.RewriteEligible() {
					rewrites = "yes"
				}

				logger.Info(rule.ID,
					logging.FieldCategory, rule.Category,
					logging.FieldSeverity, rule.Severity,
					"rewrites", rewrites,
					"message", rule.Message,
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")
	cmd.Flags().StringVar(&flags.rulesPath, "rules", "", "path to a YAML/JSON rule pack")

	return cmd
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(cmd *cobra.Command, rules []ruleset.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, ruleInfo{
			ID:         rule.ID,
			Category:   rule.Category,
			Severity:   string(rule.Severity),
			Pattern:    rule.Pattern,
			Message:    rule.Message,
			Suggestion: rule.Suggestion,
			Rewrites:   rule.RewriteEligible(),
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
