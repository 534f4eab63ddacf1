package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/wpslint/internal/ui/pretty"
	"github.com/yaklabco/wpslint/pkg/polish"
)

func newStartersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "starters",
		Short: "Show conversation starters for drafting sessions",
		Long: `Print the canned conversation starters used to seed a drafting session
with the accessibility assistant. Pass one to 'wpslint ask' as a template.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			colorMode, err := cmd.Flags().GetString("color")
			if err != nil {
				colorMode = "auto"
			}
			styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

			out := cmd.OutOrStdout()
			for _, starter := range polish.Starters() {
				fmt.Fprintln(out, styles.Bold.Render(starter.Title))
				fmt.Fprintf(out, "  %s\n\n", styles.Dim.Render(starter.Prompt))
			}
			return nil
		},
	}

	return cmd
}
