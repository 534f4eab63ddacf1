// Package cli provides the Cobra command structure for wpslint.
package cli

import (
	"io"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/wpslint/internal/ui/pretty"
)

// usageTemplate drives both help and usage rendering. The style functions
// are bound in NewHelpFormatter.
const usageTemplate = `{{ heading "Usage:" }}
  {{if .Runnable}}{{ cmd .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ cmd .CommandPath }} [command]{{end}}

{{- if gt (len .Aliases) 0}}

{{ heading "Aliases:" }}
  {{ dim (join .Aliases ", ") }}
{{- end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ dim .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ heading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ sub (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ cmd (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{if or .Runnable .HasSubCommands}}{{ cmd .CommandPath }}{{if .Version}} {{ dim .Version }}{{end}}

{{end}}{{with (or .Long .Short)}}{{ trim . }}

{{end}}` + usageTemplate

// HelpFormatter renders cobra help and usage text through the shared
// pretty styles so help output matches the reporter's palette.
type HelpFormatter struct {
	styles *pretty.Styles
	usage  *template.Template
	help   *template.Template
}

// NewHelpFormatter creates a formatter for the given color mode, parsing
// the templates once.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	h := &HelpFormatter{
		styles: pretty.NewStyles(pretty.IsColorEnabled(colorMode, writer)),
	}

	funcs := template.FuncMap{
		"heading": h.styles.Heading.Render,
		"cmd":     h.styles.Command.Render,
		"sub":     h.styles.Success.Render,
		"dim":     h.styles.Dim.Render,
		"flags":   h.flagUsages,
		"rpad":    rpad,
		"join":    strings.Join,
		"trim":    strings.TrimSpace,
	}
	h.usage = template.Must(template.New("usage").Funcs(funcs).Parse(usageTemplate))
	h.help = template.Must(template.New("help").Funcs(funcs).Parse(helpTemplate))

	return h
}

// ApplyToCommand installs the styled templates on cmd and, through cobra's
// parent lookup, on every subcommand.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(command *cobra.Command) error {
		return h.usage.Execute(command.OutOrStdout(), command)
	})
	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := h.help.Execute(command.OutOrStdout(), command); err != nil {
			command.PrintErrln(err)
		}
	})
}

// flagUsages colorizes pflag's aligned usage block one line at a time.
func (h *HelpFormatter) flagUsages(flags *pflag.FlagSet) string {
	usages := strings.TrimSuffix(flags.FlagUsages(), "\n")
	if usages == "" {
		return ""
	}

	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		lines[i] = h.colorizeFlagLine(line)
	}
	return strings.Join(lines, "\n")
}

// colorizeFlagLine splits "  -f, --flag type   description" on the first
// run of two spaces after the flag names and styles the two halves.
func (h *HelpFormatter) colorizeFlagLine(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(trimmed)]

	gap := strings.Index(trimmed, "  ")
	if gap < 0 {
		return line
	}
	spec := strings.TrimRight(trimmed[:gap], " ")
	desc := strings.TrimLeft(trimmed[gap:], " ")

	return indent + h.styleFlagSpec(spec) + "   " + desc
}

// styleFlagSpec styles the "-f, --flag type" half of a usage line: dash
// tokens get the flag color, the value type is dimmed.
func (h *HelpFormatter) styleFlagSpec(spec string) string {
	tokens := strings.Fields(spec)
	for i, token := range tokens {
		if strings.HasPrefix(token, "-") {
			name := strings.TrimSuffix(token, ",")
			styled := h.styles.FlagName.Render(name)
			if name != token {
				styled += ","
			}
			tokens[i] = styled
		} else {
			tokens[i] = h.styles.Dim.Render(token)
		}
	}
	return strings.Join(tokens, " ")
}

func rpad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
