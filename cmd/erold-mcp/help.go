package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Help template styling, reusing the brand palette from styles.go.
var (
	helpSectionStyle = lipgloss.NewStyle().Foreground(colorPrimaryLight).Bold(true)
	helpCommandStyle = lipgloss.NewStyle().Foreground(colorPrimary)
)

// styleWhenTTY adapts a lipgloss style into a help-template func that
// renders plainly when output is not a terminal.
func styleWhenTTY(style lipgloss.Style) func(string) string {
	return func(s string) string {
		if isTTY() {
			return style.Render(s)
		}
		return s
	}
}

// helpTemplate reworks cobra's default template with styled section
// headers and a terser footer.
const helpTemplate = `{{with .Long}}{{. | trimTrailingWhitespaces}}

{{end}}{{section "Usage"}}
  {{command .UseLine}}{{if .HasAvailableSubCommands}}
  {{command .CommandPath}} {{faint "[command]"}}{{end}}
{{if gt (len .Aliases) 0}}
{{section "Aliases"}}
  {{.NameAndAliases}}
{{end}}{{if .HasExample}}
{{section "Examples"}}
{{.Example}}
{{end}}{{if .HasAvailableSubCommands}}
{{section "Commands"}}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{command (rpad .Name .NamePadding)}} {{.Short}}{{end}}{{end}}
{{end}}{{if .HasAvailableLocalFlags}}
{{section "Flags"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}{{if .HasAvailableInheritedFlags}}
{{section "Global flags"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}{{if .HasAvailableSubCommands}}
{{faint "Run"}} {{command (printf "%s <command> --help" .CommandPath)}} {{faint "for details on a command."}}
{{end}}`

// styleHelp installs the styled help template on root and every
// command below it.
func styleHelp(root *cobra.Command) {
	cobra.AddTemplateFunc("section", styleWhenTTY(helpSectionStyle))
	cobra.AddTemplateFunc("command", styleWhenTTY(helpCommandStyle))
	cobra.AddTemplateFunc("faint", styleWhenTTY(mutedStyle))
	setHelpTemplate(root)
}

func setHelpTemplate(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
	for _, sub := range cmd.Commands() {
		setHelpTemplate(sub)
	}
}
