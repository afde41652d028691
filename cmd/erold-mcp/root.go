package main

import (
	"os"

	erold "github.com/erold-dev/mcp-server"
	"github.com/spf13/cobra"
)

var (
	cfgAPIKey  string
	cfgTenant  string
	cfgAPIURL  string
	cfgDebug   bool
	outputJSON bool
)

var rootCmd = &cobra.Command{
	Use:   "erold-mcp",
	Short: "Erold workspace MCP server and CLI",
	Long: `erold-mcp connects AI assistants to an Erold workspace.

It serves workspace tools (tasks, projects, knowledge, vault, tech info,
guidelines) over the Model Context Protocol and doubles as a small CLI
for scripting and diagnostics.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgAPIKey, "api-key", "", "Erold API key (overrides EROLD_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&cfgTenant, "tenant", "", "Workspace tenant ID (overrides EROLD_TENANT_ID)")
	rootCmd.PersistentFlags().StringVar(&cfgAPIURL, "api-url", "", "Erold API base URL (overrides EROLD_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&cfgDebug, "debug", false, "Log API traffic to stderr")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output as JSON")
}

// loadConfig pushes flag overrides into the environment and resolves the
// effective configuration. The library re-reads the environment on every
// request, so flag values must land there to take effect.
func loadConfig() (erold.Config, error) {
	if cfgAPIKey != "" {
		os.Setenv("EROLD_API_KEY", cfgAPIKey)
	}
	if cfgTenant != "" {
		os.Setenv("EROLD_TENANT_ID", cfgTenant)
	}
	if cfgAPIURL != "" {
		os.Setenv("EROLD_API_URL", cfgAPIURL)
	}
	if cfgDebug {
		os.Setenv("EROLD_DEBUG", "1")
	}
	return erold.ConfigFromEnv()
}
