package main

import (
	erold "github.com/erold-dev/mcp-server"
	eroldmcp "github.com/erold-dev/mcp-server/mcp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for assistant integration",
	Long: `Start a Model Context Protocol (MCP) server over stdio.

AI assistants connect to this process to read and edit the Erold
workspace: tasks, projects, knowledge articles, vault items, tech info,
and guidelines.

Configuration in Claude Desktop (claude_desktop_config.json):

  {
    "mcpServers": {
      "erold": {
        "command": "erold-mcp",
        "args": ["serve"],
        "env": {
          "EROLD_API_KEY": "<your-api-key>",
          "EROLD_TENANT_ID": "<your-tenant>"
        }
      }
    }
  }

Environment variables:
  EROLD_API_KEY    API key for the Erold API (required)
  EROLD_TENANT_ID  Workspace tenant identifier (required)
  EROLD_API_URL    API base URL (default: https://api.erold.dev/v1)
  EROLD_TIMEOUT    Per-attempt timeout in seconds (default: 30)
  EROLD_DEBUG      Log API traffic to stderr when set
  EROLD_DEBUG_LOG  Append API traffic to this file instead`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// Fail fast on broken configuration; per-request config still comes
	// from the environment once the server is running.
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := erold.NewDebugLogger(cfg.Debug, cfg.DebugLogPath)
	if err != nil {
		return err
	}
	defer logger.Close()

	client := erold.NewClient().WithDebugLogger(logger)

	// Serve until stdin closes
	server := eroldmcp.NewServer(client)
	return server.Run()
}
