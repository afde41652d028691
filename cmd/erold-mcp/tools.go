package main

import (
	"fmt"

	erold "github.com/erold-dev/mcp-server"
	eroldmcp "github.com/erold-dev/mcp-server/mcp"
	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the MCP tools this server exposes",
	Long: `List every MCP tool the serve command registers, with a short
description of each. Needs no API credentials.

Example:
  erold-mcp tools
  erold-mcp tools --json`,
	RunE: runTools,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}

func runTools(cmd *cobra.Command, args []string) error {
	// Registration needs no configuration; nothing here touches the API.
	server := eroldmcp.NewServer(erold.NewClient())
	tools := server.ListTools()

	if outputJSON {
		return outputAsJSON(cmd, tools)
	}

	out := cmd.OutOrStdout()
	printInfo(out, "MCP tools (%d):", len(tools))
	fmt.Fprintln(out)

	headers := []string{"TOOL", "DESCRIPTION"}
	rows := make([][]string, 0, len(tools))
	for _, tool := range tools {
		rows = append(rows, []string{tool.Name, tool.Description})
	}
	fmt.Fprintln(out, renderTable(headers, rows))
	return nil
}
