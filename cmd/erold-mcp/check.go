package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	erold "github.com/erold-dev/mcp-server"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify configuration and API connectivity",
	Long: `Verify that erold-mcp can reach the Erold workspace.

Runs three checks in order: configuration, authentication, and
workspace access. Exits non-zero on the first failure.

Example:
  erold-mcp check
  erold-mcp check --tenant acme --api-key <key>`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if isTTY() {
		fmt.Fprintln(out, renderBannerWithTagline())
		fmt.Fprintln(out)
	}

	cfg, err := loadConfig()
	if err != nil {
		printError(out, "Configuration: %s", scrubSensitiveData(err.Error()))
		return errors.New("check failed")
	}
	printSuccess(out, "Configuration loaded (tenant: %s)", cfg.TenantID)
	printMuted(out, "  API: %s", cfg.BaseURL)

	client := erold.NewClient()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var user *erold.User
	err = runWithSpinner(out, "Contacting Erold API", func() error {
		var err error
		user, err = client.CurrentUser(ctx)
		return err
	})
	if err != nil {
		printError(out, "Authentication: %s", scrubSensitiveData(err.Error()))
		return errors.New("check failed")
	}
	printSuccess(out, "Authenticated as %s <%s>", user.Name, user.Email)

	var ws *erold.WorkspaceContext
	err = runWithSpinner(out, "Checking workspace access", func() error {
		var err error
		ws, err = client.GetWorkspaceContext(ctx)
		return err
	})
	if err != nil {
		printError(out, "Workspace access: %s", scrubSensitiveData(err.Error()))
		return errors.New("check failed")
	}
	printSuccess(out, "Workspace %q reachable (%d open tasks, %d active projects)",
		ws.TenantName, ws.OpenTasks, ws.ActiveProjects)

	fmt.Fprintln(out)
	printSuccess(out, "All checks passed.")
	return nil
}
