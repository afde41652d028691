package main

import (
	"context"
	"fmt"
	"time"

	erold "github.com/erold-dev/mcp-server"
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated user",
	Long: `Show the user and tenant the configured API key resolves to.

Example:
  erold-mcp whoami
  erold-mcp whoami --json`,
	RunE: runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// WhoamiResult for JSON output.
type WhoamiResult struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Tenant string `json:"tenant"`
}

func runWhoami(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	user, err := erold.NewClient().CurrentUser(ctx)
	if err != nil {
		return err
	}

	if outputJSON {
		return outputAsJSON(cmd, WhoamiResult{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Tenant: cfg.TenantID,
		})
	}

	content := fmt.Sprintf("User: %s\nEmail: %s\nTenant: %s", user.Name, user.Email, cfg.TenantID)
	fmt.Fprintln(cmd.OutOrStdout(), renderPanel("Erold Workspace", content))
	return nil
}
