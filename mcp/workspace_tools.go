package mcp

import (
	"context"
	"fmt"
	"strings"

	erold "github.com/erold-dev/mcp-server"
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerWorkspaceTools() {
	s.addTool(mcp.NewTool("erold_get_workspace_context",
		mcp.WithDescription("Get the workspace briefing: open task count, active projects, member count, and recent activity. Call this at the start of a session to orient yourself."),
	))

	s.addTool(mcp.NewTool("erold_list_members",
		mcp.WithDescription("List members of the current workspace."),
	))

	s.addTool(mcp.NewTool("erold_list_activity",
		mcp.WithDescription("List recent workspace activity, newest first."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to return"),
		),
	))

	s.addTool(mcp.NewTool("erold_list_tenants",
		mcp.WithDescription("List the workspaces the configured API key can access."),
	))

	s.addTool(mcp.NewTool("erold_whoami",
		mcp.WithDescription("Show the user the configured API key authenticates as."),
	))
}

func (s *Server) handleGetWorkspaceContext(ctx context.Context, args map[string]any) (*ToolResult, error) {
	wc, err := s.client.GetWorkspaceContext(ctx)
	if err != nil {
		return errorResult("fetching workspace context", err), nil
	}

	return &ToolResult{Content: formatWorkspaceContext(wc)}, nil
}

func (s *Server) handleListMembers(ctx context.Context, args map[string]any) (*ToolResult, error) {
	members, err := s.client.ListMembers(ctx)
	if err != nil {
		return errorResult("listing members", err), nil
	}

	return &ToolResult{Content: formatMemberList(members)}, nil
}

func (s *Server) handleListActivity(ctx context.Context, args map[string]any) (*ToolResult, error) {
	entries, err := s.client.ListActivity(ctx, intArg(args, "limit"))
	if err != nil {
		return errorResult("listing activity", err), nil
	}

	return &ToolResult{Content: formatActivityList(entries)}, nil
}

func (s *Server) handleListTenants(ctx context.Context, args map[string]any) (*ToolResult, error) {
	tenants, err := s.client.ListTenants(ctx)
	if err != nil {
		return errorResult("listing tenants", err), nil
	}

	return &ToolResult{Content: formatTenantList(tenants)}, nil
}

func (s *Server) handleWhoami(ctx context.Context, args map[string]any) (*ToolResult, error) {
	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		return errorResult("fetching current user", err), nil
	}

	return &ToolResult{
		Content: fmt.Sprintf("Authenticated as %s <%s> (id: %s)", user.Name, user.Email, user.ID),
	}, nil
}

// Formatting

func formatWorkspaceContext(wc *erold.WorkspaceContext) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Workspace: %s (%s)\n", wc.TenantName, wc.TenantID))
	sb.WriteString(fmt.Sprintf("Open tasks: %d\n", wc.OpenTasks))
	sb.WriteString(fmt.Sprintf("Active projects: %d\n", wc.ActiveProjects))
	sb.WriteString(fmt.Sprintf("Members: %d\n", wc.Members))

	if len(wc.RecentActivity) > 0 {
		sb.WriteString("\nRecent activity:\n")
		for _, e := range wc.RecentActivity {
			sb.WriteString(formatActivityLine(e))
		}
	}

	sb.WriteString(fmt.Sprintf("\nGenerated: %s", formatTimestamp(wc.GeneratedAt)))
	return sb.String()
}

func formatMemberList(members []erold.Member) string {
	if len(members) == 0 {
		return "No members found."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d members:\n\n", len(members)))
	for _, m := range members {
		sb.WriteString(fmt.Sprintf("%s <%s>", m.Name, m.Email))
		if m.Role != "" {
			sb.WriteString(fmt.Sprintf(" | %s", m.Role))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatActivityList(entries []erold.ActivityEntry) string {
	if len(entries) == 0 {
		return "No recent activity."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Recent activity (%d entries):\n\n", len(entries)))
	for _, e := range entries {
		sb.WriteString(formatActivityLine(e))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatActivityLine(e erold.ActivityEntry) string {
	line := fmt.Sprintf("  %s %s", e.Actor, e.Action)
	if e.Target != "" {
		line += fmt.Sprintf(" %s", e.Target)
	}
	return fmt.Sprintf("%s (%s)\n", line, formatRelativeTime(e.Timestamp))
}

func formatTenantList(tenants []erold.Tenant) string {
	if len(tenants) == 0 {
		return "No accessible workspaces."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Accessible workspaces (%d):\n\n", len(tenants)))
	for _, t := range tenants {
		sb.WriteString(fmt.Sprintf("[%s] %s", t.ID, t.Name))
		if t.Plan != "" {
			sb.WriteString(fmt.Sprintf(" (%s plan)", t.Plan))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
