// Package mcp exposes the Erold workspace as an MCP (Model Context
// Protocol) server: 34 tools plus two read-only resources, served over
// stdio via mcp-go.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	erold "github.com/erold-dev/mcp-server"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server wraps the MCP server with Erold workspace tools.
type Server struct {
	client     *erold.Client
	guidelines *erold.GuidelineService
	mcpServer  *server.MCPServer
}

// ToolResult represents the result of a tool call.
type ToolResult struct {
	Content string
	IsError bool
}

// ToolInfo represents a registered tool.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewServer creates a new MCP server with Erold tools and resources
// registered.
func NewServer(client *erold.Client) *Server {
	s := &Server{
		client:     client,
		guidelines: erold.NewGuidelineService(client),
	}

	s.mcpServer = server.NewMCPServer(
		"erold",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Run starts the MCP server, reading from stdin and writing to stdout.
// It uses os.Stdin and os.Stdout internally via the mcp-go ServeStdio function.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

// HandleMessage processes a raw JSON-RPC message and returns a response.
// This is primarily for testing the MCP protocol layer.
func (s *Server) HandleMessage(ctx context.Context, message json.RawMessage) mcp.JSONRPCMessage {
	return s.mcpServer.HandleMessage(ctx, message)
}

// ListTools returns all registered tools.
func (s *Server) ListTools() []ToolInfo {
	tools := make([]ToolInfo, len(toolCatalog))
	copy(tools, toolCatalog)
	return tools
}

// toolCatalog is the short-form tool listing surfaced by ListTools and
// the tools CLI command. Registration descriptions carry the longer,
// assistant-facing text.
var toolCatalog = []ToolInfo{
	{Name: "erold_list_tasks", Description: "List workspace tasks with optional status, assignee, and project filters"},
	{Name: "erold_get_task", Description: "Get full details for a single task"},
	{Name: "erold_create_task", Description: "Create a new task"},
	{Name: "erold_update_task", Description: "Update fields of an existing task"},
	{Name: "erold_delete_task", Description: "Delete a task"},
	{Name: "erold_complete_task", Description: "Mark a task as done"},
	{Name: "erold_list_projects", Description: "List all projects in the workspace"},
	{Name: "erold_get_project", Description: "Get a project with its task progress statistics"},
	{Name: "erold_create_project", Description: "Create a new project"},
	{Name: "erold_update_project", Description: "Update fields of an existing project"},
	{Name: "erold_delete_project", Description: "Delete a project"},
	{Name: "erold_list_knowledge", Description: "List or search knowledge base articles"},
	{Name: "erold_get_knowledge", Description: "Get a knowledge base article"},
	{Name: "erold_create_knowledge", Description: "Create a knowledge base article"},
	{Name: "erold_update_knowledge", Description: "Update a knowledge base article"},
	{Name: "erold_delete_knowledge", Description: "Delete a knowledge base article"},
	{Name: "erold_list_vault_items", Description: "List vault credentials (values masked)"},
	{Name: "erold_get_vault_item", Description: "Get vault item metadata (value masked)"},
	{Name: "erold_create_vault_item", Description: "Store a new credential in the vault"},
	{Name: "erold_update_vault_item", Description: "Update a vault item"},
	{Name: "erold_delete_vault_item", Description: "Delete a vault item"},
	{Name: "erold_reveal_vault_item", Description: "Reveal a vault item value in the clear (audited)"},
	{Name: "erold_list_tech_info", Description: "List technical reference entries, optionally by category"},
	{Name: "erold_get_tech_info", Description: "Get a technical reference entry"},
	{Name: "erold_create_tech_info", Description: "Create a technical reference entry"},
	{Name: "erold_update_tech_info", Description: "Update a technical reference entry"},
	{Name: "erold_delete_tech_info", Description: "Delete a technical reference entry"},
	{Name: "erold_list_guidelines", Description: "List workspace guidelines"},
	{Name: "erold_get_guideline", Description: "Get a workspace guideline by slug"},
	{Name: "erold_get_workspace_context", Description: "Get the workspace briefing: open tasks, projects, members, activity"},
	{Name: "erold_list_members", Description: "List workspace members"},
	{Name: "erold_list_activity", Description: "List recent workspace activity"},
	{Name: "erold_list_tenants", Description: "List workspaces the API key can access"},
	{Name: "erold_whoami", Description: "Show the authenticated user"},
}

func (s *Server) registerTools() {
	s.registerTaskTools()
	s.registerProjectTools()
	s.registerKnowledgeTools()
	s.registerVaultTools()
	s.registerTechInfoTools()
	s.registerGuidelineTools()
	s.registerWorkspaceTools()
}

// addTool registers a tool whose protocol handler routes through
// CallTool, so the stdio path and direct invocation share the same
// validation and panic recovery.
func (s *Server) addTool(tool mcp.Tool) {
	name := tool.Name
	s.mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := s.CallTool(ctx, name, req.GetArguments())
		if err != nil {
			return nil, err
		}
		return toMCPResult(result), nil
	})
}

// CallTool executes a tool by name with the given arguments.
// A panicking handler is reported as an error result rather than
// tearing down the server loop.
func (s *Server) CallTool(ctx context.Context, name string, args map[string]any) (result *ToolResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = &ToolResult{
				Content: fmt.Sprintf("Error running %s: %s", name, erold.FormatError(nil)),
				IsError: true,
			}
			err = nil
		}
	}()

	switch name {
	case "erold_list_tasks":
		return s.handleListTasks(ctx, args)
	case "erold_get_task":
		return s.handleGetTask(ctx, args)
	case "erold_create_task":
		return s.handleCreateTask(ctx, args)
	case "erold_update_task":
		return s.handleUpdateTask(ctx, args)
	case "erold_delete_task":
		return s.handleDeleteTask(ctx, args)
	case "erold_complete_task":
		return s.handleCompleteTask(ctx, args)
	case "erold_list_projects":
		return s.handleListProjects(ctx, args)
	case "erold_get_project":
		return s.handleGetProject(ctx, args)
	case "erold_create_project":
		return s.handleCreateProject(ctx, args)
	case "erold_update_project":
		return s.handleUpdateProject(ctx, args)
	case "erold_delete_project":
		return s.handleDeleteProject(ctx, args)
	case "erold_list_knowledge":
		return s.handleListKnowledge(ctx, args)
	case "erold_get_knowledge":
		return s.handleGetKnowledge(ctx, args)
	case "erold_create_knowledge":
		return s.handleCreateKnowledge(ctx, args)
	case "erold_update_knowledge":
		return s.handleUpdateKnowledge(ctx, args)
	case "erold_delete_knowledge":
		return s.handleDeleteKnowledge(ctx, args)
	case "erold_list_vault_items":
		return s.handleListVaultItems(ctx, args)
	case "erold_get_vault_item":
		return s.handleGetVaultItem(ctx, args)
	case "erold_create_vault_item":
		return s.handleCreateVaultItem(ctx, args)
	case "erold_update_vault_item":
		return s.handleUpdateVaultItem(ctx, args)
	case "erold_delete_vault_item":
		return s.handleDeleteVaultItem(ctx, args)
	case "erold_reveal_vault_item":
		return s.handleRevealVaultItem(ctx, args)
	case "erold_list_tech_info":
		return s.handleListTechInfo(ctx, args)
	case "erold_get_tech_info":
		return s.handleGetTechInfo(ctx, args)
	case "erold_create_tech_info":
		return s.handleCreateTechInfo(ctx, args)
	case "erold_update_tech_info":
		return s.handleUpdateTechInfo(ctx, args)
	case "erold_delete_tech_info":
		return s.handleDeleteTechInfo(ctx, args)
	case "erold_list_guidelines":
		return s.handleListGuidelines(ctx, args)
	case "erold_get_guideline":
		return s.handleGetGuideline(ctx, args)
	case "erold_get_workspace_context":
		return s.handleGetWorkspaceContext(ctx, args)
	case "erold_list_members":
		return s.handleListMembers(ctx, args)
	case "erold_list_activity":
		return s.handleListActivity(ctx, args)
	case "erold_list_tenants":
		return s.handleListTenants(ctx, args)
	case "erold_whoami":
		return s.handleWhoami(ctx, args)
	default:
		return &ToolResult{Content: fmt.Sprintf("unknown tool: %s", name), IsError: true}, nil
	}
}

func toMCPResult(r *ToolResult) *mcp.CallToolResult {
	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: r.Content,
			},
		},
	}
	if r.IsError {
		result.IsError = true
	}
	return result
}

// errorResult renders an accessor error for the assistant. The
// operation phrase reads like "listing tasks", producing content such
// as "Error listing tasks: API Error (404): Task not found".
func errorResult(operation string, err error) *ToolResult {
	return &ToolResult{
		Content: fmt.Sprintf("Error %s: %s", operation, erold.FormatError(err)),
		IsError: true,
	}
}

// Argument helpers

// stringArg returns the named argument as a string, or "" when absent
// or of another type.
func stringArg(args map[string]any, key string) string {
	v, _ := args[key].(string)
	return v
}

// intArg returns the named argument as an int. JSON numbers arrive as
// float64 through the protocol layer.
func intArg(args map[string]any, key string) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// toStringSlice converts various array types to []string.
// Handles []any, []string, and nil.
func toStringSlice(v any) []string {
	if v == nil {
		return nil
	}

	switch arr := v.(type) {
	case []string:
		return arr
	case []any:
		result := make([]string, 0, len(arr))
		for _, item := range arr {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result
	default:
		return nil
	}
}

// Shared formatting helpers

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.UTC().Format("2006-01-02 15:04 UTC")
}

// formatRelativeTime formats a timestamp as relative time (e.g., "2h ago").
func formatRelativeTime(t time.Time) string {
	duration := time.Since(t)
	switch {
	case duration < time.Minute:
		return "just now"
	case duration < time.Hour:
		return fmt.Sprintf("%dm ago", int(duration.Minutes()))
	case duration < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(duration.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(duration.Hours()/24))
	}
}
