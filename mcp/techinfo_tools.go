package mcp

import (
	"context"
	"fmt"
	"strings"

	erold "github.com/erold-dev/mcp-server"
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerTechInfoTools() {
	s.addTool(mcp.NewTool("erold_list_tech_info",
		mcp.WithDescription("List technical reference entries (endpoints, runbooks, environment details), optionally by category."),
		mcp.WithString("category",
			mcp.Description("Filter by category"),
		),
	))

	s.addTool(mcp.NewTool("erold_get_tech_info",
		mcp.WithDescription("Get a technical reference entry with its full content."),
		mcp.WithString("id",
			mcp.Description("Entry ID"),
			mcp.Required(),
		),
	))

	s.addTool(mcp.NewTool("erold_create_tech_info",
		mcp.WithDescription("Create a technical reference entry."),
		mcp.WithString("name",
			mcp.Description("Entry name (max 200 chars)"),
			mcp.Required(),
		),
		mcp.WithString("content",
			mcp.Description("Entry content (max 20000 chars)"),
			mcp.Required(),
		),
		mcp.WithString("category",
			mcp.Description("Entry category"),
		),
		mcp.WithString("environment",
			mcp.Description("Environment the entry applies to, e.g. production or staging"),
		),
	))

	s.addTool(mcp.NewTool("erold_update_tech_info",
		mcp.WithDescription("Update a technical reference entry. Only the provided fields change."),
		mcp.WithString("id",
			mcp.Description("Entry ID"),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("New name (max 200 chars)"),
		),
		mcp.WithString("content",
			mcp.Description("New content (max 20000 chars)"),
		),
		mcp.WithString("category",
			mcp.Description("New category"),
		),
		mcp.WithString("environment",
			mcp.Description("New environment"),
		),
	))

	s.addTool(mcp.NewTool("erold_delete_tech_info",
		mcp.WithDescription("Delete a technical reference entry permanently."),
		mcp.WithString("id",
			mcp.Description("Entry ID"),
			mcp.Required(),
		),
	))
}

func (s *Server) handleListTechInfo(ctx context.Context, args map[string]any) (*ToolResult, error) {
	entries, err := s.client.ListTechInfo(ctx, stringArg(args, "category"))
	if err != nil {
		return errorResult("listing tech info", err), nil
	}

	return &ToolResult{Content: formatTechInfoList(entries)}, nil
}

func (s *Server) handleGetTechInfo(ctx context.Context, args map[string]any) (*ToolResult, error) {
	id := stringArg(args, "id")
	if id == "" {
		return &ToolResult{Content: "id is required", IsError: true}, nil
	}

	entry, err := s.client.GetTechInfo(ctx, id)
	if err != nil {
		return errorResult("fetching tech info", err), nil
	}

	return &ToolResult{Content: formatTechInfo(entry)}, nil
}

func (s *Server) handleCreateTechInfo(ctx context.Context, args map[string]any) (*ToolResult, error) {
	name := stringArg(args, "name")
	if name == "" {
		return &ToolResult{Content: "name is required", IsError: true}, nil
	}
	content := stringArg(args, "content")
	if content == "" {
		return &ToolResult{Content: "content is required", IsError: true}, nil
	}
	if msg := validateTechInfoFields(name, content); msg != "" {
		return &ToolResult{Content: msg, IsError: true}, nil
	}

	entry, err := s.client.CreateTechInfo(ctx, erold.TechInfoCreateParams{
		Name:        name,
		Content:     content,
		Category:    stringArg(args, "category"),
		Environment: stringArg(args, "environment"),
	})
	if err != nil {
		return errorResult("creating tech info", err), nil
	}

	return &ToolResult{Content: fmt.Sprintf("Created tech info entry [%s]: %s", entry.ID, entry.Name)}, nil
}

func (s *Server) handleUpdateTechInfo(ctx context.Context, args map[string]any) (*ToolResult, error) {
	id := stringArg(args, "id")
	if id == "" {
		return &ToolResult{Content: "id is required", IsError: true}, nil
	}

	params := erold.TechInfoUpdateParams{
		Name:        stringArg(args, "name"),
		Content:     stringArg(args, "content"),
		Category:    stringArg(args, "category"),
		Environment: stringArg(args, "environment"),
	}
	if msg := validateTechInfoFields(params.Name, params.Content); msg != "" {
		return &ToolResult{Content: msg, IsError: true}, nil
	}
	if params == (erold.TechInfoUpdateParams{}) {
		return &ToolResult{Content: "at least one field to update must be provided", IsError: true}, nil
	}

	entry, err := s.client.UpdateTechInfo(ctx, id, params)
	if err != nil {
		return errorResult("updating tech info", err), nil
	}

	return &ToolResult{Content: fmt.Sprintf("Updated tech info entry [%s]: %s", entry.ID, entry.Name)}, nil
}

func (s *Server) handleDeleteTechInfo(ctx context.Context, args map[string]any) (*ToolResult, error) {
	id := stringArg(args, "id")
	if id == "" {
		return &ToolResult{Content: "id is required", IsError: true}, nil
	}

	if err := s.client.DeleteTechInfo(ctx, id); err != nil {
		return errorResult("deleting tech info", err), nil
	}

	return &ToolResult{Content: fmt.Sprintf("Deleted tech info entry %s.", id)}, nil
}

func validateTechInfoFields(name, content string) string {
	if len(name) > erold.MaxTitleLength {
		return fmt.Sprintf("name exceeds %d characters", erold.MaxTitleLength)
	}
	if len(content) > erold.MaxContentLength {
		return fmt.Sprintf("content exceeds %d characters", erold.MaxContentLength)
	}
	return ""
}

// Formatting

func formatTechInfoList(entries []erold.TechInfoEntry) string {
	if len(entries) == 0 {
		return "No tech info entries found."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d tech info entries:\n\n", len(entries)))
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("[%s] %s\n", e.ID, e.Name))
		if e.Category != "" || e.Environment != "" {
			sb.WriteString("   ")
			if e.Category != "" {
				sb.WriteString(fmt.Sprintf(" Category: %s", e.Category))
			}
			if e.Environment != "" {
				sb.WriteString(fmt.Sprintf(" Environment: %s", e.Environment))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatTechInfo(e *erold.TechInfoEntry) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Tech info: %s\n", e.Name))
	sb.WriteString(fmt.Sprintf("ID: %s\n", e.ID))
	if e.Category != "" {
		sb.WriteString(fmt.Sprintf("Category: %s\n", e.Category))
	}
	if e.Environment != "" {
		sb.WriteString(fmt.Sprintf("Environment: %s\n", e.Environment))
	}
	sb.WriteString(fmt.Sprintf("Updated: %s\n", formatTimestamp(e.UpdatedAt)))
	sb.WriteString(fmt.Sprintf("\n%s", e.Content))
	return sb.String()
}
