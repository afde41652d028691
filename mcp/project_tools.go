package mcp

import (
	"context"
	"fmt"
	"strings"

	erold "github.com/erold-dev/mcp-server"
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerProjectTools() {
	s.addTool(mcp.NewTool("erold_list_projects",
		mcp.WithDescription("List all projects in the current workspace."),
	))

	s.addTool(mcp.NewTool("erold_get_project",
		mcp.WithDescription("Get a project together with its task progress statistics."),
		mcp.WithString("id",
			mcp.Description("Project ID"),
			mcp.Required(),
		),
	))

	s.addTool(mcp.NewTool("erold_create_project",
		mcp.WithDescription("Create a new project in the current workspace."),
		mcp.WithString("name",
			mcp.Description("Project name (max 200 chars)"),
			mcp.Required(),
		),
		mcp.WithString("description",
			mcp.Description("Project description"),
		),
		mcp.WithString("lead",
			mcp.Description("Project lead"),
		),
	))

	s.addTool(mcp.NewTool("erold_update_project",
		mcp.WithDescription("Update fields of an existing project. Only the provided fields change."),
		mcp.WithString("id",
			mcp.Description("Project ID"),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("New name (max 200 chars)"),
		),
		mcp.WithString("description",
			mcp.Description("New description"),
		),
		mcp.WithString("status",
			mcp.Description("New status"),
		),
		mcp.WithString("lead",
			mcp.Description("New lead"),
		),
	))

	s.addTool(mcp.NewTool("erold_delete_project",
		mcp.WithDescription("Delete a project permanently."),
		mcp.WithString("id",
			mcp.Description("Project ID"),
			mcp.Required(),
		),
	))
}

func (s *Server) handleListProjects(ctx context.Context, args map[string]any) (*ToolResult, error) {
	projects, err := s.client.ListProjects(ctx)
	if err != nil {
		return errorResult("listing projects", err), nil
	}

	return &ToolResult{Content: formatProjectList(projects)}, nil
}

// handleGetProject fetches the project record and its task statistics
// concurrently and renders them as one report. The first failure wins.
func (s *Server) handleGetProject(ctx context.Context, args map[string]any) (*ToolResult, error) {
	id := stringArg(args, "id")
	if id == "" {
		return &ToolResult{Content: "id is required", IsError: true}, nil
	}

	var (
		project *erold.Project
		stats   *erold.ProjectStats
	)
	errc := make(chan error, 2)
	go func() {
		var err error
		project, err = s.client.GetProject(ctx, id)
		errc <- err
	}()
	go func() {
		var err error
		stats, err = s.client.GetProjectStats(ctx, id)
		errc <- err
	}()

	var firstErr error
	for i := 0; i < 2; i++ {
		if err := <-errc; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return errorResult("fetching project", firstErr), nil
	}

	return &ToolResult{Content: formatProject(project, stats)}, nil
}

func (s *Server) handleCreateProject(ctx context.Context, args map[string]any) (*ToolResult, error) {
	name := stringArg(args, "name")
	if name == "" {
		return &ToolResult{Content: "name is required", IsError: true}, nil
	}
	if len(name) > erold.MaxTitleLength {
		return &ToolResult{
			Content: fmt.Sprintf("name exceeds %d characters", erold.MaxTitleLength),
			IsError: true,
		}, nil
	}

	project, err := s.client.CreateProject(ctx, erold.ProjectCreateParams{
		Name:        name,
		Description: stringArg(args, "description"),
		Lead:        stringArg(args, "lead"),
	})
	if err != nil {
		return errorResult("creating project", err), nil
	}

	return &ToolResult{Content: fmt.Sprintf("Created project [%s]: %s", project.ID, project.Name)}, nil
}

func (s *Server) handleUpdateProject(ctx context.Context, args map[string]any) (*ToolResult, error) {
	id := stringArg(args, "id")
	if id == "" {
		return &ToolResult{Content: "id is required", IsError: true}, nil
	}

	params := erold.ProjectUpdateParams{
		Name:        stringArg(args, "name"),
		Description: stringArg(args, "description"),
		Status:      stringArg(args, "status"),
		Lead:        stringArg(args, "lead"),
	}
	if len(params.Name) > erold.MaxTitleLength {
		return &ToolResult{
			Content: fmt.Sprintf("name exceeds %d characters", erold.MaxTitleLength),
			IsError: true,
		}, nil
	}
	if params == (erold.ProjectUpdateParams{}) {
		return &ToolResult{Content: "at least one field to update must be provided", IsError: true}, nil
	}

	project, err := s.client.UpdateProject(ctx, id, params)
	if err != nil {
		return errorResult("updating project", err), nil
	}

	return &ToolResult{Content: fmt.Sprintf("Updated project [%s]: %s", project.ID, project.Name)}, nil
}

func (s *Server) handleDeleteProject(ctx context.Context, args map[string]any) (*ToolResult, error) {
	id := stringArg(args, "id")
	if id == "" {
		return &ToolResult{Content: "id is required", IsError: true}, nil
	}

	if err := s.client.DeleteProject(ctx, id); err != nil {
		return errorResult("deleting project", err), nil
	}

	return &ToolResult{Content: fmt.Sprintf("Deleted project %s.", id)}, nil
}

// Formatting

func formatProjectList(projects []erold.Project) string {
	if len(projects) == 0 {
		return "No projects found."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d projects:\n\n", len(projects)))
	for _, p := range projects {
		sb.WriteString(fmt.Sprintf("[%s] %s\n", p.ID, p.Name))
		if p.Status != "" || p.Lead != "" {
			sb.WriteString("   ")
			if p.Status != "" {
				sb.WriteString(fmt.Sprintf(" Status: %s", p.Status))
			}
			if p.Lead != "" {
				sb.WriteString(fmt.Sprintf(" Lead: %s", p.Lead))
			}
			sb.WriteString("\n")
		}
		if p.Description != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", truncate(p.Description, 100)))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatProject(p *erold.Project, stats *erold.ProjectStats) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Project: %s\n", p.Name))
	sb.WriteString(fmt.Sprintf("ID: %s\n", p.ID))
	if p.Status != "" {
		sb.WriteString(fmt.Sprintf("Status: %s\n", p.Status))
	}
	if p.Lead != "" {
		sb.WriteString(fmt.Sprintf("Lead: %s\n", p.Lead))
	}
	if p.Description != "" {
		sb.WriteString(fmt.Sprintf("\n%s\n", p.Description))
	}

	sb.WriteString("\nProgress:\n")
	sb.WriteString(fmt.Sprintf("  Tasks: %d total, %d open, %d completed\n",
		stats.TotalTasks, stats.OpenTasks, stats.CompletedTasks))
	if stats.OverdueTasks > 0 {
		sb.WriteString(fmt.Sprintf("  Overdue: %d\n", stats.OverdueTasks))
	}
	sb.WriteString(fmt.Sprintf("  Complete: %.0f%%", stats.Progress*100))
	return sb.String()
}
