package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	erold "github.com/erold-dev/mcp-server"
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerTaskTools() {
	s.addTool(mcp.NewTool("erold_list_tasks",
		mcp.WithDescription("List tasks in the current workspace. Supports filtering by status, assignee, and project."),
		mcp.WithString("status",
			mcp.Description("Filter by status: todo, in_progress, blocked, done"),
		),
		mcp.WithString("assignee",
			mcp.Description("Filter by assignee"),
		),
		mcp.WithString("project",
			mcp.Description("Filter by project ID"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of tasks to return"),
		),
	))

	s.addTool(mcp.NewTool("erold_get_task",
		mcp.WithDescription("Get full details for a single task, including its description and due date."),
		mcp.WithString("id",
			mcp.Description("Task ID"),
			mcp.Required(),
		),
	))

	s.addTool(mcp.NewTool("erold_create_task",
		mcp.WithDescription("Create a new task in the current workspace."),
		mcp.WithString("title",
			mcp.Description("Task title (max 200 chars)"),
			mcp.Required(),
		),
		mcp.WithString("description",
			mcp.Description("Longer task description"),
		),
		mcp.WithString("status",
			mcp.Description("Initial status: todo, in_progress, blocked, done (default: todo)"),
		),
		mcp.WithString("priority",
			mcp.Description("Priority: low, medium, high, urgent"),
		),
		mcp.WithString("assignee",
			mcp.Description("Assignee for the task"),
		),
		mcp.WithString("project_id",
			mcp.Description("Project the task belongs to"),
		),
		mcp.WithString("due_date",
			mcp.Description("Due date as YYYY-MM-DD or RFC 3339"),
		),
	))

	s.addTool(mcp.NewTool("erold_update_task",
		mcp.WithDescription("Update fields of an existing task. Only the provided fields change."),
		mcp.WithString("id",
			mcp.Description("Task ID"),
			mcp.Required(),
		),
		mcp.WithString("title",
			mcp.Description("New title (max 200 chars)"),
		),
		mcp.WithString("description",
			mcp.Description("New description"),
		),
		mcp.WithString("status",
			mcp.Description("New status: todo, in_progress, blocked, done"),
		),
		mcp.WithString("priority",
			mcp.Description("New priority: low, medium, high, urgent"),
		),
		mcp.WithString("assignee",
			mcp.Description("New assignee"),
		),
		mcp.WithString("project_id",
			mcp.Description("New project"),
		),
		mcp.WithString("due_date",
			mcp.Description("New due date as YYYY-MM-DD or RFC 3339"),
		),
	))

	s.addTool(mcp.NewTool("erold_delete_task",
		mcp.WithDescription("Delete a task permanently."),
		mcp.WithString("id",
			mcp.Description("Task ID"),
			mcp.Required(),
		),
	))

	s.addTool(mcp.NewTool("erold_complete_task",
		mcp.WithDescription("Mark a task as done."),
		mcp.WithString("id",
			mcp.Description("Task ID"),
			mcp.Required(),
		),
	))
}

func (s *Server) handleListTasks(ctx context.Context, args map[string]any) (*ToolResult, error) {
	params := erold.TaskListParams{
		Status:   erold.TaskStatus(stringArg(args, "status")),
		Assignee: stringArg(args, "assignee"),
		Project:  stringArg(args, "project"),
		Limit:    intArg(args, "limit"),
	}
	if params.Status != "" && !params.Status.IsValid() {
		return &ToolResult{
			Content: fmt.Sprintf("invalid status: %q (valid: todo, in_progress, blocked, done)", params.Status),
			IsError: true,
		}, nil
	}

	tasks, err := s.client.ListTasks(ctx, params)
	if err != nil {
		return errorResult("listing tasks", err), nil
	}

	return &ToolResult{Content: formatTaskList(tasks)}, nil
}

func (s *Server) handleGetTask(ctx context.Context, args map[string]any) (*ToolResult, error) {
	id := stringArg(args, "id")
	if id == "" {
		return &ToolResult{Content: "id is required", IsError: true}, nil
	}

	task, err := s.client.GetTask(ctx, id)
	if err != nil {
		return errorResult("fetching task", err), nil
	}

	return &ToolResult{Content: formatTask(task)}, nil
}

func (s *Server) handleCreateTask(ctx context.Context, args map[string]any) (*ToolResult, error) {
	title := stringArg(args, "title")
	if title == "" {
		return &ToolResult{Content: "title is required", IsError: true}, nil
	}

	params := erold.TaskCreateParams{
		Title:       title,
		Description: stringArg(args, "description"),
		Status:      erold.TaskStatus(stringArg(args, "status")),
		Priority:    erold.Priority(stringArg(args, "priority")),
		Assignee:    stringArg(args, "assignee"),
		ProjectID:   stringArg(args, "project_id"),
	}
	if msg := validateTaskFields(params.Title, params.Status, params.Priority); msg != "" {
		return &ToolResult{Content: msg, IsError: true}, nil
	}
	if due := stringArg(args, "due_date"); due != "" {
		t, err := parseDueDate(due)
		if err != nil {
			return &ToolResult{Content: err.Error(), IsError: true}, nil
		}
		params.DueDate = t
	}

	task, err := s.client.CreateTask(ctx, params)
	if err != nil {
		return errorResult("creating task", err), nil
	}

	return &ToolResult{
		Content: fmt.Sprintf("Created task [%s]: %s (status: %s)", task.ID, task.Title, task.Status),
	}, nil
}

func (s *Server) handleUpdateTask(ctx context.Context, args map[string]any) (*ToolResult, error) {
	id := stringArg(args, "id")
	if id == "" {
		return &ToolResult{Content: "id is required", IsError: true}, nil
	}

	params := erold.TaskUpdateParams{
		Title:       stringArg(args, "title"),
		Description: stringArg(args, "description"),
		Status:      erold.TaskStatus(stringArg(args, "status")),
		Priority:    erold.Priority(stringArg(args, "priority")),
		Assignee:    stringArg(args, "assignee"),
		ProjectID:   stringArg(args, "project_id"),
	}
	if msg := validateTaskFields(params.Title, params.Status, params.Priority); msg != "" {
		return &ToolResult{Content: msg, IsError: true}, nil
	}
	if due := stringArg(args, "due_date"); due != "" {
		t, err := parseDueDate(due)
		if err != nil {
			return &ToolResult{Content: err.Error(), IsError: true}, nil
		}
		params.DueDate = t
	}
	if params == (erold.TaskUpdateParams{}) {
		return &ToolResult{Content: "at least one field to update must be provided", IsError: true}, nil
	}

	task, err := s.client.UpdateTask(ctx, id, params)
	if err != nil {
		return errorResult("updating task", err), nil
	}

	return &ToolResult{
		Content: fmt.Sprintf("Updated task [%s]: %s (status: %s)", task.ID, task.Title, task.Status),
	}, nil
}

func (s *Server) handleDeleteTask(ctx context.Context, args map[string]any) (*ToolResult, error) {
	id := stringArg(args, "id")
	if id == "" {
		return &ToolResult{Content: "id is required", IsError: true}, nil
	}

	if err := s.client.DeleteTask(ctx, id); err != nil {
		return errorResult("deleting task", err), nil
	}

	return &ToolResult{Content: fmt.Sprintf("Deleted task %s.", id)}, nil
}

func (s *Server) handleCompleteTask(ctx context.Context, args map[string]any) (*ToolResult, error) {
	id := stringArg(args, "id")
	if id == "" {
		return &ToolResult{Content: "id is required", IsError: true}, nil
	}

	task, err := s.client.CompleteTask(ctx, id)
	if err != nil {
		return errorResult("completing task", err), nil
	}

	return &ToolResult{Content: fmt.Sprintf("Completed task [%s]: %s", task.ID, task.Title)}, nil
}

// validateTaskFields checks the shared create/update constraints and
// returns a message for the assistant, or "" when everything is fine.
func validateTaskFields(title string, status erold.TaskStatus, priority erold.Priority) string {
	if len(title) > erold.MaxTitleLength {
		return fmt.Sprintf("title exceeds %d characters", erold.MaxTitleLength)
	}
	if status != "" && !status.IsValid() {
		return fmt.Sprintf("invalid status: %q (valid: todo, in_progress, blocked, done)", status)
	}
	if priority != "" && !priority.IsValid() {
		return fmt.Sprintf("invalid priority: %q (valid: low, medium, high, urgent)", priority)
	}
	return ""
}

func parseDueDate(v string) (*time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid due_date %q, want YYYY-MM-DD or RFC 3339", v)
}

// Formatting

func formatTaskList(tasks []erold.Task) string {
	if len(tasks) == 0 {
		return "No tasks found."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d tasks:\n\n", len(tasks)))
	for _, t := range tasks {
		sb.WriteString(fmt.Sprintf("[%s] %s\n", t.ID, t.Title))
		sb.WriteString(fmt.Sprintf("    Status: %s", t.Status))
		if t.Priority != "" {
			sb.WriteString(fmt.Sprintf(" | Priority: %s", t.Priority))
		}
		if t.Assignee != "" {
			sb.WriteString(fmt.Sprintf(" | Assignee: %s", t.Assignee))
		}
		if t.DueDate != nil {
			sb.WriteString(fmt.Sprintf(" | Due: %s", t.DueDate.Format("2006-01-02")))
		}
		sb.WriteString("\n\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatTask(t *erold.Task) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Task: %s\n", t.Title))
	sb.WriteString(fmt.Sprintf("ID: %s\n", t.ID))
	sb.WriteString(fmt.Sprintf("Status: %s\n", t.Status))
	if t.Priority != "" {
		sb.WriteString(fmt.Sprintf("Priority: %s\n", t.Priority))
	}
	if t.Assignee != "" {
		sb.WriteString(fmt.Sprintf("Assignee: %s\n", t.Assignee))
	}
	if t.ProjectID != "" {
		sb.WriteString(fmt.Sprintf("Project: %s\n", t.ProjectID))
	}
	if t.DueDate != nil {
		sb.WriteString(fmt.Sprintf("Due: %s\n", t.DueDate.Format("2006-01-02")))
	}
	if t.Description != "" {
		sb.WriteString(fmt.Sprintf("\n%s\n", t.Description))
	}
	sb.WriteString(fmt.Sprintf("\nUpdated: %s", formatTimestamp(t.UpdatedAt)))
	return sb.String()
}
