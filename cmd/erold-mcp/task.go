package main

import (
	"context"
	"fmt"
	"time"

	erold "github.com/erold-dev/mcp-server"
	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Work with workspace tasks",
	Long: `Work with tasks in the Erold workspace.

Subcommands:
  list      List tasks with optional filters
  get       Show a single task
  create    Create a new task
  complete  Mark a task done

Example:
  erold-mcp task list --status in_progress
  erold-mcp task create "Fix login timeout" --priority high
  erold-mcp task complete t42`,
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks, optionally filtered by status, assignee, or project.

Example:
  erold-mcp task list
  erold-mcp task list --status todo --assignee dana
  erold-mcp task list --project p7 --limit 10 --json`,
	RunE: runTaskList,
}

var taskGetCmd = &cobra.Command{
	Use:   "get <task-id>",
	Short: "Show a task",
	Long: `Display a single task with its full description.

Example:
  erold-mcp task get t42
  erold-mcp task get t42 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runTaskGet,
}

var taskCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a task",
	Long: `Create a new task with the given title.

Example:
  erold-mcp task create "Fix login timeout"
  erold-mcp task create "Ship v2" --priority high --assignee dana --due 2026-09-01`,
	Args: cobra.ExactArgs(1),
	RunE: runTaskCreate,
}

var taskCompleteCmd = &cobra.Command{
	Use:   "complete <task-id>",
	Short: "Mark a task done",
	Long: `Mark a task as done.

Example:
  erold-mcp task complete t42`,
	Args: cobra.ExactArgs(1),
	RunE: runTaskComplete,
}

var (
	taskListStatus   string
	taskListAssignee string
	taskListProject  string
	taskListLimit    int

	taskCreateDescription string
	taskCreatePriority    string
	taskCreateAssignee    string
	taskCreateProject     string
	taskCreateDue         string
)

func init() {
	taskListCmd.Flags().StringVar(&taskListStatus, "status", "", "Filter by status (todo, in_progress, blocked, done)")
	taskListCmd.Flags().StringVar(&taskListAssignee, "assignee", "", "Filter by assignee")
	taskListCmd.Flags().StringVar(&taskListProject, "project", "", "Filter by project ID")
	taskListCmd.Flags().IntVar(&taskListLimit, "limit", 0, "Maximum number of tasks")

	taskCreateCmd.Flags().StringVar(&taskCreateDescription, "description", "", "Task description (markdown)")
	taskCreateCmd.Flags().StringVar(&taskCreatePriority, "priority", "", "Priority (low, medium, high, urgent)")
	taskCreateCmd.Flags().StringVar(&taskCreateAssignee, "assignee", "", "Assignee")
	taskCreateCmd.Flags().StringVar(&taskCreateProject, "project", "", "Project ID")
	taskCreateCmd.Flags().StringVar(&taskCreateDue, "due", "", "Due date (YYYY-MM-DD)")

	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskGetCmd)
	taskCmd.AddCommand(taskCreateCmd)
	taskCmd.AddCommand(taskCompleteCmd)

	rootCmd.AddCommand(taskCmd)
}

func runTaskList(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	status := erold.TaskStatus(taskListStatus)
	if taskListStatus != "" && !status.IsValid() {
		return fmt.Errorf("invalid status %q (valid: todo, in_progress, blocked, done)", taskListStatus)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := erold.NewClient()
	tasks, err := client.ListTasks(ctx, erold.TaskListParams{
		Status:   status,
		Assignee: taskListAssignee,
		Project:  taskListProject,
		Limit:    taskListLimit,
	})
	if err != nil {
		return err
	}

	return outputTaskList(cmd, tasks)
}

func runTaskGet(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	task, err := erold.NewClient().GetTask(ctx, args[0])
	if err != nil {
		return err
	}

	return outputTask(cmd, task)
}

func runTaskCreate(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	title := args[0]
	if len(title) > erold.MaxTitleLength {
		return fmt.Errorf("title exceeds %d characters", erold.MaxTitleLength)
	}

	priority := erold.Priority(taskCreatePriority)
	if taskCreatePriority != "" && !priority.IsValid() {
		return fmt.Errorf("invalid priority %q (valid: low, medium, high, urgent)", taskCreatePriority)
	}

	params := erold.TaskCreateParams{
		Title:       title,
		Description: taskCreateDescription,
		Priority:    priority,
		Assignee:    taskCreateAssignee,
		ProjectID:   taskCreateProject,
	}
	if taskCreateDue != "" {
		due, err := time.Parse("2006-01-02", taskCreateDue)
		if err != nil {
			return fmt.Errorf("invalid due date %q, want YYYY-MM-DD", taskCreateDue)
		}
		params.DueDate = &due
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	task, err := erold.NewClient().CreateTask(ctx, params)
	if err != nil {
		return err
	}

	if outputJSON {
		return outputAsJSON(cmd, task)
	}

	printSuccess(cmd.OutOrStdout(), "Task created: %s", task.ID)
	outputText(cmd, "  Title: %s\n", task.Title)
	outputText(cmd, "  Status: %s\n", task.Status)
	if task.Priority != "" {
		outputText(cmd, "  Priority: %s\n", task.Priority)
	}
	return nil
}

func runTaskComplete(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	task, err := erold.NewClient().CompleteTask(ctx, args[0])
	if err != nil {
		return err
	}

	if outputJSON {
		return outputAsJSON(cmd, task)
	}

	printSuccess(cmd.OutOrStdout(), "Task completed: %s (%s)", task.ID, task.Title)
	return nil
}

// formatRelativeTime formats a time as a relative string (e.g., "2h ago")
func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	d := time.Since(t)

	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		mins := int(d.Minutes())
		if mins == 1 {
			return "1m ago"
		}
		return fmt.Sprintf("%dm ago", mins)
	case d < 24*time.Hour:
		hours := int(d.Hours())
		if hours == 1 {
			return "1h ago"
		}
		return fmt.Sprintf("%dh ago", hours)
	case d < 7*24*time.Hour:
		days := int(d.Hours() / 24)
		if days == 1 {
			return "1d ago"
		}
		return fmt.Sprintf("%dd ago", days)
	default:
		weeks := int(d.Hours() / 24 / 7)
		if weeks == 1 {
			return "1w ago"
		}
		return fmt.Sprintf("%dw ago", weeks)
	}
}
