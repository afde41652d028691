package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	erold "github.com/erold-dev/mcp-server"
	"github.com/spf13/cobra"
)

// outputAsJSON writes any value as formatted JSON to the command's stdout.
func outputAsJSON(cmd *cobra.Command, v interface{}) error {
	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputText prints text to the command's stdout.
func outputText(cmd *cobra.Command, format string, args ...interface{}) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, format, args...)
}

// outputError prints an error to stderr, ensuring no API keys are leaked.
func outputError(w io.Writer, err error) {
	msg := scrubSensitiveData(err.Error())
	fmt.Fprintf(w, "Error: %s\n", msg)
}

// scrubSensitiveData replaces the configured API key wherever it
// appears in a message, whether it arrived via flag or environment.
func scrubSensitiveData(msg string) string {
	for _, secret := range []string{cfgAPIKey, os.Getenv("EROLD_API_KEY")} {
		if secret != "" && strings.Contains(msg, secret) {
			msg = strings.ReplaceAll(msg, secret, "[REDACTED]")
		}
	}
	return msg
}

// TaskListOutput for JSON output.
type TaskListOutput struct {
	Tasks []erold.Task `json:"tasks"`
	Total int          `json:"total"`
}

// outputTaskList prints tasks in the configured format.
func outputTaskList(cmd *cobra.Command, tasks []erold.Task) error {
	if outputJSON {
		if tasks == nil {
			tasks = []erold.Task{}
		}
		return outputAsJSON(cmd, TaskListOutput{Tasks: tasks, Total: len(tasks)})
	}

	out := cmd.OutOrStdout()

	if len(tasks) == 0 {
		printWarning(out, "No tasks found.")
		printMuted(out, "Create one with: erold-mcp task create <title>")
		return nil
	}

	headers := []string{"ID", "TITLE", "STATUS", "PRIORITY", "ASSIGNEE", "DUE"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		title := t.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		assignee := t.Assignee
		if assignee == "" {
			assignee = "-"
		}
		due := "-"
		if t.DueDate != nil {
			due = t.DueDate.Format("2006-01-02")
		}
		rows = append(rows, []string{t.ID, title, string(t.Status), string(t.Priority), assignee, due})
	}

	printInfo(out, "Tasks (%d):", len(tasks))
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderTable(headers, rows))
	return nil
}

// outputTask prints a single task in the configured format.
func outputTask(cmd *cobra.Command, task *erold.Task) error {
	if outputJSON {
		return outputAsJSON(cmd, task)
	}

	out := cmd.OutOrStdout()
	printInfo(out, "Task: %s", task.Title)
	fmt.Fprintf(out, "  ID: %s\n", task.ID)
	fmt.Fprintf(out, "  Status: %s\n", task.Status)
	if task.Priority != "" {
		fmt.Fprintf(out, "  Priority: %s\n", task.Priority)
	}
	if task.Assignee != "" {
		fmt.Fprintf(out, "  Assignee: %s\n", task.Assignee)
	}
	if task.ProjectID != "" {
		fmt.Fprintf(out, "  Project: %s\n", task.ProjectID)
	}
	if task.DueDate != nil {
		fmt.Fprintf(out, "  Due: %s\n", task.DueDate.Format("2006-01-02"))
	}
	if !task.UpdatedAt.IsZero() {
		fmt.Fprintf(out, "  Updated: %s\n", formatRelativeTime(task.UpdatedAt))
	}
	if task.Description != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, renderMarkdown(task.Description))
	}
	return nil
}
