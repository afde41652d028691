package erold

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// ListTasks returns workspace tasks matching the given filters.
func (c *Client) ListTasks(ctx context.Context, params TaskListParams) ([]Task, error) {
	query := Query{
		{Key: "status", Value: string(params.Status)},
		{Key: "assignee", Value: params.Assignee},
		{Key: "project", Value: params.Project},
	}
	if params.Limit > 0 {
		query = query.With("limit", strconv.Itoa(params.Limit))
	}

	result, err := c.Get(ctx, tenantPath("tasks"), query)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	var tasks []Task
	if err := json.Unmarshal(result, &tasks); err != nil {
		return nil, fmt.Errorf("list tasks: decode response: %w", err)
	}
	return tasks, nil
}

// GetTask returns a single task by ID.
func (c *Client) GetTask(ctx context.Context, id string) (*Task, error) {
	result, err := c.Get(ctx, tenantPath("tasks", id), nil)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	var task Task
	if err := json.Unmarshal(result, &task); err != nil {
		return nil, fmt.Errorf("get task: decode response: %w", err)
	}
	return &task, nil
}

// CreateTask creates a new task and returns it.
func (c *Client) CreateTask(ctx context.Context, params TaskCreateParams) (*Task, error) {
	result, err := c.Post(ctx, tenantPath("tasks"), params)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	var task Task
	if err := json.Unmarshal(result, &task); err != nil {
		return nil, fmt.Errorf("create task: decode response: %w", err)
	}
	return &task, nil
}

// UpdateTask applies a partial update to a task and returns the result.
func (c *Client) UpdateTask(ctx context.Context, id string, params TaskUpdateParams) (*Task, error) {
	result, err := c.Patch(ctx, tenantPath("tasks", id), params)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	var task Task
	if err := json.Unmarshal(result, &task); err != nil {
		return nil, fmt.Errorf("update task: decode response: %w", err)
	}
	return &task, nil
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	if _, err := c.Delete(ctx, tenantPath("tasks", id)); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// CompleteTask marks a task done via the dedicated action endpoint and
// returns the updated task.
func (c *Client) CompleteTask(ctx context.Context, id string) (*Task, error) {
	result, err := c.Post(ctx, tenantPath("tasks", id, "complete"), nil)
	if err != nil {
		return nil, fmt.Errorf("complete task: %w", err)
	}

	var task Task
	if err := json.Unmarshal(result, &task); err != nil {
		return nil, fmt.Errorf("complete task: decode response: %w", err)
	}
	return &task, nil
}
