package erold

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// wireProject is the API's project representation. The display name
// travels as "title" on the wire; the tool-facing Project type calls
// it Name. projectFromWire and projectToWire are the only translation
// points between the two vocabularies.
type wireProject struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status,omitempty"`
	Lead        string     `json:"lead,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func projectFromWire(w wireProject) Project {
	p := Project{
		ID:          w.ID,
		Name:        w.Title,
		Description: w.Description,
		Status:      w.Status,
		Lead:        w.Lead,
	}
	if w.CreatedAt != nil {
		p.CreatedAt = *w.CreatedAt
	}
	if w.UpdatedAt != nil {
		p.UpdatedAt = *w.UpdatedAt
	}
	return p
}

func projectToWire(p Project) wireProject {
	w := wireProject{
		ID:          p.ID,
		Title:       p.Name,
		Description: p.Description,
		Status:      p.Status,
		Lead:        p.Lead,
	}
	if !p.CreatedAt.IsZero() {
		t := p.CreatedAt
		w.CreatedAt = &t
	}
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		w.UpdatedAt = &t
	}
	return w
}

// ListProjects returns all projects in the workspace.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	result, err := c.Get(ctx, tenantPath("projects"), nil)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	var wires []wireProject
	if err := json.Unmarshal(result, &wires); err != nil {
		return nil, fmt.Errorf("list projects: decode response: %w", err)
	}

	projects := make([]Project, len(wires))
	for i, w := range wires {
		projects[i] = projectFromWire(w)
	}
	return projects, nil
}

// GetProject returns a single project by ID.
func (c *Client) GetProject(ctx context.Context, id string) (*Project, error) {
	result, err := c.Get(ctx, tenantPath("projects", id), nil)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	var w wireProject
	if err := json.Unmarshal(result, &w); err != nil {
		return nil, fmt.Errorf("get project: decode response: %w", err)
	}
	p := projectFromWire(w)
	return &p, nil
}

// GetProjectStats returns task progress statistics for a project.
func (c *Client) GetProjectStats(ctx context.Context, id string) (*ProjectStats, error) {
	result, err := c.Get(ctx, tenantPath("projects", id, "stats"), nil)
	if err != nil {
		return nil, fmt.Errorf("get project stats: %w", err)
	}

	var stats ProjectStats
	if err := json.Unmarshal(result, &stats); err != nil {
		return nil, fmt.Errorf("get project stats: decode response: %w", err)
	}
	return &stats, nil
}

// CreateProject creates a new project and returns it.
func (c *Client) CreateProject(ctx context.Context, params ProjectCreateParams) (*Project, error) {
	body := projectToWire(Project{
		Name:        params.Name,
		Description: params.Description,
		Lead:        params.Lead,
	})

	result, err := c.Post(ctx, tenantPath("projects"), body)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	var w wireProject
	if err := json.Unmarshal(result, &w); err != nil {
		return nil, fmt.Errorf("create project: decode response: %w", err)
	}
	p := projectFromWire(w)
	return &p, nil
}

// UpdateProject applies a partial update to a project and returns the
// result.
func (c *Client) UpdateProject(ctx context.Context, id string, params ProjectUpdateParams) (*Project, error) {
	body := projectToWire(Project{
		Name:        params.Name,
		Description: params.Description,
		Status:      params.Status,
		Lead:        params.Lead,
	})

	result, err := c.Patch(ctx, tenantPath("projects", id), body)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	var w wireProject
	if err := json.Unmarshal(result, &w); err != nil {
		return nil, fmt.Errorf("update project: decode response: %w", err)
	}
	p := projectFromWire(w)
	return &p, nil
}

// DeleteProject removes a project.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	if _, err := c.Delete(ctx, tenantPath("projects", id)); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
