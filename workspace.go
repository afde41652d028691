package erold

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// GetWorkspaceContext returns the briefing payload for the current
// tenant: counts, recent activity, and workspace metadata.
func (c *Client) GetWorkspaceContext(ctx context.Context) (*WorkspaceContext, error) {
	result, err := c.Get(ctx, tenantPath("context"), nil)
	if err != nil {
		return nil, fmt.Errorf("get workspace context: %w", err)
	}

	var wc WorkspaceContext
	if err := json.Unmarshal(result, &wc); err != nil {
		return nil, fmt.Errorf("get workspace context: decode response: %w", err)
	}
	return &wc, nil
}

// ListMembers returns the members of the current tenant.
func (c *Client) ListMembers(ctx context.Context) ([]Member, error) {
	result, err := c.Get(ctx, tenantPath("members"), nil)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	var members []Member
	if err := json.Unmarshal(result, &members); err != nil {
		return nil, fmt.Errorf("list members: decode response: %w", err)
	}
	return members, nil
}

// ListActivity returns the most recent workspace activity entries.
func (c *Client) ListActivity(ctx context.Context, limit int) ([]ActivityEntry, error) {
	var query Query
	if limit > 0 {
		query = query.With("limit", strconv.Itoa(limit))
	}

	result, err := c.Get(ctx, tenantPath("activity"), query)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}

	var entries []ActivityEntry
	if err := json.Unmarshal(result, &entries); err != nil {
		return nil, fmt.Errorf("list activity: decode response: %w", err)
	}
	return entries, nil
}

// ListTenants returns every workspace the API key can access. This
// endpoint is not tenant-scoped.
func (c *Client) ListTenants(ctx context.Context) ([]Tenant, error) {
	result, err := c.Get(ctx, "/tenants", nil)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}

	var tenants []Tenant
	if err := json.Unmarshal(result, &tenants); err != nil {
		return nil, fmt.Errorf("list tenants: decode response: %w", err)
	}
	return tenants, nil
}

// CurrentUser returns the user the API key authenticates as. This
// endpoint is not tenant-scoped.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	result, err := c.Get(ctx, "/user", nil)
	if err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}

	var user User
	if err := json.Unmarshal(result, &user); err != nil {
		return nil, fmt.Errorf("current user: decode response: %w", err)
	}
	return &user, nil
}
