package erold

import (
	"context"
	"encoding/json"
	"fmt"
)

// ListTechInfo returns technical reference entries, optionally
// filtered by category.
func (c *Client) ListTechInfo(ctx context.Context, category string) ([]TechInfoEntry, error) {
	query := Query{{Key: "category", Value: category}}

	result, err := c.Get(ctx, tenantPath("tech-info"), query)
	if err != nil {
		return nil, fmt.Errorf("list tech info: %w", err)
	}

	var entries []TechInfoEntry
	if err := json.Unmarshal(result, &entries); err != nil {
		return nil, fmt.Errorf("list tech info: decode response: %w", err)
	}
	return entries, nil
}

// GetTechInfo returns a single tech info entry by ID.
func (c *Client) GetTechInfo(ctx context.Context, id string) (*TechInfoEntry, error) {
	result, err := c.Get(ctx, tenantPath("tech-info", id), nil)
	if err != nil {
		return nil, fmt.Errorf("get tech info: %w", err)
	}

	var entry TechInfoEntry
	if err := json.Unmarshal(result, &entry); err != nil {
		return nil, fmt.Errorf("get tech info: decode response: %w", err)
	}
	return &entry, nil
}

// CreateTechInfo creates a new tech info entry and returns it.
func (c *Client) CreateTechInfo(ctx context.Context, params TechInfoCreateParams) (*TechInfoEntry, error) {
	result, err := c.Post(ctx, tenantPath("tech-info"), params)
	if err != nil {
		return nil, fmt.Errorf("create tech info: %w", err)
	}

	var entry TechInfoEntry
	if err := json.Unmarshal(result, &entry); err != nil {
		return nil, fmt.Errorf("create tech info: decode response: %w", err)
	}
	return &entry, nil
}

// UpdateTechInfo applies a partial update to a tech info entry.
func (c *Client) UpdateTechInfo(ctx context.Context, id string, params TechInfoUpdateParams) (*TechInfoEntry, error) {
	result, err := c.Patch(ctx, tenantPath("tech-info", id), params)
	if err != nil {
		return nil, fmt.Errorf("update tech info: %w", err)
	}

	var entry TechInfoEntry
	if err := json.Unmarshal(result, &entry); err != nil {
		return nil, fmt.Errorf("update tech info: decode response: %w", err)
	}
	return &entry, nil
}

// DeleteTechInfo removes a tech info entry.
func (c *Client) DeleteTechInfo(ctx context.Context, id string) error {
	if _, err := c.Delete(ctx, tenantPath("tech-info", id)); err != nil {
		return fmt.Errorf("delete tech info: %w", err)
	}
	return nil
}
