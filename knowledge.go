package erold

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// ListKnowledge returns knowledge-base articles matching the filters.
func (c *Client) ListKnowledge(ctx context.Context, params KnowledgeListParams) ([]Knowledge, error) {
	query := Query{
		{Key: "category", Value: params.Category},
		{Key: "search", Value: params.Search},
	}
	if params.Limit > 0 {
		query = query.With("limit", strconv.Itoa(params.Limit))
	}

	result, err := c.Get(ctx, tenantPath("knowledge"), query)
	if err != nil {
		return nil, fmt.Errorf("list knowledge: %w", err)
	}

	var articles []Knowledge
	if err := json.Unmarshal(result, &articles); err != nil {
		return nil, fmt.Errorf("list knowledge: decode response: %w", err)
	}
	return articles, nil
}

// GetKnowledge returns a single article by ID.
func (c *Client) GetKnowledge(ctx context.Context, id string) (*Knowledge, error) {
	result, err := c.Get(ctx, tenantPath("knowledge", id), nil)
	if err != nil {
		return nil, fmt.Errorf("get knowledge: %w", err)
	}

	var article Knowledge
	if err := json.Unmarshal(result, &article); err != nil {
		return nil, fmt.Errorf("get knowledge: decode response: %w", err)
	}
	return &article, nil
}

// CreateKnowledge creates a new article and returns it.
func (c *Client) CreateKnowledge(ctx context.Context, params KnowledgeCreateParams) (*Knowledge, error) {
	result, err := c.Post(ctx, tenantPath("knowledge"), params)
	if err != nil {
		return nil, fmt.Errorf("create knowledge: %w", err)
	}

	var article Knowledge
	if err := json.Unmarshal(result, &article); err != nil {
		return nil, fmt.Errorf("create knowledge: decode response: %w", err)
	}
	return &article, nil
}

// UpdateKnowledge applies a partial update to an article and returns
// the result.
func (c *Client) UpdateKnowledge(ctx context.Context, id string, params KnowledgeUpdateParams) (*Knowledge, error) {
	result, err := c.Patch(ctx, tenantPath("knowledge", id), params)
	if err != nil {
		return nil, fmt.Errorf("update knowledge: %w", err)
	}

	var article Knowledge
	if err := json.Unmarshal(result, &article); err != nil {
		return nil, fmt.Errorf("update knowledge: decode response: %w", err)
	}
	return &article, nil
}

// DeleteKnowledge removes an article.
func (c *Client) DeleteKnowledge(ctx context.Context, id string) error {
	if _, err := c.Delete(ctx, tenantPath("knowledge", id)); err != nil {
		return fmt.Errorf("delete knowledge: %w", err)
	}
	return nil
}
