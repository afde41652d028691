package erold

import (
	"context"
	"encoding/json"
	"fmt"
)

// ListVaultItems returns vault items with their values masked.
func (c *Client) ListVaultItems(ctx context.Context) ([]VaultItem, error) {
	result, err := c.Get(ctx, tenantPath("vault"), nil)
	if err != nil {
		return nil, fmt.Errorf("list vault items: %w", err)
	}

	var items []VaultItem
	if err := json.Unmarshal(result, &items); err != nil {
		return nil, fmt.Errorf("list vault items: decode response: %w", err)
	}
	return items, nil
}

// GetVaultItem returns a single vault item with its value masked.
func (c *Client) GetVaultItem(ctx context.Context, id string) (*VaultItem, error) {
	result, err := c.Get(ctx, tenantPath("vault", id), nil)
	if err != nil {
		return nil, fmt.Errorf("get vault item: %w", err)
	}

	var item VaultItem
	if err := json.Unmarshal(result, &item); err != nil {
		return nil, fmt.Errorf("get vault item: decode response: %w", err)
	}
	return &item, nil
}

// CreateVaultItem stores a new credential and returns it (masked).
func (c *Client) CreateVaultItem(ctx context.Context, params VaultItemCreateParams) (*VaultItem, error) {
	result, err := c.Post(ctx, tenantPath("vault"), params)
	if err != nil {
		return nil, fmt.Errorf("create vault item: %w", err)
	}

	var item VaultItem
	if err := json.Unmarshal(result, &item); err != nil {
		return nil, fmt.Errorf("create vault item: decode response: %w", err)
	}
	return &item, nil
}

// UpdateVaultItem applies a partial update to a vault item.
func (c *Client) UpdateVaultItem(ctx context.Context, id string, params VaultItemUpdateParams) (*VaultItem, error) {
	result, err := c.Patch(ctx, tenantPath("vault", id), params)
	if err != nil {
		return nil, fmt.Errorf("update vault item: %w", err)
	}

	var item VaultItem
	if err := json.Unmarshal(result, &item); err != nil {
		return nil, fmt.Errorf("update vault item: decode response: %w", err)
	}
	return &item, nil
}

// DeleteVaultItem removes a vault item.
func (c *Client) DeleteVaultItem(ctx context.Context, id string) error {
	if _, err := c.Delete(ctx, tenantPath("vault", id)); err != nil {
		return fmt.Errorf("delete vault item: %w", err)
	}
	return nil
}

// RevealVaultItem returns a vault item with its value in the clear.
// The server records an audit event for every reveal.
func (c *Client) RevealVaultItem(ctx context.Context, id string) (*VaultItem, error) {
	result, err := c.Post(ctx, tenantPath("vault", id, "reveal"), nil)
	if err != nil {
		return nil, fmt.Errorf("reveal vault item: %w", err)
	}

	var item VaultItem
	if err := json.Unmarshal(result, &item); err != nil {
		return nil, fmt.Errorf("reveal vault item: decode response: %w", err)
	}
	return &item, nil
}
