package mcp

import (
	"context"
	"fmt"
	"strings"

	erold "github.com/erold-dev/mcp-server"
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerVaultTools() {
	s.addTool(mcp.NewTool("erold_list_vault_items",
		mcp.WithDescription("List stored credentials. Values are always masked in listings."),
	))

	s.addTool(mcp.NewTool("erold_get_vault_item",
		mcp.WithDescription("Get a vault item's metadata. The value stays masked; use erold_reveal_vault_item for the clear value."),
		mcp.WithString("id",
			mcp.Description("Vault item ID"),
			mcp.Required(),
		),
	))

	s.addTool(mcp.NewTool("erold_create_vault_item",
		mcp.WithDescription("Store a new credential in the workspace vault."),
		mcp.WithString("name",
			mcp.Description("Display name for the credential"),
			mcp.Required(),
		),
		mcp.WithString("kind",
			mcp.Description("Credential kind: password, api_key, certificate, ssh_key, note"),
			mcp.Required(),
		),
		mcp.WithString("value",
			mcp.Description("The secret value"),
			mcp.Required(),
		),
		mcp.WithString("username",
			mcp.Description("Associated username or account"),
		),
		mcp.WithString("url",
			mcp.Description("URL the credential belongs to"),
		),
		mcp.WithString("notes",
			mcp.Description("Free-form notes"),
		),
	))

	s.addTool(mcp.NewTool("erold_update_vault_item",
		mcp.WithDescription("Update a vault item. Only the provided fields change."),
		mcp.WithString("id",
			mcp.Description("Vault item ID"),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("New display name"),
		),
		mcp.WithString("kind",
			mcp.Description("New kind: password, api_key, certificate, ssh_key, note"),
		),
		mcp.WithString("value",
			mcp.Description("New secret value"),
		),
		mcp.WithString("username",
			mcp.Description("New username"),
		),
		mcp.WithString("url",
			mcp.Description("New URL"),
		),
		mcp.WithString("notes",
			mcp.Description("New notes"),
		),
	))

	s.addTool(mcp.NewTool("erold_delete_vault_item",
		mcp.WithDescription("Delete a vault item permanently."),
		mcp.WithString("id",
			mcp.Description("Vault item ID"),
			mcp.Required(),
		),
	))

	s.addTool(mcp.NewTool("erold_reveal_vault_item",
		mcp.WithDescription("Reveal a vault item's value in the clear. Every reveal is audited server-side."),
		mcp.WithString("id",
			mcp.Description("Vault item ID"),
			mcp.Required(),
		),
	))
}

func (s *Server) handleListVaultItems(ctx context.Context, args map[string]any) (*ToolResult, error) {
	items, err := s.client.ListVaultItems(ctx)
	if err != nil {
		return errorResult("listing vault items", err), nil
	}

	return &ToolResult{Content: formatVaultItemList(items)}, nil
}

func (s *Server) handleGetVaultItem(ctx context.Context, args map[string]any) (*ToolResult, error) {
	id := stringArg(args, "id")
	if id == "" {
		return &ToolResult{Content: "id is required", IsError: true}, nil
	}

	item, err := s.client.GetVaultItem(ctx, id)
	if err != nil {
		return errorResult("fetching vault item", err), nil
	}

	return &ToolResult{Content: formatVaultItem(item)}, nil
}

func (s *Server) handleCreateVaultItem(ctx context.Context, args map[string]any) (*ToolResult, error) {
	name := stringArg(args, "name")
	if name == "" {
		return &ToolResult{Content: "name is required", IsError: true}, nil
	}
	kind := erold.VaultItemKind(stringArg(args, "kind"))
	if kind == "" {
		return &ToolResult{Content: "kind is required", IsError: true}, nil
	}
	if !kind.IsValid() {
		return &ToolResult{
			Content: fmt.Sprintf("invalid kind: %q (valid: password, api_key, certificate, ssh_key, note)", kind),
			IsError: true,
		}, nil
	}
	value := stringArg(args, "value")
	if value == "" {
		return &ToolResult{Content: "value is required", IsError: true}, nil
	}

	item, err := s.client.CreateVaultItem(ctx, erold.VaultItemCreateParams{
		Name:     name,
		Kind:     kind,
		Username: stringArg(args, "username"),
		Value:    value,
		URL:      stringArg(args, "url"),
		Notes:    stringArg(args, "notes"),
	})
	if err != nil {
		return errorResult("creating vault item", err), nil
	}

	return &ToolResult{Content: fmt.Sprintf("Stored vault item [%s]: %s (%s)", item.ID, item.Name, item.Kind)}, nil
}

func (s *Server) handleUpdateVaultItem(ctx context.Context, args map[string]any) (*ToolResult, error) {
	id := stringArg(args, "id")
	if id == "" {
		return &ToolResult{Content: "id is required", IsError: true}, nil
	}

	params := erold.VaultItemUpdateParams{
		Name:     stringArg(args, "name"),
		Kind:     erold.VaultItemKind(stringArg(args, "kind")),
		Username: stringArg(args, "username"),
		Value:    stringArg(args, "value"),
		URL:      stringArg(args, "url"),
		Notes:    stringArg(args, "notes"),
	}
	if params.Kind != "" && !params.Kind.IsValid() {
		return &ToolResult{
			Content: fmt.Sprintf("invalid kind: %q (valid: password, api_key, certificate, ssh_key, note)", params.Kind),
			IsError: true,
		}, nil
	}
	if params == (erold.VaultItemUpdateParams{}) {
		return &ToolResult{Content: "at least one field to update must be provided", IsError: true}, nil
	}

	item, err := s.client.UpdateVaultItem(ctx, id, params)
	if err != nil {
		return errorResult("updating vault item", err), nil
	}

	return &ToolResult{Content: fmt.Sprintf("Updated vault item [%s]: %s", item.ID, item.Name)}, nil
}

func (s *Server) handleDeleteVaultItem(ctx context.Context, args map[string]any) (*ToolResult, error) {
	id := stringArg(args, "id")
	if id == "" {
		return &ToolResult{Content: "id is required", IsError: true}, nil
	}

	if err := s.client.DeleteVaultItem(ctx, id); err != nil {
		return errorResult("deleting vault item", err), nil
	}

	return &ToolResult{Content: fmt.Sprintf("Deleted vault item %s.", id)}, nil
}

func (s *Server) handleRevealVaultItem(ctx context.Context, args map[string]any) (*ToolResult, error) {
	id := stringArg(args, "id")
	if id == "" {
		return &ToolResult{Content: "id is required", IsError: true}, nil
	}

	item, err := s.client.RevealVaultItem(ctx, id)
	if err != nil {
		return errorResult("revealing vault item", err), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Vault item: %s (%s)\n", item.Name, item.Kind))
	if item.Username != "" {
		sb.WriteString(fmt.Sprintf("Username: %s\n", item.Username))
	}
	sb.WriteString(fmt.Sprintf("Value: %s", item.Value))
	return &ToolResult{Content: sb.String()}, nil
}

// Formatting

func formatVaultItemList(items []erold.VaultItem) string {
	if len(items) == 0 {
		return "No vault items found."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d vault items:\n\n", len(items)))
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("[%s] %s (%s)\n", item.ID, item.Name, item.Kind))
		if item.Username != "" {
			sb.WriteString(fmt.Sprintf("    Username: %s\n", item.Username))
		}
		if item.URL != "" {
			sb.WriteString(fmt.Sprintf("    URL: %s\n", item.URL))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Values are masked. Use erold_reveal_vault_item to read one in the clear.")
	return sb.String()
}

func formatVaultItem(item *erold.VaultItem) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Vault item: %s\n", item.Name))
	sb.WriteString(fmt.Sprintf("ID: %s\n", item.ID))
	sb.WriteString(fmt.Sprintf("Kind: %s\n", item.Kind))
	if item.Username != "" {
		sb.WriteString(fmt.Sprintf("Username: %s\n", item.Username))
	}
	if item.Value != "" {
		sb.WriteString(fmt.Sprintf("Value: %s\n", item.Value))
	}
	if item.URL != "" {
		sb.WriteString(fmt.Sprintf("URL: %s\n", item.URL))
	}
	if item.Notes != "" {
		sb.WriteString(fmt.Sprintf("Notes: %s\n", item.Notes))
	}
	sb.WriteString(fmt.Sprintf("Updated: %s", formatTimestamp(item.UpdatedAt)))
	return sb.String()
}
