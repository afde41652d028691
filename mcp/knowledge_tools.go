package mcp

import (
	"context"
	"fmt"
	"strings"

	erold "github.com/erold-dev/mcp-server"
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerKnowledgeTools() {
	s.addTool(mcp.NewTool("erold_list_knowledge",
		mcp.WithDescription("List knowledge base articles, optionally filtered by category or a search term."),
		mcp.WithString("category",
			mcp.Description("Filter by category"),
		),
		mcp.WithString("search",
			mcp.Description("Full-text search term"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of articles to return"),
		),
	))

	s.addTool(mcp.NewTool("erold_get_knowledge",
		mcp.WithDescription("Get a knowledge base article with its full content."),
		mcp.WithString("id",
			mcp.Description("Article ID"),
			mcp.Required(),
		),
	))

	s.addTool(mcp.NewTool("erold_create_knowledge",
		mcp.WithDescription("Create a knowledge base article."),
		mcp.WithString("title",
			mcp.Description("Article title (max 200 chars)"),
			mcp.Required(),
		),
		mcp.WithString("content",
			mcp.Description("Article body in Markdown (max 20000 chars)"),
			mcp.Required(),
		),
		mcp.WithString("category",
			mcp.Description("Article category"),
		),
		mcp.WithArray("tags",
			mcp.Description("Tags for the article"),
			mcp.WithStringItems(),
		),
	))

	s.addTool(mcp.NewTool("erold_update_knowledge",
		mcp.WithDescription("Update a knowledge base article. Only the provided fields change."),
		mcp.WithString("id",
			mcp.Description("Article ID"),
			mcp.Required(),
		),
		mcp.WithString("title",
			mcp.Description("New title (max 200 chars)"),
		),
		mcp.WithString("content",
			mcp.Description("New body (max 20000 chars)"),
		),
		mcp.WithString("category",
			mcp.Description("New category"),
		),
		mcp.WithArray("tags",
			mcp.Description("Replacement tag list"),
			mcp.WithStringItems(),
		),
	))

	s.addTool(mcp.NewTool("erold_delete_knowledge",
		mcp.WithDescription("Delete a knowledge base article permanently."),
		mcp.WithString("id",
			mcp.Description("Article ID"),
			mcp.Required(),
		),
	))
}

func (s *Server) handleListKnowledge(ctx context.Context, args map[string]any) (*ToolResult, error) {
	articles, err := s.client.ListKnowledge(ctx, erold.KnowledgeListParams{
		Category: stringArg(args, "category"),
		Search:   stringArg(args, "search"),
		Limit:    intArg(args, "limit"),
	})
	if err != nil {
		return errorResult("listing knowledge", err), nil
	}

	return &ToolResult{Content: formatKnowledgeList(articles)}, nil
}

func (s *Server) handleGetKnowledge(ctx context.Context, args map[string]any) (*ToolResult, error) {
	id := stringArg(args, "id")
	if id == "" {
		return &ToolResult{Content: "id is required", IsError: true}, nil
	}

	article, err := s.client.GetKnowledge(ctx, id)
	if err != nil {
		return errorResult("fetching knowledge", err), nil
	}

	return &ToolResult{Content: formatKnowledge(article)}, nil
}

func (s *Server) handleCreateKnowledge(ctx context.Context, args map[string]any) (*ToolResult, error) {
	title := stringArg(args, "title")
	if title == "" {
		return &ToolResult{Content: "title is required", IsError: true}, nil
	}
	content := stringArg(args, "content")
	if content == "" {
		return &ToolResult{Content: "content is required", IsError: true}, nil
	}
	if msg := validateKnowledgeFields(title, content); msg != "" {
		return &ToolResult{Content: msg, IsError: true}, nil
	}

	article, err := s.client.CreateKnowledge(ctx, erold.KnowledgeCreateParams{
		Title:    title,
		Content:  content,
		Category: stringArg(args, "category"),
		Tags:     toStringSlice(args["tags"]),
	})
	if err != nil {
		return errorResult("creating knowledge", err), nil
	}

	return &ToolResult{Content: fmt.Sprintf("Created article [%s]: %s", article.ID, article.Title)}, nil
}

func (s *Server) handleUpdateKnowledge(ctx context.Context, args map[string]any) (*ToolResult, error) {
	id := stringArg(args, "id")
	if id == "" {
		return &ToolResult{Content: "id is required", IsError: true}, nil
	}

	params := erold.KnowledgeUpdateParams{
		Title:    stringArg(args, "title"),
		Content:  stringArg(args, "content"),
		Category: stringArg(args, "category"),
		Tags:     toStringSlice(args["tags"]),
	}
	if msg := validateKnowledgeFields(params.Title, params.Content); msg != "" {
		return &ToolResult{Content: msg, IsError: true}, nil
	}
	if params.Title == "" && params.Content == "" && params.Category == "" && params.Tags == nil {
		return &ToolResult{Content: "at least one field to update must be provided", IsError: true}, nil
	}

	article, err := s.client.UpdateKnowledge(ctx, id, params)
	if err != nil {
		return errorResult("updating knowledge", err), nil
	}

	return &ToolResult{Content: fmt.Sprintf("Updated article [%s]: %s", article.ID, article.Title)}, nil
}

func (s *Server) handleDeleteKnowledge(ctx context.Context, args map[string]any) (*ToolResult, error) {
	id := stringArg(args, "id")
	if id == "" {
		return &ToolResult{Content: "id is required", IsError: true}, nil
	}

	if err := s.client.DeleteKnowledge(ctx, id); err != nil {
		return errorResult("deleting knowledge", err), nil
	}

	return &ToolResult{Content: fmt.Sprintf("Deleted article %s.", id)}, nil
}

func validateKnowledgeFields(title, content string) string {
	if len(title) > erold.MaxTitleLength {
		return fmt.Sprintf("title exceeds %d characters", erold.MaxTitleLength)
	}
	if len(content) > erold.MaxContentLength {
		return fmt.Sprintf("content exceeds %d characters", erold.MaxContentLength)
	}
	return ""
}

// Formatting

func formatKnowledgeList(articles []erold.Knowledge) string {
	if len(articles) == 0 {
		return "No articles found."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d articles:\n\n", len(articles)))
	for _, a := range articles {
		sb.WriteString(fmt.Sprintf("[%s] %s\n", a.ID, a.Title))
		if a.Category != "" {
			sb.WriteString(fmt.Sprintf("    Category: %s\n", a.Category))
		}
		if len(a.Tags) > 0 {
			sb.WriteString(fmt.Sprintf("    Tags: %s\n", strings.Join(a.Tags, ", ")))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatKnowledge(a *erold.Knowledge) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Article: %s\n", a.Title))
	sb.WriteString(fmt.Sprintf("ID: %s\n", a.ID))
	if a.Category != "" {
		sb.WriteString(fmt.Sprintf("Category: %s\n", a.Category))
	}
	if len(a.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("Tags: %s\n", strings.Join(a.Tags, ", ")))
	}
	if a.Author != "" {
		sb.WriteString(fmt.Sprintf("Author: %s\n", a.Author))
	}
	sb.WriteString(fmt.Sprintf("Updated: %s\n", formatTimestamp(a.UpdatedAt)))
	sb.WriteString(fmt.Sprintf("\n%s", a.Content))
	return sb.String()
}
