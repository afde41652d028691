package mcp

import (
	"context"
	"fmt"
	"strings"

	erold "github.com/erold-dev/mcp-server"
	"github.com/mark3labs/mcp-go/mcp"
)

// Guideline tools read through the GuidelineService so repeated calls
// within the cache TTL don't refetch the whole document set.

func (s *Server) registerGuidelineTools() {
	s.addTool(mcp.NewTool("erold_list_guidelines",
		mcp.WithDescription("List workspace guidelines: working agreements, conventions, and process documents."),
	))

	s.addTool(mcp.NewTool("erold_get_guideline",
		mcp.WithDescription("Get a workspace guideline by slug, with its full content."),
		mcp.WithString("slug",
			mcp.Description("Guideline slug, e.g. code-review or deploys"),
			mcp.Required(),
		),
	))
}

func (s *Server) handleListGuidelines(ctx context.Context, args map[string]any) (*ToolResult, error) {
	guidelines, err := s.guidelines.List(ctx)
	if err != nil {
		return errorResult("listing guidelines", err), nil
	}

	return &ToolResult{Content: formatGuidelineList(guidelines)}, nil
}

func (s *Server) handleGetGuideline(ctx context.Context, args map[string]any) (*ToolResult, error) {
	slug := stringArg(args, "slug")
	if slug == "" {
		return &ToolResult{Content: "slug is required", IsError: true}, nil
	}

	guideline, err := s.guidelines.Get(ctx, slug)
	if err != nil {
		return errorResult("fetching guideline", err), nil
	}

	return &ToolResult{Content: formatGuideline(guideline)}, nil
}

// Formatting

func formatGuidelineList(guidelines []erold.Guideline) string {
	if len(guidelines) == 0 {
		return "No guidelines found."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d guidelines:\n\n", len(guidelines)))
	for _, g := range guidelines {
		sb.WriteString(fmt.Sprintf("[%s] %s\n", g.Slug, g.Title))
	}
	sb.WriteString("\nUse erold_get_guideline with a slug to read one.")
	return sb.String()
}

func formatGuideline(g *erold.Guideline) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Guideline: %s\n", g.Title))
	sb.WriteString(fmt.Sprintf("Slug: %s\n", g.Slug))
	sb.WriteString(fmt.Sprintf("Updated: %s\n", formatTimestamp(g.UpdatedAt)))
	sb.WriteString(fmt.Sprintf("\n%s", g.Content))
	return sb.String()
}
