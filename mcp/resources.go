package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Read-only resources expose workspace state to hosts that consume
// resources instead of (or alongside) tool calls.

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(
		"erold://workspace/context",
		"Workspace Context",
		mcp.WithResourceDescription("Current workspace briefing: open tasks, active projects, members, recent activity"),
		mcp.WithMIMEType("application/json"),
	), s.readWorkspaceContext)

	s.mcpServer.AddResource(mcp.NewResource(
		"erold://workspace/guidelines",
		"Workspace Guidelines",
		mcp.WithResourceDescription("Team working agreements and conventions for this workspace"),
		mcp.WithMIMEType("application/json"),
	), s.readGuidelines)
}

func (s *Server) readWorkspaceContext(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	wc, err := s.client.GetWorkspaceContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading workspace context: %w", err)
	}
	return jsonResource(req.Params.URI, wc)
}

func (s *Server) readGuidelines(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	guidelines, err := s.guidelines.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading guidelines: %w", err)
	}
	return jsonResource(req.Params.URI, guidelines)
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling resource %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
