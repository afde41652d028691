package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Workspace-graph styles using shared brand colors from styles.go
	bannerDimStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	bannerNodeStyle    = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	bannerEdgeStyle    = lipgloss.NewStyle().Foreground(colorPrimaryLight)
	bannerTitleStyle   = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	bannerTaglineStyle = lipgloss.NewStyle().Foreground(colorPrimaryDark).Italic(true)
	bannerVersionStyle = lipgloss.NewStyle().Foreground(colorMuted)
)

func renderBanner() string {
	// Build styled characters
	dot := bannerDimStyle.Render("·")
	node := bannerNodeStyle.Render("◈")
	edge := bannerEdgeStyle.Render("─")
	drop := bannerEdgeStyle.Render("│")
	title := bannerTitleStyle.Render("EROLD")

	span := edge + edge + edge

	// Construct the workspace graph as a slice for clarity
	lines := []string{
		"      " + dot + span + node + span + dot,
		"      " + drop + "       " + drop,
		"      " + node + "  " + title + "  " + node,
		"      " + drop + "       " + drop,
		"      " + dot + span + node + span + dot,
	}

	return strings.Join(lines, "\n")
}

func renderBannerWithTagline() string {
	banner := renderBanner()
	tagline := bannerTaglineStyle.Render("   your workspace, in context")
	ver := bannerVersionStyle.Render("            " + version)

	return strings.Join([]string{banner, tagline, ver}, "\n")
}
