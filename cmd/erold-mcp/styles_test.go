package main

import (
	"bytes"
	"strings"
	"testing"
)

// setMockTTY sets the TTY override for tests and returns a cleanup function.
// The cleanup function restores the override to nil, allowing real TTY detection.
func setMockTTY(value bool) func() {
	testIsTTYMutex.Lock()
	testIsTTYOverride = &value
	testIsTTYMutex.Unlock()
	return func() {
		testIsTTYMutex.Lock()
		testIsTTYOverride = nil
		testIsTTYMutex.Unlock()
	}
}

func TestRenderTable_TTY_WithBorders(t *testing.T) {
	defer setMockTTY(true)()

	headers := []string{"NAME", "COUNT", "STATUS"}
	rows := [][]string{
		{"alpha", "10", "active"},
		{"beta", "20", "inactive"},
	}

	result := renderTable(headers, rows)

	for _, want := range []string{"NAME", "COUNT", "STATUS", "alpha", "beta"} {
		if !strings.Contains(result, want) {
			t.Errorf("result should contain %q", want)
		}
	}

	if !strings.Contains(result, "╭") || !strings.Contains(result, "╯") {
		t.Error("TTY table should have rounded borders")
	}
	if !strings.Contains(result, "┼") {
		t.Error("TTY table should have a header separator")
	}
}

func TestRenderTable_NonTTY_PlainText(t *testing.T) {
	defer setMockTTY(false)()

	headers := []string{"NAME", "COUNT"}
	rows := [][]string{
		{"alpha", "10"},
		{"beta", "20"},
	}

	result := renderTable(headers, rows)

	if !strings.Contains(result, "NAME") || !strings.Contains(result, "alpha") {
		t.Error("result should contain headers and data")
	}
	if strings.ContainsAny(result, "─│╭╮╰╯├┼┤┬┴") {
		t.Error("non-TTY output should NOT contain border characters")
	}
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	defer setMockTTY(true)()

	result := renderTable(nil, [][]string{{"data1", "data2"}})
	if result != "" {
		t.Error("empty headers should return empty string")
	}
}

func TestRenderTable_RowsLongerThanHeaders(t *testing.T) {
	defer setMockTTY(true)()

	headers := []string{"COL1"}
	rows := [][]string{{"a", "b", "c"}} // More columns than headers

	result := renderTable(headers, rows)

	if !strings.Contains(result, "COL1") || !strings.Contains(result, "a") {
		t.Error("should contain header and first cell")
	}
	if strings.Contains(result, "b") {
		t.Error("extra cells beyond the header count should be ignored")
	}
}

func TestRenderTable_RowsShorterThanHeaders(t *testing.T) {
	defer setMockTTY(false)()

	headers := []string{"COL1", "COL2"}
	rows := [][]string{{"only"}}

	result := renderTable(headers, rows)
	if !strings.Contains(result, "only") {
		t.Error("short rows should still render")
	}
}

func TestRenderPanel_TTY_WithTitle(t *testing.T) {
	defer setMockTTY(true)()

	result := renderPanel("Workspace", "User: dana\nTenant: acme")

	if !strings.Contains(result, "Workspace") {
		t.Error("result should contain title")
	}
	if !strings.Contains(result, "User: dana") {
		t.Error("result should contain content")
	}
	if !strings.ContainsAny(result, "─│╭╮╰╯") {
		t.Error("TTY panel should have border characters")
	}
}

func TestRenderPanel_NonTTY_PlainText(t *testing.T) {
	defer setMockTTY(false)()

	result := renderPanel("Workspace", "User: dana")

	if !strings.Contains(result, "Workspace") || !strings.Contains(result, "User: dana") {
		t.Error("result should contain title and content")
	}
	if strings.ContainsAny(result, "─│╭╮╰╯") {
		t.Error("non-TTY panel should NOT have border characters")
	}
}

func TestRenderPanel_NoTitle(t *testing.T) {
	defer setMockTTY(false)()

	result := renderPanel("", "Just content here")
	if result != "Just content here" {
		t.Errorf("content-only panel = %q", result)
	}
}

func TestPrintStyled_NonTTY_PlainIcon(t *testing.T) {
	defer setMockTTY(false)()

	var buf bytes.Buffer
	printSuccess(&buf, "done %d", 3)

	if buf.String() != "✓ done 3\n" {
		t.Errorf("non-TTY output = %q", buf.String())
	}
}

func TestHasMarkdown(t *testing.T) {
	tests := []struct {
		content string
		want    bool
	}{
		{"# Heading", true},
		{"```\ncode\n```", true},
		{"plain sentence without markup", false},
		{"- bullet item", true},
		{"see [docs](https://example.com)", true},
	}

	for _, tt := range tests {
		if got := hasMarkdown(tt.content); got != tt.want {
			t.Errorf("hasMarkdown(%q) = %v, want %v", tt.content, got, tt.want)
		}
	}
}

func TestRenderMarkdown_NonTTY_Passthrough(t *testing.T) {
	defer setMockTTY(false)()

	content := "# Title\n\nBody"
	if got := renderMarkdown(content); got != content {
		t.Error("non-TTY renderMarkdown should return content unchanged")
	}
}

func TestBanner_ContainsTitleAndVersion(t *testing.T) {
	defer setMockTTY(true)()

	result := renderBannerWithTagline()
	if !strings.Contains(result, "EROLD") {
		t.Error("banner should contain the product name")
	}
	if !strings.Contains(result, "dev") {
		t.Error("banner should contain the version")
	}
	if !strings.Contains(result, "your workspace, in context") {
		t.Error("banner should contain the tagline")
	}
}
