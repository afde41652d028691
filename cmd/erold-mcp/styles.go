package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Brand color palette
var (
	// Primary Brand Colors (Erold Indigo)
	colorPrimary      = lipgloss.Color("#6366F1") // Erold Indigo - main brand
	colorPrimaryLight = lipgloss.Color("#818CF8") // Light Indigo - highlights
	colorPrimaryDark  = lipgloss.Color("#4F46E5") // Dark Indigo - active states

	// Neutral Colors
	colorText  = lipgloss.Color("#F4F4F5") // Primary text
	colorMuted = lipgloss.Color("240")     // Muted gray for secondary text

	// State Colors
	colorSuccess = lipgloss.Color("#22C55E") // Success green
	colorWarning = lipgloss.Color("#F59E0B") // Warning amber
	colorError   = lipgloss.Color("#EF4444") // Error red
)

// Styles
var (
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(colorPrimary)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	labelStyle   = lipgloss.NewStyle().Foreground(colorPrimaryLight).Bold(true)
	valueStyle   = lipgloss.NewStyle().Foreground(colorText)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)
)

// Icons
const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "⚠"
	iconInfo    = "●"
)

// Test hook for TTY detection. When testIsTTYOverride is non-nil, isTTY
// returns its value instead of probing stdout.
var (
	testIsTTYMutex    sync.Mutex
	testIsTTYOverride *bool
)

// isTTY returns true if stdout is a terminal
func isTTY() bool {
	testIsTTYMutex.Lock()
	override := testIsTTYOverride
	testIsTTYMutex.Unlock()
	if override != nil {
		return *override
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// printStyled prints a message with an icon, applying style only in TTY mode
func printStyled(w io.Writer, icon string, style lipgloss.Style, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if isTTY() {
		fmt.Fprintf(w, "%s %s\n", style.Render(icon), msg)
	} else {
		fmt.Fprintf(w, "%s %s\n", icon, msg)
	}
}

// printSuccess prints a success message with green checkmark
func printSuccess(w io.Writer, format string, args ...interface{}) {
	printStyled(w, iconSuccess, successStyle, format, args...)
}

// printError prints an error message with red X
func printError(w io.Writer, format string, args ...interface{}) {
	printStyled(w, iconError, errorStyle, format, args...)
}

// printWarning prints a warning message with amber warning sign
func printWarning(w io.Writer, format string, args ...interface{}) {
	printStyled(w, iconWarning, warningStyle, format, args...)
}

// printInfo prints an info message with brand-colored dot
func printInfo(w io.Writer, format string, args ...interface{}) {
	printStyled(w, iconInfo, infoStyle, format, args...)
}

// printMuted prints muted/secondary text
func printMuted(w io.Writer, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if isTTY() {
		fmt.Fprintln(w, mutedStyle.Render(msg))
	} else {
		fmt.Fprintln(w, msg)
	}
}

// renderTable renders headers and rows as a table. TTY output gets
// rounded borders; non-TTY output is plain columns for piping.
// Extra cells beyond the header count are ignored.
func renderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	pad := func(s string, width int) string {
		if gap := width - lipgloss.Width(s); gap > 0 {
			return s + strings.Repeat(" ", gap)
		}
		return s
	}

	cells := func(row []string) []string {
		padded := make([]string, len(headers))
		for i := range headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			padded[i] = pad(cell, widths[i])
		}
		return padded
	}

	var b strings.Builder

	if !isTTY() {
		b.WriteString(strings.Join(cells(headers), "  "))
		b.WriteString("\n")
		for _, row := range rows {
			b.WriteString(strings.Join(cells(row), "  "))
			b.WriteString("\n")
		}
		return b.String()
	}

	rule := func(left, mid, right string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w+2)
		}
		return left + strings.Join(parts, mid) + right
	}
	line := func(row []string) string {
		padded := cells(row)
		return "│ " + strings.Join(padded, " │ ") + " │"
	}

	b.WriteString(rule("╭", "┬", "╮"))
	b.WriteString("\n")
	styledHeaders := make([]string, len(headers))
	for i, h := range headers {
		styledHeaders[i] = pad(labelStyle.Render(h), widths[i])
	}
	b.WriteString("│ " + strings.Join(styledHeaders, " │ ") + " │")
	b.WriteString("\n")
	b.WriteString(rule("├", "┼", "┤"))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(line(row))
		b.WriteString("\n")
	}
	b.WriteString(rule("╰", "┴", "╯"))
	return b.String()
}

// renderPanel renders titled content in a bordered box on a TTY,
// or as plain title + content otherwise.
func renderPanel(title, content string) string {
	if !isTTY() {
		if title == "" {
			return content
		}
		return title + "\n" + content
	}

	body := content
	if title != "" {
		body = labelStyle.Render(title) + "\n" + body
	}
	return panelStyle.Render(body)
}

// renderMarkdown renders markdown content with glamour
func renderMarkdown(content string) string {
	if !isTTY() {
		return content
	}

	// Check if content looks like it has markdown
	if !hasMarkdown(content) {
		return content
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return strings.TrimSpace(rendered)
}

// hasMarkdown checks if content contains markdown-like syntax
// Ordered from most specific to least to reduce false positives
func hasMarkdown(content string) bool {
	markers := []string{
		"```",    // code blocks (most specific)
		"## ",    // headers
		"# ",     // headers
		"**",     // bold
		"1. ",    // numbered lists
		"- ",     // list items
		"* ",     // list items
		"](http", // links with URL (more specific than just `](`)
		"`",      // inline code (last - most prone to false positives)
	}
	for _, marker := range markers {
		if strings.Contains(content, marker) {
			return true
		}
	}
	return false
}
