// Package util provides shared utility functions used across the codebase.
package util

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TruncateString truncates a string to maxLen runes, adding "..." if
// truncated. It does not account for ANSI escape codes or wide characters;
// for styled terminal output use TruncateANSI instead.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 3 {
		return "..."
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

// TruncateANSI truncates a string to maxWidth visual columns, adding "..."
// if truncated. Escape sequences and wide characters are handled, so the
// demo's output pane can clip styled log lines without breaking styling.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= 3 {
		return "..."
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	// ansi.Truncate counts the tail into the final width.
	return ansi.Truncate(s, maxWidth, "...")
}
