// Package components provides render-only helpers used by the wlsync
// Bubbletea models to compose full-screen views.
package components

import (
	"strings"

	"nathanbeddoewebdev/wlsync/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Header renders the application header bar with a breadcrumb on the left
// and an optional note (such as a file path) on the right.
//
//	wlsync > config               ~/.config/wlsync/config.json
//	────────────────────────────────────────────────────────────
func Header(width int, breadcrumb string, note string) string {
	if width < 10 {
		return ""
	}

	left := styles.Title.Foreground(styles.Blue).Render("wlsync")
	if breadcrumb != "" {
		left += styles.MutedText.Render(" > ") + styles.Title.Render(breadcrumb)
	}

	right := ""
	if note != "" {
		right = styles.Subtitle.Render(note)
	}

	innerWidth := width - 4
	gap := max(innerWidth-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(styles.DimGray).
		Render(left + strings.Repeat(" ", gap) + right)
}
