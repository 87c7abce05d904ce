package components

import (
	"nathanbeddoewebdev/wlsync/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar renders the outcome of the last edit: a check mark for a saved
// value, a cross for a rejected one.
func StatusBar(width int, message string, isError bool) string {
	if message == "" {
		return ""
	}

	line := styles.SuccessText.Render("✓ " + message)
	if isError {
		line = styles.ErrorText.Render("✗ " + message)
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		Render(line)
}
