package components

import (
	"strings"

	"nathanbeddoewebdev/wlsync/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// KeyBinding is one key hint shown in the footer.
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer renders key hints under a rule. Hints that would overflow width are
// dropped from the end.
func Footer(width int, bindings []KeyBinding) string {
	if width < 10 || len(bindings) == 0 {
		return ""
	}

	const padding = 2
	avail := width - 2*padding
	sep := styles.KeySepStyle.Render("  ")

	var b strings.Builder
	for i, kb := range bindings {
		hint := styles.FormatKeyBinding(kb.Key, kb.Desc)
		next := hint
		if i > 0 {
			next = sep + hint
		}
		if lipgloss.Width(b.String())+lipgloss.Width(next) > avail {
			break
		}
		b.WriteString(next)
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, padding).
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderTop(true).
		BorderForeground(styles.DimGray).
		Render(b.String())
}
