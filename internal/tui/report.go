package tui

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/wlsync/internal/syncer"
	"nathanbeddoewebdev/wlsync/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// maxListedTokens caps how many added tokens the summary card shows.
const maxListedTokens = 10

// RenderReport renders a sync report as a styled summary card.
func RenderReport(r *syncer.Report) string {
	title := "Sync"
	if r.DryRun {
		title = "Sync (dry run)"
	}

	lines := []string{
		field("Status", styles.StatusIndicator(string(r.Status))),
		field("Source", r.Source),
		field("Whitelist", r.Whitelist),
	}
	if r.Sheet != "" {
		lines = append(lines, field("Sheet", r.Sheet))
	}

	switch r.Status {
	case syncer.StatusNoInput:
		lines = append(lines, "", styles.WarningText.Render("Source file not found; nothing to do."))
	case syncer.StatusNoTokens:
		lines = append(lines,
			field("Rows", fmt.Sprint(r.Rows)),
			"", styles.WarningText.Render("No valid serials extracted."))
	default:
		lines = append(lines,
			field("Rows", fmt.Sprint(r.Rows)),
			field("Extracted", fmt.Sprint(r.Extracted)),
		)
		if r.Merge != nil {
			lines = append(lines,
				field("Added", fmt.Sprint(len(r.Merge.Added))),
				field("Total", fmt.Sprint(r.Merge.Total)),
			)
			if len(r.Merge.Added) > 0 {
				lines = append(lines, "", styles.SuccessText.Render("New tokens:"))
				lines = append(lines, tokenList(r.Merge.Added)...)
			}
		}
	}

	if len(r.Rejected) > 0 {
		lines = append(lines, "", styles.MutedText.Render(fmt.Sprintf("%d value(s) held no hex digits", len(r.Rejected))))
	}

	body := strings.Join(lines, "\n")
	return lipgloss.JoinVertical(lipgloss.Left, styles.Title.Render(title), styles.Card.Render(body))
}

func field(label, value string) string {
	return styles.Label.Width(11).Render(label) + styles.Value.Render(value)
}

func tokenList(tokens []string) []string {
	shown := tokens
	if len(shown) > maxListedTokens {
		shown = shown[:maxListedTokens]
	}
	out := make([]string, 0, len(shown)+1)
	for _, t := range shown {
		out = append(out, "  "+styles.AccentText.Render(t))
	}
	if rest := len(tokens) - len(shown); rest > 0 {
		out = append(out, styles.MutedText.Render(fmt.Sprintf("  … and %d more", rest)))
	}
	return out
}
