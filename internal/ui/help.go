package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp draws the keybinding overlay. Any key dismisses it.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []struct {
		title string
		rows  [][2]string
	}{
		{"Catalog", [][2]string{
			{"r", "Reload the catalog"},
			{"/", "Search titles (live)"},
			{"c / C", "Next / previous category"},
			{"s", "Cycle sort mode"},
			{"x", "Clear search and category"},
		}},
		{"Navigation", [][2]string{
			{"← ↓ ↑ → or h j k l", "Move between cards"},
			{"g / G", "First / last card"},
			{"enter", "Open product detail"},
			{"esc", "Close product detail"},
		}},
		{"General", [][2]string{
			{"T", "Cycle theme"},
			{"?", "Toggle this help"},
			{"q or ctrl+c", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("vitrine keys"))
	b.WriteString("\n")
	for _, section := range sections {
		b.WriteString("\n")
		b.WriteString(styles.WarningText.Render(section.title))
		b.WriteString("\n")
		for _, row := range section.rows {
			b.WriteString("  ")
			b.WriteString(styles.Text.Render(padToWidth(row[0], 20)))
			b.WriteString(styles.MutedText.Render(row[1]))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("press any key to close"))

	box := styles.Overlay.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
