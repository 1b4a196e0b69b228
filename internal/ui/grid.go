package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vitrineapp/vitrine/internal/fakestore"
)

const (
	cardInnerWidth = 26
	gridGap        = 1
)

// gridColumns returns how many cards fit side by side at the given width.
func gridColumns(width int) int {
	// Rounded border adds two columns to each card.
	cardOuter := cardInnerWidth + 2 + lipgloss.NewStyle().Padding(0, 1).GetHorizontalPadding()
	cols := (width + gridGap) / (cardOuter + gridGap)
	if cols < 1 {
		cols = 1
	}
	return cols
}

// renderGrid draws the visible cards, wholesale, from the derived view.
// An empty view renders the empty-state message, which is distinct from the
// error band: it means the fetch succeeded but nothing matches the filters.
func (m Model) renderGrid() string {
	styles := m.theme.Styles()

	if len(m.view) == 0 {
		msg := "No products match the current filters."
		snap := m.store.Snapshot()
		if len(snap.Products) == 0 {
			msg = "The catalog is empty."
		}
		return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render(msg))
	}

	cols := gridColumns(m.width)

	var rows []string
	for start := 0; start < len(m.view); start += cols {
		end := start + cols
		if end > len(m.view) {
			end = len(m.view)
		}
		cards := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(m.view[i], i == m.selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

// renderCard draws one product card.
func (m Model) renderCard(p fakestore.Product, selected bool) string {
	styles := m.theme.Styles()

	titleLines := wrapText(p.Title, cardInnerWidth)
	if len(titleLines) > 2 {
		titleLines = titleLines[:2]
		titleLines[1] = truncate(titleLines[1]+"…", cardInnerWidth)
	}
	for len(titleLines) < 2 {
		titleLines = append(titleLines, "")
	}

	imageHint := imageHost(p.Image)
	if imageHint == "" {
		imageHint = "no image"
	}

	var b strings.Builder
	b.WriteString(styles.CategoryTag.Render(truncate(p.Category, cardInnerWidth-2)))
	b.WriteString("\n")
	for _, line := range titleLines {
		b.WriteString(styles.Text.Bold(true).Render(padToWidth(line, cardInnerWidth)))
		b.WriteString("\n")
	}
	b.WriteString(styles.FaintText.Render(padToWidth("⛶ "+truncate(imageHint, cardInnerWidth-2), cardInnerWidth)))
	b.WriteString("\n")

	rating := "★ " + p.FormattedRating()
	price := p.FormattedPrice()
	spacer := cardInnerWidth - len([]rune(rating)) - len([]rune(price))
	if spacer < 1 {
		spacer = 1
	}
	b.WriteString(styles.MutedText.Render(rating))
	b.WriteString(strings.Repeat(" ", spacer))
	b.WriteString(styles.Price.Render(price))

	card := styles.Card
	if selected {
		card = styles.CardSelected
	}
	return card.Width(cardInnerWidth + card.GetHorizontalPadding()).Render(b.String())
}

// moveSelection shifts the grid cursor by the given cell/row delta, clamping
// to the derived view.
func (m *Model) moveSelection(dx, dy int) {
	if len(m.view) == 0 {
		return
	}
	cols := gridColumns(m.width)
	next := m.selected + dx + dy*cols
	if next < 0 {
		next = 0
	}
	if next >= len(m.view) {
		next = len(m.view) - 1
	}
	m.selected = next
}

// selectionSummary reports the cursor position for the header, 1-based.
func (m Model) selectionSummary() string {
	if len(m.view) == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", m.selected+1, len(m.view))
}
