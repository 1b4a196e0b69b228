package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vitrineapp/vitrine/internal/fakestore"
)

// overlayPhase names a state of the detail overlay's open/close lifecycle.
type overlayPhase int

const (
	overlayClosed overlayPhase = iota
	overlayOpening
	overlayOpen
	overlayClosing
)

func (p overlayPhase) String() string {
	switch p {
	case overlayOpening:
		return "opening"
	case overlayOpen:
		return "open"
	case overlayClosing:
		return "closing"
	default:
		return "closed"
	}
}

// overlayTransition is the fixed duration of the open and close transitions.
const overlayTransition = 150 * time.Millisecond

// overlayTickMsg advances a pending overlay transition. Generation guards
// against stale ticks: every open/close request bumps the generation, so a
// tick scheduled for an abandoned transition is dropped on arrival.
type overlayTickMsg struct {
	gen int
}

// overlay is the timer-driven state machine behind the product detail view.
//
// closed → opening → open → closing → closed. Each transition out of
// opening/closing happens when the matching overlayTickMsg arrives after
// overlayTransition. A new open or close request cancels any pending
// transition by bumping gen.
type overlay struct {
	phase   overlayPhase
	gen     int
	product fakestore.Product
	body    viewport.Model
	ready   bool
}

// visible reports whether the overlay occupies the screen in any phase.
func (o *overlay) visible() bool {
	return o.phase != overlayClosed
}

// open installs the product and starts (or restarts) the opening transition.
// Calling open while already open or opening replaces the content in place;
// calling it while closing cancels the close. It returns the generation of
// the scheduled transition.
func (o *overlay) open(p fakestore.Product, bodyWidth, bodyHeight int) int {
	o.product = p
	o.gen++
	o.phase = overlayOpening

	if !o.ready {
		o.body = viewport.New(bodyWidth, bodyHeight)
		o.ready = true
	} else {
		o.body.Width = bodyWidth
		o.body.Height = bodyHeight
	}
	o.body.SetContent(strings.Join(wrapText(p.Description, bodyWidth), "\n"))
	o.body.GotoTop()

	return o.gen
}

// beginClose starts the closing transition from open or opening. It returns
// the generation of the scheduled transition, or -1 when there is nothing
// to close.
func (o *overlay) beginClose() int {
	if o.phase != overlayOpen && o.phase != overlayOpening {
		return -1
	}
	o.gen++
	o.phase = overlayClosing
	return o.gen
}

// advance completes a pending transition. Stale generations are ignored.
func (o *overlay) advance(gen int) {
	if gen != o.gen {
		return
	}
	switch o.phase {
	case overlayOpening:
		o.phase = overlayOpen
	case overlayClosing:
		o.phase = overlayClosed
		o.product = fakestore.Product{}
	}
}

// transitionCmd schedules the tick that completes the transition for gen.
func transitionCmd(gen int) tea.Cmd {
	return tea.Tick(overlayTransition, func(time.Time) tea.Msg {
		return overlayTickMsg{gen: gen}
	})
}

// overlaySize returns the outer dimensions of the centered overlay box.
func overlaySize(width, height int) (int, int) {
	w := width - 10
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = width
	}
	h := height - 6
	if h > 22 {
		h = 22
	}
	if h < 8 {
		h = height
	}
	return w, h
}

// overlayRect returns the screen rectangle the overlay box occupies, used
// for backdrop hit testing. x,y are the top-left cell.
func overlayRect(width, height int) (x, y, w, h int) {
	w, h = overlaySize(width, height)
	x = (width - w) / 2
	y = (height - h) / 2
	return x, y, w, h
}

// inOverlay reports whether the cell px,py lies inside the overlay box.
func inOverlay(px, py, width, height int) bool {
	x, y, w, h := overlayRect(width, height)
	return px >= x && px < x+w && py >= y && py < y+h
}

// renderOverlay draws the detail overlay centered over a dimmed backdrop.
func (m Model) renderOverlay() string {
	styles := m.theme.Styles()

	frame := styles.Overlay
	if m.overlay.phase == overlayOpening || m.overlay.phase == overlayClosing {
		frame = styles.OverlayFaded
	}

	outerW, outerH := overlaySize(m.width, m.height)
	innerW := outerW - frame.GetHorizontalFrameSize()

	var b strings.Builder
	b.WriteString(styles.CategoryTag.Render(m.overlay.product.Category))
	b.WriteString("\n\n")
	b.WriteString(styles.AccentText.Bold(true).Render(truncate(m.overlay.product.Title, innerW)))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("#%d", m.overlay.product.ID)))
	if host := imageHost(m.overlay.product.Image); host != "" {
		b.WriteString(styles.FaintText.Render("  ·  image: " + host))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.Price.Render(m.overlay.product.FormattedPrice()))
	b.WriteString(styles.MutedText.Render("   ★ " + m.overlay.product.FormattedRating()))
	b.WriteString("\n\n")
	b.WriteString(m.overlay.body.View())
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("esc or click outside to close · ↑/↓ scroll"))

	box := frame.Width(outerW - frame.GetHorizontalBorderSize()).
		Height(outerH - frame.GetVerticalBorderSize()).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars("·"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Faint)))
}
