package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vitrineapp/vitrine/internal/fakestore"
)

// renderHeader draws the logo plus the active status band. Exactly one band
// is shown: loading, error, or content summary.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	logo := styles.Logo.Render("VITRINE")
	band := ""

	switch {
	case m.fetching:
		band = styles.WarningText.Render(m.spinner.View() + " Loading catalog…")
	case m.fetchErr != nil:
		band = styles.DangerText.Render("ERROR ") +
			styles.Text.Render(errorMessage(m.fetchErr)) +
			styles.MutedText.Render("  ·  try again later (r to retry)")
	default:
		snap := m.store.Snapshot()
		parts := []string{
			fmt.Sprintf("%d products", len(snap.Products)),
			"category: " + snap.Params.Category,
			"sort: " + snap.Params.Sort.String(),
		}
		if search := strings.TrimSpace(snap.Params.SearchText); search != "" {
			parts = append(parts, fmt.Sprintf("search: %q", search))
		}
		parts = append(parts, "card "+m.selectionSummary())
		if !snap.LastFetched.IsZero() {
			parts = append(parts, "fetched "+snap.LastFetched.Format("15:04:05"))
		}
		band = styles.MutedText.Render(strings.Join(parts, "  ·  "))
	}

	return styles.Header.Width(m.width).Render(logo + "  " + band)
}

// renderCommandBar draws the one-line key legend under the header.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	if m.searching {
		return styles.CommandBar.Width(m.width).Render(m.searchInput.View())
	}

	legend := []string{
		"/ search",
		"c category",
		"s sort",
		"enter detail",
		"r reload",
		"T theme",
		"? help",
		"q quit",
	}
	return styles.CommandBar.Width(m.width).Render(strings.Join(legend, "   "))
}

// errorMessage maps a fetch error to the user-facing description.
func errorMessage(err error) string {
	var statusErr *fakestore.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("catalog server answered with status %d", statusErr.Code)
	}
	var decodeErr *fakestore.DecodeError
	if errors.As(err, &decodeErr) {
		return "catalog response was not understood"
	}
	var transportErr *fakestore.TransportError
	if errors.As(err, &transportErr) {
		return "catalog server is unreachable"
	}
	return err.Error()
}
