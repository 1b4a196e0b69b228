package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// startSearch enters search mode, seeding the input with the active filter.
func (m *Model) startSearch() {
	m.searching = true
	m.searchInput.SetValue(m.store.Snapshot().Params.SearchText)
	m.searchInput.CursorEnd()
	m.searchInput.Focus()
}

// handleSearchKey processes keys while the search input is focused. The
// filter is applied live on every keystroke; enter keeps it, esc restores
// the text that was active when search mode began.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.searchInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.searching = false
		m.searchInput.Blur()
		m.store.SetSearchText(m.searchBefore)
		m.refreshView()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.store.SetSearchText(m.searchInput.Value())
	m.refreshView()
	return m, cmd
}
