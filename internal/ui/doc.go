// Package ui provides the terminal user interface for vitrine.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. All state lives in the root Model; every
// message (keystroke, mouse event, fetch completion, transition tick) runs
// through Update on a single goroutine, and View rebuilds the whole frame
// from scratch on each render. The product list and filter parameters live
// in state.Store; the visible card grid is re-derived from a store snapshot
// through catalog.Derive whenever a filter, category, or sort changes.
//
// # Package Structure
//
//   - app.go: root Model, message handling, fetch orchestration, Run
//   - grid.go: card grid rendering and grid cursor movement
//   - overlay.go: the detail overlay state machine and its rendering
//   - search.go: live title search via a textinput
//   - header.go: logo, status band (loading/error/summary), command bar
//   - keys.go: declarative key bindings
//   - theme.go: color palettes and compiled lipgloss styles
//   - help.go: keybinding overlay
//   - strings.go: text helpers (truncation, wrapping, padding)
//
// # Fetch Lifecycle
//
// The catalog is fetched once at startup and again on the reload key. The
// fetch runs as a tea.Cmd; its completion message clears the loading band
// regardless of outcome. A fetching flag ignores reload requests while a
// request is outstanding, so at most one fetch is ever in flight.
//
// # Detail Overlay
//
// The overlay is a small timer-driven state machine: closed → opening →
// open → closing → closed, with a fixed 150ms transition completed by a
// scheduled tick. Every open or close request bumps a generation counter
// and stale ticks are dropped, so rapid toggling can never wedge the
// overlay in a transitional phase. A mouse click on the backdrop (outside
// the overlay box) closes it; clicks inside do not.
package ui
