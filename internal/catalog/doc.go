// Package catalog derives the visible product view from the full fetched
// list and the current filter parameters.
//
// Derivation is a pure function of its inputs: the store holds one immutable
// product list, and every search keystroke, category change, or sort change
// re-runs Derive to produce a fresh projection. Nothing here touches the
// network or the terminal.
package catalog
