// Package app wires vitrine's pieces together: configuration, user
// preferences, the catalog client, the state store, and the TUI.
package app
