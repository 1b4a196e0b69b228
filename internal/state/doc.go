// Package state holds the single source-of-truth catalog store.
//
// The store keeps the immutable fetched product list together with the
// current derived-view parameters (search text, active category, sort mode).
// All mutation is funneled through typed setters; readers take independent
// snapshots so the UI can re-derive its view without aliasing stored data.
package state
