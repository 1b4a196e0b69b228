package ui

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vitrineapp/vitrine/internal/fakestore"
	"github.com/vitrineapp/vitrine/internal/state"
)

type stubFetcher struct {
	products []fakestore.Product
	err      error
}

func (s stubFetcher) FetchProducts(context.Context) ([]fakestore.Product, error) {
	return s.products, s.err
}

func testProducts() []fakestore.Product {
	return []fakestore.Product{
		{ID: 1, Title: "Red Shirt", Price: 19.99, Category: "clothing", Rating: fakestore.Rating{Rate: 4.2, Count: 10}},
		{ID: 2, Title: "Blue Mug", Price: 9.5, Category: "home"},
	}
}

func newTestModel(t *testing.T, client fakestore.ProductFetcher) Model {
	t.Helper()
	m := New(Options{
		Client:    client,
		Store:     state.NewStore(),
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	m.width = 120
	m.height = 40
	m.ready = true
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return next, cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_FetchSuccessPopulatesStoreAndCategories(t *testing.T) {
	m := newTestModel(t, stubFetcher{products: testProducts()})

	m, _ = update(t, m, productsMsg(testProducts()))

	if m.fetching {
		t.Fatal("loading band must clear once the fetch settles")
	}
	if m.fetchErr != nil {
		t.Fatalf("fetchErr = %v, want nil", m.fetchErr)
	}
	snap := m.store.Snapshot()
	if !snap.Loaded || len(snap.Products) != 2 {
		t.Fatalf("store = %#v, want 2 products loaded", snap)
	}
	if !reflect.DeepEqual(m.categories, []string{"all", "clothing", "home"}) {
		t.Fatalf("categories = %v, want [all clothing home]", m.categories)
	}
	if len(m.view) != 2 {
		t.Fatalf("view has %d cards, want 2", len(m.view))
	}
}

func TestModel_FetchFailureShowsErrorBand(t *testing.T) {
	m := newTestModel(t, stubFetcher{err: &fakestore.StatusError{Code: http.StatusInternalServerError}})

	m, _ = update(t, m, fetchFailedMsg{err: &fakestore.StatusError{Code: 500}})

	if m.fetching {
		t.Fatal("loading band must clear on failure too")
	}
	if m.fetchErr == nil {
		t.Fatal("fetchErr should be recorded")
	}

	frame := m.View()
	if !strings.Contains(frame, "try again later") {
		t.Fatalf("error frame missing placeholder:\n%s", frame)
	}
	if !strings.Contains(frame, "500") {
		t.Fatalf("error frame should carry the status code:\n%s", frame)
	}
}

func TestModel_ReloadIgnoredWhileInFlight(t *testing.T) {
	m := newTestModel(t, stubFetcher{products: testProducts()})
	m.fetching = true

	_, cmd := update(t, m, keyRunes("r"))
	if cmd != nil {
		t.Fatal("reload while fetching must be a no-op")
	}
}

func TestModel_ReloadClearsPreviousError(t *testing.T) {
	m := newTestModel(t, stubFetcher{products: testProducts()})
	m.fetching = false
	m.fetchErr = errors.New("old failure")

	m, cmd := update(t, m, keyRunes("r"))
	if cmd == nil {
		t.Fatal("reload should issue a fetch command")
	}
	if !m.fetching || m.fetchErr != nil {
		t.Fatalf("fetching=%v fetchErr=%v, want loading with error cleared", m.fetching, m.fetchErr)
	}
}

func TestModel_DetailPhaseSequence(t *testing.T) {
	m := newTestModel(t, stubFetcher{products: testProducts()})
	m, _ = update(t, m, productsMsg(testProducts()))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("opening the detail should schedule a transition tick")
	}
	if m.overlay.phase != overlayOpening {
		t.Fatalf("phase = %v, want opening", m.overlay.phase)
	}
	if m.overlay.product.ID != 1 {
		t.Fatalf("overlay product = %d, want selected card 1", m.overlay.product.ID)
	}

	m, _ = update(t, m, overlayTickMsg{gen: m.overlay.gen})
	if m.overlay.phase != overlayOpen {
		t.Fatalf("phase = %v, want open", m.overlay.phase)
	}

	frame := m.View()
	if !strings.Contains(frame, "Red Shirt") {
		t.Fatalf("overlay frame missing product title:\n%s", frame)
	}

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("closing the detail should schedule a transition tick")
	}
	if m.overlay.phase != overlayClosing {
		t.Fatalf("phase = %v, want closing", m.overlay.phase)
	}

	m, _ = update(t, m, overlayTickMsg{gen: m.overlay.gen})
	if m.overlay.phase != overlayClosed {
		t.Fatalf("phase = %v, want closed", m.overlay.phase)
	}
}

func TestModel_DetailUnknownIDIsNoop(t *testing.T) {
	m := newTestModel(t, stubFetcher{products: testProducts()})
	m, _ = update(t, m, productsMsg(testProducts()))

	if cmd := m.openDetail(42); cmd != nil {
		t.Fatal("unknown id should not schedule anything")
	}
	if m.overlay.visible() {
		t.Fatalf("phase = %v, want closed", m.overlay.phase)
	}
}

func TestModel_DetailUsesFullListNotFilteredView(t *testing.T) {
	m := newTestModel(t, stubFetcher{products: testProducts()})
	m, _ = update(t, m, productsMsg(testProducts()))

	// Filter product 2 out of the view, then open it by id.
	m.store.SetSearchText("red")
	m.refreshView()
	if len(m.view) != 1 {
		t.Fatalf("view has %d cards, want 1", len(m.view))
	}

	if cmd := m.openDetail(2); cmd == nil {
		t.Fatal("detail access must be independent of active filters")
	}
	if m.overlay.product.ID != 2 {
		t.Fatalf("overlay product = %d, want 2", m.overlay.product.ID)
	}
}

func TestModel_BackdropClickClosesOverlay(t *testing.T) {
	m := newTestModel(t, stubFetcher{products: testProducts()})
	m, _ = update(t, m, productsMsg(testProducts()))
	m.openDetail(1)
	m.overlay.advance(m.overlay.gen)

	click := tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, cmd := update(t, m, click)
	if cmd == nil || m.overlay.phase != overlayClosing {
		t.Fatalf("backdrop click should start closing, phase = %v", m.overlay.phase)
	}

	// A click inside the overlay content must not close it.
	m = newTestModel(t, stubFetcher{products: testProducts()})
	m, _ = update(t, m, productsMsg(testProducts()))
	m.openDetail(1)
	m.overlay.advance(m.overlay.gen)

	x, y, w, h := overlayRect(m.width, m.height)
	inside := tea.MouseMsg{X: x + w/2, Y: y + h/2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, _ = update(t, m, inside)
	if m.overlay.phase != overlayOpen {
		t.Fatalf("content click must not dismiss, phase = %v", m.overlay.phase)
	}
}

func TestModel_SearchFiltersLivePerKeystroke(t *testing.T) {
	m := newTestModel(t, stubFetcher{products: testProducts()})
	m, _ = update(t, m, productsMsg(testProducts()))

	m, _ = update(t, m, keyRunes("/"))
	if !m.searching {
		t.Fatal("slash should enter search mode")
	}

	m, _ = update(t, m, keyRunes("red"))
	if got := m.store.Snapshot().Params.SearchText; got != "red" {
		t.Fatalf("SearchText = %q, want red", got)
	}
	if len(m.view) != 1 || m.view[0].ID != 1 {
		t.Fatalf("view = %v, want only product 1", m.view)
	}

	// Enter keeps the filter and leaves search mode.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.searching {
		t.Fatal("enter should leave search mode")
	}
	if len(m.view) != 1 {
		t.Fatal("confirmed search must keep filtering")
	}
}

func TestModel_SearchEscRestoresPreviousText(t *testing.T) {
	m := newTestModel(t, stubFetcher{products: testProducts()})
	m, _ = update(t, m, productsMsg(testProducts()))

	m, _ = update(t, m, keyRunes("/"))
	m, _ = update(t, m, keyRunes("mug"))
	if len(m.view) != 1 || m.view[0].ID != 2 {
		t.Fatalf("view = %v, want only product 2", m.view)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.searching {
		t.Fatal("esc should leave search mode")
	}
	if got := m.store.Snapshot().Params.SearchText; got != "" {
		t.Fatalf("SearchText = %q, want restored empty", got)
	}
	if len(m.view) != 2 {
		t.Fatalf("view has %d cards, want full list restored", len(m.view))
	}
}

func TestModel_CategoryCycling(t *testing.T) {
	m := newTestModel(t, stubFetcher{products: testProducts()})
	m, _ = update(t, m, productsMsg(testProducts()))

	m, _ = update(t, m, keyRunes("c"))
	if got := m.store.Snapshot().Params.Category; got != "clothing" {
		t.Fatalf("Category = %q, want clothing", got)
	}
	if len(m.view) != 1 || m.view[0].ID != 1 {
		t.Fatalf("view = %v, want only clothing products", m.view)
	}

	m, _ = update(t, m, keyRunes("c"))
	if got := m.store.Snapshot().Params.Category; got != "home" {
		t.Fatalf("Category = %q, want home", got)
	}

	m, _ = update(t, m, keyRunes("c"))
	if got := m.store.Snapshot().Params.Category; got != "all" {
		t.Fatalf("Category = %q, want wrap to all", got)
	}
	if len(m.view) != 2 {
		t.Fatalf("view has %d cards, want all", len(m.view))
	}
}

func TestModel_VanishedCategoryResetsToAll(t *testing.T) {
	m := newTestModel(t, stubFetcher{products: testProducts()})
	m, _ = update(t, m, productsMsg(testProducts()))
	m, _ = update(t, m, keyRunes("c")) // clothing

	// Refetch returns a batch without the active category.
	m, _ = update(t, m, productsMsg([]fakestore.Product{{ID: 9, Title: "Lamp", Category: "lighting"}}))
	if got := m.store.Snapshot().Params.Category; got != "all" {
		t.Fatalf("Category = %q, want reset to all", got)
	}
	if !reflect.DeepEqual(m.categories, []string{"all", "lighting"}) {
		t.Fatalf("categories = %v, want rebuilt", m.categories)
	}
}

func TestModel_SortCyclePersistsAndReorders(t *testing.T) {
	m := newTestModel(t, stubFetcher{products: testProducts()})
	m, _ = update(t, m, productsMsg(testProducts()))

	m, _ = update(t, m, keyRunes("s")) // price ascending
	if m.view[0].ID != 2 || m.view[1].ID != 1 {
		t.Fatalf("view = %v, want price ascending [2 1]", m.view)
	}

	m, _ = update(t, m, keyRunes("s")) // price descending
	if m.view[0].ID != 1 || m.view[1].ID != 2 {
		t.Fatalf("view = %v, want price descending [1 2]", m.view)
	}
}

func TestModel_EmptyCatalogShowsEmptyState(t *testing.T) {
	m := newTestModel(t, stubFetcher{})
	m, _ = update(t, m, productsMsg(nil))

	frame := m.View()
	if !strings.Contains(frame, "The catalog is empty.") {
		t.Fatalf("frame missing empty state:\n%s", frame)
	}
	if strings.Contains(frame, "try again later") {
		t.Fatal("empty state must be distinct from the error state")
	}
}

func TestModel_NoMatchesIsDistinctFromEmptyCatalog(t *testing.T) {
	m := newTestModel(t, stubFetcher{products: testProducts()})
	m, _ = update(t, m, productsMsg(testProducts()))
	m.store.SetSearchText("zzz")
	m.refreshView()

	frame := m.View()
	if !strings.Contains(frame, "No products match") {
		t.Fatalf("frame missing no-match message:\n%s", frame)
	}
}
