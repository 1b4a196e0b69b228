package ui

import (
	"context"
	"log"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vitrineapp/vitrine/internal/catalog"
	"github.com/vitrineapp/vitrine/internal/fakestore"
	"github.com/vitrineapp/vitrine/internal/prefs"
	"github.com/vitrineapp/vitrine/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    fakestore.ProductFetcher
	Store     *state.Store
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	client    fakestore.ProductFetcher
	store     *state.Store
	prefsPath string

	keys  keyMap
	theme Theme

	width  int
	height int
	ready  bool

	// Fetch lifecycle. fetching doubles as the in-flight guard: reload
	// requests while a fetch is outstanding are ignored.
	fetching bool
	fetchErr error
	spinner  spinner.Model

	// Category index, rebuilt only when the product list is replaced.
	categories  []string
	categoryIdx int

	// Derived view and grid cursor.
	view     []fakestore.Product
	selected int

	// Search input state.
	searching    bool
	searchBefore string
	searchInput  textinput.Model

	overlay overlay

	showHelp bool
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}
	theme := GetTheme(themeName)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Warning))

	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "search titles…"
	input.CharLimit = 64

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:         ctx,
		client:      opts.Client,
		store:       opts.Store,
		prefsPath:   prefsPath,
		keys:        defaultKeyMap(),
		theme:       theme,
		spinner:     sp,
		searchInput: input,
		categories:  []string{catalog.AllCategories},
		// The initial load starts from Init, so the loading band is
		// already active on the first frame.
		fetching: true,
	}
}

// Init implements tea.Model. The catalog load starts immediately.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchCmd(m.ctx, m.client))
}

// startFetch flips the loading band on and returns the fetch command.
// It must run on the Update goroutine; fetching is read back synchronously.
func (m *Model) startFetch() tea.Cmd {
	if m.fetching {
		return nil
	}
	m.fetching = true
	m.fetchErr = nil
	return tea.Batch(fetchCmd(m.ctx, m.client), m.spinner.Tick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		if m.overlay.visible() {
			bodyW, bodyH := m.overlayBodySize()
			m.overlay.body.Width = bodyW
			m.overlay.body.Height = bodyH
		}
		m.clampSelection()
		return m, nil

	case spinner.TickMsg:
		if !m.fetching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case productsMsg:
		// The fetch settled: the loading band clears no matter what follows.
		m.fetching = false
		m.fetchErr = nil
		m.store.ReplaceAll(msg)
		m.rebuildCategories(msg)
		m.refreshView()
		m.clampSelection()
		return m, nil

	case fetchFailedMsg:
		m.fetching = false
		m.fetchErr = msg.err
		m.store.RecordFetchError(msg.err)
		log.Printf("catalog fetch failed: %v", msg.err)
		return m, nil

	case overlayTickMsg:
		m.overlay.advance(msg.gen)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	if m.overlay.visible() {
		return m.handleOverlayKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m, m.startFetch()

	case key.Matches(msg, m.keys.Search):
		m.searchBefore = m.store.Snapshot().Params.SearchText
		m.startSearch()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.NextCategory):
		m.cycleCategory(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevCategory):
		m.cycleCategory(-1)
		return m, nil

	case key.Matches(msg, m.keys.CycleSort):
		mode := m.store.Snapshot().Params.Sort.Next()
		m.store.SetSortMode(mode)
		m.refreshView()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ClearFilters):
		m.store.SetSearchText("")
		m.store.SetCategory(catalog.AllCategories)
		m.categoryIdx = 0
		m.selected = 0
		m.refreshView()
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.moveSelection(-1, 0)
		return m, nil
	case key.Matches(msg, m.keys.Right):
		m.moveSelection(1, 0)
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(0, -1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(0, 1)
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		if len(m.view) > 0 {
			m.selected = len(m.view) - 1
		}
		return m, nil

	case key.Matches(msg, m.keys.OpenDetail):
		if len(m.view) == 0 {
			return m, nil
		}
		return m, m.openDetail(m.view[m.selected].ID)
	}

	return m, nil
}

// handleOverlayKey processes keys while the detail overlay is on screen.
func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, m.closeDetail()

	case key.Matches(msg, m.keys.CloseDetail):
		return m, m.closeDetail()
	}

	// Remaining keys scroll the description.
	var cmd tea.Cmd
	m.overlay.body, cmd = m.overlay.body.Update(msg)
	return m, cmd
}

// handleMouse dismisses the overlay on backdrop clicks and scrolls its body.
// Clicks inside the overlay's content region never close it.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.overlay.visible() {
		return m, nil
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if !inOverlay(msg.X, msg.Y, m.width, m.height) {
			return m, m.closeDetail()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.overlay.body, cmd = m.overlay.body.Update(msg)
	return m, cmd
}

// openDetail looks the product up in the full list, independent of active
// filters, and starts the opening transition. Unknown ids are ignored.
func (m *Model) openDetail(id int) tea.Cmd {
	product, ok := m.store.Lookup(id)
	if !ok {
		log.Printf("detail requested for unknown product %d", id)
		return nil
	}
	bodyW, bodyH := m.overlayBodySize()
	gen := m.overlay.open(product, bodyW, bodyH)
	return transitionCmd(gen)
}

// closeDetail starts the closing transition when one may start.
func (m *Model) closeDetail() tea.Cmd {
	gen := m.overlay.beginClose()
	if gen < 0 {
		return nil
	}
	return transitionCmd(gen)
}

// overlayBodySize computes the description viewport dimensions from the
// overlay's outer box (frame plus the fixed header and footer lines).
func (m Model) overlayBodySize() (int, int) {
	outerW, outerH := overlaySize(m.width, m.height)
	bodyW := outerW - 6 // double border + horizontal padding
	if bodyW < 10 {
		bodyW = 10
	}
	bodyH := outerH - 4 - 9 // vertical frame + header/footer lines
	if bodyH < 3 {
		bodyH = 3
	}
	return bodyW, bodyH
}

// refreshView re-derives the visible product list from the store.
func (m *Model) refreshView() {
	snap := m.store.Snapshot()
	m.view = catalog.Derive(snap.Products, snap.Params)
	m.clampSelection()
}

func (m *Model) clampSelection() {
	if m.selected >= len(m.view) {
		m.selected = len(m.view) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// rebuildCategories recomputes the category index. This runs only when the
// product list is replaced; filter and sort changes never reach here.
func (m *Model) rebuildCategories(products []fakestore.Product) {
	m.categories = catalog.Categories(products)

	active := m.store.Snapshot().Params.Category
	m.categoryIdx = 0
	for i, c := range m.categories {
		if c == active {
			m.categoryIdx = i
			return
		}
	}
	// The previously active category vanished from the new list.
	m.store.SetCategory(catalog.AllCategories)
}

// cycleCategory moves the active category by delta through the index.
func (m *Model) cycleCategory(delta int) {
	n := len(m.categories)
	if n == 0 {
		return
	}
	m.categoryIdx = ((m.categoryIdx+delta)%n + n) % n
	m.store.SetCategory(m.categories[m.categoryIdx])
	m.selected = 0
	m.refreshView()
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme: m.theme.Name,
		Sort:  m.store.Snapshot().Params.Sort.Token(),
	})
}

// contentHeight is the vertical space left for the grid under the header.
func (m Model) contentHeight() int {
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

// View implements tea.Model. Every call rebuilds the whole frame from the
// current state; there is no incremental patching.
func (m Model) View() string {
	if !m.ready {
		return "Loading…"
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.overlay.visible() {
		return m.renderOverlay()
	}

	var b []string
	b = append(b, m.renderHeader())
	b = append(b, m.renderCommandBar())
	if m.fetchErr != nil {
		b = append(b, m.renderErrorPlaceholder())
	} else {
		b = append(b, m.renderGrid())
	}
	return lipgloss.JoinVertical(lipgloss.Left, b...)
}

// renderErrorPlaceholder fills the grid region after a failed fetch.
func (m Model) renderErrorPlaceholder() string {
	styles := m.theme.Styles()
	msg := styles.DangerText.Render("Could not load the catalog.") + "\n" +
		styles.MutedText.Render(errorMessage(m.fetchErr)) + "\n\n" +
		styles.FaintText.Render("try again later (r to retry)")
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, msg)
}

// Messages

type productsMsg []fakestore.Product

type fetchFailedMsg struct {
	err error
}

// Commands

func fetchCmd(ctx context.Context, client fakestore.ProductFetcher) tea.Cmd {
	return func() tea.Msg {
		products, err := client.FetchProducts(ctx)
		if err != nil {
			return fetchFailedMsg{err: err}
		}
		return productsMsg(products)
	}
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
