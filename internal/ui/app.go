package ui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/artshelf/internal/catalog"
	"github.com/five82/artshelf/internal/gallery"
	"github.com/five82/artshelf/internal/prefs"
	"github.com/five82/artshelf/internal/searchbox"
)

// View represents the current active view.
type View int

const (
	ViewCatalog View = iota
	ViewFavorites
	ViewLogs
	ViewDetail
)

func (v View) String() string {
	switch v {
	case ViewFavorites:
		return "favorites"
	case ViewLogs:
		return "logs"
	case ViewDetail:
		return "detail"
	default:
		return "catalog"
	}
}

// tabOrder is the tab/shift+tab cycle. The detail view is entered from a list
// and is not part of it.
var tabOrder = []View{ViewCatalog, ViewFavorites, ViewLogs}

var errProductGone = errors.New("product no longer in catalog")

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    gallery.CatalogFetcher
	Favorites catalog.FavoritesStore
	History   HistoryStore
	LogPath   string
	Prefs     prefs.Prefs
	PrefsPath string
	// ToastDuration defaults to DefaultToastDuration.
	ToastDuration time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    gallery.CatalogFetcher
	favorites catalog.FavoritesStore
	history   HistoryStore
	logPath   string
	prefs     prefs.Prefs
	prefsPath string
	toastTTL  time.Duration

	// UI state
	keys        keyMap
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool

	// Catalog state
	catalog     catalog.State
	loading     bool
	fetchErr    error
	saveErr     error
	lastFetched time.Time
	selectedRow int
	favoriteRow int

	// Search field
	search      searchbox.Box
	searchInput textinput.Model
	searching   bool
	terms       []string

	// Detail state
	detail         detailState
	detailViewport viewport.Model

	// Log state
	logViewport viewport.Model
	logState    logState

	modal    Modal
	showHelp bool
	toast    toastState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	toastTTL := opts.ToastDuration
	if toastTTL <= 0 {
		toastTTL = DefaultToastDuration
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	ti := textinput.New()
	ti.Placeholder = "Search art names..."
	ti.Prompt = "/ "
	ti.CharLimit = 100

	return Model{
		ctx:         ctx,
		client:      opts.Client,
		favorites:   opts.Favorites,
		history:     opts.History,
		logPath:     opts.LogPath,
		prefs:       opts.Prefs,
		prefsPath:   prefsPath,
		toastTTL:    toastTTL,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(opts.Prefs.Theme),
		currentView: ViewCatalog,
		catalog:     catalog.New(nil),
		// Init's first activation fetches; Init cannot record that itself.
		loading:     opts.Client != nil,
		search:      searchbox.New(),
		searchInput: ti,

		detailViewport: viewport.New(0, 0),
		logViewport:    viewport.New(0, 0),
		logState:       newLogState(),
	}
}

// Init implements tea.Model. Starting up is the first activation of the
// catalog view. Init works on a copy, so the state that activation sets
// (loading, reset filters) is prepared by New.
func (m Model) Init() tea.Cmd {
	return m.activateCatalog()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeViewports()
		return m, nil

	case productsMsg:
		m.loading = false
		if msg.err != nil {
			// The previous snapshot stays on screen.
			m.fetchErr = msg.err
			return m, nil
		}
		m.fetchErr = nil
		m.lastFetched = time.Now()
		m.catalog, _ = catalog.Reduce(m.catalog, catalog.Load{Products: msg.products})
		m.search = m.search.WithCatalog(m.catalog.Products)
		m.clampSelection()
		return m, nil

	case productMsg:
		return m.handleProductMsg(msg), nil

	case favoritesLoadedMsg:
		m.catalog, _ = catalog.Reduce(m.catalog, catalog.ReplaceFavorites{Set: msg.set})
		m.clampSelection()
		m.updateDetailViewport()
		return m, nil

	case favoritesSavedMsg:
		m.saveErr = msg.err
		if msg.err != nil {
			cmd := m.showToast("Favorites not saved", toastError)
			return m, cmd
		}
		return m, nil

	case historyMsg:
		m.terms = msg.terms
		m.search = m.search.WithHistory(msg.terms)
		return m, nil

	case logLinesMsg:
		m.handleLogLines(msg)
		return m, nil

	case prefsSavedMsg:
		if msg.err != nil {
			cmd := m.showToast("Preferences not saved", toastError)
			return m, cmd
		}
		return m, nil

	case toastExpiredMsg:
		if msg.seq == m.toast.seq {
			m.toast.text = ""
		}
		return m, nil

	case confirmedMsg:
		return m.applyFavorites(msg.cmd)
	}

	// Cursor blink and friends belong to the search field while it is open.
	if m.searching {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		next, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = next
		}
		return m, cmd
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.updateDetailViewport()
		m.updateLogViewport()
		return m, savePrefsCmd(m.prefsPath, m.prefs)

	case key.Matches(msg, m.keys.Tab):
		return m.switchView(m.cycleView(1))

	case key.Matches(msg, m.keys.ShiftTab):
		return m.switchView(m.cycleView(-1))

	case key.Matches(msg, m.keys.ViewCatalog):
		return m.switchView(ViewCatalog)

	case key.Matches(msg, m.keys.ViewFavorites):
		return m.switchView(ViewFavorites)

	case key.Matches(msg, m.keys.ViewLogs):
		return m.switchView(ViewLogs)
	}

	switch m.currentView {
	case ViewCatalog:
		return m.handleCatalogKey(msg)
	case ViewFavorites:
		return m.handleFavoritesKey(msg)
	case ViewDetail:
		return m.handleDetailKey(msg)
	case ViewLogs:
		return m.handleLogsKey(msg)
	}
	return m, nil
}

// cycleView returns the view delta steps away in the tab order. The detail
// view counts as the list it was opened from.
func (m Model) cycleView(delta int) View {
	current := m.currentView
	if current == ViewDetail {
		current = m.detail.returnTo
	}
	idx := 0
	for i, v := range tabOrder {
		if v == current {
			idx = i
			break
		}
	}
	n := len(tabOrder)
	return tabOrder[((idx+delta)%n+n)%n]
}

// switchView focuses v and runs its activation hook.
func (m Model) switchView(v View) (tea.Model, tea.Cmd) {
	m.currentView = v
	var cmd tea.Cmd
	switch v {
	case ViewCatalog:
		cmd = m.activateCatalog()
	case ViewFavorites:
		cmd = m.activateFavorites()
	case ViewLogs:
		cmd = m.refreshLogs()
	}
	return m, cmd
}

// activateCatalog runs when the catalog view gains focus: filters and the
// search field reset, products are refetched and favorites and history are
// reloaded from storage. Unsaved favorite edits are replaced by whatever
// storage returns.
func (m *Model) activateCatalog() tea.Cmd {
	m.catalog = catalog.Refocus(m.catalog)
	m.search = m.search.Clear()
	m.searchInput.SetValue("")
	m.selectedRow = 0

	cmds := []tea.Cmd{m.reloadFavorites()}
	if m.history != nil {
		cmds = append(cmds, loadHistoryCmd(m.ctx, m.history))
	}
	if cmd := m.refetchProducts(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// activateFavorites runs when the favorites view gains focus.
func (m *Model) activateFavorites() tea.Cmd {
	return m.reloadFavorites()
}

func (m *Model) reloadFavorites() tea.Cmd {
	if m.favorites == nil {
		return nil
	}
	return loadFavoritesCmd(m.ctx, m.favorites)
}

func (m *Model) refetchProducts() tea.Cmd {
	if m.client == nil {
		return nil
	}
	m.loading = true
	return fetchProductsCmd(m.ctx, m.client)
}

// applyFavorites reduces a favorites command, raises the toast and persists
// the new set. The in-memory change is visible before the write starts.
func (m Model) applyFavorites(cmd catalog.Command) (tea.Model, tea.Cmd) {
	const op = "ui.applyFavorites"

	next, ev := catalog.Reduce(m.catalog, cmd)
	m.catalog = next
	m.clampSelection()
	m.updateDetailViewport()
	if !ev.FavoritesChanged() {
		return m, nil
	}
	slog.With("op", op).Debug("favorites changed", "signal", ev.Signal, "count", next.Favorites.Len())

	cmds := []tea.Cmd{m.showToast(signalText(ev.Signal), toastInfo)}
	if m.favorites != nil {
		cmds = append(cmds, saveFavoritesCmd(m.ctx, m.favorites, next.Favorites))
	}
	return m, tea.Batch(cmds...)
}

func signalText(s catalog.Signal) string {
	switch s {
	case catalog.SignalAdded:
		return "Added to favorites"
	case catalog.SignalRemoved:
		return "Removed from favorites"
	case catalog.SignalCleared:
		return "Favorites cleared"
	default:
		return ""
	}
}

// clampSelection keeps list cursors inside their lists.
func (m *Model) clampSelection() {
	m.selectedRow = clampInt(m.selectedRow, 0, maxInt(len(m.catalog.Filtered)-1, 0))
	m.favoriteRow = clampInt(m.favoriteRow, 0, maxInt(m.catalog.Favorites.Len()-1, 0))
}

// contentHeight is the space below the header and command bar.
func (m Model) contentHeight() int {
	return maxInt(m.height-2, 3)
}

func (m *Model) resizeViewports() {
	// Box borders take two rows and the title one more.
	w := maxInt(m.width-2, 1)
	h := maxInt(m.contentHeight()-3, 1)
	m.detailViewport.Width = w
	m.detailViewport.Height = h
	m.logViewport.Width = w
	m.logViewport.Height = h
	m.updateDetailViewport()
	m.updateLogViewport()
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	return m.renderHeader() + "\n" + m.renderCommandBar() + "\n" + m.renderContent()
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewFavorites:
		return m.renderFavorites()
	case ViewDetail:
		return m.renderDetail()
	case ViewLogs:
		return m.renderLogs()
	default:
		return m.renderCatalog()
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
