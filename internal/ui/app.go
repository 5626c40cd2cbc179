package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/dexterm/internal/catalog"
	"github.com/five82/dexterm/internal/detail"
	"github.com/five82/dexterm/internal/logtail"
	"github.com/five82/dexterm/internal/prefs"
)

// Describer resolves the asynchronous part of the detail panel.
type Describer interface {
	Describe(ctx context.Context, e catalog.Entity) detail.Result
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	State     *catalog.State
	Describer Describer
	Logger    *zap.Logger
	ThemeName string
	PrefsPath string
	LogPath   string
	Clock     func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	state     *catalog.State
	describer Describer
	log       *zap.Logger
	prefsPath string
	logPath   string
	clock     func() time.Time

	// UI state
	theme  Theme
	keys   keyMap
	help   help.Model
	width  int
	height int
	ready  bool

	// Grid state
	grid      Grid
	frame     time.Time // reveal time used for rendering
	ticking   bool
	selected  int
	scrollRow int

	// Search
	search    textinput.Model
	searching bool

	// Pagination
	loading bool
	spinner spinner.Model

	// Overlays
	detail   *detail.View
	showHelp bool
	showLogs bool
	logView  viewport.Model
}

// New creates a new Bubble Tea model. The first page is requested by Init.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search by name or number"
	search.CharLimit = 64

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))

	return Model{
		ctx:       ctx,
		state:     opts.State,
		describer: opts.Describer,
		log:       logger.Named("ui"),
		prefsPath: prefsPath,
		logPath:   opts.LogPath,
		clock:     clock,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		frame:     clock(),
		search:    search,
		loading:   opts.State != nil,
		spinner:   spin,
		logView:   viewport.New(0, 0),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.state == nil {
		return nil
	}
	return tea.Batch(m.loadPageCmd(), m.spinner.Tick)
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
		m.search.Width = max(10, msg.Width-4)
		m.help.Width = msg.Width
		m.resizeLogView()
		m.ensureVisible()
		return m, nil

	case pageLoadedMsg:
		return m.handlePageLoaded(msg)

	case pageFailedMsg:
		return m.handlePageFailed(msg)

	case descriptionMsg:
		m.handleDescription(msg)
		return m, nil

	case revealTickMsg:
		m.frame = time.Time(msg)
		if m.grid.Animating(m.frame) {
			return m, revealTickCmd()
		}
		m.ticking = false
		return m, nil

	case spinner.TickMsg:
		if !m.loading && (m.detail == nil || !m.detail.Pending) {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case logLinesMsg:
		m.handleLogLines(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	switch {
	case m.showHelp:
		return m.renderHelp()
	case m.showLogs:
		return m.renderLogs()
	case m.detail != nil:
		return m.renderDetail()
	}
	return m.renderMain()
}

// handlePageLoaded grows the grid by the new entities that pass the filter.
// After an error the grid was cleared, so it is redrawn from the whole cache.
// A filter change while the page was loading already redrew from the cache;
// the grid skips entities it has drawn.
func (m Model) handlePageLoaded(msg pageLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	now := m.clock()
	m.frame = now
	if m.grid.Err() != "" {
		m.grid.Replace(m.state.Visible(), now)
		m.selected = 0
		m.scrollRow = 0
	} else {
		m.grid.Append(m.state.VisibleOf(msg.entities), now)
	}
	return m, m.startReveal()
}

func (m Model) handlePageFailed(msg pageFailedMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.err, catalog.ErrInFlight) {
		return m, nil
	}
	m.loading = false
	m.grid.ShowError(ErrorText)
	m.selected = 0
	m.scrollRow = 0
	return m, nil
}

// handleDescription applies a description only to the panel it was fetched
// for. A result for a panel that was closed or replaced is dropped.
func (m *Model) handleDescription(msg descriptionMsg) {
	if m.detail == nil || m.detail.EntityID != msg.EntityID {
		m.log.Debug("dropping stale description", zap.Int("id", msg.EntityID))
		return
	}
	m.log.Debug("description ready",
		zap.Int("id", msg.EntityID),
		zap.Bool("cached", msg.Cached),
		zap.Bool("fallback", msg.Fallback),
	)
	v := m.detail.WithDescription(msg.Text)
	m.detail = &v
}

// requestPage starts the next page load unless one is running or the list is
// exhausted.
func (m *Model) requestPage() tea.Cmd {
	if m.state == nil || m.loading || m.state.Pager.Exhausted() {
		return nil
	}
	m.loading = true
	return tea.Batch(m.loadPageCmd(), m.spinner.Tick)
}

// redraw replaces the grid with the visible set after a filter change.
func (m *Model) redraw() tea.Cmd {
	now := m.clock()
	m.frame = now
	m.grid.Replace(m.state.Visible(), now)
	m.selected = 0
	m.scrollRow = 0
	return m.startReveal()
}

// startReveal schedules the reveal tick unless one is already pending.
func (m *Model) startReveal() tea.Cmd {
	if m.ticking || !m.grid.Animating(m.frame) {
		return nil
	}
	m.ticking = true
	return revealTickCmd()
}

// openDetail shows the panel for the card at index and requests its
// description.
func (m *Model) openDetail(index int) tea.Cmd {
	cards := m.grid.Cards()
	if index < 0 || index >= len(cards) || m.state == nil {
		return nil
	}
	e, ok := m.state.Cache.Lookup(cards[index].EntityID)
	if !ok {
		return nil
	}
	m.selected = index
	v := detail.Compose(e)
	m.detail = &v
	if m.describer == nil {
		done := v.WithDescription(detail.FallbackDescription)
		m.detail = &done
		return nil
	}
	return tea.Batch(m.describeCmd(e), m.spinner.Tick)
}

func (m *Model) closeDetail() {
	m.detail = nil
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.log.Warn("save prefs failed", zap.Error(err))
	}
}

// Messages

type pageLoadedMsg struct {
	entities []catalog.Entity
}

type pageFailedMsg struct {
	err error
}

type descriptionMsg detail.Result

type revealTickMsg time.Time

type logLinesMsg struct {
	lines []string
	err   error
}

// Commands

func (m Model) loadPageCmd() tea.Cmd {
	ctx, pager := m.ctx, m.state.Pager
	return func() tea.Msg {
		batch, err := pager.FetchNext(ctx)
		if err != nil {
			return pageFailedMsg{err: err}
		}
		return pageLoadedMsg{entities: batch}
	}
}

func (m Model) describeCmd(e catalog.Entity) tea.Cmd {
	ctx, d := m.ctx, m.describer
	return func() tea.Msg {
		return descriptionMsg(d.Describe(ctx, e))
	}
}

func revealTickCmd() tea.Cmd {
	return tea.Tick(RevealTick, func(t time.Time) tea.Msg {
		return revealTickMsg(t)
	})
}

func readLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, LogOverlayLines)
		return logLinesMsg{lines: lines, err: err}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(
		New(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
