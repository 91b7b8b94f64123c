package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/carlot/internal/prefs"
	"github.com/five82/carlot/internal/purchase"
	"github.com/five82/carlot/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewListings View = iota
	ViewLogs
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Buyer     purchase.Buyer
	Logger    *zap.Logger
	LogPath   string
	Source    string // shown in the header, e.g. "appwrite cars/listings"
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	store     *state.Store
	buyer     purchase.Buyer
	logger    *zap.Logger
	logPath   string
	source    string
	prefsPath string
	pollTick  time.Duration

	keys        keyMap
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool

	snapshot     state.Snapshot
	lastSearches int
	selectedRow  int
	listOffset   int

	spinner spinner.Model
	search  searchPanel
	logs    logState
	modal   Modal

	showHelp  bool
	statusMsg string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultUIInterval
	}
	themeName := opts.ThemeName
	if strings.TrimSpace(themeName) == "" {
		themeName = prefs.DefaultTheme
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	buyer := opts.Buyer
	if buyer == nil {
		buyer = purchase.NewStub(logger)
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return Model{
		ctx:         ctx,
		store:       opts.Store,
		buyer:       buyer,
		logger:      logger.Named("ui"),
		logPath:     opts.LogPath,
		source:      opts.Source,
		prefsPath:   prefsPath,
		pollTick:    pollTick,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(themeName),
		currentView: ViewListings,
		spinner:     sp,
		search:      newSearchPanel(),
		logs:        newLogState(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
		tickCmd(m.pollTick),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
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
		m.resizeLogViewport()
		m.clampSelection()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case spinner.TickMsg:
		if !m.snapshot.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case buyResultMsg:
		if msg.err != nil {
			m.logger.Warn("buy failed", zap.Error(msg.err))
			m.statusMsg = "Buy request failed"
			return m, nil
		}
		m.modal = newReceiptModal(msg.receipt)
		return m, nil

	case logLinesMsg:
		m.handleLogLines(msg)
		return m, nil

	case prefsSavedMsg:
		if msg.err != nil {
			m.logger.Warn("save prefs", zap.Error(msg.err))
			m.statusMsg = "Could not save theme"
		}
		return m, nil
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

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	switch m.currentView {
	case ViewLogs:
		b.WriteString(m.renderLogs())
	default:
		b.WriteString(m.renderListings())
	}
	return b.String()
}

// handleKey processes keyboard input. Overlays get first pick, then the
// search panel, then global keys, then the active view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}
	if m.search.open {
		return m.handleSearchKey(msg)
	}

	m.statusMsg = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		return m, savePrefsCmd(m.prefsPath, m.theme.Name)

	case key.Matches(msg, m.keys.Logs):
		if m.currentView == ViewLogs {
			m.currentView = ViewListings
			return m, nil
		}
		m.currentView = ViewLogs
		m.logs.follow = true
		return m, readLogsCmd(m.logPath)

	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewListings
		return m, nil
	}

	switch m.currentView {
	case ViewLogs:
		return m.handleLogsKey(msg)
	default:
		return m.handleListingsKey(msg)
	}
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.currentView == ViewLogs && m.logs.follow {
		cmds = append(cmds, readLogsCmd(m.logPath))
	}
	cmds = append(cmds, tickCmd(m.pollTick))
	return m, tea.Batch(cmds...)
}

// applySnapshot installs a new snapshot. A new search resets the selection
// to the first row.
func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	if snap.Searches != m.lastSearches {
		m.lastSearches = snap.Searches
		m.selectedRow = 0
		m.listOffset = 0
	}
	m.clampSelection()
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type buyResultMsg struct {
	receipt purchase.Receipt
	err     error
}

type prefsSavedMsg struct {
	err error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func savePrefsCmd(path, themeName string) tea.Cmd {
	return func() tea.Msg {
		return prefsSavedMsg{err: prefs.Save(path, prefs.Prefs{Theme: themeName})}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
