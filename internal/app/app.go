package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/chatter/keygrid/internal/grid"
	"github.com/chatter/keygrid/internal/keymap"
	"github.com/chatter/keygrid/internal/logger"
	"github.com/chatter/keygrid/internal/ui"
	"github.com/chatter/keygrid/internal/ui/help"
)

// Config holds the startup options of the application.
type Config struct {
	KeymapPath  string // empty = built-in keymap
	Orientation grid.Orientation
	ShowHelp    bool
	Version     string
	Log         *logger.Logger
}

// Model is the main application model
type Model struct {
	// Core state
	version string
	keys    KeyMap
	log     *logger.Logger

	// Keymap source
	keymapPath string
	keymap     *keymap.Keymap
	watcher    *keymap.Watcher

	// View state
	showHelp bool

	// Help
	statusBar    *help.StatusBar
	floatingHelp *help.FloatingHelp

	// Window size
	width  int
	height int

	// Error state
	lastError string
}

// New creates a new application model
func New(cfg Config) Model {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}

	floatingHelp := help.NewFloatingHelp(log)
	floatingHelp.SetOrientation(cfg.Orientation)

	return Model{
		version:      cfg.Version,
		keys:         DefaultKeyMap(),
		log:          log,
		keymapPath:   cfg.KeymapPath,
		showHelp:     cfg.ShowHelp,
		statusBar:    help.NewStatusBar("keygrid " + cfg.Version),
		floatingHelp: floatingHelp,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadKeymap(),
		m.startWatcher(),
	)
}

// loadKeymap reads the keymap file, or the built-in keymap when no path is set
func (m Model) loadKeymap() tea.Cmd {
	path := m.keymapPath
	return func() tea.Msg {
		if path == "" {
			return keymapLoadedMsg{keymap: keymap.Default()}
		}
		k, err := keymap.Load(path)
		if err != nil {
			return errMsg{err}
		}
		return keymapLoadedMsg{keymap: k}
	}
}

// startWatcher starts the keymap file watcher
func (m Model) startWatcher() tea.Cmd {
	if m.keymapPath == "" {
		return nil
	}

	path, log := m.keymapPath, m.log
	return func() tea.Msg {
		watcher, err := keymap.NewWatcher(path, log)
		if err != nil {
			// Don't fail if watcher can't start, just disable hot reload
			return watcherStartedMsg{watcher: nil, err: err}
		}
		return watcherStartedMsg{watcher: watcher, err: nil}
	}
}

// waitForChange waits for the keymap file to change
func (m Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}

	events := m.watcher.Events()
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		time.Sleep(100 * time.Millisecond) // Debounce
		return keymap.ChangedMsg{Path: event.Name}
	}
}

// Message types
type keymapLoadedMsg struct {
	keymap *keymap.Keymap
}

type watcherStartedMsg struct {
	watcher *keymap.Watcher
	err     error
}

type errMsg struct {
	err error
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if newModel, cmd := dispatchKey(&m, msg, m.activeBindings()); newModel != nil {
			m = *newModel
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case keymapLoadedMsg:
		m.keymap = msg.keymap
		m.lastError = ""
		m.floatingHelp.SetKeymap(msg.keymap.Visible())
		m.syncLayout()
		m.log.Info("keymap loaded",
			"title", msg.keymap.Title,
			"groups", len(msg.keymap.Groups),
			"bindings", msg.keymap.Len(),
		)

	case watcherStartedMsg:
		m.watcher = msg.watcher
		if msg.watcher != nil {
			cmds = append(cmds, m.waitForChange())
		} else if msg.err != nil {
			m.log.Warn("keymap hot reload disabled", "err", msg.err)
		}

	case keymap.ChangedMsg:
		m.log.Info("keymap changed, reloading", "path", msg.Path)
		cmds = append(cmds, m.loadKeymap(), m.waitForChange())

	case errMsg:
		m.lastError = msg.err.Error()
		m.log.Error("keymap load failed", "err", msg.err)
	}

	return m, tea.Batch(cmds...)
}

// updateSizes sizes the modal to the screen above the status bar.
func (m *Model) updateSizes() {
	bodyHeight := m.height - 1

	modalWidth := m.width * 90 / 100
	modalHeight := bodyHeight * 90 / 100

	if modalWidth < 40 {
		modalWidth = min(40, m.width)
	}
	if modalHeight < 10 {
		modalHeight = min(10, bodyHeight)
	}

	m.floatingHelp.SetSize(modalWidth, modalHeight)
	m.syncLayout()
}

// syncLayout mirrors the accepted layout in the status bar.
func (m *Model) syncLayout() {
	result := m.floatingHelp.Result()
	m.statusBar.SetLayout(result.ColumnsPerRow, m.floatingHelp.Orientation().String())
}

// Actions

func (m *Model) actionQuit() (Model, tea.Cmd) {
	if m.watcher != nil {
		m.watcher.Close()
	}
	return *m, tea.Quit
}

func (m *Model) actionToggleHelp() (Model, tea.Cmd) {
	m.showHelp = !m.showHelp
	return *m, nil
}

func (m *Model) actionCancel() (Model, tea.Cmd) {
	m.showHelp = false
	return *m, nil
}

func (m *Model) actionOrientation() (Model, tea.Cmd) {
	next := m.floatingHelp.Orientation().Next()
	m.floatingHelp.SetOrientation(next)
	m.syncLayout()
	m.log.Debug("orientation changed", "orientation", next.String())
	return *m, nil
}

func (m *Model) actionReload() (Model, tea.Cmd) {
	return *m, m.loadKeymap()
}

func (m *Model) actionScrollUp() (Model, tea.Cmd) {
	m.floatingHelp.ScrollUp(1)
	return *m, nil
}

func (m *Model) actionScrollDown() (Model, tea.Cmd) {
	m.floatingHelp.ScrollDown(1)
	return *m, nil
}

func (m *Model) actionPageUp() (Model, tea.Cmd) {
	m.floatingHelp.PageUp()
	return *m, nil
}

func (m *Model) actionPageDown() (Model, tea.Cmd) {
	m.floatingHelp.PageDown()
	return *m, nil
}

// activeBindings returns all currently active keybindings for dispatch.
// Scrolling and cancel only apply while the overlay is open.
func (m *Model) activeBindings() []ActionBinding {
	bindings := m.globalBindings()
	if m.showHelp {
		bindings = append(bindings, m.overlayBindings()...)
	}
	return bindings
}

// globalBindings returns the app-level keybindings with their actions.
func (m *Model) globalBindings() []ActionBinding {
	return []ActionBinding{
		// Help toggle - always first
		{
			HelpBinding: help.HelpBinding{Binding: m.keys.Help, Order: 1},
			Action:      (*Model).actionToggleHelp,
		},
		{
			HelpBinding: help.HelpBinding{Binding: m.keys.Orientation, Order: 10},
			Action:      (*Model).actionOrientation,
		},
		{
			HelpBinding: help.HelpBinding{Binding: m.keys.Reload, Order: 20},
			Action:      (*Model).actionReload,
		},
		// Quit - highest order (always last)
		{
			HelpBinding: help.HelpBinding{Binding: m.keys.Quit, Order: 100},
			Action:      (*Model).actionQuit,
		},
	}
}

// overlayBindings returns the keybindings that act on the open overlay.
func (m *Model) overlayBindings() []ActionBinding {
	return []ActionBinding{
		{
			HelpBinding: help.HelpBinding{Binding: m.keys.Cancel, Order: 2},
			Action:      (*Model).actionCancel,
		},
		{
			HelpBinding: help.HelpBinding{Binding: m.keys.Up, Order: 30, Hidden: true},
			Action:      (*Model).actionScrollUp,
		},
		{
			HelpBinding: help.HelpBinding{Binding: m.keys.Down, Order: 31, Hidden: true},
			Action:      (*Model).actionScrollDown,
		},
		{
			HelpBinding: help.HelpBinding{Binding: m.keys.PageUp, Order: 32, Hidden: true},
			Action:      (*Model).actionPageUp,
		},
		{
			HelpBinding: help.HelpBinding{Binding: m.keys.PageDown, Order: 33, Hidden: true},
			Action:      (*Model).actionPageDown,
		},
	}
}

// View renders the application
func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m Model) render() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var footer []string
	if m.lastError != "" {
		footer = append(footer, ui.ErrorStyle.MaxWidth(m.width).Render(m.lastError))
	}
	footer = append(footer, m.renderStatusBar())

	bodyHeight := max(m.height-len(footer), 0)

	content := m.renderIdle()
	if m.showHelp {
		content = m.floatingHelp.View()
	}

	body := lipgloss.Place(
		m.width, bodyHeight,
		lipgloss.Center, lipgloss.Center,
		content,
	)

	return lipgloss.JoinVertical(lipgloss.Left, append([]string{body}, footer...)...)
}

func (m Model) renderIdle() string {
	title := ""
	if m.keymap != nil {
		title = m.keymap.Title
	}

	source := "built-in keymap"
	if m.keymapPath != "" {
		source = m.keymapPath
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		ui.Title(title),
		ui.DimStyle.Render(source),
		"",
		ui.DimStyle.Render("press ? to show keybindings"),
	)
}

func (m Model) renderStatusBar() string {
	m.statusBar.SetWidth(m.width)
	m.statusBar.SetHints(help.Hints(ToHelpBindings(m.activeBindings()))...)
	return ui.StatusBarStyle.Render(m.statusBar.View())
}
