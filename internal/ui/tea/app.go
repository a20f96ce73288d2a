// Package tea provides a Bubble Tea frontend driving the same selection
// session as the tview UI.
package tea

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/picket/internal/selection"
	"github.com/five82/picket/internal/state"
	"github.com/five82/picket/internal/ui"
)

// Options configures the UI.
type Options struct {
	Context       context.Context
	Store         *state.Store
	Session       ui.Session
	ThemeName     string
	OnThemeChange func(name string)
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx           context.Context
	store         *state.Store
	session       ui.Session
	onThemeChange func(name string)

	// UI state
	theme  ui.Theme
	keys   ui.KeyMap
	width  int
	height int
	ready  bool

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	return Model{
		ctx:           ctx,
		store:         opts.Store,
		session:       opts.Session,
		onThemeChange: opts.OnThemeChange,
		theme:         ui.GetTheme(opts.ThemeName),
		keys:          ui.DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(ui.DefaultUIInterval),
	}
	// Fetch a snapshot immediately on start
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
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = time.Now()
		m.session.SyncCatalog(m.snapshot)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input (matching the tview bindings).
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		// Any other key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		next := ui.NextTheme(m.theme.Name)
		m.theme = ui.GetTheme(next)
		if m.onThemeChange != nil {
			m.onThemeChange(next)
		}
		return m, nil
	}

	in, ok := decodeKey(msg, m.keys)
	if !ok {
		return m, nil
	}
	m.session.OnInput(in)
	if m.session.Done() {
		return m, tea.Quit
	}
	return m, nil
}

// decodeKey translates a key message into a selector input. The second
// return is false for keys the selector does not consume.
func decodeKey(msg tea.KeyMsg, keys ui.KeyMap) (selection.Input, bool) {
	switch {
	case key.Matches(msg, keys.Up):
		return selection.Input{Action: selection.ActionUp}, true
	case key.Matches(msg, keys.Down):
		return selection.Input{Action: selection.ActionDown}, true
	case key.Matches(msg, keys.PageUp):
		return selection.Input{Action: selection.ActionPageUp}, true
	case key.Matches(msg, keys.PageDown):
		return selection.Input{Action: selection.ActionPageDown}, true
	case key.Matches(msg, keys.Top):
		return selection.Input{Action: selection.ActionHome}, true
	case key.Matches(msg, keys.Bottom):
		return selection.Input{Action: selection.ActionEnd}, true
	case key.Matches(msg, keys.NextColumn):
		return selection.Input{Action: selection.ActionSwitchColumn}, true
	case key.Matches(msg, keys.PrevColumn):
		return selection.Input{Action: selection.ActionLeft}, true
	case key.Matches(msg, keys.NavMode):
		return selection.Input{Action: selection.ActionToggleMode}, true
	case key.Matches(msg, keys.Toggle):
		return selection.Input{Action: selection.ActionToggleSelect}, true
	case key.Matches(msg, keys.Confirm):
		return selection.Input{Action: selection.ActionConfirm}, true
	case key.Matches(msg, keys.Cancel):
		return selection.Input{Action: selection.ActionCancel}, true
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] > ' ' {
		return selection.Input{Action: selection.ActionKey, Key: msg.Runes[0]}, true
	}
	return selection.Input{}, false
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	cmds = append(cmds, tickCmd(ui.DefaultUIInterval))
	return m, tea.Batch(cmds...)
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

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

// Run starts the Bubble Tea program and blocks until the session
// finishes, the user quits, or ctx is cancelled.
func Run(opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a data store")
	}
	if opts.Session == nil {
		return fmt.Errorf("ui requires a session")
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
