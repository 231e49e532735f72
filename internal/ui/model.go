package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/objspace/internal/prefs"
	"github.com/five82/objspace/internal/state"
)

// Reloader triggers loads and announces their completion. *watch.Watcher
// implements it.
type Reloader interface {
	Reload()
	Updates() <-chan struct{}
}

// Options configures the viewer.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Reloader  Reloader
	ThemeName string
	PrefsPath string // empty uses the default prefs path
	Log       zerolog.Logger
}

// Model is the root Bubble Tea model.
type Model struct {
	ctx       context.Context
	store     *state.Store
	reloader  Reloader
	prefsPath string
	log       zerolog.Logger

	keys     keyMap
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool

	snapshot state.Snapshot
	viewport viewport.Model
}

type snapshotMsg state.Snapshot

// New creates the viewer model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Default().Theme
	}
	return Model{
		ctx:       ctx,
		store:     opts.Store,
		reloader:  opts.Reloader,
		prefsPath: opts.PrefsPath,
		log:       opts.Log,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(themeName),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{fetchSnapshotCmd(m.store)}
	if m.reloader != nil {
		cmds = append(cmds, waitForUpdateCmd(m.ctx, m.reloader, m.store))
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
		bodyHeight := max(m.height-chromeHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(m.width, bodyHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = bodyHeight
		}
		m.refreshBody()
		return m, nil

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.refreshBody()
		return m, nil

	case updatedMsg:
		m.snapshot = state.Snapshot(msg)
		m.refreshBody()
		return m, waitForUpdateCmd(m.ctx, m.reloader, m.store)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m, reloadCmd(m.reloader)

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			m.log.Warn().Err(err).Msg("save viewer preferences")
		}
		m.refreshBody()
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) refreshBody() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(renderBody(m.snapshot, m.theme.Styles(), m.width))
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return renderHelp(m.keys, m.theme.Styles(), m.width)
	}
	styles := m.theme.Styles()
	return renderHeader(m.snapshot, styles, m.width) + "\n" +
		m.viewport.View() + "\n" +
		renderFooter(m.theme, styles, m.width)
}

type updatedMsg state.Snapshot

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return snapshotMsg{}
		}
		return snapshotMsg(store.Snapshot())
	}
}

// waitForUpdateCmd blocks until the reloader publishes, then delivers the
// new snapshot. It returns nil once ctx is done.
func waitForUpdateCmd(ctx context.Context, r Reloader, store *state.Store) tea.Cmd {
	if r == nil || store == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case <-r.Updates():
			return updatedMsg(store.Snapshot())
		}
	}
}

func reloadCmd(r Reloader) tea.Cmd {
	if r == nil {
		return nil
	}
	return func() tea.Msg {
		r.Reload()
		return nil
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	_, err := tea.NewProgram(m, programOpts...).Run()
	return err
}
