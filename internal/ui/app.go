package ui

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/five82/walt/internal/apperr"
	"github.com/five82/walt/internal/catalog"
	"github.com/five82/walt/internal/prefs"
	"github.com/five82/walt/internal/selection"
	"github.com/five82/walt/internal/setter"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Catalog   catalog.Catalog
	Setter    selection.Applier
	Platform  setter.Platform
	Dir       string
	ThemeName string
	PrefsPath string
	Log       logrus.FieldLogger
}

// status is the outcome of the last apply or random action.
type status struct {
	text   string
	failed bool
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	setter    selection.Applier
	platform  setter.Platform
	dir       string
	prefsPath string
	log       logrus.FieldLogger

	// UI state
	keys     keyMap
	help     help.Model
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	quitting bool

	// Data state
	selection selection.Model
	offset    int
	status    status
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	log := opts.Log
	if log == nil {
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		log = quiet
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(opts.ThemeName)

	return Model{
		ctx:       ctx,
		setter:    opts.Setter,
		platform:  opts.Platform,
		dir:       opts.Dir,
		prefsPath: prefsPath,
		log:       log,
		keys:      DefaultKeyMap(),
		help:      newHelp(theme),
		theme:     theme,
		selection: selection.New(opts.Catalog),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
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
		m.scroll()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// Quitting reports whether the user asked to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// handleKey maps one key press onto the selection model or an action.
// Bubble Tea only delivers presses, so releases never reach this point.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showHelp {
		// Any other key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		m.selection.Next()
	case key.Matches(msg, m.keys.Up):
		m.selection.Previous()
	case key.Matches(msg, m.keys.Top):
		m.selection.First()
	case key.Matches(msg, m.keys.Bottom):
		m.selection.Last()
	case key.Matches(msg, m.keys.Random):
		m.applyRandom()
	case key.Matches(msg, m.keys.Apply):
		m.commit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
	default:
		return m, nil
	}

	m.scroll()
	return m, nil
}

// commit applies the highlighted wallpaper.
func (m *Model) commit() {
	item, err := m.selection.Commit(m.setter)
	if err != nil {
		m.fail("apply", err)
		return
	}
	if item.Path != "" {
		m.status = status{text: "Applied " + item.Name}
	}
}

// applyRandom applies a random wallpaper and moves the cursor onto it.
func (m *Model) applyRandom() {
	item, err := m.selection.Random(m.setter)
	if err != nil {
		m.fail("random", err)
		return
	}
	m.status = status{text: "Applied " + item.Name + " (random)"}
}

func (m *Model) fail(action string, err error) {
	text := err.Error()
	if errors.Is(err, apperr.EmptyCatalog) {
		text = "No wallpapers to choose from"
	}
	m.status = status{text: text, failed: true}
	m.log.WithError(err).WithField("action", action).Warn("wallpaper action failed")
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.help = newHelp(m.theme)
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.log.WithError(err).Warn("save prefs failed")
	}
}

// scroll keeps the highlighted row inside the visible list window.
func (m *Model) scroll() {
	idx, _ := m.selection.Selected()
	m.offset = scrollOffset(m.offset, idx, m.selection.Len(), listRows(m.height))
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled. Bubble Tea restores the terminal on every exit path.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
