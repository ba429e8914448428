// Package tui runs the interactive browser: one Bubble Tea event loop that
// owns the view state, loads the data once and switches tabs on key presses.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/databrowser/internal/fetch"
	"github.com/idilsaglam/databrowser/internal/model"
	"github.com/idilsaglam/databrowser/internal/store"
	"github.com/idilsaglam/databrowser/internal/ui"
)

// Heading is the title line above the tab bar.
const Heading = "JSONPlaceholder API Sample"

// Loader is satisfied by *fetch.Client. Load must not fail; it reports
// problems itself and returns what it could (possibly nothing).
type Loader interface {
	Load(ctx context.Context) fetch.Result
}

// loadedMsg carries the result of the one and only load.
type loadedMsg struct {
	result fetch.Result
}

type Model struct {
	state   store.State
	loader  Loader
	theme   ui.Theme
	keys    keyMap
	spinner spinner.Model
	help    help.Model
	width   int
}

func New(loader Loader, th ui.Theme) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = th.Accent

	h := help.New()
	h.Styles.ShortKey = th.Muted
	h.Styles.ShortDesc = th.Muted
	h.Styles.FullKey = th.Muted
	h.Styles.FullDesc = th.Muted

	return Model{
		state:   store.New(),
		loader:  loader,
		theme:   th,
		keys:    defaultKeys(),
		spinner: sp,
		help:    h,
	}
}

// Run starts the full-screen program and blocks until the user quits.
func Run(loader Loader, th ui.Theme) error {
	p := tea.NewProgram(New(loader, th), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// State exposes the current view state.
func (m Model) State() store.State { return m.state }

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

func (m Model) load() tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		return loadedMsg{result: loader.Load(context.Background())}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.state.Populate(msg.result.Users, msg.result.Posts, msg.result.Todos)
		m.state.Finish()
		return m, nil

	case spinner.TickMsg:
		// Stop ticking once loaded.
		if !m.state.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Users):
			m.state.Select(model.TabUsers)
		case key.Matches(msg, m.keys.Posts):
			m.state.Select(model.TabPosts)
		case key.Matches(msg, m.keys.Todos):
			m.state.Select(model.TabTodos)
		case key.Matches(msg, m.keys.Next):
			m.state.Select(m.state.Tab().Next())
		case key.Matches(msg, m.keys.Prev):
			m.state.Select(m.state.Tab().Prev())
		}
	}
	return m, nil
}

func (m Model) View() string {
	layout := ui.Layout{Spinner: m.spinner.View()}
	if m.width > 4 {
		// Outer frame border and padding take four cells.
		layout.Width = m.width - 4
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render(Heading),
		"",
		ui.Render(m.state, m.theme, layout),
		"",
		m.help.View(m.keys),
	)
	return ui.PanelString(m.theme, []string{content})
}
