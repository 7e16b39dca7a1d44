// Package history provides the command history tab for the rtk gain TUI.
package history

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/d-kovas/rtk-gain/internal/app"
	"github.com/d-kovas/rtk-gain/internal/ui/components"
)

// keyMap defines the key bindings specific to the history tab.
type keyMap struct {
	NextRecord key.Binding
	PrevRecord key.Binding
	First      key.Binding
	Last       key.Binding
}

// defaultKeyMap returns the default key bindings for the history tab.
func defaultKeyMap() keyMap {
	return keyMap{
		NextRecord: key.NewBinding(
			key.WithKeys("n", "j", "down"),
			key.WithHelp("j/n", "next command"),
		),
		PrevRecord: key.NewBinding(
			key.WithKeys("p", "k", "up"),
			key.WithHelp("k/p", "prev command"),
		),
		First: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first command"),
		),
		Last: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last command"),
		),
	}
}

// Model represents the history tab state.
type Model struct {
	state    *app.State
	spinner  components.LoadingSpinner
	keys     keyMap
	viewport viewport.Model
	width    int
	height   int
}

// New creates a new history model.
func New(state *app.State) *Model {
	return &Model{
		state:    state,
		spinner:  components.NewSpinner("Loading history..."),
		keys:     defaultKeyMap(),
		viewport: viewport.New(0, 0),
	}
}

// Init initializes the history tab.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Init()
}

// Update handles messages for the history tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKeyMsg(msg))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	// Selection lives in the shared state so other views stay in sync
	count := m.state.RecentCount()

	switch {
	case key.Matches(msg, m.keys.NextRecord):
		if count > 0 {
			m.state.SetSelectedIndex((m.state.GetSelectedIndex() + 1) % count)
		}
	case key.Matches(msg, m.keys.PrevRecord):
		if count > 0 {
			m.state.SetSelectedIndex((m.state.GetSelectedIndex() - 1 + count) % count)
		}
	case key.Matches(msg, m.keys.First):
		if count > 0 {
			m.state.SetSelectedIndex(0)
		}
	case key.Matches(msg, m.keys.Last):
		if count > 0 {
			m.state.SetSelectedIndex(count - 1)
		}
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	return nil
}

// SetSize sets the available size for the history tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.NextRecord,
		m.keys.PrevRecord,
	}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.NextRecord, m.keys.PrevRecord},
		{m.keys.First, m.keys.Last},
	}
}
