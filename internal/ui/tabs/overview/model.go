// Package overview provides the savings overview tab for the rtk gain TUI.
package overview

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/d-kovas/rtk-gain/internal/app"
	"github.com/d-kovas/rtk-gain/internal/ui/components"
)

// keyMap defines the key bindings specific to the overview tab.
type keyMap struct {
	ToggleSeries key.Binding
	Refresh      key.Binding
}

// defaultKeyMap returns the default key bindings for the overview tab.
func defaultKeyMap() keyMap {
	return keyMap{
		ToggleSeries: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle input series"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

// Model represents the overview tab state.
type Model struct {
	state      *app.State
	spinner    components.LoadingSpinner
	bar        components.SavingsBar
	keys       keyMap
	viewport   viewport.Model
	width      int
	height     int
	dualSeries bool
}

// New creates a new overview model.
func New(state *app.State) *Model {
	return &Model{
		state:      state,
		spinner:    components.NewSpinner("Loading savings..."),
		bar:        components.NewSavingsBar(),
		keys:       defaultKeyMap(),
		viewport:   viewport.New(0, 0),
		dualSeries: true,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Init()
}

// Update handles messages and updates the model.
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
	switch {
	case key.Matches(msg, m.keys.ToggleSeries):
		m.dualSeries = !m.dualSeries
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	return nil
}

// SetSize sets the available size for the overview.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.ToggleSeries,
		m.keys.Refresh,
	}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.ToggleSeries},
		{m.keys.Refresh},
	}
}
