// Package breakdown provides the daily/weekly/monthly breakdown tab for the rtk gain TUI.
package breakdown

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/d-kovas/rtk-gain/internal/app"
	"github.com/d-kovas/rtk-gain/internal/render"
	"github.com/d-kovas/rtk-gain/internal/ui/components"
	"github.com/d-kovas/rtk-gain/internal/ui/styles"
)

// period selects which rollup the table shows.
type period int

const (
	periodDaily period = iota
	periodWeekly
	periodMonthly
)

// String returns the period label shown in the header.
func (p period) String() string {
	switch p {
	case periodWeekly:
		return "Weekly"
	case periodMonthly:
		return "Monthly"
	default:
		return "Daily"
	}
}

// next cycles daily -> weekly -> monthly -> daily.
func (p period) next() period {
	return (p + 1) % 3
}

// keyMap defines the key bindings specific to the breakdown tab.
type keyMap struct {
	TogglePeriod key.Binding
	Daily        key.Binding
	Weekly       key.Binding
	Monthly      key.Binding
	Up           key.Binding
	Down         key.Binding
}

// defaultKeyMap returns the default key bindings for the breakdown tab.
func defaultKeyMap() keyMap {
	return keyMap{
		TogglePeriod: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle period"),
		),
		Daily: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "daily"),
		),
		Weekly: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "weekly"),
		),
		Monthly: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "monthly"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "row up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "row down"),
		),
	}
}

// Model represents the breakdown tab state.
type Model struct {
	state   *app.State
	table   table.Model
	spinner components.LoadingSpinner
	keys    keyMap
	period  period
	builtAt time.Time
	width   int
	height  int
}

// New creates a new breakdown model.
func New(state *app.State) *Model {
	t := table.New(
		table.WithColumns(dailyColumns(0)),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Subtle).
		BorderBottom(true).
		Bold(true).
		Foreground(styles.Primary)
	s.Selected = s.Selected.
		Foreground(styles.TextPrimary).
		Background(styles.BgAccent).
		Bold(true)
	t.SetStyles(s)

	return &Model{
		state:   state,
		table:   t,
		spinner: components.NewSpinner("Loading breakdown..."),
		keys:    defaultKeyMap(),
		period:  periodDaily,
	}
}

// Init initializes the breakdown tab.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Init()
}

// Update handles messages for the breakdown tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.TogglePeriod):
			m.period = m.period.next()
			m.rebuildRows()

		case key.Matches(msg, m.keys.Daily):
			m.setPeriod(periodDaily)

		case key.Matches(msg, m.keys.Weekly):
			m.setPeriod(periodWeekly)

		case key.Matches(msg, m.keys.Monthly):
			m.setPeriod(periodMonthly)

		default:
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			cmds = append(cmds, cmd)
		}

	case app.SnapshotLoadedMsg:
		m.rebuildRows()

	case app.TabSwitchMsg:
		if msg.Tab == app.TabBreakdown {
			m.rebuildRows()
		}
	}

	return m, tea.Batch(cmds...)
}

// setPeriod switches to the given period and rebuilds when it changed.
func (m *Model) setPeriod(p period) {
	if m.period == p {
		return
	}
	m.period = p
	m.rebuildRows()
}

// rebuildRows repopulates the table from the current snapshot and period.
func (m *Model) rebuildRows() {
	var rows []table.Row

	switch m.period {
	case periodWeekly:
		m.table.SetColumns(weeklyColumns(m.width))
		for _, w := range m.state.GetWeeks() {
			rows = append(rows, table.Row{
				fmt.Sprintf("%s → %s", w.WeekStart, w.WeekEnd),
				fmt.Sprintf("%d", w.Commands),
				render.FormatTokens(w.InputTokens),
				render.FormatTokens(w.OutputTokens),
				render.FormatTokens(w.SavedTokens),
				fmt.Sprintf("%.1f%%", w.SavingsPct),
			})
		}

	case periodMonthly:
		m.table.SetColumns(monthlyColumns(m.width))
		for _, mo := range m.state.GetMonths() {
			rows = append(rows, table.Row{
				mo.Month,
				fmt.Sprintf("%d", mo.Commands),
				render.FormatTokens(mo.InputTokens),
				render.FormatTokens(mo.OutputTokens),
				render.FormatTokens(mo.SavedTokens),
				fmt.Sprintf("%.1f%%", mo.SavingsPct),
			})
		}

	default:
		m.table.SetColumns(dailyColumns(m.width))
		for _, d := range m.state.GetDays() {
			rows = append(rows, table.Row{
				d.Date,
				fmt.Sprintf("%d", d.Commands),
				render.FormatTokens(d.InputTokens),
				render.FormatTokens(d.OutputTokens),
				render.FormatTokens(d.SavedTokens),
				fmt.Sprintf("%.1f%%", d.SavingsPct),
			})
		}
	}

	m.table.SetRows(rows)
	if len(rows) > 0 {
		// Land on the most recent bucket
		m.table.SetCursor(len(rows) - 1)
	}
	m.builtAt = time.Now()
}

func dailyColumns(width int) []table.Column {
	return []table.Column{
		{Title: "Date", Width: firstColumnWidth(width, 12)},
		{Title: "Cmds", Width: 6},
		{Title: "Input", Width: 9},
		{Title: "Output", Width: 9},
		{Title: "Saved", Width: 9},
		{Title: "Saved %", Width: 8},
	}
}

func weeklyColumns(width int) []table.Column {
	return []table.Column{
		{Title: "Week", Width: firstColumnWidth(width, 25)},
		{Title: "Cmds", Width: 6},
		{Title: "Input", Width: 9},
		{Title: "Output", Width: 9},
		{Title: "Saved", Width: 9},
		{Title: "Saved %", Width: 8},
	}
}

func monthlyColumns(width int) []table.Column {
	return []table.Column{
		{Title: "Month", Width: firstColumnWidth(width, 12)},
		{Title: "Cmds", Width: 6},
		{Title: "Input", Width: 9},
		{Title: "Output", Width: 9},
		{Title: "Saved", Width: 9},
		{Title: "Saved %", Width: 8},
	}
}

// firstColumnWidth widens the leading column on wide terminals.
func firstColumnWidth(width, minWidth int) int {
	w := width - 55
	if w < minWidth {
		return minWidth
	}
	if w > 40 {
		return 40
	}
	return w
}

// SetSize sets the available size for the breakdown tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(max(height-10, 3))
	m.rebuildRows()
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.TogglePeriod,
		m.keys.Up,
		m.keys.Down,
	}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.TogglePeriod, m.keys.Daily, m.keys.Weekly, m.keys.Monthly},
		{m.keys.Up, m.keys.Down},
	}
}
