package breakdown

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/d-kovas/rtk-gain/internal/render"
	"github.com/d-kovas/rtk-gain/internal/ui/components"
	"github.com/d-kovas/rtk-gain/internal/ui/styles"
)

// View renders the breakdown tab.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return m.renderLoading()
	}

	// Snapshot events can land while another tab is active, so rebuild
	// whenever the shared state is newer than the last table build.
	if m.state.GetLastUpdated().After(m.builtAt) {
		m.rebuildRows()
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	if m.bucketCount() == 0 {
		sections = append(sections, m.renderEmpty())
	} else {
		sections = append(sections, m.renderTable())
		sections = append(sections, m.renderTotals())
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(content)
}

func (m *Model) renderLoading() string {
	return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
}

func (m *Model) renderHeader() string {
	title := styles.TitleStyle.Render("Savings Breakdown")

	// Period indicator with toggle hint
	periodStyle := lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Primary)

	periodIndicator := periodStyle.Render(fmt.Sprintf("[t] %s", m.period.String()))

	header := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", periodIndicator)

	subtitle := styles.HelpStyle.Render(
		fmt.Sprintf("%d %s of tracked activity", m.bucketCount(), m.bucketNoun()))

	return lipgloss.JoinVertical(lipgloss.Left, header, subtitle, "")
}

func (m *Model) renderEmpty() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		"",
		styles.HelpStyle.Render("No tracked commands in this period yet."),
		styles.HelpStyle.Render("Rows appear as rtk records command savings."),
	)
	return styles.CardStyle.Width(max(m.width-6, 40)).Render(content)
}

func (m *Model) renderTable() string {
	cardWidth := m.width - 6
	if cardWidth < 60 {
		cardWidth = 60
	}

	return styles.CardStyle.Width(cardWidth).Render(m.table.View())
}

// renderTotals renders the pooled TOTAL line under the table.
func (m *Model) renderTotals() string {
	var commands int
	var input, output, saved int64

	switch m.period {
	case periodWeekly:
		for _, w := range m.state.GetWeeks() {
			commands += w.Commands
			input += w.InputTokens
			output += w.OutputTokens
			saved += w.SavedTokens
		}
	case periodMonthly:
		for _, mo := range m.state.GetMonths() {
			commands += mo.Commands
			input += mo.InputTokens
			output += mo.OutputTokens
			saved += mo.SavedTokens
		}
	default:
		for _, d := range m.state.GetDays() {
			commands += d.Commands
			input += d.InputTokens
			output += d.OutputTokens
			saved += d.SavedTokens
		}
	}

	// Pooled percentage, not an average of per-bucket percentages
	pct := 0.0
	if input > 0 {
		pct = float64(saved) / float64(input) * 100
	}

	line := fmt.Sprintf("TOTAL  %d cmds  in %s  out %s  saved %s (%s)",
		commands,
		render.FormatTokens(input),
		render.FormatTokens(output),
		styles.SavedTextStyle.Render(render.FormatTokens(saved)),
		styles.GetSavingsStyle(pct).Render(fmt.Sprintf("%.1f%%", pct)),
	)

	return lipgloss.NewStyle().MarginTop(1).Render(line)
}

func (m *Model) bucketCount() int {
	switch m.period {
	case periodWeekly:
		return len(m.state.GetWeeks())
	case periodMonthly:
		return len(m.state.GetMonths())
	default:
		return len(m.state.GetDays())
	}
}

func (m *Model) bucketNoun() string {
	switch m.period {
	case periodWeekly:
		return "weeks"
	case periodMonthly:
		return "months"
	default:
		return "days"
	}
}
