package overview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/d-kovas/rtk-gain/internal/models"
	"github.com/d-kovas/rtk-gain/internal/render"
	"github.com/d-kovas/rtk-gain/internal/services/quota"
	"github.com/d-kovas/rtk-gain/internal/ui/components"
	"github.com/d-kovas/rtk-gain/internal/ui/styles"
)

// chartDays caps the daily chart at roughly a month of history.
const chartDays = 30

// View renders the overview tab.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return m.renderLoading()
	}

	var sections []string

	sections = append(sections, m.renderTitle())
	sections = append(sections, m.renderTotals())

	if m.state.HasData() {
		sections = append(sections, m.renderChart())
		sections = append(sections, m.renderQuota())
		sections = append(sections, m.renderTopCommands())
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

// renderLoading renders the loading state.
func (m *Model) renderLoading() string {
	return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
}

// renderTitle renders the overview title.
func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("rtk Token Savings")
	subtitle := styles.HelpStyle.Render("Context window tokens preserved by filtered command output")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

// renderTotals renders the lifetime totals card.
func (m *Model) renderTotals() string {
	summary := m.state.GetSummary()

	cardWidth := max(m.width-6, 40)

	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◈")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Lifetime Totals")))

	if summary == nil || !summary.HasData() {
		rows = append(rows, "")
		emptyIcon := lipgloss.NewStyle().Foreground(styles.Subtle).Render("○")
		rows = append(rows, fmt.Sprintf("  %s %s", emptyIcon, styles.HelpStyle.Render("No commands tracked yet")))
		rows = append(rows, "")
		rows = append(rows, styles.InfoTextStyle.Render("  ╰─▶ Run commands through rtk to start saving tokens"))

		return styles.CardStyle.Width(cardWidth).Render(
			lipgloss.JoinVertical(lipgloss.Left, rows...),
		)
	}

	rows = append(rows, "")
	rows = append(rows, fmt.Sprintf("  Commands   %s",
		lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d", summary.TotalCommands))))
	rows = append(rows, fmt.Sprintf("  Input      %s", render.FormatTokens(summary.TotalInput)))
	rows = append(rows, fmt.Sprintf("  Output     %s", render.FormatTokens(summary.TotalOutput)))

	pctStr := styles.GetSavingsStyle(summary.AvgSavingsPct).Render(fmt.Sprintf("(%.1f%% avg)", summary.AvgSavingsPct))
	rows = append(rows, fmt.Sprintf("  Saved      %s %s",
		styles.SavedTextStyle.Render(render.FormatTokens(summary.TotalSaved)),
		pctStr,
	))

	if spark := m.renderTrendSparkline(summary, cardWidth-16); spark != "" {
		rows = append(rows, "")
		rows = append(rows, fmt.Sprintf("  Trend      %s", spark))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderTrendSparkline(summary *models.GainSummary, width int) string {
	if len(summary.ByDay) == 0 {
		return ""
	}
	if width < 10 {
		width = 10
	}

	values := make([]float64, len(summary.ByDay))
	for i, d := range summary.ByDay {
		values[i] = float64(d.SavedTokens)
	}

	return lipgloss.NewStyle().Foreground(styles.Saved).Render(components.RenderSparkline(values, width))
}

// renderChart renders the daily savings chart card.
func (m *Model) renderChart() string {
	days := m.state.GetDays()

	cardWidth := max(m.width-6, 40)

	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◢")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Daily Savings")))
	rows = append(rows, "")

	if len(days) == 0 {
		emptyIcon := lipgloss.NewStyle().Foreground(styles.Subtle).Render("○")
		rows = append(rows, fmt.Sprintf("  %s %s", emptyIcon, styles.HelpStyle.Render("No daily activity yet")))
	} else {
		if len(days) > chartDays {
			days = days[len(days)-chartDays:]
		}

		saved := make([]float64, len(days))
		input := make([]float64, len(days))
		for i, d := range days {
			saved[i] = float64(d.SavedTokens)
			input[i] = float64(d.InputTokens)
		}

		chartWidth := max(cardWidth-14, 20)
		caption := fmt.Sprintf("last %d days", len(days))

		if m.dualSeries {
			rows = append(rows, components.RenderDualLineChart(input, saved, chartWidth, 8, caption))
			rows = append(rows, "")
			rows = append(rows, "  "+components.RenderLegend([]components.LegendItem{
				{Label: "Input", Color: components.ChartInputColor},
				{Label: "Saved", Color: components.ChartSavedColor},
			}))
		} else {
			rows = append(rows, components.RenderLineChart(saved, chartWidth, 8, caption))
		}

		rows = append(rows, "")
		rows = append(rows, styles.HelpStyle.Render("  [t] toggle input series"))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderQuota renders the preserved-quota estimate card.
func (m *Model) renderQuota() string {
	summary := m.state.GetSummary()
	est := quota.EstimateFor(m.state.GetTier(), summary.TotalSaved)

	cardWidth := max(m.width-6, 40)

	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◆")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Quota Impact")))
	rows = append(rows, "")
	rows = append(rows, fmt.Sprintf("  Plan       %s",
		lipgloss.NewStyle().Bold(true).Render(est.Tier.DisplayName())))
	rows = append(rows, fmt.Sprintf("  Monthly    ~%s tokens", render.FormatTokens(est.MonthlyTokens)))
	rows = append(rows, "")
	rows = append(rows, "  "+m.bar.View(est.PreservedPct, "Preserved", cardWidth-8))
	rows = append(rows, "")
	rows = append(rows, styles.HelpStyle.Render(
		fmt.Sprintf("  ≈ %.1f%% of one month's allowance preserved so far", est.PreservedPct)))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderTopCommands renders the top commands bar chart card.
func (m *Model) renderTopCommands() string {
	summary := m.state.GetSummary()

	cardWidth := max(m.width-6, 40)

	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("≡")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Top Commands")))
	rows = append(rows, "")

	if len(summary.ByCommand) == 0 {
		emptyIcon := lipgloss.NewStyle().Foreground(styles.Subtle).Render("○")
		rows = append(rows, fmt.Sprintf("  %s %s", emptyIcon, styles.HelpStyle.Render("No per-command stats yet")))
	} else {
		labels := make([]string, len(summary.ByCommand))
		values := make([]int64, len(summary.ByCommand))
		for i, c := range summary.ByCommand {
			labels[i] = c.Command
			values[i] = c.SavedTokens
		}
		rows = append(rows, components.RenderTokenBarChart(values, labels, cardWidth-6))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}
