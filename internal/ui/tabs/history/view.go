package history

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/d-kovas/rtk-gain/internal/models"
	"github.com/d-kovas/rtk-gain/internal/render"
	"github.com/d-kovas/rtk-gain/internal/ui/components"
	"github.com/d-kovas/rtk-gain/internal/ui/styles"
)

// View renders the history tab.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return m.renderLoading()
	}

	records := m.state.GetRecent()
	if len(records) == 0 {
		return m.renderEmpty()
	}

	selected := m.state.GetSelectedIndex()
	if selected >= len(records) {
		selected = len(records) - 1
	}
	if selected < 0 {
		selected = 0
	}

	var sections []string

	sections = append(sections, m.renderHeader(len(records)))
	sections = append(sections, m.renderList(records, selected))
	sections = append(sections, m.renderDetail(records[selected]))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderLoading() string {
	return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
}

func (m *Model) renderEmpty() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Recent Commands"),
		"",
		styles.HelpStyle.Render("No commands tracked yet."),
		styles.HelpStyle.Render("Entries appear as rtk records command savings."),
	)
	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(content)
}

func (m *Model) renderHeader(count int) string {
	title := styles.TitleStyle.Render("Recent Commands")
	subtitle := styles.HelpStyle.Render(fmt.Sprintf("%d tracked commands, most recent first", count))

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderList(records []models.CommandRecord, selected int) string {
	cardWidth := max(m.width-6, 40)

	var rows []string
	for i, rec := range records {
		rows = append(rows, m.renderRecordRow(rec, i == selected, cardWidth-4))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderRecordRow(rec models.CommandRecord, selected bool, width int) string {
	prefix := "  "
	if selected {
		prefix = styles.FocusedStyle.Render("▸ ")
	}

	cmd := rec.RtkCmd
	maxCmd := max(width-34, 12)
	if len(cmd) > maxCmd {
		cmd = cmd[:maxCmd-3] + "..."
	}

	pctStr := styles.GetSavingsStyle(rec.SavingsPct).
		Width(6).
		Align(lipgloss.Right).
		Render(fmt.Sprintf("-%.0f%%", rec.SavingsPct))

	savedStr := styles.SavedTextStyle.
		Width(9).
		Align(lipgloss.Right).
		Render(render.FormatTokens(int64(rec.SavedTokens)))

	return lipgloss.JoinHorizontal(lipgloss.Left,
		prefix,
		styles.HelpStyle.Render(rec.Timestamp.Format("01-02 15:04")),
		"  ",
		lipgloss.NewStyle().Width(maxCmd).Render(cmd),
		" ",
		pctStr,
		" ",
		savedStr,
	)
}

func (m *Model) renderDetail(rec models.CommandRecord) string {
	cardWidth := max(m.width-6, 40)

	wrap := max(cardWidth-16, 20)
	original := rec.OriginalCmd
	if len(original) > wrap {
		original = original[:wrap-3] + "..."
	}
	rewritten := rec.RtkCmd
	if len(rewritten) > wrap {
		rewritten = rewritten[:wrap-3] + "..."
	}

	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◈")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Command Detail")))
	rows = append(rows, "")
	rows = append(rows, fmt.Sprintf("  When       %s", rec.Timestamp.Format("2006-01-02 15:04:05")))
	rows = append(rows, fmt.Sprintf("  Original   %s", original))
	rows = append(rows, fmt.Sprintf("  Rewritten  %s", lipgloss.NewStyle().Bold(true).Render(rewritten)))
	rows = append(rows, "")
	rows = append(rows, fmt.Sprintf("  Input      %s", render.FormatTokens(int64(rec.InputTokens))))
	rows = append(rows, fmt.Sprintf("  Output     %s", render.FormatTokens(int64(rec.OutputTokens))))
	rows = append(rows, fmt.Sprintf("  Saved      %s %s",
		styles.SavedTextStyle.Render(render.FormatTokens(int64(rec.SavedTokens))),
		styles.GetSavingsStyle(rec.SavingsPct).Render(fmt.Sprintf("(%.1f%%)", rec.SavingsPct)),
	))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}
