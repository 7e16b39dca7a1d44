package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/d-kovas/rtk-gain/internal/models"
)

// DailyTable writes the per-day breakdown with a pooled TOTAL row.
func DailyTable(w io.Writer, days []models.DayStats) {
	if len(days) == 0 {
		fmt.Fprintln(w, "No daily data available.")
		return
	}

	fmt.Fprintf(w, "\n📅 Daily Breakdown (%d days)\n", len(days))
	fmt.Fprintln(w, strings.Repeat("═", 64))
	fmt.Fprintf(w, "%-12s %7s %10s %10s %10s %7s\n", "Date", "Cmds", "Input", "Output", "Saved", "Save%")
	fmt.Fprintln(w, strings.Repeat("─", 64))

	var totalCmds int
	var totalInput, totalOutput, totalSaved int64
	for _, day := range days {
		fmt.Fprintf(w, "%-12s %7d %10s %10s %10s %6.1f%%\n",
			day.Date, day.Commands,
			FormatTokens(day.InputTokens),
			FormatTokens(day.OutputTokens),
			FormatTokens(day.SavedTokens),
			day.SavingsPct)
		totalCmds += day.Commands
		totalInput += day.InputTokens
		totalOutput += day.OutputTokens
		totalSaved += day.SavedTokens
	}

	fmt.Fprintln(w, strings.Repeat("─", 64))
	fmt.Fprintf(w, "%-12s %7d %10s %10s %10s %6.1f%%\n",
		"TOTAL", totalCmds,
		FormatTokens(totalInput),
		FormatTokens(totalOutput),
		FormatTokens(totalSaved),
		pooledPct(totalSaved, totalInput))
	fmt.Fprintln(w)
}

// WeeklyTable writes the per-week breakdown with a pooled TOTAL row.
// Week columns show the Sunday-ending range as MM-DD → MM-DD.
func WeeklyTable(w io.Writer, weeks []models.WeekStats) {
	if len(weeks) == 0 {
		fmt.Fprintln(w, "No weekly data available.")
		return
	}

	fmt.Fprintf(w, "\n📊 Weekly Breakdown (%d weeks)\n", len(weeks))
	fmt.Fprintln(w, strings.Repeat("═", 72))
	fmt.Fprintf(w, "%-22s %7s %10s %10s %10s %7s\n", "Week", "Cmds", "Input", "Output", "Saved", "Save%")
	fmt.Fprintln(w, strings.Repeat("─", 72))

	var totalCmds int
	var totalInput, totalOutput, totalSaved int64
	for _, week := range weeks {
		rangeLabel := shortDate(week.WeekStart) + " → " + shortDate(week.WeekEnd)
		fmt.Fprintf(w, "%-22s %7d %10s %10s %10s %6.1f%%\n",
			rangeLabel, week.Commands,
			FormatTokens(week.InputTokens),
			FormatTokens(week.OutputTokens),
			FormatTokens(week.SavedTokens),
			week.SavingsPct)
		totalCmds += week.Commands
		totalInput += week.InputTokens
		totalOutput += week.OutputTokens
		totalSaved += week.SavedTokens
	}

	fmt.Fprintln(w, strings.Repeat("─", 72))
	fmt.Fprintf(w, "%-22s %7d %10s %10s %10s %6.1f%%\n",
		"TOTAL", totalCmds,
		FormatTokens(totalInput),
		FormatTokens(totalOutput),
		FormatTokens(totalSaved),
		pooledPct(totalSaved, totalInput))
	fmt.Fprintln(w)
}

// MonthlyTable writes the per-month breakdown with a pooled TOTAL row.
func MonthlyTable(w io.Writer, months []models.MonthStats) {
	if len(months) == 0 {
		fmt.Fprintln(w, "No monthly data available.")
		return
	}

	fmt.Fprintf(w, "\n📆 Monthly Breakdown (%d months)\n", len(months))
	fmt.Fprintln(w, strings.Repeat("═", 64))
	fmt.Fprintf(w, "%-10s %7s %10s %10s %10s %7s\n", "Month", "Cmds", "Input", "Output", "Saved", "Save%")
	fmt.Fprintln(w, strings.Repeat("─", 64))

	var totalCmds int
	var totalInput, totalOutput, totalSaved int64
	for _, month := range months {
		fmt.Fprintf(w, "%-10s %7d %10s %10s %10s %6.1f%%\n",
			month.Month, month.Commands,
			FormatTokens(month.InputTokens),
			FormatTokens(month.OutputTokens),
			FormatTokens(month.SavedTokens),
			month.SavingsPct)
		totalCmds += month.Commands
		totalInput += month.InputTokens
		totalOutput += month.OutputTokens
		totalSaved += month.SavedTokens
	}

	fmt.Fprintln(w, strings.Repeat("─", 64))
	fmt.Fprintf(w, "%-10s %7d %10s %10s %10s %6.1f%%\n",
		"TOTAL", totalCmds,
		FormatTokens(totalInput),
		FormatTokens(totalOutput),
		FormatTokens(totalSaved),
		pooledPct(totalSaved, totalInput))
	fmt.Fprintln(w)
}

// pooledPct computes the savings percentage from pooled token sums.
func pooledPct(saved, input int64) float64 {
	if input <= 0 {
		return 0
	}
	return float64(saved) / float64(input) * 100.0
}
