// Package render writes the gain report views as plain text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/d-kovas/rtk-gain/internal/models"
	"github.com/d-kovas/rtk-gain/internal/services/quota"
)

// FormatTokens renders a token count compactly (1.5M, 2.3K, 999).
func FormatTokens(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000.0)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000.0)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// truncate shortens s to keep bytes plus an ellipsis when it exceeds max bytes.
func truncate(s string, max, keep int) string {
	if len(s) > max {
		return s[:keep] + "..."
	}
	return s
}

// shortDate strips the year from a YYYY-MM-DD date, leaving MM-DD.
func shortDate(date string) string {
	if len(date) >= 10 {
		return date[5:10]
	}
	return date
}

// Empty writes the placeholder shown before any commands have been tracked.
func Empty(w io.Writer) {
	fmt.Fprintln(w, "No tracking data yet.")
	fmt.Fprintln(w, "Run some rtk commands to start tracking savings.")
}

// Summary writes the lifetime totals followed by the per-command ranking.
func Summary(w io.Writer, s *models.GainSummary) {
	fmt.Fprintln(w, "📊 RTK Token Savings")
	fmt.Fprintln(w, strings.Repeat("═", 40))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Total commands:    %d\n", s.TotalCommands)
	fmt.Fprintf(w, "Input tokens:      %s\n", FormatTokens(s.TotalInput))
	fmt.Fprintf(w, "Output tokens:     %s\n", FormatTokens(s.TotalOutput))
	fmt.Fprintf(w, "Tokens saved:      %s (%.1f%%)\n", FormatTokens(s.TotalSaved), s.AvgSavingsPct)
	fmt.Fprintln(w)

	if len(s.ByCommand) > 0 {
		fmt.Fprintln(w, "By Command:")
		fmt.Fprintln(w, strings.Repeat("─", 40))
		fmt.Fprintf(w, "%-20s %6s %10s %8s\n", "Command", "Count", "Saved", "Avg%")
		for _, c := range s.ByCommand {
			fmt.Fprintf(w, "%-20s %6d %10s %7.1f%%\n",
				truncate(c.Command, 18, 15), c.Count, FormatTokens(c.SavedTokens), c.AvgPct)
		}
		fmt.Fprintln(w)
	}
}

// DailyGraph writes one bar per day, scaled against the busiest day.
func DailyGraph(w io.Writer, series []models.DailySaving) {
	if len(series) == 0 {
		return
	}

	fmt.Fprintln(w, "Daily Savings (last 30 days):")
	fmt.Fprintln(w, strings.Repeat("─", 40))

	const width = 40
	var maxVal int64
	for _, d := range series {
		if d.SavedTokens > maxVal {
			maxVal = d.SavedTokens
		}
	}

	for _, d := range series {
		barLen := 0
		if maxVal > 0 {
			barLen = int(float64(d.SavedTokens) / float64(maxVal) * width)
		}
		fmt.Fprintf(w, "%s │%s%s %s\n",
			shortDate(d.Date),
			strings.Repeat("█", barLen),
			strings.Repeat(" ", width-barLen),
			FormatTokens(d.SavedTokens))
	}
	fmt.Fprintln(w)
}

// History writes one line per recent command, newest first.
func History(w io.Writer, records []models.CommandRecord) {
	if len(records) == 0 {
		return
	}

	fmt.Fprintln(w, "Recent Commands:")
	fmt.Fprintln(w, strings.Repeat("─", 40))
	for _, rec := range records {
		fmt.Fprintf(w, "%s %-25s -%.0f%% (%s)\n",
			rec.Timestamp.Format("01-02 15:04"),
			truncate(rec.RtkCmd, 25, 22),
			rec.SavingsPct,
			FormatTokens(int64(rec.SavedTokens)))
	}
	fmt.Fprintln(w)
}

// Quota writes how much of a subscription tier's monthly allowance the
// tracked savings preserved.
func Quota(w io.Writer, est quota.Estimate) {
	fmt.Fprintln(w, "Monthly Quota Analysis:")
	fmt.Fprintln(w, strings.Repeat("─", 40))
	fmt.Fprintf(w, "Subscription tier:        %s\n", est.Tier.DisplayName())
	fmt.Fprintf(w, "Estimated monthly quota:  %s\n", FormatTokens(est.MonthlyTokens))
	fmt.Fprintf(w, "Tokens saved (lifetime):  %s\n", FormatTokens(est.SavedTokens))
	fmt.Fprintf(w, "Quota preserved:          %.1f%%\n", est.PreservedPct)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Note: Heuristic estimate based on ~44K tokens/5h (Pro baseline)")
	fmt.Fprintln(w, "      Actual limits use rolling 5-hour windows, not monthly caps.")
}

// Compact writes the one-line summary used by shell prompts.
func Compact(w io.Writer, s *models.GainSummary) {
	if !s.HasData() {
		fmt.Fprintln(w, "0 cmds tracked")
		return
	}
	fmt.Fprintf(w, "%dcmds %sin %sout %ssaved (%.0f%%)\n",
		s.TotalCommands,
		FormatTokens(s.TotalInput),
		FormatTokens(s.TotalOutput),
		FormatTokens(s.TotalSaved),
		s.AvgSavingsPct)
}
