// Package models defines data structures and domain types.
package models

// GainSummary aggregates every tracked command into lifetime totals.
//
// AvgSavingsPct is pooled: total saved over total input. That weights every
// token equally, so it usually differs from the mean of per-record
// percentages (and from the per-command averages in ByCommand).
type GainSummary struct {
	ByCommand     []CommandStats
	ByDay         []DailySaving
	TotalInput    int64
	TotalOutput   int64
	TotalSaved    int64
	AvgSavingsPct float64
	TotalCommands int
}

// HasData returns true if at least one command has been tracked.
func (s *GainSummary) HasData() bool {
	return s.TotalCommands > 0
}

// CommandStats summarizes savings for a single rtk command.
type CommandStats struct {
	Command     string
	SavedTokens int64
	AvgPct      float64
	Count       int
}

// DailySaving is one point in the recent daily savings series.
type DailySaving struct {
	Date        string
	SavedTokens int64
}
