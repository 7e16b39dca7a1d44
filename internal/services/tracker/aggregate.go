package tracker

import (
	"github.com/d-kovas/rtk-gain/internal/models"
)

const (
	// rankingSize caps the by-command table.
	rankingSize = 10
	// seriesDays caps the recent daily savings series.
	seriesDays = 30
)

// Summary aggregates the whole store: lifetime totals from a full scan plus
// the by-command ranking and the recent daily series.
//
// The lifetime percentage is pooled (total saved over total input), which
// weights every token equally. The per-command figures in ByCommand are
// means of per-record percentages, so the two disagree whenever commands
// differ in size.
func (t *Tracker) Summary() (*models.GainSummary, error) {
	records, err := t.db.GetAllRecords()
	if err != nil {
		return nil, err
	}

	summary := &models.GainSummary{}
	for _, rec := range records {
		summary.TotalCommands++
		summary.TotalInput += int64(rec.InputTokens)
		summary.TotalOutput += int64(rec.OutputTokens)
		summary.TotalSaved += int64(rec.SavedTokens)
	}
	if summary.TotalInput > 0 {
		summary.AvgSavingsPct = float64(summary.TotalSaved) / float64(summary.TotalInput) * 100.0
	}

	summary.ByCommand, err = t.db.GetCommandRanking(rankingSize)
	if err != nil {
		return nil, err
	}

	summary.ByDay, err = t.db.GetDailySavings(seriesDays)
	if err != nil {
		return nil, err
	}

	return summary, nil
}

// AllDays returns the full per-day breakdown, oldest first.
func (t *Tracker) AllDays() ([]models.DayStats, error) {
	return t.db.GetDailyBreakdown()
}

// ByWeek returns per-week aggregates, oldest first. Weeks are trailing
// seven-day windows ending on Sunday, not ISO weeks.
func (t *Tracker) ByWeek() ([]models.WeekStats, error) {
	return t.db.GetWeeklyBreakdown()
}

// ByMonth returns per-month aggregates, oldest first.
func (t *Tracker) ByMonth() ([]models.MonthStats, error) {
	return t.db.GetMonthlyBreakdown()
}
