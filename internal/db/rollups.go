package db

import (
	"context"

	"github.com/d-kovas/rtk-gain/internal/models"
)

// GetCommandRanking returns the top commands by total tokens saved. Ties are
// broken by command name so the ordering is stable across runs.
func (db *DB) GetCommandRanking(limit int) ([]models.CommandStats, error) {
	query := `
		SELECT rtk_cmd,
			   COUNT(*) as count,
			   COALESCE(SUM(saved_tokens), 0) as total_saved,
			   COALESCE(AVG(savings_pct), 0) as avg_pct
		FROM commands
		GROUP BY rtk_cmd
		ORDER BY total_saved DESC, rtk_cmd ASC
		LIMIT ?
	`

	rows, err := db.QueryContext(context.Background(), query, limit)
	if err != nil {
		return nil, &QueryError{Op: "query command ranking", Err: err}
	}
	defer func() { _ = rows.Close() }()

	var stats []models.CommandStats
	for rows.Next() {
		var s models.CommandStats
		if err := rows.Scan(&s.Command, &s.Count, &s.SavedTokens, &s.AvgPct); err != nil {
			return nil, &QueryError{Op: "scan command ranking", Err: err}
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, &QueryError{Op: "iterate command ranking", Err: err}
	}
	return stats, nil
}

// GetDailySavings returns saved-token sums for the most recent days with
// activity, oldest first.
func (db *DB) GetDailySavings(limit int) ([]models.DailySaving, error) {
	query := `
		SELECT DATE(timestamp) as day,
			   COALESCE(SUM(saved_tokens), 0) as saved
		FROM commands
		GROUP BY day
		ORDER BY day DESC
		LIMIT ?
	`

	rows, err := db.QueryContext(context.Background(), query, limit)
	if err != nil {
		return nil, &QueryError{Op: "query daily savings", Err: err}
	}
	defer func() { _ = rows.Close() }()

	var series []models.DailySaving
	for rows.Next() {
		var d models.DailySaving
		if err := rows.Scan(&d.Date, &d.SavedTokens); err != nil {
			return nil, &QueryError{Op: "scan daily savings", Err: err}
		}
		series = append(series, d)
	}

	if err := rows.Err(); err != nil {
		return nil, &QueryError{Op: "iterate daily savings", Err: err}
	}

	// Reverse to chronological order
	for i, j := 0, len(series)-1; i < j; i, j = i+1, j-1 {
		series[i], series[j] = series[j], series[i]
	}
	return series, nil
}

// GetDailyBreakdown returns full per-day aggregates for every day on record,
// oldest first.
func (db *DB) GetDailyBreakdown() ([]models.DayStats, error) {
	query := `
		SELECT DATE(timestamp) as day,
			   COUNT(*) as count,
			   COALESCE(SUM(input_tokens), 0) as total_input,
			   COALESCE(SUM(output_tokens), 0) as total_output,
			   COALESCE(SUM(saved_tokens), 0) as total_saved
		FROM commands
		GROUP BY day
		ORDER BY day DESC
	`

	rows, err := db.QueryContext(context.Background(), query)
	if err != nil {
		return nil, &QueryError{Op: "query daily breakdown", Err: err}
	}
	defer func() { _ = rows.Close() }()

	var stats []models.DayStats
	for rows.Next() {
		var s models.DayStats
		if err := rows.Scan(&s.Date, &s.Commands, &s.InputTokens, &s.OutputTokens, &s.SavedTokens); err != nil {
			return nil, &QueryError{Op: "scan daily breakdown", Err: err}
		}
		s.SavingsPct = pooledPct(s.SavedTokens, s.InputTokens)
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, &QueryError{Op: "iterate daily breakdown", Err: err}
	}

	// Reverse to chronological order
	for i, j := 0, len(stats)-1; i < j; i, j = i+1, j-1 {
		stats[i], stats[j] = stats[j], stats[i]
	}
	return stats, nil
}

// GetWeeklyBreakdown returns per-week aggregates, oldest first.
//
// A week here is the trailing seven-day window ending on Sunday: SQLite's
// 'weekday 0' modifier advances each timestamp to the next Sunday (leaving
// Sundays in place), and '-6 days' from that Sunday marks the window start.
// These windows are not ISO weeks, which start on Monday.
func (db *DB) GetWeeklyBreakdown() ([]models.WeekStats, error) {
	query := `
		SELECT DATE(timestamp, 'weekday 0', '-6 days') as week_start,
			   DATE(timestamp, 'weekday 0') as week_end,
			   COUNT(*) as count,
			   COALESCE(SUM(input_tokens), 0) as total_input,
			   COALESCE(SUM(output_tokens), 0) as total_output,
			   COALESCE(SUM(saved_tokens), 0) as total_saved
		FROM commands
		GROUP BY week_start
		ORDER BY week_start DESC
	`

	rows, err := db.QueryContext(context.Background(), query)
	if err != nil {
		return nil, &QueryError{Op: "query weekly breakdown", Err: err}
	}
	defer func() { _ = rows.Close() }()

	var stats []models.WeekStats
	for rows.Next() {
		var s models.WeekStats
		if err := rows.Scan(&s.WeekStart, &s.WeekEnd, &s.Commands, &s.InputTokens, &s.OutputTokens, &s.SavedTokens); err != nil {
			return nil, &QueryError{Op: "scan weekly breakdown", Err: err}
		}
		s.SavingsPct = pooledPct(s.SavedTokens, s.InputTokens)
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, &QueryError{Op: "iterate weekly breakdown", Err: err}
	}

	// Reverse to chronological order
	for i, j := 0, len(stats)-1; i < j; i, j = i+1, j-1 {
		stats[i], stats[j] = stats[j], stats[i]
	}
	return stats, nil
}

// GetMonthlyBreakdown returns per-month aggregates, oldest first.
func (db *DB) GetMonthlyBreakdown() ([]models.MonthStats, error) {
	query := `
		SELECT strftime('%Y-%m', timestamp) as month,
			   COUNT(*) as count,
			   COALESCE(SUM(input_tokens), 0) as total_input,
			   COALESCE(SUM(output_tokens), 0) as total_output,
			   COALESCE(SUM(saved_tokens), 0) as total_saved
		FROM commands
		GROUP BY month
		ORDER BY month DESC
	`

	rows, err := db.QueryContext(context.Background(), query)
	if err != nil {
		return nil, &QueryError{Op: "query monthly breakdown", Err: err}
	}
	defer func() { _ = rows.Close() }()

	var stats []models.MonthStats
	for rows.Next() {
		var s models.MonthStats
		if err := rows.Scan(&s.Month, &s.Commands, &s.InputTokens, &s.OutputTokens, &s.SavedTokens); err != nil {
			return nil, &QueryError{Op: "scan monthly breakdown", Err: err}
		}
		s.SavingsPct = pooledPct(s.SavedTokens, s.InputTokens)
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, &QueryError{Op: "iterate monthly breakdown", Err: err}
	}

	// Reverse to chronological order
	for i, j := 0, len(stats)-1; i < j; i, j = i+1, j-1 {
		stats[i], stats[j] = stats[j], stats[i]
	}
	return stats, nil
}

// pooledPct computes saved tokens as a percentage of input tokens.
func pooledPct(saved, input int64) float64 {
	if input <= 0 {
		return 0
	}
	return float64(saved) / float64(input) * 100.0
}
