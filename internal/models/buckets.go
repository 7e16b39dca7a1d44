// Package models defines data structures and domain types.
package models

// DayStats aggregates all commands recorded on one calendar day (UTC).
type DayStats struct {
	Date         string  `json:"date"`
	Commands     int     `json:"commands"`
	InputTokens  int64   `json:"input_tokens"`
	OutputTokens int64   `json:"output_tokens"`
	SavedTokens  int64   `json:"saved_tokens"`
	SavingsPct   float64 `json:"savings_pct"`
}

// WeekStats aggregates commands over a trailing seven-day window.
//
// Windows end on Sunday: WeekEnd is the first Sunday on or after each
// record's date and WeekStart is the Monday six days before it. These are
// not ISO weeks.
type WeekStats struct {
	WeekStart    string  `json:"week_start"`
	WeekEnd      string  `json:"week_end"`
	Commands     int     `json:"commands"`
	InputTokens  int64   `json:"input_tokens"`
	OutputTokens int64   `json:"output_tokens"`
	SavedTokens  int64   `json:"saved_tokens"`
	SavingsPct   float64 `json:"savings_pct"`
}

// MonthStats aggregates commands over one calendar month.
type MonthStats struct {
	Month        string  `json:"month"`
	Commands     int     `json:"commands"`
	InputTokens  int64   `json:"input_tokens"`
	OutputTokens int64   `json:"output_tokens"`
	SavedTokens  int64   `json:"saved_tokens"`
	SavingsPct   float64 `json:"savings_pct"`
}
