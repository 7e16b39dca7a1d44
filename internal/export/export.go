// Package export emits tracking data as JSON or CSV for scripts.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/d-kovas/rtk-gain/internal/models"
	"github.com/d-kovas/rtk-gain/internal/services/tracker"
)

// Sections selects which breakdowns an export includes. All overrides
// the individual flags.
type Sections struct {
	Daily   bool
	Weekly  bool
	Monthly bool
	All     bool
}

// Summary carries the lifetime totals in wire form.
type Summary struct {
	TotalCommands int     `json:"total_commands"`
	TotalInput    int64   `json:"total_input"`
	TotalOutput   int64   `json:"total_output"`
	TotalSaved    int64   `json:"total_saved"`
	AvgSavingsPct float64 `json:"avg_savings_pct"`
}

// Document is the export payload. Section fields are pointers so that
// an unrequested section is omitted entirely while a requested one with
// no rows still serializes as an empty array.
type Document struct {
	Summary Summary              `json:"summary"`
	Daily   *[]models.DayStats   `json:"daily,omitempty"`
	Weekly  *[]models.WeekStats  `json:"weekly,omitempty"`
	Monthly *[]models.MonthStats `json:"monthly,omitempty"`
}

// Build assembles the export payload for the requested sections.
func Build(tr *tracker.Tracker, sec Sections) (*Document, error) {
	summary, err := tr.Summary()
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Summary: Summary{
			TotalCommands: summary.TotalCommands,
			TotalInput:    summary.TotalInput,
			TotalOutput:   summary.TotalOutput,
			TotalSaved:    summary.TotalSaved,
			AvgSavingsPct: summary.AvgSavingsPct,
		},
	}

	if sec.All || sec.Daily {
		days, err := tr.AllDays()
		if err != nil {
			return nil, err
		}
		if days == nil {
			days = []models.DayStats{}
		}
		doc.Daily = &days
	}

	if sec.All || sec.Weekly {
		weeks, err := tr.ByWeek()
		if err != nil {
			return nil, err
		}
		if weeks == nil {
			weeks = []models.WeekStats{}
		}
		doc.Weekly = &weeks
	}

	if sec.All || sec.Monthly {
		months, err := tr.ByMonth()
		if err != nil {
			return nil, err
		}
		if months == nil {
			months = []models.MonthStats{}
		}
		doc.Monthly = &months
	}

	return doc, nil
}

// WriteJSON writes the document pretty-printed.
func WriteJSON(w io.Writer, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// WriteCSV writes each included section as a commented CSV block.
// Values are dates and numbers, so no cell ever needs quoting.
func WriteCSV(w io.Writer, doc *Document) {
	if doc.Daily != nil {
		fmt.Fprintln(w, "# Daily Data")
		fmt.Fprintln(w, "date,commands,input_tokens,output_tokens,saved_tokens,savings_pct")
		for _, day := range *doc.Daily {
			fmt.Fprintf(w, "%s,%d,%d,%d,%d,%.2f\n",
				day.Date, day.Commands, day.InputTokens,
				day.OutputTokens, day.SavedTokens, day.SavingsPct)
		}
		fmt.Fprintln(w)
	}

	if doc.Weekly != nil {
		fmt.Fprintln(w, "# Weekly Data")
		fmt.Fprintln(w, "week_start,week_end,commands,input_tokens,output_tokens,saved_tokens,savings_pct")
		for _, week := range *doc.Weekly {
			fmt.Fprintf(w, "%s,%s,%d,%d,%d,%d,%.2f\n",
				week.WeekStart, week.WeekEnd, week.Commands,
				week.InputTokens, week.OutputTokens,
				week.SavedTokens, week.SavingsPct)
		}
		fmt.Fprintln(w)
	}

	if doc.Monthly != nil {
		fmt.Fprintln(w, "# Monthly Data")
		fmt.Fprintln(w, "month,commands,input_tokens,output_tokens,saved_tokens,savings_pct")
		for _, month := range *doc.Monthly {
			fmt.Fprintf(w, "%s,%d,%d,%d,%d,%.2f\n",
				month.Month, month.Commands, month.InputTokens,
				month.OutputTokens, month.SavedTokens, month.SavingsPct)
		}
	}
}
