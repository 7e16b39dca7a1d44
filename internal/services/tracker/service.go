// Package tracker records rtk command invocations and answers aggregate
// questions about the tokens they saved.
package tracker

import (
	"math"

	"github.com/d-kovas/rtk-gain/internal/db"
	"github.com/d-kovas/rtk-gain/internal/logger"
	"github.com/d-kovas/rtk-gain/internal/models"
)

// Tracker is the public tracking API. All persistence goes through the
// database handle it is constructed with.
type Tracker struct {
	db *db.DB
}

// New returns a Tracker backed by the given database.
func New(database *db.DB) *Tracker {
	return &Tracker{db: database}
}

// EstimateTokens approximates the token count of text from its byte length,
// at roughly four bytes per token, rounding up.
func EstimateTokens(text string) int {
	return int(math.Ceil(float64(len(text)) / 4.0))
}

// Record derives savings for one command invocation and appends it to the
// store. The write also prunes records older than the retention window.
func (t *Tracker) Record(originalCmd, rtkCmd string, inputTokens, outputTokens int) error {
	rec := models.NewCommandRecord(originalCmd, rtkCmd, inputTokens, outputTokens)
	return t.db.AppendRecord(&rec)
}

// TrackCommand records a command given its raw input and output text.
// Tracking is best effort: storage failures are swallowed so they can never
// break the command being tracked.
func (t *Tracker) TrackCommand(originalCmd, rtkCmd, inputText, outputText string) {
	t.TrackTokens(originalCmd, rtkCmd, EstimateTokens(inputText), EstimateTokens(outputText))
}

// TrackTokens records a command given already-counted tokens. Best effort,
// like TrackCommand.
func (t *Tracker) TrackTokens(originalCmd, rtkCmd string, inputTokens, outputTokens int) {
	if err := t.Record(originalCmd, rtkCmd, inputTokens, outputTokens); err != nil {
		logger.Debug("tracking skipped", "rtk_cmd", rtkCmd, "error", err)
	}
}

// Recent returns the most recent records, newest first.
func (t *Tracker) Recent(limit int) ([]models.CommandRecord, error) {
	return t.db.GetRecentRecords(limit)
}
