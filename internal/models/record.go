// Package models defines data structures and domain types.
package models

import "time"

// CommandRecord represents one tracked rtk invocation and its token savings.
type CommandRecord struct {
	Timestamp    time.Time
	OriginalCmd  string
	RtkCmd       string
	ID           int64
	InputTokens  int
	OutputTokens int
	SavedTokens  int
	SavingsPct   float64
}

// NewCommandRecord builds a record for the given token counts, stamping the
// current UTC time and deriving SavedTokens and SavingsPct. Saved tokens
// never go below zero; a command with zero input tokens counts as 0% saved.
func NewCommandRecord(originalCmd, rtkCmd string, inputTokens, outputTokens int) CommandRecord {
	saved := inputTokens - outputTokens
	if saved < 0 {
		saved = 0
	}
	pct := 0.0
	if inputTokens > 0 {
		pct = float64(saved) / float64(inputTokens) * 100.0
	}
	return CommandRecord{
		Timestamp:    time.Now().UTC(),
		OriginalCmd:  originalCmd,
		RtkCmd:       rtkCmd,
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		SavedTokens:  saved,
		SavingsPct:   pct,
	}
}
