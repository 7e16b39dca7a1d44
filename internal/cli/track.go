package cli

import (
	"github.com/d-kovas/rtk-gain/internal/db"
	"github.com/d-kovas/rtk-gain/internal/logger"
	"github.com/d-kovas/rtk-gain/internal/services/tracker"
)

// TrackCmd records one command invocation. Tracking never fails the
// caller: any storage problem is logged and swallowed, and the command
// exits zero.
type TrackCmd struct {
	Original     string `help:"Original command line" required:""`
	Rtk          string `help:"Equivalent rtk command line" required:""`
	InputTokens  int    `help:"Token count of the original output" default:"-1"`
	OutputTokens int    `help:"Token count of the rtk output" default:"-1"`
	Input        string `help:"Raw original output, tokens estimated from its length"`
	Output       string `help:"Raw rtk output, tokens estimated from its length"`
}

// Run executes the track command
func (t *TrackCmd) Run(cli *CLI) error {
	database, err := db.New(cli.cfg.DatabasePath)
	if err != nil {
		logger.Debug("tracking skipped", "rtk_cmd", t.Rtk, "error", err)
		return nil
	}
	defer func() {
		_ = database.Close()
	}()

	tr := tracker.New(database)

	if t.InputTokens >= 0 || t.OutputTokens >= 0 {
		in, out := t.InputTokens, t.OutputTokens
		if in < 0 {
			in = 0
		}
		if out < 0 {
			out = 0
		}
		tr.TrackTokens(t.Original, t.Rtk, in, out)
		return nil
	}

	tr.TrackCommand(t.Original, t.Rtk, t.Input, t.Output)
	return nil
}
