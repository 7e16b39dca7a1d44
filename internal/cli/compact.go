package cli

import (
	"os"

	"github.com/d-kovas/rtk-gain/internal/db"
	"github.com/d-kovas/rtk-gain/internal/render"
	"github.com/d-kovas/rtk-gain/internal/services/tracker"
)

// CompactCmd prints the one-line savings summary for shell prompts.
type CompactCmd struct{}

// Run executes the compact command
func (c *CompactCmd) Run(cli *CLI) error {
	database, err := db.New(cli.cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer func() {
		_ = database.Close()
	}()

	summary, err := tracker.New(database).Summary()
	if err != nil {
		return err
	}

	render.Compact(os.Stdout, summary)
	return nil
}
