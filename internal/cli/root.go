// Package cli defines the rtk-gain command tree.
package cli

import (
	"github.com/alecthomas/kong"

	"github.com/d-kovas/rtk-gain/internal/config"
	"github.com/d-kovas/rtk-gain/internal/logger"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version kong.VersionFlag `help:"Show version information"`
	DB      string           `help:"History database path (overrides RTK_DB_PATH)" name:"db" placeholder:"PATH"`
	Verbose int              `help:"Enable debug logging" short:"v" type:"counter"`

	Gain      GainCmd      `cmd:"" help:"Show the token savings report (default)" default:"1"`
	Track     TrackCmd     `cmd:"track" help:"Record one tracked command invocation"`
	Compact   CompactCmd   `cmd:"compact" help:"One-line savings summary for shell prompts"`
	Dashboard DashboardCmd `cmd:"dashboard" help:"Live savings dashboard TUI"`

	cfg *config.Config `kong:"-"`
}

// AfterApply loads the configuration after parsing and applies the
// --db and verbosity overrides.
func (c *CLI) AfterApply() error {
	if c.Verbose > 0 {
		logger.SetDebug()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if c.DB != "" {
		cfg.DatabasePath = c.DB
	}

	c.cfg = cfg
	return nil
}

// Config exposes the loaded configuration to command Run methods.
func (c *CLI) Config() *config.Config {
	return c.cfg
}
