package cli

import (
	"os"

	"github.com/d-kovas/rtk-gain/internal/db"
	"github.com/d-kovas/rtk-gain/internal/export"
	"github.com/d-kovas/rtk-gain/internal/render"
	"github.com/d-kovas/rtk-gain/internal/services/quota"
	"github.com/d-kovas/rtk-gain/internal/services/tracker"
)

// historySize is how many recent commands the --history section shows.
const historySize = 10

// GainCmd prints the token savings report.
type GainCmd struct {
	Graph   bool   `help:"Show the daily savings graph" short:"g"`
	History bool   `help:"Show recent command history"`
	Quota   bool   `help:"Show the monthly quota analysis"`
	Tier    string `help:"Subscription tier for quota analysis" default:"pro" enum:"pro,5x,20x"`
	Daily   bool   `help:"Show the daily breakdown table"`
	Weekly  bool   `help:"Show the weekly breakdown table"`
	Monthly bool   `help:"Show the monthly breakdown table"`
	All     bool   `help:"Show every breakdown table"`
	Format  string `help:"Output format" default:"text" enum:"text,json,csv"`
}

// Run executes the gain command
func (g *GainCmd) Run(cli *CLI) error {
	database, err := db.New(cli.cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer func() {
		_ = database.Close()
	}()

	tr := tracker.New(database)

	// Exports run before the empty-store check so scripts always get a
	// well-formed document.
	switch g.Format {
	case "json":
		doc, err := export.Build(tr, g.sections())
		if err != nil {
			return err
		}
		return export.WriteJSON(os.Stdout, doc)

	case "csv":
		doc, err := export.Build(tr, g.sections())
		if err != nil {
			return err
		}
		export.WriteCSV(os.Stdout, doc)
		return nil
	}

	summary, err := tr.Summary()
	if err != nil {
		return err
	}

	if !summary.HasData() {
		render.Empty(os.Stdout)
		return nil
	}

	if !g.Daily && !g.Weekly && !g.Monthly && !g.All {
		render.Summary(os.Stdout, summary)

		if g.Graph {
			render.DailyGraph(os.Stdout, summary.ByDay)
		}

		if g.History {
			recent, err := tr.Recent(historySize)
			if err != nil {
				return err
			}
			render.History(os.Stdout, recent)
		}

		if g.Quota {
			// The flag wins when given; otherwise the configured tier.
			tier := g.Tier
			if tier == "pro" && cli.cfg.QuotaTier != "" {
				tier = cli.cfg.QuotaTier
			}
			render.Quota(os.Stdout, quota.EstimateFor(quota.ParseTier(tier), summary.TotalSaved))
		}

		return nil
	}

	if g.All || g.Daily {
		days, err := tr.AllDays()
		if err != nil {
			return err
		}
		render.DailyTable(os.Stdout, days)
	}

	if g.All || g.Weekly {
		weeks, err := tr.ByWeek()
		if err != nil {
			return err
		}
		render.WeeklyTable(os.Stdout, weeks)
	}

	if g.All || g.Monthly {
		months, err := tr.ByMonth()
		if err != nil {
			return err
		}
		render.MonthlyTable(os.Stdout, months)
	}

	return nil
}

// sections maps the breakdown flags onto export sections.
func (g *GainCmd) sections() export.Sections {
	return export.Sections{
		Daily:   g.Daily,
		Weekly:  g.Weekly,
		Monthly: g.Monthly,
		All:     g.All,
	}
}
