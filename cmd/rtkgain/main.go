// Package main is the entry point for the rtk-gain CLI.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/d-kovas/rtk-gain/internal/cli"
	"github.com/d-kovas/rtk-gain/internal/version"
)

// Tagline is used in help text and documentation.
const Tagline = "Token savings reports for rtk-filtered command output"

func main() {
	var root cli.CLI
	ctx := kong.Parse(&root,
		kong.Name("rtk-gain"),
		kong.Description(Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&root),
	)

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
