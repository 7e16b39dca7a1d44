package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/d-kovas/rtk-gain/internal/app"
	"github.com/d-kovas/rtk-gain/internal/services"
	"github.com/d-kovas/rtk-gain/internal/ui/tabs/breakdown"
	"github.com/d-kovas/rtk-gain/internal/ui/tabs/history"
	"github.com/d-kovas/rtk-gain/internal/ui/tabs/overview"
)

// DashboardCmd starts the live savings dashboard TUI.
type DashboardCmd struct{}

// Run executes the dashboard command
func (d *DashboardCmd) Run(cli *CLI) error {
	// Initialize the service manager; this starts the store monitor so
	// the dashboard refreshes when other rtk processes record commands.
	svcManager, err := services.NewManager(cli.cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	// Ensure cleanup on exit
	defer func() {
		if closeErr := svcManager.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: error closing services: %v\n", closeErr)
		}
	}()

	// Create the root Bubble Tea model and its tabs. Each tab receives
	// the shared application state for consistent data access.
	model := app.NewModel(svcManager)

	state := model.GetState()
	tabs := []app.Tab{
		overview.New(state),
		breakdown.New(state),
		history.New(state),
	}
	model.SetTabs(tabs)

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer (full terminal)
		tea.WithMouseCellMotion(), // Enable mouse support for selection
	)

	go func() {
		<-sigChan
		p.Send(tea.Quit())
	}()

	// This blocks until the user quits or an error occurs
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
