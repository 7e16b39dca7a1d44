package cli

import (
	"path/filepath"
	"testing"

	"github.com/d-kovas/rtk-gain/internal/config"
	"github.com/d-kovas/rtk-gain/internal/db"
)

func newTestCLI(t *testing.T) *CLI {
	t.Helper()

	return &CLI{cfg: &config.Config{
		DatabasePath: filepath.Join(t.TempDir(), "history.db"),
	}}
}

func readAll(t *testing.T, cli *CLI) []int {
	t.Helper()

	database, err := db.New(cli.cfg.DatabasePath)
	if err != nil {
		t.Fatalf("db.New() failed: %v", err)
	}
	defer func() {
		_ = database.Close()
	}()

	records, err := database.GetAllRecords()
	if err != nil {
		t.Fatalf("GetAllRecords() failed: %v", err)
	}

	saved := make([]int, len(records))
	for i, rec := range records {
		saved[i] = rec.SavedTokens
	}
	return saved
}

func TestTrackCmd_Tokens(t *testing.T) {
	cli := newTestCLI(t)

	cmd := &TrackCmd{
		Original:     "git diff",
		Rtk:          "rtk git diff",
		InputTokens:  100,
		OutputTokens: 40,
	}
	if err := cmd.Run(cli); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	saved := readAll(t, cli)
	if len(saved) != 1 || saved[0] != 60 {
		t.Errorf("saved tokens = %v, want [60]", saved)
	}
}

func TestTrackCmd_EstimatesFromText(t *testing.T) {
	cli := newTestCLI(t)

	// Token counts unset, as kong leaves them at the -1 default.
	cmd := &TrackCmd{
		Original:     "git diff",
		Rtk:          "rtk git diff",
		InputTokens:  -1,
		OutputTokens: -1,
		Input:        "aaaabbbb",
		Output:       "cccc",
	}
	if err := cmd.Run(cli); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	saved := readAll(t, cli)
	if len(saved) != 1 || saved[0] != 1 {
		t.Errorf("saved tokens = %v, want [1]", saved)
	}
}

func TestTrackCmd_PartialTokens(t *testing.T) {
	cli := newTestCLI(t)

	cmd := &TrackCmd{
		Original:     "git diff",
		Rtk:          "rtk git diff",
		InputTokens:  50,
		OutputTokens: -1,
	}
	if err := cmd.Run(cli); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	saved := readAll(t, cli)
	if len(saved) != 1 || saved[0] != 50 {
		t.Errorf("saved tokens = %v, want [50]", saved)
	}
}

func TestTrackCmd_NeverFails(t *testing.T) {
	cli := &CLI{cfg: &config.Config{DatabasePath: "/dev/null/nope/history.db"}}

	cmd := &TrackCmd{Original: "x", Rtk: "y", InputTokens: 1}
	if err := cmd.Run(cli); err != nil {
		t.Errorf("Run() = %v, want nil on a broken store", err)
	}
}
