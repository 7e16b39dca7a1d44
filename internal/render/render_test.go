package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/d-kovas/rtk-gain/internal/models"
	"github.com/d-kovas/rtk-gain/internal/services/quota"
)

func TestFormatTokens(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want string
	}{
		{"zero", 0, "0"},
		{"small", 999, "999"},
		{"thousand", 1000, "1.0K"},
		{"thousands", 2340, "2.3K"},
		{"rounds up to next unit", 999999, "1000.0K"},
		{"million", 1_000_000, "1.0M"},
		{"millions", 1_500_000, "1.5M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTokens(tt.n); got != tt.want {
				t.Errorf("FormatTokens(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		s    string
		max  int
		keep int
		want string
	}{
		{"short stays", "rtk git status", 18, 15, "rtk git status"},
		{"at limit stays", "abcdefghijklmnopqr", 18, 15, "abcdefghijklmnopqr"},
		{"over limit cut", "abcdefghijklmnopqrs", 18, 15, "abcdefghijklmno..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.s, tt.max, tt.keep); got != tt.want {
				t.Errorf("truncate(%q, %d, %d) = %q, want %q", tt.s, tt.max, tt.keep, got, tt.want)
			}
		})
	}
}

func TestShortDate(t *testing.T) {
	if got := shortDate("2024-01-15"); got != "01-15" {
		t.Errorf("shortDate(2024-01-15) = %q, want %q", got, "01-15")
	}
	if got := shortDate("bad"); got != "bad" {
		t.Errorf("shortDate(bad) = %q, want %q", got, "bad")
	}
}

func TestEmpty(t *testing.T) {
	var buf bytes.Buffer
	Empty(&buf)

	want := "No tracking data yet.\nRun some rtk commands to start tracking savings.\n"
	if buf.String() != want {
		t.Errorf("Empty() = %q, want %q", buf.String(), want)
	}
}

func TestSummary(t *testing.T) {
	s := &models.GainSummary{
		TotalCommands: 3,
		TotalInput:    1000,
		TotalOutput:   400,
		TotalSaved:    600,
		AvgSavingsPct: 60.0,
		ByCommand: []models.CommandStats{
			{Command: "rtk git diff", SavedTokens: 500, AvgPct: 50.0, Count: 2},
			{Command: "rtk ls", SavedTokens: 100, AvgPct: 80.0, Count: 1},
		},
	}

	var buf bytes.Buffer
	Summary(&buf, s)
	out := buf.String()

	for _, want := range []string{
		"📊 RTK Token Savings",
		"Total commands:    3",
		"Input tokens:      1.0K",
		"Output tokens:     400",
		"Tokens saved:      600 (60.0%)",
		"By Command:",
		"rtk git diff",
		"50.0%",
		"rtk ls",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary() output missing %q:\n%s", want, out)
		}
	}
}

func TestSummary_NoRanking(t *testing.T) {
	s := &models.GainSummary{TotalCommands: 1, TotalInput: 10, TotalSaved: 5, AvgSavingsPct: 50.0}

	var buf bytes.Buffer
	Summary(&buf, s)

	if strings.Contains(buf.String(), "By Command:") {
		t.Errorf("Summary() printed an empty ranking section:\n%s", buf.String())
	}
}

func TestSummary_TruncatesLongCommands(t *testing.T) {
	s := &models.GainSummary{
		TotalCommands: 1,
		ByCommand: []models.CommandStats{
			{Command: "rtk some-very-long-subcommand", SavedTokens: 10, Count: 1},
		},
	}

	var buf bytes.Buffer
	Summary(&buf, s)

	if !strings.Contains(buf.String(), "rtk some-very-l...") {
		t.Errorf("Summary() did not truncate long command:\n%s", buf.String())
	}
}

func TestDailyGraph(t *testing.T) {
	series := []models.DailySaving{
		{Date: "2024-01-15", SavedTokens: 100},
		{Date: "2024-01-16", SavedTokens: 50},
	}

	var buf bytes.Buffer
	DailyGraph(&buf, series)
	out := buf.String()

	if !strings.Contains(out, "Daily Savings (last 30 days):") {
		t.Fatalf("DailyGraph() missing header:\n%s", out)
	}

	var barLines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "│") {
			barLines = append(barLines, line)
		}
	}
	if len(barLines) != 2 {
		t.Fatalf("DailyGraph() wrote %d bar lines, want 2", len(barLines))
	}
	if got := strings.Count(barLines[0], "█"); got != 40 {
		t.Errorf("max-value bar length = %d, want 40", got)
	}
	if got := strings.Count(barLines[1], "█"); got != 20 {
		t.Errorf("half-value bar length = %d, want 20", got)
	}
	if !strings.HasPrefix(barLines[0], "01-15 │") {
		t.Errorf("bar line = %q, want 01-15 prefix", barLines[0])
	}
}

func TestDailyGraph_AllZero(t *testing.T) {
	series := []models.DailySaving{{Date: "2024-01-15", SavedTokens: 0}}

	var buf bytes.Buffer
	DailyGraph(&buf, series)

	if strings.Contains(buf.String(), "█") {
		t.Errorf("DailyGraph() drew bars for zero savings:\n%s", buf.String())
	}
}

func TestDailyGraph_Empty(t *testing.T) {
	var buf bytes.Buffer
	DailyGraph(&buf, nil)

	if buf.Len() != 0 {
		t.Errorf("DailyGraph(nil) wrote %q, want nothing", buf.String())
	}
}

func TestHistory(t *testing.T) {
	records := []models.CommandRecord{
		{
			Timestamp:    time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC),
			RtkCmd:       "rtk git status",
			SavedTokens:  1200,
			SavingsPct:   85.0,
			InputTokens:  1400,
			OutputTokens: 200,
		},
	}

	var buf bytes.Buffer
	History(&buf, records)
	out := buf.String()

	for _, want := range []string{
		"Recent Commands:",
		"01-15 14:30 rtk git status",
		"-85% (1.2K)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("History() output missing %q:\n%s", want, out)
		}
	}
}

func TestHistory_Empty(t *testing.T) {
	var buf bytes.Buffer
	History(&buf, nil)

	if buf.Len() != 0 {
		t.Errorf("History(nil) wrote %q, want nothing", buf.String())
	}
}

func TestQuota(t *testing.T) {
	est := quota.Estimate{
		Tier:          quota.TierPro,
		MonthlyTokens: 6_000_000,
		SavedTokens:   3_000_000,
		PreservedPct:  50.0,
	}

	var buf bytes.Buffer
	Quota(&buf, est)
	out := buf.String()

	for _, want := range []string{
		"Monthly Quota Analysis:",
		"Subscription tier:        Pro ($20/mo)",
		"Estimated monthly quota:  6.0M",
		"Tokens saved (lifetime):  3.0M",
		"Quota preserved:          50.0%",
		"Note: Heuristic estimate based on ~44K tokens/5h (Pro baseline)",
		"rolling 5-hour windows",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Quota() output missing %q:\n%s", want, out)
		}
	}
}

func TestCompact(t *testing.T) {
	s := &models.GainSummary{
		TotalCommands: 42,
		TotalInput:    1_500_000,
		TotalOutput:   600_000,
		TotalSaved:    900_000,
		AvgSavingsPct: 60.0,
	}

	var buf bytes.Buffer
	Compact(&buf, s)

	want := "42cmds 1.5Min 600.0Kout 900.0Ksaved (60%)\n"
	if buf.String() != want {
		t.Errorf("Compact() = %q, want %q", buf.String(), want)
	}
}

func TestCompact_Empty(t *testing.T) {
	var buf bytes.Buffer
	Compact(&buf, &models.GainSummary{})

	if buf.String() != "0 cmds tracked\n" {
		t.Errorf("Compact() = %q, want %q", buf.String(), "0 cmds tracked\n")
	}
}
