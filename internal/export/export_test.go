package export

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/d-kovas/rtk-gain/internal/db"
	"github.com/d-kovas/rtk-gain/internal/models"
	"github.com/d-kovas/rtk-gain/internal/services/tracker"
)

func newTestTracker(t *testing.T) *tracker.Tracker {
	t.Helper()

	database, err := db.New(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("db.New() failed: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	return tracker.New(database)
}

func TestBuild(t *testing.T) {
	tr := newTestTracker(t)
	if err := tr.Record("git diff", "rtk git diff", 100, 40); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	if err := tr.Record("ls -la", "rtk ls", 50, 10); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}

	doc, err := Build(tr, Sections{})
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	if doc.Summary.TotalCommands != 2 {
		t.Errorf("TotalCommands = %d, want 2", doc.Summary.TotalCommands)
	}
	if doc.Summary.TotalSaved != 100 {
		t.Errorf("TotalSaved = %d, want 100", doc.Summary.TotalSaved)
	}
	if doc.Daily != nil || doc.Weekly != nil || doc.Monthly != nil {
		t.Error("Build() included sections that were not requested")
	}
}

func TestBuild_RequestedSections(t *testing.T) {
	tr := newTestTracker(t)
	if err := tr.Record("git diff", "rtk git diff", 100, 40); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}

	doc, err := Build(tr, Sections{Daily: true})
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	if doc.Daily == nil {
		t.Fatal("Build() omitted the requested daily section")
	}
	if len(*doc.Daily) != 1 {
		t.Fatalf("daily section has %d rows, want 1", len(*doc.Daily))
	}
	if (*doc.Daily)[0].SavedTokens != 60 {
		t.Errorf("daily saved = %d, want 60", (*doc.Daily)[0].SavedTokens)
	}
	if doc.Weekly != nil || doc.Monthly != nil {
		t.Error("Build() included sections that were not requested")
	}
}

func TestBuild_AllOverridesFlags(t *testing.T) {
	tr := newTestTracker(t)

	doc, err := Build(tr, Sections{All: true})
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	if doc.Daily == nil || doc.Weekly == nil || doc.Monthly == nil {
		t.Fatal("Build() with All did not include every section")
	}
}

func TestWriteJSON_EmptySectionsAreArrays(t *testing.T) {
	tr := newTestTracker(t)

	doc, err := Build(tr, Sections{All: true})
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, doc); err != nil {
		t.Fatalf("WriteJSON() failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{`"daily": []`, `"weekly": []`, `"monthly": []`} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteJSON() output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	days := []models.DayStats{
		{Date: "2024-01-15", Commands: 3, InputTokens: 1000, OutputTokens: 400, SavedTokens: 600, SavingsPct: 60.0},
	}
	doc := &Document{
		Summary: Summary{TotalCommands: 3, TotalInput: 1000, TotalOutput: 400, TotalSaved: 600, AvgSavingsPct: 60.0},
		Daily:   &days,
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, doc); err != nil {
		t.Fatalf("WriteJSON() failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`"total_commands": 3`,
		`"avg_savings_pct": 60`,
		`"date": "2024-01-15"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteJSON() output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, `"weekly"`) || strings.Contains(out, `"monthly"`) {
		t.Errorf("WriteJSON() serialized omitted sections:\n%s", out)
	}
}

func TestWriteCSV(t *testing.T) {
	days := []models.DayStats{
		{Date: "2024-01-15", Commands: 3, InputTokens: 1000, OutputTokens: 400, SavedTokens: 600, SavingsPct: 60.0},
	}
	weeks := []models.WeekStats{
		{WeekStart: "2024-01-08", WeekEnd: "2024-01-14", Commands: 3, InputTokens: 1000, OutputTokens: 400, SavedTokens: 600, SavingsPct: 60.0},
	}
	months := []models.MonthStats{
		{Month: "2024-01", Commands: 3, InputTokens: 1000, OutputTokens: 400, SavedTokens: 600, SavingsPct: 60.0},
	}
	doc := &Document{Daily: &days, Weekly: &weeks, Monthly: &months}

	var buf bytes.Buffer
	WriteCSV(&buf, doc)

	want := "# Daily Data\n" +
		"date,commands,input_tokens,output_tokens,saved_tokens,savings_pct\n" +
		"2024-01-15,3,1000,400,600,60.00\n" +
		"\n" +
		"# Weekly Data\n" +
		"week_start,week_end,commands,input_tokens,output_tokens,saved_tokens,savings_pct\n" +
		"2024-01-08,2024-01-14,3,1000,400,600,60.00\n" +
		"\n" +
		"# Monthly Data\n" +
		"month,commands,input_tokens,output_tokens,saved_tokens,savings_pct\n" +
		"2024-01,3,1000,400,600,60.00\n"
	if buf.String() != want {
		t.Errorf("WriteCSV() = %q, want %q", buf.String(), want)
	}
}

func TestWriteCSV_OnlyIncludedSections(t *testing.T) {
	months := []models.MonthStats{
		{Month: "2024-01", Commands: 1, InputTokens: 100, OutputTokens: 60, SavedTokens: 40, SavingsPct: 40.0},
	}
	doc := &Document{Monthly: &months}

	var buf bytes.Buffer
	WriteCSV(&buf, doc)
	out := buf.String()

	if strings.Contains(out, "# Daily Data") || strings.Contains(out, "# Weekly Data") {
		t.Errorf("WriteCSV() wrote omitted sections:\n%s", out)
	}
	if !strings.HasSuffix(out, "2024-01,1,100,60,40,40.00\n") {
		t.Errorf("WriteCSV() monthly section ended with %q", out)
	}
	if strings.HasSuffix(out, "\n\n") {
		t.Errorf("WriteCSV() added a blank line after the final section:\n%q", out)
	}
}
