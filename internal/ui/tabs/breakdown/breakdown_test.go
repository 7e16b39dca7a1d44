package breakdown

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/d-kovas/rtk-gain/internal/app"
	"github.com/d-kovas/rtk-gain/internal/models"
	"github.com/d-kovas/rtk-gain/internal/services"
)

func testSnapshot() *services.Snapshot {
	return &services.Snapshot{
		Summary: &models.GainSummary{TotalCommands: 9, TotalInput: 9_000, TotalSaved: 6_000},
		Days: []models.DayStats{
			{Date: "2026-08-20", Commands: 4, InputTokens: 4_000, OutputTokens: 1_500, SavedTokens: 2_500, SavingsPct: 62.5},
			{Date: "2026-08-21", Commands: 5, InputTokens: 5_000, OutputTokens: 1_500, SavedTokens: 3_500, SavingsPct: 70.0},
		},
		Weeks: []models.WeekStats{
			{WeekStart: "2026-08-17", WeekEnd: "2026-08-23", Commands: 9, InputTokens: 9_000, OutputTokens: 3_000, SavedTokens: 6_000, SavingsPct: 66.7},
		},
		Months: []models.MonthStats{
			{Month: "2026-08", Commands: 9, InputTokens: 9_000, OutputTokens: 3_000, SavedTokens: 6_000, SavingsPct: 66.7},
		},
	}
}

func TestNew(t *testing.T) {
	state := app.NewState()
	m := New(state)
	if m == nil {
		t.Fatal("New returned nil")
	}
	if m.period != periodDaily {
		t.Error("default period should be daily")
	}
}

func TestPeriod_Cycle(t *testing.T) {
	p := periodDaily
	p = p.next()
	if p != periodWeekly {
		t.Errorf("next() = %v, want weekly", p)
	}
	p = p.next()
	if p != periodMonthly {
		t.Errorf("next() = %v, want monthly", p)
	}
	p = p.next()
	if p != periodDaily {
		t.Errorf("next() = %v, want daily (wrap)", p)
	}
}

func TestPeriod_String(t *testing.T) {
	tests := []struct {
		p    period
		want string
	}{
		{periodDaily, "Daily"},
		{periodWeekly, "Weekly"},
		{periodMonthly, "Monthly"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestModel_TogglePeriod(t *testing.T) {
	state := app.NewState()
	state.SetLoading("initial", false)
	state.SetSnapshot(testSnapshot())

	m := New(state)
	m.SetSize(100, 30)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	if m.period != periodWeekly {
		t.Errorf("period = %v, want weekly after 't'", m.period)
	}

	view := m.View()
	if !strings.Contains(view, "[t] Weekly") {
		t.Error("View should show the weekly period indicator")
	}
	if !strings.Contains(view, "2026-08-17 → 2026-08-23") {
		t.Logf("View content: %q", view)
		t.Error("View should show the week range")
	}
}

func TestModel_DirectPeriodKeys(t *testing.T) {
	state := app.NewState()
	state.SetLoading("initial", false)
	state.SetSnapshot(testSnapshot())

	m := New(state)
	m.SetSize(100, 30)

	press := func(r rune) {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	press('m')
	if m.period != periodMonthly {
		t.Errorf("period = %v, want monthly after 'm'", m.period)
	}
	press('w')
	if m.period != periodWeekly {
		t.Errorf("period = %v, want weekly after 'w'", m.period)
	}
	press('d')
	if m.period != periodDaily {
		t.Errorf("period = %v, want daily after 'd'", m.period)
	}
}

func TestModel_View(t *testing.T) {
	state := app.NewState()
	state.SetLoading("initial", false)
	m := New(state)
	m.SetSize(100, 30)

	// Empty state
	view := m.View()
	if !strings.Contains(view, "No tracked commands") {
		t.Error("View should show the empty hint")
	}

	// With data the table and TOTAL line appear
	state.SetSnapshot(testSnapshot())
	view = m.View()
	if !strings.Contains(view, "2026-08-21") {
		t.Logf("View content: %q", view)
		t.Error("View should show daily rows")
	}
	if !strings.Contains(view, "TOTAL") {
		t.Error("View should show the pooled TOTAL line")
	}
	if !strings.Contains(view, "9 cmds") {
		t.Error("TOTAL line should pool the bucket commands")
	}
}

func TestModel_RebuildOnSnapshot(t *testing.T) {
	state := app.NewState()
	state.SetLoading("initial", false)
	m := New(state)
	m.SetSize(100, 30)

	// Table rebuilds when the snapshot message arrives
	state.SetSnapshot(testSnapshot())
	m.Update(app.SnapshotLoadedMsg{Snapshot: testSnapshot()})
	if len(m.table.Rows()) != 2 {
		t.Errorf("table rows = %d, want 2", len(m.table.Rows()))
	}

	// Cursor lands on the most recent bucket
	if m.table.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", m.table.Cursor())
	}
}

func TestModel_StaleRebuildInView(t *testing.T) {
	state := app.NewState()
	state.SetLoading("initial", false)
	m := New(state)
	m.SetSize(100, 30)
	m.View()

	// A snapshot applied while another tab was active still shows up
	// on the next render.
	state.SetSnapshot(testSnapshot())
	m.View()
	if len(m.table.Rows()) != 2 {
		t.Errorf("table rows = %d, want 2 after stale rebuild", len(m.table.Rows()))
	}
}

func TestModel_Help(t *testing.T) {
	state := app.NewState()
	m := New(state)
	if len(m.ShortHelp()) == 0 {
		t.Error("ShortHelp empty")
	}
	if len(m.FullHelp()) == 0 {
		t.Error("FullHelp empty")
	}
}

func TestModel_SetSize(t *testing.T) {
	state := app.NewState()
	m := New(state)
	m.SetSize(100, 50)
	m.SetSize(20, 5)
}
