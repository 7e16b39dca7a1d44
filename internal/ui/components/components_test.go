package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

func TestNewSpinner(t *testing.T) {
	s := NewSpinner("Loading")
	if s.label != "Loading" {
		t.Error("Spinner label mismatch")
	}
}

func TestSpinner_Methods(t *testing.T) {
	s := NewSpinner("Init")

	s.SetLabel("Loading")
	if s.Label() != "Loading" {
		t.Errorf("Label = %s, want Loading", s.Label())
	}

	// Test View
	view := s.View()
	if view == "" {
		t.Error("View returned empty")
	}

	// Test ViewWithLabel
	view = s.ViewWithLabel()
	if view == "" {
		t.Error("ViewWithLabel returned empty")
	}

	// Test Init
	if s.Init() == nil {
		t.Error("Init should return command")
	}

	// Test Update
	m, _ := s.Update(spinner.TickMsg{})
	if m.Label() != "Loading" {
		t.Error("Update lost the label")
	}
}

func TestRenderSpinnerCentered(t *testing.T) {
	s := NewSpinner("Loading...")
	view := RenderSpinnerCentered(s, 20, 5)
	if view == "" {
		t.Error("RenderSpinnerCentered returned empty")
	}
}

func TestRenderLineChart(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	s := RenderLineChart(data, 20, 5, "Test")
	if s == "" {
		t.Error("RenderLineChart returned empty")
	}
}

func TestRenderLineChart_Empty(t *testing.T) {
	s := RenderLineChart(nil, 20, 5, "Test")
	if !strings.Contains(s, "No data available") {
		t.Error("empty chart missing placeholder")
	}
}

func TestRenderDualLineChart(t *testing.T) {
	input := []float64{3, 2, 1}
	saved := []float64{1, 2, 3}
	s := RenderDualLineChart(input, saved, 20, 5, "Title")
	if s == "" {
		t.Error("RenderDualLineChart returned empty")
	}
}

func TestRenderDualLineChart_Empty(t *testing.T) {
	s := RenderDualLineChart(nil, nil, 20, 5, "Title")
	if !strings.Contains(s, "No data available") {
		t.Error("empty chart missing placeholder")
	}
}

func TestRenderTokenBarChart(t *testing.T) {
	values := []int64{1500, 500}
	labels := []string{"git status", "cargo build"}
	s := RenderTokenBarChart(values, labels, 40)
	if s == "" {
		t.Error("RenderTokenBarChart returned empty")
	}
	if !strings.Contains(s, "git status") {
		t.Error("bar chart missing label")
	}
	if !strings.Contains(s, "1.5K") {
		t.Error("bar chart missing formatted value")
	}

	if RenderTokenBarChart(nil, nil, 40) != "" {
		t.Error("empty bar chart should render nothing")
	}
}

func TestRenderSparkline(t *testing.T) {
	data := []float64{1, 2, 3}
	s := RenderSparkline(data, 10)
	if s == "" {
		t.Error("RenderSparkline returned empty")
	}

	if RenderSparkline(nil, 10) != "" {
		t.Error("empty sparkline should render nothing")
	}
}

func TestRenderLegend(t *testing.T) {
	items := []LegendItem{
		{Label: "Input", Color: ChartInputColor},
		{Label: "Saved", Color: ChartSavedColor},
		{Label: "Other", Color: lipgloss.Color("#ffffff")},
	}
	s := RenderLegend(items)
	if !strings.Contains(s, "Input") || !strings.Contains(s, "Saved") {
		t.Error("legend missing labels")
	}
}
