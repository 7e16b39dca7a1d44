package app

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/d-kovas/rtk-gain/internal/models"
	"github.com/d-kovas/rtk-gain/internal/services"
)

func TestNewModel(t *testing.T) {
	model := NewModel(nil)
	if model == nil {
		t.Fatal("NewModel returned nil")
	}
	if model.state == nil {
		t.Error("State should be initialized")
	}
	if model.activeTab != TabOverview {
		t.Error("Default tab should be Overview")
	}
	if len(model.tabs) != 3 {
		t.Errorf("Should have 3 tabs placeholder, got %d", len(model.tabs))
	}
}

func TestModel_Init(t *testing.T) {
	model := NewModel(nil)
	cmd := model.Init()
	if cmd == nil {
		t.Error("Init returned nil command")
	}
}

func TestModel_Update_WindowSize(t *testing.T) {
	model := NewModel(nil)
	msg := tea.WindowSizeMsg{Width: 100, Height: 50}

	newModel, _ := model.Update(msg)

	m, ok := newModel.(*Model)
	if !ok {
		t.Fatal("Update returned wrong model type")
	}

	if m.width != 100 {
		t.Errorf("Width = %d, want 100", m.width)
	}
	if m.height != 50 {
		t.Errorf("Height = %d, want 50", m.height)
	}
	if !m.ready {
		t.Error("Model should be ready after WindowSizeMsg")
	}
}

func TestModel_Update_TabSwitch(t *testing.T) {
	model := NewModel(nil)
	model.ready = true
	model.width = 100
	model.height = 50

	// Test switching to History
	msg := TabSwitchMsg{Tab: TabHistory}
	newModel, _ := model.Update(msg)
	m := newModel.(*Model)

	if m.activeTab != TabHistory {
		t.Errorf("ActiveTab = %v, want History", m.activeTab)
	}

	// Test key binding '2'
	keyMsg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}}
	model.handleKeyMsg(keyMsg)
	if model.activeTab != TabBreakdown {
		t.Errorf("ActiveTab = %v, want Breakdown after key '2'", model.activeTab)
	}

	// Next tab wraps around
	model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyTab})
	if model.activeTab != TabHistory {
		t.Errorf("ActiveTab = %v, want History after next tab", model.activeTab)
	}
	model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyTab})
	if model.activeTab != TabOverview {
		t.Errorf("ActiveTab = %v, want Overview after wrap", model.activeTab)
	}
}

func TestModel_Update_Tick(t *testing.T) {
	model := NewModel(nil)
	msg := TickMsg{Time: time.Now()}

	_, cmd := model.Update(msg)
	if cmd == nil {
		t.Error("TickMsg should return a command (next tick)")
	}
}

func TestModel_View(t *testing.T) {
	model := NewModel(nil)

	// Not ready
	view := model.View()
	if !strings.Contains(view, "Loading...") {
		t.Error("View should show Loading when not ready")
	}

	// Ready
	model.ready = true
	model.width = 80
	model.height = 24

	view = model.View()
	// Should show tabs
	if !strings.Contains(view, "Overview") {
		t.Error("View should show Overview tab")
	}
	// Should show placeholder since tabs are nil
	if !strings.Contains(view, "not yet implemented") {
		t.Error("View should show placeholder text")
	}
}

func TestModel_Help(t *testing.T) {
	model := NewModel(nil)
	model.ready = true
	model.width = 80
	model.height = 24

	// Toggle help
	model.Update(ToggleHelpMsg{})
	if !model.showHelp {
		t.Error("showHelp should be true")
	}

	view := model.View()
	if !strings.Contains(view, "Keyboard Shortcuts") {
		t.Error("View should show help modal")
	}

	// Toggle off via key
	model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if model.showHelp {
		t.Error("showHelp should be false after toggle")
	}
}

func TestModel_Notifications(t *testing.T) {
	model := NewModel(nil)

	msg := AddNotificationMsg{
		Message:  "Test Note",
		Type:     NotificationInfo,
		Duration: 0,
	}

	model.Update(msg)

	notifs := model.state.GetNotifications()
	if len(notifs) != 1 {
		t.Errorf("Expected 1 notification, got %d", len(notifs))
	}

	// Test rendering
	model.ready = true
	model.width = 80
	model.height = 24
	view := model.View()
	if !strings.Contains(view, "Test Note") {
		t.Error("View should show notification")
	}
}

func TestModel_HandleServiceEvent(t *testing.T) {
	model := NewModel(nil)

	// Snapshot event updates the shared state
	snap := &services.Snapshot{
		Summary: &models.GainSummary{TotalCommands: 5, TotalSaved: 500},
	}
	model.handleServiceEvent(services.SnapshotEvent{Snapshot: snap})

	if model.state.GetSummary().TotalCommands != 5 {
		t.Error("Snapshot event should update state")
	}

	// Error event
	errEvent := services.ErrorEvent{Service: "store", Error: assertError(t, "boom")}
	cmd := model.handleServiceEvent(errEvent)
	if cmd == nil {
		t.Error("Error event should trigger notification command")
	}
}

func TestModel_Update_Messages(t *testing.T) {
	model := NewModel(nil)

	// Test StartLoadingMsg
	model.Update(StartLoadingMsg{Resource: "snapshot"})
	if !model.state.Loading.Snapshot {
		t.Error("Loading.Snapshot should be true")
	}

	// Test StopLoadingMsg
	model.Update(StopLoadingMsg{Resource: "snapshot"})
	if model.state.Loading.Snapshot {
		t.Error("Loading.Snapshot should be false")
	}

	// Test SnapshotLoadedMsg (happy path)
	snap := &services.Snapshot{
		Summary: &models.GainSummary{TotalCommands: 1, TotalSaved: 42},
		Recent:  []models.CommandRecord{{RtkCmd: "rtk git status"}},
	}
	model.Update(SnapshotLoadedMsg{Snapshot: snap})
	if model.state.GetSummary().TotalCommands != 1 {
		t.Error("Snapshot should be applied")
	}
	if model.state.Loading.Initial {
		t.Error("Initial loading should be false")
	}

	// Test SnapshotLoadedMsg (error path)
	model.Update(SnapshotLoadedMsg{Err: assertError(t, "load failed")})
	if model.state.GetSummary().TotalCommands != 1 {
		t.Error("Failed load should not clobber existing state")
	}

	// Test RefreshMsg
	// services is nil, so it returns no cmds, but covers the handler
	model.Update(RefreshMsg{})

	// Test Notification Messages
	model.Update(AddNotificationMsg{Message: "test", Type: NotificationInfo})
	model.Update(RemoveNotificationMsg{ID: "nonexistent"}) // coverage
	model.Update(ClearExpiredNotificationsMsg{})
}

func TestModel_HandleSpinnerTick(t *testing.T) {
	model := NewModel(nil)
	// Spinner tick returns a command
	_, cmd := model.Update(spinner.TickMsg{})
	if cmd == nil {
		t.Error("Spinner tick should return command")
	}
}

func assertError(t *testing.T, msg string) error {
	return &testError{msg}
}

type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}

func TestTabID_String(t *testing.T) {
	if TabOverview.String() != "Overview" {
		t.Error("TabOverview.String() mismatch")
	}
	if TabBreakdown.String() != "Breakdown" {
		t.Error("TabBreakdown.String() mismatch")
	}
	if TabHistory.String() != "History" {
		t.Error("TabHistory.String() mismatch")
	}
	if TabID(999).String() != "Unknown" {
		t.Error("Unknown tab string mismatch")
	}
}

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp empty")
	}
	if len(km.FullHelp()) == 0 {
		t.Error("FullHelp empty")
	}
}

func TestDefaultStyles(t *testing.T) {
	s := DefaultStyles()
	// Just check it doesn't panic and returns something
	_ = s
}
