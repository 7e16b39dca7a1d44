// Package services provides service orchestration for the TUI.
package services

import (
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/d-kovas/rtk-gain/internal/config"
	"github.com/d-kovas/rtk-gain/internal/db"
	"github.com/d-kovas/rtk-gain/internal/logger"
	"github.com/d-kovas/rtk-gain/internal/models"
	"github.com/d-kovas/rtk-gain/internal/services/monitor"
	"github.com/d-kovas/rtk-gain/internal/services/quota"
	"github.com/d-kovas/rtk-gain/internal/services/tracker"
)

// recentWindow is how many history rows a snapshot carries for the TUI.
const recentWindow = 50

// milestoneTokens is the notification step for lifetime savings.
const milestoneTokens = 1_000_000

type (
	// SnapshotEvent is emitted when tracking data changes on disk.
	SnapshotEvent struct {
		Snapshot *Snapshot
	}

	// ErrorEvent is emitted when an error occurs in any service.
	ErrorEvent struct {
		Service string
		Error   error
	}
)

// ServiceEvent is the interface implemented by all service events.
type ServiceEvent interface {
	isServiceEvent()
}

func (SnapshotEvent) isServiceEvent() {}
func (ErrorEvent) isServiceEvent()    {}

// Snapshot bundles everything the TUI renders in one load.
type Snapshot struct {
	Summary *models.GainSummary
	Days    []models.DayStats
	Weeks   []models.WeekStats
	Months  []models.MonthStats
	Recent  []models.CommandRecord
	Tier    quota.Tier
}

// Manager orchestrates the tracker and store monitor and routes their
// events to TUI subscribers.
type Manager struct {
	mu           sync.RWMutex
	tracker      *tracker.Tracker
	monitor      *monitor.Service
	database     *db.DB
	tier         quota.Tier
	notify       bool
	refreshEvery time.Duration
	eventChan    chan ServiceEvent
	stopChan     chan struct{}
	subscribers  []chan<- ServiceEvent
	prevSaved    int64
	seenSaved    bool
}

// NewManager creates a new service manager.
func NewManager(cfg *config.Config) (*Manager, error) {
	m := &Manager{
		tier:         quota.ParseTier(cfg.QuotaTier),
		notify:       cfg.Notify,
		refreshEvery: cfg.RefreshInterval,
		eventChan:    make(chan ServiceEvent, 100),
		stopChan:     make(chan struct{}),
	}

	var err error
	m.database, err = db.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	m.tracker = tracker.New(m.database)

	m.monitor, err = monitor.New(cfg.DatabasePath)
	if err != nil {
		if closeErr := m.database.Close(); closeErr != nil {
			logger.Error("failed to close database", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to start store monitor: %w", err)
	}

	go m.routeEvents()

	return m, nil
}

// routeEvents routes events from individual services to subscribers.
// A zero refresh interval disables the periodic reload.
func (m *Manager) routeEvents() {
	var refresh <-chan time.Time
	if m.refreshEvery > 0 {
		ticker := time.NewTicker(m.refreshEvery)
		defer ticker.Stop()
		refresh = ticker.C
	}

	for {
		select {
		case event := <-m.monitor.Events():
			m.handleStoreEvent(event)

		case <-refresh:
			m.refreshSnapshot()

		case <-m.stopChan:
			return
		}
	}
}

// handleStoreEvent reloads tracking data after an external change and
// broadcasts the fresh snapshot.
func (m *Manager) handleStoreEvent(event monitor.Event) {
	switch event.Type {
	case monitor.EventStoreChanged:
		m.refreshSnapshot()

	case monitor.EventError:
		m.broadcast(ErrorEvent{Service: "monitor", Error: event.Error})
	}
}

// refreshSnapshot reloads tracking data and broadcasts it.
func (m *Manager) refreshSnapshot() {
	snap, err := m.LoadSnapshot()
	if err != nil {
		m.broadcast(ErrorEvent{Service: "tracker", Error: err})
		return
	}

	m.broadcast(SnapshotEvent{Snapshot: snap})
	m.checkMilestone(snap.Summary.TotalSaved)
}

// LoadSnapshot reads a fresh view of all tracking data.
func (m *Manager) LoadSnapshot() (*Snapshot, error) {
	summary, err := m.tracker.Summary()
	if err != nil {
		return nil, err
	}

	days, err := m.tracker.AllDays()
	if err != nil {
		return nil, err
	}

	weeks, err := m.tracker.ByWeek()
	if err != nil {
		return nil, err
	}

	months, err := m.tracker.ByMonth()
	if err != nil {
		return nil, err
	}

	recent, err := m.tracker.Recent(recentWindow)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Summary: summary,
		Days:    days,
		Weeks:   weeks,
		Months:  months,
		Recent:  recent,
		Tier:    m.tier,
	}, nil
}

// crossedMilestone reports whether cur reached a multiple of step that
// prev had not.
func crossedMilestone(prev, cur, step int64) bool {
	return cur/step > prev/step
}

// checkMilestone sends a desktop notification when lifetime savings
// cross another million tokens. The first observation only seeds the
// baseline.
func (m *Manager) checkMilestone(saved int64) {
	m.mu.Lock()
	prev, seen := m.prevSaved, m.seenSaved
	m.prevSaved, m.seenSaved = saved, true
	m.mu.Unlock()

	if !seen || !m.notify {
		return
	}

	if crossedMilestone(prev, saved, milestoneTokens) {
		title := "RTK Token Savings"
		body := fmt.Sprintf("You have saved over %dM tokens with rtk", saved/milestoneTokens)
		_ = beeep.Notify(title, body, "")
	}
}

// broadcast sends an event to all subscribers.
func (m *Manager) broadcast(event ServiceEvent) {
	// Send to main event channel
	select {
	case m.eventChan <- event:
	default:
	}

	// Send to subscribers
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sub := range m.subscribers {
		select {
		case sub <- event:
		default:
			// Subscriber channel full, skip
		}
	}
}

// Subscribe creates a channel for receiving service events.
// Returns a tea.Cmd that can be used in Bubble Tea's Init or Update.
func (m *Manager) Subscribe() (chan ServiceEvent, tea.Cmd) {
	ch := make(chan ServiceEvent, 50)

	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()

	return ch, waitForEvent(ch)
}

// waitForEvent returns a tea.Cmd that waits for the next event.
func waitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// WaitForEvent returns a tea.Cmd for the next event on a channel.
func WaitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return waitForEvent(ch)
}

// Unsubscribe removes a subscriber channel.
func (m *Manager) Unsubscribe(ch chan ServiceEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, sub := range m.subscribers {
		if sub == ch {
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			close(ch)
			break
		}
	}
}

// InitialState loads the first snapshot for TUI initialization and
// seeds the milestone baseline so a fresh launch never notifies.
func (m *Manager) InitialState() (*Snapshot, error) {
	snap, err := m.LoadSnapshot()
	if err != nil {
		return nil, err
	}

	m.checkMilestone(snap.Summary.TotalSaved)
	return snap, nil
}

// Tracker returns the tracking service.
func (m *Manager) Tracker() *tracker.Tracker {
	return m.tracker
}

// Database returns the database instance for direct access.
func (m *Manager) Database() *db.DB {
	return m.database
}

// Close closes the manager and all its services.
func (m *Manager) Close() error {
	close(m.stopChan)

	m.mu.Lock()
	for _, sub := range m.subscribers {
		close(sub)
	}
	m.subscribers = nil
	m.mu.Unlock()

	var errs []error

	if m.monitor != nil {
		if err := m.monitor.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if m.database != nil {
		if err := m.database.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
