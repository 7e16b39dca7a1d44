// Package app provides the main Bubble Tea application model and state management.
package app

import (
	"sync"
	"time"

	"github.com/d-kovas/rtk-gain/internal/models"
	"github.com/d-kovas/rtk-gain/internal/services"
	"github.com/d-kovas/rtk-gain/internal/services/quota"
)

// NotificationType defines the type of notification.
type NotificationType int

const (
	// NotificationSuccess represents a success notification.
	NotificationSuccess NotificationType = iota
	// NotificationError represents an error notification.
	NotificationError
	// NotificationWarning represents a warning notification.
	NotificationWarning
	// NotificationInfo represents an informational notification.
	NotificationInfo
	// NotificationLoading represents a loading notification with spinner.
	NotificationLoading
)

const (
	// LoadingNotificationID is the fixed ID for loading notifications.
	LoadingNotificationID = "__loading__"
)

// String returns the string representation of a NotificationType.
func (n NotificationType) String() string {
	switch n {
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	case NotificationWarning:
		return "warning"
	case NotificationInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Notification represents a user-facing notification message.
type Notification struct {
	ID        string
	Type      NotificationType
	Message   string
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired returns true if the notification has expired.
func (n *Notification) IsExpired() bool {
	if n.Duration <= 0 {
		return false
	}
	return time.Since(n.CreatedAt) > n.Duration
}

// LoadingState tracks loading states for different resources.
type LoadingState struct {
	Initial  bool
	Snapshot bool
}

// State holds the tracking data shared between tabs. All access goes
// through the mutex so tabs can read it from their View methods while
// service events update it.
type State struct {
	mu sync.RWMutex

	Summary *models.GainSummary
	Days    []models.DayStats
	Weeks   []models.WeekStats
	Months  []models.MonthStats
	Recent  []models.CommandRecord
	Tier    quota.Tier

	SelectedIndex int

	Loading LoadingState

	LastUpdated time.Time

	notifications   []Notification
	notificationSeq int
}

// NewState creates an empty application state.
func NewState() *State {
	return &State{
		Summary:       &models.GainSummary{},
		notifications: make([]Notification, 0),
		Loading: LoadingState{
			Initial: true,
		},
	}
}

// SetLoading sets the loading state for a specific resource.
func (s *State) SetLoading(resource string, loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch resource {
	case "initial":
		s.Loading.Initial = loading
	case "snapshot":
		s.Loading.Snapshot = loading
	}
}

// AnyLoading returns true if any resource is currently loading.
func (s *State) AnyLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.Loading.Initial || s.Loading.Snapshot
}

// IsInitialLoading returns true if initial data is still loading.
func (s *State) IsInitialLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Loading.Initial
}

// GetLoadingResources returns a list of currently loading resources.
func (s *State) GetLoadingResources() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var resources []string
	if s.Loading.Initial {
		resources = append(resources, "initial")
	}
	if s.Loading.Snapshot {
		resources = append(resources, "snapshot")
	}
	return resources
}

// SetSnapshot replaces the tracking data with a fresh snapshot.
func (s *State) SetSnapshot(snap *services.Snapshot) {
	if snap == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.Summary = snap.Summary
	s.Days = snap.Days
	s.Weeks = snap.Weeks
	s.Months = snap.Months
	s.Recent = snap.Recent
	s.Tier = snap.Tier
	s.LastUpdated = time.Now()
}

// GetSummary returns the lifetime savings summary.
func (s *State) GetSummary() *models.GainSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Summary
}

// HasData returns true if at least one command has been tracked.
func (s *State) HasData() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Summary != nil && s.Summary.HasData()
}

// GetDays returns a copy of the per-day aggregates.
func (s *State) GetDays() []models.DayStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	days := make([]models.DayStats, len(s.Days))
	copy(days, s.Days)
	return days
}

// GetWeeks returns a copy of the per-week aggregates.
func (s *State) GetWeeks() []models.WeekStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	weeks := make([]models.WeekStats, len(s.Weeks))
	copy(weeks, s.Weeks)
	return weeks
}

// GetMonths returns a copy of the per-month aggregates.
func (s *State) GetMonths() []models.MonthStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	months := make([]models.MonthStats, len(s.Months))
	copy(months, s.Months)
	return months
}

// GetRecent returns a copy of the most recent command records.
func (s *State) GetRecent() []models.CommandRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recent := make([]models.CommandRecord, len(s.Recent))
	copy(recent, s.Recent)
	return recent
}

// RecentCount returns the number of recent command records.
func (s *State) RecentCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.Recent)
}

// GetTier returns the configured subscription tier.
func (s *State) GetTier() quota.Tier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Tier
}

// AddNotification adds a new notification and returns its ID.
func (s *State) AddNotification(notifType NotificationType, message string, duration time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notificationSeq++
	id := time.Now().Format("20060102150405") + "-" + string(rune('A'+s.notificationSeq%26))

	notification := Notification{
		ID:        id,
		Type:      notifType,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  duration,
	}

	s.notifications = append(s.notifications, notification)

	// Keep only the last 10 notifications
	if len(s.notifications) > 10 {
		s.notifications = s.notifications[len(s.notifications)-10:]
	}

	return id
}

// RemoveNotification removes a notification by ID.
func (s *State) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// ClearExpiredNotifications removes all expired notifications.
func (s *State) ClearExpiredNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}
	s.notifications = active
}

// GetNotifications returns a copy of all active notifications.
func (s *State) GetNotifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}

	return active
}

// ClearAllNotifications removes all notifications.
func (s *State) ClearAllNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = make([]Notification, 0)
}

// SetLoadingNotification sets a loading notification message.
func (s *State) SetLoadingNotification(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications[i].Message = message
			return
		}
	}

	s.notifications = append(s.notifications, Notification{
		ID:        LoadingNotificationID,
		Type:      NotificationLoading,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  0,
	})
}

// ClearLoadingNotification removes the loading notification.
func (s *State) ClearLoadingNotification() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// GetLastUpdated returns the last time the state was updated.
func (s *State) GetLastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.LastUpdated
}

// TimeSinceUpdate returns the duration since the last update.
func (s *State) TimeSinceUpdate() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.LastUpdated.IsZero() {
		return 0
	}
	return time.Since(s.LastUpdated)
}

// GetSelectedIndex returns the currently selected record index.
func (s *State) GetSelectedIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.SelectedIndex
}

// SetSelectedIndex updates the selected record index.
func (s *State) SetSelectedIndex(idx int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SelectedIndex = idx
}
