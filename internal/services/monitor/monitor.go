// Package monitor watches the history database for writes from other
// rtk processes.
package monitor

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/d-kovas/rtk-gain/internal/logger"
)

// Event represents a monitor event.
type Event struct {
	Type  EventType
	Error error
}

// EventType defines the type of monitor event.
type EventType int

const (
	EventStoreChanged EventType = iota
	EventError
)

// Service watches the database file and reports external changes.
type Service struct {
	dbPath        string
	base          string
	watcher       *fsnotify.Watcher
	eventChan     chan Event
	stopChan      chan struct{}
	debounceTimer *time.Timer
}

// New creates a monitor for the database at dbPath and starts watching.
// The parent directory must already exist.
func New(dbPath string) (*Service, error) {
	s := &Service{
		dbPath:    dbPath,
		base:      filepath.Base(dbPath),
		eventChan: make(chan Event, 100),
		stopChan:  make(chan struct{}),
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	s.watcher = watcher

	// Watch the directory (to catch creation and sidecar writes)
	if err := watcher.Add(filepath.Dir(dbPath)); err != nil {
		if closeErr := watcher.Close(); closeErr != nil {
			logger.Error("failed to close watcher", "error", closeErr)
		}
		return nil, err
	}

	go s.watchLoop()
	return s, nil
}

// Events returns the event channel for subscribing to store changes.
func (s *Service) Events() <-chan Event {
	return s.eventChan
}

// isStoreFile reports whether name belongs to the watched database.
// SQLite in WAL mode writes through -wal and -shm sidecars, so any
// file sharing the database name counts.
func (s *Service) isStoreFile(name string) bool {
	return strings.HasPrefix(filepath.Base(name), s.base)
}

// watchLoop handles file system events with debouncing.
func (s *Service) watchLoop() {
	const debounceInterval = 100 * time.Millisecond

	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}

			if !s.isStoreFile(event.Name) {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				// Debounce rapid changes
				if s.debounceTimer != nil {
					s.debounceTimer.Stop()
				}
				s.debounceTimer = time.AfterFunc(debounceInterval, func() {
					s.sendEvent(Event{Type: EventStoreChanged})
				})
			}

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.sendEvent(Event{Type: EventError, Error: err})

		case <-s.stopChan:
			return
		}
	}
}

// sendEvent sends an event to the event channel non-blocking.
func (s *Service) sendEvent(event Event) {
	select {
	case s.eventChan <- event:
	default:
		// Channel full, drop oldest event
		select {
		case <-s.eventChan:
		default:
		}
		select {
		case s.eventChan <- event:
		default:
		}
	}
}

// Close stops the file watcher and cleans up resources.
func (s *Service) Close() error {
	close(s.stopChan)

	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
	}

	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}
