package db

import "time"

const (
	// historyDays is how long command records are retained. Anything older
	// is pruned whenever a new record is appended.
	historyDays = 90

	// busyRetries and busyBackoff bound the retry loop for writes that find
	// the database file locked by a concurrent rtk invocation.
	busyRetries = 3
	busyBackoff = 50 * time.Millisecond
)
