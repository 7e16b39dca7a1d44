package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/d-kovas/rtk-gain/internal/logger"
	"github.com/d-kovas/rtk-gain/internal/models"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

func parseTimeString(s string) (time.Time, bool) {
	for _, format := range timeFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// isBusy reports whether err is a transient SQLITE_BUSY or SQLITE_LOCKED
// condition worth retrying.
func isBusy(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	code := se.Code() & 0xff
	return code == sqlite3.SQLITE_BUSY || code == sqlite3.SQLITE_LOCKED
}

// withRetry runs fn, retrying a bounded number of times when the database
// file is locked by a concurrent writer.
func withRetry(fn func() error) error {
	var err error
	for attempt := 0; attempt < busyRetries; attempt++ {
		err = fn()
		if err == nil || !isBusy(err) {
			return err
		}
		time.Sleep(busyBackoff * time.Duration(attempt+1))
	}
	return err
}

// AppendRecord inserts a command record and prunes entries older than the
// retention window in the same transaction, so a crash between the two
// leaves the store unchanged. The assigned id is stored back into rec.
func (db *DB) AppendRecord(rec *models.CommandRecord) error {
	cutoff := time.Now().UTC().AddDate(0, 0, -historyDays).Format(time.RFC3339)

	var id int64
	err := withRetry(func() error {
		var txErr error
		id, txErr = db.appendAndPrune(rec, cutoff)
		return txErr
	})
	if err != nil {
		return &PersistenceError{Op: "append command record", Err: err}
	}

	rec.ID = id
	return nil
}

func (db *DB) appendAndPrune(rec *models.CommandRecord, cutoff string) (int64, error) {
	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO commands (
			timestamp, original_cmd, rtk_cmd, input_tokens, output_tokens,
			saved_tokens, savings_pct
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	timestamp := rec.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	result, err := tx.ExecContext(context.Background(), query,
		timestamp.UTC().Format(time.RFC3339),
		rec.OriginalCmd,
		rec.RtkCmd,
		rec.InputTokens,
		rec.OutputTokens,
		rec.SavedTokens,
		rec.SavingsPct,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert command record: %w", err)
	}

	if _, err := tx.ExecContext(context.Background(),
		"DELETE FROM commands WHERE timestamp < ?", cutoff); err != nil {
		return 0, fmt.Errorf("failed to prune expired records: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return id, nil
}

// DeleteOlderThan removes every record with a timestamp before cutoff and
// returns the number of rows deleted. Deleting from an empty store is fine.
func (db *DB) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result, err := db.ExecContext(context.Background(),
		"DELETE FROM commands WHERE timestamp < ?",
		cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, &PersistenceError{Op: "delete expired records", Err: err}
	}

	n, _ := result.RowsAffected()
	return n, nil
}

// GetRecentRecords returns the most recent command records, newest first.
func (db *DB) GetRecentRecords(limit int) ([]models.CommandRecord, error) {
	query := `
		SELECT id, timestamp, original_cmd, rtk_cmd, input_tokens,
			   output_tokens, saved_tokens, savings_pct
		FROM commands
		ORDER BY timestamp DESC
		LIMIT ?
	`

	rows, err := db.QueryContext(context.Background(), query, limit)
	if err != nil {
		return nil, &QueryError{Op: "query recent records", Err: err}
	}
	defer func() { _ = rows.Close() }()

	var records []models.CommandRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, &QueryError{Op: "scan command record", Err: err}
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, &QueryError{Op: "iterate command records", Err: err}
	}
	return records, nil
}

// GetAllRecords returns every stored record in insertion order.
func (db *DB) GetAllRecords() ([]models.CommandRecord, error) {
	query := `
		SELECT id, timestamp, original_cmd, rtk_cmd, input_tokens,
			   output_tokens, saved_tokens, savings_pct
		FROM commands
		ORDER BY id
	`

	rows, err := db.QueryContext(context.Background(), query)
	if err != nil {
		return nil, &QueryError{Op: "query command records", Err: err}
	}
	defer func() { _ = rows.Close() }()

	var records []models.CommandRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, &QueryError{Op: "scan command record", Err: err}
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, &QueryError{Op: "iterate command records", Err: err}
	}
	return records, nil
}

// scanRecord reads one row into a CommandRecord. A timestamp that no longer
// parses is replaced with the current time so one damaged row cannot take
// down the whole read; the substitution is logged.
func scanRecord(rows *sql.Rows) (models.CommandRecord, error) {
	var rec models.CommandRecord
	var timestamp string

	err := rows.Scan(
		&rec.ID,
		&timestamp,
		&rec.OriginalCmd,
		&rec.RtkCmd,
		&rec.InputTokens,
		&rec.OutputTokens,
		&rec.SavedTokens,
		&rec.SavingsPct,
	)
	if err != nil {
		return rec, err
	}

	if t, ok := parseTimeString(timestamp); ok {
		rec.Timestamp = t.UTC()
	} else {
		logger.Warn("unreadable record timestamp, substituting current time",
			"id", rec.ID, "timestamp", timestamp)
		rec.Timestamp = time.Now().UTC()
	}

	return rec, nil
}
