package db

import "fmt"

// PersistenceError reports a failure to create, open or write the store.
// Read paths treat it as fatal; the best-effort tracking entry points
// discard it.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// QueryError reports a malformed query or a schema mismatch on a read path.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }
