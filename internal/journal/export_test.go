package journal

import (
	"database/sql"
	"time"
)

// DB exposes the internal *sql.DB for test helpers in journal_test.
// This file only compiles during `go test`.
func (j *Journal) DB() *sql.DB {
	return j.db
}

// SetTimeNow replaces the package clock and returns a restore function.
func SetTimeNow(fn func() time.Time) (restore func()) {
	prev := timeNow
	timeNow = fn
	return func() { timeNow = prev }
}

// SetOpenDB replaces the database opener and returns a restore function.
func SetOpenDB(fn func(driver, dsn string) (*sql.DB, error)) (restore func()) {
	prev := openDB
	openDB = fn
	return func() { openDB = prev }
}
