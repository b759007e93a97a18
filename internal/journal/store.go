package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// timeLayout is how instants are persisted. RFC 3339 keeps the zone offset,
// so local-day bucketing survives a round-trip through the database.
const timeLayout = time.RFC3339Nano

// ─── Config ──────────────────────────────────────────────────────────────────

// Config holds journal configuration.
type Config struct {
	DataDir           string
	EnergyWindow      time.Duration
	SleepWindow       time.Duration
	SummaryWindowDays int
}

// DefaultConfig returns the default configuration for the journal.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DataDir:           filepath.Join(home, ".pulse"),
		EnergyWindow:      10 * time.Minute,
		SleepWindow:       4 * time.Hour,
		SummaryWindowDays: 7,
	}
}

// ─── Journal ─────────────────────────────────────────────────────────────────

// Journal is the wellbeing record engine backed by SQLite.
type Journal struct {
	db  *sql.DB
	cfg Config
}

// New creates a Journal with the given configuration.
// It creates the data directory if needed, opens SQLite with WAL mode,
// and runs migrations.
func New(cfg Config) (*Journal, error) {
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("journal: create data dir: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "pulse.db")
	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("journal: open database: %w", err)
	}

	// SQLite performance pragmas
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("journal: pragma %q: %w", p, err)
		}
	}

	j := &Journal{db: db, cfg: cfg}
	if err := j.migrate(); err != nil {
		return nil, fmt.Errorf("journal: migration: %w", err)
	}

	return j, nil
}

// Close closes the underlying database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Config returns the journal's effective configuration.
func (j *Journal) Config() Config {
	return j.cfg
}

// ─── Migrations ──────────────────────────────────────────────────────────────

func (j *Journal) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS energy_logs (
			id        TEXT PRIMARY KEY,
			rating    INTEGER NOT NULL,
			logged_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_energy_logged ON energy_logs(logged_at DESC);

		CREATE TABLE IF NOT EXISTS sleep_logs (
			id          TEXT PRIMARY KEY,
			hours_slept REAL NOT NULL,
			interrupted TEXT NOT NULL DEFAULT 'unspecified',
			bedtime     TEXT,
			logged_at   TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_sleep_logged ON sleep_logs(logged_at DESC);
	`
	if _, err := j.db.Exec(schema); err != nil {
		return err
	}

	// Normalize existing data
	_, _ = j.db.Exec(`UPDATE sleep_logs SET interrupted = 'unspecified' WHERE interrupted IS NULL OR interrupted = ''`) // best-effort migration cleanup

	return nil
}

// ─── Energy records ──────────────────────────────────────────────────────────

// insertEnergy appends a new energy record with a fresh id and timestamp.
// The timestamp is taken at the moment of insertion, not earlier.
func (j *Journal) insertEnergy(e execer, rating int) (*EnergyRecord, error) {
	rec := &EnergyRecord{
		ID:       uuid.NewString(),
		Rating:   rating,
		LoggedAt: timeNow(),
	}
	_, err := e.Exec(
		`INSERT INTO energy_logs (id, rating, logged_at) VALUES (?, ?, ?)`,
		rec.ID, rec.Rating, rec.LoggedAt.Format(timeLayout),
	)
	if err != nil {
		return nil, &StoreError{Op: "insert energy record", Err: err}
	}
	return rec, nil
}

// deleteEnergy removes an energy record by id.
func (j *Journal) deleteEnergy(e execer, id string) error {
	res, err := e.Exec(`DELETE FROM energy_logs WHERE id = ?`, id)
	if err != nil {
		return &StoreError{Op: "delete energy record", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &StoreError{Op: "delete energy record", Err: ErrNotFound}
	}
	return nil
}

// ListEnergy returns all energy records in insertion order.
// Callers impose their own ordering on top of this snapshot.
func (j *Journal) ListEnergy() ([]EnergyRecord, error) {
	rows, err := j.db.Query(`SELECT id, rating, logged_at FROM energy_logs ORDER BY rowid`)
	if err != nil {
		return nil, &StoreError{Op: "list energy records", Err: err}
	}
	defer func() { _ = rows.Close() }()

	var results []EnergyRecord
	for rows.Next() {
		var rec EnergyRecord
		var loggedAt string
		if err := rows.Scan(&rec.ID, &rec.Rating, &loggedAt); err != nil {
			return nil, &StoreError{Op: "scan energy record", Err: err}
		}
		if rec.LoggedAt, err = time.Parse(timeLayout, loggedAt); err != nil {
			return nil, &StoreError{Op: "parse energy timestamp", Err: err}
		}
		results = append(results, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "list energy records", Err: err}
	}
	return results, nil
}

// ─── Sleep records ───────────────────────────────────────────────────────────

// insertSleep appends a new sleep record with a fresh id and timestamp.
func (j *Journal) insertSleep(e execer, req SleepRequest) (*SleepRecord, error) {
	rec := &SleepRecord{
		ID:          uuid.NewString(),
		HoursSlept:  req.HoursSlept,
		Interrupted: ParseInterruption(string(req.Interrupted)),
		Bedtime:     req.Bedtime,
		LoggedAt:    timeNow(),
	}

	var bedtime *string
	if rec.Bedtime != nil {
		s := rec.Bedtime.Format(timeLayout)
		bedtime = &s
	}

	_, err := e.Exec(
		`INSERT INTO sleep_logs (id, hours_slept, interrupted, bedtime, logged_at) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.HoursSlept, string(rec.Interrupted), bedtime, rec.LoggedAt.Format(timeLayout),
	)
	if err != nil {
		return nil, &StoreError{Op: "insert sleep record", Err: err}
	}
	return rec, nil
}

// deleteSleep removes a sleep record by id.
func (j *Journal) deleteSleep(e execer, id string) error {
	res, err := e.Exec(`DELETE FROM sleep_logs WHERE id = ?`, id)
	if err != nil {
		return &StoreError{Op: "delete sleep record", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &StoreError{Op: "delete sleep record", Err: ErrNotFound}
	}
	return nil
}

// ListSleep returns all sleep records in insertion order.
func (j *Journal) ListSleep() ([]SleepRecord, error) {
	rows, err := j.db.Query(`SELECT id, hours_slept, interrupted, bedtime, logged_at FROM sleep_logs ORDER BY rowid`)
	if err != nil {
		return nil, &StoreError{Op: "list sleep records", Err: err}
	}
	defer func() { _ = rows.Close() }()

	var results []SleepRecord
	for rows.Next() {
		var rec SleepRecord
		var interrupted, loggedAt string
		var bedtime *string
		if err := rows.Scan(&rec.ID, &rec.HoursSlept, &interrupted, &bedtime, &loggedAt); err != nil {
			return nil, &StoreError{Op: "scan sleep record", Err: err}
		}
		rec.Interrupted = ParseInterruption(interrupted)
		if bedtime != nil {
			t, err := time.Parse(timeLayout, *bedtime)
			if err != nil {
				return nil, &StoreError{Op: "parse sleep bedtime", Err: err}
			}
			rec.Bedtime = &t
		}
		if rec.LoggedAt, err = time.Parse(timeLayout, loggedAt); err != nil {
			return nil, &StoreError{Op: "parse sleep timestamp", Err: err}
		}
		results = append(results, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "list sleep records", Err: err}
	}
	return results, nil
}

// ─── Stats ───────────────────────────────────────────────────────────────────

// Stats holds aggregate journal statistics.
type Stats struct {
	EnergyRecords int `json:"energy_records"`
	SleepRecords  int `json:"sleep_records"`
}

// Stats returns aggregate record counts across both kinds.
func (j *Journal) Stats() (*Stats, error) {
	stats := &Stats{}
	if err := j.db.QueryRow("SELECT COUNT(*) FROM energy_logs").Scan(&stats.EnergyRecords); err != nil {
		return nil, &StoreError{Op: "count energy records", Err: err}
	}
	if err := j.db.QueryRow("SELECT COUNT(*) FROM sleep_logs").Scan(&stats.SleepRecords); err != nil {
		return nil, &StoreError{Op: "count sleep records", Err: err}
	}
	return stats, nil
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}
