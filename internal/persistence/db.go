// Package persistence provides the SQLite audit archive. It is strictly
// observational: the simulation never reads state back from it, and a
// failed write must never affect a state change that already happened.
package persistence

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/ghost-agency/internal/agency"
)

// DB wraps a SQLite connection for the mission-log archive and daily
// ledger.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates the archive database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		day INTEGER NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS ledger (
		day INTEGER PRIMARY KEY,
		funds INTEGER NOT NULL,
		reputation INTEGER NOT NULL,
		roster INTEGER NOT NULL,
		missions_run INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_day ON events(day);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// ArchiveEvents appends mission-log entries to the archive.
func (db *DB) ArchiveEvents(events []agency.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range events {
		_, err := tx.Exec(
			"INSERT INTO events (day, category, description) VALUES (?, ?, ?)",
			e.Day, e.Category, e.Description,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// AppendLedger records the day's closing figures. Re-running a day
// replaces its row.
func (db *DB) AppendLedger(s agency.DailySummary) error {
	_, err := db.conn.Exec(
		`INSERT OR REPLACE INTO ledger (day, funds, reputation, roster, missions_run)
		 VALUES (?, ?, ?, ?, ?)`,
		s.Day, s.Funds, s.Reputation, s.RosterSize, s.MissionsRun,
	)
	return err
}

// RecentEvents returns the most recent n archived entries, newest first.
func (db *DB) RecentEvents(n int) ([]agency.Event, error) {
	var events []agency.Event
	err := db.conn.Select(&events,
		"SELECT day, category, description FROM events ORDER BY id DESC LIMIT ?", n)
	return events, err
}

// Ledger returns every archived daily summary in day order.
func (db *DB) Ledger() ([]agency.DailySummary, error) {
	var rows []agency.DailySummary
	err := db.conn.Select(&rows,
		"SELECT day, funds, reputation, roster, missions_run FROM ledger ORDER BY day")
	return rows, err
}

// SaveMeta stores a key-value pair.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)", key, value)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM meta WHERE key = ?", key)
	return value, err
}
