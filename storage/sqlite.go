// Package storage persists the timer list and the completion history.
//
// The timer list is kept as a single JSON document under the "timers" key
// of a key-value table. History rows live in their own append-only table.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"TimerBoard/history"
	"TimerBoard/timer"

	_ "modernc.org/sqlite"
)

const timersKey = "timers"

// SQLiteStore manages all SQLite operations.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and initializes the
// schema.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(30 * time.Minute)

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS history (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		name         TEXT NOT NULL,
		completed_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Load returns the saved timer list, or nil when nothing was saved yet.
func (s *SQLiteStore) Load() ([]timer.Timer, error) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, timersKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read timers: %w", err)
	}

	var timers []timer.Timer
	if err := json.Unmarshal([]byte(raw), &timers); err != nil {
		return nil, fmt.Errorf("parse timers: %w", err)
	}
	return timers, nil
}

// Save replaces the saved timer list.
func (s *SQLiteStore) Save(timers []timer.Timer) error {
	data, err := json.Marshal(timers)
	if err != nil {
		return fmt.Errorf("marshal timers: %w", err)
	}
	return retryOnContention(func() error {
		_, err := s.db.Exec(
			`INSERT INTO kv (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			timersKey, string(data),
		)
		return err
	})
}

// Append adds a completion record.
func (s *SQLiteStore) Append(r history.Record) error {
	return retryOnContention(func() error {
		_, err := s.db.Exec(`INSERT INTO history (name, completed_at) VALUES (?, ?)`, r.Name, r.CompletedAt)
		return err
	})
}

// List returns every completion record, oldest first.
func (s *SQLiteStore) List() ([]history.Record, error) {
	rows, err := s.db.Query(`SELECT name, completed_at FROM history ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []history.Record
	for rows.Next() {
		var r history.Record
		if err := rows.Scan(&r.Name, &r.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Clear removes every completion record.
func (s *SQLiteStore) Clear() error {
	return retryOnContention(func() error {
		_, err := s.db.Exec(`DELETE FROM history`)
		return err
	})
}
