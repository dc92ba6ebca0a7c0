package internal

import (
	"database/sql"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"
)

// Persisted key suffixes. Full keys are "<surface>_ai_usage" and
// "<surface>_ai_summary", e.g. calendar_ai_usage, global_ai_summary.
const (
	usageKeySuffix   = "_ai_usage"
	summaryKeySuffix = "_ai_summary"
)

// UsageKey returns the persisted usage-counter key for a chat surface.
func UsageKey(surface string) string {
	return surface + usageKeySuffix
}

// SummaryKey returns the persisted rolling-summary key for a chat surface.
func SummaryKey(surface string) string {
	return surface + summaryKeySuffix
}

// StateStore persists per-surface chat side-state: the usage counter and the
// rolling conversation summary. The core pipeline only depends on this
// interface so tests can inject an in-memory fake.
type StateStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// SQLiteStateStore keeps chat state in a single key-value table.
type SQLiteStateStore struct {
	db *sql.DB
}

// OpenStateStore opens the state database at path, creating the file and its
// schema if needed.
func OpenStateStore(path string) (*SQLiteStateStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, &StateError{Op: "open", Key: path, Err: err}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &StateError{Op: "open", Key: path, Err: err}
	}

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS chat_state (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, &StateError{Op: "open", Key: path, Err: err}
	}

	return &SQLiteStateStore{db: db}, nil
}

// Get returns the stored value for key and whether it was present.
func (s *SQLiteStateStore) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM chat_state WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, &StateError{Op: "get", Key: key, Err: err}
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *SQLiteStateStore) Set(key, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO chat_state (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return &StateError{Op: "set", Key: key, Err: err}
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *SQLiteStateStore) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM chat_state WHERE key = ?", key); err != nil {
		return &StateError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStateStore) Close() error {
	return s.db.Close()
}

// LoadUsage reads a surface's usage counter. Absent, unreadable, or
// unparseable values default to 0.
func LoadUsage(store StateStore, surface string) int {
	raw, ok, err := store.Get(UsageKey(surface))
	if err != nil || !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// LoadSummary reads a surface's rolling summary, defaulting to empty.
func LoadSummary(store StateStore, surface string) string {
	raw, ok, err := store.Get(SummaryKey(surface))
	if err != nil || !ok {
		return ""
	}
	return raw
}

// ResetState clears the persisted usage counter and/or summary for a surface.
// State is never cleared implicitly; this is an explicit operator action.
func ResetState(store StateStore, surface string, usage, summary bool) error {
	if usage {
		if err := store.Delete(UsageKey(surface)); err != nil {
			return err
		}
	}
	if summary {
		if err := store.Delete(SummaryKey(surface)); err != nil {
			return err
		}
	}
	return nil
}
