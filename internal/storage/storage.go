// Package storage mirrors the in-memory task and label lists to a
// single-file SQLite database used as a key-value store. Each list is
// stored wholesale as one JSON value under a fixed key, overwritten on
// every mutation and read once on startup.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"planner/internal/models"
)

const (
	keyTasks  = "tasks"
	keyLabels = "labels"
)

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the snapshot database at dbPath.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, err
	}
	db, err := sql.Open("sqlite", sqliteDSN(dbPath))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	s, err := New(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an already open database handle and ensures the schema.
func New(db *sql.DB) (*Store, error) {
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS snapshots (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`
	_, err := s.db.Exec(ddl)
	return err
}

// LoadTasks reads the task snapshot. A missing or unparsable snapshot
// yields the built-in seed data.
func (s *Store) LoadTasks() ([]models.Task, error) {
	var tasks []models.Task
	ok, err := s.load(keyTasks, &tasks)
	if err != nil {
		return nil, err
	}
	if !ok {
		return models.SeedTasks(), nil
	}
	return tasks, nil
}

// SaveTasks overwrites the task snapshot with the full list.
func (s *Store) SaveTasks(tasks []models.Task) error {
	return s.save(keyTasks, tasks)
}

// LoadLabels reads the label snapshot, falling back to seed labels.
func (s *Store) LoadLabels() ([]models.Label, error) {
	var labels []models.Label
	ok, err := s.load(keyLabels, &labels)
	if err != nil {
		return nil, err
	}
	if !ok {
		return models.SeedLabels(), nil
	}
	return labels, nil
}

// SaveLabels overwrites the label snapshot with the full set.
func (s *Store) SaveLabels(labels []models.Label) error {
	return s.save(keyLabels, labels)
}

// load reports whether a usable snapshot existed under key. A value
// that fails to unmarshal counts as absent; the caller substitutes
// seed data instead of surfacing an error.
func (s *Store) load(key string, dst any) (bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM snapshots WHERE key = ?;`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read snapshot %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(value), dst); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *Store) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode snapshot %q: %w", key, err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(`INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`,
		key, string(data), now)
	if err != nil {
		return fmt.Errorf("write snapshot %q: %w", key, err)
	}
	return nil
}

func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}
