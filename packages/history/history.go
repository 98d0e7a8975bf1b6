package history

import (
	"database/sql"
	"fmt"
	"time"

	// SQLite driver
	_ "github.com/mattn/go-sqlite3"

	"github.com/abdul-hamid-achik/should/packages/core/runner"
)

const schema = `
CREATE TABLE IF NOT EXISTS verdicts (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL,
	condition   TEXT NOT NULL,
	status      TEXT NOT NULL,
	reason      TEXT NOT NULL DEFAULT '',
	duration_ms INTEGER NOT NULL,
	created_at  DATETIME NOT NULL
);`

// Store keeps a record of past verdicts in a local SQLite database.
// It stores outcomes only, never captured evidence.
type Store struct {
	db *sql.DB
}

// Entry is one recorded verdict.
type Entry struct {
	ID         int64
	Name       string
	Condition  string
	Status     string // passed, failed, errored
	Reason     string
	DurationMs int64
	CreatedAt  time.Time
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record stores the verdict of one check.
func (s *Store) Record(res *runner.Result) error {
	status := "passed"
	reason := ""
	switch {
	case res.Err != nil:
		status = "errored"
		reason = res.Err.Error()
	case res.Failed():
		status = "failed"
		reason = res.Reason
	}

	_, err := s.db.Exec(
		`INSERT INTO verdicts (name, condition, status, reason, duration_ms, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		res.Name, res.Condition, status, reason, res.Duration.Milliseconds(), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record verdict: %w", err)
	}
	return nil
}

// RecordSummary stores every verdict of one suite run.
func (s *Store) RecordSummary(summary *runner.Summary) error {
	for _, res := range summary.Results {
		if err := s.Record(res); err != nil {
			return err
		}
	}
	return nil
}

// Recent returns up to limit verdicts, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, name, condition, status, reason, duration_ms, created_at
		 FROM verdicts ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Name, &e.Condition, &e.Status, &e.Reason, &e.DurationMs, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
