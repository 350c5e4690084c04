// Package journal records confirmed runs and the modification times they
// applied in a SQLite database.
package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"retime/internal/journal/migrations"
	"retime/internal/retime"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteJournal implements the retime.Journal interface using SQLite.
type SQLiteJournal struct {
	db   *sql.DB
	path string
}

// NewSQLiteJournal opens the journal at path and brings its schema up to date.
// path can be a file path or ":memory:" for an in-memory journal.
func NewSQLiteJournal(path string) (*SQLiteJournal, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}

	if err := migrations.Prepare(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing journal schema: %w", err)
	}

	return &SQLiteJournal{db: db, path: path}, nil
}

// OpenConnection opens and configures a SQLite database connection with appropriate PRAGMAs.
// path can be a file path or ":memory:" for in-memory database.
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every pooled connection to ":memory:" would be a separate database.
	db.SetMaxOpenConns(1)

	// Enable foreign key constraints (SQLite default is OFF for backward compatibility)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// Path returns the location the journal was opened from.
func (j *SQLiteJournal) Path() string {
	return j.path
}

func (j *SQLiteJournal) BeginRun(run *retime.Run) error {
	_, err := j.db.Exec(
		"INSERT INTO runs (id, dir, started_at, status) VALUES (?, ?, ?, ?)",
		run.ID, run.Dir, run.StartedAt.UnixNano(), run.Status,
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	return nil
}

func (j *SQLiteJournal) RecordChange(runID string, change *retime.AppliedChange) error {
	_, err := j.db.Exec(
		`INSERT INTO changes (run_id, position, name, previous_sec, previous_nsec, target_sec, target_nsec)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, change.Position, change.Name,
		change.Previous.Unix(), change.Previous.Nanosecond(),
		change.Target.Unix(), change.Target.Nanosecond(),
	)
	if err != nil {
		return fmt.Errorf("inserting change: %w", err)
	}
	return nil
}

func (j *SQLiteJournal) FinishRun(runID string, status string, finishedAt time.Time) error {
	res, err := j.db.Exec(
		"UPDATE runs SET status = ?, finished_at = ? WHERE id = ?",
		status, finishedAt.UnixNano(), runID,
	)
	if err != nil {
		return fmt.Errorf("updating run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("run not found: %s", runID)
	}
	return nil
}

func (j *SQLiteJournal) ListRuns(limit int) ([]*retime.Run, error) {
	rows, err := j.db.Query(`
		SELECT r.id, r.dir, r.started_at, r.finished_at, r.status, COUNT(c.position)
		FROM runs r
		LEFT JOIN changes c ON c.run_id = r.id
		GROUP BY r.id
		ORDER BY r.started_at DESC, r.rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []*retime.Run
	for rows.Next() {
		var (
			run        retime.Run
			startedAt  int64
			finishedAt sql.NullInt64
		)
		if err := rows.Scan(&run.ID, &run.Dir, &startedAt, &finishedAt, &run.Status, &run.Changes); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		run.StartedAt = time.Unix(0, startedAt)
		if finishedAt.Valid {
			run.FinishedAt = time.Unix(0, finishedAt.Int64)
		}
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}

func (j *SQLiteJournal) ListChanges(runID string) ([]*retime.AppliedChange, error) {
	var exists int
	err := j.db.QueryRow("SELECT 1 FROM runs WHERE id = ?", runID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run not found: %s", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("looking up run: %w", err)
	}

	rows, err := j.db.Query(`
		SELECT position, name, previous_sec, previous_nsec, target_sec, target_nsec
		FROM changes
		WHERE run_id = ?
		ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying changes: %w", err)
	}
	defer rows.Close()

	var changes []*retime.AppliedChange
	for rows.Next() {
		var (
			c                     retime.AppliedChange
			prevSec, prevNsec     int64
			targetSec, targetNsec int64
		)
		if err := rows.Scan(&c.Position, &c.Name, &prevSec, &prevNsec, &targetSec, &targetNsec); err != nil {
			return nil, fmt.Errorf("scanning change: %w", err)
		}
		c.Previous = time.Unix(prevSec, prevNsec)
		c.Target = time.Unix(targetSec, targetNsec)
		changes = append(changes, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating changes: %w", err)
	}
	return changes, nil
}

// Close closes the underlying database connection.
func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}

// Compile-time check that SQLiteJournal implements retime.Journal interface
var _ retime.Journal = (*SQLiteJournal)(nil)
