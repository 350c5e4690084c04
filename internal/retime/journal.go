package retime

import (
	"errors"
	"time"
)

// Run status values recorded in the journal.
const (
	RunStatusRunning = "running"
	RunStatusSuccess = "success"
	RunStatusError   = "error"
)

// ErrJournalDisabled is returned by NopJournal queries.
var ErrJournalDisabled = errors.New("journal is not configured")

// Run is one confirmed invocation recorded in the journal.
type Run struct {
	ID         string
	Dir        string
	StartedAt  time.Time
	FinishedAt time.Time // zero while running
	Status     string
	Changes    int
}

// AppliedChange is one modification time that was written during a run.
type AppliedChange struct {
	Position int
	Name     string
	Previous time.Time
	Target   time.Time
}

// Journal records confirmed runs and the changes they applied.
type Journal interface {
	BeginRun(run *Run) error
	RecordChange(runID string, change *AppliedChange) error
	FinishRun(runID string, status string, finishedAt time.Time) error

	// ListRuns returns up to limit runs, newest first.
	ListRuns(limit int) ([]*Run, error)
	// ListChanges returns the changes of a run in the order they were applied.
	ListChanges(runID string) ([]*AppliedChange, error)

	Close() error
}

// NopJournal records nothing. It is used when no journal is configured.
type NopJournal struct{}

func NewNopJournal() *NopJournal { return &NopJournal{} }

func (*NopJournal) BeginRun(*Run) error                          { return nil }
func (*NopJournal) RecordChange(string, *AppliedChange) error    { return nil }
func (*NopJournal) FinishRun(string, string, time.Time) error    { return nil }
func (*NopJournal) ListRuns(int) ([]*Run, error)                 { return nil, ErrJournalDisabled }
func (*NopJournal) ListChanges(string) ([]*AppliedChange, error) { return nil, ErrJournalDisabled }
func (*NopJournal) Close() error                                 { return nil }
