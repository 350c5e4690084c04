package retime

import (
	"fmt"
	"time"
)

// RetimeService coordinates listing, planning and writing for a run.
type RetimeService struct {
	fsmgr   FilesystemManager
	journal Journal
	logger  Logger
	clock   Clock
}

// NewRetimeService creates a new RetimeService with the provided dependencies.
func NewRetimeService(fsmgr FilesystemManager, journal Journal, logger Logger, clock Clock) *RetimeService {
	return &RetimeService{
		fsmgr:   fsmgr,
		journal: journal,
		logger:  logger,
		clock:   clock,
	}
}

// Plan validates req, lists req.Dir, sorts the entries by name and assigns
// each one its target instant. The start instant is anchored to loc.
// Nothing is modified.
func (s *RetimeService) Plan(req Request, loc *time.Location) (*Plan, error) {
	start, err := req.Start(loc)
	if err != nil {
		return nil, err
	}
	entries, err := s.fsmgr.ListDir(req.Dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", req.Dir, err)
	}
	SortEntries(entries)

	changes, err := BuildSchedule(entries, start, req.Offset)
	if err != nil {
		return nil, fmt.Errorf("planning: %w", err)
	}

	s.logger.Debug("plan built", "dir", req.Dir, "entries", len(changes),
		"start", FormatInstant(start), "offset", req.Offset)

	return &Plan{Dir: req.Dir, Offset: req.Offset, Changes: changes}, nil
}

// Apply writes every planned modification time in order. The first failure
// stops the run; entries already written keep their new time.
// Returns the number of entries updated.
func (s *RetimeService) Apply(runID string, plan *Plan) (int, error) {
	run := &Run{
		ID:        runID,
		Dir:       plan.Dir,
		StartedAt: s.clock.Now(),
		Status:    RunStatusRunning,
	}
	if err := s.journal.BeginRun(run); err != nil {
		return 0, fmt.Errorf("recording run: %w", err)
	}

	for i, c := range plan.Changes {
		if err := s.applyOne(runID, i, c); err != nil {
			s.logger.Info("run aborted", "updated", i, "remaining", len(plan.Changes)-i, "error", err)
			if ferr := s.journal.FinishRun(runID, RunStatusError, s.clock.Now()); ferr != nil {
				s.logger.Warn("finishing journal run failed", "error", ferr)
			}
			return i, err
		}
	}

	if err := s.journal.FinishRun(runID, RunStatusSuccess, s.clock.Now()); err != nil {
		return len(plan.Changes), fmt.Errorf("finishing run: %w", err)
	}

	s.logger.Info("run complete", "dir", plan.Dir, "updated", len(plan.Changes))
	return len(plan.Changes), nil
}

// applyOne writes a single planned change and records it.
func (s *RetimeService) applyOne(runID string, position int, c PlannedChange) error {
	if err := s.fsmgr.SetModTime(c.Entry, c.Target); err != nil {
		return &WriteError{Name: c.Entry.Name(), Err: err}
	}
	s.logger.Debug("modification time set", "name", c.Entry.Name(), "mtime", FormatInstant(c.Target))

	change := &AppliedChange{
		Position: position,
		Name:     c.Entry.Name(),
		Previous: c.Entry.ModTime(),
		Target:   c.Target,
	}
	if err := s.journal.RecordChange(runID, change); err != nil {
		return fmt.Errorf("recording change for %s: %w", c.Entry.Name(), err)
	}
	return nil
}

// GetHistory returns the most recent journaled runs.
func (s *RetimeService) GetHistory(limit int) ([]*Run, error) {
	return s.journal.ListRuns(limit)
}

// GetRunChanges returns the changes applied by the given run.
func (s *RetimeService) GetRunChanges(runID string) ([]*AppliedChange, error) {
	changes, err := s.journal.ListChanges(runID)
	if err != nil {
		return nil, fmt.Errorf("listing changes of run %s: %w", runID, err)
	}
	return changes, nil
}
