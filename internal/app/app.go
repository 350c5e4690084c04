package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/term"

	"retime/internal/config"
	"retime/internal/fs"
	"retime/internal/journal"
	"retime/internal/retime"
)

// RetimeApp is the application layer between the CLI and RetimeService.
// It constructs all dependencies from config, captures the local UTC offset
// once at startup, and manages the journal and log file lifecycle on Close.
type RetimeApp struct {
	cfg     *config.Config
	journal retime.Journal
	service *retime.RetimeService
	logger  *slog.Logger
	logFile *os.File
	runID   string
	zone    *time.Location
	stderr  io.Writer
}

// NewRetimeApp creates a fully wired RetimeApp from the given config.
// Log output goes to stderr. The caller must call Close when done.
func NewRetimeApp(cfg *config.Config, clock retime.Clock, idgen retime.IDGenerator, stderr io.Writer) (*RetimeApp, error) {
	zone := retime.CaptureZone(clock.Now())
	runID := idgen.New()

	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger, logFile, err := newLogger(stderr, cfg.LogDir, level, runID)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	j, err := journal.NewJournalFromConfig(cfg.Journal)
	if err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, fmt.Errorf("creating journal: %w", err)
	}

	fsmgr := fs.NewOSFilesystemManager(cfg.Ignore)
	svc := retime.NewRetimeService(fsmgr, j, &slogAdapter{l: logger}, clock)

	return &RetimeApp{
		cfg:     cfg,
		journal: j,
		service: svc,
		logger:  logger,
		logFile: logFile,
		runID:   runID,
		zone:    zone,
		stderr:  stderr,
	}, nil
}

// Run lists the directory named by req, prints the planned changes to out,
// reads one line of confirmation from in and, if it is affirmative, applies
// the plan and prints DONE. A declined confirmation returns nil without
// touching any file. When an interactive stdin answers a redirected stdout, the
// question is repeated on stderr.
func (a *RetimeApp) Run(req retime.Request, in io.Reader, out io.Writer) error {
	plan, err := a.service.Plan(req, a.zone)
	if err != nil {
		return err
	}

	if err := retime.WritePreview(out, plan); err != nil {
		return fmt.Errorf("writing preview: %w", err)
	}

	if promptOnStderr(isTerminal(in), isTerminal(out)) {
		fmt.Fprintln(a.stderr, retime.ConfirmQuestion)
	}
	if !retime.Confirm(in) {
		a.logger.Info("declined", "dir", req.Dir, "entries", len(plan.Changes))
		return nil
	}

	if _, err := a.service.Apply(a.runID, plan); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(out, "DONE"); err != nil {
		return fmt.Errorf("writing completion: %w", err)
	}
	return nil
}

// History returns the most recent journaled runs.
func (a *RetimeApp) History(limit int) ([]*retime.Run, error) {
	return a.service.GetHistory(limit)
}

// RunChanges returns the changes a journaled run applied.
func (a *RetimeApp) RunChanges(runID string) ([]*retime.AppliedChange, error) {
	return a.service.GetRunChanges(runID)
}

// Zone returns the fixed zone captured at startup.
func (a *RetimeApp) Zone() *time.Location {
	return a.zone
}

// Close closes the journal and the log file.
func (a *RetimeApp) Close() error {
	var firstErr error

	if err := a.journal.Close(); err != nil {
		firstErr = fmt.Errorf("closing journal: %w", err)
	}

	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing log file: %w", err)
		}
	}

	return firstErr
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// promptOnStderr reports whether the confirmation question must be repeated
// on stderr: someone is typing the answer but the preview is going elsewhere.
func promptOnStderr(stdinTTY, stdoutTTY bool) bool {
	return stdinTTY && !stdoutTTY
}

// NewRequest builds the run request for dir from the schedule fields of cfg.
func NewRequest(cfg *config.Config, dir string) retime.Request {
	return retime.Request{
		Dir:    dir,
		Offset: cfg.Offset,
		Year:   cfg.Year,
		Month:  cfg.Month,
		Day:    cfg.Day,
		Hour:   cfg.Hour,
		Minute: cfg.Minute,
		Second: cfg.Second,
	}
}
