package journal

import (
	"fmt"
	"os"
	"path/filepath"

	"retime/internal/config"
	"retime/internal/retime"
)

// journalFile is the database file name inside the configured data directory.
const journalFile = "journal.db"

// NewJournalFromConfig creates a Journal implementation based on the journal config type.
// An empty type disables journaling.
func NewJournalFromConfig(cfg config.JournalConfig) (retime.Journal, error) {
	switch cfg.Type {
	case "":
		return retime.NewNopJournal(), nil
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for sqlite journal")
		}
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("creating journal directory: %w", err)
		}
		return openSQLite(filepath.Join(cfg.DataDir, journalFile))
	case "memory":
		return openSQLite(":memory:")
	default:
		return nil, fmt.Errorf("unknown journal type: %s", cfg.Type)
	}
}

// openSQLite keeps a failed open from becoming a non-nil interface holding a nil pointer.
func openSQLite(path string) (retime.Journal, error) {
	j, err := NewSQLiteJournal(path)
	if err != nil {
		return nil, err
	}
	return j, nil
}
