package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"retime/internal/retime"
)

// OSFilesystemManager is the real filesystem implementation of FilesystemManager.
// It performs actual filesystem operations using the os package.
type OSFilesystemManager struct {
	ignore *IgnoreMatcher
}

// NewOSFilesystemManager creates a new filesystem manager that operates on the real filesystem.
// Entries whose names match any of ignorePatterns are left out of listings.
func NewOSFilesystemManager(ignorePatterns []string) *OSFilesystemManager {
	return &OSFilesystemManager{ignore: NewIgnoreMatcher(ignorePatterns)}
}

// ListDir returns the immediate entries of dir.
func (m *OSFilesystemManager) ListDir(dir string) ([]*retime.Entry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("opening directory: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", retime.ErrNotDirectory, dir)
	}

	dirEntries, err := f.ReadDir(-1)
	if err != nil && len(dirEntries) == 0 {
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	entries := make([]*retime.Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if m.ignore.Match(de.Name()) {
			continue
		}
		// The entry may have vanished or be unreadable since the directory was read.
		fi, err := de.Info()
		if err != nil {
			continue
		}
		entries = append(entries, retime.NewEntry(filepath.Join(dir, de.Name()), fi))
	}

	return entries, nil
}

// SetModTime opens the entry and sets its modification time.
func (m *OSFilesystemManager) SetModTime(entry *retime.Entry, mtime time.Time) error {
	f, err := os.Open(entry.Path())
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return setModTime(entry.Path(), mtime)
}

// Compile-time check that OSFilesystemManager implements retime.FilesystemManager interface
var _ retime.FilesystemManager = (*OSFilesystemManager)(nil)
