package retime

import "time"

// FilesystemManager provides the filesystem operations a run needs.
// It abstracts file access to enable testing without touching the real filesystem.
type FilesystemManager interface {
	// ListDir returns the immediate entries of dir, without recursion.
	// Entries whose metadata cannot be read are skipped. An error is returned
	// only when dir itself cannot be opened and read as a directory.
	ListDir(dir string) ([]*Entry, error)

	// SetModTime opens the entry and sets its modification time to mtime.
	// The access time is left unchanged.
	SetModTime(entry *Entry, mtime time.Time) error
}
