package retime

import (
	"io/fs"
	"time"
)

// Entry is one filesystem entry found directly inside the target directory.
// Its metadata is captured once at listing time and never refreshed.
type Entry struct {
	path string
	info fs.FileInfo
}

// NewEntry creates an Entry from its full path and the info read at listing time.
// This is primarily for use by FilesystemManager implementations.
func NewEntry(path string, info fs.FileInfo) *Entry {
	return &Entry{path: path, info: info}
}

// Name returns the entry's base name.
func (e *Entry) Name() string {
	return e.info.Name()
}

// Path returns the full path of the entry.
func (e *Entry) Path() string {
	return e.path
}

// ModTime returns the modification time read at listing time.
func (e *Entry) ModTime() time.Time {
	return e.info.ModTime()
}

// Info returns the cached file info from when the entry was listed.
func (e *Entry) Info() fs.FileInfo {
	return e.info
}
