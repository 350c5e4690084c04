package testutil

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"retime/internal/retime"
)

// MockFile represents an entry in the mock filesystem.
type MockFile struct {
	ModTime     time.Time
	IsDirectory bool
	// WriteErr, when set, is returned by SetModTime for this entry.
	WriteErr error
}

// MockFilesystemManager is an in-memory filesystem for testing.
// Listings come back in map order, so callers cannot rely on it.
type MockFilesystemManager struct {
	files  map[string]*MockFile
	writes []string
}

// NewMockFilesystemManager creates a new mock filesystem.
func NewMockFilesystemManager() *MockFilesystemManager {
	return &MockFilesystemManager{
		files: make(map[string]*MockFile),
	}
}

// AddFile adds a file with the given modification time.
func (m *MockFilesystemManager) AddFile(path string, modTime time.Time) {
	m.files[path] = &MockFile{ModTime: modTime}
}

// AddDirectory adds a directory to the mock filesystem.
func (m *MockFilesystemManager) AddDirectory(path string) {
	m.files[path] = &MockFile{ModTime: time.Now(), IsDirectory: true}
}

// FailWrites makes every later SetModTime on path return err.
func (m *MockFilesystemManager) FailWrites(path string, err error) {
	m.files[path].WriteErr = err
}

// ModTime returns the current modification time of path.
func (m *MockFilesystemManager) ModTime(path string) time.Time {
	return m.files[path].ModTime
}

// Writes returns the paths passed to successful SetModTime calls, in order.
func (m *MockFilesystemManager) Writes() []string {
	return m.writes
}

func (m *MockFilesystemManager) ListDir(dir string) ([]*retime.Entry, error) {
	d, ok := m.files[dir]
	if !ok {
		return nil, fmt.Errorf("opening directory: %w", fs.ErrNotExist)
	}
	if !d.IsDirectory {
		return nil, fmt.Errorf("%w: %s", retime.ErrNotDirectory, dir)
	}

	var entries []*retime.Entry
	for path, file := range m.files {
		if path == dir || filepath.Dir(path) != dir {
			continue
		}
		entries = append(entries, retime.NewEntry(path, &mockFileInfo{
			name:    filepath.Base(path),
			modTime: file.ModTime,
			isDir:   file.IsDirectory,
		}))
	}
	return entries, nil
}

func (m *MockFilesystemManager) SetModTime(entry *retime.Entry, mtime time.Time) error {
	file, ok := m.files[entry.Path()]
	if !ok {
		return fmt.Errorf("open %s: %w", entry.Path(), fs.ErrNotExist)
	}
	if file.WriteErr != nil {
		return file.WriteErr
	}
	file.ModTime = mtime
	m.writes = append(m.writes, entry.Path())
	return nil
}

// mockFileInfo implements fs.FileInfo
type mockFileInfo struct {
	name    string
	modTime time.Time
	isDir   bool
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return 0 }
func (m *mockFileInfo) Mode() fs.FileMode  { return m.mode() }
func (m *mockFileInfo) ModTime() time.Time { return m.modTime }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() any           { return nil }

func (m *mockFileInfo) mode() fs.FileMode {
	if m.isDir {
		return fs.ModeDir | 0755
	}
	return 0644
}

// Compile-time check
var _ retime.FilesystemManager = (*MockFilesystemManager)(nil)
