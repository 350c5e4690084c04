//go:build !linux

package fs

import (
	"os"
	"time"
)

// setModTime sets only the modification time of path. A zero atime leaves
// the access time unchanged.
func setModTime(path string, mtime time.Time) error {
	return os.Chtimes(path, time.Time{}, mtime)
}
