//go:build linux

package fs

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// setModTime sets only the modification time of path. utimensat takes
// seconds and nanoseconds directly, so any instant whose Unix seconds fit the
// platform timespec is accepted, including years before 1678.
func setModTime(path string, mtime time.Time) error {
	ts, err := unix.TimeToTimespec(mtime)
	if err != nil {
		return fmt.Errorf("converting %s to timespec: %w", mtime.Format(time.RFC3339), err)
	}

	times := []unix.Timespec{{Nsec: unix.UTIME_OMIT}, ts}
	if err := unix.UtimesNanoAt(unix.AT_FDCWD, path, times, 0); err != nil {
		return &os.PathError{Op: "utimensat", Path: path, Err: err}
	}
	return nil
}
