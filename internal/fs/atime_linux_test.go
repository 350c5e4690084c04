//go:build linux

package fs

import (
	"syscall"
	"testing"
	"time"
)

func accessTime(t *testing.T, path string) (time.Time, bool) {
	t.Helper()
	var st syscall.Stat_t
	if err := syscall.Stat(path, &st); err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	return time.Unix(int64(st.Atim.Sec), int64(st.Atim.Nsec)), true
}
