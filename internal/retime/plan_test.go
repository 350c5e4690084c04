package retime

import (
	"errors"
	"io/fs"
	"math"
	"testing"
	"time"
)

type stubInfo struct {
	name    string
	modTime time.Time
}

func (s stubInfo) Name() string       { return s.name }
func (s stubInfo) Size() int64        { return 0 }
func (s stubInfo) Mode() fs.FileMode  { return 0644 }
func (s stubInfo) ModTime() time.Time { return s.modTime }
func (s stubInfo) IsDir() bool        { return false }
func (s stubInfo) Sys() any           { return nil }

func entriesNamed(names ...string) []*Entry {
	entries := make([]*Entry, len(names))
	for i, n := range names {
		entries[i] = NewEntry("/dir/"+n, stubInfo{name: n})
	}
	return entries
}

func names(entries []*Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name()
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSortEntries(t *testing.T) {
	t.Run("byte-wise ascending", func(t *testing.T) {
		entries := entriesNamed("b.txt", "a.txt", "B.txt", "_x", "a.txt.bak", "ä.txt", "10.jpg", "9.jpg")
		SortEntries(entries)

		want := []string{"10.jpg", "9.jpg", "B.txt", "_x", "a.txt", "a.txt.bak", "b.txt", "ä.txt"}
		if got := names(entries); !equalStrings(got, want) {
			t.Errorf("SortEntries() = %v, want %v", got, want)
		}
	})

	t.Run("independent of listing order", func(t *testing.T) {
		first := entriesNamed("c", "a", "d", "b")
		second := entriesNamed("d", "b", "a", "c")
		SortEntries(first)
		SortEntries(second)

		if !equalStrings(names(first), names(second)) {
			t.Errorf("orders differ: %v vs %v", names(first), names(second))
		}

		// Sorting again changes nothing.
		again := names(first)
		SortEntries(first)
		if !equalStrings(names(first), again) {
			t.Errorf("re-sort changed order: %v vs %v", names(first), again)
		}
	})

	t.Run("ties keep listing order", func(t *testing.T) {
		entries := []*Entry{
			NewEntry("/one/x", stubInfo{name: "x"}),
			NewEntry("/dir/a", stubInfo{name: "a"}),
			NewEntry("/two/x", stubInfo{name: "x"}),
		}
		SortEntries(entries)

		if entries[1].Path() != "/one/x" || entries[2].Path() != "/two/x" {
			t.Errorf("tie order = %s, %s, want /one/x, /two/x", entries[1].Path(), entries[2].Path())
		}
	})
}

func TestBuildSchedule(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.FixedZone("", 3600))

	t.Run("no entries", func(t *testing.T) {
		changes, err := BuildSchedule(nil, start, 60)
		if err != nil {
			t.Fatalf("BuildSchedule() error = %v", err)
		}
		if len(changes) != 0 {
			t.Errorf("len(changes) = %d, want 0", len(changes))
		}
	})

	t.Run("single entry gets start exactly", func(t *testing.T) {
		changes, err := BuildSchedule(entriesNamed("a"), start, 60)
		if err != nil {
			t.Fatalf("BuildSchedule() error = %v", err)
		}
		if len(changes) != 1 || !changes[0].Target.Equal(start) {
			t.Errorf("changes = %v, want one change at %v", changes, start)
		}
	})

	t.Run("constant step", func(t *testing.T) {
		entries := entriesNamed("a", "b", "c", "d", "e")
		changes, err := BuildSchedule(entries, start, 60)
		if err != nil {
			t.Fatalf("BuildSchedule() error = %v", err)
		}
		for i, c := range changes {
			want := start.Add(time.Duration(i) * time.Minute)
			if !c.Target.Equal(want) {
				t.Errorf("changes[%d].Target = %v, want %v", i, c.Target, want)
			}
			if c.Entry != entries[i] {
				t.Errorf("changes[%d].Entry = %s, want %s", i, c.Entry.Name(), entries[i].Name())
			}
		}
	})

	t.Run("zero step repeats start", func(t *testing.T) {
		changes, err := BuildSchedule(entriesNamed("a", "b"), start, 0)
		if err != nil {
			t.Fatalf("BuildSchedule() error = %v", err)
		}
		if !changes[1].Target.Equal(start) {
			t.Errorf("changes[1].Target = %v, want %v", changes[1].Target, start)
		}
	})

	t.Run("keeps the start location", func(t *testing.T) {
		changes, err := BuildSchedule(entriesNamed("a", "b"), start, 3600)
		if err != nil {
			t.Fatalf("BuildSchedule() error = %v", err)
		}
		if _, offset := changes[1].Target.Zone(); offset != 3600 {
			t.Errorf("offset = %d, want 3600", offset)
		}
	})

	t.Run("overflow is an error", func(t *testing.T) {
		edge := time.Unix(maxUnix-10, 0)
		_, err := BuildSchedule(entriesNamed("a", "b"), edge, 60)
		if !errors.Is(err, ErrOverflow) {
			t.Errorf("BuildSchedule() error = %v, want ErrOverflow", err)
		}
	})

	t.Run("single entry at the edge does not overflow", func(t *testing.T) {
		edge := time.Unix(maxUnix-10, 0)
		if _, err := BuildSchedule(entriesNamed("a"), edge, 60); err != nil {
			t.Errorf("BuildSchedule() error = %v", err)
		}
	})

	t.Run("offset beyond duration range", func(t *testing.T) {
		year0 := time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC)
		changes, err := BuildSchedule(entriesNamed("a", "b"), year0, 10_000_000_000)
		if err != nil {
			t.Fatalf("BuildSchedule() error = %v", err)
		}
		want := time.Date(316, 11, 20, 17, 46, 40, 0, time.UTC)
		if !changes[1].Target.Equal(want) {
			t.Errorf("changes[1].Target = %v, want %v", changes[1].Target, want)
		}
	})

	t.Run("keeps fractional seconds", func(t *testing.T) {
		frac := start.Add(250 * time.Millisecond)
		changes, err := BuildSchedule(entriesNamed("a", "b"), frac, 1)
		if err != nil {
			t.Fatalf("BuildSchedule() error = %v", err)
		}
		if want := frac.Add(time.Second); !changes[1].Target.Equal(want) {
			t.Errorf("changes[1].Target = %v, want %v", changes[1].Target, want)
		}
	})

	t.Run("huge offset with one entry is never added", func(t *testing.T) {
		if _, err := BuildSchedule(entriesNamed("a"), start, math.MaxUint64); err != nil {
			t.Errorf("BuildSchedule() error = %v", err)
		}
	})

	t.Run("offset above int64 overflows on the second entry", func(t *testing.T) {
		_, err := BuildSchedule(entriesNamed("a", "b"), start, math.MaxUint64)
		if !errors.Is(err, ErrOverflow) {
			t.Errorf("BuildSchedule() error = %v, want ErrOverflow", err)
		}
	})
}
