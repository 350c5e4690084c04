package retime

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"
)

// unixToInternal is the number of seconds between year 1 and the Unix epoch.
const unixToInternal int64 = 62135596800

// maxUnix is the largest Unix second a time.Time can hold.
const maxUnix = math.MaxInt64 - unixToInternal

// PlannedChange pairs an entry with the modification time it will receive.
type PlannedChange struct {
	Entry  *Entry
	Target time.Time
}

// Plan is the ordered schedule for one run. It is computed once before the
// confirmation prompt and applied unchanged.
type Plan struct {
	Dir     string
	Offset  uint64
	Changes []PlannedChange
}

// SortEntries orders entries by name, byte-wise ascending. Ties keep their
// listing order.
func SortEntries(entries []*Entry) {
	slices.SortStableFunc(entries, func(a, b *Entry) int {
		return strings.Compare(a.Name(), b.Name())
	})
}

// BuildSchedule assigns start to the first entry and adds offset seconds for
// each following one. Offsets are whole seconds and may exceed the range of a
// time.Duration; only an instant past the representable range is an error.
func BuildSchedule(entries []*Entry, start time.Time, offset uint64) ([]PlannedChange, error) {
	changes := make([]PlannedChange, 0, len(entries))
	target := start
	for i, e := range entries {
		if i > 0 {
			if offset > math.MaxInt64 || target.Unix() > maxUnix-int64(offset) {
				return nil, fmt.Errorf("%w: %s plus %d seconds for %s", ErrOverflow,
					FormatInstant(target), offset, e.Name())
			}
			target = time.Unix(target.Unix()+int64(offset), int64(target.Nanosecond())).In(target.Location())
		}
		changes = append(changes, PlannedChange{Entry: e, Target: target})
	}
	return changes, nil
}
