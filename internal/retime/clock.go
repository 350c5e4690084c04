package retime

import (
	"time"

	"github.com/google/uuid"
)

// Clock abstracts time retrieval so business logic is deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// IDGenerator abstracts unique ID generation so tests are deterministic.
type IDGenerator interface {
	New() string
}

// UUIDGenerator produces random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) New() string { return uuid.New().String() }

// CaptureZone returns a fixed zone carrying the UTC offset in effect at now.
// The offset is resolved once and reused for the whole run, so a daylight
// saving transition during the run does not shift later instants.
func CaptureZone(now time.Time) *time.Location {
	name, offset := now.Zone()
	return time.FixedZone(name, offset)
}
