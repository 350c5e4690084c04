package testutil

import (
	"fmt"
	"time"
)

// StubClock returns a fixed time until advanced.
type StubClock struct {
	now time.Time
}

// NewStubClock creates a StubClock set to the given time.
func NewStubClock(t time.Time) *StubClock {
	return &StubClock{now: t}
}

// FixedClock returns a StubClock set to 2024-01-15 10:30:00 UTC.
func FixedClock() *StubClock {
	return NewStubClock(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))
}

// OffsetClock returns a StubClock set to 2024-01-15 10:30:00 in a zone
// offsetHours east of UTC.
func OffsetClock(offsetHours int) *StubClock {
	zone := time.FixedZone(fmt.Sprintf("UTC%+d", offsetHours), offsetHours*60*60)
	return NewStubClock(time.Date(2024, 1, 15, 10, 30, 0, 0, zone))
}

func (c *StubClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *StubClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// StubIDGenerator returns sequential IDs: "run-1", "run-2", etc.
type StubIDGenerator struct {
	counter int
}

func NewStubIDGenerator() *StubIDGenerator {
	return &StubIDGenerator{}
}

func (g *StubIDGenerator) New() string {
	g.counter++
	return fmt.Sprintf("run-%d", g.counter)
}
