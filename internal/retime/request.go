package retime

import (
	"fmt"
	"time"
)

// Request is the immutable description of one run, built once from the
// command line. Offset is the spacing between consecutive entries in seconds.
type Request struct {
	Dir    string
	Offset uint64
	Year   int32
	Month  uint8
	Day    uint8
	Hour   uint8
	Minute uint8
	Second uint8
}

// Validate checks the date and time of day without touching the filesystem.
// Any offset is accepted here; BuildSchedule reports it when adding it leaves
// the representable range.
func (r Request) Validate() error {
	if err := r.validateDate(); err != nil {
		return err
	}
	return r.validateTime()
}

func (r Request) validateDate() error {
	if r.Month < 1 || r.Month > 12 {
		return fmt.Errorf("%w: month %d is not in 1-12", ErrInvalidDate, r.Month)
	}
	if last := daysIn(int(r.Year), time.Month(r.Month)); r.Day < 1 || int(r.Day) > last {
		return fmt.Errorf("%w: day %d is not in 1-%d for %04d-%02d", ErrInvalidDate, r.Day, last, r.Year, r.Month)
	}
	return nil
}

func (r Request) validateTime() error {
	switch {
	case r.Hour > 23:
		return fmt.Errorf("%w: hour %d is not in 0-23", ErrInvalidTime, r.Hour)
	case r.Minute > 59:
		return fmt.Errorf("%w: minute %d is not in 0-59", ErrInvalidTime, r.Minute)
	case r.Second > 59:
		return fmt.Errorf("%w: second %d is not in 0-59", ErrInvalidTime, r.Second)
	}
	return nil
}

// Start returns the first planned instant: the requested date and time of
// day anchored to loc.
func (r Request) Start(loc *time.Location) (time.Time, error) {
	if err := r.validateDate(); err != nil {
		return time.Time{}, err
	}
	if err := r.validateTime(); err != nil {
		return time.Time{}, err
	}
	return time.Date(int(r.Year), time.Month(r.Month), int(r.Day),
		int(r.Hour), int(r.Minute), int(r.Second), 0, loc), nil
}

// daysIn returns the number of days in month m of year.
func daysIn(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
