package retime

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDate is returned when year, month and day do not form a calendar date.
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrInvalidTime is returned when hour, minute and second do not form a clock time.
	ErrInvalidTime = errors.New("invalid time of day")

	// ErrOverflow is returned when a planned instant cannot be represented.
	ErrOverflow = errors.New("timestamp out of range")

	// ErrNotDirectory is returned when the target path is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)

// WriteError reports a failure to update one entry's modification time.
// Entries before it in the plan have already been updated.
type WriteError struct {
	Name string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("updating modification time of %s: %v", e.Name, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
