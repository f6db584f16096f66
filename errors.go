package housing

import (
	"errors"
	"fmt"
)

// ErrSourceNotFound reports that the raw index file is absent from its
// well-known location. Callers (the CLI) catch it with errors.Is and direct
// the user to run the fetch step; it is never retried in-process.
var ErrSourceNotFound = errors.New("housing data file not found")

// MalformedDateError reports a column whose name looks like a date (it has a
// 4-digit year prefix) but cannot be parsed as one. It is fatal for the load.
type MalformedDateError struct {
	Column string
	Err    error
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed date column %q: %v", e.Column, e.Err)
}

func (e *MalformedDateError) Unwrap() error { return e.Err }
