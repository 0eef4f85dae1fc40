package timesheet

import "errors"

var (
	ErrEntryNotFound = errors.New("Time entry not found")
)
