package assignment

import "errors"

var (
	ErrAssignmentNotFound = errors.New("Assignment not found")
)
