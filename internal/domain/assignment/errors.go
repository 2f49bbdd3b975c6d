package assignment

import "errors"

var (
	ErrAssignmentNotFound = errors.New("assignment not found")

	// ErrAssignmentConflict is returned when a concurrent transition won the
	// conditional write, or the equipment already carries an open assignment.
	ErrAssignmentConflict = errors.New("equipment is no longer assignable")
)
