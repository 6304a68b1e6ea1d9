package domain

import "errors"

var (
	// ErrNotFound is returned by the boundary when a requested id has no row.
	ErrNotFound = errors.New("not found")

	// ErrReferenceNotFound is returned when a caller-supplied foreign id does not exist.
	ErrReferenceNotFound = errors.New("referenced record does not exist")

	// ErrDuplicateOrInvalid is returned when a write violates uniqueness or another column constraint.
	ErrDuplicateOrInvalid = errors.New("duplicate or invalid data")

	// ErrReferenceInUse is returned when deleting a row that dependent rows still reference.
	ErrReferenceInUse = errors.New("record is still referenced")
)
