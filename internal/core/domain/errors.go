package domain

import "errors"

// Domain errors represent comparison-logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested object does not exist in the file.
	ErrNotFound = errors.New("object not found")

	// ErrNoMatch indicates a selection regexp left no keys to compare.
	ErrNoMatch = errors.New("no keys left after selection")

	// ErrNotDirectory indicates a path was listed as if it were a directory.
	ErrNotDirectory = errors.New("not a directory")
)
