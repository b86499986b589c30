package stats

import "errors"

var (
	// ErrRepositoryRequired is returned when a tracker is constructed
	// without a stats repository.
	ErrRepositoryRequired = errors.New("stats repository required")

	// ErrEmptyTerm is returned when a blank search term is recorded.
	ErrEmptyTerm = errors.New("empty search term")
)
