package search

import "errors"

var (
	// ErrCatalogNotLoaded is returned when a search is attempted before a
	// catalog has been set.
	ErrCatalogNotLoaded = errors.New("catalog not loaded")

	// ErrInvalidMode is returned when an unknown matching mode is supplied.
	ErrInvalidMode = errors.New("invalid matching mode")
)
