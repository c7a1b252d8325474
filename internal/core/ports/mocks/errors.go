package mocks

import "errors"

var (
	// ErrExtractNotFound is returned when no extract has been set for a title.
	ErrExtractNotFound = errors.New("extract not found")

	// ErrNoAstronauts is returned when the gateway has no response configured.
	ErrNoAstronauts = errors.New("astronauts response not set")
)
