package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyPool indicates a content pool has no items at all.
	// Selection can degrade past exclusions and scores, but not past
	// an empty corpus.
	ErrEmptyPool = errors.New("content pool is empty")

	// ErrChartIncomplete indicates a natal chart places none of the
	// reference points the transit computer needs.
	ErrChartIncomplete = errors.New("natal chart places no reference points")

	// ErrEphemerisUnavailable indicates the ephemeris collaborator is
	// not configured. Transit-dependent content degrades to general
	// selections.
	ErrEphemerisUnavailable = errors.New("ephemeris unavailable")

	// ErrStoreUnavailable indicates the persistence store cannot be
	// reached. Callers degrade to an empty exclusion set.
	ErrStoreUnavailable = errors.New("store unavailable")
)
