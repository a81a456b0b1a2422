package arxiv

import (
	"errors"
	"fmt"
)

// Common errors returned by this package.
var (
	// ErrNotFound indicates a single-identifier lookup yielded zero entries.
	// This is an expected outcome, not an exceptional one.
	ErrNotFound = errors.New("paper not found")

	// ErrNetwork indicates a network failure talking to the arXiv API.
	ErrNetwork = errors.New("network error communicating with arXiv")

	// ErrStale indicates a load was superseded by a newer request for the
	// same query key and its result was discarded.
	ErrStale = errors.New("load superseded by newer request")
)

// ParseError indicates the feed text is not well-formed XML. It is raised
// by ParseFeed and must surface to the caller; it is not recoverable
// locally.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse feed: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError indicates a single RawEntry could not be normalized:
// a hard-required field is missing, the category set is empty, or the
// date pair is inverted. It applies to one entry only; callers typically
// skip the offending entry and continue with the rest of the feed.
type ValidationError struct {
	EntryID string // raw id text of the entry, may be empty
	Field   string
	Reason  string
}

func (e *ValidationError) Error() string {
	if e.EntryID != "" {
		return fmt.Sprintf("invalid entry %s: %s: %s", e.EntryID, e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid entry: %s: %s", e.Field, e.Reason)
}

// IsNotFound reports whether err indicates a paper was not found.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsNetwork reports whether err indicates a network problem.
func IsNetwork(err error) bool {
	return errors.Is(err, ErrNetwork)
}
