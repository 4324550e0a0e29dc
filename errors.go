package introfinder

import "errors"

var (
	// ErrTooFewFiles is returned by Run when fewer than two files decoded
	// successfully, since discovery needs at least one adjacent pair to
	// seed a candidate from.
	ErrTooFewFiles = errors.New("introfinder: at least two decodable files are required")

	// ErrNoIntroFound is returned by Run when discovery finished without
	// any file's score reaching the acceptance threshold.
	// This is a clean, expected outcome rather than a failure — some
	// episode sets genuinely don't share a detectable intro — so callers
	// should treat it as informational, not fatal.
	ErrNoIntroFound = errors.New("introfinder: no shared intro found among the given files")
)
