package domain

import "errors"

// Domain errors represent conditions that make a whole run unusable. Per-ballot
// rule violations are not errors; they travel in ValidationResult and end up in
// the report. These errors can be checked with errors.Is.
var (
	// ErrNoHeader is returned when the input has no header row.
	ErrNoHeader = errors.New("heattally: input has no header row")

	// ErrNoSongColumns is returned when the header contains no recognizable
	// song columns.
	ErrNoSongColumns = errors.New("heattally: no song columns in header")

	// ErrUnsupportedFormat is returned for input files with an unknown
	// extension.
	ErrUnsupportedFormat = errors.New("heattally: unsupported input format")

	// ErrInvalidRules is returned when rules validation fails.
	ErrInvalidRules = errors.New("heattally: invalid rules")

	// ErrUnresolvedTie is reported when two songs remain fully tied after
	// the tie-break cascade is exhausted.
	ErrUnresolvedTie = errors.New("heattally: unresolved tie")
)
