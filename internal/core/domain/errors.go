package domain

import "go.trai.ch/zerr"

var (
	// ErrNoEntries is returned when an Insanity is constructed without any supporting cache entries.
	ErrNoEntries = zerr.New("insanity requires at least one cache entry")

	// ErrInvalidInsanityType is returned when an Insanity is constructed with an unknown type.
	ErrInvalidInsanityType = zerr.New("invalid insanity type")

	// ErrAlreadyClosed is returned by readers whose context is requested after they were closed.
	ErrAlreadyClosed = zerr.New("reader already closed")

	// ErrInsanityFound is returned when a check reports findings that are not marked as expected.
	ErrInsanityFound = zerr.New("field cache insanity found")

	// ErrNoSnapshotsSpecified is returned when a check is requested without any snapshot files.
	ErrNoSnapshotsSpecified = zerr.New("no snapshots specified")

	// ErrSnapshotNotFound is returned when a snapshot path or pattern matches no file.
	ErrSnapshotNotFound = zerr.New("snapshot not found")

	// ErrInvalidExpectedRule is returned when an expected rule can match nothing.
	ErrInvalidExpectedRule = zerr.New("expected rule needs a message or a fingerprint")

	// ErrUnknownReader is returned when a snapshot references a reader that is not declared.
	ErrUnknownReader = zerr.New("unknown reader")

	// ErrDuplicateReader is returned when a snapshot declares the same reader id twice.
	ErrDuplicateReader = zerr.New("reader already declared")

	// ErrUnknownSentinel is returned when a snapshot entry names an unsupported sentinel value.
	ErrUnknownSentinel = zerr.New("unknown sentinel")
)
