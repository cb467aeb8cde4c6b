// Package domain contains the core models of the field cache sanity checker:
// cache entries, reader identities, the reader-field multimaps and the
// insanities reported about them.
package domain

import "fmt"

// ReaderKey is the opaque identity a cache entry is keyed by.
// Keys are compared with ==, so implementations should be pointer types;
// two distinct readers must never compare equal.
type ReaderKey interface {
	fmt.Stringer
}

// ReaderContext is a handle on a child of a composite reader.
type ReaderContext interface {
	// CacheKey returns the identity the child reader uses for cache entries.
	CacheKey() ReaderKey
}

// CompositeReader is implemented by reader keys that aggregate sub-readers.
type CompositeReader interface {
	ReaderKey
	// Contexts returns the direct children of the reader in order.
	// It returns ErrAlreadyClosed once the reader has been closed.
	Contexts() ([]ReaderContext, error)
}

// Bits is implemented by bitset-like cached values, such as the
// docs-with-field sets stored next to a cached array.
type Bits interface {
	Get(index int) bool
	Len() int
}

// CreationPlaceholder marks a cache slot whose value is still being computed.
type CreationPlaceholder struct {
	Value any
}

// IsIgnoredValue reports whether v is a companion value that never takes part
// in sanity checks: bitsets and creation placeholders.
// FIXME: skipping these may mask real duplication of the bitsets themselves.
func IsIgnoredValue(v any) bool {
	switch v.(type) {
	case Bits, *CreationPlaceholder, CreationPlaceholder:
		return true
	default:
		return false
	}
}
