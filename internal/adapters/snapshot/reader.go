package snapshot

import (
	"go.trai.ch/sanity/internal/core/domain"
)

var (
	_ domain.CompositeReader = (*Reader)(nil)
	_ domain.ReaderContext   = readerContext{}
	_ domain.Bits            = (*Bits)(nil)
)

// Reader is a reader declared in a snapshot.
type Reader struct {
	id       string
	children []*Reader
	closed   bool
}

// String returns the reader id.
func (r *Reader) String() string {
	return r.id
}

// Contexts returns the children of the reader.
func (r *Reader) Contexts() ([]domain.ReaderContext, error) {
	if r.closed {
		return nil, domain.ErrAlreadyClosed
	}
	contexts := make([]domain.ReaderContext, len(r.children))
	for i, child := range r.children {
		contexts[i] = readerContext{reader: child}
	}
	return contexts, nil
}

type readerContext struct {
	reader *Reader
}

func (c readerContext) CacheKey() domain.ReaderKey {
	return c.reader
}

// Value is a cached array loaded from a snapshot.
type Value struct {
	Handle string
	Data   []float64
}

// Bits is a docs-with-field bitset loaded from a snapshot.
type Bits struct {
	set []bool
}

// Get reports whether bit i is set.
func (b *Bits) Get(i int) bool {
	return i >= 0 && i < len(b.set) && b.set[i]
}

// Len returns the number of bits.
func (b *Bits) Len() int {
	return len(b.set)
}
