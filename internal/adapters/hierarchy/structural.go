// Package hierarchy resolves reader hierarchies from the reader keys themselves.
package hierarchy

import (
	"go.trai.ch/sanity/internal/core/domain"
	"go.trai.ch/sanity/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ReaderHierarchy = (*Structural)(nil)

// Structural implements ports.ReaderHierarchy for keys implementing
// domain.CompositeReader. Any other key is a leaf.
type Structural struct{}

// NewStructural creates a Structural hierarchy.
func NewStructural() *Structural {
	return &Structural{}
}

// Children returns the cache keys of the contexts of a composite reader.
func (s *Structural) Children(key domain.ReaderKey) ([]domain.ReaderKey, error) {
	composite, ok := key.(domain.CompositeReader)
	if !ok {
		return nil, nil
	}

	contexts, err := composite.Contexts()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read reader contexts"), "reader", key.String())
	}

	children := make([]domain.ReaderKey, 0, len(contexts))
	for _, ctx := range contexts {
		if ctx == nil {
			continue
		}
		if child := ctx.CacheKey(); child != nil {
			children = append(children, child)
		}
	}
	return children, nil
}
