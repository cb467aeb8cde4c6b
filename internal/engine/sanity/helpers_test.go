package sanity_test

import (
	"go.trai.ch/sanity/internal/core/domain"
)

// node is an in-memory reader used to build test hierarchies.
type node struct {
	name   string
	kids   []*node
	closed bool
}

func newNode(name string, kids ...*node) *node {
	return &node{name: name, kids: kids}
}

func (n *node) String() string {
	return n.name
}

// Contexts lets hierarchy.Structural walk nodes.
func (n *node) Contexts() ([]domain.ReaderContext, error) {
	if n.closed {
		return nil, domain.ErrAlreadyClosed
	}
	out := make([]domain.ReaderContext, 0, len(n.kids))
	for _, k := range n.kids {
		out = append(out, nodeContext{k})
	}
	return out, nil
}

type nodeContext struct{ n *node }

func (c nodeContext) CacheKey() domain.ReaderKey { return c.n }

// tree resolves the children of *node keys and treats anything else as a leaf.
type tree struct{}

func (tree) Children(key domain.ReaderKey) ([]domain.ReaderKey, error) {
	n, ok := key.(*node)
	if !ok {
		return nil, nil
	}
	if n.closed {
		return nil, domain.ErrAlreadyClosed
	}
	out := make([]domain.ReaderKey, 0, len(n.kids))
	for _, k := range n.kids {
		out = append(out, k)
	}
	return out, nil
}

type docsWithField []bool

func (d docsWithField) Get(i int) bool { return d[i] }
func (d docsWithField) Len() int       { return len(d) }

func floats(reader domain.ReaderKey, field string, values []float64) *domain.CacheEntry {
	return domain.NewCacheEntry(reader, field, "float64s", values)
}

func keyNames(keys []domain.ReaderKey) []string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return names
}
