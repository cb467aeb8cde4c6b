package ports

import "go.trai.ch/sanity/internal/core/domain"

// ReaderHierarchy resolves the structure of composite readers.
//
//go:generate go run go.uber.org/mock/mockgen -source=hierarchy.go -destination=mocks/mock_hierarchy.go -package=mocks
type ReaderHierarchy interface {
	// Children returns the cache keys of the direct children of key.
	// A leaf reader, or a key that is not a reader at all, has no children.
	// It returns domain.ErrAlreadyClosed when key refers to a closed reader.
	Children(key domain.ReaderKey) ([]domain.ReaderKey, error)
}
