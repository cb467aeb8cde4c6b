package ports

import "go.trai.ch/sanity/internal/core/domain"

// SnapshotLoader reads a dump of a field cache.
//
//go:generate go run go.uber.org/mock/mockgen -source=snapshot_loader.go -destination=mocks/mock_snapshot_loader.go -package=mocks
type SnapshotLoader interface {
	// Load reads the snapshot at path and returns its cache entries in file order.
	Load(path string) ([]*domain.CacheEntry, error)
}
