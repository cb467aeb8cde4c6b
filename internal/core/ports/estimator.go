package ports

import "go.trai.ch/sanity/internal/core/domain"

// SizeEstimator estimates the RAM used by a cached value.
//
//go:generate go run go.uber.org/mock/mockgen -source=estimator.go -destination=mocks/mock_estimator.go -package=mocks
type SizeEstimator interface {
	// EstimateSize returns the approximate number of bytes retained by the entry's value.
	EstimateSize(entry *domain.CacheEntry) (uint64, error)
}
