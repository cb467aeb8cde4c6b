// Package sanity implements the field cache sanity checker.
//
// A check indexes a snapshot of cache entries by value identity and by
// reader and field, then looks for two kinds of waste: several distinct
// values cached for the same reader and field (VALUE_MISMATCH), and a field
// cached both on a composite reader and on one of its descendants
// (SUBREADER). The checker only reports; it never changes the cache.
package sanity

import (
	"fmt"

	"go.trai.ch/sanity/internal/core/domain"
	"go.trai.ch/sanity/internal/core/ports"
)

// Checker finds insanity in a snapshot of field cache entries.
// It keeps no state between checks apart from the estimate-size flag, which
// must not be changed while a check is running.
type Checker struct {
	hierarchy    ports.ReaderHierarchy
	estimator    ports.SizeEstimator
	logger       ports.Logger
	estimateSize bool
}

// NewChecker creates a Checker that walks readers with hierarchy and, when
// size estimation is enabled, measures entries with estimator.
func NewChecker(hierarchy ports.ReaderHierarchy, estimator ports.SizeEstimator, logger ports.Logger) *Checker {
	return &Checker{
		hierarchy: hierarchy,
		estimator: estimator,
		logger:    logger,
	}
}

// SetEstimateSize controls whether every entry's RAM usage is estimated
// before the analysis. It is off by default.
func (c *Checker) SetEstimateSize(flag bool) {
	c.estimateSize = flag
}

// EstimateSize reports whether entry sizes are estimated before the analysis.
func (c *Checker) EstimateSize() bool {
	return c.estimateSize
}

// Check analyzes the given entries and returns the insanities found:
// value mismatches first, then subreader overlaps.
// Errors from the size estimator are returned unchanged.
func (c *Checker) Check(entries ...*domain.CacheEntry) ([]domain.Insanity, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	if c.estimateSize && c.estimator != nil {
		for _, entry := range entries {
			size, err := c.estimator.EstimateSize(entry)
			if err != nil {
				return nil, err
			}
			entry.SetEstimatedSize(size)
		}
	}

	idx := buildIndex(entries)

	mismatches, err := checkValueMismatch(idx)
	if err != nil {
		return nil, err
	}

	subreaders, err := c.checkSubreaders(idx)
	if err != nil {
		return nil, err
	}

	return append(mismatches, subreaders...), nil
}

// walkFailed is called for readers whose children could not be resolved.
func (c *Checker) walkFailed(key domain.ReaderKey, err error) {
	if c.logger == nil {
		return
	}
	c.logger.Warn(fmt.Sprintf("treating reader %s as a leaf: %v", key, err))
}
