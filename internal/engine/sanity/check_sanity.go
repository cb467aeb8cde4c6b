package sanity

import (
	"go.trai.ch/sanity/internal/adapters/hierarchy"
	"go.trai.ch/sanity/internal/adapters/logger"
	"go.trai.ch/sanity/internal/adapters/sizer"
	"go.trai.ch/sanity/internal/core/domain"
)

// CheckSanity checks entries with size estimation enabled. Reader
// hierarchies are taken from the reader keys that implement
// domain.CompositeReader; any other key is a leaf.
func CheckSanity(entries ...*domain.CacheEntry) ([]domain.Insanity, error) {
	checker := NewChecker(hierarchy.NewStructural(), sizer.NewEstimator(), logger.New())
	checker.SetEstimateSize(true)
	return checker.Check(entries...)
}
