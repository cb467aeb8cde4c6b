// Package sizer estimates the RAM retained by cached values.
package sizer

import (
	"github.com/DmitriyVTitov/size"
	"go.trai.ch/sanity/internal/core/domain"
	"go.trai.ch/sanity/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SizeEstimator = (*Estimator)(nil)

// ErrNilEntry is returned when asked to estimate a nil entry.
var ErrNilEntry = zerr.New("cannot estimate the size of a nil entry")

// Estimator implements ports.SizeEstimator on top of size.Of.
// Memory reachable through several references is counted once per estimate.
type Estimator struct{}

// NewEstimator creates a new Estimator.
func NewEstimator() *Estimator {
	return &Estimator{}
}

// EstimateSize returns the approximate number of bytes retained by the entry's value.
func (e *Estimator) EstimateSize(entry *domain.CacheEntry) (uint64, error) {
	if entry == nil {
		return 0, ErrNilEntry
	}
	return e.SizeOf(entry.Value), nil
}

// SizeOf returns the approximate number of bytes retained by v.
// Values size.Of cannot measure, such as nil or unsafe pointers, count as 0.
func (e *Estimator) SizeOf(v any) uint64 {
	n := size.Of(v)
	if n < 0 {
		return 0
	}
	return uint64(n)
}
