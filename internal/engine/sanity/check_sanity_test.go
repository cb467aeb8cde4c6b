package sanity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sanity/internal/core/domain"
	"go.trai.ch/sanity/internal/engine/sanity"
)

func TestCheckSanity(t *testing.T) {
	seg := newNode("seg0")
	top := newNode("top", seg)

	parent := floats(top, "price", []float64{1, 2, 3})
	child := floats(seg, "price", []float64{1, 2, 3})

	got, err := sanity.CheckSanity(parent, child)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, domain.InsanitySubreader, got[0].Type())
	assert.Equal(t, "Found caches for decendents of top+price", got[0].Msg())
	assert.Equal(t, []*domain.CacheEntry{parent, child}, got[0].Entries())

	assert.NotEmpty(t, parent.EstimatedSize())
	assert.NotEmpty(t, child.EstimatedSize())
	assert.Contains(t, got[0].String(), "size =~")
}

func TestCheckSanity_Empty(t *testing.T) {
	got, err := sanity.CheckSanity()
	require.NoError(t, err)
	assert.Empty(t, got)
}
