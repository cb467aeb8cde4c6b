package domain_test

import "go.trai.ch/sanity/internal/core/domain"

// testReader is a minimal ReaderKey used by the domain tests.
type testReader struct {
	name string
}

func (r *testReader) String() string {
	return r.name
}

var _ domain.ReaderKey = (*testReader)(nil)

type testBits []bool

func (b testBits) Get(i int) bool { return b[i] }
func (b testBits) Len() int       { return len(b) }
