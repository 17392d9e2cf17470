// core/seqtest/seqtest.go

// Package seqtest checks the laws every sized random-access view in this
// codebase must obey. Tests of concrete views call these helpers instead
// of re-asserting the same properties package by package.
package seqtest

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"
)

// Indexed is the minimal sized random-access shape under test.
type Indexed[E any] interface {
	Len() int
	At(i int) E
}

// Check asserts the core laws of a sized random-access view:
// non-negative idempotent Len, stable At, and At panicking outside
// [0, Len()). eq decides element equality.
func Check[E any](t *testing.T, v Indexed[E], eq func(a, b E) bool) {
	t.Helper()

	n := v.Len()
	require.GreaterOrEqual(t, n, 0, "Len must be non-negative")
	require.Equal(t, n, v.Len(), "Len must be idempotent")

	for i := 0; i < n; i++ {
		a, b := v.At(i), v.At(i)
		require.True(t, eq(a, b), "At(%d) must be stable across calls", i)
	}

	require.Panics(t, func() { v.At(-1) }, "At(-1) must panic")
	require.Panics(t, func() { v.At(n) }, "At(Len()) must panic")
}

// CheckIter asserts that a traversal yields exactly the elements of v in
// index order.
func CheckIter[E any](t *testing.T, v Indexed[E], values iter.Seq[E], eq func(a, b E) bool) {
	t.Helper()

	i := 0
	for e := range values {
		require.Less(t, i, v.Len(), "traversal yielded more than Len elements")
		require.True(t, eq(e, v.At(i)), "traversal element %d differs from At(%d)", i, i)
		i++
	}
	require.Equal(t, v.Len(), i, "traversal must yield exactly Len elements")
}

// EqByte is the eq argument for byte-element views.
func EqByte(a, b byte) bool { return a == b }
