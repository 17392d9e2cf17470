// core/seqs/seqs.go

// Package seqs defines the read-only sequence contracts the translation
// views operate on: a Seq is a sized, randomly accessible run of symbols
// tagged with an alphabet, and a Set is a sized, randomly accessible
// collection of Seqs sharing one alphabet.
package seqs

import (
	"iter"

	"sixframe-core/alphabet"
)

// Seq is one symbol sequence. Implementations must answer Len and At in
// O(1) and must not mutate through this interface.
type Seq interface {
	Len() int
	At(i int) byte
	Alphabet() *alphabet.Alphabet
}

// Set is a collection of sequences, the outer axis of a two-dimensional
// input. Len may change between calls if the backing store is resized;
// consumers that need resize-consistency must re-query rather than cache.
type Set interface {
	Len() int
	At(i int) Seq
	Alphabet() *alphabet.Alphabet
}

// Bytes adapts a byte slice as a Seq without copying.
type Bytes struct {
	data  []byte
	alpha *alphabet.Alphabet
}

// New wraps data as a Seq over the given alphabet. The slice is shared,
// not copied.
func New(data []byte, a *alphabet.Alphabet) Bytes {
	if a == nil {
		panic("seqs: nil alphabet")
	}
	return Bytes{data: data, alpha: a}
}

// DNA wraps data as a Seq over the IUPAC DNA alphabet.
func DNA(data []byte) Bytes { return New(data, alphabet.DNA) }

func (b Bytes) Len() int                     { return len(b.data) }
func (b Bytes) At(i int) byte                { return b.data[i] }
func (b Bytes) Alphabet() *alphabet.Alphabet { return b.alpha }

// SliceSet adapts a slice of byte slices as a Set. It is held by pointer
// so that rows appended after construction are visible to views wrapping
// it; a view built on a SliceSet re-queries Len and sees the new rows.
type SliceSet struct {
	rows  [][]byte
	alpha *alphabet.Alphabet
}

// NewSliceSet builds a Set over rows, all sharing alphabet a. The rows
// are shared, not copied.
func NewSliceSet(a *alphabet.Alphabet, rows ...[]byte) *SliceSet {
	if a == nil {
		panic("seqs: nil alphabet")
	}
	return &SliceSet{rows: rows, alpha: a}
}

// Append adds rows to the set in place.
func (s *SliceSet) Append(rows ...[]byte) { s.rows = append(s.rows, rows...) }

func (s *SliceSet) Len() int                     { return len(s.rows) }
func (s *SliceSet) At(i int) Seq                 { return Bytes{data: s.rows[i], alpha: s.alpha} }
func (s *SliceSet) Alphabet() *alphabet.Alphabet { return s.alpha }

// Collect materializes a Seq into a fresh byte slice.
func Collect(s Seq) []byte {
	out := make([]byte, s.Len())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

// String materializes a Seq as a string.
func String(s Seq) string { return string(Collect(s)) }

// Values traverses the symbols of a Seq in index order.
func Values(s Seq) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for i := 0; i < s.Len(); i++ {
			if !yield(s.At(i)) {
				return
			}
		}
	}
}
