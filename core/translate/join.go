// core/translate/join.go
package translate

import (
	"fmt"
	"iter"

	"sixframe-core/frames"
	"sixframe-core/seqs"
)

// Join is the flat multi-frame translation of a sequence set: one element
// per (sequence, frame) pair, sized and randomly indexable. Elements of
// one input sequence are adjacent, each block listing its frames in
// canonical order, so element n is sequence n/s under frame n%s where s
// is the number of selected frames.
//
// The frame list is fixed at construction; the outer length is re-queried
// on every Len and At call, never cached, so a view over a resizable set
// stays consistent after the set grows or shrinks. Join performs no
// synchronization: concurrent readers are safe while the set is not
// mutated.
type Join struct {
	set      seqs.Set
	mask     frames.Frames
	selected []frames.Frame
}

// NewJoin builds the six-frame translation view of set.
func NewJoin(set seqs.Set) Join { return NewJoinFrames(set, frames.SixFrame) }

// NewJoinFrames builds the translation view of set restricted to the
// frames selected by mask. An empty mask is legal and yields an
// always-empty view. The set must be non-nil and carry a nucleotide
// alphabet; violations are programming errors and panic.
func NewJoinFrames(set seqs.Set, mask frames.Frames) Join {
	if set == nil {
		panic("translate: nil sequence set")
	}
	if a := set.Alphabet(); !a.IsNucleotide() {
		panic(fmt.Sprintf("translate: alphabet %s does not support complementation; a nucleotide alphabet is required", a.Name()))
	}
	return Join{set: set, mask: mask, selected: mask.Selected()}
}

// Mask returns the frame mask the view was built with.
func (v Join) Mask() frames.Frames { return v.mask }

// Frames returns a copy of the selected frames in canonical order.
func (v Join) Frames() []frames.Frame {
	out := make([]frames.Frame, len(v.selected))
	copy(out, v.selected)
	return out
}

// FrameCount returns the number of selected frames (0..6).
func (v Join) FrameCount() int { return len(v.selected) }

// Len returns set length times frame count, recomputed from the current
// set length on every call.
func (v Join) Len() int { return v.set.Len() * len(v.selected) }

// At returns the lazy single-frame translation at flat index n. n must be
// in [0, Len()); out-of-range access is a contract violation and panics.
// Only index arithmetic and a descriptor construction happen here.
func (v Join) At(n int) Single {
	if n < 0 || n >= v.Len() {
		panic(fmt.Sprintf("translate: index %d out of range for size %d", n, v.Len()))
	}
	f := n % len(v.selected)
	return NewSingle(v.set.At(n/len(v.selected)), v.selected[f])
}

// All traverses the view in flat index order.
func (v Join) All() iter.Seq2[int, Single] {
	return func(yield func(int, Single) bool) {
		for n := 0; n < v.Len(); n++ {
			if !yield(n, v.At(n)) {
				return
			}
		}
	}
}

// Values traverses the elements without their indices.
func (v Join) Values() iter.Seq[Single] {
	return func(yield func(Single) bool) {
		for n := 0; n < v.Len(); n++ {
			if !yield(v.At(n)) {
				return
			}
		}
	}
}
