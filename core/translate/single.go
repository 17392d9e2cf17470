// core/translate/single.go

// Package translate provides lazy amino-acid views over nucleotide
// sequences: Single translates one sequence in one reading frame, Join
// flattens a whole sequence set across any subset of the six frames.
// Neither view materializes amino acids; symbols are computed per read.
package translate

import (
	"fmt"

	"sixframe-core/alphabet"
	"sixframe-core/frames"
	"sixframe-core/seqs"
)

// Single is the lazy translation of one nucleotide sequence in one
// reading frame. It is a two-word descriptor (sequence handle + frame),
// cheap to build and copy; no amino acid is computed until At is called.
// Single itself satisfies seqs.Seq with the protein alphabet.
//
// Reverse frames read the reverse-complement strand: symbol i of frame
// Rn is the translation of the codon starting n+3i symbols into the
// reverse complement. No reversed copy of the input is ever built.
type Single struct {
	seq   seqs.Seq
	frame frames.Frame
}

// NewSingle builds the translation view of s under frame f. The sequence
// alphabet must be a nucleotide alphabet; anything else is a programming
// error and panics.
func NewSingle(s seqs.Seq, f frames.Frame) Single {
	if s == nil {
		panic("translate: nil sequence")
	}
	if a := s.Alphabet(); !a.IsNucleotide() {
		panic(fmt.Sprintf("translate: alphabet %s does not support complementation; a nucleotide alphabet is required", a.Name()))
	}
	return Single{seq: s, frame: f}
}

// Frame returns the reading frame this view translates under.
func (v Single) Frame() frames.Frame { return v.frame }

// Len returns the number of amino-acid symbols: complete codons after
// the frame offset. Re-queries the underlying sequence length each call.
func (v Single) Len() int {
	n := v.seq.Len() - v.frame.Offset()
	if n < 0 {
		return 0
	}
	return n / 3
}

// At translates codon i on demand. i must be in [0, Len()).
func (v Single) At(i int) byte {
	if i < 0 || i >= v.Len() {
		panic(fmt.Sprintf("translate: symbol index %d out of range for length %d", i, v.Len()))
	}
	off := v.frame.Offset() + 3*i
	if v.frame.IsReverse() {
		a := v.seq.Alphabet()
		last := v.seq.Len() - 1
		return alphabet.Translate(
			a.Complement(v.seq.At(last-off)),
			a.Complement(v.seq.At(last-off-1)),
			a.Complement(v.seq.At(last-off-2)),
		)
	}
	return alphabet.Translate(v.seq.At(off), v.seq.At(off+1), v.seq.At(off+2))
}

// Alphabet returns the protein alphabet; translation output is read-only.
func (v Single) Alphabet() *alphabet.Alphabet { return alphabet.Protein }

// String materializes the translation, mainly for debugging and tests.
func (v Single) String() string { return seqs.String(v) }
