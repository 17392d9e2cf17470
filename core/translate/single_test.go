// core/translate/single_test.go
package translate_test

import (
	"testing"

	"sixframe-core/alphabet"
	"sixframe-core/frames"
	"sixframe-core/seqs"
	"sixframe-core/seqtest"
	"sixframe-core/translate"
)

// Reference translations of ACGTACGTACGTA and TCGAGAGCTTTAGC across all
// six frames.
var singleCases = []struct {
	seq   string
	frame frames.Frame
	want  string
}{
	{"ACGTACGTACGTA", frames.FrameF0, "TYVR"},
	{"ACGTACGTACGTA", frames.FrameF1, "RTYV"},
	{"ACGTACGTACGTA", frames.FrameF2, "VRT"},
	{"ACGTACGTACGTA", frames.FrameR0, "YVRT"},
	{"ACGTACGTACGTA", frames.FrameR1, "TYVR"},
	{"ACGTACGTACGTA", frames.FrameR2, "RTY"},
	{"TCGAGAGCTTTAGC", frames.FrameF0, "SRAL"},
	{"TCGAGAGCTTTAGC", frames.FrameF1, "REL*"},
	{"TCGAGAGCTTTAGC", frames.FrameF2, "ESFS"},
	{"TCGAGAGCTTTAGC", frames.FrameR0, "AKAL"},
	{"TCGAGAGCTTTAGC", frames.FrameR1, "LKLS"},
	{"TCGAGAGCTTTAGC", frames.FrameR2, "*SSR"},
}

func TestSingleAllFrames(t *testing.T) {
	for _, c := range singleCases {
		v := translate.NewSingle(seqs.DNA([]byte(c.seq)), c.frame)
		if got := v.String(); got != c.want {
			t.Errorf("%s frame %s = %q, want %q", c.seq, c.frame, got, c.want)
		}
		if v.Len() != len(c.want) {
			t.Errorf("%s frame %s: Len = %d, want %d", c.seq, c.frame, v.Len(), len(c.want))
		}
	}
}

// Nothing is materialized at construction: mutation of the underlying
// data must be visible through the view.
func TestSingleReadsThrough(t *testing.T) {
	data := []byte("AAA")
	v := translate.NewSingle(seqs.DNA(data), frames.FrameF0)
	if got := v.At(0); got != 'K' {
		t.Fatalf("At(0) = %q, want K (AAA)", got)
	}
	copy(data, "TTT")
	if got := v.At(0); got != 'F' {
		t.Fatalf("At(0) after mutation = %q, want F (TTT)", got)
	}
}

func TestSingleShortSequences(t *testing.T) {
	for _, c := range []struct {
		seq   string
		frame frames.Frame
		want  int
	}{
		{"", frames.FrameF0, 0},
		{"AC", frames.FrameF0, 0},
		{"AC", frames.FrameF2, 0},
		{"ACG", frames.FrameF0, 1},
		{"ACG", frames.FrameF1, 0},
		{"ACGT", frames.FrameF1, 1},
		{"ACGT", frames.FrameR2, 0},
	} {
		v := translate.NewSingle(seqs.DNA([]byte(c.seq)), c.frame)
		if v.Len() != c.want {
			t.Errorf("len(%q) frame %s = %d, want %d", c.seq, c.frame, v.Len(), c.want)
		}
	}
}

func TestSingleAmbiguousBase(t *testing.T) {
	v := translate.NewSingle(seqs.DNA([]byte("ANGTAC")), frames.FrameF0)
	if got := v.String(); got != "XY" {
		t.Fatalf("got %q, want XY", got)
	}
}

func TestSingleProteinAlphabet(t *testing.T) {
	v := translate.NewSingle(seqs.DNA([]byte("ACG")), frames.FrameF0)
	if v.Alphabet() != alphabet.Protein {
		t.Fatal("translated view must carry the protein alphabet")
	}
}

func TestSingleRejectsNonNucleotide(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewSingle over a protein sequence must panic")
		}
	}()
	translate.NewSingle(seqs.New([]byte("MKV"), alphabet.Protein), frames.FrameF0)
}

func TestSingleLaws(t *testing.T) {
	for _, c := range singleCases {
		v := translate.NewSingle(seqs.DNA([]byte(c.seq)), c.frame)
		seqtest.Check[byte](t, v, seqtest.EqByte)
		seqtest.CheckIter[byte](t, v, seqs.Values(v), seqtest.EqByte)
	}
}
