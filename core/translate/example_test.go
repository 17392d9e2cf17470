// core/translate/example_test.go
package translate_test

import (
	"fmt"
	"strings"

	"sixframe-core/alphabet"
	"sixframe-core/frames"
	"sixframe-core/seqs"
	"sixframe-core/translate"
)

func render(v translate.Join) string {
	parts := make([]string, 0, v.Len())
	for s := range v.Values() {
		parts = append(parts, s.String())
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func ExampleNewJoin() {
	set := seqs.NewSliceSet(alphabet.DNA,
		[]byte("ACGTACGTACGTA"),
		[]byte("TCGAGAGCTTTAGC"),
	)

	// All six frames of every sequence, flattened.
	v := translate.NewJoin(set)
	fmt.Println(render(v))

	// Third forward frame of the second sequence: with s = 6 frames per
	// sequence, the flat index is 1*6 + 2.
	fmt.Println(v.At(1*6 + 2))

	// Restricted to the first forward frame only.
	fmt.Println(render(translate.NewJoinFrames(set, frames.Fwd0)))

	// Output:
	// [TYVR,RTYV,VRT,YVRT,TYVR,RTY,SRAL,REL*,ESFS,AKAL,LKLS,*SSR]
	// ESFS
	// [TYVR,SRAL]
}
