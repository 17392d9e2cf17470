// core/alphabet/codon.go
package alphabet

// Standard genetic code, codons ordered T, C, A, G on every position.
const codonTable = "FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG"

// rank maps a base to its row in the codon table; 0xFF = not an
// unambiguous base.
var rank [256]byte

func init() {
	for i := range rank {
		rank[i] = 0xFF
	}
	for i, b := range []byte{'T', 'C', 'A', 'G'} {
		rank[b] = byte(i)
		rank[lower(b)] = byte(i)
	}
}

// Translate maps one codon to an amino-acid symbol using the standard
// genetic code. Stop codons yield '*'. If any position holds a base other
// than A/C/G/T (ambiguity codes included), the result is 'X'.
func Translate(a, b, c byte) byte {
	ra, rb, rc := rank[a], rank[b], rank[c]
	if ra == 0xFF || rb == 0xFF || rc == 0xFF {
		return 'X'
	}
	return codonTable[ra<<4|rb<<2|rc]
}
