// core/alphabet/alphabet.go
package alphabet

// Alphabet describes a biological symbol set. Symbols are single bytes;
// lookups are case-insensitive.
type Alphabet struct {
	name       string
	letters    string
	nucleotide bool
	complement [256]byte
	member     [256]bool
}

func newAlphabet(name, letters string, nucleotide bool, pairs map[byte]byte) *Alphabet {
	a := &Alphabet{name: name, letters: letters, nucleotide: nucleotide}
	for i := 0; i < len(letters); i++ {
		u := upper(letters[i])
		a.member[u] = true
		a.member[lower(u)] = true
	}
	for from, to := range pairs {
		a.complement[from] = to
		a.complement[lower(from)] = to
	}
	return a
}

// DNA covers the IUPAC nucleotide codes, ambiguity codes included.
var DNA = newAlphabet("dna", "ACGTRYSWKMBDHVN", true, map[byte]byte{
	'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A',
	'R': 'Y', 'Y': 'R', 'S': 'S', 'W': 'W',
	'K': 'M', 'M': 'K', 'B': 'V', 'V': 'B',
	'D': 'H', 'H': 'D', 'N': 'N',
})

// Protein covers the 20 standard amino acids plus 'X' (unknown) and
// '*' (stop). It has no complement.
var Protein = newAlphabet("protein", "ACDEFGHIKLMNPQRSTVWY*X", false, nil)

// Name returns the alphabet's short identifier.
func (a *Alphabet) Name() string { return a.name }

// Letters returns the canonical (uppercase) symbol set.
func (a *Alphabet) Letters() string { return a.letters }

// IsNucleotide reports whether the alphabet supports complementation,
// which reverse-frame translation requires.
func (a *Alphabet) IsNucleotide() bool { return a.nucleotide }

// Contains reports whether b is a symbol of the alphabet (either case).
func (a *Alphabet) Contains(b byte) bool { return a.member[b] }

// Complement returns the complementary symbol. Bytes outside the alphabet
// complement to 'N', matching the usual treatment of unknown bases.
func (a *Alphabet) Complement(b byte) byte {
	if c := a.complement[b]; c != 0 {
		return c
	}
	return 'N'
}

// Validate reports the first symbol of s outside the alphabet, if any.
func (a *Alphabet) Validate(s []byte) (int, bool) {
	for i := 0; i < len(s); i++ {
		if !a.member[s[i]] {
			return i, false
		}
	}
	return -1, true
}

func (a *Alphabet) String() string { return a.name + "[" + a.letters + "]" }

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
