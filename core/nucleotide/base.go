// Package nucleotide resolves Watson-Crick complements over the A/C/G/T/N alphabet.
package nucleotide

import "kmerkit/core/seqerr"

// Base is one nucleotide symbol. The zero value is not a valid base.
type Base byte

const (
	A Base = 'A'
	C Base = 'C'
	G Base = 'G'
	T Base = 'T'
	N Base = 'N' // unknown / any
)

var bases = [...]Base{A, C, G, T, N}

// Bases returns the alphabet in declaration order.
func Bases() []Base {
	out := make([]Base, len(bases))
	copy(out, bases[:])
	return out
}

func (b Base) String() string { return string(rune(b)) }

// Valid reports whether b is one of the five named values.
func (b Base) Valid() bool { return complement[b] != 0 }

// ParseBase maps an upper-case ASCII symbol to its Base. Lowercase and any
// other byte is a lookup error.
func ParseBase(sym byte) (Base, error) {
	if complement[sym] == 0 {
		return 0, seqerr.Lookup("nucleotide.ParseBase", sym, 0)
	}
	return Base(sym), nil
}

// Complement returns the pairing partner of b: A<->T, C<->G, N<->N.
func Complement(b Base) Base {
	switch b {
	case A:
		return T
	case T:
		return A
	case C:
		return G
	case G:
		return C
	case N:
		return N
	}
	panic("nucleotide: invalid Base " + string(rune(b)))
}
