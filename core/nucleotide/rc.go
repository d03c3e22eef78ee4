// core/nucleotide/rc.go
package nucleotide

import "kmerkit/core/seqerr"

// complement is indexed by ASCII symbol; 0 marks a byte outside the alphabet.
var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
	complement['N'] = 'N'
}

// ComplementSymbol looks up the complement of a single symbol.
func ComplementSymbol(sym byte) (byte, error) {
	c := complement[sym]
	if c == 0 {
		return 0, seqerr.Lookup("nucleotide.ComplementSymbol", sym, 0)
	}
	return c, nil
}

// ReverseComplement returns the opposite strand of seq read 5'->3'.
// Symbols are not normalized: the first byte outside A/C/G/T/N fails the
// whole call with a lookup error carrying its offset in seq.
func ReverseComplement(seq string) (string, error) {
	n := len(seq)
	if n == 0 {
		return "", nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := seq[n-1-i]
		c := complement[b]
		if c == 0 {
			return "", seqerr.Lookup("nucleotide.ReverseComplement", b, n-1-i)
		}
		out[i] = c
	}
	return string(out), nil
}

// MustReverseComplement is like ReverseComplement but panics on a lookup error.
func MustReverseComplement(seq string) string {
	rc, err := ReverseComplement(seq)
	if err != nil {
		panic(err)
	}
	return rc
}
