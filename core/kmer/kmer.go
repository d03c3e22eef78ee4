// Package kmer counts fixed-length substrings (k-mers) of a text.
//
// Counting slides a window of width k across the text with stride 1, so
// overlapping occurrences are all counted. Results keep the order in which each
// k-mer first appears in the text.
package kmer

import (
	"github.com/shenwei356/kmers"

	"kmerkit/core/nucleotide"
	"kmerkit/core/seqerr"
)

// MaxCanonicalK is the widest k-mer that fits a 2-bit packed uint64.
const MaxCanonicalK = 32

func checkArgs(op, text string, k int) error {
	if k <= 0 {
		return seqerr.Precondition(op, "substring length must be > 0 (got %d)", k)
	}
	if len(text) == 0 {
		return seqerr.Precondition(op, "text is empty")
	}
	return nil
}

// Count returns the frequency of every substring of length k in text.
// k larger than text yields an empty map.
func Count(text string, k int) (*FrequencyMap, error) {
	if err := checkArgs("kmer.Count", text, k); err != nil {
		return nil, err
	}
	windows := len(text) - k + 1
	if windows < 0 {
		windows = 0
	}
	m := newFrequencyMap(windows)
	for i := 0; i < windows; i++ {
		m.Add(text[i : i+k])
	}
	return m, nil
}

// CountCanonical is Count with each k-mer folded onto the smaller of itself and
// its reverse complement, so both strands of a site share one key. Only A/C/G/T
// windows are accepted and k is limited to MaxCanonicalK.
func CountCanonical(text string, k int) (*FrequencyMap, error) {
	const op = "kmer.CountCanonical"
	if err := checkArgs(op, text, k); err != nil {
		return nil, err
	}
	if k > MaxCanonicalK {
		return nil, seqerr.Range(op, "substring length %d exceeds %d", k, MaxCanonicalK)
	}
	for i := 0; i < len(text); i++ {
		b, err := nucleotide.ParseBase(text[i])
		if err != nil || b == nucleotide.N {
			return nil, seqerr.Lookup(op, text[i], i)
		}
	}

	windows := len(text) - k + 1
	if windows < 0 {
		windows = 0
	}
	m := newFrequencyMap(windows)
	for i := 0; i < windows; i++ {
		code, err := kmers.Encode([]byte(text[i : i+k]))
		if err != nil {
			return nil, &seqerr.Error{Op: op, Kind: seqerr.KindLookup, Err: err}
		}
		m.Add(string(kmers.Decode(kmers.Canonical(code, k), k)))
	}
	return m, nil
}
