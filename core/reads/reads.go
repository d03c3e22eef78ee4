// Package reads samples fixed-length substrings from a genome to simulate
// sequencer output.
package reads

import (
	"math/rand/v2"
	"sync"
	"time"

	"kmerkit/core/seqerr"
)

// Source yields uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Read is one sampled window of a genome.
type Read struct {
	Start int
	Seq   string
}

// Sampler draws reads using its own random source. A Sampler is not safe
// for concurrent use unless its Source is.
type Sampler struct {
	src Source
}

// NewSampler returns a Sampler drawing from src. A nil src is replaced by a
// time-seeded PCG generator.
func NewSampler(src Source) *Sampler {
	if src == nil {
		now := uint64(time.Now().UnixNano())
		src = rand.New(rand.NewPCG(now, now>>1|1))
	}
	return &Sampler{src: src}
}

// NewSeededSampler returns a Sampler whose output is reproducible for a given seed.
func NewSeededSampler(seed uint64) *Sampler {
	return &Sampler{src: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Generate draws numberOfReads reads of exactly readLength symbols.
// Start offsets are uniform over the inclusive range [0, len(genome)-readLength].
func (s *Sampler) Generate(genome string, numberOfReads, readLength int) ([]string, error) {
	rs, err := s.GenerateReads(genome, numberOfReads, readLength)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Seq
	}
	return out, nil
}

// GenerateReads is Generate keeping each read's start offset.
func (s *Sampler) GenerateReads(genome string, numberOfReads, readLength int) ([]Read, error) {
	const op = "reads.Generate"
	switch {
	case len(genome) == 0:
		return nil, seqerr.Precondition(op, "genome is empty")
	case numberOfReads < 0:
		return nil, seqerr.Precondition(op, "number of reads must be >= 0 (got %d)", numberOfReads)
	case readLength <= 0:
		return nil, seqerr.Precondition(op, "read length must be > 0 (got %d)", readLength)
	case readLength > len(genome):
		return nil, seqerr.Range(op, "read length %d exceeds genome length %d", readLength, len(genome))
	}

	span := len(genome) - readLength + 1
	out := make([]Read, 0, numberOfReads)
	for i := 0; i < numberOfReads; i++ {
		start := s.src.IntN(span)
		out = append(out, Read{Start: start, Seq: genome[start : start+readLength]})
	}
	return out, nil
}

var (
	defaultOnce    sync.Once
	defaultMu      sync.Mutex
	defaultSampler *Sampler
)

// Generate samples from a process-wide time-seeded sampler. Prefer a Sampler
// of your own when results must be reproducible.
func Generate(genome string, numberOfReads, readLength int) ([]string, error) {
	defaultOnce.Do(func() { defaultSampler = NewSampler(nil) })
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultSampler.Generate(genome, numberOfReads, readLength)
}
