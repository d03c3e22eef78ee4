package writers

import (
	"encoding/json"
	"io"

	"kmerkit/internal/jsonlutil"
	"kmerkit/pkg/api"
)

// FormatJSONL is streamed one object per line and bypasses the registries.
const FormatJSONL = "jsonl"

// StartRevCompWriter spins up a writer goroutine for reverse-complement rows.
func StartRevCompWriter(out io.Writer, format string, o Options, bufSize int) (chan<- api.RevCompV1, <-chan error) {
	if format == FormatJSONL {
		return jsonlutil.Start[api.RevCompV1](out, bufSize,
			func(enc *json.Encoder, v api.RevCompV1) error { return enc.Encode(v) },
			IsBrokenPipe,
		)
	}
	enc, err := lookup("revcomp", RevCompWriters, format, o)
	return start(out, enc, err, bufSize)
}

// StartReadsWriter spins up a writer goroutine for sampled reads.
func StartReadsWriter(out io.Writer, format string, o Options, bufSize int) (chan<- api.ReadV1, <-chan error) {
	if format == FormatJSONL {
		return jsonlutil.Start[api.ReadV1](out, bufSize,
			func(enc *json.Encoder, v api.ReadV1) error { return enc.Encode(v) },
			IsBrokenPipe,
		)
	}
	enc, err := lookup("reads", ReadWriters, format, o)
	return start(out, enc, err, bufSize)
}

// StartKmersWriter spins up a writer goroutine for frequency tables.
// JSONL flattens each table into one KmerCountV1 line per k-mer.
func StartKmersWriter(out io.Writer, format string, o Options, bufSize int) (chan<- api.KmerTableV1, <-chan error) {
	if format == FormatJSONL {
		return jsonlutil.Start[api.KmerTableV1](out, bufSize,
			func(enc *json.Encoder, t api.KmerTableV1) error {
				for _, e := range t.Counts {
					if err := enc.Encode(api.KmerCountV1{InputID: t.InputID, Kmer: e.Kmer, Count: e.Count}); err != nil {
						return err
					}
				}
				return nil
			},
			IsBrokenPipe,
		)
	}
	enc, err := lookup("kmers", KmerWriters, format, o)
	return start(out, enc, err, bufSize)
}
