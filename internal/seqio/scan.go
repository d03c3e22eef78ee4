// Package seqio reads raw sequences, one per line, from files or stdin.
// Lines are taken verbatim apart from surrounding whitespace; no header
// syntax is recognized and no case folding is done.
package seqio

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one input sequence.
type Record struct {
	ID  string // source:line, 1-based
	Seq string
}

const maxLine = 64 * 1024 * 1024 // allow very long single-line genomes (64 MiB)

// Scan emits a Record for every non-blank line of r. source prefixes the IDs.
// Cancellation via ctx is honored between lines. Return a non-nil error from
// emit to stop early.
func Scan(ctx context.Context, r io.Reader, source string, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	lineNo := 0
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if err := emit(Record{ID: fmt.Sprintf("%s:%d", source, lineNo), Seq: string(line)}); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("scan %s: %w", source, err)
	}
	return nil
}

// ScanPath opens path and scans it. Stdin is labelled "stdin".
func ScanPath(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	source := path
	if path == "-" {
		source = "stdin"
	}
	return Scan(ctx, rc, source, emit)
}

// Literal wraps sequences given on the command line as Records labelled arg:N.
func Literal(seqs []string) []Record {
	out := make([]Record, 0, len(seqs))
	for i, s := range seqs {
		out = append(out, Record{ID: fmt.Sprintf("arg:%d", i+1), Seq: s})
	}
	return out
}
