// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"kmerkit/pkg/api"
)

// Options are presentation switches shared by every format.
type Options struct {
	Header bool // text: leading header line
	Pretty bool // text: styled table
}

// Encoder serializes one stream of T. Begin and End bracket the stream;
// buffered formats (json, yaml) do all their work in End.
type Encoder[T any] interface {
	Begin(w io.Writer) error
	Encode(w io.Writer, v T) error
	End(w io.Writer) error
}

// Writer registries (format → encoder factory). Register in init() blocks from
// the per-format files. jsonl is streamed by jsonlutil and is not registered here.
var (
	RevCompWriters = map[string]func(Options) Encoder[api.RevCompV1]{}
	ReadWriters    = map[string]func(Options) Encoder[api.ReadV1]{}
	KmerWriters    = map[string]func(Options) Encoder[api.KmerTableV1]{}
)

// Register helpers (idempotent last-wins)
func RegisterRevComp(format string, fn func(Options) Encoder[api.RevCompV1]) { RevCompWriters[format] = fn }
func RegisterReads(format string, fn func(Options) Encoder[api.ReadV1]) { ReadWriters[format] = fn }
func RegisterKmers(format string, fn func(Options) Encoder[api.KmerTableV1]) { KmerWriters[format] = fn }

func lookup[T any](family string, reg map[string]func(Options) Encoder[T], format string, o Options) (Encoder[T], error) {
	fn, ok := reg[format]
	if !ok {
		return nil, fmt.Errorf("unknown %s format %q (no writer registered)", family, format)
	}
	return fn(o), nil
}

// encoderFunc adapts plain functions for formats that need no Begin/End.
type encoderFunc[T any] struct {
	begin  func(io.Writer) error
	encode func(io.Writer, T) error
}

func (e encoderFunc[T]) Begin(w io.Writer) error {
	if e.begin == nil {
		return nil
	}
	return e.begin(w)
}
func (e encoderFunc[T]) Encode(w io.Writer, v T) error { return e.encode(w, v) }
func (e encoderFunc[T]) End(io.Writer) error { return nil }

// collector buffers the whole stream and hands it to flush at End.
type collector[T any] struct {
	buf   []T
	flush func(io.Writer, []T) error
}

func (c *collector[T]) Begin(io.Writer) error { return nil }
func (c *collector[T]) Encode(_ io.Writer, v T) error {
	c.buf = append(c.buf, v)
	return nil
}
func (c *collector[T]) End(w io.Writer) error {
	if c.buf == nil {
		c.buf = []T{}
	}
	return c.flush(w, c.buf)
}
