// internal/writers/text.go
package writers

import (
	"fmt"
	"io"

	"kmerkit/pkg/api"
)

// TSV headers, one per result family.
const (
	RevCompHeader = "input_id\tsequence\treverse_complement"
	ReadsHeader   = "input_id\tindex\tstart\tlength\tseq"
	KmersHeader   = "input_id\tkmer\tcount"
)

func headerLine(o Options, h string) func(io.Writer) error {
	if !o.Header {
		return nil
	}
	return func(w io.Writer) error {
		_, err := fmt.Fprintln(w, h)
		return err
	}
}

func init() {
	RegisterRevComp("text", func(o Options) Encoder[api.RevCompV1] {
		return encoderFunc[api.RevCompV1]{
			begin: headerLine(o, RevCompHeader),
			encode: func(w io.Writer, v api.RevCompV1) error {
				_, err := fmt.Fprintf(w, "%s\t%s\t%s\n", v.InputID, v.Sequence, v.ReverseComplement)
				return err
			},
		}
	})
	RegisterReads("text", func(o Options) Encoder[api.ReadV1] {
		return encoderFunc[api.ReadV1]{
			begin: headerLine(o, ReadsHeader),
			encode: func(w io.Writer, v api.ReadV1) error {
				_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n", v.InputID, v.Index, v.Start, v.Length, v.Seq)
				return err
			},
		}
	})
	RegisterKmers("text", func(o Options) Encoder[api.KmerTableV1] {
		if o.Pretty {
			return encoderFunc[api.KmerTableV1]{encode: writePrettyKmers}
		}
		return encoderFunc[api.KmerTableV1]{
			begin: headerLine(o, KmersHeader),
			encode: func(w io.Writer, t api.KmerTableV1) error {
				for _, e := range t.Counts {
					if _, err := fmt.Fprintf(w, "%s\t%s\t%d\n", t.InputID, e.Kmer, e.Count); err != nil {
						return err
					}
				}
				return nil
			},
		}
	})
}
