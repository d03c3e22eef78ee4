package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"kmerkit/core/nucleotide"
	"kmerkit/internal/seqio"
	"kmerkit/internal/writers"
	"kmerkit/pkg/api"
)

func newRevCompCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:     "revcomp [files...]",
		Aliases: []string{"rc"},
		Short:   "Reverse-complement each input sequence",
		Example: `  kmerkit revcomp --seq ATGC
  kmerkit rc -o jsonl genomes.txt.gz`,
		RunE: func(c *cobra.Command, args []string) error {
			in, done := writers.StartRevCompWriter(st.stdout, st.cfg.Output.Format, st.writerOptions(), 16)
			err := st.forEachInput(c, args, func(r seqio.Record) error {
				rc, err := nucleotide.ReverseComplement(r.Seq)
				if err != nil {
					return fmt.Errorf("%s: %w", r.ID, err)
				}
				st.log.Debug("revcomp.done", "input", r.ID, "length", len(rc))
				return send(c.Context(), in, api.RevCompV1{InputID: r.ID, Sequence: r.Seq, ReverseComplement: rc})
			})
			close(in)
			return finish(err, done)
		},
	}
}
