package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"kmerkit/core/kmer"
	"kmerkit/internal/seqio"
	"kmerkit/internal/writers"
	"kmerkit/pkg/api"
)

func newKmersCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kmers [files...]",
		Short: "Count overlapping k-mers in each input, in first-seen order",
		Example: `  kmerkit kmers --seq GTACGTACC -k 2
  kmerkit kmers -k 8 --canonical --top 20 --pretty reads.txt`,
		RunE: func(c *cobra.Command, args []string) error {
			kc := st.cfg.Kmers
			count := kmer.Count
			if kc.Canonical {
				count = kmer.CountCanonical
			}

			in, done := writers.StartKmersWriter(st.stdout, st.cfg.Output.Format, st.writerOptions(), 16)
			err := st.forEachInput(c, args, func(r seqio.Record) error {
				m, err := count(r.Seq, kc.K)
				if err != nil {
					return fmt.Errorf("%s: %w", r.ID, err)
				}
				if kc.K > len(r.Seq) {
					st.log.Warn("kmers.k_exceeds_sequence", "input", r.ID, "k", kc.K, "length", len(r.Seq))
				}
				st.log.Debug("kmers.counted", "input", r.ID, "distinct", m.Len(), "total", m.Total())
				return send(c.Context(), in, toTable(r.ID, kc.K, kc.Canonical, kc.Top, m))
			})
			close(in)
			return finish(err, done)
		},
	}

	f := cmd.Flags()
	f.IntP("k", "k", 3, "k-mer length")
	f.Bool("canonical", false, "count each k-mer together with its reverse complement (A/C/G/T only, k ≤ 32)")
	f.Int("top", 0, "report only the N most frequent k-mers (0 = all, first-seen order)")
	mustBind(st.v, "kmers.k", f.Lookup("k"))
	mustBind(st.v, "kmers.canonical", f.Lookup("canonical"))
	mustBind(st.v, "kmers.top", f.Lookup("top"))
	return cmd
}

func toTable(id string, k int, canonical bool, top int, m *kmer.FrequencyMap) api.KmerTableV1 {
	entries := m.Entries()
	if top > 0 {
		entries = m.Top(top)
	}
	counts := make([]api.KmerEntryV1, len(entries))
	for i, e := range entries {
		counts[i] = api.KmerEntryV1{Kmer: e.Kmer, Count: e.Count}
	}
	return api.KmerTableV1{
		InputID:   id,
		K:         k,
		Canonical: canonical,
		Top:       top,
		Total:     m.Total(),
		Distinct:  m.Len(),
		Counts:    counts,
	}
}
