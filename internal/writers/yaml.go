package writers

import (
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"kmerkit/pkg/api"
)

func yamlSeq[T any](toNode func(T) (*yaml.Node, error)) Encoder[T] {
	return &collector[T]{flush: func(w io.Writer, all []T) error {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, v := range all {
			n, err := toNode(v)
			if err != nil {
				return err
			}
			seq.Content = append(seq.Content, n)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(seq); err != nil {
			return err
		}
		return enc.Close()
	}}
}

func encodeNode(v any) (*yaml.Node, error) {
	var n yaml.Node
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	return &n, nil
}

func scalar(tag, v string) *yaml.Node { return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v} }

// kmerTableNode encodes the table's plain fields, then appends counts as a
// mapping so key order on disk is the table's order, not sorted.
func kmerTableNode(t api.KmerTableV1) (*yaml.Node, error) {
	n, err := encodeNode(t)
	if err != nil {
		return nil, err
	}
	counts := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range t.Counts {
		counts.Content = append(counts.Content, scalar("!!str", e.Kmer), scalar("!!int", strconv.Itoa(e.Count)))
	}
	n.Content = append(n.Content, scalar("!!str", "counts"), counts)
	return n, nil
}

func init() {
	RegisterRevComp("yaml", func(Options) Encoder[api.RevCompV1] {
		return yamlSeq(func(v api.RevCompV1) (*yaml.Node, error) { return encodeNode(v) })
	})
	RegisterReads("yaml", func(Options) Encoder[api.ReadV1] {
		return yamlSeq(func(v api.ReadV1) (*yaml.Node, error) { return encodeNode(v) })
	})
	RegisterKmers("yaml", func(Options) Encoder[api.KmerTableV1] { return yamlSeq(kmerTableNode) })
}
