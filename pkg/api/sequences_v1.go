// Package api holds the stable v1 wire schema for JSON, JSONL and YAML output.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
package api

// RevCompV1 is one reverse-complemented input sequence.
type RevCompV1 struct {
	InputID           string `json:"input_id" yaml:"input_id"`
	Sequence          string `json:"sequence" yaml:"sequence"`
	ReverseComplement string `json:"reverse_complement" yaml:"reverse_complement"`
}

// ReadV1 is one sampled read.
type ReadV1 struct {
	InputID string `json:"input_id" yaml:"input_id"`
	Index   int    `json:"index" yaml:"index"`
	Start   int    `json:"start" yaml:"start"`
	Length  int    `json:"length" yaml:"length"`
	Seq     string `json:"seq" yaml:"seq"`
}
