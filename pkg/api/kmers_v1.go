package api

// KmerCountV1 is one row of a frequency table; JSONL streams these.
type KmerCountV1 struct {
	InputID string `json:"input_id" yaml:"input_id"`
	Kmer    string `json:"kmer" yaml:"kmer"`
	Count   int    `json:"count" yaml:"count"`
}

// KmerTableV1 is the full frequency table of one input.
// Counts keeps first-occurrence order (or rank order when Top is set).
type KmerTableV1 struct {
	InputID   string        `json:"input_id" yaml:"input_id"`
	K         int           `json:"k" yaml:"k"`
	Canonical bool          `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	Top       int           `json:"top,omitempty" yaml:"top,omitempty"`
	Total     int           `json:"total" yaml:"total"`
	Distinct  int           `json:"distinct" yaml:"distinct"`
	Counts    []KmerEntryV1 `json:"counts" yaml:"-"`
}

// KmerEntryV1 is a single k-mer and its count inside a KmerTableV1.
type KmerEntryV1 struct {
	Kmer  string `json:"kmer"`
	Count int    `json:"count"`
}
