package kmer

import "sort"

// Entry is one k-mer and its occurrence count.
type Entry struct {
	Kmer  string
	Count int
}

// FrequencyMap counts substrings and remembers the order in which each was
// first seen. The zero value is ready to use.
type FrequencyMap struct {
	keys   []string
	counts map[string]int
	total  int
}

func newFrequencyMap(capHint int) *FrequencyMap {
	return &FrequencyMap{keys: make([]string, 0, capHint), counts: make(map[string]int, capHint)}
}

// Add increments key by one, appending it to the order on first sight.
func (m *FrequencyMap) Add(key string) {
	if m.counts == nil {
		m.counts = make(map[string]int)
	}
	if _, ok := m.counts[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.counts[key]++
	m.total++
}

// Len is the number of distinct keys.
func (m *FrequencyMap) Len() int { return len(m.keys) }

// Count returns the occurrences of key, 0 if absent.
func (m *FrequencyMap) Count(key string) int { return m.counts[key] }

// Total is the sum of all counts.
func (m *FrequencyMap) Total() int { return m.total }

// Keys returns the distinct keys in first-occurrence order.
func (m *FrequencyMap) Keys() []string { return append([]string(nil), m.keys...) }

// Each calls fn for every key in first-occurrence order until fn returns false.
func (m *FrequencyMap) Each(fn func(kmer string, count int) bool) {
	for _, k := range m.keys {
		if !fn(k, m.counts[k]) {
			return
		}
	}
}

// Entries returns the map as a slice in first-occurrence order.
func (m *FrequencyMap) Entries() []Entry {
	out := make([]Entry, len(m.keys))
	for i, k := range m.keys {
		out[i] = Entry{Kmer: k, Count: m.counts[k]}
	}
	return out
}

// Top returns up to n entries with the highest counts. Ties keep first-occurrence
// order. n <= 0 returns every entry ranked.
func (m *FrequencyMap) Top(n int) []Entry {
	es := m.Entries()
	sort.SliceStable(es, func(i, j int) bool { return es[i].Count > es[j].Count })
	if n > 0 && n < len(es) {
		es = es[:n]
	}
	return es
}

// Equal reports whether both maps hold the same keys, counts and order.
func (m *FrequencyMap) Equal(o *FrequencyMap) bool {
	if m.Len() != o.Len() {
		return false
	}
	for i, k := range m.keys {
		if o.keys[i] != k || o.counts[k] != m.counts[k] {
			return false
		}
	}
	return true
}
