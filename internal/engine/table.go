// internal/engine/table.go
package engine

import (
	"iter"

	"kmercount/internal/kmer"
)

// Table maps each k-mer to its count. It is owned by a single goroutine.
//
// Counts live behind pointers so the hot loop can bump an existing entry
// after a lookup that does not allocate; a key string is only created the
// first time a window is seen. Merging moves entries (key and counter) from
// one table to another instead of copying key bytes.
type Table struct {
	counts map[kmer.Key]*uint64
	total  uint64
}

// NewTable returns an empty table sized for about hint distinct keys.
func NewTable(hint int) *Table {
	if hint < 0 {
		hint = 0
	}
	return &Table{counts: make(map[kmer.Key]*uint64, hint)}
}

// FromMap builds a table from plain counts. Zero counts are dropped.
func FromMap(m map[kmer.Key]uint64) *Table {
	t := NewTable(len(m))
	for k, n := range m {
		t.AddCount(k, n)
	}
	return t
}

// Add counts one occurrence of window w.
func (t *Table) Add(w []byte) {
	if p := t.counts[kmer.Key(w)]; p != nil {
		*p++
	} else {
		if t.counts == nil {
			t.counts = make(map[kmer.Key]*uint64)
		}
		n := uint64(1)
		t.counts[kmer.Key(w)] = &n
	}
	t.total++
}

// AddCount adds n occurrences of key.
func (t *Table) AddCount(key kmer.Key, n uint64) {
	if n == 0 {
		return
	}
	if p := t.counts[key]; p != nil {
		*p += n
	} else {
		if t.counts == nil {
			t.counts = make(map[kmer.Key]*uint64)
		}
		t.counts[key] = &n
	}
	t.total += n
}

// Get returns the count of key, 0 when absent.
func (t *Table) Get(key kmer.Key) uint64 {
	if t == nil {
		return 0
	}
	if p := t.counts[key]; p != nil {
		return *p
	}
	return 0
}

// Len is the number of distinct k-mers.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.counts)
}

// Total is the sum of all counts, i.e. the number of windows counted.
func (t *Table) Total() uint64 {
	if t == nil {
		return 0
	}
	return t.total
}

// All yields every (k-mer, count) pair in unspecified order.
func (t *Table) All() iter.Seq2[kmer.Key, uint64] {
	return func(yield func(kmer.Key, uint64) bool) {
		if t == nil {
			return
		}
		for k, p := range t.counts {
			if !yield(k, *p) {
				return
			}
		}
	}
}

// Map copies the table into a plain map. Key strings are shared, not copied.
func (t *Table) Map() map[kmer.Key]uint64 {
	m := make(map[kmer.Key]uint64, t.Len())
	for k, n := range t.All() {
		m[k] = n
	}
	return m
}

// absorb moves every entry of src into t and leaves src empty.
func (t *Table) absorb(src *Table) {
	if t.counts == nil {
		t.counts = make(map[kmer.Key]*uint64, len(src.counts))
	}
	for k, p := range src.counts {
		if q := t.counts[k]; q != nil {
			*q += *p
		} else {
			t.counts[k] = p
		}
	}
	t.total += src.total
	src.counts, src.total = nil, 0
}
