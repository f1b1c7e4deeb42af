// internal/engine/counter.go
package engine

import (
	"kmercount/internal/kmer"
)

// Sink receives counted windows. *Table (single owner) and *ShardedTable
// (shared, locked per shard) both satisfy it.
type Sink interface {
	Add(window []byte)
}

// Counter is the partial counter for one k and ambiguity policy. It holds
// no state between calls, so one value may be shared by every worker.
type Counter struct {
	K      int
	Policy kmer.Policy
}

// Tally enumerates the windows of chunk and adds each accepted one to dst.
func (c Counter) Tally(dst Sink, chunk []byte) error {
	ws, err := kmer.Windows(chunk, c.K)
	if err != nil {
		return err
	}
	if c.Policy == kmer.PolicyInclude {
		for w := range ws {
			dst.Add(w)
		}
		return nil
	}
	for w := range ws {
		if c.Policy.Accept(w) {
			dst.Add(w)
		}
	}
	return nil
}

// Count tallies one chunk into a fresh table.
func Count(chunk []byte, k int, policy kmer.Policy) (*Table, error) {
	t := NewTable(0)
	if err := CountInto(t, chunk, k, policy); err != nil {
		return nil, err
	}
	return t, nil
}

// CountInto tallies one chunk into an existing, caller-owned table.
func CountInto(dst *Table, chunk []byte, k int, policy kmer.Policy) error {
	return Counter{K: k, Policy: policy}.Tally(dst, chunk)
}
