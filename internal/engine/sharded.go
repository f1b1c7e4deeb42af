// internal/engine/sharded.go
package engine

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// ShardedTable is a concurrent table split into independently locked shards.
// The xxhash of a window picks its shard, so every key lives in exactly one
// shard and shard tables never overlap.
type ShardedTable struct {
	shards []shard
	mask   uint64
}

type shard struct {
	mu sync.Mutex
	t  Table
}

// NewShardedTable returns a table with n shards, rounded up to a power of two.
func NewShardedTable(n int) *ShardedTable {
	size := 1
	for size < n {
		size <<= 1
	}
	return &ShardedTable{shards: make([]shard, size), mask: uint64(size - 1)}
}

// Add counts one occurrence of w. Safe for concurrent use.
func (s *ShardedTable) Add(w []byte) {
	sh := &s.shards[xxhash.Sum64(w)&s.mask]
	sh.mu.Lock()
	sh.t.Add(w)
	sh.mu.Unlock()
}

// Shards is the number of shards.
func (s *ShardedTable) Shards() int { return len(s.shards) }

// Tables hands out the shard tables as disjoint partial tables. Call it only
// after every writer has returned; the tables are then owned by the caller.
func (s *ShardedTable) Tables() []*Table {
	out := make([]*Table, len(s.shards))
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		t := &Table{counts: sh.t.counts, total: sh.t.total}
		sh.t = Table{}
		sh.mu.Unlock()
		out[i] = t
	}
	return out
}

// Snapshot merges the shards into one table and empties s.
func (s *ShardedTable) Snapshot() *Table {
	return Merge(s.Tables()...)
}
