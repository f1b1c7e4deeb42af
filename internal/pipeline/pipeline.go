// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"kmercount/internal/engine"
	"kmercount/internal/kmer"
)

// Strategy selects how workers share counting state.
type Strategy string

const (
	// StrategyPartition gives every worker its own table; tables are merged after the join.
	StrategyPartition Strategy = "partition"
	// StrategySharded has all workers increment one ShardedTable.
	StrategySharded Strategy = "sharded"
)

// DefaultShardsPerWorker sizes a ShardedTable when Config.Shards is 0.
const DefaultShardsPerWorker = 16

// ParseStrategy maps "partition" and "sharded" to a Strategy ("" = partition).
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategyPartition:
		return StrategyPartition, nil
	case StrategySharded:
		return StrategySharded, nil
	}
	return StrategyPartition, fmt.Errorf("invalid strategy %q (want partition | sharded)", s)
}

// Config controls a counting run.
type Config struct {
	K        int         // window length (>=1)
	Workers  int         // number of worker goroutines (>=1)
	Policy   kmer.Policy // ambiguous-symbol policy
	Strategy Strategy    // partition (default) or sharded
	Shards   int         // shard count for StrategySharded; 0 = Workers*DefaultShardsPerWorker
}

// Stats describes a finished run.
type Stats struct {
	Chunks   int
	Bases    int64
	Windows  uint64 // windows counted (after the ambiguity policy)
	Distinct int
	Workers  int
	Partials int // partial tables handed to the merger
	Count    time.Duration
	Merge    time.Duration
}

// Run counts chunks with engine.Counter and returns the partial tables.
func Run(ctx context.Context, cfg Config, chunks [][]byte) ([]*engine.Table, error) {
	return RunWith(ctx, cfg, chunks, engine.Counter{K: cfg.K, Policy: cfg.Policy})
}

// RunWith distributes chunks over cfg.Workers goroutines and blocks until all
// of them return. With the partition strategy each worker folds its chunks
// into one table it owns; with the sharded strategy the shards come back as
// the partial tables.
//
// The first failure wins: the remaining workers stop before their next chunk
// and no tables are returned. A panic inside a worker is reported as an
// engine.ErrWorkerFailure naming the worker and chunk.
func RunWith(ctx context.Context, cfg Config, chunks [][]byte, tal Tallier) ([]*engine.Table, error) {
	if err := kmer.Validate(cfg.K); err != nil {
		return nil, &engine.StageError{Stage: engine.StageEnumerate, Worker: -1, Chunk: -1, Err: err}
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	lengths := make([]int, len(chunks))
	for i, c := range chunks {
		lengths[i] = len(c)
	}
	plan := Assign(lengths, cfg.Workers)

	var sharded *engine.ShardedTable
	if cfg.Strategy == StrategySharded {
		n := cfg.Shards
		if n <= 0 {
			n = cfg.Workers * DefaultShardsPerWorker
		}
		sharded = engine.NewShardedTable(n)
	}
	partials := make([]*engine.Table, cfg.Workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Workers; w++ {
		g.Go(func() (err error) {
			chunk := -1
			defer func() {
				if r := recover(); r != nil {
					err = engine.WorkerFailure(w, chunk, fmt.Errorf("panic: %v", r))
				}
			}()

			var (
				own  *engine.Table
				sink engine.Sink
			)
			if sharded != nil {
				sink = sharded
			} else {
				own = engine.NewTable(0)
				sink = own
			}
			for _, ci := range plan[w] {
				chunk = ci
				if err := gctx.Err(); err != nil {
					return &engine.StageError{Stage: engine.StageCount, Worker: w, Chunk: ci, Err: err}
				}
				if err := tal.Tally(sink, chunks[ci]); err != nil {
					return engine.WorkerFailure(w, ci, err)
				}
			}
			partials[w] = own
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if sharded != nil {
		return sharded.Tables(), nil
	}
	return partials, nil
}

// Count runs the scheduler and merges the partial tables into the global
// table. It returns either the complete table or an error, never a partial
// result.
func Count(ctx context.Context, cfg Config, chunks [][]byte) (*engine.Table, Stats, error) {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	st := Stats{Chunks: len(chunks), Workers: cfg.Workers}
	for _, c := range chunks {
		st.Bases += int64(len(c))
	}

	t0 := time.Now()
	partials, err := Run(ctx, cfg, chunks)
	st.Count = time.Since(t0)
	if err != nil {
		return nil, st, err
	}
	st.Partials = len(partials)

	t1 := time.Now()
	tbl, err := engine.MergeParallel(ctx, partials, cfg.Workers)
	st.Merge = time.Since(t1)
	if err != nil {
		return nil, st, err
	}
	st.Windows = tbl.Total()
	st.Distinct = tbl.Len()
	return tbl, st, nil
}
