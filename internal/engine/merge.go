// internal/engine/merge.go
package engine

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Merge sums tables into one. The result does not depend on argument order.
//
// The largest input becomes the accumulator and the others are folded into
// it, so inputs are consumed: after Merge returns they are empty and only the
// result may be used. Nil entries are ignored. Passing the same table twice
// is not supported.
func Merge(tables ...*Table) *Table {
	var acc *Table
	for _, t := range tables {
		if t != nil && (acc == nil || t.Len() > acc.Len()) {
			acc = t
		}
	}
	if acc == nil {
		return NewTable(0)
	}
	for _, t := range tables {
		if t == nil || t == acc {
			continue
		}
		acc.absorb(t)
	}
	return acc
}

// MergeParallel reduces tables pairwise in a tree, running up to workers
// merges at a time. Each step owns its two inputs and writes a fresh slot
// of the next level. The result equals Merge(tables...).
//
// On cancellation it returns a merge-stage error and no table; the inputs
// are then partially consumed and must be discarded.
func MergeParallel(ctx context.Context, tables []*Table, workers int) (*Table, error) {
	if workers < 1 {
		workers = 1
	}
	level := make([]*Table, 0, len(tables))
	for _, t := range tables {
		if t != nil {
			level = append(level, t)
		}
	}
	if len(level) == 0 {
		return NewTable(0), nil
	}
	for len(level) > 1 {
		next := make([]*Table, (len(level)+1)/2)
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				next[i/2] = level[i]
				continue
			}
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return &StageError{Stage: StageMerge, Worker: -1, Chunk: -1, Err: err}
				}
				next[i/2] = Merge(level[i], level[i+1])
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		level = next
	}
	if err := ctx.Err(); err != nil {
		return nil, &StageError{Stage: StageMerge, Worker: -1, Chunk: -1, Err: err}
	}
	return level[0], nil
}
