// internal/fasta/collect.go
package fasta

import (
	"context"

	"github.com/pkg/errors"
)

// Source is the chunk list of a run plus what was read to build it.
type Source struct {
	Chunks  []Chunk
	Records []string // selected record IDs, in file order
	Missing []string // requested names that no file contained
}

// Seqs returns the chunk sequences in order, sharing the underlying bytes.
func (s *Source) Seqs() [][]byte {
	out := make([][]byte, len(s.Chunks))
	for i, c := range s.Chunks {
		out[i] = c.Seq
	}
	return out
}

// Collect reads every path and gathers the chunks of the named records
// (all records when names is empty). Reading stops at the first error.
func Collect(ctx context.Context, paths []string, chunkSize int, names []string) (*Source, error) {
	var keep Filter
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	if len(want) > 0 {
		keep = func(id string) bool { return want[id] }
	}

	src := &Source{}
	found := make(map[string]bool)
	for _, p := range paths {
		err := StreamChunksPathCtx(ctx, p, chunkSize, keep, func(c Chunk) error {
			if !found[c.RecordID] {
				found[c.RecordID] = true
				src.Records = append(src.Records, c.RecordID)
			}
			src.Chunks = append(src.Chunks, c)
			return nil
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, errors.Wrapf(err, "read %s", p)
		}
	}
	for _, n := range names {
		if !found[n] {
			src.Missing = append(src.Missing, n)
			found[n] = true
		}
	}
	return src, nil
}
