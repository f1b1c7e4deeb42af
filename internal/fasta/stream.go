// internal/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"io"

	"github.com/pkg/errors"
)

// Chunk is a non-overlapping window of one FASTA record's sequence.
// Offset is 0-based within the record.
type Chunk struct {
	RecordID string
	Offset   int
	Seq      []byte
	IsLast   bool
}

// Filter selects records by ID. A nil Filter accepts every record.
type Filter func(id string) bool

// StreamChunksCtx parses FASTA from r and emits each selected record as
// consecutive chunks [i, min(i+chunkSize, len)) for i = 0, chunkSize, ...
// Sequence lines are upper-cased. A window that would span two chunks is
// simply cut; chunks never overlap.
// If chunkSize <= 0, each record is emitted as a single chunk. Records with
// no sequence emit nothing.
//
// It is cancelable: returning promptly when ctx is Done, even mid-record.
func StreamChunksCtx(ctx context.Context, r io.Reader, chunkSize int, keep Filter, emit func(Chunk) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		id       string
		selected bool
		seq      = make([]byte, 0, 1<<20)
	)

	flush := func() error {
		if !selected || len(seq) == 0 {
			return nil
		}
		if chunkSize <= 0 || chunkSize >= len(seq) {
			return emit(Chunk{RecordID: id, Offset: 0, Seq: bytes.Clone(seq), IsLast: true})
		}
		for off := 0; off < len(seq); off += chunkSize {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			end := min(off+chunkSize, len(seq))
			ch := Chunk{
				RecordID: id,
				Offset:   off,
				Seq:      bytes.Clone(seq[off:end]),
				IsLast:   end == len(seq),
			}
			if err := emit(ch); err != nil {
				return err
			}
		}
		return nil
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			seq = seq[:0]
			id = parseHeaderID(line[1:])
			selected = keep == nil || keep(id)
			continue
		}
		if !selected {
			continue
		}
		line = bytes.TrimSpace(line)
		seq = append(seq, bytes.ToUpper(line)...)
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "fasta scan")
	}
	return flush()
}

// StreamChunksPathCtx opens path (plain, gzip or "-") and streams it with StreamChunksCtx.
func StreamChunksPathCtx(ctx context.Context, path string, chunkSize int, keep Filter, emit func(Chunk) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return StreamChunksCtx(ctx, rc, chunkSize, keep, emit)
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
