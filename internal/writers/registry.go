// internal/writers/registry.go
package writers

import (
	"io"
	"sort"

	"github.com/pkg/errors"

	"kmercount/internal/output"
)

// RowWriter consumes rows until in is closed.
type RowWriter func(w io.Writer, in <-chan output.Row, header bool) error

// Writer registry (format → handler). Register in init() blocks.
var rowWriters = map[string]RowWriter{}

// Register adds or replaces the writer for a format (last wins).
func Register(format string, fn RowWriter) { rowWriters[format] = fn }

// Formats lists the registered format names in sorted order.
func Formats() []string {
	out := make([]string, 0, len(rowWriters))
	for f := range rowWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// WriteRows dispatches to the writer registered for format.
// Rows are drained on error so producers never block.
func WriteRows(format string, w io.Writer, in <-chan output.Row, header bool) error {
	fn, ok := rowWriters[format]
	if !ok {
		drain(in)
		return errors.Errorf("unknown output format %q (no writer registered)", format)
	}
	err := fn(w, in, header)
	drain(in)
	return err
}

func drain(in <-chan output.Row) {
	for range in {
	}
}
