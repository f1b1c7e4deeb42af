// internal/writers/kmers.go
package writers

import (
	"encoding/json"
	"io"

	"kmercount/internal/jsonlutil"
	"kmercount/internal/output"
)

func init() {
	// JSON array
	Register(output.FormatJSON, func(w io.Writer, in <-chan output.Row, _ bool) error {
		list := make([]output.Row, 0, 1024)
		for r := range in {
			list = append(list, r)
		}
		return output.WriteJSON(w, list)
	})

	// JSONL streaming
	Register(output.FormatJSONL, func(w io.Writer, in <-chan output.Row, _ bool) error {
		pipe, done := StartJSONLWriter(w, 64)
		for r := range in {
			pipe <- r
		}
		close(pipe)
		return <-done
	})

	// TEXT/TSV streaming
	Register(output.FormatText, output.StreamText)
}

// StartJSONLWriter streams each row as one JSON line (v1).
func StartJSONLWriter(out io.Writer, bufSize int) (chan<- output.Row, <-chan error) {
	return jsonlutil.Start[output.Row](out, bufSize,
		func(enc *json.Encoder, r output.Row) error {
			return enc.Encode(output.ToAPIRow(r))
		},
		IsBrokenPipe,
	)
}

// StartWriter spins up a writer goroutine for rows in the given format.
// Close the returned channel when done, then read exactly one error.
func StartWriter(out io.Writer, format string, header bool, bufSize int) (chan<- output.Row, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.Row, bufSize)
	errCh := make(chan error, 1)
	go func() {
		errCh <- WriteRows(format, out, in, header)
	}()
	return in, errCh
}
