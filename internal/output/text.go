// internal/output/text.go
package output

import (
	"bufio"
	"io"
	"strconv"
)

// FormatRowTSV appends one TSV line (with newline) for r to dst.
func FormatRowTSV(dst []byte, r Row) []byte {
	dst = append(dst, string(r.Kmer)...)
	dst = append(dst, '\t')
	dst = strconv.AppendUint(dst, r.Count, 10)
	return append(dst, '\n')
}

// StreamText writes one TSV line per row as rows arrive.
func StreamText(w io.Writer, in <-chan Row, header bool) error {
	bw := bufio.NewWriter(w)
	if header {
		if _, err := bw.WriteString(TSVHeader + "\n"); err != nil {
			return err
		}
	}
	var line []byte
	for r := range in {
		line = FormatRowTSV(line[:0], r)
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteText writes rows as TSV.
func WriteText(w io.Writer, rows []Row, header bool) error {
	ch := make(chan Row, len(rows))
	for _, r := range rows {
		ch <- r
	}
	close(ch)
	return StreamText(w, ch, header)
}
