// internal/output/rows.go
package output

import (
	"sort"

	"kmercount/internal/engine"
	"kmercount/internal/kmer"
)

// Row is one line of the frequency table.
type Row struct {
	Kmer  kmer.Key
	Count uint64
}

// LessRow orders rows by count descending, then k-mer ascending.
func LessRow(a, b Row) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.Kmer < b.Kmer
}

// SortRows sorts rows in presentation order.
func SortRows(rows []Row) {
	sort.Slice(rows, func(i, j int) bool { return LessRow(rows[i], rows[j]) })
}

// Rows flattens a table into rows in presentation order.
func Rows(t *engine.Table) []Row {
	rows := make([]Row, 0, t.Len())
	for k, n := range t.All() {
		rows = append(rows, Row{Kmer: k, Count: n})
	}
	SortRows(rows)
	return rows
}

// Top keeps the first n rows; n <= 0 keeps all of them.
func Top(rows []Row, n int) []Row {
	if n <= 0 || n >= len(rows) {
		return rows
	}
	return rows[:n]
}
