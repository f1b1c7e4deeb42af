// internal/output/json.go
package output

import (
	"io"

	"kmercount/internal/jsonutil"
	"kmercount/pkg/api"
)

// ToAPIRow converts a row to the stable wire schema (v1).
func ToAPIRow(r Row) api.KmerCountV1 {
	return api.KmerCountV1{Kmer: string(r.Kmer), Count: r.Count}
}

func toAPIRows(rows []Row) []api.KmerCountV1 {
	out := make([]api.KmerCountV1, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToAPIRow(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 rows (pretty-indented).
func WriteJSON(w io.Writer, rows []Row) error {
	return jsonutil.EncodePretty(w, toAPIRows(rows))
}
