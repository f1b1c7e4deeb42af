// pkg/api/kmers_v1.go
package api

// KmerCountV1 is the stable JSON/JSONL schema for one row of the frequency table.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type KmerCountV1 struct {
	Kmer  string `json:"kmer"`
	Count uint64 `json:"count"`
}

// SummaryV1 describes a finished run. It is written by --summary.
type SummaryV1 struct {
	K        int      `json:"k"`
	Records  []string `json:"records"`
	Chunks   int      `json:"chunks"`
	Bases    int64    `json:"bases"`
	Windows  uint64   `json:"windows"`
	Distinct int      `json:"distinct"`
	Workers  int      `json:"workers"`
	Strategy string   `json:"strategy"`
	Policy   string   `json:"ambiguous"`
}
