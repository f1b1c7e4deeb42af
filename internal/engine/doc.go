// Package engine contains the counting core: partial tables, the per-chunk
// counter, the merger and the sharded alternative. It never imports app,
// writers, cli, output or pipeline; keep it domain-only.
//
// External outputs must not depend on the internal shape here; use pkg/api
// for stable wire types (JSON/JSONL v1).
package engine
