// internal/pipeline/tallier.go
package pipeline

import "kmercount/internal/engine"

// Tallier is the minimal capability a worker needs.
// engine.Counter satisfies it; tests use fakes.
type Tallier interface {
	Tally(dst engine.Sink, chunk []byte) error
}
