// Package pipeline schedules chunk counting over a bounded pool of workers
// and merges the partial tables into the global table.
//
// The only contract a counter must implement is Tallier. This keeps the
// pipeline swappable and testable.
package pipeline
