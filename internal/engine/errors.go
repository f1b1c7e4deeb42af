// internal/engine/errors.go
package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Stage names the part of a run that failed.
type Stage string

const (
	StageEnumerate Stage = "enumerate"
	StageCount     Stage = "count"
	StageMerge     Stage = "merge"
)

// ErrWorkerFailure matches a StageError raised by a fault inside a worker's
// counting loop (not by cancellation).
var ErrWorkerFailure = errors.New("worker failure")

// StageError is the single terminal error of a failed run. Worker and Chunk
// are -1 when the failure is not tied to one worker or chunk.
type StageError struct {
	Stage  Stage
	Worker int
	Chunk  int
	Err    error
}

// WorkerFailure builds the error for a fault in worker w while counting chunk.
func WorkerFailure(w, chunk int, err error) *StageError {
	return &StageError{Stage: StageCount, Worker: w, Chunk: chunk, Err: errors.WithStack(err)}
}

func (e *StageError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s stage failed", e.Stage)
	if e.Worker >= 0 {
		fmt.Fprintf(&b, " (worker %d", e.Worker)
		if e.Chunk >= 0 {
			fmt.Fprintf(&b, ", chunk %d", e.Chunk)
		}
		b.WriteByte(')')
	} else if e.Chunk >= 0 {
		fmt.Fprintf(&b, " (chunk %d)", e.Chunk)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *StageError) Unwrap() error { return e.Err }

func (e *StageError) Is(target error) bool {
	if target != ErrWorkerFailure {
		return false
	}
	return e.Worker >= 0 && !errors.Is(e.Err, context.Canceled) && !errors.Is(e.Err, context.DeadlineExceeded)
}
