package kmer

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidWindow matches any *InvalidWindowError via errors.Is.
var ErrInvalidWindow = errors.New("invalid window length")

// InvalidWindowError is returned for a non-positive k. It is a configuration
// error and is never retried.
type InvalidWindowError struct {
	K int
}

func (e *InvalidWindowError) Error() string {
	return fmt.Sprintf("invalid k-mer length %d: k must be a positive integer", e.K)
}

func (e *InvalidWindowError) Is(target error) bool { return target == ErrInvalidWindow }
