// internal/kmer/kmer.go
package kmer

import "iter"

// Key is a k-mer: exactly k bytes of sequence, compared and hashed byte by byte.
type Key string

// Len returns k.
func (k Key) Len() int { return len(k) }

// Validate reports an *InvalidWindowError when k is not a positive window length.
func Validate(k int) error {
	if k <= 0 {
		return &InvalidWindowError{K: k}
	}
	return nil
}

// Windows returns the windows chunk[i:i+k] for i = 0..len(chunk)-k, left to right.
// A chunk shorter than k yields nothing. The yielded slices alias chunk.
//
// The sequence is restartable: ranging over it twice yields the same windows.
func Windows(chunk []byte, k int) (iter.Seq[[]byte], error) {
	if err := Validate(k); err != nil {
		return nil, err
	}
	return func(yield func([]byte) bool) {
		for i, end := 0, len(chunk)-k; i <= end; i++ {
			if !yield(chunk[i : i+k : i+k]) {
				return
			}
		}
	}, nil
}

// Keys is Windows with each window copied into a Key.
func Keys(chunk []byte, k int) (iter.Seq[Key], error) {
	ws, err := Windows(chunk, k)
	if err != nil {
		return nil, err
	}
	return func(yield func(Key) bool) {
		for w := range ws {
			if !yield(Key(w)) {
				return
			}
		}
	}, nil
}

// WindowCount is the number of windows Windows yields for a chunk of length n.
func WindowCount(n, k int) int {
	if k <= 0 || n < k {
		return 0
	}
	return n - k + 1
}
