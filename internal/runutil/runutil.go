// internal/runutil/runutil.go
package runutil

import (
	"fmt"
	"runtime"
)

// EffectiveThreads resolves --threads: 0 or less means all CPUs.
func EffectiveThreads(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// ValidateChunking returns the chunk size to use and any warnings.
// Rules:
//   - --chunk-size <= 0 → one chunk per record (no warning)
//   - --chunk-size < k → kept, but no chunk can hold a window; warn
//   - otherwise kept as-is
func ValidateChunking(chunkSize, k int) (int, []string) {
	if chunkSize <= 0 {
		return 0, nil
	}
	if k > 0 && chunkSize < k {
		return chunkSize, []string{fmt.Sprintf(
			"--chunk-size (%d) is smaller than k (%d); no k-mers will be counted", chunkSize, k)}
	}
	return chunkSize, nil
}

// LostWindows is the number of boundary-crossing windows dropped when a
// record of length n is split into chunks of chunkSize bases.
func LostWindows(n, chunkSize, k int) int {
	if chunkSize <= 0 || k <= 1 || n <= chunkSize {
		return 0
	}
	cuts := (n - 1) / chunkSize
	lost := 0
	for i := 1; i <= cuts; i++ {
		cut := i * chunkSize
		// windows starting in [cut-k+1, cut-1] that also fit in the record
		lo := cut - k + 1
		if lo < 0 {
			lo = 0
		}
		hi := cut - 1
		if last := n - k; hi > last {
			hi = last
		}
		if prev := (i - 1) * chunkSize; lo < prev {
			lo = prev
		}
		if hi >= lo {
			lost += hi - lo + 1
		}
	}
	return lost
}
