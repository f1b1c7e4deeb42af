// internal/pipeline/assign.go
package pipeline

import "sort"

// Assign spreads chunk indices over workers so that total sequence length per
// worker stays balanced: longest chunk first, each to the currently lightest
// worker (lowest index on ties). The result is deterministic for a given
// list of lengths and worker count. Workers may receive no chunks.
func Assign(lengths []int, workers int) [][]int {
	if workers < 1 {
		workers = 1
	}
	order := make([]int, len(lengths))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return lengths[order[a]] > lengths[order[b]] })

	plan := make([][]int, workers)
	load := make([]int, workers)
	for _, ci := range order {
		w := 0
		for j := 1; j < workers; j++ {
			if load[j] < load[w] {
				w = j
			}
		}
		plan[w] = append(plan[w], ci)
		load[w] += lengths[ci]
	}
	for _, p := range plan {
		sort.Ints(p)
	}
	return plan
}
