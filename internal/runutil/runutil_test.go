package runutil

import (
	"runtime"
	"testing"
)

func TestEffectiveThreads(t *testing.T) {
	if got := EffectiveThreads(3); got != 3 {
		t.Fatalf("want 3, got %d", got)
	}
	if got := EffectiveThreads(0); got != runtime.NumCPU() {
		t.Fatalf("0 → all CPUs, got %d", got)
	}
	if got := EffectiveThreads(-2); got != runtime.NumCPU() {
		t.Fatalf("-2 → all CPUs, got %d", got)
	}
}

func TestValidateChunking(t *testing.T) {
	cs, w := ValidateChunking(0, 9)
	if cs != 0 || len(w) != 0 {
		t.Fatalf("0 disables chunking silently: cs=%d warns=%v", cs, w)
	}
	cs, w = ValidateChunking(-5, 9)
	if cs != 0 || len(w) != 0 {
		t.Fatalf("negative disables chunking: cs=%d warns=%v", cs, w)
	}
	cs, w = ValidateChunking(4, 9)
	if cs != 4 || len(w) != 1 {
		t.Fatalf("chunk<k should warn: cs=%d warns=%v", cs, w)
	}
	cs, w = ValidateChunking(1000, 9)
	if cs != 1000 || len(w) != 0 {
		t.Fatalf("happy path: cs=%d warns=%v", cs, w)
	}
}

func TestLostWindows(t *testing.T) {
	// AAA|CCC, k=4: all 3 windows cross the cut
	if got := LostWindows(6, 3, 4); got != 3 {
		t.Fatalf("want 3, got %d", got)
	}
	// 10 bases, chunks of 4, k=2: cuts at 4 and 8 lose one window each
	if got := LostWindows(10, 4, 2); got != 2 {
		t.Fatalf("want 2, got %d", got)
	}
	if got := LostWindows(10, 0, 3); got != 0 {
		t.Fatalf("no chunking loses nothing, got %d", got)
	}
	if got := LostWindows(8, 4, 1); got != 0 {
		t.Fatalf("k=1 never crosses, got %d", got)
	}
}
