package kmer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, chunk string, k int) []string {
	t.Helper()
	ws, err := Windows([]byte(chunk), k)
	require.NoError(t, err)
	var got []string
	for w := range ws {
		got = append(got, string(w))
	}
	return got
}

func TestWindows_LeftToRight(t *testing.T) {
	got := collect(t, "ATGATG", 3)
	require.Equal(t, []string{"ATG", "TGA", "GAT", "ATG"}, got)
}

func TestWindows_CountMatchesFormula(t *testing.T) {
	for _, tc := range []struct {
		chunk string
		k     int
	}{
		{"ACGTACGT", 1}, {"ACGTACGT", 4}, {"ACGTACGT", 8}, {"ACGTACGT", 9}, {"", 1}, {"NNNN", 2},
	} {
		got := collect(t, tc.chunk, tc.k)
		if len(got) != WindowCount(len(tc.chunk), tc.k) {
			t.Fatalf("%q k=%d: %d windows, want %d", tc.chunk, tc.k, len(got), WindowCount(len(tc.chunk), tc.k))
		}
	}
}

func TestWindows_ShortAndEmptyChunks(t *testing.T) {
	require.Empty(t, collect(t, "", 3))
	require.Empty(t, collect(t, "AC", 3))
	require.Equal(t, []string{"ACG"}, collect(t, "ACG", 3))
}

func TestWindows_Restartable(t *testing.T) {
	ws, err := Windows([]byte("GATTACA"), 2)
	require.NoError(t, err)
	var a, b []string
	for w := range ws {
		a = append(a, string(w))
	}
	for w := range ws {
		b = append(b, string(w))
	}
	require.Equal(t, a, b)
}

func TestWindows_EarlyBreak(t *testing.T) {
	ws, err := Windows([]byte("AAAAAAAA"), 2)
	require.NoError(t, err)
	n := 0
	for range ws {
		n++
		if n == 3 {
			break
		}
	}
	require.Equal(t, 3, n)
}

func TestWindows_KeepsAmbiguousSymbols(t *testing.T) {
	require.Equal(t, []string{"ANC", "NCG"}, collect(t, "ANCG", 3))
}

func TestWindows_InvalidK(t *testing.T) {
	for _, k := range []int{0, -1} {
		_, err := Windows([]byte("ACGT"), k)
		if !errors.Is(err, ErrInvalidWindow) {
			t.Fatalf("k=%d: want ErrInvalidWindow, got %v", k, err)
		}
		var iw *InvalidWindowError
		require.True(t, errors.As(err, &iw))
		require.Equal(t, k, iw.K)
	}
}

func TestKeys(t *testing.T) {
	ks, err := Keys([]byte("ACGT"), 2)
	require.NoError(t, err)
	var got []Key
	for k := range ks {
		got = append(got, k)
	}
	require.Equal(t, []Key{"AC", "CG", "GT"}, got)
}

func TestPolicy(t *testing.T) {
	require.True(t, PolicyInclude.Accept([]byte("ANA")))
	require.False(t, PolicySkip.Accept([]byte("ANA")))
	require.False(t, PolicySkip.Accept([]byte("acg")))
	require.True(t, PolicySkip.Accept([]byte("ACGT")))

	p, err := ParsePolicy("SKIP")
	require.NoError(t, err)
	require.Equal(t, PolicySkip, p)
	p, err = ParsePolicy("")
	require.NoError(t, err)
	require.Equal(t, PolicyInclude, p)
	_, err = ParsePolicy("drop")
	require.Error(t, err)
	require.Equal(t, "skip", PolicySkip.String())
}
