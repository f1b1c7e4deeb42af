package fasta

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollect_SelectsAndReportsMissing(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.fa")
	b := filepath.Join(dir, "b.fa")
	require.NoError(t, os.WriteFile(a, []byte(">chr1\nAAAACCCC\n>chr2\nGGGG\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte(">chr21\nttttaaaa\n"), 0o644))

	src, err := Collect(context.Background(), []string{a, b}, 4, []string{"chr21", "chr1", "chrX", "chrX"})
	require.NoError(t, err)
	require.Equal(t, []string{"chr1", "chr21"}, src.Records)
	require.Equal(t, []string{"chrX"}, src.Missing)

	var seqs []string
	for _, s := range src.Seqs() {
		seqs = append(seqs, string(s))
	}
	require.Equal(t, []string{"AAAA", "CCCC", "TTTT", "AAAA"}, seqs)
}

func TestCollect_AllRecords(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "x.fa")
	require.NoError(t, os.WriteFile(fn, []byte(">s1\nAC\n>s2\nGT\n"), 0o644))
	src, err := Collect(context.Background(), []string{fn}, 0, nil)
	require.NoError(t, err)
	require.Len(t, src.Chunks, 2)
	require.Empty(t, src.Missing)
}

func TestCollect_WrapsPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone.fa")
	_, err := Collect(context.Background(), []string{missing}, 0, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "read "+missing)
}
