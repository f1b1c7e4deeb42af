package appcore

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"kmercount/internal/cmdutil"
	"kmercount/internal/engine"
	"kmercount/internal/kmer"
	"kmercount/internal/output"
	"kmercount/internal/pipeline"
)

func fastaFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "in.fa")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

// errFactory accepts every row and then reports err.
type errFactory struct{ err error }

func (f errFactory) Start(_ io.Writer, _ int) (chan<- output.Row, <-chan error) {
	in := make(chan output.Row)
	done := make(chan error, 1)
	go func() {
		for range in {
		}
		done <- f.err
	}()
	return in, done
}

func baseOpts(path string) Options {
	return Options{SeqFiles: []string{path}, K: 2, Threads: 2, NoMatchExitCode: 1, Quiet: true}
}

func TestRun_WritesSortedRows(t *testing.T) {
	fa := fastaFile(t, ">a\nAAAA\n>b\nAAAA\n")
	var out, errB bytes.Buffer
	code := Run(context.Background(), &out, &errB, baseOpts(fa), NewRowWriterFactory(output.FormatText, true))
	require.Equal(t, ExitOK, code, errB.String())
	require.Equal(t, "kmer\tcount\nAA\t6\n", out.String())
}

func TestRun_NoMatchExitCode(t *testing.T) {
	fa := fastaFile(t, ">a\nAC\n")
	o := baseOpts(fa)
	o.K = 5
	o.NoMatchExitCode = 7
	var out bytes.Buffer
	code := Run(context.Background(), &out, io.Discard, o, NewRowWriterFactory(output.FormatJSON, true))
	require.Equal(t, 7, code)
	require.Equal(t, "[]\n", out.String())
}

func TestRun_InvalidKIsUsageError(t *testing.T) {
	fa := fastaFile(t, ">a\nACGT\n")
	o := baseOpts(fa)
	o.K = 0
	code := Run(context.Background(), io.Discard, io.Discard, o, NewRowWriterFactory(output.FormatText, true))
	require.Equal(t, ExitUsage, code)
}

func TestRun_WriterErrors(t *testing.T) {
	fa := fastaFile(t, ">a\nACGT\n")
	code := Run(context.Background(), io.Discard, io.Discard, baseOpts(fa), errFactory{errors.New("disk full")})
	require.Equal(t, ExitRuntime, code)

	code = Run(context.Background(), io.Discard, io.Discard, baseOpts(fa), errFactory{errors.Wrap(syscall.EPIPE, "write")})
	require.Equal(t, ExitOK, code, "broken pipe downstream is success")
}

func TestRun_SkipPolicyAndSharded(t *testing.T) {
	fa := fastaFile(t, ">a\nACNGT\n")
	o := baseOpts(fa)
	o.Policy = kmer.PolicySkip
	o.Strategy = pipeline.StrategySharded
	var out bytes.Buffer
	code := Run(context.Background(), &out, io.Discard, o, NewRowWriterFactory(output.FormatText, false))
	require.Equal(t, ExitOK, code)
	require.Equal(t, "AC\t1\nGT\t1\n", out.String())
}

func TestFail_MapsErrorClasses(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{context.Canceled, ExitCanceled},
		{&engine.StageError{Stage: engine.StageCount, Worker: 1, Chunk: 2, Err: context.Canceled}, ExitCanceled},
		{&kmer.InvalidWindowError{K: 0}, ExitUsage},
		{engine.WorkerFailure(0, 3, errors.New("boom")), ExitRuntime},
		{errors.New("read x.fa: no such file"), ExitRuntime},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		got := fail(cmdutil.NewLogger(&buf, false, false), c.err)
		require.Equal(t, c.want, got, "%v", c.err)
	}
}
