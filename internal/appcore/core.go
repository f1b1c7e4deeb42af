// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"kmercount/internal/cmdutil"
	"kmercount/internal/engine"
	"kmercount/internal/fasta"
	"kmercount/internal/jsonutil"
	"kmercount/internal/kmer"
	"kmercount/internal/output"
	"kmercount/internal/pipeline"
	"kmercount/internal/runutil"
	"kmercount/internal/writers"
	"kmercount/pkg/api"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitRuntime  = 3
	ExitCanceled = 130
)

type Options struct {
	SeqFiles    []string
	Chromosomes []string

	K         int
	ChunkSize int
	Policy    kmer.Policy

	Threads  int
	Strategy pipeline.Strategy
	Shards   int

	Top             int
	Summary         string
	NoMatchExitCode int

	Timings bool
	Quiet   bool
	Verbose bool
}

// Run reads the inputs, counts k-mers and streams the sorted table through wf.
// It returns the process exit code.
func Run(parent context.Context, stdout, stderr io.Writer, o Options, wf WriterFactory) int {
	lg := cmdutil.NewLogger(stderr, o.Quiet, o.Verbose)
	outw := bufio.NewWriter(stdout)

	if err := kmer.Validate(o.K); err != nil {
		lg.Error(err)
		return ExitUsage
	}
	chunkSize, warns := runutil.ValidateChunking(o.ChunkSize, o.K)
	for _, w := range warns {
		lg.Warn(w)
	}
	thr := runutil.EffectiveThreads(o.Threads)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var src *fasta.Source
	err := cmdutil.Step(lg, o.Timings, "read", func() error {
		var err error
		src, err = fasta.Collect(ctx, o.SeqFiles, chunkSize, o.Chromosomes)
		return err
	})
	if err != nil {
		return fail(lg, err)
	}
	for _, name := range src.Missing {
		lg.Warnf("chromosome %q not found in any input", name)
	}
	logChunking(lg, src, chunkSize, o.K)

	cfg := pipeline.Config{
		K:        o.K,
		Workers:  thr,
		Policy:   o.Policy,
		Strategy: o.Strategy,
		Shards:   o.Shards,
	}
	lg.WithFields(logrus.Fields{
		"k":        cfg.K,
		"workers":  cfg.Workers,
		"strategy": cfg.Strategy,
		"policy":   cfg.Policy,
		"chunks":   len(src.Chunks),
	}).Debug("counting")

	tbl, st, err := pipeline.Count(ctx, cfg, src.Seqs())
	if err != nil {
		return fail(lg, err)
	}
	cmdutil.LogDuration(lg, o.Timings, "count", st.Count)
	cmdutil.LogDuration(lg, o.Timings, "merge", st.Merge)

	var rows []output.Row
	_ = cmdutil.Step(lg, o.Timings, "sort", func() error {
		rows = output.Top(output.Rows(tbl), o.Top)
		return nil
	})

	var werr error
	_ = cmdutil.Step(lg, o.Timings, "write", func() error {
		werr = writeRows(ctx, outw, wf, rows, thr)
		return werr
	})
	if writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		return fail(lg, werr)
	}

	if o.Summary != "" {
		if err := jsonutil.WriteFile(o.Summary, summarize(o, src, st)); err != nil {
			lg.Error(err)
			return ExitRuntime
		}
	}

	lg.WithFields(logrus.Fields{
		"records":  len(src.Records),
		"bases":    cmdutil.Count(st.Bases),
		"windows":  cmdutil.Count(st.Windows),
		"distinct": cmdutil.Count(st.Distinct),
		"rate":     cmdutil.Rate(st.Windows, st.Count),
	}).Info("counted k-mers")

	if st.Windows == 0 {
		return o.NoMatchExitCode
	}
	return ExitOK
}

func writeRows(ctx context.Context, outw *bufio.Writer, wf WriterFactory, rows []output.Row, thr int) error {
	in, done := wf.Start(outw, thr*4)
	var cerr error
send:
	for _, r := range rows {
		select {
		case in <- r:
		case <-ctx.Done():
			cerr = ctx.Err()
			break send
		}
	}
	close(in)
	if err := <-done; err != nil {
		return err
	}
	if cerr != nil {
		return cerr
	}
	return outw.Flush()
}

// fail maps a run error to an exit code and logs it.
func fail(lg logrus.FieldLogger, err error) int {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		lg.Warn("interrupted")
		return ExitCanceled
	case errors.Is(err, kmer.ErrInvalidWindow):
		lg.Error(err)
		return ExitUsage
	}
	var se *engine.StageError
	if errors.As(err, &se) {
		lg.WithFields(logrus.Fields{"stage": se.Stage, "worker": se.Worker, "chunk": se.Chunk}).Error(err)
		return ExitRuntime
	}
	lg.Error(err)
	return ExitRuntime
}

func logChunking(lg logrus.FieldLogger, src *fasta.Source, chunkSize, k int) {
	if chunkSize <= 0 {
		return
	}
	lens := map[string]int{}
	for _, c := range src.Chunks {
		lens[c.RecordID] += len(c.Seq)
	}
	lost := 0
	for _, n := range lens {
		lost += runutil.LostWindows(n, chunkSize, k)
	}
	if lost > 0 {
		lg.WithField("windows", cmdutil.Count(lost)).Debug("boundary-crossing windows not counted")
	}
}

func summarize(o Options, src *fasta.Source, st pipeline.Stats) api.SummaryV1 {
	recs := src.Records
	if recs == nil {
		recs = []string{}
	}
	return api.SummaryV1{
		K:        o.K,
		Records:  recs,
		Chunks:   st.Chunks,
		Bases:    st.Bases,
		Windows:  st.Windows,
		Distinct: st.Distinct,
		Workers:  st.Workers,
		Strategy: string(strategyOrDefault(o.Strategy)),
		Policy:   o.Policy.String(),
	}
}

func strategyOrDefault(s pipeline.Strategy) pipeline.Strategy {
	if s == "" {
		return pipeline.StrategyPartition
	}
	return s
}
