// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"kmercount/internal/appcore"
	"kmercount/internal/cli"
	"kmercount/internal/kmer"
	"kmercount/internal/pipeline"
	"kmercount/internal/version"
	"kmercount/internal/writers"
)

const name = "kmercount"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet(name)

	// flush reports the exit code for output already written to outw.
	flush := func(code int) int {
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return appcore.ExitRuntime
		}
		return code
	}

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			cli.PrintUsage(outw, fs, name)
			return flush(appcore.ExitOK)
		}
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		_, _ = fmt.Fprintf(stderr, "run '%s --help' for usage\n", name)
		return appcore.ExitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flush(appcore.ExitOK)
	}

	// Validate already accepted both; errors here are impossible.
	policy, _ := kmer.ParsePolicy(opts.Ambiguous)
	strategy, _ := pipeline.ParseStrategy(opts.Strategy)

	coreOpts := appcore.Options{
		SeqFiles: opts.SeqFiles, Chromosomes: opts.Chromosomes,
		K: opts.K, ChunkSize: opts.ChunkSize, Policy: policy,
		Threads: opts.Threads, Strategy: strategy, Shards: opts.Shards,
		Top: opts.Top, Summary: opts.Summary, NoMatchExitCode: opts.NoMatchExitCode,
		Timings: opts.Timings, Quiet: opts.Quiet, Verbose: opts.Verbose,
	}
	writer := appcore.NewRowWriterFactory(opts.Output, opts.Header)
	return appcore.Run(parent, stdout, stderr, coreOpts, writer)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
