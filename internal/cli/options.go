// internal/cli/options.go
package cli

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"kmercount/internal/cliutil"
	"kmercount/internal/kmer"
	"kmercount/internal/output"
	"kmercount/internal/pipeline"
)

// Defaults shared by flags, usage and tests.
const (
	DefaultK         = 9
	DefaultChunkSize = 1_000_000
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	SeqFiles    []string
	Chromosomes []string

	// Counting
	K         int
	ChunkSize int
	Ambiguous string // include | skip

	// Performance
	Threads  int
	Strategy string // partition | sharded
	Shards   int

	// Output
	Output          string // text | json | jsonl
	Top             int
	Header          bool // true unless --no-header
	Summary         string
	NoMatchExitCode int

	// Misc
	Config  string
	Timings bool
	Quiet   bool
	Verbose bool
	Version bool
	Help    bool
}

// NewFlagSet returns a quiet ContinueOnError FlagSet; callers print usage themselves.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false
	return fs
}

// Register wires all flags onto fs and returns a pointer to the “no-header” bool
// that the caller can use to set Options.Header = !noHeader after parsing.
func Register(fs *pflag.FlagSet, o *Options) *bool {
	// Input
	fs.StringArrayVarP(&o.SeqFiles, "sequences", "s", nil, "FASTA file(s) (repeatable) or '-'")
	fs.StringSliceVar(&o.Chromosomes, "chromosomes", nil, "record names to count (comma-separated; empty = all)")

	// Counting
	fs.IntVarP(&o.K, "k", "k", DefaultK, "k-mer length")
	fs.IntVar(&o.ChunkSize, "chunk-size", DefaultChunkSize, "bases per chunk (0 = one chunk per record)")
	fs.StringVar(&o.Ambiguous, "ambiguous", kmer.PolicyInclude.String(), "windows with non-ACGT bases: include | skip")

	// Performance
	fs.IntVarP(&o.Threads, "threads", "t", 0, "worker goroutines (0 = all CPUs)")
	fs.StringVar(&o.Strategy, "strategy", string(pipeline.StrategyPartition), "partition | sharded")
	fs.IntVar(&o.Shards, "shards", 0, "shard count for --strategy sharded (0 = auto)")

	// Output
	fs.StringVarP(&o.Output, "output", "o", output.FormatText, "output: text | json | jsonl")
	fs.IntVarP(&o.Top, "top", "n", 0, "emit only the N most frequent k-mers (0 = all)")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line")
	fs.StringVar(&o.Summary, "summary", "", "write a JSON run summary to this file")
	fs.IntVar(&o.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no k-mers were counted")

	// Misc
	fs.StringVar(&o.Config, "config", "", "TOML file with default flag values")
	fs.BoolVar(&o.Timings, "timings", false, "log per-step durations")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "only log warnings and errors")
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "log debug details")
	fs.BoolVar(&o.Version, "version", false, "print version and exit")
	fs.BoolVarP(&o.Help, "help", "h", false, "show this help and exit")

	return &noHeader
}

// ParseArgs registers and parses all flags, applies --config, expands
// positional FASTA paths and validates the result.
func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var o Options
	noHeader := Register(fs, &o)
	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	if o.Help {
		return o, pflag.ErrHelp
	}
	if o.Version {
		return o, nil
	}
	if o.Config != "" {
		if err := LoadConfig(fs, o.Config); err != nil {
			return o, err
		}
	}
	return o, AfterParse(&o, *noHeader, fs.Args())
}

// AfterParse finalizes header, merges --sequences with positionals (globs
// expanded, duplicates dropped), then runs validation.
func AfterParse(o *Options, noHeader bool, posArgs []string) error {
	o.Header = !noHeader
	paths := append(append([]string(nil), o.SeqFiles...), posArgs...)
	exp, err := cliutil.ExpandPositionals(paths)
	if err != nil {
		return err
	}
	o.SeqFiles = exp
	return Validate(o)
}

// Validate checks option values after parsing.
func Validate(o *Options) error {
	if len(o.SeqFiles) == 0 {
		return errors.New("at least one sequence file is required")
	}
	if err := kmer.Validate(o.K); err != nil {
		return err
	}
	if o.ChunkSize < 0 {
		return errors.New("--chunk-size must be ≥ 0")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if o.Shards < 0 {
		return errors.New("--shards must be ≥ 0")
	}
	if o.Top < 0 {
		return errors.New("--top must be ≥ 0")
	}
	if _, err := kmer.ParsePolicy(o.Ambiguous); err != nil {
		return err
	}
	if _, err := pipeline.ParseStrategy(o.Strategy); err != nil {
		return err
	}
	switch o.Output {
	case output.FormatText, output.FormatJSON, output.FormatJSONL:
	default:
		return errors.Errorf("invalid --output %q", o.Output)
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	for _, c := range o.Chromosomes {
		if strings.TrimSpace(c) == "" {
			return errors.New("--chromosomes contains an empty name")
		}
	}
	return nil
}
