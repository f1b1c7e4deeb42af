// internal/cli/usage.go
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"kmercount/internal/version"
)

// PrintUsage writes the help screen for fs (flags must already be registered).
func PrintUsage(out io.Writer, fs *pflag.FlagSet, name string) {
	def := func(flagName string) string {
		if f := fs.Lookup(flagName); f != nil {
			return f.DefValue
		}
		return ""
	}

	fmt.Fprintf(out, "%s – parallel exact k-mer counting\n\n", name)
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)
	fmt.Fprintf(out, "Usage:\n  %s [flags] FASTA...\n", name)
	fmt.Fprintf(out, "  %s -k 11 --chromosomes chr1,chr2 -o jsonl genome.fa.gz\n", name)
	fmt.Fprintf(out, "  zcat reads.fa.gz | %s -k 5 -n 20 -\n", name)

	fmt.Fprintln(out, "\nInput:")
	fmt.Fprintln(out, "  -s, --sequences file        FASTA file(s) (repeatable) or '-' for STDIN; also positional")
	fmt.Fprintln(out, "      --chromosomes list      Record names to count (comma-separated; empty = all)")

	fmt.Fprintln(out, "\nCounting:")
	fmt.Fprintf(out, "  -k, --k int                 K-mer length [%s]\n", def("k"))
	fmt.Fprintf(out, "      --chunk-size int        Bases per chunk (0 = one chunk per record) [%s]\n", def("chunk-size"))
	fmt.Fprintf(out, "      --ambiguous string      Windows with non-ACGT bases: include | skip [%s]\n", def("ambiguous"))

	fmt.Fprintln(out, "\nPerformance:")
	fmt.Fprintf(out, "  -t, --threads int           Worker goroutines (0 = all CPUs) [%s]\n", def("threads"))
	fmt.Fprintf(out, "      --strategy string       partition | sharded [%s]\n", def("strategy"))
	fmt.Fprintf(out, "      --shards int            Shard count for --strategy sharded (0 = auto) [%s]\n", def("shards"))

	fmt.Fprintln(out, "\nOutput:")
	fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl [%s]\n", def("output"))
	fmt.Fprintf(out, "  -n, --top int               Emit only the N most frequent k-mers (0 = all) [%s]\n", def("top"))
	fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))
	fmt.Fprintln(out, "      --summary file          Write a JSON run summary to file")
	fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when no k-mers were counted [%s]\n", def("no-match-exit-code"))

	fmt.Fprintln(out, "\nMiscellaneous:")
	fmt.Fprintln(out, "      --config file           TOML file with default flag values (flags win)")
	fmt.Fprintln(out, "      --timings               Log per-step durations")
	fmt.Fprintln(out, "  -q, --quiet                 Only log warnings and errors")
	fmt.Fprintln(out, "  -v, --verbose               Log debug details")
	fmt.Fprintln(out, "      --version               Print version and exit")
	fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
}
