// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"opfind/internal/cliutil"
	"opfind/internal/config"
	"opfind/internal/output"
	"opfind/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	InputFile string // positional path, or "-" for stdin

	// Clustering parameters
	MaxGap            int
	RequireSameStrand bool

	// Output
	Output     string // path, or "-" for stdout
	Format     string // text | json
	Header     bool   // true unless --no-header
	SQLitePath string // optional structured sink

	// Diagnostics
	Stats    bool
	Quiet    bool
	LogLevel string

	NoMatchExitCode int
	Version         bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: find queries clustered in an operon with their genomic neighbors

Reads a FlaGs2-style neighborhood context table (whitespace-delimited,
12+ columns) and reports, per query, the operon clusters that contain
the query together with at least one other gene.

Version: %s

Usage: %s [flags] <context-table | ->
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags over the environment-derived
// defaults, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string, def config.Defaults) (Options, error) {
	var opt Options
	var help bool

	// Clustering parameters
	fs.IntVar(&opt.MaxGap, "max-gap", def.MaxGap, "maximum intergenic distance (bp) to chain genes into an operon")
	fs.BoolVar(&opt.RequireSameStrand, "require-same-strand", def.RequireSameStrand, "only chain genes on the same strand")

	// Output
	fs.StringVar(&opt.Output, "out", def.Output, "output file ('-' = stdout)")
	fs.StringVar(&opt.Format, "format", def.Format, "output format: text | json")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV")
	fs.StringVar(&opt.SQLitePath, "sqlite", def.SQLitePath, "also record results into this SQLite database")

	// Diagnostics
	fs.BoolVar(&opt.Stats, "stats", false, "print an operon size/gap summary to stderr")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress diagnostics")
	fs.StringVar(&opt.LogLevel, "log-level", def.LogLevel, "diagnostic level: debug | info | warn | error")

	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 0, "exit code when no operon is reported")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand)")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand)")

	// The input path may sit before or after the flags.
	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(append(flagArgs, posArgs...)); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	// Validation
	switch args := fs.Args(); len(args) {
	case 0:
		return opt, errors.New("provide an input context table (or '-' for stdin)")
	case 1:
		opt.InputFile = args[0]
	default:
		return opt, fmt.Errorf("expected one input file, got %d", len(args))
	}
	if opt.MaxGap < 0 {
		return opt, errors.New("--max-gap must be ≥ 0")
	}
	if opt.Format != output.FormatText && opt.Format != output.FormatJSON {
		return opt, fmt.Errorf("invalid --format %q", opt.Format)
	}
	if opt.NoMatchExitCode < 0 || opt.NoMatchExitCode > 125 {
		return opt, errors.New("--no-match-exit-code must be in 0..125")
	}
	return opt, nil
}
