// internal/app/app.go
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap/zapcore"

	"opfind/internal/appcore"
	"opfind/internal/cli"
	"opfind/internal/config"
	"opfind/internal/logging"
	"opfind/internal/version"
)

// RunContext parses argv, wires the run, and returns the process exit
// code. stdout/stderr are injected so tests can drive the whole app.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("opfind")
	fs.SetOutput(io.Discard)

	defaults, warns := config.Load()

	if len(argv) == 0 {
		fs.SetOutput(stdout)
		_, _ = cli.ParseArgs(fs, nil, defaults)
		fs.Usage()
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv, defaults)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		fmt.Fprintf(stdout, "opfind version %s\n", version.Version)
		return 0
	}

	level := logging.ParseLevel(opts.LogLevel)
	if opts.Quiet {
		level = zapcore.ErrorLevel
	}
	if err := logging.InitLogger(level); err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	defer func() { _ = logging.Sync() }()
	for _, w := range warns {
		logging.Warn(w)
	}

	out := stdout
	if opts.Output != "-" && opts.Output != "" {
		fh, err := os.Create(opts.Output)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		defer func() { _ = fh.Close() }()
		out = fh
	}

	return appcore.Run(parent, appcore.Options{
		InputFile:         opts.InputFile,
		MaxGap:            opts.MaxGap,
		RequireSameStrand: opts.RequireSameStrand,
		Format:            opts.Format,
		Header:            opts.Header,
		SQLitePath:        opts.SQLitePath,
		Stats:             opts.Stats,
		Quiet:             opts.Quiet,
		NoMatchExitCode:   opts.NoMatchExitCode,
	}, out, stderr)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
