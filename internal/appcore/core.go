// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"opfind-core/genetable"
	"opfind/internal/logging"
	"opfind/internal/pipeline"
	"opfind/internal/report"
	"opfind/internal/sqlitesink"
	"opfind/internal/stats"
	"opfind/internal/writers"
)

// Options is the validated run configuration.
type Options struct {
	InputFile string

	MaxGap            int
	RequireSameStrand bool

	Format     string
	Header     bool
	SQLitePath string

	Stats bool
	Quiet bool

	NoMatchExitCode int
}

// Run executes one pass over the input and writes reports to stdout
// (already redirected to a file by the caller when requested).
// Exit codes: 0 ok, 2 usage, 3 I/O or write failure, 130 canceled;
// a run with zero reports returns o.NoMatchExitCode.
func Run(parent context.Context, o Options, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	in, err := genetable.Open(o.InputFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	defer func() { _ = in.Close() }()

	var sink *sqlitesink.Sink
	if o.SQLitePath != "" {
		sink, err = sqlitesink.Open(parent, o.SQLitePath, o.MaxGap, o.RequireSameStrand)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		defer func() { _ = sink.Close() }()
		logging.Info("sqlite sink open",
			zap.String("path", o.SQLitePath), zap.String("run_id", sink.RunID()))
	}

	inCh, writeErr := writers.StartReportWriter(outw, o.Format, o.Header, 64)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var col stats.Collector
	tally, perr := pipeline.ForEachReport(ctx,
		pipeline.Config{MaxGap: o.MaxGap, RequireSameStrand: o.RequireSameStrand},
		in,
		func(r report.Report) error {
			if sink != nil {
				if err := sink.Write(ctx, r); err != nil {
					return err
				}
			}
			if o.Stats {
				col.Add(r)
			}
			select {
			case inCh <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		logging.Error("report writer failed", zap.Error(werr))
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, perr)
		return 3
	}

	if !o.Quiet {
		logging.Info("run complete",
			zap.Int("rows", tally.Rows),
			zap.Int("blocks", tally.Blocks),
			zap.Int("operons", tally.Reports),
			zap.Int("skipped_short_rows", tally.ShortRows),
			zap.Int("skipped_bad_coords", tally.BadCoords),
		)
	}
	if o.Stats {
		if err := col.Render(stderr); err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
	}

	if tally.Reports == 0 {
		return o.NoMatchExitCode
	}
	return 0
}
