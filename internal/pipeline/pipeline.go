// internal/pipeline/pipeline.go

// Package pipeline drives the single-pass scan: block segmentation,
// operon chaining, query selection, and report emission.
package pipeline

import (
	"context"
	"io"

	"go.uber.org/zap"

	"opfind-core/genetable"
	"opfind-core/operon"
	"opfind/internal/logging"
	"opfind/internal/report"
)

// Config controls the scan.
type Config struct {
	MaxGap            int
	RequireSameStrand bool
}

// Tally summarizes one run for diagnostics.
type Tally struct {
	Rows      int
	ShortRows int
	BadCoords int
	Blocks    int
	Reports   int
}

// ForEachReport streams qualifying operon reports to visit, one block
// at a time and strictly in input order. Only rows of the current
// block are held in memory. It returns the tally and the first error
// encountered (including context cancellation).
func ForEachReport(ctx context.Context, cfg Config, r io.Reader, visit func(report.Report) error) (Tally, error) {
	var t Tally
	stats, err := genetable.ScanBlocksCtx(ctx, r, func(b genetable.Block) error {
		first := b.Rows[0]
		for _, row := range b.Rows[1:] {
			if row.Assembly != first.Assembly {
				// Reports carry the first row's assembly.
				logging.Debug("assembly varies within block",
					zap.String("query", first.QueryFull),
					zap.String("first", first.Assembly),
					zap.String("other", row.Assembly))
				break
			}
		}
		clusters := operon.Build(b.Rows, operon.Config{
			MaxGap:            cfg.MaxGap,
			RequireSameStrand: cfg.RequireSameStrand,
		})
		for _, c := range operon.SelectQuery(clusters, first.QueryID) {
			if err := visit(report.FromCluster(c, first)); err != nil {
				return err
			}
			t.Reports++
		}
		return nil
	})
	t.Rows = stats.Rows
	t.ShortRows = stats.ShortRows
	t.BadCoords = stats.BadCoords
	t.Blocks = stats.Blocks
	return t, err
}
