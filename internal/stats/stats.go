// internal/stats/stats.go

// Package stats accumulates a distribution summary over the reported
// operons: member counts and the intergenic gaps inside each operon.
package stats

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/stat"

	"opfind/internal/report"
)

// Collector gathers per-report observations.
type Collector struct {
	sizes []float64
	gaps  []float64
}

// Add records one reported operon. Members arrive in cluster order,
// so consecutive pairs give the chained intergenic distances.
func (c *Collector) Add(r report.Report) {
	c.sizes = append(c.sizes, float64(r.Size()))
	for i := 1; i < len(r.Members); i++ {
		c.gaps = append(c.gaps, float64(r.Members[i].Start-r.Members[i-1].Stop))
	}
}

// Summary is the rendered aggregate.
type Summary struct {
	Operons    int
	MeanSize   float64
	MedianSize float64
	MeanGap    float64
	MaxGap     float64
}

func (c *Collector) Summary() Summary {
	s := Summary{Operons: len(c.sizes)}
	if s.Operons == 0 {
		return s
	}
	sizes := append([]float64(nil), c.sizes...)
	sort.Float64s(sizes)
	s.MeanSize = stat.Mean(sizes, nil)
	s.MedianSize = stat.Quantile(0.5, stat.Empirical, sizes, nil)
	if len(c.gaps) > 0 {
		gaps := append([]float64(nil), c.gaps...)
		sort.Float64s(gaps)
		s.MeanGap = stat.Mean(gaps, nil)
		s.MaxGap = gaps[len(gaps)-1]
	}
	return s
}

// Render writes the summary as aligned key/value lines.
func (c *Collector) Render(w io.Writer) error {
	s := c.Summary()
	if s.Operons == 0 {
		_, err := fmt.Fprintln(w, "stats: no operons reported")
		return err
	}
	_, err := fmt.Fprintf(w,
		"stats: operons=%d mean_size=%.2f median_size=%.1f mean_gap=%.2f max_gap=%.0f\n",
		s.Operons, s.MeanSize, s.MedianSize, s.MeanGap, s.MaxGap)
	return err
}
