// core/operon/operon.go

// Package operon chains the genes of one neighborhood block into
// operon clusters: maximal runs along a contig where each consecutive
// pair is separated by at most a configured intergenic distance.
package operon

import (
	"sort"

	"opfind-core/genetable"
)

// Config controls cluster chaining.
type Config struct {
	MaxGap            int  // maximum intergenic distance (bp) to chain two genes
	RequireSameStrand bool // if set, only chain genes on the same strand
}

// Cluster is an ordered, non-empty run of genes on one contig.
// Membership is transitive chaining: each member is within MaxGap of
// the previous member, not of every other member.
type Cluster struct {
	Members []genetable.GeneRecord
}

// Start is the minimum start over members. Members are sorted by
// start, so this is the first member's start.
func (c Cluster) Start() int { return c.Members[0].Start }

// End is the maximum stop over members. A later member can end before
// an earlier long gene, so this scans rather than taking the last.
func (c Cluster) End() int {
	end := c.Members[0].Stop
	for _, m := range c.Members[1:] {
		if m.Stop > end {
			end = m.Stop
		}
	}
	return end
}

func (c Cluster) Size() int      { return len(c.Members) }
func (c Cluster) Contig() string { return c.Members[0].Contig }

// ContainsProtein reports whether any member has the given protein id.
func (c Cluster) ContainsProtein(id string) bool {
	for _, m := range c.Members {
		if m.ProteinID == id {
			return true
		}
	}
	return false
}

// Build sorts the block's rows by (contig, start, stop) and walks them
// once, starting a new cluster whenever the contig changes or the gap
// to the last appended member exceeds cfg.MaxGap (or, when
// cfg.RequireSameStrand is set, the strand flips). The sort is stable
// so rows with equal keys keep their block order and output stays
// deterministic. The input slice is not modified.
func Build(rows []genetable.GeneRecord, cfg Config) []Cluster {
	if len(rows) == 0 {
		return nil
	}
	sorted := make([]genetable.GeneRecord, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Contig != b.Contig {
			return a.Contig < b.Contig
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.Stop < b.Stop
	})

	var (
		clusters []Cluster
		cur      = Cluster{Members: sorted[:1:1]}
	)
	for _, r := range sorted[1:] {
		prev := cur.Members[len(cur.Members)-1]
		switch {
		case r.Contig != prev.Contig:
			clusters = append(clusters, cur)
			cur = Cluster{Members: []genetable.GeneRecord{r}}
		case r.Start-prev.Stop <= cfg.MaxGap &&
			(!cfg.RequireSameStrand || r.Strand == prev.Strand):
			cur.Members = append(cur.Members, r)
		default:
			clusters = append(clusters, cur)
			cur = Cluster{Members: []genetable.GeneRecord{r}}
		}
	}
	return append(clusters, cur)
}
