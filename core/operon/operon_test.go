// core/operon/operon_test.go
package operon

import (
	"testing"

	"opfind-core/genetable"
)

func gene(prot, contig, strand string, start, stop int) genetable.GeneRecord {
	return genetable.GeneRecord{
		QueryFull: "Q1#1|E_coli", QueryID: "Q1#1", QuerySpecies: "E_coli",
		Strand: strand, Start: start, Stop: stop,
		ProteinID: prot, Contig: contig, Assembly: "GCF_1",
	}
}

func ids(c Cluster) []string {
	out := make([]string, 0, len(c.Members))
	for _, m := range c.Members {
		out = append(out, m.ProteinID)
	}
	return out
}

func TestBuildChainsWithinGap(t *testing.T) {
	rows := []genetable.GeneRecord{
		gene("N1", "C1", "+", 100, 200),
		gene("Q1#1", "C1", "+", 210, 260),
	}
	cs := Build(rows, Config{MaxGap: 50})
	if len(cs) != 1 {
		t.Fatalf("clusters = %d, want 1", len(cs))
	}
	if cs[0].Start() != 100 || cs[0].End() != 260 || cs[0].Size() != 2 {
		t.Errorf("bounds = %d..%d size %d", cs[0].Start(), cs[0].End(), cs[0].Size())
	}
}

func TestBuildSplitsOnGap(t *testing.T) {
	rows := []genetable.GeneRecord{
		gene("N1", "C1", "+", 100, 140),
		gene("Q1#1", "C1", "+", 300, 350), // intergenic 160 > 50
	}
	cs := Build(rows, Config{MaxGap: 50})
	if len(cs) != 2 || cs[0].Size() != 1 || cs[1].Size() != 1 {
		t.Fatalf("want two singletons, got %+v", cs)
	}
}

func TestBuildGapBoundaryInclusive(t *testing.T) {
	rows := []genetable.GeneRecord{
		gene("N1", "C1", "+", 100, 150),
		gene("N2", "C1", "+", 200, 250), // intergenic exactly 50
	}
	cs := Build(rows, Config{MaxGap: 50})
	if len(cs) != 1 {
		t.Fatalf("gap == max_gap must chain, got %d clusters", len(cs))
	}
}

func TestBuildSplitsOnContigChange(t *testing.T) {
	rows := []genetable.GeneRecord{
		gene("N1", "C2", "+", 100, 200),
		gene("N2", "C1", "+", 210, 260),
	}
	cs := Build(rows, Config{MaxGap: 1_000_000})
	if len(cs) != 2 {
		t.Fatalf("clusters = %d, want 2", len(cs))
	}
	// contig is the primary sort key
	if cs[0].Contig() != "C1" || cs[1].Contig() != "C2" {
		t.Errorf("contig order = %q, %q", cs[0].Contig(), cs[1].Contig())
	}
}

func TestBuildStrandGate(t *testing.T) {
	rows := []genetable.GeneRecord{
		gene("N1", "C1", "+", 100, 200),
		gene("N2", "C1", "-", 210, 260),
	}
	if cs := Build(rows, Config{MaxGap: 50}); len(cs) != 1 {
		t.Fatalf("strand ignored by default, got %d clusters", len(cs))
	}
	if cs := Build(rows, Config{MaxGap: 50, RequireSameStrand: true}); len(cs) != 2 {
		t.Fatalf("same-strand gate must split, got %d clusters", len(cs))
	}
}

// Chaining compares against the last appended member, so a long first
// gene does not swallow a third gene that is only near the second.
func TestBuildChainsAgainstLastMember(t *testing.T) {
	rows := []genetable.GeneRecord{
		gene("N1", "C1", "+", 100, 500),
		gene("N2", "C1", "+", 520, 600),
		gene("N3", "C1", "+", 630, 700), // 630-600=30 <= 50, but 630-500=130
	}
	cs := Build(rows, Config{MaxGap: 50})
	if len(cs) != 1 || cs[0].Size() != 3 {
		t.Fatalf("want one cluster of 3, got %+v", cs)
	}
}

func TestBuildOverlappingGenesChain(t *testing.T) {
	rows := []genetable.GeneRecord{
		gene("N1", "C1", "+", 100, 300),
		gene("N2", "C1", "+", 250, 400), // negative intergenic distance
	}
	cs := Build(rows, Config{MaxGap: 0})
	if len(cs) != 1 {
		t.Fatalf("overlap must chain, got %d clusters", len(cs))
	}
}

func TestBuildStableOnEqualKeys(t *testing.T) {
	rows := []genetable.GeneRecord{
		gene("Nfirst", "C1", "+", 100, 200),
		gene("Nsecond", "C1", "+", 100, 200),
	}
	cs := Build(rows, Config{MaxGap: 50})
	if len(cs) != 1 {
		t.Fatalf("clusters = %d", len(cs))
	}
	got := ids(cs[0])
	if got[0] != "Nfirst" || got[1] != "Nsecond" {
		t.Errorf("equal-key order not preserved: %v", got)
	}
}

func TestBuildUnsortedInput(t *testing.T) {
	rows := []genetable.GeneRecord{
		gene("N2", "C1", "+", 210, 260),
		gene("N1", "C1", "+", 100, 200),
	}
	cs := Build(rows, Config{MaxGap: 50})
	if len(cs) != 1 {
		t.Fatalf("clusters = %d, want 1", len(cs))
	}
	got := ids(cs[0])
	if got[0] != "N1" || got[1] != "N2" {
		t.Errorf("cluster order = %v", got)
	}
	// input slice untouched
	if rows[0].ProteinID != "N2" {
		t.Errorf("Build mutated its input")
	}
}

func TestBuildEmpty(t *testing.T) {
	if cs := Build(nil, Config{MaxGap: 50}); cs != nil {
		t.Fatalf("want nil, got %+v", cs)
	}
}

func TestBuildEndWithContainedInterval(t *testing.T) {
	rows := []genetable.GeneRecord{
		gene("N1", "C1", "+", 100, 900),
		gene("N2", "C1", "+", 150, 300),
	}
	cs := Build(rows, Config{MaxGap: 50})
	if len(cs) != 1 || cs[0].End() != 900 {
		t.Fatalf("End must be max stop, got %d", cs[0].End())
	}
}

func TestSelectQuery(t *testing.T) {
	clusters := Build([]genetable.GeneRecord{
		gene("N1", "C1", "+", 100, 200),
		gene("Q1#1", "C1", "+", 210, 260),
		gene("N2", "C2", "+", 100, 200),
	}, Config{MaxGap: 50})

	sel := SelectQuery(clusters, "Q1#1")
	if len(sel) != 1 {
		t.Fatalf("selected = %d, want 1", len(sel))
	}
	if !sel[0].ContainsProtein("Q1#1") || sel[0].Size() != 2 {
		t.Errorf("wrong cluster selected: %v", ids(sel[0]))
	}
}

func TestSelectQueryDropsSelfOnly(t *testing.T) {
	clusters := Build([]genetable.GeneRecord{
		gene("N1", "C1", "+", 100, 140),
		gene("Q1#1", "C1", "+", 300, 350),
	}, Config{MaxGap: 50})

	if sel := SelectQuery(clusters, "Q1#1"); len(sel) != 0 {
		t.Fatalf("self-only cluster must not qualify, got %d", len(sel))
	}
}

// Self rows on two contigs, both co-clustered: both qualify.
func TestSelectQueryMultiContig(t *testing.T) {
	clusters := Build([]genetable.GeneRecord{
		gene("Q1#1", "C1", "+", 100, 200),
		gene("N1", "C1", "+", 210, 260),
		gene("Q1#1", "C2", "+", 500, 600),
		gene("N2", "C2", "+", 610, 700),
	}, Config{MaxGap: 50})

	sel := SelectQuery(clusters, "Q1#1")
	if len(sel) != 2 {
		t.Fatalf("selected = %d, want 2", len(sel))
	}
	if sel[0].Contig() == sel[1].Contig() {
		t.Errorf("want distinct contigs, got %q twice", sel[0].Contig())
	}
}

func TestSelectQueryNoSelfRow(t *testing.T) {
	clusters := Build([]genetable.GeneRecord{
		gene("N1", "C1", "+", 100, 200),
		gene("N2", "C1", "+", 210, 260),
	}, Config{MaxGap: 50})

	if sel := SelectQuery(clusters, "Q1#1"); len(sel) != 0 {
		t.Fatalf("no self row, nothing qualifies; got %d", len(sel))
	}
}
