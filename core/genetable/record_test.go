// core/genetable/record_test.go
package genetable

import "testing"

const goodRow = "WP_001.1#1|Pseudomonas_aeruginosa x x + x x x 100 200 WP_002.1#1 NZ_CONTIG1 GCF_000001"

func TestParseLineGoodRow(t *testing.T) {
	r, err := ParseLine(goodRow)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if r.QueryFull != "WP_001.1#1|Pseudomonas_aeruginosa" {
		t.Errorf("query_full = %q", r.QueryFull)
	}
	if r.QueryID != "WP_001.1#1" || r.QuerySpecies != "Pseudomonas_aeruginosa" {
		t.Errorf("query split = %q / %q", r.QueryID, r.QuerySpecies)
	}
	if r.Strand != "+" || r.Start != 100 || r.Stop != 200 {
		t.Errorf("strand/coords = %q %d %d", r.Strand, r.Start, r.Stop)
	}
	if r.ProteinID != "WP_002.1#1" || r.Contig != "NZ_CONTIG1" || r.Assembly != "GCF_000001" {
		t.Errorf("ids = %q %q %q", r.ProteinID, r.Contig, r.Assembly)
	}
}

func TestParseLineNoSpeciesSeparator(t *testing.T) {
	r, err := ParseLine("Q1#1 x x - x x x 5 1 P1 C1 A1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if r.QueryID != "Q1#1" || r.QuerySpecies != "" {
		t.Errorf("want empty species, got %q / %q", r.QueryID, r.QuerySpecies)
	}
}

func TestParseLineSwapsReversedCoords(t *testing.T) {
	r, err := ParseLine("Q1|S x x - x x x 900 250 P1 C1 A1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if r.Start != 250 || r.Stop != 900 {
		t.Errorf("want normalized 250..900, got %d..%d", r.Start, r.Stop)
	}
}

func TestParseLineShortRow(t *testing.T) {
	for _, line := range []string{"", "   ", "a b c", "a b c d e f g 1 2 h i"} {
		if _, err := ParseLine(line); err != ErrShortRow {
			t.Errorf("ParseLine(%q) err = %v, want ErrShortRow", line, err)
		}
	}
}

func TestParseLineBadCoord(t *testing.T) {
	if _, err := ParseLine("Q1|S x x + x x x abc 200 P1 C1 A1"); err != ErrBadCoord {
		t.Fatalf("err = %v, want ErrBadCoord", err)
	}
	if _, err := ParseLine("Q1|S x x + x x x 100 def P1 C1 A1"); err != ErrBadCoord {
		t.Fatalf("err = %v, want ErrBadCoord", err)
	}
}

func TestParseLineExtraFieldsIgnored(t *testing.T) {
	r, err := ParseLine(goodRow + " extra1 extra2")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if r.Assembly != "GCF_000001" {
		t.Errorf("assembly = %q", r.Assembly)
	}
}
