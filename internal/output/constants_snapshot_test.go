package output

import "testing"

func TestTSVHeader_Stable(t *testing.T) {
	const want = "query_full\tquery_id\tquery_species\tassembly\tcontig\toperon_start\toperon_end\toperon_size\tmembers_protein_ids\tmembers_coords\tquery_in_operon"
	if TSVHeader != want {
		t.Fatalf("TSVHeader changed:\n got:  %q\n want: %q", TSVHeader, want)
	}
}

func TestMarker_Stable(t *testing.T) {
	if MarkerInOperon != "YES" {
		t.Fatalf("MarkerInOperon changed: %q", MarkerInOperon)
	}
}
