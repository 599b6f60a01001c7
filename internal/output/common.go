package output

// Output format selectors.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// MarkerInOperon is the fixed value of the query_in_operon column.
// No "no" rows are ever emitted; absence from the output means the
// query was never found in a qualifying cluster.
const MarkerInOperon = "YES"

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "query_full\tquery_id\tquery_species\tassembly\tcontig\toperon_start\toperon_end\toperon_size\tmembers_protein_ids\tmembers_coords\tquery_in_operon"
