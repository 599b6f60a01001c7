// pkg/api/operons_v1.go
package api

// OperonV1 is the stable JSON schema for reported operons.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type OperonV1 struct {
	QueryFull     string   `json:"query_full"`
	QueryID       string   `json:"query_id"`
	QuerySpecies  string   `json:"query_species,omitempty"`
	Assembly      string   `json:"assembly"`
	Contig        string   `json:"contig"`
	OperonStart   int      `json:"operon_start"`
	OperonEnd     int      `json:"operon_end"`
	OperonSize    int      `json:"operon_size"`
	MemberIDs     []string `json:"members_protein_ids"`
	MemberCoords  []string `json:"members_coords"`
	QueryInOperon string   `json:"query_in_operon"` // always "YES"
}
