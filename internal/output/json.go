// internal/output/json.go
package output

import (
	"fmt"
	"io"

	"opfind/internal/jsonutil"
	"opfind/internal/report"
	"opfind/pkg/api"
)

// ToAPIOperon converts a report to the stable wire schema (v1).
func ToAPIOperon(r report.Report) api.OperonV1 {
	ids := make([]string, len(r.Members))
	coords := make([]string, len(r.Members))
	for i, m := range r.Members {
		ids[i] = m.ProteinID
		coords[i] = fmt.Sprintf("%s:%d-%d", m.ProteinID, m.Start, m.Stop)
	}
	return api.OperonV1{
		QueryFull:     r.QueryFull,
		QueryID:       r.QueryID,
		QuerySpecies:  r.QuerySpecies,
		Assembly:      r.Assembly,
		Contig:        r.Contig,
		OperonStart:   r.Start,
		OperonEnd:     r.End,
		OperonSize:    r.Size(),
		MemberIDs:     ids,
		MemberCoords:  coords,
		QueryInOperon: MarkerInOperon,
	}
}

// WriteJSON writes a single JSON array of v1 operons (pretty-indented).
func WriteJSON(w io.Writer, list []report.Report) error {
	out := make([]api.OperonV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIOperon(r))
	}
	return jsonutil.EncodePretty(w, out)
}
