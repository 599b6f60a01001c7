// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"opfind/internal/report"
)

// FormatRowTSV returns the 11 output columns (no trailing newline).
func FormatRowTSV(r report.Report) string {
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%d\t%d\t%d\t%s\t%s\t%s",
		r.QueryFull, r.QueryID, r.QuerySpecies, r.Assembly, r.Contig,
		r.Start, r.End, r.Size(),
		r.MemberIDs(), r.MemberCoords(), MarkerInOperon,
	)
}

// StreamText writes the TSV header (unless suppressed) and then one
// line per report as they arrive.
func StreamText(w io.Writer, in <-chan report.Report, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}
