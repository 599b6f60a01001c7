// core/genetable/record.go
package genetable

import (
	"errors"
	"strconv"
	"strings"
)

// Skip errors returned by ParseLine. Rows failing these checks are
// skipped by the scanner, never fatal.
var (
	ErrShortRow = errors.New("fewer than 12 fields")
	ErrBadCoord = errors.New("non-integer coordinate field")
)

// GeneRecord is one parsed row of a genomic-neighborhood context table.
// Start/Stop form a closed interval with Start <= Stop after parsing.
type GeneRecord struct {
	QueryFull    string // verbatim column 1, the block grouping key
	QueryID      string // column 1 before the '|' species separator
	QuerySpecies string // column 1 after the separator, "" if absent
	Strand       string // "+" or "-"
	Start        int
	Stop         int
	ProteinID    string // neighbor protein id, equals QueryID for the self row
	Contig       string
	Assembly     string
}

// ParseLine parses one whitespace-delimited row into a GeneRecord.
// Column layout (1-based): 1 query key, 4 strand, 8 start, 9 stop,
// 10 neighbor/self protein id, 11 contig, 12 assembly. Extra columns
// are ignored. Blank or short rows return ErrShortRow; rows whose
// coordinate columns are not integers return ErrBadCoord.
func ParseLine(line string) (GeneRecord, error) {
	f := strings.Fields(line)
	if len(f) < 12 {
		return GeneRecord{}, ErrShortRow
	}
	start, err := strconv.Atoi(f[7])
	if err != nil {
		return GeneRecord{}, ErrBadCoord
	}
	stop, err := strconv.Atoi(f[8])
	if err != nil {
		return GeneRecord{}, ErrBadCoord
	}
	if start > stop {
		start, stop = stop, start
	}
	id, species, _ := strings.Cut(f[0], "|")
	return GeneRecord{
		QueryFull:    f[0],
		QueryID:      id,
		QuerySpecies: species,
		Strand:       f[3],
		Start:        start,
		Stop:         stop,
		ProteinID:    f[9],
		Contig:       f[10],
		Assembly:     f[11],
	}, nil
}
