// internal/report/report.go

// Package report turns selected operon clusters into output records.
package report

import (
	"fmt"
	"strings"

	"opfind-core/genetable"
	"opfind-core/operon"
)

// Member is one gene of a reported operon, in cluster order.
type Member struct {
	ProteinID string
	Start     int
	Stop      int
}

// Report is one output record: a qualifying operon for one query.
type Report struct {
	QueryFull    string
	QueryID      string
	QuerySpecies string
	Assembly     string
	Contig       string
	Start        int
	End          int
	Members      []Member
}

// FromCluster builds a Report for a qualifying cluster. Query identity
// and assembly come from the block's first row: assembly is assumed
// constant within a block and is not re-derived per member.
func FromCluster(c operon.Cluster, first genetable.GeneRecord) Report {
	members := make([]Member, len(c.Members))
	for i, m := range c.Members {
		members[i] = Member{ProteinID: m.ProteinID, Start: m.Start, Stop: m.Stop}
	}
	return Report{
		QueryFull:    first.QueryFull,
		QueryID:      first.QueryID,
		QuerySpecies: first.QuerySpecies,
		Assembly:     first.Assembly,
		Contig:       c.Contig(),
		Start:        c.Start(),
		End:          c.End(),
		Members:      members,
	}
}

func (r Report) Size() int { return len(r.Members) }

// MemberIDs is the comma-joined protein ids in cluster order.
func (r Report) MemberIDs() string {
	ids := make([]string, len(r.Members))
	for i, m := range r.Members {
		ids[i] = m.ProteinID
	}
	return strings.Join(ids, ",")
}

// MemberCoords is the comma-joined id:start-stop list in cluster order.
func (r Report) MemberCoords() string {
	cs := make([]string, len(r.Members))
	for i, m := range r.Members {
		cs[i] = fmt.Sprintf("%s:%d-%d", m.ProteinID, m.Start, m.Stop)
	}
	return strings.Join(cs, ",")
}
