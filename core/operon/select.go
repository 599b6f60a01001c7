// core/operon/select.go
package operon

// SelectQuery returns, in cluster order, the clusters that contain the
// query's self row (a member whose protein id equals queryID) together
// with at least one other protein. A cluster where the query sits
// alone is not an operon association and is dropped. More than one
// cluster can qualify when self rows occur on distinct contigs within
// one block; all are returned.
func SelectQuery(clusters []Cluster, queryID string) []Cluster {
	var out []Cluster
	for _, c := range clusters {
		if !c.ContainsProtein(queryID) {
			continue
		}
		hasOther := false
		for _, m := range c.Members {
			if m.ProteinID != queryID {
				hasOther = true
				break
			}
		}
		if hasOther {
			out = append(out, c)
		}
	}
	return out
}
