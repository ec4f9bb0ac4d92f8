package detect

import (
	"fmt"

	"github.com/flowscan-io/flowscan/internal/findings"
	"github.com/flowscan-io/flowscan/internal/flow"
	"github.com/flowscan-io/flowscan/internal/graph"
)

// MissingFaultPaths reports write elements that declare no fault connector.
// A failed write with no fault path aborts the whole transaction with an
// unhandled error instead of reaching any recovery logic.
func MissingFaultPaths(g *graph.Graph) []findings.Finding {
	var out []findings.Finding
	for _, name := range g.Names() {
		el := g.Element(name)
		if el.Kind != flow.KindWrite || el.HasFaultEdge() {
			continue
		}
		out = append(out, findings.Finding{
			Category: findings.MissingFaultPath,
			Severity: findings.SeverityMedium,
			Element:  el.Name,
			Detail:   fmt.Sprintf("write %q has no fault path; a failure aborts the transaction unhandled", el.Name),
		})
	}
	return out
}
