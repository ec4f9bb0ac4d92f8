package detect

import (
	"fmt"

	"github.com/flowscan-io/flowscan/internal/findings"
	"github.com/flowscan-io/flowscan/internal/flow"
	"github.com/flowscan-io/flowscan/internal/graph"
)

// WritesInLoop flags loops whose repeat path reaches a data write. Governor
// limits scale with the size of the triggering record set, not with the
// configured loop, so a write on the repeat path fails in bulk.
func WritesInLoop(g *graph.Graph) []findings.Finding {
	return operationInLoop(g,
		func(e *flow.Element) bool { return e.Kind == flow.KindWrite },
		findings.WriteInLoop,
		findings.SeverityCritical,
		"a data write",
	)
}

// QueriesInLoop flags loops whose repeat path reaches a data query.
func QueriesInLoop(g *graph.Graph) []findings.Finding {
	return operationInLoop(g,
		func(e *flow.Element) bool { return e.Kind == flow.KindQuery },
		findings.QueryInLoop,
		findings.SeverityCritical,
		"a data query",
	)
}

// ExternalCallsInLoop flags loops whose repeat path reaches an external call.
// Callout limits are tighter than data limits but the failure mode is the
// same, so this ranks high rather than critical.
func ExternalCallsInLoop(g *graph.Graph) []findings.Finding {
	return operationInLoop(g,
		func(e *flow.Element) bool { return e.Kind == flow.KindExternalCall },
		findings.ExternalCallInLoop,
		findings.SeverityHigh,
		"an external call",
	)
}

// operationInLoop is the shared policy for the three loop detectors: one
// reachability query per loop, one finding per offending loop. The loop is
// the unit of remediation, so several matching operations inside the same
// loop still yield a single finding.
func operationInLoop(g *graph.Graph, match func(*flow.Element) bool, category findings.Category, severity findings.Severity, noun string) []findings.Finding {
	var out []findings.Finding
	for _, loop := range g.Loops() {
		paths := graph.ClassifyLoop(loop)
		if paths.BodyEntry == "" {
			// Malformed loop; structural validity is not this check's concern.
			continue
		}
		visited := make(map[string]struct{})
		if graph.Reaches(g, paths.BodyEntry, loop.Name, paths.ExitEntry, match, visited) {
			out = append(out, findings.Finding{
				Category: category,
				Severity: severity,
				Element:  loop.Name,
				Detail:   fmt.Sprintf("loop %q reaches %s on its repeat path; perform the operation once after the loop instead", loop.Name, noun),
			})
		}
	}
	return out
}
