package detect

import (
	"fmt"

	"github.com/flowscan-io/flowscan/internal/findings"
	"github.com/flowscan-io/flowscan/internal/flow"
	"github.com/flowscan-io/flowscan/internal/graph"
)

// UnusedIdentifiers reports declared identifiers that no element references.
// Iteration follows declaration order so repeated runs emit identical output.
func UnusedIdentifiers(doc *flow.Document, g *graph.Graph) []findings.Finding {
	referenced := graph.ReferencedIdentifiers(g)

	var out []findings.Finding
	for _, name := range doc.Declared {
		if _, used := referenced[name]; used {
			continue
		}
		out = append(out, findings.Finding{
			Category: findings.UnusedIdentifier,
			Severity: findings.SeverityLow,
			Element:  name,
			Detail:   fmt.Sprintf("identifier %q is declared but never referenced", name),
		})
	}
	return out
}

// Orphans reports elements that no connector, loop target or the start
// target points to. An element nothing points to can never execute.
func Orphans(g *graph.Graph) []findings.Finding {
	var out []findings.Finding
	for _, name := range g.Names() {
		if name == g.Start || g.HasIncoming(name) {
			continue
		}
		out = append(out, findings.Finding{
			Category: findings.OrphanedElement,
			Severity: findings.SeverityMedium,
			Element:  name,
			Detail:   fmt.Sprintf("element %q has no incoming connector and can never execute", name),
		})
	}
	return out
}
