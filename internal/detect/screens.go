package detect

import (
	"fmt"

	"github.com/flowscan-io/flowscan/internal/findings"
	"github.com/flowscan-io/flowscan/internal/flow"
	"github.com/flowscan-io/flowscan/internal/graph"
)

// WritesBetweenScreens reports writes committed between two screen elements.
// A user stepping back to an earlier screen re-runs the stretch in between,
// so a write there can be committed twice. Writes are only reported once the
// chain provably reaches a second screen: a chain that dangles, cycles, or
// ends after the final screen has nothing to navigate back from.
func WritesBetweenScreens(g *graph.Graph) []findings.Finding {
	var out []findings.Finding
	seen := make(map[string]struct{})

	for _, name := range g.Names() {
		screen := g.Element(name)
		if screen.Kind != flow.KindScreen {
			continue
		}

		// Follow the default-connector chain, buffering writes until the
		// next screen confirms them.
		visited := map[string]struct{}{screen.Name: {}}
		var pending []string
		for current := firstDefaultTarget(screen); current != ""; {
			if _, ok := visited[current]; ok {
				pending = nil
				break
			}
			visited[current] = struct{}{}

			el := g.Element(current)
			if el == nil {
				pending = nil
				break
			}
			if el.Kind == flow.KindScreen {
				break
			}
			if el.Kind == flow.KindWrite {
				pending = append(pending, el.Name)
			}
			if current = firstDefaultTarget(el); current == "" {
				pending = nil
			}
		}

		for _, writeName := range pending {
			if _, dup := seen[writeName]; dup {
				continue
			}
			seen[writeName] = struct{}{}
			out = append(out, findings.Finding{
				Category: findings.WriteBetweenScreens,
				Severity: findings.SeverityMedium,
				Element:  writeName,
				Detail:   fmt.Sprintf("write %q runs between screens; navigating back re-commits it", writeName),
			})
		}
	}
	return out
}

func firstDefaultTarget(e *flow.Element) string {
	for _, edge := range e.Outgoing {
		if edge.Kind == flow.EdgeDefault || edge.Kind == "" {
			return edge.Target
		}
	}
	return ""
}
