package detect

import (
	"fmt"
	"regexp"

	"github.com/flowscan-io/flowscan/internal/findings"
	"github.com/flowscan-io/flowscan/internal/flow"
	"github.com/flowscan-io/flowscan/internal/graph"
)

var copyNamePattern = regexp.MustCompile(`(?i)^Copy_\d+_of_|^Copy_of_`)

// CopyNames reports elements and declared identifiers that still carry the
// editor's duplicate-element naming, a leftover of copy-pasting on the canvas.
func CopyNames(doc *flow.Document, g *graph.Graph) []findings.Finding {
	var out []findings.Finding
	emit := func(name string) {
		out = append(out, findings.Finding{
			Category: findings.CopyName,
			Severity: findings.SeverityLow,
			Element:  name,
			Detail:   fmt.Sprintf("%q keeps its copied-element name; rename it to describe what it does", name),
		})
	}

	for _, name := range g.Names() {
		if copyNamePattern.MatchString(name) {
			emit(name)
		}
	}
	for _, name := range doc.Declared {
		if copyNamePattern.MatchString(name) {
			emit(name)
		}
	}
	return out
}
