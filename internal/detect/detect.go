// Package detect holds the anti-pattern checks that run against a workflow
// graph. Every detector is total: given a graph built by graph.Build it
// always returns a (possibly empty) findings slice and never fails. The
// graph is read-only input; detectors share no state and may run against
// the same graph concurrently.
package detect

import (
	"github.com/flowscan-io/flowscan/internal/findings"
	"github.com/flowscan-io/flowscan/internal/flow"
	"github.com/flowscan-io/flowscan/internal/graph"
)

// Options tunes the configurable checks. The zero value enables everything
// with built-in defaults.
type Options struct {
	// AllowedURLPatterns overrides the URL shapes the hardcoded-URL check
	// accepts; nil keeps the defaults.
	AllowedURLPatterns []string
}

// Run builds the graph for a document and runs every detector in a fixed
// order. Findings from repeated runs over the same document are identical.
func Run(doc *flow.Document, opts Options) []findings.Finding {
	g := graph.Build(doc)

	var out []findings.Finding
	out = append(out, WritesInLoop(g)...)
	out = append(out, QueriesInLoop(g)...)
	out = append(out, ExternalCallsInLoop(g)...)
	out = append(out, RecursiveUpdate(doc)...)
	out = append(out, UnusedIdentifiers(doc, g)...)
	out = append(out, Orphans(g)...)
	out = append(out, WritesBetweenScreens(g)...)
	out = append(out, MissingFaultPaths(g)...)
	out = append(out, CopyNames(doc, g)...)
	out = append(out, HardcodedIDs(g)...)
	out = append(out, HardcodedURLs(g, opts.AllowedURLPatterns)...)
	return out
}
