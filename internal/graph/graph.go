package graph

import (
	"github.com/flowscan-io/flowscan/internal/flow"
)

// Graph is the indexed, read-only form of a workflow document that every
// detector operates on. It is built once per document and discarded after
// analysis; nothing in the engine mutates it after Build returns.
type Graph struct {
	Start string

	elements map[string]*flow.Element
	order    []string

	// incoming is the union of every edge target, every loop body/exit
	// target and the declared start target. Membership answers "does
	// anything point at this element" in O(1) for the orphan detector.
	incoming map[string]struct{}
}

// Build indexes a document's elements and derives the incoming-target set.
// It never fails: an edge or loop target that does not resolve to a known
// element stays in the graph as a dangling reference, and the walker treats
// it as a dead end rather than an error.
func Build(doc *flow.Document) *Graph {
	g := &Graph{
		Start:    doc.Start,
		elements: make(map[string]*flow.Element, len(doc.Elements)),
		order:    make([]string, 0, len(doc.Elements)),
		incoming: make(map[string]struct{}),
	}

	for i := range doc.Elements {
		el := &doc.Elements[i]
		if _, dup := g.elements[el.Name]; dup {
			// Last declaration wins, matching serialized-document semantics.
			g.elements[el.Name] = el
			continue
		}
		g.elements[el.Name] = el
		g.order = append(g.order, el.Name)
	}

	if doc.Start != "" {
		g.incoming[doc.Start] = struct{}{}
	}
	for i := range doc.Elements {
		el := &doc.Elements[i]
		for _, edge := range el.Outgoing {
			if edge.Target != "" {
				g.incoming[edge.Target] = struct{}{}
			}
		}
		if el.LoopBodyTarget != "" {
			g.incoming[el.LoopBodyTarget] = struct{}{}
		}
		if el.LoopExitTarget != "" {
			g.incoming[el.LoopExitTarget] = struct{}{}
		}
	}

	return g
}

// Element returns the element with the given name, or nil for a dangling
// reference.
func (g *Graph) Element(name string) *flow.Element {
	return g.elements[name]
}

// Names returns element names in declaration order. Detectors iterate this
// instead of the map so that repeated runs produce identical findings.
func (g *Graph) Names() []string {
	return g.order
}

// HasIncoming reports whether any connector, loop target or the start target
// points at the named element.
func (g *Graph) HasIncoming(name string) bool {
	_, ok := g.incoming[name]
	return ok
}

// Loops returns every loop element in declaration order.
func (g *Graph) Loops() []*flow.Element {
	var loops []*flow.Element
	for _, name := range g.order {
		if el := g.elements[name]; el.Kind == flow.KindLoop {
			loops = append(loops, el)
		}
	}
	return loops
}
