package detect

import (
	"testing"

	"github.com/flowscan-io/flowscan/internal/findings"
	"github.com/flowscan-io/flowscan/internal/flow"
	"github.com/flowscan-io/flowscan/internal/graph"
)

func TestUnusedIdentifiersSetAlgebra(t *testing.T) {
	doc := &flow.Document{
		Name:     "t",
		Start:    "First",
		Declared: []string{"A", "B", "C"},
		Elements: []flow.Element{
			{Name: "First", Kind: flow.KindAssignment, ReferencedIDs: []string{"A"}},
		},
	}
	got := UnusedIdentifiers(doc, graph.Build(doc))

	if len(got) != 2 {
		t.Fatalf("expected findings for B and C, got %+v", got)
	}
	if got[0].Element != "B" || got[1].Element != "C" {
		t.Fatalf("expected declaration order B, C; got %q, %q", got[0].Element, got[1].Element)
	}
	for _, f := range got {
		if f.Category != findings.UnusedIdentifier || f.Severity != findings.SeverityLow {
			t.Fatalf("unexpected finding: %+v", f)
		}
	}
}

func TestUnusedIdentifiersDottedReference(t *testing.T) {
	doc := &flow.Document{
		Name:     "t",
		Start:    "First",
		Declared: []string{"colAccounts"},
		Elements: []flow.Element{
			{Name: "First", Kind: flow.KindAssignment, ReferencedIDs: []string{"colAccounts.Name"}},
		},
	}
	if got := UnusedIdentifiers(doc, graph.Build(doc)); len(got) != 0 {
		t.Fatalf("a dotted field reference still uses the identifier, got %+v", got)
	}
}

func TestOrphansSymmetricDifference(t *testing.T) {
	doc := &flow.Document{
		Name:  "t",
		Start: "First",
		Elements: []flow.Element{
			{Name: "First", Kind: flow.KindAssignment},
		},
	}
	if got := Orphans(graph.Build(doc)); len(got) != 0 {
		t.Fatalf("the start element is never an orphan, got %+v", got)
	}

	// Adding an element nothing points to adds exactly one finding.
	doc.Elements = append(doc.Elements, flow.Element{Name: "Stray", Kind: flow.KindScreen})
	got := Orphans(graph.Build(doc))
	if len(got) != 1 || got[0].Element != "Stray" || got[0].Severity != findings.SeverityMedium {
		t.Fatalf("expected one medium finding for Stray, got %+v", got)
	}

	// Connecting it from a reachable element removes the finding.
	doc.Elements[0].Outgoing = []flow.Edge{edge("Stray")}
	if got := Orphans(graph.Build(doc)); len(got) != 0 {
		t.Fatalf("expected no orphans once connected, got %+v", got)
	}
}
