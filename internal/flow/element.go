package flow

// Kind identifies the type of a workflow element. The set is closed: every
// switch over Kind in the analysis engine enumerates all of these values, so
// adding a kind is a compile-visible change rather than a silent miss.
type Kind string

const (
	KindAssignment   Kind = "assignment"
	KindDecision     Kind = "decision"
	KindWrite        Kind = "write"
	KindQuery        Kind = "query"
	KindLoop         Kind = "loop"
	KindExternalCall Kind = "externalCall"
	KindScreen       Kind = "screen"
	KindSubflow      Kind = "subflow"
	KindWait         Kind = "wait"
	KindTransform    Kind = "transform"
)

// WriteKind narrows a KindWrite element to the mutation it performs.
type WriteKind string

const (
	WriteCreate WriteKind = "create"
	WriteUpdate WriteKind = "update"
	WriteDelete WriteKind = "delete"
)

// EdgeKind discriminates the outgoing connectors of an element.
// Fault edges are never followed by the reachability walker: a write that is
// only reachable through an error-handling branch is not a bulk-safety issue.
type EdgeKind string

const (
	EdgeDefault EdgeKind = "default"
	EdgeRule    EdgeKind = "rule"
	EdgeFault   EdgeKind = "fault"
)

// Edge is a directed control-flow successor, referenced by element name
// rather than by pointer so that the graph mirrors the serialized document.
type Edge struct {
	Target string   `json:"target"`
	Kind   EdgeKind `json:"kind,omitempty"`
	Rule   int      `json:"rule,omitempty"` // rule index when Kind == EdgeRule
}

// Element is one node of the workflow graph.
//
// LoopBodyTarget and LoopExitTarget are only meaningful for KindLoop: the
// former is entered on every repeat iteration, the latter exactly once when
// iteration is exhausted. Conflating the two was the historical defect this
// engine exists to avoid, so they are kept as distinct named fields instead
// of ordinary edges.
type Element struct {
	Name  string `json:"name"`
	Kind  Kind   `json:"kind"`
	Write WriteKind `json:"write,omitempty"` // set when Kind == KindWrite

	// TargetObject is the persistent object a write or query operates on.
	TargetObject string `json:"target_object,omitempty"`
	// InputReference is the record variable a write takes as input,
	// e.g. the triggering-record reference in an after-save workflow.
	InputReference string `json:"input_reference,omitempty"`

	Outgoing []Edge `json:"outgoing,omitempty"`

	LoopBodyTarget string `json:"loop_body_target,omitempty"`
	LoopExitTarget string `json:"loop_exit_target,omitempty"`

	// ReferencedIDs lists identifiers this element's configuration mentions
	// (variable reads, formula references), independent of control flow.
	ReferencedIDs []string `json:"referenced_ids,omitempty"`
	// Literals are the raw literal values in the element's configuration,
	// scanned by the hardcoded-ID and hardcoded-URL checks.
	Literals []string `json:"literals,omitempty"`
}

// IsWrite reports whether the element mutates persistent storage.
func (e *Element) IsWrite() bool {
	return e.Kind == KindWrite
}

// Successors returns the non-fault outgoing targets in declaration order.
func (e *Element) Successors() []string {
	targets := make([]string, 0, len(e.Outgoing))
	for _, edge := range e.Outgoing {
		if edge.Kind == EdgeFault {
			continue
		}
		targets = append(targets, edge.Target)
	}
	return targets
}

// HasFaultEdge reports whether the element declares a fault connector.
func (e *Element) HasFaultEdge() bool {
	for _, edge := range e.Outgoing {
		if edge.Kind == EdgeFault {
			return true
		}
	}
	return false
}
