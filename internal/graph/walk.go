package graph

import "github.com/flowscan-io/flowscan/internal/flow"

// Reaches walks the control-flow graph depth-first from start and reports
// whether an element matching the predicate is reachable before the walk
// returns to the originating loop or escapes to the loop's exit target.
//
// Sentinels terminate a path without matching:
//   - sentinelLoop is the loop the walk originated from; arriving back at it
//     is the expected repeat-iteration loop-back, not a hit.
//   - sentinelExit is the loop's declared exit entry; anything past it is
//     outside the loop regardless of content. An empty sentinelExit means
//     the loop declared no exit connector.
//
// Fault edges are never followed. A target that resolves to no element is a
// dead end, not an error.
//
// Each sibling branch recurses with its own copy of the visited set. Sharing
// one set across diverging decision branches would let the first branch mask
// cycles on the second and produce false negatives; the per-branch clone is
// a correctness invariant, not an optimization.
func Reaches(g *Graph, start, sentinelLoop, sentinelExit string, match func(*flow.Element) bool, visited map[string]struct{}) bool {
	if _, seen := visited[start]; seen {
		return false
	}
	if start == sentinelLoop {
		return false
	}
	if sentinelExit != "" && start == sentinelExit {
		return false
	}

	visited[start] = struct{}{}

	el := g.Element(start)
	if el == nil {
		return false
	}
	if match(el) {
		return true
	}

	for _, next := range el.Successors() {
		if Reaches(g, next, sentinelLoop, sentinelExit, match, cloneSet(visited)) {
			return true
		}
	}
	return false
}

func cloneSet(s map[string]struct{}) map[string]struct{} {
	c := make(map[string]struct{}, len(s))
	for k := range s {
		c[k] = struct{}{}
	}
	return c
}
