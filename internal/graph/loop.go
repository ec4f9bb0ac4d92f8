package graph

import "github.com/flowscan-io/flowscan/internal/flow"

// LoopPaths separates the two connectors of a loop element. BodyEntry is the
// element entered on each repeat iteration; ExitEntry is entered once when
// the iteration source is exhausted. Every loop-aware detector depends on
// keeping these apart: an operation on the exit path is outside the loop by
// construction, no matter what it does.
type LoopPaths struct {
	BodyEntry string
	ExitEntry string
}

// ClassifyLoop extracts the repeat-body and exit entry points of a loop.
// Either may be empty for a malformed loop; callers skip analysis when the
// body entry is missing.
func ClassifyLoop(loop *flow.Element) LoopPaths {
	return LoopPaths{
		BodyEntry: loop.LoopBodyTarget,
		ExitEntry: loop.LoopExitTarget,
	}
}
