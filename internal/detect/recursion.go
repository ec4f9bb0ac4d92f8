package detect

import (
	"fmt"

	"github.com/flowscan-io/flowscan/internal/findings"
	"github.com/flowscan-io/flowscan/internal/flow"
)

// TriggeringRecordRef is the reference a write element uses when it takes the
// record that triggered the document as its input.
const TriggeringRecordRef = "$Record"

// RecursiveUpdate flags an after-save document that writes back to its own
// trigger object, or to the triggering record itself, with no entry filter
// configured. Every such write re-fires the document, so the absence of any
// filter is an unbounded recursion risk at the platform level.
//
// The presence of any entry filter is taken as sufficient to rule the risk
// out, even though a filter does not necessarily exclude the write's effect.
// That heuristic matches the behavior callers already depend on; tightening
// it would change observable results.
func RecursiveUpdate(doc *flow.Document) []findings.Finding {
	if doc.TriggerType != flow.TriggerAfterSave || doc.HasEntryFilter {
		return nil
	}

	for i := range doc.Elements {
		el := &doc.Elements[i]
		if el.Kind != flow.KindWrite {
			continue
		}
		if el.TargetObject == doc.TriggerObject || el.InputReference == TriggeringRecordRef {
			return []findings.Finding{{
				Category: findings.UnguardedRecursiveUpdate,
				Severity: findings.SeverityCritical,
				Detail:   fmt.Sprintf("after-save document updates its own trigger object %q without entry conditions; every run re-triggers itself", doc.TriggerObject),
			}}
		}
	}
	return nil
}
