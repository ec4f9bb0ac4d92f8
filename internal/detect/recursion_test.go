package detect

import (
	"testing"

	"github.com/flowscan-io/flowscan/internal/findings"
	"github.com/flowscan-io/flowscan/internal/flow"
)

func recursiveDoc(triggerType flow.TriggerType, hasFilter bool, write flow.Element) *flow.Document {
	return &flow.Document{
		Name:           "t",
		Start:          write.Name,
		TriggerType:    triggerType,
		TriggerObject:  "Case",
		HasEntryFilter: hasFilter,
		Elements:       []flow.Element{write},
	}
}

func TestRecursiveUpdateUnguarded(t *testing.T) {
	doc := recursiveDoc(flow.TriggerAfterSave, false, flow.Element{
		Name: "Update_Case", Kind: flow.KindWrite, Write: flow.WriteUpdate, TargetObject: "Case",
	})
	got := RecursiveUpdate(doc)

	if len(got) != 1 {
		t.Fatalf("expected one finding, got %d", len(got))
	}
	if got[0].Category != findings.UnguardedRecursiveUpdate || got[0].Severity != findings.SeverityCritical {
		t.Fatalf("unexpected finding: %+v", got[0])
	}
	if got[0].Element != "" {
		t.Fatalf("recursive update is a document-level finding, got element %q", got[0].Element)
	}
}

func TestRecursiveUpdateGuardedByEntryFilter(t *testing.T) {
	// Any entry filter rules the risk out; whether it actually excludes the
	// write's effect is deliberately not checked.
	doc := recursiveDoc(flow.TriggerAfterSave, true, flow.Element{
		Name: "Update_Case", Kind: flow.KindWrite, Write: flow.WriteUpdate, TargetObject: "Case",
	})
	if got := RecursiveUpdate(doc); len(got) != 0 {
		t.Fatalf("expected no findings with an entry filter, got %+v", got)
	}
}

func TestRecursiveUpdateTriggeringRecordReference(t *testing.T) {
	doc := recursiveDoc(flow.TriggerAfterSave, false, flow.Element{
		Name: "Update_Trigger_Record", Kind: flow.KindWrite, Write: flow.WriteUpdate,
		TargetObject: "Contact", InputReference: TriggeringRecordRef,
	})
	if got := RecursiveUpdate(doc); len(got) != 1 {
		t.Fatalf("writing the triggering record is recursive regardless of object, got %+v", got)
	}
}

func TestRecursiveUpdateOnlyAfterSave(t *testing.T) {
	for _, trigger := range []flow.TriggerType{flow.TriggerNone, flow.TriggerBeforeSave, flow.TriggerScheduled} {
		doc := recursiveDoc(trigger, false, flow.Element{
			Name: "Update_Case", Kind: flow.KindWrite, Write: flow.WriteUpdate, TargetObject: "Case",
		})
		if got := RecursiveUpdate(doc); len(got) != 0 {
			t.Fatalf("trigger %q cannot re-fire itself, got %+v", trigger, got)
		}
	}
}

func TestRecursiveUpdateOtherObjectIgnored(t *testing.T) {
	doc := recursiveDoc(flow.TriggerAfterSave, false, flow.Element{
		Name: "Update_Account", Kind: flow.KindWrite, Write: flow.WriteUpdate, TargetObject: "Account",
	})
	if got := RecursiveUpdate(doc); len(got) != 0 {
		t.Fatalf("a write to another object is not recursive, got %+v", got)
	}
}
