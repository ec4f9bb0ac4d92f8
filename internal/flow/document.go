package flow

// TriggerType describes what starts a workflow's execution.
type TriggerType string

const (
	TriggerNone         TriggerType = ""
	TriggerAfterSave    TriggerType = "recordAfterSave"
	TriggerBeforeSave   TriggerType = "recordBeforeSave"
	TriggerBeforeDelete TriggerType = "recordBeforeDelete"
	TriggerScheduled    TriggerType = "scheduled"
)

// Document is one fully parsed workflow definition, as handed over by an
// external parser. The analysis engine never reads the platform's own
// serialization format; it only consumes this model.
type Document struct {
	Name  string `json:"name"`
	Start string `json:"start"`

	// Trigger metadata, used by the recursive-update detector.
	TriggerType    TriggerType `json:"trigger_type,omitempty"`
	TriggerObject  string      `json:"trigger_object,omitempty"`
	HasEntryFilter bool        `json:"has_entry_filter,omitempty"`

	// Declared identifiers (variables, constants, formulas), independent of
	// the graph. Declaration order is preserved so findings are stable.
	Declared []string `json:"declared,omitempty"`

	Elements []Element `json:"elements"`
}
