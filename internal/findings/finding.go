package findings

// Category is the stable tag identifying which check produced a finding.
type Category string

const (
	WriteInLoop              Category = "WriteInLoop"
	QueryInLoop              Category = "QueryInLoop"
	ExternalCallInLoop       Category = "ExternalCallInLoop"
	UnguardedRecursiveUpdate Category = "UnguardedRecursiveUpdate"
	UnusedIdentifier         Category = "UnusedIdentifier"
	OrphanedElement          Category = "OrphanedElement"
	WriteBetweenScreens      Category = "WriteBetweenScreens"
	MissingFaultPath         Category = "MissingFaultPath"
	CopyName                 Category = "CopyName"
	HardcodedID              Category = "HardcodedID"
	HardcodedURL             Category = "HardcodedURL"
)

// Severity ranks how urgent a finding is.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var severityRank = map[Severity]int{
	SeverityLow:      0,
	SeverityMedium:   1,
	SeverityHigh:     2,
	SeverityCritical: 3,
}

// AtLeast reports whether s is at or above the given floor.
func (s Severity) AtLeast(floor Severity) bool {
	return severityRank[s] >= severityRank[floor]
}

// Valid reports whether s is one of the known severity values.
func (s Severity) Valid() bool {
	_, ok := severityRank[s]
	return ok
}

// Finding is one reported instance of a detected anti-pattern. Findings are
// produced once per detector invocation and never mutated afterwards; they
// hold no reference to the graph they were derived from.
type Finding struct {
	Category Category `json:"category"`
	Severity Severity `json:"severity"`

	// Element names the offending element; empty for document-level findings.
	Element string `json:"element,omitempty"`

	Detail string `json:"detail"`
}
