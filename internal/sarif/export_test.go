package sarif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowscan-io/flowscan/internal/findings"
)

func TestNewReportRunPerDocument(t *testing.T) {
	docs := []DocumentFindings{
		{Document: "Order_Followup", Findings: []findings.Finding{
			{Category: findings.WriteInLoop, Severity: findings.SeverityCritical, Element: "Loop_Items", Detail: "write in loop"},
			{Category: findings.UnusedIdentifier, Severity: findings.SeverityLow, Element: "varTotal", Detail: "unused"},
		}},
		{Document: "Case_Cleanup", Findings: nil},
	}

	report, err := NewReport("run-123", docs)
	require.NoError(t, err)
	require.Len(t, report.Runs, 2)

	first := report.Runs[0]
	assert.Equal(t, "flowscan", first.Tool.Driver.Name)
	require.NotNil(t, first.AutomationDetails)
	assert.Equal(t, "run-123/Order_Followup", *first.AutomationDetails.ID)
	assert.Len(t, first.Results, 2)
	assert.Len(t, first.Tool.Driver.Rules, 2)

	second := report.Runs[1]
	require.NotNil(t, second.AutomationDetails)
	assert.Equal(t, "run-123/Case_Cleanup", *second.AutomationDetails.ID)
	assert.Empty(t, second.Results)
}

func TestNewReportRuleDeclaredOnce(t *testing.T) {
	docs := []DocumentFindings{
		{Document: "d", Findings: []findings.Finding{
			{Category: findings.MissingFaultPath, Severity: findings.SeverityMedium, Element: "A", Detail: "a"},
			{Category: findings.MissingFaultPath, Severity: findings.SeverityMedium, Element: "B", Detail: "b"},
		}},
	}

	report, err := NewReport("r", docs)
	require.NoError(t, err)
	require.Len(t, report.Runs, 1)
	assert.Len(t, report.Runs[0].Tool.Driver.Rules, 1)
	assert.Len(t, report.Runs[0].Results, 2)
}

func TestNewReportLogicalLocation(t *testing.T) {
	docs := []DocumentFindings{
		{Document: "d", Findings: []findings.Finding{
			{Category: findings.OrphanedElement, Severity: findings.SeverityMedium, Element: "Stray", Detail: "orphan"},
			{Category: findings.UnguardedRecursiveUpdate, Severity: findings.SeverityCritical, Detail: "document-level"},
		}},
	}

	report, err := NewReport("r", docs)
	require.NoError(t, err)

	results := report.Runs[0].Results
	require.Len(t, results, 2)

	require.Len(t, results[0].Locations, 1)
	require.Len(t, results[0].Locations[0].LogicalLocations, 1)
	assert.Equal(t, "Stray", *results[0].Locations[0].LogicalLocations[0].Name)

	// A document-level finding has no element and therefore no location.
	assert.Empty(t, results[1].Locations)
}

func TestSeverityLevel(t *testing.T) {
	cases := map[findings.Severity]string{
		findings.SeverityCritical: "error",
		findings.SeverityHigh:     "error",
		findings.SeverityMedium:   "warning",
		findings.SeverityLow:      "note",
	}
	for severity, want := range cases {
		assert.Equal(t, want, severityLevel(severity), "severity %s", severity)
	}
}
