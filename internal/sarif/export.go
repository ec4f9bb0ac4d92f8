// Package sarif converts findings into SARIF, the interchange format
// downstream tooling (code hosts, issue trackers) already understands.
// Rendering for humans stays out of scope; this is machine output only.
package sarif

import (
	"fmt"
	"os"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/flowscan-io/flowscan/internal/findings"
)

const (
	toolName       = "flowscan"
	informationURI = "https://github.com/flowscan-io/flowscan"
)

// DocumentFindings pairs a document name with the findings produced for it.
type DocumentFindings struct {
	Document string
	Findings []findings.Finding
}

var ruleDescriptions = map[findings.Category]string{
	findings.WriteInLoop:              "A data write is reachable on a loop's repeat path.",
	findings.QueryInLoop:              "A data query is reachable on a loop's repeat path.",
	findings.ExternalCallInLoop:       "An external call is reachable on a loop's repeat path.",
	findings.UnguardedRecursiveUpdate: "An after-save document writes its own trigger object without entry conditions.",
	findings.UnusedIdentifier:         "An identifier is declared but never referenced.",
	findings.OrphanedElement:          "No connector points at this element, so it can never execute.",
	findings.WriteBetweenScreens:      "A write runs between two screens and can be re-committed on back navigation.",
	findings.MissingFaultPath:         "A write declares no fault connector.",
	findings.CopyName:                 "An element keeps the editor's copied-element name.",
	findings.HardcodedID:              "A literal embeds an environment-specific record ID.",
	findings.HardcodedURL:             "A literal embeds a URL that should live in configuration.",
}

// NewReport builds a SARIF report with one run per analysed document. The
// runID ties all runs of one batch together through automationDetails.
func NewReport(runID string, docs []DocumentFindings) (*sarif.Report, error) {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("create sarif report: %w", err)
	}

	for _, doc := range docs {
		run := sarif.NewRunWithInformationURI(toolName, informationURI)

		automationID := fmt.Sprintf("%s/%s", runID, doc.Document)
		run.AutomationDetails = &sarif.RunAutomationDetails{ID: &automationID}

		declared := make(map[findings.Category]struct{})
		for _, f := range doc.Findings {
			if _, ok := declared[f.Category]; !ok {
				declared[f.Category] = struct{}{}
				rule := run.AddRule(string(f.Category))
				rule.ShortDescription = sarif.NewMultiformatMessageString(ruleDescriptions[f.Category])
			}

			result := run.CreateResultForRule(string(f.Category)).
				WithLevel(severityLevel(f.Severity)).
				WithMessage(sarif.NewTextMessage(f.Detail))

			if f.Element != "" {
				element := f.Element
				result.Locations = append(result.Locations, &sarif.Location{
					LogicalLocations: []*sarif.LogicalLocation{{Name: &element}},
				})
			}
		}

		report.AddRun(run)
	}

	return report, nil
}

// WriteFile serializes the report to path.
func WriteFile(report *sarif.Report, path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("create sarif file: %w", err)
	}
	defer file.Close()

	if err := report.PrettyWrite(file); err != nil {
		return fmt.Errorf("write sarif file: %w", err)
	}
	return nil
}

// severityLevel maps finding severities onto SARIF result levels.
func severityLevel(s findings.Severity) string {
	switch s {
	case findings.SeverityCritical, findings.SeverityHigh:
		return "error"
	case findings.SeverityMedium:
		return "warning"
	default:
		return "note"
	}
}
