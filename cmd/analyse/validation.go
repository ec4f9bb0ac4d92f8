package analyse

import (
	"fmt"
	"strings"

	"github.com/flowscan-io/flowscan/internal/findings"
	"github.com/flowscan-io/flowscan/pkg/shared/files"
)

// validateAnalyseArgs validates the arguments provided to the analyse command.
func validateAnalyseArgs(opts *RunOptionsAnalyse, args []string) error {
	if len(args) == 0 && opts.InputFile == "" {
		return fmt.Errorf("either 'input-file' flag or at least one document path must be specified")
	}

	if len(args) > 0 && opts.InputFile != "" {
		return fmt.Errorf("you cannot use an 'input-file' flag and document paths at the same time")
	}

	for _, path := range args {
		expanded, err := files.ExpandPath(path)
		if err != nil {
			return fmt.Errorf("failed to expand path %q: %w", path, err)
		}
		if err := files.ValidatePath(expanded); err != nil {
			return fmt.Errorf("the document path is not readable: %w", err)
		}
	}

	if opts.Threads < 0 {
		return fmt.Errorf("the 'threads' flag must be a positive integer")
	}

	switch opts.ReportFormat {
	case "", "json", "sarif":
	default:
		return fmt.Errorf("unsupported report format: %q", opts.ReportFormat)
	}

	if opts.SeverityGate != "" && !findings.Severity(strings.ToLower(opts.SeverityGate)).Valid() {
		return fmt.Errorf("unsupported severity gate: %q", opts.SeverityGate)
	}

	return nil
}
