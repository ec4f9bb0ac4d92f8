// Package runner analyses batches of workflow documents. Documents are
// independent: every goroutine owns its document, graph and findings
// exclusively, so the batch needs no locking beyond the bounded-worker
// guard.
package runner

import (
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/flowscan-io/flowscan/internal/detect"
	"github.com/flowscan-io/flowscan/internal/document"
	"github.com/flowscan-io/flowscan/internal/findings"
	"github.com/flowscan-io/flowscan/pkg/shared"
	"github.com/flowscan-io/flowscan/pkg/shared/config"
)

// Runner holds the configuration and behavior of a batch analysis.
type Runner struct {
	workers int
	opts    detect.Options
	logger  hclog.Logger
}

// New creates a new Runner instance with the provided configuration.
func New(cfg *config.Config, logger hclog.Logger) *Runner {
	return &Runner{
		workers: cfg.Analyser.Workers,
		opts:    detect.Options{AllowedURLPatterns: cfg.Analyser.AllowedURLPatterns},
		logger:  logger,
	}
}

// DocumentResult is the outcome of analysing one document file.
type DocumentResult struct {
	Path     string             `json:"path"`
	Document string             `json:"document,omitempty"`
	Status   string             `json:"status"`
	Message  string             `json:"message,omitempty"`
	Findings []findings.Finding `json:"findings,omitempty"`
}

// BatchResult aggregates the outcomes of one run over a batch of files.
type BatchResult struct {
	RunID   string           `json:"run_id"`
	Results []DocumentResult `json:"results"`
}

// AnalyseFiles loads and analyses every path with bounded concurrency.
// Results keep the input order regardless of completion order. A file that
// fails to load is reported as FAILED in its slot; it never aborts the batch.
func (r *Runner) AnalyseFiles(paths []string) BatchResult {
	runID := uuid.New().String()
	r.logger.Info("analysis starting", "run_id", runID, "total", len(paths), "goroutines", r.workers)

	results := make([]DocumentResult, len(paths))
	shared.ForEveryStringWithBoundedGoroutines(r.workers, paths, func(i int, path string) {
		results[i] = r.analyseFile(path)
	})

	return BatchResult{RunID: runID, Results: results}
}

func (r *Runner) analyseFile(path string) DocumentResult {
	doc, err := document.Load(path)
	if err != nil {
		r.logger.Error("failed to load document", "path", path, "error", err)
		return DocumentResult{Path: path, Status: "FAILED", Message: err.Error()}
	}

	fs := detect.Run(doc, r.opts)
	r.logger.Debug("document analysed", "document", doc.Name, "findings", len(fs))
	return DocumentResult{
		Path:     path,
		Document: doc.Name,
		Status:   "OK",
		Findings: fs,
	}
}

// CountAtLeast returns how many findings across the batch are at or above
// the given severity.
func (b BatchResult) CountAtLeast(floor findings.Severity) int {
	count := 0
	for _, res := range b.Results {
		for _, f := range res.Findings {
			if f.Severity.AtLeast(floor) {
				count++
			}
		}
	}
	return count
}
