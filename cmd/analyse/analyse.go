package analyse

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowscan-io/flowscan/internal/findings"
	"github.com/flowscan-io/flowscan/internal/runner"
	"github.com/flowscan-io/flowscan/internal/sarif"
	"github.com/flowscan-io/flowscan/pkg/shared"
	"github.com/flowscan-io/flowscan/pkg/shared/config"
	sharederrors "github.com/flowscan-io/flowscan/pkg/shared/errors"
	"github.com/flowscan-io/flowscan/pkg/shared/files"
	"github.com/flowscan-io/flowscan/pkg/shared/logger"
)

// RunOptionsAnalyse holds the arguments for the analyse command.
type RunOptionsAnalyse struct {
	InputFile    string
	ReportFormat string
	OutputPath   string
	SeverityGate string
	Threads      int
}

// Global variables for configuration and command arguments
var (
	AppConfig           *config.Config
	analyseOptions      RunOptionsAnalyse
	exampleAnalyseUsage = `  # Analysing a single exported workflow document
  flowscan analyse /path/to/flow.json

  # Analysing every document listed in a file, four at a time
  flowscan analyse --input-file /path/to/list.txt -j 4

  # Writing findings as SARIF for downstream tooling
  flowscan analyse --format sarif --output findings.sarif /path/to/flow.json

  # Failing the pipeline on anything high or worse
  flowscan analyse --severity-gate high /path/to/flow.json`
)

// AnalyseCmd represents the analyse command.
var AnalyseCmd = &cobra.Command{
	Use:                   "analyse [--format/-f json|sarif] [--output/-o PATH] [-j THREADS_NUMBER] {--input-file/-i PATH | PATH...}",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleAnalyseUsage,
	Short:                 "Analyses workflow documents and reports bulk-safety findings",
	RunE:                  runAnalyseCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runAnalyseCommand executes the analyse command.
func runAnalyseCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !shared.HasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	log := logger.NewLogger(AppConfig, "core-analyse")

	if err := validateAnalyseArgs(&analyseOptions, args); err != nil {
		log.Error("invalid analyse arguments", "error", err)
		return err
	}

	paths, err := collectDocumentPaths(&analyseOptions, args)
	if err != nil {
		log.Error("failed to collect document paths", "error", err)
		return err
	}

	cfg := effectiveConfig(AppConfig, &analyseOptions)
	batch := runner.New(cfg, log).AnalyseFiles(paths)

	if err := writeResults(cfg, batch, analyseOptions.ReportFormat, analyseOptions.OutputPath); err != nil {
		log.Error("failed to write results", "error", err)
		return err
	}

	if failed := countFailed(batch); failed > 0 {
		err := fmt.Errorf("%d document(s) could not be analysed", failed)
		log.Error("analyse command failed", "error", err)
		return sharederrors.NewCommandError(err, 2)
	}

	gate := findings.Severity(strings.ToLower(cfg.Analyser.SeverityGate))
	if count := batch.CountAtLeast(gate); count > 0 {
		log.Warn("findings met the severity gate", "count", count, "gate", cfg.Analyser.SeverityGate)
		return sharederrors.NewGateError(count, cfg.Analyser.SeverityGate, 1)
	}

	log.Info("analyse command completed successfully")
	return nil
}

// effectiveConfig overlays command-line options onto the loaded configuration.
func effectiveConfig(base *config.Config, opts *RunOptionsAnalyse) *config.Config {
	cfg := *base
	if opts.Threads > 0 {
		cfg.Analyser.Workers = opts.Threads
	}
	if opts.SeverityGate != "" {
		cfg.Analyser.SeverityGate = opts.SeverityGate
	}
	return &cfg
}

// writeResults renders the batch in the requested format to the output path
// or stdout. A directory output path gets a default file name appended.
func writeResults(cfg *config.Config, batch runner.BatchResult, format, outputPath string) error {
	switch format {
	case "sarif":
		docs := make([]sarif.DocumentFindings, 0, len(batch.Results))
		for _, res := range batch.Results {
			if res.Status != "OK" {
				continue
			}
			docs = append(docs, sarif.DocumentFindings{Document: res.Document, Findings: res.Findings})
		}
		report, err := sarif.NewReport(batch.RunID, docs)
		if err != nil {
			return err
		}
		if outputPath == "" {
			return report.PrettyWrite(os.Stdout)
		}
		fullPath, folder, err := files.DetermineFileFullPath(outputPath, "flowscan-results.sarif")
		if err != nil {
			return err
		}
		if err := files.CreateFolderIfNotExists(folder); err != nil {
			return err
		}
		return sarif.WriteFile(report, fullPath)
	default:
		data, err := json.MarshalIndent(batch, "", "    ")
		if err != nil {
			return fmt.Errorf("marshal results: %w", err)
		}
		if outputPath == "" {
			_, err = fmt.Fprintln(os.Stdout, string(data))
			return err
		}
		fullPath, folder, err := files.DetermineFileFullPath(outputPath, "flowscan-results.json")
		if err != nil {
			return err
		}
		if err := files.CreateFolderIfNotExists(folder); err != nil {
			return err
		}
		return files.WriteJsonFile(fullPath, append(data, '\n'))
	}
}

func countFailed(batch runner.BatchResult) int {
	failed := 0
	for _, res := range batch.Results {
		if res.Status != "OK" {
			failed++
		}
	}
	return failed
}

// Initialize flags for the analyse command.
func init() {
	AnalyseCmd.Flags().StringVarP(&analyseOptions.ReportFormat, "format", "f", "json", "Format for the report with results (json or sarif).")
	AnalyseCmd.Flags().BoolP("help", "h", false, "Show help for the analyse command.")
	AnalyseCmd.Flags().StringVarP(&analyseOptions.InputFile, "input-file", "i", "", "Path to a file containing a list of document paths to analyse, one per line.")
	AnalyseCmd.Flags().StringVarP(&analyseOptions.OutputPath, "output", "o", "", "Path to the output file where the results will be saved.")
	AnalyseCmd.Flags().StringVar(&analyseOptions.SeverityGate, "severity-gate", "", "Severity at or above which the command exits non-zero (overrides config).")
	AnalyseCmd.Flags().IntVarP(&analyseOptions.Threads, "threads", "j", 0, "Number of concurrent threads to use (overrides config).")
}
