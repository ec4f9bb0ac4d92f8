package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowscan-io/flowscan/cmd/analyse"
	"github.com/flowscan-io/flowscan/cmd/version"
	"github.com/flowscan-io/flowscan/pkg/shared/config"
	sharederrors "github.com/flowscan-io/flowscan/pkg/shared/errors"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "flowscan [command]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Flowscan analyses declarative workflow definitions for bulk-safety anti-patterns.",
		Long: `Flowscan builds a control-flow graph from exported workflow documents and
detects patterns that violate per-transaction resource limits: writes and
queries inside loop bodies, unguarded recursive updates, orphaned elements,
unused identifiers and related hygiene issues.
`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yml)")
	rootCmd.AddCommand(version.NewVersionCmd())
	rootCmd.AddCommand(analyse.AnalyseCmd)
}

// Execute runs the root command and maps failures onto process exit codes.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		var cmdErr *sharederrors.CommandError
		if errors.As(err, &cmdErr) {
			return cmdErr.ExitCode
		}
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		return 1
	}
	return 0
}

func initConfig() {
	explicit := cfgFile != ""
	if cfgFile == "" {
		cfgFile = "config.yml"
	}

	// The default config file is optional; an explicitly passed one is not.
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) && !explicit {
		AppConfig = config.DefaultConfig()
	} else {
		var err error
		AppConfig, err = config.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config file %q: %v\n", cfgFile, err)
			os.Exit(1)
		}
	}

	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	analyse.Init(AppConfig)
}
