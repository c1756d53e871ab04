package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ligra-project/ligra/cliconfig"
	"github.com/ligra-project/ligra/digraph"
	"github.com/ligra-project/ligra/parallel"
)

var (
	configPath string
	verbose    bool

	cfg *cliconfig.Config
	log cliconfig.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ligra",
	Short: "A shared-memory parallel graph engine",
	Long: `ligra runs frontier-based graph algorithms (connected components,
breadth-first search, PageRankDelta) over large graphs stored in a
compact binary adjacency format.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := cliconfig.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		level := cliconfig.ParseLogLevel(cfg.Log.Level)
		if verbose {
			level = cliconfig.LevelDebug
		}
		log = cliconfig.NewDefaultLogger(level, os.Stderr)

		parallel.SetWorkers(cfg.Engine.Workers)

		return nil
	},
}

// Execute runs the root command, exiting the process with status 1 if
// it returns an error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to ligra.yaml (defaults to ./ligra.yaml, ./configs/ligra.yaml, /etc/ligra/ligra.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// graphOptions builds the digraph.GraphOption set implied by the loaded
// Config, for subcommands that open a binary graph file.
func graphOptions() []digraph.GraphOption {
	if cfg == nil || cfg.Engine.ThresholdDivisor == 0 {
		return nil
	}
	return []digraph.GraphOption{digraph.WithThresholdDivisor(cfg.Engine.ThresholdDivisor)}
}
