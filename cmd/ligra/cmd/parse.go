package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ligra-project/ligra/digraph"
)

var parseOutput string

var parseCmd = &cobra.Command{
	Use:   "parse <in>",
	Short: "Convert a textual AdjacencyGraph file to the binary format",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseOutput, "out", "o", "", "output path for the binary graph (required)")
	parseCmd.MarkFlagRequired("out")
}

func runParse(cmd *cobra.Command, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}
	defer in.Close()

	start := time.Now()
	g, err := digraph.ParseAdjacencyGraph(in, graphOptions()...)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}
	log.Elapsed("parse adjacency graph", time.Since(start))

	out, err := os.Create(parseOutput)
	if err != nil {
		return fmt.Errorf("creating %s: %w", parseOutput, err)
	}
	defer out.Close()

	start = time.Now()
	if err := digraph.Dump(g, out); err != nil {
		return fmt.Errorf("writing %s: %w", parseOutput, err)
	}
	log.Elapsed("dump binary graph", time.Since(start))

	log.Info("wrote %d nodes, %d relationships to %s", g.NodeCount(), g.RelCount(), parseOutput)
	return nil
}
