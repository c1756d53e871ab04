package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ligra-project/ligra/algorithms"
)

var prdIterations int

var prdCmd = &cobra.Command{
	Use:   "prd <graph>",
	Short: "PageRankDelta over a binary graph",
	Args:  cobra.ExactArgs(1),
	RunE:  runPRD,
}

func init() {
	rootCmd.AddCommand(prdCmd)
	prdCmd.Flags().IntVarP(&prdIterations, "iterations", "i", 0, "maximum iterations (0 uses the algorithm default)")
}

func runPRD(cmd *cobra.Command, args []string) error {
	res, err := algorithms.RunPageRankDelta(args[0], prdIterations, log, graphOptions()...)
	if err != nil {
		return err
	}

	log.Info("finished after %d iterations", res.Iterations)
	for v, r := range res.Rank {
		fmt.Printf("%d\t%.8f\n", v, r)
	}
	return nil
}
