package cmd

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/ligra-project/ligra/algorithms"
)

var ccCmd = &cobra.Command{
	Use:   "cc <graph>",
	Short: "Compute connected components over a binary graph",
	Args:  cobra.ExactArgs(1),
	RunE:  runCC,
}

func init() {
	rootCmd.AddCommand(ccCmd)
}

func runCC(cmd *cobra.Command, args []string) error {
	ids, err := algorithms.RunCC(args[0], log, graphOptions()...)
	if err != nil {
		return err
	}

	counts := make(map[uint64]int)
	for _, id := range ids {
		counts[id]++
	}

	roots := make([]uint64, 0, len(counts))
	for root := range counts {
		roots = append(roots, root)
	}
	sort.Slice(roots, func(i, j int) bool { return counts[roots[i]] > counts[roots[j]] })

	log.Info("%d nodes, %d components", len(ids), len(counts))
	for _, root := range roots {
		log.Info("component %d: %d nodes", root, counts[root])
	}
	return nil
}
