package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ligra-project/ligra/algorithms"
)

var bfsSource uint64

var bfsCmd = &cobra.Command{
	Use:   "bfs <graph>",
	Short: "Breadth-first search from a source over a binary graph",
	Args:  cobra.ExactArgs(1),
	RunE:  runBFS,
}

func init() {
	rootCmd.AddCommand(bfsCmd)
	bfsCmd.Flags().Uint64VarP(&bfsSource, "source", "s", 0, "source node id")
}

func runBFS(cmd *cobra.Command, args []string) error {
	res, err := algorithms.RunBFS(args[0], bfsSource, log, graphOptions()...)
	if err != nil {
		return err
	}

	reached := 0
	maxDepth := 0
	for _, d := range res.Depth {
		if d >= 0 {
			reached++
			if d > maxDepth {
				maxDepth = d
			}
		}
	}

	log.Info("%d nodes reached from source %d, max depth %d", reached, bfsSource, maxDepth)
	fmt.Printf("node\tparent\tdepth\n")
	for v, d := range res.Depth {
		if d < 0 {
			continue
		}
		fmt.Printf("%d\t%d\t%d\n", v, res.Parent[v], d)
	}
	return nil
}
