// Command ligra is a small CLI around the graph engine in
// github.com/ligra-project/ligra: parsing the textual adjacency format
// into the binary one, and running CC, BFS, and PageRankDelta.
package main

import "github.com/ligra-project/ligra/cmd/ligra/cmd"

func main() {
	cmd.Execute()
}
