package algorithms

import (
	"fmt"
	"os"
	"time"

	"github.com/ligra-project/ligra/cliconfig"
	"github.com/ligra-project/ligra/digraph"
)

// loadGraph opens path and loads it as a binary-format digraph.Graph,
// logging the load time through log.
func loadGraph(path string, log cliconfig.Logger, opts ...digraph.GraphOption) (*digraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("algorithms: opening %s: %w", path, err)
	}
	defer f.Close()

	start := time.Now()
	g, err := digraph.Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("algorithms: loading %s: %w", path, err)
	}
	log.Elapsed("load graph", time.Since(start))

	return g, nil
}

// RunCC loads the binary graph at path and runs CC over it, logging
// load and compute timing.
func RunCC(path string, log cliconfig.Logger, opts ...digraph.GraphOption) ([]uint64, error) {
	g, err := loadGraph(path, log, opts...)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	ids := CC(g)
	log.Elapsed("compute cc", time.Since(start))

	return ids, nil
}

// RunBFS loads the binary graph at path and runs BFS from source over
// it, logging load and compute timing.
func RunBFS(path string, source uint64, log cliconfig.Logger, opts ...digraph.GraphOption) (*BFSResult, error) {
	g, err := loadGraph(path, log, opts...)
	if err != nil {
		return nil, err
	}

	if source >= uint64(g.NodeCount()) {
		return nil, fmt.Errorf("algorithms: BFS source %d out of range [0, %d)", source, g.NodeCount())
	}

	start := time.Now()
	res := BFS(g, source, nil)
	log.Elapsed("compute bfs", time.Since(start))

	return res, nil
}

// RunPageRankDelta loads the binary graph at path and runs PageRankDelta
// over it, logging load and compute timing.
func RunPageRankDelta(path string, maxIterations int, log cliconfig.Logger, opts ...digraph.GraphOption) (*PageRankResult, error) {
	g, err := loadGraph(path, log, opts...)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res := PageRankDelta(g, &PageRankOptions{MaxIterations: maxIterations})
	log.Elapsed("compute page rank delta", time.Since(start))

	return res, nil
}
