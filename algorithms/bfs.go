package algorithms

import (
	"sync/atomic"

	"github.com/ligra-project/ligra/digraph"
	"github.com/ligra-project/ligra/frontier"
)

// NoParent marks a node BFS never reached. The source's own parent slot
// holds the source itself.
const NoParent = ^uint64(0)

// BFSOptions configures a BFS run.
type BFSOptions struct {
	// OnVisit, if set, is called once for every node as it is assigned
	// a depth, in the round it was discovered (source included, at
	// depth 0). Order within a round is not specified.
	OnVisit func(v uint64, depth int)
}

// BFSResult holds the outcome of a BFS traversal.
type BFSResult struct {
	// Depth[v] is v's distance in edges from the source, or -1 if v was
	// never reached.
	Depth []int
	// Parent[v] is the node that first discovered v (the source's slot
	// holds the source itself), or NoParent for unreached nodes.
	Parent []uint64
}

// BFS performs a breadth-first search of graph from source, returning
// the depth and parent-pointer arrays. It panics if source is not a
// valid node id, matching the package-wide precondition-violation
// policy for caller errors.
//
// Complexity: O(V + E). Memory: O(V).
func BFS(graph *digraph.Graph, source uint64, opts *BFSOptions) *BFSResult {
	n := graph.NodeCount()
	if source >= uint64(n) {
		panic("algorithms: BFS source out of range")
	}

	parent := make([]atomic.Uint64, n)
	for v := range parent {
		parent[v].Store(NoParent)
	}
	parent[source].Store(source)
	depth := make([]int, n)
	for v := range depth {
		depth[v] = -1
	}
	depth[source] = 0

	var onVisit func(uint64, int)
	if opts != nil {
		onVisit = opts.OnVisit
	}
	if onVisit != nil {
		onVisit(source, 0)
	}

	mapper := &bfsMapper{parent: parent}
	f := frontier.Single(n, source)
	d := 0
	for !f.IsEmpty() {
		f = frontier.RelationshipMap(graph, f, mapper)
		d++
		if f.IsEmpty() {
			break
		}
		frontier.NodeMap(f, &bfsDepthRecorder{depth: depth, round: d, onVisit: onVisit})
	}

	result := make([]uint64, n)
	for v := range result {
		result[v] = parent[v].Load()
	}

	return &BFSResult{Depth: depth, Parent: result}
}

// bfsMapper claims each newly-reached node via a compare-and-swap on its
// parent slot: the first source to win the CAS becomes the parent, and
// Check lets later sources for the same target skip it once claimed.
type bfsMapper struct {
	frontier.BaseRelationshipMapper
	parent []atomic.Uint64
}

func (m *bfsMapper) Update(source, target uint64) bool {
	return m.parent[target].CompareAndSwap(NoParent, source)
}

func (m *bfsMapper) Check(target uint64) bool {
	return m.parent[target].Load() == NoParent
}

// bfsDepthRecorder sets depth[v] to the current round for every member v
// of the frontier it is applied to, via NodeMap (so it runs regardless of the frontier's
// representation).
type bfsDepthRecorder struct {
	frontier.BaseNodeMapper
	depth   []int
	round   int
	onVisit func(uint64, int)
}

func (r *bfsDepthRecorder) Update(v uint64) bool {
	r.depth[v] = r.round
	if r.onVisit != nil {
		r.onVisit(v, r.round)
	}
	return true
}

func (r *bfsDepthRecorder) UpdateAlwaysReturnsTrue() bool { return true }
