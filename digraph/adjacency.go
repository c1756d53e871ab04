package digraph

const defaultThresholdDivisor = 20

// NewFromLists builds a Graph from a caller-supplied out-adjacency
// representation: offsets[v] is the starting index of v's targets within
// targets, for v in [0, len(offsets)). The final node's degree is
// inferred from len(targets). The in-adjacency list is derived by a
// bucket sort over (target, source) pairs, mirroring
// the usual CSR transposition.
//
// offsets must be non-decreasing and offsets[0] must be 0; targets must
// contain exactly rel_count entries, each in [0, len(offsets)).
func NewFromLists(offsets []uint64, targets []uint64, opts ...GraphOption) *Graph {
	out := adjacencyListFromOffsets(offsets, targets)
	inc := invert(out)

	g := &Graph{out: out, inc: inc, thresholdDivisor: defaultThresholdDivisor}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// adjacencyListFromOffsets converts a flat offsets+targets pair into the
// (offset, degree) node table plus shared targets backing array.
func adjacencyListFromOffsets(offsets []uint64, targets []uint64) adjacencyList {
	nodeCount := len(offsets)
	relCount := uint64(len(targets))

	nodes := make([]node, nodeCount)
	for v := 0; v < nodeCount; v++ {
		offset := offsets[v]
		var next uint64
		if v+1 < nodeCount {
			next = offsets[v+1]
		} else {
			next = relCount
		}
		nodes[v] = node{offset: offset, degree: next - offset}
	}

	return adjacencyList{nodes: nodes, targets: targets}
}

// invert builds the mutual-inverse adjacency list of a: for every
// (source, target) edge in a, the result contains the edge
// (target, source). Targets within each node's slice come out sorted
// ascending, since the bucket sort below processes sources in id order.
func invert(a adjacencyList) adjacencyList {
	nodeCount := a.nodeCount()
	relCount := a.relCount()

	degree := make([]uint64, nodeCount)
	for source := 0; source < nodeCount; source++ {
		for _, target := range a.rels(uint64(source)) {
			degree[target]++
		}
	}

	offsets := make([]uint64, nodeCount)
	var running uint64
	for v := 0; v < nodeCount; v++ {
		offsets[v] = running
		running += degree[v]
	}

	targets := make([]uint64, relCount)
	cursor := append([]uint64(nil), offsets...)
	for source := 0; source < nodeCount; source++ {
		for _, target := range a.rels(uint64(source)) {
			targets[cursor[target]] = uint64(source)
			cursor[target]++
		}
	}

	nodes := make([]node, nodeCount)
	for v := 0; v < nodeCount; v++ {
		nodes[v] = node{offset: offsets[v], degree: degree[v]}
	}

	return adjacencyList{nodes: nodes, targets: targets}
}
