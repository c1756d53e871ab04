package frontier

// noNode marks an absent entry in a compaction buffer; it is never a
// valid node id because digraph.Graph node ids are dense in [0, N) and
// N fits comfortably below the all-ones sentinel for any graph this
// engine can hold in memory.
const noNode = ^uint64(0)

// NodeSubset is a frontier: the set of active node ids driving one
// round of a vertex program. It holds one of two representations at a
// time, sparse (an ordered slice of member ids) or dense (a per-node
// boolean bitmap), and converts between them on demand. The zero value
// is not valid; construct one with Empty, Single, Full, Sparse, or
// Dense.
type NodeSubset struct {
	nodeCount   int
	subsetCount int
	isDense     bool
	sparse      []uint64 // valid iff !isDense; every id < nodeCount, order unspecified
	dense       []bool   // valid iff isDense; len == nodeCount
}

// Empty returns a sparse NodeSubset with no members, over a universe of
// nodeCount nodes.
func Empty(nodeCount int) *NodeSubset {
	return &NodeSubset{nodeCount: nodeCount, sparse: []uint64{}}
}

// Single returns a sparse NodeSubset containing exactly v.
func Single(nodeCount int, v uint64) *NodeSubset {
	return &NodeSubset{nodeCount: nodeCount, subsetCount: 1, sparse: []uint64{v}}
}

// Full returns a dense NodeSubset containing every node in [0, nodeCount).
func Full(nodeCount int) *NodeSubset {
	dense := make([]bool, nodeCount)
	for i := range dense {
		dense[i] = true
	}
	return &NodeSubset{nodeCount: nodeCount, subsetCount: nodeCount, isDense: true, dense: dense}
}

// Sparse returns a sparse NodeSubset with the given members. Every id
// must be < nodeCount; Sparse does not validate this.
func Sparse(nodeCount int, members []uint64) *NodeSubset {
	return SparseCounted(nodeCount, len(members), members)
}

// SparseCounted is Sparse with an explicit, already-known member count,
// avoiding a redundant len() at call sites that just computed it.
func SparseCounted(nodeCount, count int, members []uint64) *NodeSubset {
	return &NodeSubset{nodeCount: nodeCount, subsetCount: count, sparse: members}
}

// Dense returns a dense NodeSubset from a pre-built membership bitmap of
// length nodeCount, counting members.
func Dense(nodeCount int, bitmap []bool) *NodeSubset {
	count := 0
	for _, b := range bitmap {
		if b {
			count++
		}
	}
	return DenseCounted(nodeCount, count, bitmap)
}

// DenseCounted is Dense with an explicit, already-known member count.
func DenseCounted(nodeCount, count int, bitmap []bool) *NodeSubset {
	return &NodeSubset{nodeCount: nodeCount, subsetCount: count, isDense: true, dense: bitmap}
}

// NodeCount returns the size of the universe this subset is drawn from.
func (s *NodeSubset) NodeCount() int { return s.nodeCount }

// SubsetCount returns the number of members, regardless of
// representation.
func (s *NodeSubset) SubsetCount() int { return s.subsetCount }

// IsEmpty reports whether the subset has no members.
func (s *NodeSubset) IsEmpty() bool { return s.subsetCount == 0 }

// IsDense reports the subset's current representation.
func (s *NodeSubset) IsDense() bool { return s.isDense }

// Node returns the i-th member in sparse order. It panics if the subset
// is currently dense; call ToSparse first.
func (s *NodeSubset) Node(i int) uint64 {
	if s.isDense {
		panic("frontier: Node called on a dense NodeSubset")
	}
	return s.sparse[i]
}

// Nodes returns the sparse member slice directly. It panics if the
// subset is currently dense.
func (s *NodeSubset) Nodes() []uint64 {
	if s.isDense {
		panic("frontier: Nodes called on a dense NodeSubset")
	}
	return s.sparse
}

// Contains reports whether v is a member. It panics if the subset is
// currently sparse; call ToDense first.
func (s *NodeSubset) Contains(v uint64) bool {
	if !s.isDense {
		panic("frontier: Contains called on a sparse NodeSubset")
	}
	return s.dense[v]
}

// ToDense converts the subset to the dense representation in place.
// Idempotent: a no-op if already dense.
func (s *NodeSubset) ToDense() {
	if s.isDense {
		return
	}
	dense := make([]bool, s.nodeCount)
	for _, v := range s.sparse {
		dense[v] = true
	}
	s.isDense = true
	s.dense = dense
	s.sparse = nil
}

// ToSparse converts the subset to the sparse representation in place,
// in ascending order. Idempotent: a no-op if already sparse.
func (s *NodeSubset) ToSparse() {
	if !s.isDense {
		return
	}
	sparse := make([]uint64, 0, s.subsetCount)
	for v, member := range s.dense {
		if member {
			sparse = append(sparse, uint64(v))
		}
	}
	s.isDense = false
	s.sparse = sparse
	s.dense = nil
}

func compact(buf []uint64) []uint64 {
	out := make([]uint64, 0, len(buf))
	for _, v := range buf {
		if v != noNode {
			out = append(out, v)
		}
	}
	return out
}
