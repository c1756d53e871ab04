package frontier

import (
	"github.com/ligra-project/ligra/digraph"
	"github.com/ligra-project/ligra/parallel"
)

// RelationshipMap transforms frontier edge-wise according to mapper,
// over the out-edges of graph, and returns the next frontier.
//
// frontier's representation may be converted in place as a side effect
// (the degree census and direction choice below operate on whichever
// representation is cheapest, then convert if the chosen path needs
// the other one); the NodeSubset returned is always a new value.
//
// Direction is chosen by comparing the frontier's total estimated
// out-degree (summed over its members) against graph.Threshold(): at or
// below threshold, a sparse push iterates only the frontier's out-edges;
// above threshold, a dense pull iterates every node's in-edges, testing
// frontier membership of each source. The degree census reads whichever
// representation frontier already holds rather than forcing a sparse
// conversion first.
func RelationshipMap(graph *digraph.Graph, input *NodeSubset, mapper RelationshipMapper) *NodeSubset {
	total := estimateOutWork(graph, input)

	if total > graph.Threshold() {
		input.ToDense()
		return relationshipMapDense(graph, input, mapper)
	}

	input.ToSparse()
	return relationshipMapSparse(graph, input, mapper)
}

// estimateOutWork sums the out-degree of every member of frontier,
// reading whichever representation is currently live.
func estimateOutWork(graph *digraph.Graph, frontier *NodeSubset) uint64 {
	if frontier.IsDense() {
		degrees := parallel.ParVec(graph.NodeCount(), func(v int) uint64 {
			if frontier.Contains(uint64(v)) {
				return graph.OutDegree(uint64(v))
			}
			return 0
		})
		return parallel.ParSum(degrees)
	}

	degrees := parallel.ParVec(frontier.SubsetCount(), func(i int) uint64 {
		return graph.OutDegree(frontier.Node(i))
	})
	return parallel.ParSum(degrees)
}

// relationshipMapSparse implements the push path: iterate the frontier's
// out-edges and scatter results into an offsets-sized buffer, then
// compact.
func relationshipMapSparse(graph *digraph.Graph, frontier *NodeSubset, mapper RelationshipMapper) *NodeSubset {
	subsetCount := frontier.SubsetCount()
	if subsetCount == 0 {
		return Empty(graph.NodeCount())
	}

	degrees := parallel.ParVec(subsetCount, func(i int) uint64 {
		return graph.OutDegree(frontier.Node(i))
	})
	offsets, total := parallel.ParPrefixSum(degrees)

	if mapper.HasNoResult() {
		parallel.ParForEach(subsetCount, func(i int) {
			source := frontier.Node(i)
			applyEdges(mapper, source, graph.Out(source), nil, 0)
		})
		return Empty(graph.NodeCount())
	}

	buf := make([]uint64, total)
	for i := range buf {
		buf[i] = noNode
	}

	parallel.ParForEach(subsetCount, func(i int) {
		source := frontier.Node(i)
		applyEdges(mapper, source, graph.Out(source), buf, offsets[i])
	})

	members := compact(buf)
	return SparseCounted(graph.NodeCount(), len(members), members)
}

// applyEdges runs mapper over source's out-edges nbrs, honoring the
// Check/Update hints, and (if buf != nil) writes accepted targets into
// buf starting at base.
func applyEdges(mapper RelationshipMapper, source uint64, nbrs []uint64, buf []uint64, base uint64) {
	checkAlways := mapper.CheckAlwaysReturnsTrue()
	updateAlways := mapper.UpdateAlwaysReturnsTrue()

	for j, target := range nbrs {
		if !checkAlways && !mapper.Check(target) {
			continue
		}

		var accept bool
		if updateAlways {
			mapper.Update(source, target)
			accept = true
		} else {
			accept = mapper.Update(source, target)
		}

		if accept && buf != nil {
			buf[base+uint64(j)] = target
		}
	}
}

// relationshipMapDense implements the pull path: for every node, if it
// passes Check, scan its in-edges for a frontier member that accepts
// the edge.
func relationshipMapDense(graph *digraph.Graph, frontier *NodeSubset, mapper RelationshipMapper) *NodeSubset {
	n := graph.NodeCount()
	checkAlways := mapper.CheckAlwaysReturnsTrue()
	updateAlways := mapper.UpdateAlwaysReturnsTrue()

	if mapper.HasNoResult() {
		parallel.ParForEach(n, func(t int) {
			target := uint64(t)
			if !checkAlways && !mapper.Check(target) {
				return
			}
			for _, source := range graph.Inc(target) {
				if !frontier.Contains(source) {
					continue
				}
				mapper.Update(source, target)
				if !checkAlways && !mapper.Check(target) {
					return
				}
			}
		})
		return Empty(n)
	}

	next := make([]bool, n)
	parallel.ParForEach(n, func(t int) {
		target := uint64(t)
		if !checkAlways && !mapper.Check(target) {
			return
		}
		accepted := false
		for _, source := range graph.Inc(target) {
			if !frontier.Contains(source) {
				continue
			}
			var ok bool
			if updateAlways {
				mapper.Update(source, target)
				ok = true
			} else {
				ok = mapper.Update(source, target)
			}
			if ok {
				accepted = true
			}
			if !checkAlways && !mapper.Check(target) {
				break
			}
		}
		next[t] = accepted
	})

	count := 0
	for _, v := range next {
		if v {
			count++
		}
	}
	return DenseCounted(n, count, next)
}
