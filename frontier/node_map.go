package frontier

import "github.com/ligra-project/ligra/parallel"

// NodeMap applies mapper.Update(v) in parallel to every member v of
// frontier, for its side effects only; the return values are discarded
// and nothing is returned. Iteration order is unspecified.
func NodeMap(frontier *NodeSubset, mapper NodeMapper) {
	if frontier.IsDense() {
		parallel.ParForEach(frontier.NodeCount(), func(i int) {
			v := uint64(i)
			if frontier.Contains(v) {
				mapper.Update(v)
			}
		})
		return
	}

	parallel.ParForEach(frontier.SubsetCount(), func(i int) {
		mapper.Update(frontier.Node(i))
	})
}

// NodeFilter applies mapper.Update(v) in parallel to every member v of
// frontier and returns a new frontier containing exactly the members
// for which Update returned true. The output preserves frontier's
// representation: dense in, dense out; sparse in, sparse out.
func NodeFilter(frontier *NodeSubset, mapper NodeMapper) *NodeSubset {
	if frontier.IsDense() {
		n := frontier.NodeCount()
		out := make([]bool, n)
		parallel.ParForEach(n, func(i int) {
			v := uint64(i)
			if !frontier.Contains(v) {
				return
			}
			if mapper.UpdateAlwaysReturnsTrue() {
				mapper.Update(v)
				out[i] = true
				return
			}
			out[i] = mapper.Update(v)
		})

		count := 0
		for _, v := range out {
			if v {
				count++
			}
		}
		return DenseCounted(n, count, out)
	}

	subsetCount := frontier.SubsetCount()
	buf := make([]uint64, subsetCount)
	parallel.ParForEach(subsetCount, func(i int) {
		v := frontier.Node(i)
		if mapper.UpdateAlwaysReturnsTrue() {
			mapper.Update(v)
			buf[i] = v
			return
		}
		if mapper.Update(v) {
			buf[i] = v
		} else {
			buf[i] = noNode
		}
	})

	members := compact(buf)
	return SparseCounted(frontier.NodeCount(), len(members), members)
}
