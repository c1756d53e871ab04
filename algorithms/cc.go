package algorithms

import (
	"sync/atomic"

	"github.com/ligra-project/ligra/digraph"
	"github.com/ligra-project/ligra/frontier"
)

// CC assigns every node v the minimum node id among the nodes that can
// reach v by following out-edges (v itself included): labels are pushed
// from source to target only, until no label changes across any edge.
// Labels do not propagate against edge direction, so nodes joined only
// by reverse edges keep different labels (for the single edge 1->0 the
// result is [0, 1]). Every node of a weakly connected component carries
// the component's minimum id when that minimum node can reach all of
// them, as in a directed cycle or a graph that stores each edge in both
// directions.
//
// Complexity: O((V + E) * diameter) in the worst case. Memory: O(V).
func CC(graph *digraph.Graph) []uint64 {
	n := graph.NodeCount()
	ids := make([]atomic.Uint64, n)
	prevIDs := make([]atomic.Uint64, n)
	for v := range ids {
		ids[v].Store(uint64(v))
	}

	snapshot := &ccSnapshotMapper{ids: ids, prevIDs: prevIDs}
	relax := &ccRelaxMapper{ids: ids, prevIDs: prevIDs}

	f := frontier.Full(n)
	for !f.IsEmpty() {
		f = frontier.NodeFilter(f, snapshot)
		f = frontier.RelationshipMap(graph, f, relax)
	}

	result := make([]uint64, n)
	for v := range result {
		result[v] = ids[v].Load()
	}
	return result
}

// ccSnapshotMapper records each active node's current label into
// prevIDs before a relaxation round, so ccRelaxMapper can tell whether
// a given write is the round's first successful relaxation of a
// target.
type ccSnapshotMapper struct {
	frontier.BaseNodeMapper
	ids, prevIDs []atomic.Uint64
}

func (m *ccSnapshotMapper) Update(v uint64) bool {
	m.prevIDs[v].Store(m.ids[v].Load())
	return true
}

func (m *ccSnapshotMapper) UpdateAlwaysReturnsTrue() bool { return true }

// ccRelaxMapper relaxes a target's label to the minimum of its current
// label and its source's, via a compare-and-swap loop (writeMin), and
// emits the target into the next frontier only for the write that first
// moves it away from its round-start snapshot. Concurrent further
// relaxations of the same target in the same round still apply (labels
// only ever decrease) but are not re-emitted, since their pre-write
// value no longer equals prevIDs[target].
type ccRelaxMapper struct {
	frontier.BaseRelationshipMapper
	ids, prevIDs []atomic.Uint64
}

func (m *ccRelaxMapper) Update(source, target uint64) bool {
	changed, old := writeMin(&m.ids[target], m.ids[source].Load())
	if !changed {
		return false
	}
	return old == m.prevIDs[target].Load()
}

func (m *ccRelaxMapper) CheckAlwaysReturnsTrue() bool { return true }

// writeMin atomically sets *slot to value if value is smaller than the
// current contents, retrying under concurrent writers. It reports
// whether this call's write took effect, and the value immediately
// before the write.
func writeMin(slot *atomic.Uint64, value uint64) (changed bool, old uint64) {
	for {
		old = slot.Load()
		if value >= old {
			return false, old
		}
		if slot.CompareAndSwap(old, value) {
			return true, old
		}
	}
}
