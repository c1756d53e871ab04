package digraph_test

import (
	"testing"

	"github.com/ligra-project/ligra/digraph"
	"github.com/stretchr/testify/require"
)

// buildTriangle returns the directed 3-cycle 0->1->2->0.
func buildTriangle() *digraph.Graph {
	offsets := []uint64{0, 1, 2}
	targets := []uint64{1, 2, 0}
	return digraph.NewFromLists(offsets, targets)
}

func TestNewFromLists_BasicCounts(t *testing.T) {
	g := buildTriangle()

	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, 3, g.RelCount())
	for v := uint64(0); v < 3; v++ {
		require.Len(t, g.Out(v), 1)
		require.Len(t, g.Inc(v), 1)
		require.EqualValues(t, 1, g.OutDegree(v))
		require.EqualValues(t, 1, g.IncDegree(v))
	}
}

// TestInvert_IsMutualInverse checks that the two adjacency directions
// are mutual inverses: v in Out(u) iff u in Inc(v).
func TestInvert_IsMutualInverse(t *testing.T) {
	// A small DAG with varying degrees: 0->1, 0->2, 1->2, 2->3.
	offsets := []uint64{0, 2, 3, 4}
	targets := []uint64{1, 2, 2, 3}
	g := digraph.NewFromLists(offsets, targets)

	for u := uint64(0); u < uint64(g.NodeCount()); u++ {
		for _, v := range g.Out(u) {
			require.Contains(t, g.Inc(v), u, "expected %d in Inc(%d)", u, v)
		}
	}
	for v := uint64(0); v < uint64(g.NodeCount()); v++ {
		for _, u := range g.Inc(v) {
			require.Contains(t, g.Out(u), v, "expected %d in Out(%d)", v, u)
		}
	}
}

// TestInvert_DegreeSumsMatchRelCount checks that the sum of
// out-degrees and the sum of in-degrees both equal rel_count.
func TestInvert_DegreeSumsMatchRelCount(t *testing.T) {
	offsets := []uint64{0, 2, 3, 4}
	targets := []uint64{1, 2, 2, 3}
	g := digraph.NewFromLists(offsets, targets)

	var outSum, inSum uint64
	for v := uint64(0); v < uint64(g.NodeCount()); v++ {
		outSum += g.OutDegree(v)
		inSum += g.IncDegree(v)
	}
	require.EqualValues(t, g.RelCount(), outSum)
	require.EqualValues(t, g.RelCount(), inSum)
}

// TestInvert_InTargetsSortedAscending checks that each node's in-edge
// slice is sorted ascending.
func TestInvert_InTargetsSortedAscending(t *testing.T) {
	// Edges 0->3, 1->3, 3->3 (node 2 has no out-edges), so node 3 has
	// three predecessors: 0, 1, and itself.
	offsets := []uint64{0, 1, 2, 2}
	targets := []uint64{3, 3, 3}
	g := digraph.NewFromLists(offsets, targets)

	inc := g.Inc(3)
	require.Len(t, inc, 3)
	for i := 1; i < len(inc); i++ {
		require.LessOrEqual(t, inc[i-1], inc[i])
	}
}

func TestThreshold_DefaultDivisor(t *testing.T) {
	offsets := make([]uint64, 1)
	targets := make([]uint64, 100)
	g := digraph.NewFromLists(offsets, targets)

	require.EqualValues(t, 5, g.Threshold())
}

func TestThreshold_CustomDivisor(t *testing.T) {
	offsets := make([]uint64, 1)
	targets := make([]uint64, 100)
	g := digraph.NewFromLists(offsets, targets, digraph.WithThresholdDivisor(10))

	require.EqualValues(t, 10, g.Threshold())
}
