package algorithms_test

import (
	"testing"

	"github.com/ligra-project/ligra/algorithms"
	"github.com/ligra-project/ligra/digraph"
	"github.com/stretchr/testify/require"
)

// TestCC_TwoTriangles checks the concrete scenario: 6 nodes, edges
// 0->1, 1->2, 2->0, 3->4, 4->5, 5->3. Expected ids [0,0,0,3,3,3].
func TestCC_TwoTriangles(t *testing.T) {
	offsets := []uint64{0, 1, 2, 3, 4, 5}
	targets := []uint64{1, 2, 0, 4, 5, 3}
	g := digraph.NewFromLists(offsets, targets)

	ids := algorithms.CC(g)
	require.Equal(t, []uint64{0, 0, 0, 3, 3, 3}, ids)
}

// TestCC_SingleChain checks: 0->1->2->3, expected ids [0,0,0,0].
func TestCC_SingleChain(t *testing.T) {
	g := digraph.NewFromLists([]uint64{0, 1, 2, 3}, []uint64{1, 2, 3})

	ids := algorithms.CC(g)
	require.Equal(t, []uint64{0, 0, 0, 0}, ids)
}

// TestCC_PushPullEquivalence checks that the direction heuristic does
// not change CC's result.
func TestCC_PushPullEquivalence(t *testing.T) {
	offsets := []uint64{0, 1, 2, 3, 4, 5}
	targets := []uint64{1, 2, 0, 4, 5, 3}

	push := digraph.NewFromLists(offsets, targets, digraph.WithThresholdDivisor(1))
	pull := digraph.NewFromLists(offsets, targets, digraph.WithThresholdDivisor(1000))

	require.Equal(t, algorithms.CC(push), algorithms.CC(pull))
}

// TestCC_Correctness checks that same-component pairs share a
// label equal to the component's minimum initial id, and different
// components disagree.
func TestCC_Correctness(t *testing.T) {
	offsets := []uint64{0, 1, 2, 3, 4, 5}
	targets := []uint64{1, 2, 0, 4, 5, 3}
	g := digraph.NewFromLists(offsets, targets)

	ids := algorithms.CC(g)
	for u := 0; u < 3; u++ {
		require.EqualValues(t, 0, ids[u])
	}
	for u := 3; u < 6; u++ {
		require.EqualValues(t, 3, ids[u])
	}
}

func TestCC_IsolatedNodesAreSingletons(t *testing.T) {
	g := digraph.NewFromLists([]uint64{0, 0, 0}, []uint64{})

	ids := algorithms.CC(g)
	require.Equal(t, []uint64{0, 1, 2}, ids)
}
