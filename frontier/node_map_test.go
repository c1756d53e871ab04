package frontier_test

import (
	"sync/atomic"
	"testing"

	"github.com/ligra-project/ligra/frontier"
	"github.com/stretchr/testify/require"
)

// isEven is a NodeMapper that accepts even node ids.
type isEven struct {
	frontier.BaseNodeMapper
	calls atomic.Int64
}

func (m *isEven) Update(v uint64) bool {
	m.calls.Add(1)
	return v%2 == 0
}

func TestNodeMap_VisitsEveryMemberExactlyOnce(t *testing.T) {
	m := &isEven{}
	s := frontier.Sparse(10, []uint64{1, 3, 5, 7, 9})
	frontier.NodeMap(s, m)
	require.EqualValues(t, 5, m.calls.Load())

	m2 := &isEven{}
	dense := frontier.Full(6)
	frontier.NodeMap(dense, m2)
	require.EqualValues(t, 6, m2.calls.Load())
}

func TestNodeFilter_SparsePreservesRepresentation(t *testing.T) {
	s := frontier.Sparse(10, []uint64{1, 2, 3, 4, 5})
	out := frontier.NodeFilter(s, &isEven{})

	require.False(t, out.IsDense())
	require.Equal(t, []uint64{2, 4}, out.Nodes())
}

func TestNodeFilter_DensePreservesRepresentation(t *testing.T) {
	s := frontier.Full(6)
	out := frontier.NodeFilter(s, &isEven{})

	require.True(t, out.IsDense())
	require.Equal(t, 3, out.SubsetCount())
	for v := uint64(0); v < 6; v++ {
		require.Equal(t, v%2 == 0, out.Contains(v), "node %d", v)
	}
}

func TestNodeFilter_UpdateAlwaysTrueKeepsEveryMember(t *testing.T) {
	m := &alwaysTrueMapper{}
	s := frontier.Sparse(5, []uint64{0, 2, 4})
	out := frontier.NodeFilter(s, m)

	require.Equal(t, []uint64{0, 2, 4}, out.Nodes())
	require.EqualValues(t, 3, m.calls.Load())
}

type alwaysTrueMapper struct {
	frontier.BaseNodeMapper
	calls atomic.Int64
}

func (m *alwaysTrueMapper) Update(uint64) bool {
	m.calls.Add(1)
	return true
}

func (m *alwaysTrueMapper) UpdateAlwaysReturnsTrue() bool { return true }
