package digraph_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ligra-project/ligra/digraph"
	"github.com/stretchr/testify/require"
)

// TestBinaryRoundTrip checks that Load(Dump(g)) has the same counts
// and adjacency as g, node by node.
func TestBinaryRoundTrip(t *testing.T) {
	offsets := []uint64{0, 2, 3, 4}
	targets := []uint64{1, 2, 2, 3}
	g := digraph.NewFromLists(offsets, targets)

	var buf bytes.Buffer
	require.NoError(t, digraph.Dump(g, &buf))

	got, err := digraph.Load(&buf)
	require.NoError(t, err)

	require.Equal(t, g.NodeCount(), got.NodeCount())
	require.Equal(t, g.RelCount(), got.RelCount())
	for v := uint64(0); v < uint64(g.NodeCount()); v++ {
		require.Equal(t, g.Out(v), got.Out(v), "Out(%d)", v)
		require.Equal(t, g.Inc(v), got.Inc(v), "Inc(%d)", v)
	}
}

func TestLoad_TruncatedInput(t *testing.T) {
	_, err := digraph.Load(bytes.NewReader([]byte{1, 2, 3}))
	require.ErrorIs(t, err, digraph.ErrTruncated)
}

func TestLoad_TrailingBytes(t *testing.T) {
	offsets := []uint64{0}
	targets := []uint64{}
	g := digraph.NewFromLists(offsets, targets)

	var buf bytes.Buffer
	require.NoError(t, digraph.Dump(g, &buf))
	buf.WriteByte(0xFF)

	_, err := digraph.Load(&buf)
	require.ErrorIs(t, err, digraph.ErrTrailingBytes)
}

// TestParseAdjacencyGraph_Equivalence checks that a graph parsed from
// the textual format has the same adjacency as the
// same graph built directly from in-memory offsets/targets.
func TestParseAdjacencyGraph_Equivalence(t *testing.T) {
	text := "AdjacencyGraph\n4\n4\n0\n2\n3\n4\n1\n2\n2\n3\n"
	parsed, err := digraph.ParseAdjacencyGraph(strings.NewReader(text))
	require.NoError(t, err)

	direct := digraph.NewFromLists([]uint64{0, 2, 3, 4}, []uint64{1, 2, 2, 3})

	require.Equal(t, direct.NodeCount(), parsed.NodeCount())
	require.Equal(t, direct.RelCount(), parsed.RelCount())
	for v := uint64(0); v < uint64(direct.NodeCount()); v++ {
		require.Equal(t, direct.Out(v), parsed.Out(v))
		require.Equal(t, direct.Inc(v), parsed.Inc(v))
	}
}

func TestParseAdjacencyGraph_BadHeader(t *testing.T) {
	_, err := digraph.ParseAdjacencyGraph(strings.NewReader("NotAGraph\n0\n0\n"))
	require.ErrorIs(t, err, digraph.ErrBadHeader)
}

func TestParseAdjacencyGraph_Truncated(t *testing.T) {
	_, err := digraph.ParseAdjacencyGraph(strings.NewReader("AdjacencyGraph\n2\n1\n0\n"))
	require.ErrorIs(t, err, digraph.ErrTruncated)
}

func TestParseAdjacencyGraph_MalformedNumber(t *testing.T) {
	_, err := digraph.ParseAdjacencyGraph(strings.NewReader("AdjacencyGraph\nNaN\n0\n"))
	require.ErrorIs(t, err, digraph.ErrMalformedNumber)
}
