package parallel_test

import (
	"sort"
	"sync/atomic"
	"testing"

	"github.com/ligra-project/ligra/parallel"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestParVec_ComputesEachElement(t *testing.T) {
	out := parallel.ParVec(1000, func(i int) int { return i * i })
	for i, v := range out {
		require.Equal(t, i*i, v)
	}
}

func TestParVecWith_EachElementIndependent(t *testing.T) {
	var counter atomic.Int64
	out := parallel.ParVecWith(500, func() int64 { return counter.Add(1) })

	seen := append([]int64(nil), out...)
	sort.Slice(seen, func(i, j int) bool { return seen[i] < seen[j] })
	for i, v := range seen {
		require.EqualValues(t, i+1, v)
	}
}

func TestParForEach_VisitsEveryIndexExactlyOnce(t *testing.T) {
	n := 2000
	var hits []int32
	hits = make([]int32, n)
	parallel.ParForEach(n, func(i int) {
		atomic.AddInt32(&hits[i], 1)
	})
	for i, h := range hits {
		require.EqualValues(t, 1, h, "index %d visited %d times", i, h)
	}
}

func TestParSum_MatchesSequentialSum(t *testing.T) {
	xs := make([]uint64, 10000)
	for i := range xs {
		xs[i] = uint64(i)
	}

	var want uint64
	for _, x := range xs {
		want += x
	}

	require.Equal(t, want, parallel.ParSum(xs))
}

// TestParSum_MatchesGonumFloatsSum cross-checks the reduction against
// gonum's sequential floats.Sum as an independent reference.
func TestParSum_MatchesGonumFloatsSum(t *testing.T) {
	xs := make([]uint64, 4096)
	asFloat := make([]float64, len(xs))
	for i := range xs {
		xs[i] = uint64(i % 97)
		asFloat[i] = float64(xs[i])
	}

	want := floats.Sum(asFloat)
	require.Equal(t, want, float64(parallel.ParSum(xs)))
}

func TestParPrefixSum_IsExclusiveScan(t *testing.T) {
	xs := []uint64{3, 1, 4, 1, 5, 9, 2, 6}
	result, total := parallel.ParPrefixSum(xs)

	require.Len(t, result, len(xs))
	var running uint64
	for i, x := range xs {
		require.Equal(t, running, result[i], "result[%d]", i)
		running += x
	}
	require.Equal(t, running, total)
}

func TestParPrefixSum_Empty(t *testing.T) {
	result, total := parallel.ParPrefixSum(nil)
	require.Empty(t, result)
	require.EqualValues(t, 0, total)
}
