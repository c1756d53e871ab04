package algorithms

import (
	"math"

	"github.com/ligra-project/ligra/digraph"
	"github.com/ligra-project/ligra/frontier"
	"github.com/ligra-project/ligra/xatomic"
)

const (
	// damping is Ligra's PageRankDelta damping factor d.
	damping = 0.85
	// alpha is 1 - d, the teleportation mass.
	alpha = 1 - damping
	// convergenceTolerance bounds the total per-round delta mass; once
	// the previous round's accumulated delta falls at or below this,
	// the driver stops.
	convergenceTolerance = 1e-7
	// deltaThreshold is the per-node relative threshold a node's new
	// delta must exceed (relative to its current rank) to remain
	// active in the next round.
	deltaThreshold = 1e-2
	// defaultMaxIterations bounds the loop when PageRankOptions does
	// not set one.
	defaultMaxIterations = 100
)

// PageRankOptions configures a PageRankDelta run.
type PageRankOptions struct {
	// MaxIterations caps the number of rounds. Zero means
	// defaultMaxIterations.
	MaxIterations int
}

// PageRankResult holds the outcome of a PageRankDelta run.
type PageRankResult struct {
	// Rank[v] is v's approximate PageRank; these sum to approximately
	// 1 across all v at convergence.
	Rank []float64
	// Iterations is the number of rounds actually run.
	Iterations int
}

// PageRankDelta computes an approximate PageRank distribution by
// propagating incremental rank mass (delta) instead of recomputing
// every node's full rank each round, so only nodes whose delta still
// exceeds deltaThreshold stay active. Constants follow Ligra's
// PageRankDelta: damping 0.85, convergence tolerance 1e-7, per-node
// delta threshold 1e-2.
//
// The first-round finalization uses the normalized teleport term
// alpha/N (rather than a bare alpha), which keeps the total rank mass
// at 1 and lets symmetric graphs converge to the uniform distribution.
func PageRankDelta(graph *digraph.Graph, opts *PageRankOptions) *PageRankResult {
	n := graph.NodeCount()
	maxIterations := defaultMaxIterations
	if opts != nil && opts.MaxIterations > 0 {
		maxIterations = opts.MaxIterations
	}

	deltas := make([]xatomic.Float64, n)
	neighborsRank := make([]xatomic.Float64, n)
	pageRank := make([]float64, n)
	oneOverN := 1.0 / float64(n)
	for v := range deltas {
		deltas[v].Store(oneOverN)
	}

	push := &prPushMapper{graph: graph, deltas: deltas, neighborsRank: neighborsRank}

	iterations := 0
	f := frontier.Full(n)

	touched := frontier.RelationshipMap(graph, f, push)
	var sumOfDelta xatomic.Float64
	finalize := &prFinalizeMapper{
		deltas:        deltas,
		neighborsRank: neighborsRank,
		pageRank:      pageRank,
		sumOfDelta:    &sumOfDelta,
		oneOverN:      oneOverN,
		firstRound:    true,
	}
	f = frontier.NodeFilter(touched, finalize)
	iterations++

	for iterations < maxIterations && !f.IsEmpty() && sumOfDelta.Load() > convergenceTolerance {
		sumOfDelta.Store(0)

		touched = frontier.RelationshipMap(graph, f, push)
		finalize = &prFinalizeMapper{
			deltas:        deltas,
			neighborsRank: neighborsRank,
			pageRank:      pageRank,
			sumOfDelta:    &sumOfDelta,
			oneOverN:      oneOverN,
			firstRound:    false,
		}
		f = frontier.NodeFilter(touched, finalize)
		iterations++
	}

	return &PageRankResult{Rank: pageRank, Iterations: iterations}
}

// prPushMapper accumulates each source's delta-share into its targets'
// neighborsRank accumulator, reporting true only for the edge that
// finds neighborsRank[target] still at zero (the first contribution
// this round), so relationship_map's output frontier names exactly the
// set of touched targets without duplicates.
type prPushMapper struct {
	frontier.BaseRelationshipMapper
	graph         *digraph.Graph
	deltas        []xatomic.Float64
	neighborsRank []xatomic.Float64
}

func (m *prPushMapper) Update(source, target uint64) bool {
	share := m.deltas[source].Load() / float64(m.graph.OutDegree(source))
	return addReportingFirst(&m.neighborsRank[target], share)
}

func (m *prPushMapper) CheckAlwaysReturnsTrue() bool { return true }

// addReportingFirst atomically adds delta to f and reports whether f
// was exactly zero immediately before this add.
func addReportingFirst(f *xatomic.Float64, delta float64) bool {
	for {
		old := f.Load()
		if f.CompareAndSwap(old, old+delta) {
			return old == 0
		}
	}
}

// prFinalizeMapper is the node_filter step applied to the touched
// targets from a round's push: it swaps neighborsRank[v] into the new
// rank increment, folds it into pageRank[v], stores the net delta for
// the next push, accumulates |delta| into sumOfDelta, and reports
// whether v should remain active.
//
// On the first round the increment carries the alpha/N teleport term,
// and the stored delta subtracts the 1/N mass every node was seeded
// with, so the next round propagates only the change in rank.
type prFinalizeMapper struct {
	frontier.BaseNodeMapper
	deltas        []xatomic.Float64
	neighborsRank []xatomic.Float64
	pageRank      []float64
	sumOfDelta    *xatomic.Float64
	oneOverN      float64
	firstRound    bool
}

func (m *prFinalizeMapper) Update(v uint64) bool {
	contribution := m.neighborsRank[v].Swap(0)

	increment := damping * contribution
	if m.firstRound {
		increment += alpha * m.oneOverN
	}
	m.pageRank[v] += increment

	newDelta := increment
	if m.firstRound {
		newDelta -= m.oneOverN
	}

	m.deltas[v].Store(newDelta)
	m.sumOfDelta.Add(math.Abs(newDelta))

	return math.Abs(newDelta) > deltaThreshold*m.pageRank[v]
}
