// Package digraph provides the immutable, compressed-sparse-row graph
// store that backs the ligra frontier engine.
//
// A Graph is a dual CSR adjacency structure: an out-adjacency list (for
// each source, the contiguous slice of target ids) and an in-adjacency
// list (for each target, the contiguous slice of source ids). Node ids
// are dense integers in [0, NodeCount). Once built, a Graph is never
// mutated again: there is no lock to take, because there is nothing to
// protect. All exported methods are safe to call concurrently from any
// number of goroutines for the lifetime of the Graph.
//
// Graphs are built three ways:
//
//   - NewFromLists, from caller-supplied out-edge offsets/targets; the
//     in-adjacency list is derived by a bucket sort.
//   - Load, from the binary on-disk format, which
//     already stores both directions.
//   - ParseAdjacencyGraph, from the textual "AdjacencyGraph" format; the
//     in-adjacency list is derived the same way as NewFromLists.
package digraph
