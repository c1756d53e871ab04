// Command-less root of the ligra module: a shared-memory parallel
// graph-processing engine in the style of Ligra (Shun & Blelloch).
//
// Given a directed graph stored as dual CSR adjacency lists (out- and
// in-neighbors), the engine repeatedly transforms an active node subset
// — the frontier — through two primitives:
//
//   - frontier.RelationshipMap, an edge-wise transform that picks
//     between a sparse push (iterate out-edges from frontier sources)
//     and a dense pull (scan every node's in-edges) based on estimated
//     work versus digraph.Graph.Threshold;
//   - frontier.NodeMap / frontier.NodeFilter, vertex-wise transforms
//     over the current frontier.
//
// Three vertex programs are built on these primitives in the algorithms
// package: breadth-first search, connected components by label
// propagation, and delta-based PageRank. The digraph package is the
// immutable graph store and binary/textual I/O; parallel and xatomic
// are the fork-join and atomic-float building blocks the primitives and
// algorithms share; cliconfig and cmd/ligra are the CLI layer.
package ligra
