// Package algorithms implements the three vertex programs driven by the
// frontier package's RelationshipMap/NodeMap/NodeFilter primitives over
// an immutable digraph.Graph: breadth-first search, connected
// components by label propagation, and PageRankDelta.
//
// # BFS — Breadth-First Search
//
// BFS explores the graph level by level from a single source, assigning
// each reachable node a depth and a parent. Each round pushes (or pulls,
// depending on RelationshipMap's direction choice) across the current
// frontier's out-edges; a node is claimed by the first source that
// reaches it via an atomic compare-and-swap on its parent slot.
//
// Time complexity: O(V + E). Memory: O(V).
//
// # Connected Components
//
// CC assigns every node the minimum node id among the nodes that can
// reach it, by repeated label relaxation: every round, every active node
// pushes its current label across its out-edges, relaxing any neighbor
// whose label is larger (a parallel write-min). Iteration continues
// until no label changes. Labels travel only along edge direction, so
// they identify weakly connected components only when each component's
// minimum node can reach all of its nodes (for example on graphs that
// store every edge in both directions).
//
// Time complexity: O((V + E) * d) where d is the graph's diameter in the
// worst case. Memory: O(V).
//
// # PageRankDelta
//
// PageRankDelta computes an approximation of the PageRank stationary
// distribution by propagating incremental rank mass (delta) rather than
// full rank values each round, so only vertices whose delta exceeds a
// threshold remain active. See pagerank.go for the damping, tolerance,
// and per-vertex activation threshold this module uses.
package algorithms
