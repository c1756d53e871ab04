// Package frontier implements the Ligra-style frontier transformation
// engine: the dual-representation NodeSubset, the direction-optimized
// RelationshipMap, and NodeMap/NodeFilter.
//
// A NodeSubset is a "frontier": the active set of node ids driving the
// next iteration of a vertex program. It has two representations, a
// sparse ordered list of member ids and a dense boolean bitmap, and
// converts between them on demand. RelationshipMap transforms a
// frontier edge-wise, choosing between a sparse push (iterate out-edges
// from frontier sources) and a dense pull (iterate every target, scan
// in-edges) based on the frontier's total estimated out-degree versus
// digraph.Graph.Threshold. NodeMap and NodeFilter transform a frontier
// vertex-wise, with NodeFilter producing a new frontier.
//
// All three primitives fan their work out over the parallel package
// and return only after every spawned task has completed.
package frontier
