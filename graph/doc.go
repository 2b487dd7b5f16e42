// Package graph provides an immutable, weighted, directed multigraph over
// integer node indices 0..N-1.
//
// A Graph is built once from a dense adjacency matrix via FromAdjacencyMatrix
// and never mutated afterwards. It precomputes, per node, the in-degree and
// out-degree (sums of incident edge weights) and two inverted edge indices
// (in-edges and out-edges). Node is an O(1) lookup; Edges copies the
// node's precomputed edge list into a new slice, O(degree) with no scan of
// the full edge set — the area package leans on this during the fit loop,
// where per-node edge enumeration happens on every reassignment.
package graph
