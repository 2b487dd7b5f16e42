package graph

// Graph is an immutable weighted directed multigraph over node indices
// 0..N-1. It is built once by FromAdjacencyMatrix and never mutated; all
// accessors are safe for concurrent reads.
type Graph struct {
	nodes    []Node
	edges    []Edge
	inEdges  [][]int // inEdges[v] = indices into edges targeting v
	outEdges [][]int // outEdges[v] = indices into edges sourced at v
}

// N returns the number of nodes.
func (g *Graph) N() int {
	return len(g.nodes)
}

// Node returns the Node at index id. id must be in [0, N()).
func (g *Graph) Node(id int) Node {
	return g.nodes[id]
}

// InDegree returns the sum of weights of edges targeting id.
func (g *Graph) InDegree(id int) int64 {
	return g.nodes[id].InDegree
}

// OutDegree returns the sum of weights of edges sourced at id.
func (g *Graph) OutDegree(id int) int64 {
	return g.nodes[id].OutDegree
}

// Edges returns the edges incident to id in the given direction, in
// insertion order (row-major scan of the adjacency matrix at construction
// time). The returned slice is a fresh copy; mutating it does not affect
// the Graph.
func (g *Graph) Edges(id int, dir Direction) []Edge {
	var idxs []int
	if dir == DirIn {
		idxs = g.inEdges[id]
	} else {
		idxs = g.outEdges[id]
	}
	out := make([]Edge, len(idxs))
	for i, ei := range idxs {
		out[i] = g.edges[ei]
	}
	return out
}

// InEdges is shorthand for Edges(id, DirIn).
func (g *Graph) InEdges(id int) []Edge {
	return g.Edges(id, DirIn)
}

// OutEdges is shorthand for Edges(id, DirOut).
func (g *Graph) OutEdges(id int) []Edge {
	return g.Edges(id, DirOut)
}

// Neighbors returns the set of distinct node ids reachable from id via
// either an in-edge or an out-edge, excluding id itself (a self-loop does
// not make a node its own neighbour for re-homing purposes). Order is
// out-edges then in-edges, each in insertion order, with duplicates
// removed on first occurrence.
func (g *Graph) Neighbors(id int) []int {
	seen := make(map[int]struct{}, len(g.outEdges[id])+len(g.inEdges[id]))
	out := make([]int, 0, len(g.outEdges[id])+len(g.inEdges[id]))
	add := func(n int) {
		if n == id {
			return
		}
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	for _, ei := range g.outEdges[id] {
		add(g.edges[ei].Target)
	}
	for _, ei := range g.inEdges[id] {
		add(g.edges[ei].Source)
	}
	return out
}

// EdgeCount returns the total number of edges (including self-loops).
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// TotalWeight returns the sum of all edge weights.
func (g *Graph) TotalWeight() int64 {
	var total int64
	for _, e := range g.edges {
		total += e.Weight
	}
	return total
}
