package graph

import "fmt"

// FromAdjacencyMatrix builds a Graph from a dense N×N matrix of nonnegative
// integers. matrix[i][j] is the weight of the edge from node i to node j; a
// zero entry means no edge. Diagonal entries (self-loops) are valid and
// meaningful.
//
// Validation, in order:
//  1. every row must have length N (ErrNotSquare).
//  2. every entry must be >= 0 (ErrNegativeWeight).
//  3. after construction, every node must have at least one incident edge
//     (ErrIsolatedNode) — the fit engine has no way to re-home a node with
//     no edges once its area dissolves, so this is rejected up front.
//
// Post-conditions (checked by callers' tests, not re-verified at runtime):
// OutDegree(i) equals the sum of row i; InDegree(i) equals the sum of
// column i; the sum of all edge weights equals the sum of all matrix
// entries.
func FromAdjacencyMatrix(matrix [][]int64) (*Graph, error) {
	n := len(matrix)
	for i, row := range matrix {
		if len(row) != n {
			return nil, fmt.Errorf("graph: row %d has length %d, want %d: %w", i, len(row), n, ErrNotSquare)
		}
	}

	g := &Graph{
		nodes:    make([]Node, n),
		inEdges:  make([][]int, n),
		outEdges: make([][]int, n),
	}
	for i := range g.nodes {
		g.nodes[i] = Node{ID: i}
	}

	// Row-major scan: this fixes insertion order for Edges(id, dir).
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w := matrix[i][j]
			if w < 0 {
				return nil, fmt.Errorf("graph: entry (%d,%d)=%d is negative: %w", i, j, w, ErrNegativeWeight)
			}
			if w == 0 {
				continue
			}
			ei := len(g.edges)
			g.edges = append(g.edges, Edge{Source: i, Target: j, Weight: w})
			g.nodes[i].OutDegree += w
			g.nodes[j].InDegree += w
			g.outEdges[i] = append(g.outEdges[i], ei)
			g.inEdges[j] = append(g.inEdges[j], ei)
		}
	}

	for i := 0; i < n; i++ {
		if g.nodes[i].InDegree == 0 && g.nodes[i].OutDegree == 0 {
			return nil, fmt.Errorf("graph: node %d: %w", i, ErrIsolatedNode)
		}
	}

	return g, nil
}
