package graph

import "errors"

// Sentinel errors returned by FromAdjacencyMatrix. Callers should branch on
// these with errors.Is, never on the formatted message.
var (
	// ErrNotSquare indicates the adjacency matrix is not N×N.
	ErrNotSquare = errors.New("graph: adjacency matrix is not square")

	// ErrNegativeWeight indicates a negative entry in the adjacency matrix.
	ErrNegativeWeight = errors.New("graph: adjacency matrix has a negative entry")

	// ErrIsolatedNode indicates a node with zero in-degree and zero
	// out-degree: the fit engine has no edge to re-home it across once its
	// singleton or host area dissolves, so construction rejects the input
	// up front rather than failing deep inside a later Fit call.
	ErrIsolatedNode = errors.New("graph: node has no incident edges")
)
