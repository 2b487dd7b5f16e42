// Package area implements the iterative agglomerative refinement algorithm
// ("fit") that partitions a graph.Graph into travel-to-work areas: each
// present Area exceeds the size and self-containment thresholds of the
// official TTWA methodology, unless the fit loop has been cut short by an
// iteration ceiling or the area is a self-contained component that no
// dissolution can improve (such an area is kept as it is).
//
// AreaCollection owns the current partition — a slotted sequence of Areas
// indexed by area id plus a node→area map — and is the sole mutable state
// in this package; graph.Graph is held by reference and never mutated.
// Fit repeatedly dissolves the worst-scoring present area and re-homes its
// members using a gravity-style attachment index (tij2) restricted to
// candidate areas reachable via a direct edge, avoiding a full scan of all
// present areas on every reassignment.
//
// Open question, resolved here rather than left implicit: the methodology
// does not say whether an area's self-containment should be judged from the
// supply side (self-containment / flow-from-area) or the demand side
// (self-containment / flow-to-area). This package takes the maximum of the
// two by default (CombinatorMax); the alternative used by the reference
// implementation this was distilled from, CombinatorMin, is available via
// WithSelfContainmentPolicy for callers who want to reproduce it.
package area
