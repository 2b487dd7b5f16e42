package area

import (
	"errors"
	"fmt"
)

// ErrInvalidMaxIter indicates a negative max_iter was passed to Fit; the
// contract requires a non-negative ceiling (spec.md §4.2's Fit contract).
var ErrInvalidMaxIter = errors.New("area: max_iter must be non-negative")

// degenerateAreaPanic fires if a present area is ever found with a zero
// supply or demand aggregate. This is unreachable given
// graph.FromAdjacencyMatrix rejects isolated nodes at construction
// (spec.md §7: DegenerateArea is "asserted internally"), so it panics
// rather than returning a sentinel error.
func degenerateAreaPanic(areaID int, flowToArea, flowFromArea int64) {
	panic(fmt.Sprintf("area: degenerate area %d has flow_to_area=%d flow_from_area=%d",
		areaID, flowToArea, flowFromArea))
}

// invariantViolationPanic fires when self_containment exceeds
// min(flow_to_area, flow_from_area) after an incremental update — a
// corruption of the load-bearing invariant in spec.md §4.2.5.
func invariantViolationPanic(areaID int, selfContainment, flowToArea, flowFromArea int64) {
	panic(fmt.Sprintf("area: invariant violated for area %d: self_containment=%d exceeds min(flow_to_area=%d, flow_from_area=%d)",
		areaID, selfContainment, flowToArea, flowFromArea))
}
