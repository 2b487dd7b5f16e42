package area

import (
	"sort"

	"github.com/jwhandley/ttwa/graph"
)

// unassigned marks a node as not currently belonging to any area; it is
// only ever observed transiently, between a dissolution and the end of its
// reassignment pass (spec.md §3's "no sentinels visible at iteration
// boundaries" invariant).
const unassigned = -1

// SelfContainmentPolicy selects how an area's two self-containment
// fractions — supply-side (self_containment/flow_from_area) and
// demand-side (self_containment/flow_to_area) — combine into the single
// index the x-score uses. See the package doc for why this is a policy
// rather than a hardcoded choice.
type SelfContainmentPolicy int

const (
	// CombinatorMax takes the larger of the two fractions. This is the
	// default and matches spec.md §4.2.4's formula.
	CombinatorMax SelfContainmentPolicy = iota
	// CombinatorMin takes the smaller of the two fractions, matching the
	// reference implementation this package's algorithm was distilled
	// from.
	CombinatorMin
)

// Option customizes a NewAreaCollection call.
type Option func(*AreaCollection)

// WithSelfContainmentPolicy overrides the default self-containment
// combinator (CombinatorMax).
func WithSelfContainmentPolicy(policy SelfContainmentPolicy) Option {
	return func(ac *AreaCollection) { ac.policy = policy }
}

// Area is one cell of the current partition: a set of member node ids plus
// three aggregates maintained incrementally across the run (spec.md §3).
type Area struct {
	id      int
	members map[int]struct{}

	flowToArea      int64 // Σ in_degree(v) for v in members: total demand
	flowFromArea    int64 // Σ out_degree(v) for v in members: total supply
	selfContainment int64 // internal flow, self-loops counted once
}

// ID returns the area's stable identifier. Area ids are never reused once
// an area is dissolved.
func (a *Area) ID() int { return a.id }

// Size returns the number of member nodes.
func (a *Area) Size() int { return len(a.members) }

// Members returns the member node ids in ascending order.
func (a *Area) Members() []int {
	out := make([]int, 0, len(a.members))
	for v := range a.members {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// FlowToArea returns the cached demand aggregate.
func (a *Area) FlowToArea() int64 { return a.flowToArea }

// FlowFromArea returns the cached supply aggregate.
func (a *Area) FlowFromArea() int64 { return a.flowFromArea }

// SelfContainment returns the cached internal-flow aggregate.
func (a *Area) SelfContainment() int64 { return a.selfContainment }

// SelfContainmentFraction returns self_containment / max(flow_to_area,
// flow_from_area), the ratio reported in the external area partition
// output (spec.md §6).
func (a *Area) SelfContainmentFraction() float64 {
	denom := a.flowToArea
	if a.flowFromArea > denom {
		denom = a.flowFromArea
	}
	if denom == 0 {
		return 0
	}
	return float64(a.selfContainment) / float64(denom)
}

// AreaCollection owns the current partition over a graph.Graph: a slotted
// sequence of areas indexed by area id (absent slots are nil and never
// reused) plus the node→area map. The Graph is held by reference and is
// never mutated by AreaCollection.
type AreaCollection struct {
	g          *graph.Graph
	areas      []*Area // areas[id] == nil means the area was dissolved
	nodeToArea []int
	policy     SelfContainmentPolicy
}

// NewAreaCollection builds the initial partition: one singleton area per
// node, area id equal to node id (spec.md §4.2.1).
func NewAreaCollection(g *graph.Graph, opts ...Option) *AreaCollection {
	n := g.N()
	ac := &AreaCollection{
		g:          g,
		areas:      make([]*Area, n),
		nodeToArea: make([]int, n),
		policy:     CombinatorMax,
	}
	for _, opt := range opts {
		opt(ac)
	}

	for v := 0; v < n; v++ {
		a := &Area{
			id:           v,
			members:      map[int]struct{}{v: {}},
			flowToArea:   g.InDegree(v),
			flowFromArea: g.OutDegree(v),
		}
		for _, e := range g.OutEdges(v) {
			if e.Target == v {
				a.selfContainment += e.Weight
			}
		}
		ac.areas[v] = a
		ac.nodeToArea[v] = v
	}
	return ac
}

// Graph returns the immutable graph this collection partitions.
func (ac *AreaCollection) Graph() *graph.Graph { return ac.g }

// NodeArea returns the id of the area currently containing node v, or
// unassigned if called mid-reassignment (never true at a public API call
// boundary outside of Fit itself).
func (ac *AreaCollection) NodeArea(v int) int { return ac.nodeToArea[v] }

// Area returns the area with the given id, or nil if it has been
// dissolved or the id is out of range.
func (ac *AreaCollection) Area(id int) *Area {
	if id < 0 || id >= len(ac.areas) {
		return nil
	}
	return ac.areas[id]
}

// PresentAreas returns the ids of all present areas in ascending order.
func (ac *AreaCollection) PresentAreas() []int {
	out := make([]int, 0, len(ac.areas))
	for id, a := range ac.areas {
		if a != nil {
			out = append(out, id)
		}
	}
	return out
}
