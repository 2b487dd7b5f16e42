package area

// add inserts v into area A, updating its cached aggregates per spec.md
// §4.2.5. v must not already be a member of A.
func (ac *AreaCollection) add(v int, a *Area) {
	a.members[v] = struct{}{}
	a.flowToArea += ac.g.InDegree(v)
	a.flowFromArea += ac.g.OutDegree(v)

	// Out-edges of v whose target is now in A. Evaluated after v was
	// inserted above, so a self-loop (target == v) is counted here
	// exactly once.
	a.selfContainment += ac.sumOutToMembers(v, a.members)
	// In-edges of v whose source is in A, excluding source == v: that
	// self-loop was already counted by the out-edge term above.
	a.selfContainment += ac.sumInFromMembers(v, a.members, true)

	ac.nodeToArea[v] = a.id
	ac.assertInvariants(a)
}

// remove takes v out of area A, updating its cached aggregates per
// spec.md §4.2.5. The Σ terms are computed while v is still a member of A
// (mirroring add's post-insertion view), then the aggregates are
// decremented and finally v is removed from the member set.
func (ac *AreaCollection) remove(v int, a *Area) {
	outSum := ac.sumOutToMembers(v, a.members)
	inSum := ac.sumInFromMembers(v, a.members, true)
	a.selfContainment -= outSum + inSum

	a.flowToArea -= ac.g.InDegree(v)
	a.flowFromArea -= ac.g.OutDegree(v)

	delete(a.members, v)
	ac.nodeToArea[v] = unassigned

	if len(a.members) > 0 {
		ac.assertInvariants(a)
	}
}

// sumOutToMembers sums the weight of v's out-edges whose target is a
// member of the given set.
func (ac *AreaCollection) sumOutToMembers(v int, members map[int]struct{}) int64 {
	var total int64
	for _, e := range ac.g.OutEdges(v) {
		if _, ok := members[e.Target]; ok {
			total += e.Weight
		}
	}
	return total
}

// sumInFromMembers sums the weight of v's in-edges whose source is a
// member of the given set. If excludeSelf is true, an in-edge with
// source == v (the self-loop) is skipped.
func (ac *AreaCollection) sumInFromMembers(v int, members map[int]struct{}, excludeSelf bool) int64 {
	var total int64
	for _, e := range ac.g.InEdges(v) {
		if excludeSelf && e.Source == v {
			continue
		}
		if _, ok := members[e.Source]; ok {
			total += e.Weight
		}
	}
	return total
}

// assertInvariants checks the single load-bearing invariant from
// spec.md §7: self_containment must never exceed min(flow_to_area,
// flow_from_area). A violation means aggregate maintenance has corrupted
// its own state and is an internal bug, not a user-facing error.
func (ac *AreaCollection) assertInvariants(a *Area) {
	min := a.flowToArea
	if a.flowFromArea < min {
		min = a.flowFromArea
	}
	if a.selfContainment > min {
		invariantViolationPanic(a.id, a.selfContainment, a.flowToArea, a.flowFromArea)
	}
}
