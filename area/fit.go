package area

import "sort"

// Partition is the result of a Fit call: the present areas at the point
// Fit stopped, plus whether it stopped because max_iter was reached rather
// than because every area cleared the threshold (spec.md §7's IterLimit
// kind — not an error, a flag).
type Partition struct {
	Areas             []*Area
	Iterations        int
	IterLimitReached  bool
}

// Fit mutates ac until every present area has x(A) >= Threshold, no present
// area can be improved by dissolution, or maxIter dissolution rounds have
// elapsed — whichever comes first (spec.md §4.2). maxIter must be
// non-negative; maxIter == 0 returns the current partition without
// dissolving anything, even if its worst score is below threshold (spec.md
// §8 scenario 5).
func (ac *AreaCollection) Fit(maxIter int) (Partition, error) {
	if maxIter < 0 {
		return Partition{}, ErrInvalidMaxIter
	}

	iter := 0
	iterLimitReached := false
	locked := make(map[int]struct{})

	for {
		worstID, worstScore, any := ac.selectWorst(locked)
		if !any || worstScore >= Threshold {
			break
		}

		// A worst area with no member touching any other area is a
		// maximal self-contained component: dissolving it would strand
		// every one of its members, since none has a surviving
		// neighbouring area to re-home into. That is "cannot improve",
		// not a dissolution failure (spec.md §8 scenario 1) — lock it out
		// of further consideration and keep looking at what remains.
		if ac.isSelfContained(ac.areas[worstID]) {
			locked[worstID] = struct{}{}
			continue
		}

		if iter >= maxIter {
			iterLimitReached = true
			break
		}
		ac.dissolveAndReassign(worstID)
		iter++
	}

	return Partition{
		Areas:            ac.snapshotAreas(),
		Iterations:       iter,
		IterLimitReached: iterLimitReached,
	}, nil
}

// selectWorst returns the id and score of the present, non-locked area with
// the smallest x(A), ties broken by smallest id (guaranteed by scanning ids
// in ascending order and only replacing the incumbent on strict
// improvement). any is false iff no eligible area is present.
func (ac *AreaCollection) selectWorst(locked map[int]struct{}) (id int, score float64, any bool) {
	best := 0.0
	bestID := -1
	for i, a := range ac.areas {
		if a == nil {
			continue
		}
		if _, ok := locked[i]; ok {
			continue
		}
		s := ac.xScore(a)
		if !any || s < best {
			best = s
			bestID = i
			any = true
		}
	}
	return bestID, best, any
}

// isSelfContained reports whether every member of a has every neighbour
// (in either direction) also inside a — i.e. a is a maximal self-contained
// component of the graph, so there is no surviving area any of its members
// could be re-homed into if a were dissolved.
func (ac *AreaCollection) isSelfContained(a *Area) bool {
	for v := range a.members {
		for _, u := range ac.g.Neighbors(v) {
			if ac.nodeToArea[u] != a.id {
				return false
			}
		}
	}
	return true
}

// dissolveAndReassign implements spec.md §4.2.2 steps 3-4: dissolve the
// area at dissolvedID and re-home each of its former members.
func (ac *AreaCollection) dissolveAndReassign(dissolvedID int) {
	worst := ac.areas[dissolvedID]
	members := worst.Members() // ascending node ids, snapshotted before removal

	for _, v := range members {
		ac.remove(v, worst)
	}
	ac.areas[dissolvedID] = nil

	var stragglers []int
	for _, v := range members {
		candidates := ac.candidateAreas(v, dissolvedID)
		bestArea, bestScore := -1, 0.0
		for _, cid := range candidates {
			t := ac.tij2(v, ac.areas[cid])
			if t > bestScore {
				bestScore = t
				bestArea = cid
			}
		}
		if bestArea == -1 {
			stragglers = append(stragglers, v)
			continue
		}
		ac.add(v, ac.areas[bestArea])
	}

	ac.attachStragglers(stragglers)
}

// candidateAreas builds C(v) from spec.md §4.2.2 step 4a: the distinct,
// non-dissolved, non-unassigned areas of v's neighbours, in ascending id
// order so that the caller's max-with-smallest-id-tiebreak scan is correct
// by construction.
func (ac *AreaCollection) candidateAreas(v, dissolvedID int) []int {
	seen := make(map[int]struct{})
	var out []int
	for _, u := range ac.g.Neighbors(v) {
		aid := ac.nodeToArea[u]
		if aid == unassigned || aid == dissolvedID {
			continue
		}
		if _, ok := seen[aid]; ok {
			continue
		}
		seen[aid] = struct{}{}
		out = append(out, aid)
	}
	sort.Ints(out)
	return out
}

// attachStragglers implements the deferred-reassignment rule of spec.md
// §4.2.2 step 4c for nodes whose candidate set was empty or scored zero
// against every candidate: each is attached to the smallest-id area
// containing any of its in- or out-neighbours, iterated to a fixed point
// since one straggler's neighbour may itself be a straggler resolved
// earlier in the same pass.
//
// If a residual group of stragglers is mutually connected only to each
// other — so that no member ever gains a resolved neighbour — no existing
// area can legitimately absorb them, since minting a new area is
// forbidden (spec.md §3's lifecycle rule). Graph construction already
// rejects zero-degree nodes, so this can only happen for a fully
// self-contained component that was itself the dissolved area; spec.md
// §4.2.2 step 4c calls for a fatal error in the analogous
// no-edges-at-all case, and this package treats a deadlocked residual
// component the same way.
func (ac *AreaCollection) attachStragglers(stragglers []int) {
	remaining := stragglers
	for len(remaining) > 0 {
		progressed := false
		var next []int
		for _, v := range remaining {
			target := -1
			for _, u := range ac.g.Neighbors(v) {
				aid := ac.nodeToArea[u]
				if aid == unassigned {
					continue
				}
				if target == -1 || aid < target {
					target = aid
				}
			}
			if target == -1 {
				next = append(next, v)
				continue
			}
			ac.add(v, ac.areas[target])
			progressed = true
		}
		if !progressed {
			panic("area: dissolution left a residual component with no surviving neighbouring area")
		}
		remaining = next
	}
}

// snapshotAreas returns the present areas in ascending id order.
func (ac *AreaCollection) snapshotAreas() []*Area {
	out := make([]*Area, 0, len(ac.areas))
	for _, a := range ac.areas {
		if a != nil {
			out = append(out, a)
		}
	}
	return out
}
