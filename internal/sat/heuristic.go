package sat

import "sort"

// Heuristic picks the next decision variable from a fixed order established
// at construction time (descending frequency of occurrence in the original
// formula, ties broken by ascending variable ID) plus an anti-loop guard
// that keeps VSIDS polarity from re-picking the variable a backtrack just
// undid.
//
// This uses a fixed enumeration order that is never dynamically
// reordered rather than an activity-ordered heap, so
// github.com/rhartert/yagh is put to work instead on the ReduceDB
// cleanup in reduce.go.
type Heuristic struct {
	order []int // fixed variable order, most-frequent first

	lastChosenVar int  // 0 means "none yet"
	blockLastVar  bool // last_decision_caused_backtrack
}

// newHeuristic computes the fixed order from cnf's clause set.
func newHeuristic(cnf *CNF) *Heuristic {
	counts := make([]int, cnf.NumVars+1)
	for _, clause := range cnf.Clauses {
		for _, lit := range clause {
			v := lit
			if v < 0 {
				v = -v
			}
			counts[v]++
		}
	}
	order := make([]int, cnf.NumVars)
	for i := range order {
		order[i] = i + 1
	}
	sort.Slice(order, func(i, j int) bool {
		vi, vj := order[i], order[j]
		if counts[vi] != counts[vj] {
			return counts[vi] > counts[vj]
		}
		return vi < vj
	})
	return &Heuristic{order: order}
}

// resetAntiLoop clears both halves of the anti-loop guard: a restart
// resets both to unset, since the variable a restart backtracks away from
// is no longer the one the next decision should avoid re-picking.
func (h *Heuristic) resetAntiLoop() {
	h.lastChosenVar = 0
	h.blockLastVar = false
}

// markBacktrack sets the anti-loop flag after a learn-and-backtrack, so the
// next decision skips the variable that was just unwound.
func (h *Heuristic) markBacktrack() {
	h.blockLastVar = true
}

// decide chooses the next unassigned variable and its polarity. It returns
// ok=false only if every variable is already assigned, which callers must
// not encounter given the Solve driver's precondition that at least one
// variable remains unassigned.
func (h *Heuristic) decide(assign *AssignmentMap, vsids *VSIDSCounters) (v int, value LBool, ok bool) {
	chosen := h.pick(assign, true)
	if chosen == 0 {
		// Guard release: no alternative unassigned variable exists besides
		// the one the guard is blocking, so allow it back rather than
		// reporting no decision is possible.
		chosen = h.pick(assign, false)
	}
	if chosen == 0 {
		return 0, Unknown, false
	}
	h.lastChosenVar = chosen
	h.blockLastVar = false
	return chosen, Lift(vsids.Polarity(chosen)), true
}

// pick scans the fixed order for the first unassigned variable, skipping
// lastChosenVar when respectGuard is true and the guard is active.
func (h *Heuristic) pick(assign *AssignmentMap, respectGuard bool) int {
	for _, cand := range h.order {
		if _, _, _, assigned := assign.Get(cand); assigned {
			continue
		}
		if respectGuard && h.blockLastVar && cand == h.lastChosenVar {
			continue
		}
		return cand
	}
	return 0
}
