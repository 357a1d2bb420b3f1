package sat

import "testing"

func TestHeuristicOrderByDescendingFrequency(t *testing.T) {
	cnf := NewCNF(3)
	// var 1 occurs 3 times, var 2 occurs 1 time, var 3 occurs 2 times.
	_ = cnf.AddClause([]int{1, 2, 3})
	_ = cnf.AddClause([]int{1, -3})
	_ = cnf.AddClause([]int{-1})

	h := newHeuristic(cnf)
	want := []int{1, 3, 2}
	for i, v := range want {
		if h.order[i] != v {
			t.Errorf("order[%d] = %d, want %d (order=%v)", i, h.order[i], v, h.order)
		}
	}
}

func TestHeuristicAntiLoopGuard(t *testing.T) {
	cnf := NewCNF(2)
	_ = cnf.AddClause([]int{1, 2})
	h := newHeuristic(cnf)
	vsids := newVSIDSCounters(2)
	assign := newAssignmentMap(2)

	v1, _, ok := h.decide(assign, vsids)
	if !ok || v1 != 1 {
		t.Fatalf("first decide() = (%d, %v), want (1, true)", v1, ok)
	}

	// Simulate a backtrack that unassigned v1 and marked the guard.
	assign.clear(v1)
	h.markBacktrack()

	v2, _, ok := h.decide(assign, vsids)
	if !ok || v2 == v1 {
		t.Fatalf("decide() after backtrack re-picked %d, want a variable other than %d", v2, v1)
	}
}

func TestHeuristicGuardReleasedWhenNoAlternative(t *testing.T) {
	cnf := NewCNF(1)
	_ = cnf.AddClause([]int{1})
	h := newHeuristic(cnf)
	vsids := newVSIDSCounters(1)
	assign := newAssignmentMap(1)

	h.lastChosenVar = 1
	h.blockLastVar = true

	v, _, ok := h.decide(assign, vsids)
	if !ok || v != 1 {
		t.Errorf("decide() = (%d, %v), want (1, true) once the guard has no alternative", v, ok)
	}
}
