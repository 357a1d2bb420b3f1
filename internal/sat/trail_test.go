package sat

import "testing"

func TestTrailDecisionAndImplication(t *testing.T) {
	assign := newAssignmentMap(3)
	trail := newTrail(assign)

	if !trail.PushDecision(1, True) {
		t.Fatal("PushDecision(1, True) = false")
	}
	if trail.CurrentLevel() != 1 {
		t.Fatalf("CurrentLevel() = %d, want 1", trail.CurrentLevel())
	}

	reason := newClause([]Literal{-1, 2}, false)
	trail.PushImplication(2, True, reason)

	assignments := trail.AssignmentsAt(1)
	if len(assignments) != 2 || !assignments[0].IsDecision || assignments[1].IsDecision {
		t.Fatalf("AssignmentsAt(1) = %+v, want decision then implication", assignments)
	}

	if lvl, ok := trail.LevelOf(2); !ok || lvl != 1 {
		t.Errorf("LevelOf(2) = (%d, %v), want (1, true)", lvl, ok)
	}
}

func TestTrailPushDecisionFailsIfAlreadyAssigned(t *testing.T) {
	assign := newAssignmentMap(1)
	trail := newTrail(assign)
	trail.PushDecision(1, True)
	if trail.PushDecision(1, False) {
		t.Error("PushDecision on an already-assigned variable returned true")
	}
}

func TestTrailPopLevelNeverPopsLevelZero(t *testing.T) {
	assign := newAssignmentMap(1)
	trail := newTrail(assign)
	if popped := trail.PopLevel(); popped != nil {
		t.Errorf("PopLevel() on level 0 = %v, want nil", popped)
	}
	if trail.CurrentLevel() != 0 {
		t.Errorf("CurrentLevel() = %d, want 0", trail.CurrentLevel())
	}
}

func TestTrailPopLevelClearsAssignments(t *testing.T) {
	assign := newAssignmentMap(2)
	trail := newTrail(assign)
	trail.PushDecision(1, True)
	reason := newClause([]Literal{-1, 2}, false)
	trail.PushImplication(2, True, reason)

	trail.PopLevel()

	if assign.Value(1) != Unknown || assign.Value(2) != Unknown {
		t.Error("PopLevel did not clear assignments")
	}
	if trail.CurrentLevel() != 0 {
		t.Errorf("CurrentLevel() = %d, want 0", trail.CurrentLevel())
	}
}

func TestTrailReverseOrder(t *testing.T) {
	assign := newAssignmentMap(2)
	trail := newTrail(assign)
	trail.PushDecision(1, True)
	reason := newClause([]Literal{-1, 2}, false)
	trail.PushImplication(2, True, reason)

	var order []int
	trail.reverse(func(a Assignment) bool {
		order = append(order, a.Var)
		return true
	})
	want := []int{2, 1}
	for i, v := range want {
		if order[i] != v {
			t.Errorf("reverse order = %v, want %v", order, want)
		}
	}
}
