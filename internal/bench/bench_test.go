package bench

import (
	"testing"

	"github.com/lucidsat/seqsat/internal/sat"
)

func TestPigeonHoleIsUnsat(t *testing.T) {
	cnf := PigeonHole(3, 2)
	s := sat.NewSolver(cnf, sat.DefaultConfig, nil)
	v := s.Solve()
	if v.Status != sat.StatusUnsat {
		t.Errorf("PHP(3,2) status = %v, want Unsat", v.Status)
	}
}

func TestPigeonHoleSatisfiableCase(t *testing.T) {
	cnf := PigeonHole(1, 2) // one pigeon, two holes: trivially satisfiable
	s := sat.NewSolver(cnf, sat.DefaultConfig, nil)
	v := s.Solve()
	if v.Status != sat.StatusSat {
		t.Errorf("PHP(1,2) status = %v, want Sat", v.Status)
	}
}

func TestRandom3SATIsDeterministic(t *testing.T) {
	a := Random3SAT(10, 20)
	b := Random3SAT(10, 20)
	if len(a.Clauses) != len(b.Clauses) {
		t.Fatalf("clause counts differ: %d vs %d", len(a.Clauses), len(b.Clauses))
	}
	for i := range a.Clauses {
		for j := range a.Clauses[i] {
			if a.Clauses[i][j] != b.Clauses[i][j] {
				t.Errorf("clause %d differs: %v vs %v", i, a.Clauses[i], b.Clauses[i])
			}
		}
	}
}
