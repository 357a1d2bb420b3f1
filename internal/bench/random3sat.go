package bench

import "github.com/lucidsat/seqsat/internal/sat"

// Random3SAT builds a deterministic pseudo-random 3-SAT instance over
// variables variables and clauses clauses, using an index-striding
// scheme so that a given (variables, clauses) pair always reproduces the
// same formula — useful for repeatable benchmarking without pulling in a
// random-number dependency the rest of the module has no other use for.
func Random3SAT(variables, clauses int) *sat.CNF {
	cnf := sat.NewCNF(variables)
	for i := 0; i < clauses; i++ {
		lits := make([]int, 3)
		for j := 0; j < 3; j++ {
			v := (i*3+j)%variables + 1
			if (i+j)%2 == 0 {
				v = -v
			}
			lits[j] = v
		}
		_ = cnf.AddClause(lits)
	}
	return cnf
}
