// Package bench generates CNF instances for exercising the solver, grounded
// on xDarkicex-logic/sat/sat_advanced_test.go's
// createPigeonHolePrincipleAdvanced and createRandom3SATAdvanced.
package bench

import (
	"fmt"

	"github.com/lucidsat/seqsat/internal/sat"
)

// PigeonHole builds the classic unsatisfiable pigeonhole instance: pigeons
// pigeons, each assigned to one of holes holes, no two pigeons sharing a
// hole. It is UNSAT whenever pigeons > holes.
func PigeonHole(pigeons, holes int) *sat.CNF {
	cnf := sat.NewCNF(pigeons * holes)

	varID := func(p, h int) int {
		return (p-1)*holes + h
	}
	for p := 1; p <= pigeons; p++ {
		for h := 1; h <= holes; h++ {
			cnf.Symbols.SetName(varID(p, h), fmt.Sprintf("p%dh%d", p, h))
		}
	}

	for p := 1; p <= pigeons; p++ {
		clause := make([]int, holes)
		for h := 1; h <= holes; h++ {
			clause[h-1] = varID(p, h)
		}
		_ = cnf.AddClause(clause)
	}

	for h := 1; h <= holes; h++ {
		for p1 := 1; p1 <= pigeons; p1++ {
			for p2 := p1 + 1; p2 <= pigeons; p2++ {
				_ = cnf.AddClause([]int{-varID(p1, h), -varID(p2, h)})
			}
		}
	}

	return cnf
}
