package sat

import "fmt"

// SymbolTable is the bijection between internal variable IDs (1..N) and
// user-facing variable names. It is used only when rendering models and
// proofs; the solver itself never looks names up during search.
type SymbolTable struct {
	names []string // indexed by varID, index 0 unused
	ids   map[string]int
}

// NewSymbolTable returns a table with room for n variables, initially named
// "1".."n".
func NewSymbolTable(n int) *SymbolTable {
	t := &SymbolTable{
		names: make([]string, n+1),
		ids:   make(map[string]int, n),
	}
	for i := 1; i <= n; i++ {
		name := fmt.Sprintf("%d", i)
		t.names[i] = name
		t.ids[name] = i
	}
	return t
}

// SetName renames variable id. It is the caller's responsibility to avoid
// name collisions; a colliding SetName simply makes the older name
// unreachable via ID.
func (t *SymbolTable) SetName(id int, name string) {
	delete(t.ids, t.names[id])
	t.names[id] = name
	t.ids[name] = id
}

// Name returns the user-facing name of variable id.
func (t *SymbolTable) Name(id int) string {
	return t.names[id]
}

// ID returns the variable ID for name, and whether it exists.
func (t *SymbolTable) ID(name string) (int, bool) {
	id, ok := t.ids[name]
	return id, ok
}

// NumVars returns the number of variables in the table.
func (t *SymbolTable) NumVars() int {
	return len(t.names) - 1
}

// CNF is the core's input: a variable count, an ordered list of clauses
// (each a non-empty list of non-zero literals in [-N..N]), and a symbol
// table.
type CNF struct {
	NumVars int
	Clauses [][]int
	Symbols *SymbolTable
}

// NewCNF returns an empty CNF over n variables, with a default symbol
// table naming variables "1".."n".
func NewCNF(n int) *CNF {
	return &CNF{NumVars: n, Symbols: NewSymbolTable(n)}
}

// AddClause validates and appends a clause. A clause is malformed if it is
// empty, contains the literal 0, or references a variable outside [1..N].
func (c *CNF) AddClause(lits []int) error {
	if len(lits) == 0 {
		return &MalformedClauseError{Clause: lits, Reason: "clause is empty"}
	}
	for _, l := range lits {
		if l == 0 {
			return &MalformedClauseError{Clause: lits, Reason: "literal 0 is not allowed"}
		}
		v := l
		if v < 0 {
			v = -v
		}
		if v > c.NumVars {
			return &MalformedClauseError{Clause: lits, Reason: fmt.Sprintf("variable %d out of range [1..%d]", v, c.NumVars)}
		}
	}
	clause := make([]int, len(lits))
	copy(clause, lits)
	c.Clauses = append(c.Clauses, clause)
	return nil
}
