package sat

import (
	"sort"
	"strings"
)

// Clause is an immutable, ordered collection of literals with set-equality
// semantics: two clauses are equivalent when they hold the same literal
// set, regardless of insertion order. Literals are stored sorted by
// variable ID then polarity so that equality, subset tests (used by
// subsumption), and rendering are all linear-time and deterministic.
//
// Clauses are created once via newClause and never mutated
// afterwards; the clause store owns their lifetime.
type Clause struct {
	literals []Literal

	learnt bool

	// activity is a supplemental, decayed score used only by the optional
	// ReduceDB-style cleanup in reduce.go.
	activity float64

	// alloc remembers which allocator produced literals, so that release can
	// return the backing slice to the right pool (see clause_allocpool.go).
	alloc *[]Literal
}

func sortLiteral(l Literal) int {
	// Sort key: variable ID primary, polarity (positive first) secondary.
	if l.IsPositive() {
		return l.VarID() * 2
	}
	return l.VarID()*2 + 1
}

func sortLiterals(lits []Literal) {
	sort.Slice(lits, func(i, j int) bool {
		return sortLiteral(lits[i]) < sortLiteral(lits[j])
	})
}

// dedupSorted removes duplicate and tautological ( {x,!x} ) literals from an
// already-sorted slice, returning the reduced slice and whether the clause
// is a tautology (always true, and therefore not worth storing).
func dedupSorted(lits []Literal) (out []Literal, tautology bool) {
	out = lits[:0]
	for i, l := range lits {
		if i > 0 && out[len(out)-1] == l {
			continue // duplicate literal
		}
		if len(out) > 0 && out[len(out)-1].VarID() == l.VarID() {
			return nil, true // {x, !x} present
		}
		out = append(out, l)
	}
	return out, false
}

// newClause builds a Clause from literals, sorting and deduplicating them.
// It does not consult any assignment: already-false literals are kept and
// already-true clauses are not detected.
func newClause(lits []Literal, learnt bool) *Clause {
	ref := allocClauseSlice(len(lits))
	buf := (*ref)[:0]
	buf = append(buf, lits...)
	sortLiterals(buf)
	buf, taut := dedupSorted(buf)
	if taut {
		freeClauseSlice(ref)
		return nil
	}
	return &Clause{literals: buf, learnt: learnt, alloc: ref}
}

// Literals returns the clause's literals in canonical (sorted) order. The
// returned slice must not be mutated by the caller.
func (c *Clause) Literals() []Literal {
	return c.literals
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int {
	return len(c.literals)
}

// IsUnit reports whether the clause has exactly one literal.
func (c *Clause) IsUnit() bool {
	return len(c.literals) == 1
}

// IsEmpty reports whether the clause is the distinguished empty clause that
// terminates UNSAT proofs.
func (c *Clause) IsEmpty() bool {
	return len(c.literals) == 0
}

// Contains reports whether the clause contains the given literal.
func (c *Clause) Contains(l Literal) bool {
	i := sort.Search(len(c.literals), func(i int) bool {
		return sortLiteral(c.literals[i]) >= sortLiteral(l)
	})
	return i < len(c.literals) && c.literals[i] == l
}

// ContainsVar reports whether the clause contains either literal of
// variable v.
func (c *Clause) ContainsVar(v int) bool {
	return c.Contains(PositiveLiteral(v)) || c.Contains(NegativeLiteral(v))
}

// Equal reports whether two clauses hold the same literal set — clause
// equivalence is set equality, not sequence equality. Because both clauses
// store literals in the same canonical sorted order, this reduces to slice
// equality.
func (c *Clause) Equal(other *Clause) bool {
	if c == other {
		return true
	}
	if len(c.literals) != len(other.literals) {
		return false
	}
	for i, l := range c.literals {
		if other.literals[i] != l {
			return false
		}
	}
	return true
}

// Subsumes reports whether c subsumes other, i.e. c's literal set is a
// (non-strict) subset of other's — a clause that subsumes another makes
// it redundant, since satisfying the subsumer always satisfies the
// subsumed clause too. Both slices are sorted, so this is a linear
// merge-style scan.
func (c *Clause) Subsumes(other *Clause) bool {
	if len(c.literals) > len(other.literals) {
		return false
	}
	j := 0
	for _, l := range c.literals {
		for j < len(other.literals) && sortLiteral(other.literals[j]) < sortLiteral(l) {
			j++
		}
		if j >= len(other.literals) || other.literals[j] != l {
			return false
		}
		j++
	}
	return true
}

// pivotVariable returns the variable on which a and b carry complementary
// literals (a has l, b has l.Opposite()), and true if one was found.
func pivotVariable(a, b *Clause) (int, bool) {
	for _, l := range a.literals {
		if b.Contains(l.Opposite()) {
			return l.VarID(), true
		}
	}
	return 0, false
}

// resolve computes the binary resolution of two clauses on variable v:
// the union of their literals with the complementary pair on v removed.
// It panics if either clause does not carry a literal of v, or if they do
// not carry opposite polarities of v — that would indicate a programmer
// error in the caller (conflict.go only ever resolves on a literal both
// clauses share in opposite polarity).
func resolve(a, b *Clause, v int) *Clause {
	if !a.ContainsVar(v) || !b.ContainsVar(v) {
		invariant("resolve: variable %d not present in both clauses", v)
	}
	if a.Contains(PositiveLiteral(v)) == b.Contains(PositiveLiteral(v)) {
		invariant("resolve: variable %d has the same polarity in both clauses", v)
	}
	merged := make([]Literal, 0, len(a.literals)+len(b.literals))
	for _, l := range a.literals {
		if l.VarID() != v {
			merged = append(merged, l)
		}
	}
	for _, l := range b.literals {
		if l.VarID() != v {
			merged = append(merged, l)
		}
	}
	return newClause(merged, true)
}

// release returns the clause's backing literal slice to its allocator. It
// must only be called once a clause has been permanently removed from the
// clause store (subsumption, ReduceDB) and is no longer reachable from any
// reason pointer or proof step.
func (c *Clause) release() {
	if c.alloc != nil {
		freeClauseSlice(c.alloc)
		c.alloc = nil
		c.literals = nil
	}
}

// String renders the clause using variable IDs, e.g. "[1 !2 3]" or "[]" for
// the empty clause.
func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, l := range c.literals {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
