//go:build !clausepool

package sat

// allocClauseSlice returns a fresh literal slice with at least capa
// capacity. This is the default allocator; build with the "clausepool" tag
// to use the sync.Pool-backed allocator in clause_allocpool.go instead.
func allocClauseSlice(capa int) *[]Literal {
	s := make([]Literal, 0, capa)
	return &s
}

// freeClauseSlice is a no-op under the default allocator: the garbage
// collector reclaims the slice once the clause holding it is dropped.
func freeClauseSlice(s *[]Literal) {}
