package sat

import "testing"

func TestClauseStoreDedupsLearned(t *testing.T) {
	s := newClauseStore()
	s.AddOriginal(newClause([]Literal{1, 2}, false))

	if !s.AddLearned(newClause([]Literal{3, -1}, true)) {
		t.Error("AddLearned of a fresh clause returned false")
	}
	if s.AddLearned(newClause([]Literal{-1, 3}, true)) {
		t.Error("AddLearned of a set-equal learned clause returned true, want false")
	}
	if s.AddLearned(newClause([]Literal{2, 1}, true)) {
		t.Error("AddLearned of a clause set-equal to an original clause returned true, want false")
	}
	if got, want := s.NumLearned(), 1; got != want {
		t.Errorf("NumLearned() = %d, want %d", got, want)
	}
}

func TestClauseStoreIterActiveOrder(t *testing.T) {
	s := newClauseStore()
	orig := newClause([]Literal{1}, false)
	learned := newClause([]Literal{2}, true)
	s.AddOriginal(orig)
	s.AddLearned(learned)

	var seen []*Clause
	s.IterActive(func(c *Clause) bool {
		seen = append(seen, c)
		return true
	})
	if len(seen) != 2 || seen[0] != orig || seen[1] != learned {
		t.Errorf("IterActive order = %v, want [original, learned]", seen)
	}
}
