package sat

// restart learns the conflict analyzer's explanation, subsumes the
// learned set, pops to level 0, and resets the anti-loop guard. Called
// only once the normal analysis step (conflict.go resolveStep) has
// produced a non-empty explanation — an empty one is UNSAT and never
// reaches here.
func (s *Solver) restart(explanation *Clause) {
	if s.store.AddLearned(explanation) {
		s.stats.LearnedClauses++
	}
	subsumeLearned(s.store)
	s.trail.PopTo(0)
	s.heuristic.resetAntiLoop()
	s.stats.Restarts++
}

// subsumeLearned removes every learned clause C2 for which a distinct
// clause C1 — original or learned — subsumes it. The pass is a single
// left-to-right scan of the learned set that accumulates a kept list;
// later candidates are checked against both the full original set and the
// kept list built so far, so a clause removed earlier in the pass can no
// longer subsume anything (it is gone), while a clause kept earlier in
// the pass remains available as a subsumer for the rest of the pass.
func subsumeLearned(store *ClauseStore) {
	learned := store.Learned()
	kept := make([]*Clause, 0, len(learned))

	subsumedByAny := func(cs []*Clause, candidate *Clause) bool {
		for _, c := range cs {
			if c != candidate && c.Subsumes(candidate) {
				return true
			}
		}
		return false
	}

	for _, c := range learned {
		if subsumedByAny(store.Original(), c) || subsumedByAny(kept, c) {
			continue
		}
		kept = append(kept, c)
	}
	store.SetLearned(kept)
}

// subsumeSelf applies the same single-pass subsumption to a standalone
// clause slice, used once at construction time when
// Config.EnableSubsumption is set, to shrink the input clause set before
// solving begins. A clause is kept only if no earlier-kept clause already
// subsumes it, so of a run of set-equal duplicates the first is kept and
// the rest are subsumed away.
func subsumeSelf(clauses []*Clause) []*Clause {
	kept := make([]*Clause, 0, len(clauses))
	for _, c := range clauses {
		subsumed := false
		for _, k := range kept {
			if k != c && k.Subsumes(c) {
				subsumed = true
				break
			}
		}
		if subsumed {
			c.release()
			continue
		}
		kept = append(kept, c)
	}
	return kept
}
