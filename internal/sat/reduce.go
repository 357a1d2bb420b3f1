package sat

import "github.com/rhartert/yagh"

// reduceLearned is a learned-clause database cleanup: unbounded growth is
// unrealistic for any solver meant to run on real input. It activates
// only when Config.MaxLearnts is non-zero and the learned set has grown
// past it.
//
// Rather than sort the whole learnt slice by activity, this re-homes
// github.com/rhartert/yagh — freed up here because the decision
// heuristic in this tree uses a fixed order rather than an
// activity-ordered heap (see heuristic.go) — as a one-shot min-priority
// selector for the lowest-activity half of the learned set, without a
// full sort.
func (s *Solver) reduceLearned() {
	learned := s.store.Learned()
	if s.config.MaxLearnts <= 0 || len(learned) <= s.config.MaxLearnts {
		return
	}

	victims := yagh.New[float64](len(learned))
	victims.GrowBy(len(learned))
	for i, c := range learned {
		victims.Put(i, c.activity)
	}

	target := len(learned) / 2
	remove := make(map[int]bool, target)
	for len(remove) < target {
		next, ok := victims.Pop()
		if !ok {
			break
		}
		if s.clauseLocked(learned[next.Elem]) {
			continue
		}
		remove[next.Elem] = true
	}
	if len(remove) == 0 {
		return
	}

	kept := make([]*Clause, 0, len(learned)-len(remove))
	for i, c := range learned {
		if remove[i] {
			continue
		}
		kept = append(kept, c)
	}
	s.store.SetLearned(kept)
}

// clauseLocked reports whether c is currently the reason for some
// assigned variable; removing it would leave a dangling reason pointer.
func (s *Solver) clauseLocked(c *Clause) bool {
	for _, l := range c.Literals() {
		if s.assign.Reason(l.VarID()) == c {
			return true
		}
	}
	return false
}
