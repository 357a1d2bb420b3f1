package sat

// clauseState classifies a clause under the current partial assignment.
type clauseState int

const (
	stateSatisfied clauseState = iota
	stateFalsified
	stateUnit
	stateUnresolved
)

// evaluateClause classifies c and, if it is UNIT, returns its sole free
// literal.
func evaluateClause(c *Clause, assign *AssignmentMap) (clauseState, Literal) {
	unassigned := 0
	var free Literal
	for _, l := range c.Literals() {
		v := l.Evaluate(assign.Value(l.VarID()))
		switch v {
		case True:
			return stateSatisfied, 0
		case Unknown:
			unassigned++
			free = l
		}
	}
	if unassigned == 0 {
		return stateFalsified, 0
	}
	if unassigned == 1 {
		return stateUnit, free
	}
	return stateUnresolved, 0
}

// Propagation is the tagged result of a BCP call: either Saturated
// (Conflict == nil) or Conflict, carrying the falsified clause and the
// justifying clause that explains it (Justifying may be nil if none was
// found).
type Propagation struct {
	Conflict   *Clause
	Justifying *Clause
}

// Saturated reports whether the propagation reached fixpoint without a
// conflict.
func (p Propagation) Saturated() bool {
	return p.Conflict == nil
}

// propagate runs BCP to fixpoint: it repeatedly scans every active clause
// (original and learned, in insertion order) until a full pass makes no
// further progress, or a clause is found falsified. This is a deliberate
// departure from watched-literal incremental propagation: scanning every
// active clause each round trades away the incremental speedup watched
// literals give in exchange for a propagation engine simple enough to
// reason about clause-by-clause, with no per-literal watch lists to keep
// in sync with the clause store.
//
// Rounds are capped defensively (Config.MaxBCPRounds) to protect against
// pathological input; on overflow BCP returns as if saturated, having
// logged a warning via the tracer.
func (s *Solver) propagate() Propagation {
	for round := 0; ; round++ {
		if s.interrupted.Load() {
			return Propagation{}
		}
		if round >= s.config.MaxBCPRounds {
			s.tracer.Tracef("bcp: exceeded %d rounds, forcing saturation", s.config.MaxBCPRounds)
			return Propagation{}
		}

		progress := false
		var conflict *Clause

		s.store.IterActive(func(c *Clause) bool {
			state, free := evaluateClause(c, s.assign)
			switch state {
			case stateFalsified:
				conflict = c
				return false
			case stateUnit:
				value := True
				if !free.IsPositive() {
					value = False
				}
				s.trail.PushImplication(free.VarID(), value, c)
				s.stats.Propagations++
				progress = true
			}
			return true
		})

		if conflict != nil {
			return Propagation{Conflict: conflict, Justifying: s.findJustifying(conflict)}
		}
		if !progress {
			return Propagation{}
		}
	}
}

// findJustifying scans the trail in reverse chronological order across all
// levels for the first implication (never a decision) whose variable
// appears in conflict and whose assigned value falsifies the
// corresponding literal. It returns nil if no such implication exists.
func (s *Solver) findJustifying(conflict *Clause) *Clause {
	var justifying *Clause
	s.trail.reverse(func(a Assignment) bool {
		if a.IsDecision {
			return true
		}
		if !conflict.ContainsVar(a.Var) {
			return true
		}
		lit := PositiveLiteral(a.Var)
		if !conflict.Contains(lit) {
			lit = NegativeLiteral(a.Var)
		}
		if lit.Evaluate(a.Value) == False {
			justifying = a.Reason
			return false
		}
		return true
	})
	return justifying
}
