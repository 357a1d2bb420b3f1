package sat

// AnalysisOutcome tags the terminal state the conflict analyzer's state
// machine reaches for a single conflict.
type AnalysisOutcome int

const (
	outcomeUnsat AnalysisOutcome = iota
	outcomeLearnBacktrack
	outcomeRestart
)

// Analysis is the conflict analyzer's tagged result: either the formula is
// proved unsatisfiable, a clause is learned and the trail backjumps to
// BacktrackLevel, or a restart is triggered.
type Analysis struct {
	Outcome        AnalysisOutcome
	Learned        *Clause
	BacktrackLevel int
}

// analyzeConflict runs the sequential-explanation analyzer on one BCP
// conflict. Unlike the classical 1-UIP implication-graph walk (the
// teacher's internal/sat/solver.go analyze), it repeatedly resolves the
// growing explanation clause against the reason of whichever
// current-level implication it still falsifies, until either the empty
// clause, a unit clause, or an asserting clause at a lower level emerges.
func (s *Solver) analyzeConflict(prop Propagation) Analysis {
	s.vsids.BumpClause(prop.Conflict)
	s.stats.Conflicts++
	s.claAct.Decay()

	explanation := s.resolveStep(prop.Justifying, prop.Conflict)

	restartDue := s.config.EnableRestart && s.config.RestartThreshold > 0 &&
		s.stats.Conflicts%int64(s.config.RestartThreshold) == 0
	if restartDue {
		if explanation.IsEmpty() {
			return Analysis{Outcome: outcomeUnsat}
		}
		s.restart(explanation)
		return Analysis{Outcome: outcomeRestart}
	}

	return s.finishAnalysis(explanation)
}

// resolveStep performs one resolution step and records it in the proof,
// returning the resolvent. If there is no justifying clause to resolve
// against — the conflict was detected with no preceding implication that
// falsifies one of its literals — the conflict clause itself stands as the
// explanation and no step is recorded.
func (s *Solver) resolveStep(justifying, conflict *Clause) *Clause {
	if justifying == nil {
		return conflict
	}
	v, ok := pivotVariable(justifying, conflict)
	if !ok {
		return conflict
	}
	resolvent := resolve(justifying, conflict, v)
	if resolvent == nil {
		invariant("conflict: resolution of %s and %s on variable %d produced a tautology", justifying, conflict, v)
	}
	s.proof.Record(justifying, conflict, resolvent)
	return resolvent
}

// finishAnalysis loops resolving the explanation against current-level
// implications until it stops containing one, then classifies the
// result.
func (s *Solver) finishAnalysis(explanation *Clause) Analysis {
	currentLevel := s.trail.CurrentLevel()

	for iterations := 0; ; iterations++ {
		if explanation.IsEmpty() {
			return Analysis{Outcome: outcomeUnsat}
		}

		if explanation.IsUnit() {
			lit := explanation.Literals()[0]
			if reason, ok := s.contradictingUnit(lit); ok {
				final := resolve(reason, explanation, lit.VarID())
				if final == nil {
					invariant("conflict: resolution of contradicting units on variable %d produced a tautology", lit.VarID())
				}
				s.proof.Record(reason, explanation, final)
				return Analysis{Outcome: outcomeUnsat}
			}
			return Analysis{Outcome: outcomeLearnBacktrack, Learned: explanation, BacktrackLevel: 0}
		}

		if iterations >= s.config.MaxSameLevelResolutions {
			s.tracer.Tracef("conflict: exceeded %d same-level resolutions, aborting as unsat", s.config.MaxSameLevelResolutions)
			return Analysis{Outcome: outcomeUnsat}
		}

		if reason, resolved := s.resolveAgainstCurrentLevel(explanation, currentLevel); resolved {
			explanation = reason
			continue
		}

		return s.assertingClause(explanation, currentLevel)
	}
}

// resolveAgainstCurrentLevel looks for a literal in explanation whose
// variable was implied (not decided) at currentLevel with the opposite
// value, and if found resolves explanation against that implication's
// reason clause, recording the step.
func (s *Solver) resolveAgainstCurrentLevel(explanation *Clause, currentLevel int) (*Clause, bool) {
	for _, l := range explanation.Literals() {
		v := l.VarID()
		level, ok := s.trail.LevelOf(v)
		if !ok || level != currentLevel || s.assign.IsDecision(v) {
			continue
		}
		reason := s.assign.Reason(v)
		resolvent := resolve(explanation, reason, v)
		if resolvent == nil {
			invariant("conflict: resolution of %s and %s on variable %d produced a tautology", explanation, reason, v)
		}
		s.proof.Record(explanation, reason, resolvent)
		return resolvent, true
	}
	return nil, false
}

// assertingClause handles the case where the resolvent no longer contains
// a current-level implication, so it is asserting. The asserted literal is
// the one whose variable is the current level's decision; the backtrack
// level is the maximum level among the resolvent's other literals (0 if
// none).
func (s *Solver) assertingClause(explanation *Clause, currentLevel int) Analysis {
	foundAsserted := false
	backtrackLevel := 0
	for _, l := range explanation.Literals() {
		v := l.VarID()
		level, ok := s.trail.LevelOf(v)
		if !ok {
			continue
		}
		if level == currentLevel && s.assign.IsDecision(v) {
			foundAsserted = true
			continue
		}
		if level > backtrackLevel {
			backtrackLevel = level
		}
	}
	if !foundAsserted {
		invariant("conflict: no asserted literal found in resolvent %s at level %d", explanation, currentLevel)
	}
	return Analysis{Outcome: outcomeLearnBacktrack, Learned: explanation, BacktrackLevel: backtrackLevel}
}

// contradictingUnit looks for an existing reason that falsifies l: either
// l's variable is already assigned at level 0 with a value that falsifies
// l, or an existing unit clause (original or learned) carries
// l.Opposite().
func (s *Solver) contradictingUnit(l Literal) (*Clause, bool) {
	v := l.VarID()
	if level, ok := s.trail.LevelOf(v); ok && level == 0 {
		value, _, reason, _ := s.assign.Get(v)
		if l.Evaluate(value) == False {
			return reason, true
		}
	}
	var found *Clause
	s.store.IterActive(func(c *Clause) bool {
		if c.IsUnit() && c.Literals()[0] == l.Opposite() {
			found = c
			return false
		}
		return true
	})
	if found != nil {
		return found, true
	}
	return nil, false
}

// applyLearnBacktrack carries out the learning procedure once analysis
// settles on a clause to learn: add the learned clause (deduplicated), pop
// the trail back to the backtrack level, and — if the learned clause is
// unit — immediately push its asserted literal as a level-0 implication.
func (s *Solver) applyLearnBacktrack(a Analysis) {
	span := s.trail.CurrentLevel() - a.BacktrackLevel

	if s.store.AddLearned(a.Learned) {
		s.stats.LearnedClauses++
		if a.Learned.learnt {
			s.claAct.Bump(a.Learned, s.store.Learned())
		}
	}
	s.trail.PopTo(a.BacktrackLevel)
	s.heuristic.markBacktrack()
	s.stats.Backjumps++
	s.stats.AvgLearntSize = s.learntSizeEMA.Update(float64(a.Learned.Len()))
	s.stats.AvgBackjumpSpan = s.backjumpSpanEMA.Update(float64(span))

	if a.Learned.IsUnit() {
		lit := a.Learned.Literals()[0]
		s.trail.PushImplication(lit.VarID(), Lift(lit.IsPositive()), a.Learned)
	}
}
