package sat

import (
	"sync/atomic"
	"time"
)

// VerdictStatus tags a Verdict: satisfiable with a model, unsatisfiable
// with a proof, or timed out with neither.
type VerdictStatus int

const (
	StatusSat VerdictStatus = iota
	StatusUnsat
	StatusTimeout
)

func (s VerdictStatus) String() string {
	switch s {
	case StatusSat:
		return "SAT"
	case StatusUnsat:
		return "UNSAT"
	default:
		return "TIMEOUT"
	}
}

// Verdict is a Solve call's result. Model is populated only for
// StatusSat, Proof only for StatusUnsat.
type Verdict struct {
	Status VerdictStatus
	Model  map[string]bool
	Proof  string
}

// Solver ties together the clause store, trail, assignment map, VSIDS
// counters, proof recorder, and decision heuristic into the CDCL driver,
// built around sequential-explanation conflict analysis and full-scan
// BCP instead of watched literals and 1-UIP.
type Solver struct {
	cnf    *CNF
	config Config
	tracer Tracer

	store     *ClauseStore
	assign    *AssignmentMap
	trail     *Trail
	vsids     *VSIDSCounters
	claAct    *clauseActivity
	proof     *ProofRecorder
	heuristic *Heuristic
	stats     Stats

	learntSizeEMA   *ema
	backjumpSpanEMA *ema

	// interrupted is the only state touched from outside the solving
	// goroutine: another goroutine may call Interrupt while Solve is
	// running.
	interrupted atomic.Bool

	startTime time.Time
}

// NewSolver constructs a Solver over cnf with the given configuration. A
// nil tracer defaults to NopTracer.
func NewSolver(cnf *CNF, config Config, tracer Tracer) *Solver {
	if tracer == nil {
		tracer = NopTracer{}
	}

	n := cnf.NumVars
	s := &Solver{
		cnf:       cnf,
		config:    config,
		tracer:    tracer,
		store:     newClauseStore(),
		assign:    newAssignmentMap(n),
		vsids:     newVSIDSCounters(n),
		claAct:    newClauseActivity(config.ClauseDecay),
		proof:     newProofRecorder(config.MaxProofSteps),
		heuristic: newHeuristic(cnf),

		learntSizeEMA:   newEMA(0.9),
		backjumpSpanEMA: newEMA(0.9),
	}
	s.trail = newTrail(s.assign)

	originals := make([]*Clause, 0, len(cnf.Clauses))
	for _, lits := range cnf.Clauses {
		literals := make([]Literal, len(lits))
		for i, l := range lits {
			if l > 0 {
				literals[i] = PositiveLiteral(l)
			} else {
				literals[i] = NegativeLiteral(-l)
			}
		}
		c := newClause(literals, false)
		if c != nil {
			originals = append(originals, c)
		}
	}
	if config.EnableSubsumption {
		originals = subsumeSelf(originals)
	}
	for _, c := range originals {
		s.store.AddOriginal(c)
	}

	return s
}

// Interrupt asks a running Solve call to terminate at its next poll,
// returning a Timeout verdict. Safe to call from another goroutine.
func (s *Solver) Interrupt() {
	s.interrupted.Store(true)
}

// Stats returns the statistics accumulated by the most recent (or
// in-progress) Solve call.
func (s *Solver) Stats() Stats {
	return s.stats
}

// Solve runs the CDCL loop to completion. It is safe to call only once
// per Solver; construct a new Solver to solve again.
func (s *Solver) Solve() Verdict {
	s.startTime = time.Now()

	for iteration := 0; ; iteration++ {
		if s.interrupted.Load() {
			return s.timeoutVerdict()
		}
		if iteration >= s.config.MaxIterations {
			s.tracer.Tracef("solve: exceeded %d iterations, timing out", s.config.MaxIterations)
			return s.timeoutVerdict()
		}

		if s.solutionFound() {
			return s.satVerdict()
		}

		prop := s.propagate()
		if !prop.Saturated() {
			analysis := s.analyzeConflict(prop)
			switch analysis.Outcome {
			case outcomeUnsat:
				return s.unsatVerdict()
			case outcomeRestart:
				continue
			case outcomeLearnBacktrack:
				s.applyLearnBacktrack(analysis)
				s.reduceLearned()
				continue
			}
		}

		if v, value, ok := s.heuristic.decide(s.assign, s.vsids); ok {
			s.trail.PushDecision(v, value)
			s.stats.Decisions++
		}
	}
}

// solutionFound reports whether every variable is assigned and every
// active clause evaluates SATISFIED.
func (s *Solver) solutionFound() bool {
	for v := 1; v <= s.assign.numVars(); v++ {
		if s.assign.Value(v) == Unknown {
			return false
		}
	}
	satisfied := true
	s.store.IterActive(func(c *Clause) bool {
		state, _ := evaluateClause(c, s.assign)
		if state != stateSatisfied {
			satisfied = false
			return false
		}
		return true
	})
	return satisfied
}

func (s *Solver) satVerdict() Verdict {
	s.stats.ElapsedMillis = time.Since(s.startTime).Milliseconds()
	model := make(map[string]bool, s.assign.numVars())
	for v := 1; v <= s.assign.numVars(); v++ {
		// Unassigned variables default to false: possible when search
		// concludes with every active clause already satisfied before
		// every variable was decided.
		model[s.cnf.Symbols.Name(v)] = s.assign.Value(v) == True
	}
	return Verdict{Status: StatusSat, Model: model}
}

func (s *Solver) unsatVerdict() Verdict {
	s.stats.ElapsedMillis = time.Since(s.startTime).Milliseconds()
	s.stats.ProofSteps = int64(s.proof.Len())
	return Verdict{Status: StatusUnsat, Proof: s.proof.Render(s.cnf.Symbols)}
}

func (s *Solver) timeoutVerdict() Verdict {
	s.stats.ElapsedMillis = time.Since(s.startTime).Milliseconds()
	return Verdict{Status: StatusTimeout}
}
