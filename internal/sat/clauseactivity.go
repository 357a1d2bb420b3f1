package sat

// clauseActivity tracks a decayed per-clause score used only by the
// ReduceDB-style cleanup in reduce.go.
type clauseActivity struct {
	inc   float64
	decay float64
}

func newClauseActivity(decay float64) *clauseActivity {
	return &clauseActivity{inc: 1, decay: decay}
}

// Bump increases c's activity, rescaling every learned clause's activity
// (and the increment) once c's activity has grown large enough to risk
// float overflow.
func (ca *clauseActivity) Bump(c *Clause, learned []*Clause) {
	c.activity += ca.inc
	if c.activity > 1e100 {
		ca.inc *= 1e-100
		for _, l := range learned {
			l.activity *= 1e-100
		}
	}
}

// Decay grows future increments (inc is divided by a decay factor below
// 1), giving relatively more weight to clauses bumped recently.
func (ca *clauseActivity) Decay() {
	ca.inc /= ca.decay
}
