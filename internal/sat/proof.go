package sat

import (
	"fmt"
	"strings"
)

// ProofStep is one resolution step: resolvent = justifying ⊕ conflict.
type ProofStep struct {
	Justifying *Clause
	Conflict   *Clause
	Resolvent  *Clause
}

// ProofRecorder is the append-only ordered log of resolution steps. It is
// complete once its final step's resolvent is the empty clause.
type ProofRecorder struct {
	steps     []ProofStep
	maxSteps  int
	truncated bool
}

func newProofRecorder(maxSteps int) *ProofRecorder {
	return &ProofRecorder{maxSteps: maxSteps}
}

// Record appends a resolution step. Once the step cap is reached, further
// steps are silently dropped and the proof is marked Truncated.
func (p *ProofRecorder) Record(justifying, conflict, resolvent *Clause) {
	if len(p.steps) >= p.maxSteps {
		p.truncated = true
		return
	}
	p.steps = append(p.steps, ProofStep{Justifying: justifying, Conflict: conflict, Resolvent: resolvent})
}

// Truncated reports whether the step cap was hit before the proof
// concluded.
func (p *ProofRecorder) Truncated() bool {
	return p.truncated
}

// Len returns the number of recorded steps.
func (p *ProofRecorder) Len() int {
	return len(p.steps)
}

// Complete reports whether the last recorded step's resolvent is the
// empty clause.
func (p *ProofRecorder) Complete() bool {
	return len(p.steps) > 0 && p.steps[len(p.steps)-1].Resolvent.IsEmpty()
}

// optimized returns the steps reachable, by backward resolvent-as-parent
// reference, from the final step's resolvent: any step whose resolvent is
// never consumed as a parent by a later step is dropped, since it played
// no part in reaching the empty clause. If the proof never reached the
// empty clause, every step is kept (nothing to optimize against).
func (p *ProofRecorder) optimized() []ProofStep {
	if len(p.steps) == 0 || !p.Complete() {
		return p.steps
	}
	needed := map[*Clause]bool{p.steps[len(p.steps)-1].Resolvent: true}
	kept := make([]ProofStep, 0, len(p.steps))
	for i := len(p.steps) - 1; i >= 0; i-- {
		step := p.steps[i]
		if !needed[step.Resolvent] {
			continue
		}
		kept = append(kept, step)
		needed[step.Justifying] = true
		needed[step.Conflict] = true
	}
	// kept was built in reverse; restore chronological order.
	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return kept
}

// renderClause renders c as "[]" for the empty clause, the bare variable
// name for a unit positive literal, "!name" for a unit negative literal,
// and "l1 | l2 | …" (literals sorted by variable ID then polarity)
// otherwise.
func renderClause(c *Clause, symbols *SymbolTable) string {
	lits := c.Literals()
	if len(lits) == 0 {
		return "[]"
	}
	renderLit := func(l Literal) string {
		name := symbols.Name(l.VarID())
		if l.IsPositive() {
			return name
		}
		return "!" + name
	}
	if len(lits) == 1 {
		return renderLit(lits[0])
	}
	parts := make([]string, len(lits))
	for i, l := range lits {
		parts[i] = renderLit(l)
	}
	return strings.Join(parts, " | ")
}

// Render returns the optimized proof as one "(A) e (B) genera (C)" line
// per step.
func (p *ProofRecorder) Render(symbols *SymbolTable) string {
	var sb strings.Builder
	for _, step := range p.optimized() {
		fmt.Fprintf(&sb, "(%s) e (%s) genera (%s)\n",
			renderClause(step.Justifying, symbols),
			renderClause(step.Conflict, symbols),
			renderClause(step.Resolvent, symbols),
		)
	}
	return sb.String()
}
