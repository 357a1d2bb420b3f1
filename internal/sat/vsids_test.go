package sat

import "testing"

func TestVSIDSBumpClauseAndPolarity(t *testing.T) {
	v := newVSIDSCounters(2)
	c := newClause([]Literal{1, -2}, false)
	v.BumpClause(c)
	v.BumpClause(c)

	if got := v.Count(PositiveLiteral(1)); got != 2 {
		t.Errorf("Count(+1) = %d, want 2", got)
	}
	if got := v.Count(NegativeLiteral(2)); got != 2 {
		t.Errorf("Count(-2) = %d, want 2", got)
	}
	if got := v.Count(PositiveLiteral(2)); got != 0 {
		t.Errorf("Count(+2) = %d, want 0", got)
	}

	if !v.Polarity(1) {
		t.Error("Polarity(1) = false, want true (positive counter dominates)")
	}
	if v.Polarity(2) {
		t.Error("Polarity(2) = true, want false (negative counter dominates)")
	}
}

func TestVSIDSPolarityTieBreaksPositive(t *testing.T) {
	v := newVSIDSCounters(1)
	if !v.Polarity(1) {
		t.Error("Polarity with both counters at zero should default to true")
	}
}
