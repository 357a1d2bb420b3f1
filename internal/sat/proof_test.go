package sat

import "testing"

func TestProofRenderFormats(t *testing.T) {
	symbols := NewSymbolTable(3)
	symbols.SetName(1, "P")
	symbols.SetName(2, "Q")
	symbols.SetName(3, "R")

	p := newProofRecorder(100)
	a := newClause([]Literal{1, 2}, false)
	b := newClause([]Literal{-1, 3}, false)
	resolvent := newClause([]Literal{2, 3}, true)
	p.Record(a, b, resolvent)

	got := p.Render(symbols)
	want := "(P | Q) e (!P | R) genera (Q | R)\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestProofTruncation(t *testing.T) {
	p := newProofRecorder(1)
	a := newClause([]Literal{1}, false)
	b := newClause([]Literal{-1}, false)
	empty := newClause(nil, false)

	p.Record(a, b, empty)
	p.Record(a, b, empty) // dropped: cap already reached

	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}
	if !p.Truncated() {
		t.Error("Truncated() = false, want true")
	}
}

func TestProofOptimizationDropsUnreachableSteps(t *testing.T) {
	symbols := NewSymbolTable(3)
	p := newProofRecorder(100)

	// An irrelevant step whose resolvent is never used as a parent again.
	irrelevantA := newClause([]Literal{2}, false)
	irrelevantB := newClause([]Literal{-2, 3}, false)
	irrelevant := newClause([]Literal{3}, true)
	p.Record(irrelevantA, irrelevantB, irrelevant)

	a := newClause([]Literal{1}, false)
	b := newClause([]Literal{-1}, false)
	empty := newClause(nil, false)
	p.Record(a, b, empty)

	rendered := p.Render(symbols)
	want := "(1) e (!1) genera ([])\n"
	if rendered != want {
		t.Errorf("Render() = %q, want %q (irrelevant step should be optimized away)", rendered, want)
	}
}
