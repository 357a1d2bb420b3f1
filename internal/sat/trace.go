package sat

import "fmt"

// Tracer receives diagnostic messages from the solver. The core carries no
// ambient logger: callers that want diagnostics pass a small Tracer handle
// explicitly, and callers that don't care use NopTracer — grounded on
// etsangsplk-go-sat's Solver.Tracer field and OLM's
// resolver/solver.Tracer/DefaultTracer/LoggingTracer split.
type Tracer interface {
	Tracef(format string, args ...any)
}

// NopTracer discards every message. It is the Solver's default Tracer.
type NopTracer struct{}

func (NopTracer) Tracef(string, ...any) {}

// PrintTracer writes every message to fmt.Printf, prefixed with "c ". It is
// convenient for ad hoc debugging from the CLI.
type PrintTracer struct{}

func (PrintTracer) Tracef(format string, args ...any) {
	fmt.Printf("c "+format+"\n", args...)
}
