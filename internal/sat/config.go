package sat

// Config enumerates the solver's configuration record, including the
// clause-database maintenance knobs layered on top of the base CDCL
// loop.
type Config struct {
	// EnableRestart turns on the restart-with-subsumption subsystem.
	EnableRestart bool

	// RestartThreshold is K: restart on every Kth conflict. Default 5.
	RestartThreshold int

	// EnableSubsumption, if true, applies a single subsumption pass to the
	// input clause set before solving begins.
	EnableSubsumption bool

	// MaxIterations bounds the outer solve loop.
	MaxIterations int

	// MaxProofSteps bounds the proof recorder's memory use.
	MaxProofSteps int

	// MaxSameLevelResolutions bounds the conflict analyzer's inner
	// same-level resolution loop.
	MaxSameLevelResolutions int

	// MaxBCPRounds defensively bounds a single BCP call's fixpoint loop.
	MaxBCPRounds int

	// MaxLearnts, if non-zero, triggers the supplemental activity-based
	// ReduceDB cleanup (reduce.go) once the learned-clause count exceeds
	// it. Zero disables the cleanup; it is off by default.
	MaxLearnts int

	// ClauseDecay controls how quickly the supplemental clause-activity
	// score (clauseactivity.go) decays between conflicts.
	ClauseDecay float64
}

// DefaultConfig holds the solver's baseline configuration.
var DefaultConfig = Config{
	EnableRestart:           false,
	RestartThreshold:        5,
	EnableSubsumption:       false,
	MaxIterations:           1_000_000,
	MaxProofSteps:           10_000,
	MaxSameLevelResolutions: 100,
	MaxBCPRounds:            1_000,
	MaxLearnts:              0,
	ClauseDecay:             0.999,
}
