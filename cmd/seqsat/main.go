// Command seqsat loads a DIMACS CNF instance (or generates a benchmark
// instance) and solves it, printing statistics and the verdict.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lucidsat/seqsat/internal/bench"
	"github.com/lucidsat/seqsat/internal/sat"
	"github.com/lucidsat/seqsat/parsers"
)

var (
	flagCPUProfile = flag.Bool("cpuprof", false, "save pprof CPU profile to cpuprof")
	flagMemProfile = flag.Bool("memprof", false, "save pprof memory profile to memprof")
	flagGzipped    = flag.Bool("gzip", false, "instance file is gzip-compressed")
	flagTrace      = flag.Bool("trace", false, "print solver trace messages")
	flagGenerate   = flag.String("generate", "", `generate a benchmark instance instead of reading a file: "php:P,H" or "r3sat:V,C"`)

	flagRestart          = flag.Bool("restart", sat.DefaultConfig.EnableRestart, "enable restart-with-subsumption")
	flagRestartThreshold = flag.Int("restart-threshold", sat.DefaultConfig.RestartThreshold, "restart every Kth conflict")
	flagSubsumption      = flag.Bool("subsumption", sat.DefaultConfig.EnableSubsumption, "subsume the input clause set once before solving")
	flagMaxIterations    = flag.Int("max-iterations", sat.DefaultConfig.MaxIterations, "defensive cap on solve-loop iterations")
	flagMaxProofSteps    = flag.Int("max-proof-steps", sat.DefaultConfig.MaxProofSteps, "cap on recorded proof steps")
	flagTimeout          = flag.Duration("timeout", 0, "wall-clock timeout (0 disables)")
)

type cliConfig struct {
	instanceFile string
	generate     string
	gzipped      bool
	trace        bool
	cpuProfile   bool
	memProfile   bool
	timeout      time.Duration
	solver       sat.Config
}

func parseConfig() (*cliConfig, error) {
	flag.Parse()

	cfg := &cliConfig{
		generate:   *flagGenerate,
		gzipped:    *flagGzipped,
		trace:      *flagTrace,
		cpuProfile: *flagCPUProfile,
		memProfile: *flagMemProfile,
		timeout:    *flagTimeout,
		solver: sat.Config{
			EnableRestart:           *flagRestart,
			RestartThreshold:        *flagRestartThreshold,
			EnableSubsumption:       *flagSubsumption,
			MaxIterations:           *flagMaxIterations,
			MaxProofSteps:           *flagMaxProofSteps,
			MaxSameLevelResolutions: sat.DefaultConfig.MaxSameLevelResolutions,
			MaxBCPRounds:            sat.DefaultConfig.MaxBCPRounds,
			MaxLearnts:              sat.DefaultConfig.MaxLearnts,
			ClauseDecay:             sat.DefaultConfig.ClauseDecay,
		},
	}

	if cfg.generate == "" {
		if flag.NArg() == 0 || flag.Arg(0) == "" {
			return nil, fmt.Errorf("missing instance file (or -generate)")
		}
		cfg.instanceFile = flag.Arg(0)
	}
	return cfg, nil
}

func loadInstance(cfg *cliConfig) (*sat.CNF, error) {
	if cfg.generate != "" {
		return generateInstance(cfg.generate)
	}
	return parsers.LoadDIMACS(cfg.instanceFile, cfg.gzipped)
}

func generateInstance(spec string) (*sat.CNF, error) {
	kind, rest, ok := strings.Cut(spec, ":")
	if !ok {
		return nil, fmt.Errorf("malformed -generate value %q, expected kind:args", spec)
	}
	args := strings.Split(rest, ",")

	parseInt := func(s string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(s))
	}

	switch kind {
	case "php":
		if len(args) != 2 {
			return nil, fmt.Errorf("php generator expects P,H")
		}
		p, err := parseInt(args[0])
		if err != nil {
			return nil, err
		}
		h, err := parseInt(args[1])
		if err != nil {
			return nil, err
		}
		return bench.PigeonHole(p, h), nil
	case "r3sat":
		if len(args) != 2 {
			return nil, fmt.Errorf("r3sat generator expects V,C")
		}
		v, err := parseInt(args[0])
		if err != nil {
			return nil, err
		}
		c, err := parseInt(args[1])
		if err != nil {
			return nil, err
		}
		return bench.Random3SAT(v, c), nil
	default:
		return nil, fmt.Errorf("unknown generator %q", kind)
	}
}

func run(cfg *cliConfig) error {
	cnf, err := loadInstance(cfg)
	if err != nil {
		return fmt.Errorf("could not load instance: %s", err)
	}

	var tracer sat.Tracer = sat.NopTracer{}
	if cfg.trace {
		tracer = sat.PrintTracer{}
	}

	solver := sat.NewSolver(cnf, cfg.solver, tracer)

	fmt.Printf("c variables: %d\n", cnf.NumVars)
	fmt.Printf("c clauses:   %d\n", len(cnf.Clauses))

	if cfg.timeout > 0 {
		timer := time.AfterFunc(cfg.timeout, solver.Interrupt)
		defer timer.Stop()
	}

	verdict := solver.Solve()
	stats := solver.Stats()

	fmt.Printf("c time (ms):    %d\n", stats.ElapsedMillis)
	fmt.Printf("c decisions:    %d\n", stats.Decisions)
	fmt.Printf("c propagations: %d\n", stats.Propagations)
	fmt.Printf("c conflicts:    %d\n", stats.Conflicts)
	fmt.Printf("c learned:      %d\n", stats.LearnedClauses)
	fmt.Printf("c backjumps:    %d\n", stats.Backjumps)
	fmt.Printf("c restarts:     %d\n", stats.Restarts)
	fmt.Printf("c proof steps:  %d\n", stats.ProofSteps)
	fmt.Printf("c avg learnt size:   %.2f\n", stats.AvgLearntSize)
	fmt.Printf("c avg backjump span: %.2f\n", stats.AvgBackjumpSpan)
	fmt.Printf("c status:       %s\n", verdict.Status)

	switch verdict.Status {
	case sat.StatusSat:
		printModel(verdict.Model)
	case sat.StatusUnsat:
		fmt.Print(verdict.Proof)
	}

	return nil
}

func printModel(model map[string]bool) {
	names := make([]string, 0, len(model))
	for name := range model {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if model[name] {
			fmt.Println(name)
		} else {
			fmt.Println("!" + name)
		}
	}
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
