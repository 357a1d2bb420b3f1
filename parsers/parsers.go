// Package parsers loads DIMACS CNF files into internal/sat.CNF values,
// built on an encoding where a DIMACS literal maps directly onto a
// seqsat literal: dense variable IDs in [1..N], no zero-based shift.
package parsers

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"

	"github.com/lucidsat/seqsat/internal/sat"
)

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// LoadDIMACS parses filename as a DIMACS CNF file and returns the
// resulting CNF, with variables named by their 1-based DIMACS index.
func LoadDIMACS(filename string, gzipped bool) (*sat.CNF, error) {
	r, err := reader(filename, gzipped)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()

	b := &builder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, err
	}
	if b.cnf == nil {
		return nil, fmt.Errorf("file %q has no problem line", filename)
	}
	return b.cnf, nil
}

// builder implements dimacs.Builder, accumulating clauses into a CNF.
type builder struct {
	cnf *sat.CNF
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("not a CNF problem: %q", problem)
	}
	b.cnf = sat.NewCNF(nVars)
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	if b.cnf == nil {
		return fmt.Errorf("clause line before problem line")
	}
	lits := make([]int, len(tmpClause))
	copy(lits, tmpClause)
	return b.cnf.AddClause(lits)
}

func (b *builder) Comment(_ string) error {
	return nil
}

// ReadModel parses a single model line (a DIMACS-style clause whose
// literals denote a full assignment, one per variable) from filename,
// using symbols to translate IDs back to names. It is grounded on the
// teacher's parsers.ReadModels, narrowed to the single-model case this
// solver produces.
func ReadModel(filename string, symbols *sat.SymbolTable) (map[string]bool, error) {
	r, err := reader(filename, false)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()

	b := &modelBuilder{symbols: symbols, model: make(map[string]bool)}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, err
	}
	return b.model, nil
}

type modelBuilder struct {
	symbols *sat.SymbolTable
	model   map[string]bool
}

func (b *modelBuilder) Problem(string, int, int) error {
	return fmt.Errorf("model files should not have a problem line")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil
}

func (b *modelBuilder) Clause(tmpClause []int) error {
	for _, l := range tmpClause {
		v := l
		if v < 0 {
			v = -v
		}
		b.model[b.symbols.Name(v)] = l > 0
	}
	return nil
}
