package parsers

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDIMACS(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "instance.cnf")
	content := "c a comment\np cnf 3 2\n1 2 0\n-1 3 0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cnf, err := LoadDIMACS(path, false)
	if err != nil {
		t.Fatalf("LoadDIMACS: %v", err)
	}
	if cnf.NumVars != 3 {
		t.Errorf("NumVars = %d, want 3", cnf.NumVars)
	}
	if len(cnf.Clauses) != 2 {
		t.Fatalf("len(Clauses) = %d, want 2", len(cnf.Clauses))
	}
	want := [][]int{{1, 2}, {-1, 3}}
	for i, c := range want {
		if len(cnf.Clauses[i]) != len(c) {
			t.Fatalf("Clauses[%d] = %v, want %v", i, cnf.Clauses[i], c)
		}
		for j, l := range c {
			if cnf.Clauses[i][j] != l {
				t.Errorf("Clauses[%d][%d] = %d, want %d", i, j, cnf.Clauses[i][j], l)
			}
		}
	}
}

func TestLoadDIMACSMissingFile(t *testing.T) {
	if _, err := LoadDIMACS(filepath.Join(t.TempDir(), "missing.cnf"), false); err == nil {
		t.Error("LoadDIMACS of a missing file returned nil error")
	}
}
