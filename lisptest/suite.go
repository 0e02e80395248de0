package lisptest

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// Suite is a corpus of mini-lisp programs described in a YAML file.
type Suite struct {
	Name     string    `yaml:"name"`
	Programs []Program `yaml:"programs"`
}

// Program is one entry of a Suite.  Output holds the complete expected
// stdout text; Error, when non-empty, names the error kind the run must
// fail with (SyntaxError, UnboundVariable, TypeError, ArityError,
// DivisionByZero, StackOverflow).
type Program struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Output string `yaml:"output"`
	Error  string `yaml:"error"`
}

// LoadSuite reads a YAML suite description.
func LoadSuite(path string) (*Suite, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	suite := &Suite{}
	if err := yaml.Unmarshal(b, suite); err != nil {
		return nil, err
	}
	return suite, nil
}

// RunSuiteFile loads the suite at path and runs each program as a subtest,
// giving every program a fresh environment.
func RunSuiteFile(t *testing.T, path string) {
	suite, err := LoadSuite(path)
	if err != nil {
		t.Fatalf("unable to load test suite: %v", err)
	}
	tests := make(TestSuite, len(suite.Programs))
	for i, p := range suite.Programs {
		tests[i].Name = p.Name
		tests[i].TestSequence = TestSequence{{
			Source: p.Source,
			Output: p.Output,
			Err:    p.Error,
		}}
	}
	RunTestSuite(t, tests)
}

// RunSuiteDir runs every *.yaml suite under dir.
func RunSuiteDir(t *testing.T, dir string) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatalf("no test suites under %s", dir)
	}
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			RunSuiteFile(t, path)
		})
	}
}
