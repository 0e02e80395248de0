// Package lisptest provides test helpers that execute mini-lisp programs
// and compare their printed output.
package lisptest

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lebr0nli/NCU-Mini-LISP/lisp"
	"github.com/lebr0nli/NCU-Mini-LISP/parser"
)

// TestStep pairs mini-lisp source text with the output its evaluation must
// produce.  When Err is non-empty the run must fail with that error kind
// after printing Output.
type TestStep struct {
	Source string
	Output string
	Err    string
}

// TestSequence is a sequence of programs evaluated against a shared
// environment, so defines from earlier steps are visible to later ones.
type TestSequence []TestStep

// TestSuite is a set of named TestSequences.
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on an isolated environment.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			var buf bytes.Buffer
			env := lisp.NewRootEnv(lisp.WithStdout(&buf))
			for i, step := range test.TestSequence {
				buf.Reset()
				prog, err := parser.Parse([]byte(step.Source))
				if step.Err == "SyntaxError" {
					var serr *parser.SyntaxError
					require.ErrorAs(t, err, &serr, "step %d: %s", i, step.Source)
					continue
				}
				require.NoError(t, err, "step %d: %s", i, step.Source)

				err = lisp.RunProgram(env, prog)
				if step.Err == "" {
					assert.NoError(t, err, "step %d: %s", i, step.Source)
				} else {
					assertErrKind(t, err, step.Err, i, step.Source)
				}
				assert.Equal(t, step.Output, buf.String(), "step %d: %s", i, step.Source)
			}
		})
	}
}

// errKinds maps the error names used in test tables to evaluator kinds.
var errKinds = map[string]lisp.ErrKind{
	"UnboundVariable": lisp.ErrUnboundVariable,
	"TypeError":       lisp.ErrType,
	"ArityError":      lisp.ErrArity,
	"DivisionByZero":  lisp.ErrDivisionByZero,
	"StackOverflow":   lisp.ErrStackOverflow,
}

func assertErrKind(t *testing.T, err error, name string, step int, source string) {
	t.Helper()
	kind, ok := errKinds[name]
	if !ok {
		t.Fatalf("step %d: unknown error kind %q", step, name)
	}
	var lerr *lisp.EvalError
	if !errors.As(err, &lerr) {
		t.Errorf("step %d: expected %s but got %v: %s", step, name, err, source)
		return
	}
	assert.Equal(t, kind, lerr.Kind, "step %d: %s", step, source)
}
