package lisptest

import "testing"

// TestSuites runs the YAML program corpus under testdata.
func TestSuites(t *testing.T) {
	RunSuiteDir(t, "testdata")
}

// TestSequences exercises programs split across several parses sharing one
// environment, the way a repl session accumulates definitions.
func TestSequences(t *testing.T) {
	tests := TestSuite{
		{"definitions accumulate", TestSequence{
			{Source: "(define x 10)"},
			{Source: "(define double (fun (n) (* n 2)))"},
			{Source: "(print-num (double x))", Output: "20\n"},
		}},
		{"closures span parses", TestSequence{
			{Source: "(define add-x (fun (x) (fun (y) (+ x y))))"},
			{Source: "(define z (add-x 10))"},
			{Source: "(print-num (z 40))", Output: "50\n"},
		}},
		{"errors leave earlier definitions intact", TestSequence{
			{Source: "(define x 1)"},
			{Source: "(print-num (/ x 0))", Err: "DivisionByZero"},
			{Source: "(print-num x)", Output: "1\n"},
		}},
		{"syntax errors evaluate nothing", TestSequence{
			{Source: "(define y 00)", Err: "SyntaxError"},
			{Source: "(print-num y)", Err: "UnboundVariable"},
		}},
	}
	RunTestSuite(t, tests)
}
