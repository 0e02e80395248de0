package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lebr0nli/NCU-Mini-LISP/lisp"
)

// TestParseRendering round-trips source through the parser and the AST's
// surface-syntax renderer.
func TestParseRendering(t *testing.T) {
	tests := []struct {
		source string
		want   string // canonical rendering, source itself when empty
	}{
		{source: "5", want: ""},
		{source: "-13", want: ""},
		{source: "0", want: ""},
		{source: "#t", want: ""},
		{source: "#f", want: ""},
		{source: "foo-bar2", want: ""},
		{source: "(+ 1 2 3)", want: ""},
		{source: "(- 1 2)", want: ""},
		{source: "(* 1 2 3)", want: ""},
		{source: "(/ 8 2)", want: ""},
		{source: "(mod 7 3)", want: ""},
		{source: "(> 1 2)", want: ""},
		{source: "(< 1 2)", want: ""},
		{source: "(= 1 2 3)", want: ""},
		{source: "(and #t #f)", want: ""},
		{source: "(or #t #f #t)", want: ""},
		{source: "(not #t)", want: ""},
		{source: "(+ (* 2 3) (- 10 4))", want: ""},
		{source: "(define x 5)", want: ""},
		{source: "(define f (fun (x y) (+ x y)))", want: ""},
		{source: "(fun (x) (define y 1) (+ x y))", want: ""},
		{source: "(fun () 1)", want: ""},
		{source: "(f 1 2)", want: ""},
		{source: "((fun (x) (* x x)) 4)", want: ""},
		{source: "(if (> x 0) 1 -1)", want: ""},
		{source: "(print-num (+ 1 2))", want: ""},
		{source: "(print-bool #t)", want: ""},
		{source: "  ( +   1\n\t2 )  ", want: "(+ 1 2)"},
	}
	for _, test := range tests {
		t.Run(test.source, func(t *testing.T) {
			prog, err := Parse([]byte(test.source))
			require.NoError(t, err)
			require.Len(t, prog, 1)
			want := test.want
			if want == "" {
				want = test.source
			}
			assert.Equal(t, want, prog[0].String())
		})
	}
}

func TestParseProgramOrder(t *testing.T) {
	prog, err := Parse([]byte("(define x 1)\n(print-num x)\n(+ x 1)"))
	require.NoError(t, err)
	require.Len(t, prog, 3)
	assert.Equal(t, lisp.NDefine, prog[0].Type)
	assert.Equal(t, lisp.NPrintNum, prog[1].Type)
	assert.Equal(t, lisp.NPlus, prog[2].Type)
}

func TestParseEmptyInput(t *testing.T) {
	prog, err := Parse([]byte("  \n\t "))
	require.NoError(t, err)
	assert.Empty(t, prog)
}

func TestParseFunShape(t *testing.T) {
	prog, err := Parse([]byte("(fun (a b-c) (define d 1) (define e 2) (+ a b-c d e))"))
	require.NoError(t, err)
	require.Len(t, prog, 1)
	fun := prog[0]
	require.Equal(t, lisp.NFunExp, fun.Type)
	assert.Equal(t, []string{"a", "b-c"}, fun.Params)
	body := fun.Body()
	require.Equal(t, lisp.NFunBody, body.Type)
	require.Len(t, body.Defines(), 2)
	assert.Equal(t, lisp.NDefine, body.Defines()[0].Type)
	assert.Equal(t, lisp.NPlus, body.Tail().Type)
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"leading zero", "(print-num 007)"},
		{"signed zero", "(print-num -0)"},
		{"uppercase identifier", "(define Foo 1)"},
		{"identifier starting with digit", "(define 1x 2)"},
		{"unbalanced open", "(+ 1 2"},
		{"unbalanced close", "(+ 1 2))"},
		{"empty form", "()"},
		{"number head", "(1 2 3)"},
		{"minus wants two operands", "(- 1 2 3)"},
		{"divide wants two operands", "(/ 8)"},
		{"plus wants two operands", "(+ 1)"},
		{"not is unary", "(not #t #f)"},
		{"and wants two operands", "(and #t)"},
		{"if wants three parts", "(if #t 1)"},
		{"define wants two parts", "(define x)"},
		{"define of a keyword", "(define if 1)"},
		{"define in expression position", "(+ 1 (define x 2))"},
		{"print in expression position", "(+ 1 (print-num 2))"},
		{"print wants one operand", "(print-num 1 2)"},
		{"keyword as variable", "(+ 1 mod)"},
		{"fun without body", "(fun (x))"},
		{"fun with define after tail", "(fun (x) x (define y 1))"},
		{"fun parameter is not an identifier", "(fun (x 1) x)"},
		{"anonymous call head is not fun", "((+ 1 2) 3)"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.source))
			var serr *SyntaxError
			require.ErrorAs(t, err, &serr, "parse accepted %q", test.source)
		})
	}
}

func TestParseNegativeLiteralVersusMinus(t *testing.T) {
	prog, err := Parse([]byte("(- -5 -3)"))
	require.NoError(t, err)
	require.Len(t, prog, 1)
	node := prog[0]
	require.Equal(t, lisp.NMinus, node.Type)
	assert.Equal(t, -5, node.Cells[0].Num)
	assert.Equal(t, -3, node.Cells[1].Num)
}
