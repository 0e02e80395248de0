/*
Package parser parses mini-lisp source text into the abstract syntax
consumed by the lisp package.

	program := <stmt>+
	stmt    := <expr> | <define> | <print-stmt>
	expr    := <number> | <boolean> | <id> | <op-expr> | <fun-expr> |
	           <fun-call> | <if-expr>
	number  := '0' | '-'? nonzero-digit digit*
	boolean := '#t' | '#f'
	id      := letter ( letter | digit | '-' )*

The surface text is first read as generic parenthesized forms and then
shaped into the fixed node set, so every malformed construct (a bad token,
a wrong operator arity, a misplaced define) is rejected as a *SyntaxError
before anything is evaluated.
*/
package parser

import (
	"fmt"
	"strconv"

	parsec "github.com/prataprc/goparsec"

	"github.com/lebr0nli/NCU-Mini-LISP/lisp"
)

// SyntaxError describes input rejected by the grammar.
type SyntaxError struct {
	Pos int // byte offset in the source, -1 when unknown
	Msg string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Pos < 0 {
		return "syntax error: " + e.Msg
	}
	return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Msg)
}

// Parse parses a complete program and returns its top-level statements in
// source order.
func Parse(text []byte) ([]*lisp.Node, error) {
	forms, err := parseForms(text)
	if err != nil {
		return nil, err
	}
	stmts := make([]*lisp.Node, len(forms))
	for i, f := range forms {
		stmts[i], err = analyzeStmt(f)
		if err != nil {
			return nil, err
		}
	}
	return stmts, nil
}

// parseForms reads the source text as a sequence of generic forms without
// shaping them into AST nodes.
func parseForms(text []byte) ([]*form, error) {
	s := parsec.NewScanner(text)
	p := newParsecParser()

	var forms []*form
	root, s := p(s)
	for root != nil {
		f, err := rootForm(root)
		if err != nil {
			return nil, err
		}
		forms = append(forms, f)
		root, s = p(s)
	}
	_, s = s.SkipWS()
	if !s.Endof() {
		return nil, &SyntaxError{Pos: s.GetCursor(), Msg: "unexpected character"}
	}
	return forms, nil
}

func newParsecParser() parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	boolean := parsec.Token(`#[tf]\b`, "BOOL")
	// Leading zeros and a signed zero are not numbers.
	number := parsec.Token(`(0|-?[1-9][0-9]*)\b`, "NUMBER")
	operator := parsec.Token(`[-+*/=<>]`, "OPERATOR")
	ident := parsec.Token(`[a-z][a-z0-9-]*`, "IDENT")
	term := parsec.OrdChoice(astNode(nodeTerm),
		boolean,
		number,
		operator,
		ident,
	)
	var expr parsec.Parser // forward declaration allows for recursive parsing
	exprList := parsec.Kleene(nil, &expr)
	sexpr := parsec.And(astNode(nodeList), openP, exprList, closeP)
	expr = parsec.OrdChoice(nil, term, sexpr)
	return expr
}

type formKind uint

const (
	formInvalid formKind = iota
	formNumber
	formBool
	formSymbol
	formList
)

// form is a generic parse tree node, either an atom or a parenthesized list,
// produced before grammar shaping.
type form struct {
	kind formKind
	num  int
	b    bool
	sym  string
	list []*form
	pos  int // byte offset of the form's first token
}

func (f *form) describe() string {
	switch f.kind {
	case formNumber:
		return strconv.Itoa(f.num)
	case formBool:
		if f.b {
			return "#t"
		}
		return "#f"
	case formSymbol:
		return f.sym
	default:
		return "a form"
	}
}

const (
	nodeInvalid nodeType = iota
	nodeTerm
	nodeList
)

type nodeType uint

func newAST(typ nodeType, nodes []parsec.ParsecNode) parsec.ParsecNode {
	nodes = cleanParsecNodeList(nodes)
	switch typ {
	case nodeTerm:
		term := nodes[0].(*parsec.Terminal)
		f := &form{pos: term.Position}
		switch term.Name {
		case "NUMBER":
			x, err := strconv.Atoi(term.Value)
			if err != nil {
				// unreachable for text matching the NUMBER pattern
				panic(fmt.Sprintf("bad number: %v (%s)", err, term.Value))
			}
			f.kind = formNumber
			f.num = x
		case "BOOL":
			f.kind = formBool
			f.b = term.Value == "#t"
		case "OPERATOR", "IDENT":
			f.kind = formSymbol
			f.sym = term.Value
		}
		return f
	case nodeList:
		f := &form{kind: formList}
		// We don't want the terminal parsec nodes '(' and ')'
		for _, c := range nodes {
			switch c := c.(type) {
			case *form:
				f.list = append(f.list, c)
			case *parsec.Terminal:
				if c.Name == "OPENP" {
					f.pos = c.Position
				}
			}
		}
		return f
	default:
		panic(fmt.Sprintf("unknown nodeType: %d", typ))
	}
}

func astNode(t nodeType) parsec.Nodify {
	return func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		return newAST(t, nodes)
	}
}

func cleanParsecNodeList(lis []parsec.ParsecNode) []parsec.ParsecNode {
	var nodes []parsec.ParsecNode
	for _, n := range lis {
		switch node := n.(type) {
		case []parsec.ParsecNode:
			nodes = append(nodes, cleanParsecNodeList(node)...)
		default:
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func rootForm(root parsec.ParsecNode) (*form, error) {
	nodes := cleanParsecNodeList([]parsec.ParsecNode{root})
	if len(nodes) == 0 {
		return nil, &SyntaxError{Pos: -1, Msg: "empty parse"}
	}
	f, ok := nodes[0].(*form)
	if !ok {
		return nil, &SyntaxError{Pos: -1, Msg: fmt.Sprintf("unexpected node %T", nodes[0])}
	}
	return f, nil
}
