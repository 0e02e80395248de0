package parser

import (
	"fmt"
	"regexp"

	"github.com/lebr0nli/NCU-Mini-LISP/lisp"
)

// opNodeTypes maps operator head symbols to their AST tags.
var opNodeTypes = map[string]lisp.NodeType{
	"+":   lisp.NPlus,
	"-":   lisp.NMinus,
	"*":   lisp.NMultiply,
	"/":   lisp.NDivide,
	"mod": lisp.NModulus,
	">":   lisp.NGreater,
	"<":   lisp.NSmaller,
	"=":   lisp.NEqual,
	"and": lisp.NAnd,
	"or":  lisp.NOr,
	"not": lisp.NNot,
}

// opArity gives the required operand count per operator; min == max for the
// strictly binary operators and not, while + * = and or accept two or more.
var opArity = map[lisp.NodeType]struct{ min, max int }{
	lisp.NPlus:     {2, -1},
	lisp.NMinus:    {2, 2},
	lisp.NMultiply: {2, -1},
	lisp.NDivide:   {2, 2},
	lisp.NModulus:  {2, 2},
	lisp.NGreater:  {2, 2},
	lisp.NSmaller:  {2, 2},
	lisp.NEqual:    {2, -1},
	lisp.NAnd:      {2, -1},
	lisp.NOr:       {2, -1},
	lisp.NNot:      {1, 1},
}

// reserved names may only appear as the head of their own form.
var reserved = map[string]bool{
	"mod":        true,
	"and":        true,
	"or":         true,
	"not":        true,
	"define":     true,
	"fun":        true,
	"if":         true,
	"print-num":  true,
	"print-bool": true,
}

var identPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

func errf(f *form, format string, v ...interface{}) error {
	pos := -1
	if f != nil {
		pos = f.pos
	}
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, v...)}
}

// analyzeStmt shapes a top-level form.  define and print statements are
// legal here, in addition to any bare expression.
func analyzeStmt(f *form) (*lisp.Node, error) {
	if f.kind == formList && len(f.list) > 0 && f.list[0].kind == formSymbol {
		switch f.list[0].sym {
		case "define":
			return analyzeDefine(f)
		case "print-num":
			return analyzePrint(f, lisp.NPrintNum)
		case "print-bool":
			return analyzePrint(f, lisp.NPrintBool)
		}
	}
	return analyzeExpr(f)
}

// analyzeExpr shapes a form appearing in expression position, where define
// and print statements are not legal.
func analyzeExpr(f *form) (*lisp.Node, error) {
	switch f.kind {
	case formNumber:
		return lisp.NumberNode(f.num), nil
	case formBool:
		return lisp.BoolNode(f.b), nil
	case formSymbol:
		if reserved[f.sym] || !identPattern.MatchString(f.sym) {
			return nil, errf(f, "%s is not a variable", f.describe())
		}
		return lisp.VariableNode(f.sym), nil
	case formList:
		return analyzeForm(f)
	default:
		return nil, errf(f, "unexpected %s", f.describe())
	}
}

func analyzeForm(f *form) (*lisp.Node, error) {
	if len(f.list) == 0 {
		return nil, errf(f, "empty expression")
	}
	head := f.list[0]
	if head.kind == formList {
		// The head of an anonymous call must literally be a fun expression.
		fun, err := analyzeForm(head)
		if err != nil {
			return nil, err
		}
		if fun.Type != lisp.NFunExp {
			return nil, errf(head, "expression head is not a fun expression")
		}
		args, err := analyzeExprs(f.list[1:])
		if err != nil {
			return nil, err
		}
		return lisp.AnonCallNode(fun, args...), nil
	}
	if head.kind != formSymbol {
		return nil, errf(head, "%s cannot head an expression", head.describe())
	}
	if typ, ok := opNodeTypes[head.sym]; ok {
		return analyzeOp(f, typ)
	}
	switch head.sym {
	case "fun":
		return analyzeFun(f)
	case "if":
		return analyzeIf(f)
	case "define", "print-num", "print-bool":
		return nil, errf(f, "%s is a statement, not an expression", head.sym)
	}
	args, err := analyzeExprs(f.list[1:])
	if err != nil {
		return nil, err
	}
	return lisp.NamedCallNode(head.sym, args...), nil
}

func analyzeExprs(forms []*form) ([]*lisp.Node, error) {
	nodes := make([]*lisp.Node, len(forms))
	for i, f := range forms {
		var err error
		nodes[i], err = analyzeExpr(f)
		if err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func analyzeOp(f *form, typ lisp.NodeType) (*lisp.Node, error) {
	arity := opArity[typ]
	operands := f.list[1:]
	switch {
	case len(operands) < arity.min:
		return nil, errf(f, "%s expects at least %d operands but got %d",
			f.list[0].sym, arity.min, len(operands))
	case arity.max >= 0 && len(operands) > arity.max:
		return nil, errf(f, "%s expects exactly %d operands but got %d",
			f.list[0].sym, arity.max, len(operands))
	}
	nodes, err := analyzeExprs(operands)
	if err != nil {
		return nil, err
	}
	return lisp.OpNode(typ, nodes...), nil
}

// analyzeFun shapes (fun (id*) def-stmt* expr).
func analyzeFun(f *form) (*lisp.Node, error) {
	if len(f.list) < 3 {
		return nil, errf(f, "fun expects a parameter list and a body")
	}
	plist := f.list[1]
	if plist.kind != formList {
		return nil, errf(plist, "fun parameter list must be a list of identifiers")
	}
	params := make([]string, len(plist.list))
	for i, p := range plist.list {
		if p.kind != formSymbol || reserved[p.sym] || !identPattern.MatchString(p.sym) {
			return nil, errf(p, "%s is not a valid parameter name", p.describe())
		}
		params[i] = p.sym
	}
	// The body is zero or more define statements followed by exactly one
	// tail expression.
	body := f.list[2:]
	defines := make([]*lisp.Node, len(body)-1)
	for i, d := range body[:len(body)-1] {
		var err error
		defines[i], err = analyzeDefine(d)
		if err != nil {
			return nil, err
		}
	}
	tail, err := analyzeExpr(body[len(body)-1])
	if err != nil {
		return nil, err
	}
	return lisp.FunNode(params, lisp.FunBodyNode(defines, tail)), nil
}

func analyzeIf(f *form) (*lisp.Node, error) {
	if len(f.list) != 4 {
		return nil, errf(f, "if expects a test, a then expression, and an else expression")
	}
	parts, err := analyzeExprs(f.list[1:])
	if err != nil {
		return nil, err
	}
	return lisp.IfNode(parts[0], parts[1], parts[2]), nil
}

func analyzeDefine(f *form) (*lisp.Node, error) {
	if f.kind != formList || len(f.list) == 0 ||
		f.list[0].kind != formSymbol || f.list[0].sym != "define" {
		return nil, errf(f, "expected a define statement")
	}
	if len(f.list) != 3 {
		return nil, errf(f, "define expects an identifier and an expression")
	}
	id := f.list[1]
	if id.kind != formSymbol || reserved[id.sym] || !identPattern.MatchString(id.sym) {
		return nil, errf(id, "%s cannot be defined", id.describe())
	}
	expr, err := analyzeExpr(f.list[2])
	if err != nil {
		return nil, err
	}
	return lisp.DefineNode(id.sym, expr), nil
}

func analyzePrint(f *form, typ lisp.NodeType) (*lisp.Node, error) {
	if len(f.list) != 2 {
		return nil, errf(f, "%s expects exactly one operand", f.list[0].sym)
	}
	expr, err := analyzeExpr(f.list[1])
	if err != nil {
		return nil, err
	}
	return lisp.PrintNode(typ, expr), nil
}
