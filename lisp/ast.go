package lisp

import (
	"bytes"
	"strconv"
)

// NodeType is the grammar production a Node represents.
type NodeType uint

// Possible NodeType values
const (
	NInvalid NodeType = iota
	NNumber
	NBool
	NVariable
	NPlus
	NMinus
	NMultiply
	NDivide
	NModulus
	NGreater
	NSmaller
	NEqual
	NAnd
	NOr
	NNot
	NDefine
	NFunExp
	NFunBody
	NNamedCall
	NAnonCall
	NIf
	NPrintNum
	NPrintBool

	numNodeTypes
)

var nodeTypeStrings = []string{
	NInvalid:   "INVALID",
	NNumber:    "number",
	NBool:      "boolean",
	NVariable:  "variable",
	NPlus:      "+",
	NMinus:     "-",
	NMultiply:  "*",
	NDivide:    "/",
	NModulus:   "mod",
	NGreater:   ">",
	NSmaller:   "<",
	NEqual:     "=",
	NAnd:       "and",
	NOr:        "or",
	NNot:       "not",
	NDefine:    "define",
	NFunExp:    "fun",
	NFunBody:   "fun-body",
	NNamedCall: "call",
	NAnonCall:  "anonymous-call",
	NIf:        "if",
	NPrintNum:  "print-num",
	NPrintBool: "print-bool",
}

func (t NodeType) String() string {
	if t >= numNodeTypes {
		return nodeTypeStrings[NInvalid]
	}
	return nodeTypeStrings[t]
}

// Node is a vertex of the abstract syntax tree.  The variant set is closed,
// one tag per grammar production, so the evaluator can match exhaustively.
// Nodes are immutable once the parser hands them off.
type Node struct {
	Type   NodeType
	Num    int      // NNumber
	Bool   bool     // NBool
	Sym    string   // NVariable, NDefine, NNamedCall
	Params []string // NFunExp
	Cells  []*Node
}

// NumberNode returns a Node representing the integer literal x.
func NumberNode(x int) *Node {
	return &Node{
		Type: NNumber,
		Num:  x,
	}
}

// BoolNode returns a Node representing the literal #t or #f.
func BoolNode(b bool) *Node {
	return &Node{
		Type: NBool,
		Bool: b,
	}
}

// VariableNode returns a Node referencing the identifier sym.
func VariableNode(sym string) *Node {
	return &Node{
		Type: NVariable,
		Sym:  sym,
	}
}

// OpNode returns an operator Node with the given operands.  The caller is
// responsible for ensuring typ is an operator tag and that the operand count
// satisfies the grammar.
func OpNode(typ NodeType, operands ...*Node) *Node {
	return &Node{
		Type:  typ,
		Cells: operands,
	}
}

// DefineNode returns a Node binding sym to the value of expr.
func DefineNode(sym string, expr *Node) *Node {
	return &Node{
		Type:  NDefine,
		Sym:   sym,
		Cells: []*Node{expr},
	}
}

// FunBodyNode returns a Node holding a function body, a (possibly empty)
// sequence of define statements followed by exactly one tail expression.
func FunBodyNode(defines []*Node, tail *Node) *Node {
	return &Node{
		Type:  NFunBody,
		Cells: append(defines[:len(defines):len(defines)], tail),
	}
}

// FunNode returns a function literal Node.  body must be an NFunBody node.
func FunNode(params []string, body *Node) *Node {
	return &Node{
		Type:   NFunExp,
		Params: params,
		Cells:  []*Node{body},
	}
}

// NamedCallNode returns a Node applying the function bound to sym.
func NamedCallNode(sym string, args ...*Node) *Node {
	return &Node{
		Type:  NNamedCall,
		Sym:   sym,
		Cells: args,
	}
}

// AnonCallNode returns a Node applying an inline function literal.  The
// literal occupies Cells[0] and the arguments follow it.
func AnonCallNode(fun *Node, args ...*Node) *Node {
	return &Node{
		Type:  NAnonCall,
		Cells: append([]*Node{fun}, args...),
	}
}

// IfNode returns an if-then-else Node.
func IfNode(test, then, els *Node) *Node {
	return &Node{
		Type:  NIf,
		Cells: []*Node{test, then, els},
	}
}

// PrintNode returns a print-num or print-bool statement Node.
func PrintNode(typ NodeType, expr *Node) *Node {
	return &Node{
		Type:  typ,
		Cells: []*Node{expr},
	}
}

// Body returns the function body of an NFunExp node.
func (v *Node) Body() *Node {
	return v.Cells[0]
}

// Tail returns the tail expression of an NFunBody node.
func (v *Node) Tail() *Node {
	return v.Cells[len(v.Cells)-1]
}

// Defines returns the define statements of an NFunBody node.
func (v *Node) Defines() []*Node {
	return v.Cells[:len(v.Cells)-1]
}

// String renders the node as surface syntax.
func (v *Node) String() string {
	switch v.Type {
	case NNumber:
		return strconv.Itoa(v.Num)
	case NBool:
		if v.Bool {
			return "#t"
		}
		return "#f"
	case NVariable:
		return v.Sym
	case NPlus, NMinus, NMultiply, NDivide, NModulus, NGreater, NSmaller,
		NEqual, NAnd, NOr, NNot, NIf, NPrintNum, NPrintBool:
		return formString(v.Type.String(), nil, v.Cells)
	case NDefine:
		return formString("define", []string{v.Sym}, v.Cells)
	case NFunExp:
		var buf bytes.Buffer
		buf.WriteString("(fun ")
		buf.WriteString(paramString(v.Params))
		for _, c := range v.Body().Cells {
			buf.WriteString(" ")
			buf.WriteString(c.String())
		}
		buf.WriteString(")")
		return buf.String()
	case NFunBody:
		// NFunBody never renders on its own in valid syntax; NFunExp splices
		// its cells instead.
		return formString("fun-body", nil, v.Cells)
	case NNamedCall:
		return formString(v.Sym, nil, v.Cells)
	case NAnonCall:
		return formString(v.Cells[0].String(), nil, v.Cells[1:])
	default:
		return "#<invalid>"
	}
}

func formString(head string, atoms []string, cells []*Node) string {
	var buf bytes.Buffer
	buf.WriteString("(")
	buf.WriteString(head)
	for _, s := range atoms {
		buf.WriteString(" ")
		buf.WriteString(s)
	}
	for _, c := range cells {
		buf.WriteString(" ")
		buf.WriteString(c.String())
	}
	buf.WriteString(")")
	return buf.String()
}

func paramString(params []string) string {
	var buf bytes.Buffer
	buf.WriteString("(")
	for i, p := range params {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(p)
	}
	buf.WriteString(")")
	return buf.String()
}
