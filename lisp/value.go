package lisp

import (
	"bytes"
	"strconv"
)

// LType is the type of an LVal.
type LType uint

// Possible LType values.  The string forms are the type names surfaced in
// type errors.
const (
	LInvalid LType = iota
	LNumber
	LBool
	LFun
	LError

	numLTypes
)

var ltypeStrings = []string{
	LInvalid: "INVALID",
	LNumber:  "number",
	LBool:    "boolean",
	LFun:     "closure",
	LError:   "error",
}

func (t LType) String() string {
	if t >= numLTypes {
		return ltypeStrings[LInvalid]
	}
	return ltypeStrings[t]
}

// LVal is a runtime value.  Values are immutable once constructed; the
// language has no mutation operator.
type LVal struct {
	Type LType
	Num  int
	Bool bool
	Err  error

	// Fields needed for closure values.  Env is the environment captured at
	// the point the fun expression was evaluated, shared by reference.
	Params []string
	Body   *Node
	Env    *LEnv
}

// Number returns an LVal representing the number x.
func Number(x int) *LVal {
	return &LVal{
		Type: LNumber,
		Num:  x,
	}
}

// Bool returns an LVal representing the boolean b.
func Bool(b bool) *LVal {
	return &LVal{
		Type: LBool,
		Bool: b,
	}
}

// Fun returns a closure over env with the given parameter list and body.
// body must be an NFunBody node.
func Fun(params []string, body *Node, env *LEnv) *LVal {
	return &LVal{
		Type:   LFun,
		Params: params,
		Body:   body,
		Env:    env,
	}
}

// Error returns an LVal representing the error err.
func Error(err error) *LVal {
	return &LVal{
		Type: LError,
		Err:  err,
	}
}

// IsError returns true if v is an error value.
func (v *LVal) IsError() bool {
	return v.Type == LError
}

// String renders the value canonically, `#t`/`#f` for booleans and decimal
// digits for numbers.  This is the exact text emitted by print statements.
func (v *LVal) String() string {
	switch v.Type {
	case LNumber:
		return strconv.Itoa(v.Num)
	case LBool:
		if v.Bool {
			return "#t"
		}
		return "#f"
	case LFun:
		var buf bytes.Buffer
		buf.WriteString("#<closure ")
		buf.WriteString(paramString(v.Params))
		buf.WriteString(">")
		return buf.String()
	case LError:
		return v.Err.Error()
	default:
		return "#<invalid>"
	}
}
