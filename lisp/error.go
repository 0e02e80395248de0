package lisp

import "fmt"

// ErrKind classifies the runtime errors the evaluator can raise.
type ErrKind uint

// Possible ErrKind values
const (
	ErrRuntime ErrKind = iota
	ErrUnboundVariable
	ErrType
	ErrArity
	ErrDivisionByZero
	ErrStackOverflow

	numErrKinds
)

var errKindStrings = []string{
	ErrRuntime:         "runtime error",
	ErrUnboundVariable: "unbound variable",
	ErrType:            "type error",
	ErrArity:           "arity error",
	ErrDivisionByZero:  "division by zero",
	ErrStackOverflow:   "stack overflow",
}

func (k ErrKind) String() string {
	if k >= numErrKinds {
		return errKindStrings[ErrRuntime]
	}
	return errKindStrings[k]
}

// EvalError is a runtime error raised during evaluation.  The call stack is
// copied at the point the error is constructed so it can be rendered after
// the enclosing frames unwind.
type EvalError struct {
	Kind  ErrKind
	Msg   string
	Stack *CallStack
}

// Error implements the error interface.
func (e *EvalError) Error() string {
	return e.Kind.String() + ": " + e.Msg
}

// Errorf constructs an error value of the given kind, capturing the current
// call stack.  Every runtime failure in the evaluator funnels through here.
func (env *LEnv) Errorf(kind ErrKind, format string, v ...interface{}) *LVal {
	return Error(&EvalError{
		Kind:  kind,
		Msg:   fmt.Sprintf(format, v...),
		Stack: env.Runtime.Stack.Copy(),
	})
}
