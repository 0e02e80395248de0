package lisp

import "fmt"

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.  Errors are returned as LError values and propagate outward
// unchanged, so the first failure aborts the whole evaluation.
func (env *LEnv) Eval(v *Node) *LVal {
	if fn := env.Runtime.Trace; fn != nil {
		fn(v, env)
	}
	switch v.Type {
	case NNumber:
		return Number(v.Num)
	case NBool:
		return Bool(v.Bool)
	case NVariable:
		return env.Get(v.Sym)
	case NPlus, NMinus, NMultiply, NDivide, NModulus, NGreater, NSmaller, NEqual:
		return env.evalNumericOp(v)
	case NAnd, NOr, NNot:
		return env.evalLogicalOp(v)
	case NDefine:
		return env.evalDefine(v)
	case NFunExp:
		// The closure captures env itself, not a copy.  Defines that land in
		// an already-captured frame later are visible through the closure.
		return Fun(v.Params, v.Body(), env)
	case NFunBody:
		return env.evalFunBody(v)
	case NNamedCall, NAnonCall:
		return env.evalCall(v)
	case NIf:
		return env.evalIf(v)
	case NPrintNum, NPrintBool:
		return env.evalPrint(v)
	default:
		return env.Errorf(ErrRuntime, "invalid node type: %v", v.Type)
	}
}

// evalOperands evaluates cells left to right in env.  The second return
// value is non-nil if any operand evaluated to an error, and holds the first
// such error.
func (env *LEnv) evalOperands(cells []*Node) ([]*LVal, *LVal) {
	vals := make([]*LVal, len(cells))
	for i, c := range cells {
		vals[i] = env.Eval(c)
		if vals[i].Type == LError {
			return nil, vals[i]
		}
	}
	return vals, nil
}

// typeCheck verifies that every value in vals has type want.
func (env *LEnv) typeCheck(want LType, vals []*LVal) *LVal {
	for _, v := range vals {
		if v.Type != want {
			return env.Errorf(ErrType, "expected %q but got %q", want, v.Type)
		}
	}
	return nil
}

// numericOps maps numeric operator tags to folds over type-checked operands.
// Operand counts are enforced by the parser: + * = take two or more
// operands, the rest are strictly binary.
var numericOps = map[NodeType]func(env *LEnv, args []*LVal) *LVal{
	NPlus: func(env *LEnv, args []*LVal) *LVal {
		sum := 0
		for _, a := range args {
			sum += a.Num
		}
		return Number(sum)
	},
	NMinus: func(env *LEnv, args []*LVal) *LVal {
		return Number(args[0].Num - args[1].Num)
	},
	NMultiply: func(env *LEnv, args []*LVal) *LVal {
		prod := 1
		for _, a := range args {
			prod *= a.Num
		}
		return Number(prod)
	},
	NDivide: func(env *LEnv, args []*LVal) *LVal {
		if args[1].Num == 0 {
			return env.Errorf(ErrDivisionByZero, "division by zero: %d / 0", args[0].Num)
		}
		// Go division truncates toward zero, matching the language.
		return Number(args[0].Num / args[1].Num)
	},
	NModulus: func(env *LEnv, args []*LVal) *LVal {
		if args[1].Num == 0 {
			return env.Errorf(ErrDivisionByZero, "division by zero: %d mod 0", args[0].Num)
		}
		return Number(args[0].Num % args[1].Num)
	},
	NGreater: func(env *LEnv, args []*LVal) *LVal {
		return Bool(args[0].Num > args[1].Num)
	},
	NSmaller: func(env *LEnv, args []*LVal) *LVal {
		return Bool(args[0].Num < args[1].Num)
	},
	NEqual: func(env *LEnv, args []*LVal) *LVal {
		for _, a := range args[1:] {
			if a.Num != args[0].Num {
				return Bool(false)
			}
		}
		return Bool(true)
	},
}

func (env *LEnv) evalNumericOp(v *Node) *LVal {
	args, lerr := env.evalOperands(v.Cells)
	if lerr != nil {
		return lerr
	}
	if lerr := env.typeCheck(LNumber, args); lerr != nil {
		return lerr
	}
	return numericOps[v.Type](env, args)
}

// evalLogicalOp evaluates and, or, and not.  Unlike if, the logical
// operators are eager: every operand is evaluated before the fold, so an
// error in a later operand surfaces even when the earlier operands already
// determine the result.
func (env *LEnv) evalLogicalOp(v *Node) *LVal {
	args, lerr := env.evalOperands(v.Cells)
	if lerr != nil {
		return lerr
	}
	if lerr := env.typeCheck(LBool, args); lerr != nil {
		return lerr
	}
	switch v.Type {
	case NAnd:
		res := true
		for _, a := range args {
			res = res && a.Bool
		}
		return Bool(res)
	case NOr:
		res := false
		for _, a := range args {
			res = res || a.Bool
		}
		return Bool(res)
	default: // NNot
		return Bool(!args[0].Bool)
	}
}

// evalDefine binds v.Sym in the current frame.  The bound value is returned
// but define only appears in statement positions, so the value is never
// consumed by another expression.
func (env *LEnv) evalDefine(v *Node) *LVal {
	val := env.Eval(v.Cells[0])
	if val.Type == LError {
		return val
	}
	env.Put(v.Sym, val)
	return val
}

// evalFunBody runs a function body in env without pushing a frame of its
// own; the caller has already created the call frame.  Each define statement
// lands in that frame, in order, before the tail expression is evaluated.
// This is what makes sibling and self recursion work: a fun expression in
// the tail (or in a later define) captures the frame holding the earlier
// defines.
func (env *LEnv) evalFunBody(v *Node) *LVal {
	for _, d := range v.Defines() {
		if lerr := env.Eval(d); lerr.Type == LError {
			return lerr
		}
	}
	return env.Eval(v.Tail())
}

func (env *LEnv) evalCall(v *Node) *LVal {
	var f *LVal
	var args []*Node
	name := v.Sym
	if v.Type == NNamedCall {
		f = env.Get(v.Sym)
		args = v.Cells
	} else {
		f = env.Eval(v.Cells[0])
		args = v.Cells[1:]
		name = v.Cells[0].String()
	}
	if f.Type == LError {
		return f
	}
	if f.Type != LFun {
		return env.Errorf(ErrType, "expected %q but got %q", LFun, f.Type)
	}
	// Arguments are evaluated in the caller's environment.
	vals, lerr := env.evalOperands(args)
	if lerr != nil {
		return lerr
	}
	if len(vals) != len(f.Params) {
		return env.Errorf(ErrArity, "required %d arguments but got %d arguments",
			len(f.Params), len(vals))
	}
	if !env.Runtime.Stack.Push(name) {
		return env.Errorf(ErrStackOverflow, "maximum recursion depth exceeded (%d)",
			env.Runtime.Stack.MaxHeight)
	}
	defer env.Runtime.Stack.Pop()

	// The call frame chains to the closure's captured environment, not the
	// caller's.  Chaining to env here would be dynamic scoping.
	fenv := NewEnv(f.Env)
	for i, p := range f.Params {
		fenv.Put(p, vals[i])
	}
	return fenv.Eval(f.Body)
}

func (env *LEnv) evalIf(v *Node) *LVal {
	test := env.Eval(v.Cells[0])
	if test.Type == LError {
		return test
	}
	if test.Type != LBool {
		return env.Errorf(ErrType, "expected %q but got %q", LBool, test.Type)
	}
	// Exactly one branch is evaluated; an error in the untaken branch never
	// surfaces.
	if test.Bool {
		return env.Eval(v.Cells[1])
	}
	return env.Eval(v.Cells[2])
}

func (env *LEnv) evalPrint(v *Node) *LVal {
	val := env.Eval(v.Cells[0])
	if val.Type == LError {
		return val
	}
	want := LNumber
	if v.Type == NPrintBool {
		want = LBool
	}
	if val.Type != want {
		return env.Errorf(ErrType, "expected %q but got %q", want, val.Type)
	}
	fmt.Fprintln(env.Runtime.Stdout, val)
	return val
}
