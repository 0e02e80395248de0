package lisp

// LEnv is one frame in a chain of lexical scopes.  The top-level frame is
// created once per program run; a call frame is created on each function
// application and chains to the closure's captured environment, not the
// caller's.  Frames are shared by reference, so a closure constructed inside
// a call keeps that call's frame alive after the call returns.
type LEnv struct {
	Scope   map[string]*LVal
	Parent  *LEnv
	Runtime *Runtime
}

// NewEnv initializes and returns a new LEnv.  When parent is nil the frame
// is a root frame with a standard Runtime; otherwise the Runtime is shared
// with parent.
func NewEnv(parent *LEnv) *LEnv {
	var rt *Runtime
	if parent != nil {
		rt = parent.Runtime
	} else {
		rt = StandardRuntime()
	}
	return &LEnv{
		Scope:   make(map[string]*LVal),
		Parent:  parent,
		Runtime: rt,
	}
}

// Get returns the value bound to identifier k, searching the frame chain
// from innermost to outermost.  An unbound identifier is an error value.
func (env *LEnv) Get(k string) *LVal {
	for e := env; e != nil; e = e.Parent {
		if v, ok := e.Scope[k]; ok {
			return v
		}
	}
	return env.Errorf(ErrUnboundVariable, "symbol %q is not defined", k)
}

// Put binds k to v in the innermost frame only.  A binding made here shadows
// any binding of k in an outer frame rather than mutating it; a repeated
// define in the same frame overwrites.
func (env *LEnv) Put(k string, v *LVal) {
	if v == nil {
		panic("nil value")
	}
	env.Scope[k] = v
}
