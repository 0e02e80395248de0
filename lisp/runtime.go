package lisp

import (
	"io"
	"os"
)

// DefaultMaxStackHeight bounds recursion depth in a standard runtime.
const DefaultMaxStackHeight = 50000

// TraceFunc observes evaluation.  It is invoked with every node entering
// evaluation and the frame it evaluates in.  A TraceFunc must not affect
// evaluation results.
type TraceFunc func(v *Node, env *LEnv)

// Runtime holds state shared by every frame of an environment chain.
type Runtime struct {
	Stack  *CallStack
	Stdout io.Writer
	Stderr io.Writer
	Trace  TraceFunc
}

// StandardRuntime returns a Runtime that writes to the standard streams.
func StandardRuntime() *Runtime {
	return &Runtime{
		Stack:  &CallStack{MaxHeight: DefaultMaxStackHeight},
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Config is a function that configures a root environment or its runtime.
type Config func(env *LEnv)

// WithStdout returns a Config that makes print statements write to w instead
// of the default, os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(env *LEnv) {
		env.Runtime.Stdout = w
	}
}

// WithStderr returns a Config that makes environments write debugging output
// to w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(env *LEnv) {
		env.Runtime.Stderr = w
	}
}

// WithMaxStackHeight returns a Config that will prevent an execution
// environment from allowing the call stack height to exceed n.
func WithMaxStackHeight(n int) Config {
	return func(env *LEnv) {
		env.Runtime.Stack.MaxHeight = n
	}
}

// WithTrace returns a Config that installs fn as the runtime's evaluation
// observer.
func WithTrace(fn TraceFunc) Config {
	return func(env *LEnv) {
		env.Runtime.Trace = fn
	}
}

// NewRootEnv initializes a top-level environment and applies the given
// configuration.
func NewRootEnv(configs ...Config) *LEnv {
	env := NewEnv(nil)
	for _, fn := range configs {
		fn(env)
	}
	return env
}

// RunProgram evaluates each top-level statement of prog in source order
// against env, so top-level defines accumulate and are visible to later
// statements.  The first runtime error halts the run and is returned; output
// printed before the error stands.  The value of a bare expression statement
// is discarded.
func RunProgram(env *LEnv, prog []*Node) error {
	for _, stmt := range prog {
		v := env.Eval(stmt)
		if v.Type == LError {
			return v.Err
		}
	}
	return nil
}
