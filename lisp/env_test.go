package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvChainLookup(t *testing.T) {
	root := NewEnv(nil)
	root.Put("x", Number(1))
	root.Put("y", Number(2))

	child := NewEnv(root)
	child.Put("x", Number(10))

	// Innermost binding wins; missing bindings fall through to the parent.
	assert.Equal(t, 10, child.Get("x").Num)
	assert.Equal(t, 2, child.Get("y").Num)
	assert.Equal(t, 1, root.Get("x").Num)
}

func TestEnvPutNeverLeaksUpward(t *testing.T) {
	root := NewEnv(nil)
	root.Put("x", Number(1))
	child := NewEnv(root)

	child.Put("x", Number(2))
	assert.Equal(t, 1, root.Get("x").Num, "child define mutated the parent frame")
}

func TestEnvUnbound(t *testing.T) {
	env := NewEnv(NewEnv(nil))
	v := env.Get("nope")
	require.Equal(t, LError, v.Type)
	lerr, ok := v.Err.(*EvalError)
	require.True(t, ok, "unexpected error type: %v", v.Err)
	assert.Equal(t, ErrUnboundVariable, lerr.Kind)
}

func TestEnvSharesRuntime(t *testing.T) {
	root := NewEnv(nil)
	child := NewEnv(root)
	assert.Same(t, root.Runtime, child.Runtime)
}

func TestCallStackHeightLimit(t *testing.T) {
	s := &CallStack{MaxHeight: 2}
	require.True(t, s.Push("a"))
	require.True(t, s.Push("b"))
	assert.False(t, s.Push("c"), "push beyond MaxHeight succeeded")
	assert.Equal(t, 2, s.Height())

	s.Pop()
	assert.True(t, s.Push("c"))
}
