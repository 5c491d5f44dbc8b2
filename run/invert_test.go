package run

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/YoutacRandS-VA/uiua/prim"
	"github.com/YoutacRandS-VA/uiua/value"
)

func TestInvertPrim(t *testing.T) {
	env := testEnv()
	env.Push(value.NewNum([]int{2, 2}, []float64{1, 2, 3, 4}))
	pushFn(env, PrimFunc(prim.Transpose))
	dispatchPrim(t, env, prim.Invert)
	out, err := value.Transpose(single(t, env))
	require.NoError(t, err)
	assert.True(t, out.Equal(value.NewNum([]int{2, 2}, []float64{1, 2, 3, 4})))
}

func TestInvertAddConstant(t *testing.T) {
	env := testEnv()
	plusOne := WordsFunc("+1", []Word{
		LitWord(value.Num(1), Span{}),
		PrimWord(prim.Add, Span{}),
	})
	env.Push(value.Num(6))
	pushFn(env, plusOne)
	dispatchPrim(t, env, prim.Invert)
	assert.True(t, single(t, env).Equal(value.Num(5)))
}

func TestInvertMulConstant(t *testing.T) {
	env := testEnv()
	timesTen := WordsFunc("×10", []Word{
		LitWord(value.Num(10), Span{}),
		PrimWord(prim.Mul, Span{}),
	})
	env.Push(value.Num(30))
	pushFn(env, timesTen)
	dispatchPrim(t, env, prim.Invert)
	assert.True(t, single(t, env).Equal(value.Num(3)))
}

func TestInvertConstant(t *testing.T) {
	env := testEnv()
	env.Push(value.Num(3))
	pushFn(env, ConstFunc(value.Num(3)))
	dispatchPrim(t, env, prim.Invert)
	assert.Equal(t, 0, env.StackHeight())

	env.Push(value.Num(4))
	pushFn(env, ConstFunc(value.Num(3)))
	err := env.Exec([]Word{PrimWord(prim.Invert, Span{})})
	require.Error(t, err)
	rerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindUser, rerr.Kind)
}

func TestInvertWordBody(t *testing.T) {
	// the inverse of (⇌+1) is (-1⇌)
	env := testEnv()
	f := WordsFunc("⇌+1", []Word{
		LitWord(value.Num(1), Span{}),
		PrimWord(prim.Add, Span{}),
		PrimWord(prim.Reverse, Span{}),
	})
	env.Push(value.FromInts([]int{4, 3, 2}))
	pushFn(env, f)
	dispatchPrim(t, env, prim.Invert)
	assert.True(t, single(t, env).Equal(value.FromInts([]int{1, 2, 3})))
}

func TestInvertModifier(t *testing.T) {
	env := testEnv()
	f := WordsFunc("∵∿", []Word{
		FnWord(PrimFunc(prim.Sin), Span{}),
		PrimWord(prim.Each, Span{}),
	})
	env.Push(value.FromInts([]int{0}))
	pushFn(env, f)
	dispatchPrim(t, env, prim.Call)
	pushFn(env, f)
	dispatchPrim(t, env, prim.Invert)
	out := single(t, env)
	assert.InDelta(t, 0, out.Nums[0], 1e-12)
}

func TestInvertUnavailable(t *testing.T) {
	env := testEnv()
	env.Push(value.Num(1))
	pushFn(env, PrimFunc(prim.Add))
	err := env.Exec([]Word{PrimWord(prim.Invert, Span{Line: 1, Col: 1})})
	require.Error(t, err)
	rerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindInversion, rerr.Kind)
	assert.Equal(t, 1, rerr.Span.Line)
}

func TestUnderTake(t *testing.T) {
	env := testEnv()
	take2 := WordsFunc("↙2", []Word{
		LitWord(value.Num(2), Span{}),
		PrimWord(prim.Take, Span{}),
	})
	times10 := WordsFunc("×10", []Word{
		LitWord(value.Num(10), Span{}),
		PrimWord(prim.Mul, Span{}),
	})
	env.Push(value.FromInts([]int{1, 2, 3}))
	pushFn(env, times10)
	pushFn(env, take2)
	dispatchPrim(t, env, prim.Under)
	assert.True(t, single(t, env).Equal(value.FromInts([]int{10, 20, 3})))
}

func TestUnderSelect(t *testing.T) {
	env := testEnv()
	env.Push(value.FromInts([]int{10, 20, 30}))
	env.Push(value.FromInts([]int{0, 2}))
	pushFn(env, PrimFunc(prim.Neg))
	pushFn(env, PrimFunc(prim.Select))
	dispatchPrim(t, env, prim.Under)
	assert.True(t, single(t, env).Equal(value.FromInts([]int{-10, 20, -30})))
}

func TestUnderInvertible(t *testing.T) {
	// under reverse: transform the last row by working on the first
	env := testEnv()
	env.Push(value.FromInts([]int{1, 2, 3}))
	appendTen := WordsFunc("⊂10", []Word{
		LitWord(value.Num(10), Span{}),
		PrimWord(prim.Join, Span{}),
	})
	pushFn(env, appendTen)
	pushFn(env, PrimFunc(prim.Reverse))
	dispatchPrim(t, env, prim.Under)
	assert.True(t, single(t, env).Equal(value.FromInts([]int{1, 2, 3, 10})))
}

func TestUnderUnavailable(t *testing.T) {
	env := testEnv()
	env.Push(value.Num(1))
	pushFn(env, PrimFunc(prim.Neg))
	pushFn(env, PrimFunc(prim.Rand))
	err := env.Exec([]Word{PrimWord(prim.Under, Span{})})
	require.Error(t, err)
	rerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindInversion, rerr.Kind)
}
