package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	v, err := Add(Num(2), FromInts([]int{1, 2, 3}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{3, 4, 5})))

	v, err = Add(Num(1), Str("ab"))
	require.NoError(t, err)
	assert.True(t, v.Equal(Str("bc")))

	_, err = Add(Str("a"), Str("b"))
	assert.Error(t, err)
}

func TestOperandOrder(t *testing.T) {
	// the first argument is the value popped first
	v, err := Sub(Num(1), FromInts([]int{5, 6}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{4, 5})))

	v, err = Div(Num(2), Num(10))
	require.NoError(t, err)
	assert.True(t, v.Equal(Num(5)))

	v, err = Pow(Num(2), Num(3))
	require.NoError(t, err)
	assert.True(t, v.Equal(Num(9)))

	v, err = Log(Num(10), Num(100))
	require.NoError(t, err)
	assert.InDelta(t, 2, v.Nums[0], 1e-12)
}

func TestModulus(t *testing.T) {
	v, err := Modulus(Num(3), Num(-1))
	require.NoError(t, err)
	assert.True(t, v.Equal(Num(2)))
	v, err = Modulus(Num(3), Num(7))
	require.NoError(t, err)
	assert.True(t, v.Equal(Num(1)))
}

func TestComparisons(t *testing.T) {
	v, err := IsLt(Num(3), FromInts([]int{1, 3, 5}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{1, 0, 0})))

	v, err = IsGe(Num(3), FromInts([]int{1, 3, 5}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{0, 1, 1})))

	v, err = IsEq(Char('b'), Str("abc"))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{0, 1, 0})))
}

func TestBroadcast(t *testing.T) {
	m := NewNum([]int{2, 2}, []float64{1, 2, 3, 4})
	v, err := Add(FromInts([]int{10, 20}), m)
	require.NoError(t, err)
	assert.True(t, v.Equal(NewNum([]int{2, 2}, []float64{11, 12, 23, 24})))

	_, err = Add(FromInts([]int{1, 2}), FromInts([]int{1, 2, 3}))
	assert.Error(t, err)
}

func TestMonadic(t *testing.T) {
	v, err := Neg(FromInts([]int{1, -2}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{-1, 2})))

	v, err = Not(FromInts([]int{0, 1}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{1, 0})))

	v, err = Sign(FromInts([]int{-5, 0, 9}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{-1, 0, 1})))

	_, err = Neg(Str("a"))
	assert.Error(t, err)
}
