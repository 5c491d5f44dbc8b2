package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	v := Num(1.5)
	assert.Equal(t, 0, v.Rank())
	assert.Equal(t, 1, v.Count())
	assert.Equal(t, 1, v.RowCount())

	v = Str("hello")
	assert.Equal(t, 1, v.Rank())
	assert.Equal(t, 5, v.Count())
	assert.Equal(t, TChar, v.Typ)

	v = NewNum([]int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	assert.Equal(t, 2, v.Rank())
	assert.Equal(t, 6, v.Count())
	assert.Equal(t, 2, v.RowCount())
	assert.True(t, v.Row(1).Equal(FromInts([]int{4, 5, 6})))
}

func TestEqual(t *testing.T) {
	assert.True(t, FromInts([]int{1, 2}).Equal(FromInts([]int{1, 2})))
	assert.False(t, FromInts([]int{1, 2}).Equal(FromInts([]int{2, 1})))
	assert.False(t, Num(1).Equal(FromInts([]int{1})))
	assert.False(t, Num(1).Equal(Char('a')))
	nan := math.NaN()
	assert.True(t, Num(nan).Equal(Num(nan)))
}

func TestFromRows(t *testing.T) {
	v, err := FromRows([]Val{FromInts([]int{1, 2}), FromInts([]int{3, 4})}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, v.Shape)

	_, err = FromRows([]Val{FromInts([]int{1, 2}), FromInts([]int{3})}, nil)
	assert.Error(t, err)

	fill := Num(0)
	v, err = FromRows([]Val{FromInts([]int{1, 2, 3}), FromInts([]int{4, 5})}, &fill)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, v.Shape)
	assert.True(t, v.Row(1).Equal(FromInts([]int{4, 5, 0})))

	v, err = FromRows(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, v.Shape)
}

func TestExtractors(t *testing.T) {
	n, err := Num(3).AsNat("test")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	_, err = Num(-3).AsNat("test")
	assert.Error(t, err)
	_, err = Num(1.5).AsNat("test")
	assert.Error(t, err)
	_, err = Str("x").AsNum("test")
	assert.Error(t, err)

	i, err := Num(-3).AsInt("test")
	require.NoError(t, err)
	assert.Equal(t, -3, i)

	ints, err := FromInts([]int{1, -2}).AsInts("test")
	require.NoError(t, err)
	assert.Equal(t, []int{1, -2}, ints)

	s, err := Str("abc").AsString("test")
	require.NoError(t, err)
	assert.Equal(t, "abc", s)
}

func TestString(t *testing.T) {
	assert.Equal(t, "¯1.5", Num(-1.5).String())
	assert.Equal(t, "∞", Num(math.Inf(1)).String())
	assert.Equal(t, `"hi"`, Str("hi").String())
	assert.Equal(t, "@x", Char('x').String())
	assert.Equal(t, "[1 2]", FromInts([]int{1, 2}).String())
	assert.Equal(t, "[[1 2] [3 4]]", NewNum([]int{2, 2}, []float64{1, 2, 3, 4}).String())
}

func TestCopyIsIndependent(t *testing.T) {
	v := FromInts([]int{1, 2, 3})
	cp := v.Copy()
	cp.Nums[0] = 9
	assert.Equal(t, 1.0, v.Nums[0])
}
