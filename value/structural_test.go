package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverse(t *testing.T) {
	v, err := Reverse(FromInts([]int{1, 2, 3}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{3, 2, 1})))

	m := NewNum([]int{2, 2}, []float64{1, 2, 3, 4})
	v, err = Reverse(m)
	require.NoError(t, err)
	assert.True(t, v.Equal(NewNum([]int{2, 2}, []float64{3, 4, 1, 2})))
}

func TestTranspose(t *testing.T) {
	m := NewNum([]int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	v, err := Transpose(m)
	require.NoError(t, err)
	assert.True(t, v.Equal(NewNum([]int{3, 2}, []float64{1, 4, 2, 5, 3, 6})))

	back, err := InvTranspose(v)
	require.NoError(t, err)
	assert.True(t, back.Equal(m))
}

func TestDeshapeAndShape(t *testing.T) {
	m := NewNum([]int{2, 2}, []float64{1, 2, 3, 4})
	v, err := Deshape(m)
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{1, 2, 3, 4})))

	v, err = ShapeOf(m)
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{2, 2})))

	v, err = RowCountVal(m)
	require.NoError(t, err)
	assert.True(t, v.Equal(Num(2)))
}

func TestFirstLast(t *testing.T) {
	v, err := First(FromInts([]int{7, 8, 9}))
	require.NoError(t, err)
	assert.True(t, v.Equal(Num(7)))

	v, err = Last(FromInts([]int{7, 8, 9}))
	require.NoError(t, err)
	assert.True(t, v.Equal(Num(9)))

	empty, err := FromRows(nil, nil)
	require.NoError(t, err)
	_, err = First(empty)
	assert.Error(t, err)
}

func TestRange(t *testing.T) {
	v, err := Range(Num(4))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{0, 1, 2, 3})))

	_, err = Range(Num(-1))
	assert.Error(t, err)
}

func TestBits(t *testing.T) {
	v, err := Bits(FromInts([]int{1, 2, 3}))
	require.NoError(t, err)
	assert.True(t, v.Equal(NewNum([]int{3, 2}, []float64{1, 0, 0, 1, 1, 1})))

	back, err := InverseBits(v)
	require.NoError(t, err)
	assert.True(t, back.Equal(FromInts([]int{1, 2, 3})))

	_, err = Bits(FromInts([]int{-1}))
	assert.Error(t, err)
}

func TestWhere(t *testing.T) {
	v, err := Where(FromInts([]int{0, 2, 1}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{1, 1, 2})))

	back, err := InvWhere(v)
	require.NoError(t, err)
	assert.True(t, back.Equal(FromInts([]int{0, 2, 1})))
}

func TestClassify(t *testing.T) {
	v, err := Classify(FromInts([]int{3, 1, 3, 2}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{0, 1, 0, 2})))

	v, err = Deduplicate(FromInts([]int{3, 1, 3, 2}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{3, 1, 2})))
}

func TestGrade(t *testing.T) {
	v, err := Rise(FromInts([]int{3, 1, 2}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{1, 2, 0})))

	v, err = Fall(FromInts([]int{3, 1, 2}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{0, 2, 1})))

	v, err = Rise(Str("bca"))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{2, 0, 1})))
}

func TestParseNum(t *testing.T) {
	v, err := ParseNum(Str("¯5"))
	require.NoError(t, err)
	assert.True(t, v.Equal(Num(-5)))

	v, err = ParseNum(Str("1.25"))
	require.NoError(t, err)
	assert.True(t, v.Equal(Num(1.25)))

	_, err = ParseNum(Str("abc"))
	assert.Error(t, err)
}
