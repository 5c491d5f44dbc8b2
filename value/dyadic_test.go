package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	v, err := Match(FromInts([]int{1, 2}), FromInts([]int{1, 2}))
	require.NoError(t, err)
	assert.True(t, v.Equal(Num(1)))
	v, err = Match(FromInts([]int{1, 2}), Num(1))
	require.NoError(t, err)
	assert.True(t, v.Equal(Num(0)))
}

func TestCouple(t *testing.T) {
	v, err := Couple(Num(1), Num(2))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{1, 2})))

	a, b, err := Uncouple(v)
	require.NoError(t, err)
	assert.True(t, a.Equal(Num(1)))
	assert.True(t, b.Equal(Num(2)))

	_, _, err = Uncouple(FromInts([]int{1, 2, 3}))
	assert.Error(t, err)
}

func TestJoin(t *testing.T) {
	v, err := Join(Num(1), FromInts([]int{2, 3}), nil)
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{1, 2, 3})))

	v, err = Join(FromInts([]int{1, 2}), Num(3), nil)
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{1, 2, 3})))

	v, err = Join(FromInts([]int{1, 2}), FromInts([]int{3, 4}), nil)
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{1, 2, 3, 4})))

	v, err = Join(Num(1), Num(2), nil)
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{1, 2})))

	_, err = Join(NewNum([]int{2, 2}, []float64{1, 2, 3, 4}), Num(1), nil)
	assert.Error(t, err)
}

func TestReshape(t *testing.T) {
	v, err := Reshape(FromInts([]int{2, 3}), FromInts([]int{1, 2, 3, 4, 5, 6}))
	require.NoError(t, err)
	assert.True(t, v.Equal(NewNum([]int{2, 3}, []float64{1, 2, 3, 4, 5, 6})))

	v, err = Reshape(FromInts([]int{2, 2}), FromInts([]int{1, 2}))
	require.NoError(t, err)
	assert.True(t, v.Equal(NewNum([]int{2, 2}, []float64{1, 2, 1, 2})))

	empty, err := FromRows(nil, nil)
	require.NoError(t, err)
	_, err = Reshape(FromInts([]int{3}), empty)
	assert.Error(t, err)
}

func TestTake(t *testing.T) {
	v, err := Take(Num(2), FromInts([]int{1, 2, 3}), nil)
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{1, 2})))

	v, err = Take(Num(-2), FromInts([]int{1, 2, 3}), nil)
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{2, 3})))

	_, err = Take(Num(5), FromInts([]int{1, 2, 3}), nil)
	assert.Error(t, err)

	fill := Num(0)
	v, err = Take(Num(5), FromInts([]int{1, 2, 3}), &fill)
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{1, 2, 3, 0, 0})))

	v, err = Take(Num(-5), FromInts([]int{1, 2, 3}), &fill)
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{0, 0, 1, 2, 3})))
}

func TestUntake(t *testing.T) {
	v, err := Untake(FromInts([]int{9, 9}), Num(2), FromInts([]int{1, 2, 3}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{9, 9, 3})))

	v, err = Untake(FromInts([]int{9, 9}), Num(-2), FromInts([]int{1, 2, 3}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{1, 9, 9})))
}

func TestDrop(t *testing.T) {
	v, err := Drop(Num(1), FromInts([]int{1, 2, 3}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{2, 3})))

	v, err = Drop(Num(-1), FromInts([]int{1, 2, 3}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{1, 2})))

	v, err = Drop(Num(5), FromInts([]int{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, v.Shape)
}

func TestUndrop(t *testing.T) {
	v, err := Undrop(FromInts([]int{9, 9}), Num(1), FromInts([]int{1, 2, 3}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{1, 9, 9})))

	v, err = Undrop(FromInts([]int{9, 9}), Num(-1), FromInts([]int{1, 2, 3}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{9, 9, 3})))
}

func TestRotate(t *testing.T) {
	v, err := Rotate(Num(1), FromInts([]int{1, 2, 3}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{2, 3, 1})))

	v, err = Rotate(Num(-1), FromInts([]int{1, 2, 3}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{3, 1, 2})))
}

func TestSelect(t *testing.T) {
	v, err := Select(FromInts([]int{0, 2}), FromInts([]int{10, 20, 30}), nil)
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{10, 30})))

	v, err = Select(Num(1), FromInts([]int{10, 20, 30}), nil)
	require.NoError(t, err)
	assert.True(t, v.Equal(Num(20)))

	v, err = Select(Num(-1), FromInts([]int{10, 20, 30}), nil)
	require.NoError(t, err)
	assert.True(t, v.Equal(Num(30)))

	_, err = Select(Num(3), FromInts([]int{10, 20, 30}), nil)
	assert.Error(t, err)
}

func TestUnselect(t *testing.T) {
	v, err := Unselect(FromInts([]int{5, 7}), FromInts([]int{0, 2}), FromInts([]int{10, 20, 30}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{5, 20, 7})))

	v, err = Unselect(Num(9), Num(1), FromInts([]int{10, 20, 30}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{10, 9, 30})))
}

func TestPick(t *testing.T) {
	m := NewNum([]int{2, 2}, []float64{1, 2, 3, 4})
	v, err := Pick(FromInts([]int{1, 0}), m)
	require.NoError(t, err)
	assert.True(t, v.Equal(Num(3)))

	v, err = Pick(Num(1), m)
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{3, 4})))

	_, err = Pick(FromInts([]int{0, 0, 0}), m)
	assert.Error(t, err)
}

func TestUnpick(t *testing.T) {
	m := NewNum([]int{2, 2}, []float64{1, 2, 3, 4})
	v, err := Unpick(Num(9), FromInts([]int{0, 1}), m)
	require.NoError(t, err)
	assert.True(t, v.Equal(NewNum([]int{2, 2}, []float64{1, 9, 3, 4})))
}

func TestKeep(t *testing.T) {
	v, err := Keep(FromInts([]int{1, 0, 2}), FromInts([]int{1, 2, 3}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{1, 3, 3})))

	v, err = Keep(Num(2), FromInts([]int{1, 2}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{1, 1, 2, 2})))

	v, err = Keep(Num(0), FromInts([]int{1, 2}))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, v.Shape)

	_, err = Keep(FromInts([]int{1, 0}), FromInts([]int{1, 2, 3}))
	assert.Error(t, err)
}

func TestUnkeep(t *testing.T) {
	v, err := Unkeep(FromInts([]int{9, 8}), FromInts([]int{1, 0, 1}), FromInts([]int{1, 2, 3}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{9, 2, 8})))

	_, err = Unkeep(FromInts([]int{9}), FromInts([]int{2, 0}), FromInts([]int{1, 2}))
	assert.Error(t, err)
}

func TestWindows(t *testing.T) {
	v, err := Windows(Num(2), FromInts([]int{1, 2, 3}))
	require.NoError(t, err)
	assert.True(t, v.Equal(NewNum([]int{2, 2}, []float64{1, 2, 2, 3})))

	_, err = Windows(Num(4), FromInts([]int{1, 2, 3}))
	assert.Error(t, err)
	_, err = Windows(Num(0), FromInts([]int{1, 2, 3}))
	assert.Error(t, err)
}

func TestFind(t *testing.T) {
	v, err := Find(FromInts([]int{2, 3}), FromInts([]int{1, 2, 3, 2, 3}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{0, 1, 0, 1, 0})))

	v, err = Find(Num(2), FromInts([]int{1, 2, 3, 2}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{0, 1, 0, 1})))
}

func TestMember(t *testing.T) {
	v, err := Member(FromInts([]int{1, 4, 2}), FromInts([]int{2, 3, 1}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{1, 0, 1})))

	v, err = Member(Num(3), FromInts([]int{1, 2, 3}))
	require.NoError(t, err)
	assert.True(t, v.Equal(Num(1)))
}

func TestIndexOf(t *testing.T) {
	v, err := IndexOf(FromInts([]int{3, 5}), FromInts([]int{1, 2, 3}))
	require.NoError(t, err)
	assert.True(t, v.Equal(FromInts([]int{2, 3})))
}
