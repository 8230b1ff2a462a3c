package ndarray

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/internal/dimension"
)

func TestConcatenate(t *testing.T) {
	top := Must(FromShapeVec(dimension.Ix2{1, 3}, []int{0, 1, 2}))
	bottom := Must(FromShapeVec(dimension.Ix2{2, 3}, []int{3, 4, 5, 6, 7, 8}))

	rows, err := Concatenate[int, dimension.Ix2](0, top, bottom)
	require.NoError(t, err)
	assert.Equal(t, dimension.Ix2{3, 3}, rows.Dim())
	assert.Equal(t, seq(9), rows.ToVec())

	left := grid2x3(t)
	cols, err := Concatenate[int, dimension.Ix2](-1, left, left.T().T(), bottom)
	require.NoError(t, err)
	assert.Equal(t, dimension.Ix2{2, 9}, cols.Dim())
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2, 3, 4, 5, 3, 4, 5, 3, 4, 5, 6, 7, 8}, cols.ToVec())

	withEmpty, err := Concatenate[int, dimension.Ix2](0, Must(Zeros[int](dimension.Ix2{0, 3})), top)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, withEmpty.ToVec())

	_, err = Concatenate[int, dimension.Ix2](1, top, bottom)
	assert.True(t, errors.Is(err, dimension.ErrIncompatibleShape))

	_, err = Concatenate[int, dimension.Ix2](0)
	assert.True(t, errors.Is(err, dimension.ErrUnsupported))
}

func TestStack(t *testing.T) {
	a := FromVec([]int{1, 2, 3})
	b := FromVec([]int{4, 5, 6})

	s0, err := Stack[int, dimension.Ix1](0, a, b)
	require.NoError(t, err)
	assert.Equal(t, dimension.Dim(2, 3), s0.Shape())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, s0.ToVec())

	s1, err := Stack[int, dimension.Ix1](1, a, b)
	require.NoError(t, err)
	assert.Equal(t, dimension.Dim(3, 2), s1.Shape())
	assert.Equal(t, []int{1, 4, 2, 5, 3, 6}, s1.ToVec())

	_, err = Stack[int, dimension.Ix1](0, a, FromVec([]int{1}))
	assert.True(t, errors.Is(err, dimension.ErrIncompatibleShape))

	_, err = Stack[int, dimension.Ix1](3, a, b)
	assert.True(t, errors.Is(err, dimension.ErrOutOfBounds))
}

func TestSelect(t *testing.T) {
	a := Must(FromShapeVec(dimension.Ix2{3, 2}, seq(6)))

	s := a.Select(0, 2, 0, 2)
	assert.Equal(t, dimension.Ix2{3, 2}, s.Dim())
	assert.Equal(t, []int{4, 5, 0, 1, 4, 5}, s.ToVec())

	c := a.T().Select(1, 1)
	assert.Equal(t, dimension.Ix2{2, 1}, c.Dim())
	assert.Equal(t, []int{2, 3}, c.ToVec())

	assert.Equal(t, 0, a.Select(1).Len())

	ie := recoverIndexError(t, func() { a.Select(0, 3) })
	assert.Equal(t, 0, ie.Axis)
}
