package dimension

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 0, 3}, 0},
		{Shape{2, 3, 4}, 24},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestFixedRankSize(t *testing.T) {
	assert.Equal(t, 1, Ix0{}.Size())
	assert.Equal(t, 6, Ix2{2, 3}.Size())
	assert.Equal(t, 0, Ix3{2, 0, 3}.Size())
	assert.Equal(t, 3, Ix3{}.NDim())
	assert.Equal(t, []int{4, 5}, Ix2{4, 5}.Slice())
}

func TestSizeChecked(t *testing.T) {
	n, err := SizeChecked([]int{3, 0, 5})
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = SizeChecked([]int{3, 4})
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, err = SizeChecked([]int{3, -1})
	assert.True(t, errors.Is(err, ErrRangeLimited))

	_, err = SizeChecked([]int{math.MaxInt/2 + 1, 2})
	assert.True(t, errors.Is(err, ErrOverflow))
	assert.Equal(t, Overflow, KindOf(err))
}

func TestShapeValidate(t *testing.T) {
	require.NoError(t, Shape{2, 0}.Validate())
	require.Error(t, Shape{2, -3}.Validate())
}

func TestFromSlice(t *testing.T) {
	d2, err := FromSlice[Ix2]([]int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, Ix2{1, 2}, d2)

	dyn, err := FromSlice[IxDyn]([]int{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, Shape{4, 5, 6}, dyn)

	_, err = FromSlice[Ix3]([]int{1})
	require.Error(t, err)
	assert.Equal(t, IncompatibleShape, KindOf(err))

	assert.Equal(t, 3, Rank[Ix3]())
	assert.Equal(t, 0, Rank[Ix0]())
	assert.Equal(t, -1, Rank[IxDyn]())
	assert.Equal(t, Ix4{}, Zeros[Ix4](4))
}

func TestShapeErrorMessage(t *testing.T) {
	err := NewError(IncompatibleShape, "axis 1: 4 vs 5", []int{3, 4}, []int{3, 5})
	assert.Equal(t, "incompatible shapes: [3 4] vs [3 5]: axis 1: 4 vs 5", err.Error())
	assert.True(t, errors.Is(err, ErrIncompatibleShape))
	assert.False(t, errors.Is(err, ErrIncompatibleLayout))
	assert.Equal(t, "IncompatibleShape", err.Kind.String())
}

func TestIndexError(t *testing.T) {
	err := CheckIndex([]int{3, 5, 5}, []int{3, 1, 1})
	require.Error(t, err)

	var ie *IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 0, ie.Axis)
	assert.Equal(t, 3, ie.Index)
	assert.Equal(t, 3, ie.Len)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
	assert.Equal(t, "index 3 is out of bounds for axis 0 with length 3 (shape [3 5 5])", err.Error())

	require.NoError(t, CheckIndex([]int{3, 5, 5}, []int{2, 4, 0}))
}
