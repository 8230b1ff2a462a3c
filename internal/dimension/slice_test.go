package dimension

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoSlice(t *testing.T) {
	tests := []struct {
		name       string
		dim        int
		stride     int
		elem       SliceInfoElem
		wantDim    int
		wantStride int
		wantOffset int
	}{
		{"every other from 1", 4, 1, RangeFrom(1, 2), 2, 2, 1},
		{"full", 5, 3, Full(), 5, 3, 0},
		{"reverse", 4, 1, RangeFrom(0, -1), 4, -1, 3},
		{"reverse by two", 4, 1, Range(0, 4, -2), 2, -2, 3},
		{"negative bounds", 6, 2, Range(-4, -1, 1), 3, 2, 4},
		{"end before start", 4, 1, Range(3, 1, 1), 0, 1, 0},
		{"empty at end", 4, 1, RangeFrom(4, 1), 0, 1, 0},
		{"single element keeps stride", 4, 5, Range(2, 3, 3), 1, 5, 10},
		{"length one axis", 1, 7, Full(), 1, 7, 0},
		{"ceil division", 7, 1, RangeFrom(0, 3), 3, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, s, off, err := DoSlice(tt.dim, tt.stride, tt.elem)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDim, d, "dim")
			assert.Equal(t, tt.wantStride, s, "stride")
			assert.Equal(t, tt.wantOffset, off, "offset")
		})
	}
}

func TestDoSliceErrors(t *testing.T) {
	_, _, _, err := DoSlice(4, 1, Range(0, 4, 0))
	assert.True(t, errors.Is(err, ErrInvalidSlice))

	_, _, _, err = DoSlice(4, 1, RangeFrom(5, 1))
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	_, _, _, err = DoSlice(4, 1, Range(0, 5, 1))
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	_, _, _, err = DoSlice(4, 1, RangeFrom(-5, 1))
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestSliceDims(t *testing.T) {
	shape, strides, off, err := SliceDims([]int{3, 4}, []int{4, 1},
		[]SliceInfoElem{Index(1), NewAxis(), Range(0, 4, 2)})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, shape)
	assert.Equal(t, []int{0, 2}, strides)
	assert.Equal(t, 4, off)

	shape, strides, off, err = SliceDims([]int{3, 4}, []int{4, 1},
		[]SliceInfoElem{Index(-1), Index(-1)})
	require.NoError(t, err)
	assert.Empty(t, shape)
	assert.Empty(t, strides)
	assert.Equal(t, 11, off)

	_, _, _, err = SliceDims([]int{3, 4}, []int{4, 1}, []SliceInfoElem{Full()})
	assert.Equal(t, InvalidSlice, KindOf(err))

	_, _, _, err = SliceDims([]int{3, 4}, []int{4, 1}, []SliceInfoElem{Index(3), Full()})
	assert.Equal(t, OutOfBounds, KindOf(err))
}

func TestSliceDimsFullIsIdentity(t *testing.T) {
	shapes := [][]int{{2, 3}, {1, 5, 1}, {4}, {0, 2}}
	for _, shape := range shapes {
		strides := DefaultStrides(shape, ColumnMajor)
		info := make([]SliceInfoElem, len(shape))
		for i := range info {
			info[i] = Full()
		}
		gotShape, gotStrides, off, err := SliceDims(shape, strides, info)
		require.NoError(t, err)
		assert.Equal(t, shape, gotShape)
		assert.Equal(t, strides, gotStrides)
		assert.Zero(t, off)
	}
}

func TestCollapseDims(t *testing.T) {
	shape := []int{3, 4}
	strides := []int{4, 1}
	off, err := CollapseDims(shape, strides, []SliceInfoElem{Index(-1), Range(1, 3, 1)})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, shape)
	assert.Equal(t, []int{4, 1}, strides)
	assert.Equal(t, 9, off)

	_, err = CollapseDims([]int{3}, []int{1}, []SliceInfoElem{NewAxis()})
	assert.Equal(t, InvalidSlice, KindOf(err))

	// A failed collapse leaves the inputs untouched.
	shape = []int{3, 4}
	_, err = CollapseDims(shape, strides, []SliceInfoElem{Range(1, 2, 1), Index(9)})
	require.Error(t, err)
	assert.Equal(t, []int{3, 4}, shape)
}

func TestSliceString(t *testing.T) {
	info := []SliceInfoElem{RangeFrom(1, 2), Full(), Index(-1), NewAxis(), Range(0, 3, -1)}
	assert.Equal(t, "[1::2, :, -1, newaxis, :3:-1]", FormatSlice(info))
}

func TestSlicesIntersect(t *testing.T) {
	shape := []int{8}
	tests := []struct {
		name string
		a, b SliceInfoElem
		want bool
	}{
		{"evens and odds", Range(0, 8, 2), Range(1, 8, 2), false},
		{"evens and one even", Range(0, 8, 2), Range(2, 3, 1), true},
		{"threes and odds", Range(0, 8, 3), Range(1, 8, 2), true},
		{"fours and odds", Range(0, 8, 4), Range(1, 8, 2), false},
		{"reversed odds and evens", Range(0, 8, -2), Range(0, 8, 2), false},
		{"disjoint halves", Range(0, 4, 1), RangeFrom(4, 1), false},
		{"index inside range", Index(5), Range(3, 7, 1), true},
		{"empty range", Range(3, 3, 1), Full(), false},
		{"late start in class", Range(1, 8, 6), Range(0, 8, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SlicesIntersect(shape, []SliceInfoElem{tt.a}, []SliceInfoElem{tt.b})
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, SlicesIntersect(shape, []SliceInfoElem{tt.b}, []SliceInfoElem{tt.a}))
		})
	}
}

func TestSlicesIntersectMultiAxis(t *testing.T) {
	shape := []int{4, 4}
	rowA := []SliceInfoElem{Index(0), Full()}
	rowB := []SliceInfoElem{NewAxis(), Index(1), Full()}
	assert.False(t, SlicesIntersect(shape, rowA, rowB))

	col := []SliceInfoElem{Full(), Index(2)}
	assert.True(t, SlicesIntersect(shape, rowA, col))

	assert.True(t, SlicesIntersect(shape, rowA, []SliceInfoElem{Full()}))
}

func TestArithSeqIntersect(t *testing.T) {
	assert.True(t, arithSeqIntersect(0, 100, 7, 5, 100, 11))   // 49
	assert.False(t, arithSeqIntersect(0, 40, 7, 5, 40, 11))    // first common term is 49
	assert.False(t, arithSeqIntersect(0, 10, 1, 11, 20, 1))
	assert.True(t, arithSeqIntersect(10, 10, 1, 0, 20, 5))

	g, x, y := extendedGCD(240, 46)
	assert.Equal(t, 2, g)
	assert.Equal(t, 2, 240*x+46*y)
}
