package ndarray

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/internal/dimension"
)

func TestMap2Broadcasts(t *testing.T) {
	a := Must(FromShapeVec(dimension.Ix2{3, 1}, []int{1, 2, 3}))
	b := Must(FromShapeVec(dimension.Ix2{1, 4}, []int{10, 20, 30, 40}))

	sum, err := Map2[int, int, int](a, b, func(x, y int) int { return x + y })
	require.NoError(t, err)
	assert.Equal(t, dimension.Dim(3, 4), sum.Shape())
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			want := a.At(dimension.Ix2{i, 0}) + b.At(dimension.Ix2{0, j})
			assert.Equal(t, want, sum.At(dimension.Dim(i, j)), "[%d %d]", i, j)
		}
	}
	assert.True(t, sum.IsStandardLayout())

	_, err = Map2[int, int, int](a, Must(Zeros[int](dimension.Ix2{2, 4})), func(x, y int) int { return x })
	assert.True(t, errors.Is(err, dimension.ErrIncompatibleShape))
}

func TestMap2MixedLayouts(t *testing.T) {
	a := grid2x3(t)
	f := Must(FromShapeVecOrder(dimension.Ix2{2, 3}, dimension.ColumnMajor, seq(6)))

	pairs, err := Map2[int, int, [2]int](a, f, func(x, y int) [2]int { return [2]int{x, y} })
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 0}, {1, 2}, {2, 4}, {3, 1}, {4, 3}, {5, 5}}, pairs.ToVec())
}

func TestZipMutWith(t *testing.T) {
	a := grid2x3(t)
	row := FromVec([]int{100, 200, 300})

	require.NoError(t, ZipMutWith[int, int, dimension.Ix2](a, row, func(d *int, s int) { *d += s }))
	assert.Equal(t, []int{100, 201, 302, 103, 204, 305}, a.ToVec())

	err := ZipMutWith[int, int, dimension.Ix2](a, FromVec([]int{1, 2}), func(d *int, s int) {})
	assert.True(t, errors.Is(err, dimension.ErrIncompatibleShape))

	// The destination is never stretched.
	small := FromVec([]int{0})
	err = ZipMutWith[int, int, dimension.Ix1](small, FromVec([]int{1, 2, 3}), func(d *int, s int) {})
	assert.True(t, errors.Is(err, dimension.ErrIncompatibleShape))
}

func TestAssign(t *testing.T) {
	a := Must(Zeros[int](dimension.Ix2{2, 3}))
	require.NoError(t, a.Assign(FromVec([]int{1, 2, 3})))
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3}, a.ToVec())

	require.NoError(t, a.Assign(Scalar(9)))
	assert.Equal(t, []int{9, 9, 9, 9, 9, 9}, a.ToVec())

	tr := Must(Zeros[int](dimension.Ix2{3, 2}))
	require.NoError(t, tr.Assign(grid2x3(t).T()))
	assert.Equal(t, []int{0, 3, 1, 4, 2, 5}, tr.ToVec())

	err := a.Assign(FromVec([]int{1, 2}))
	assert.True(t, errors.Is(err, dimension.ErrIncompatibleShape))
}

func TestZip2AndZip3(t *testing.T) {
	a := FromVec([]int{1, 2, 3})
	b := Must(FromShapeVec(dimension.Ix2{2, 1}, []int{10, 20}))

	total := 0
	require.NoError(t, Zip2[int, int](a, b, func(x, y int) { total += x * y }))
	assert.Equal(t, (1+2+3)*(10+20), total)

	total = 0
	c := Scalar(2)
	require.NoError(t, Zip3[int, int, int](a, b, c, func(x, y, z int) { total += (x + y) * z }))
	assert.Equal(t, 2*(2*(1+2+3)+3*(10+20)), total)

	err := Zip2[int, int](a, FromVec([]int{1, 2}), func(x, y int) {})
	assert.True(t, errors.Is(err, dimension.ErrIncompatibleShape))
	err = Zip3[int, int, int](a, b, FromVec([]int{1, 2}), func(x, y, z int) {})
	assert.True(t, errors.Is(err, dimension.ErrIncompatibleShape))
}

func TestCoBroadcast(t *testing.T) {
	a := Must(FromShapeVec(dimension.Ix2{3, 1}, []int{1, 2, 3}))
	b := FromVec([]int{1, 2, 3, 4})
	va, vb, err := CoBroadcast[int, int](a, b)
	require.NoError(t, err)
	assert.Equal(t, dimension.Dim(3, 4), va.Shape())
	assert.Equal(t, dimension.Dim(3, 4), vb.Shape())
	assert.Equal(t, []int{0, 1}, vb.Strides())
}

func TestMapInPlaceNegativeStrides(t *testing.T) {
	a := grid2x3(t)
	v := a.ViewMut()
	v.InvertAxis(1)
	v.MapInPlace(func(p *int) { *p *= 2 })
	assert.Equal(t, []int{0, 2, 4, 6, 8, 10}, a.ToVec())

	v.MapvInPlace(func(x int) int { return x + 1 })
	assert.Equal(t, []int{1, 3, 5, 7, 9, 11}, a.ToVec())
}

func TestEqual(t *testing.T) {
	a := grid2x3(t)
	b := Must(FromShapeVecOrder(dimension.Ix2{2, 3}, dimension.ColumnMajor, []int{0, 3, 1, 4, 2, 5}))
	assert.True(t, Equal[int, dimension.Ix2](a, b))

	b.Set(dimension.Ix2{1, 2}, 0)
	assert.False(t, Equal[int, dimension.Ix2](a, b))

	assert.False(t, Equal[int, dimension.Ix2](a, a.T()))
}

func TestAssignFromOverlappingView(t *testing.T) {
	a := FromVec([]int{1, 2, 3, 4})
	require.NoError(t, a.Assign(Must(a.Slice(dimension.Range(0, 4, -1)))))
	assert.Equal(t, []int{4, 3, 2, 1}, a.ToVec())

	m := Must(FromShapeVec(dimension.Ix2{2, 2}, []int{1, 2, 3, 4}))
	require.NoError(t, m.Assign(m.T()))
	assert.Equal(t, []int{1, 3, 2, 4}, m.ToVec())

	// Shifted window of the same buffer.
	s := FromVec([]int{0, 1, 2, 3, 4})
	dst := Must(s.SliceMut(dimension.Range(1, 5, 1)))
	require.NoError(t, dst.Assign(Must(s.Slice(dimension.Range(0, 4, 1)))))
	assert.Equal(t, []int{0, 0, 1, 2, 3}, s.ToVec())

	sh := Must(SharedFromShapeVec(dimension.Ix2{2, 2}, []int{1, 2, 3, 4}))
	require.NoError(t, sh.Assign(sh.T()))
	assert.Equal(t, []int{1, 3, 2, 4}, sh.ToVec())
}

func TestZipMutWithOverlappingSource(t *testing.T) {
	a := FromVec([]int{1, 2, 3, 4})
	rev := Must(a.Slice(dimension.Range(0, 4, -1)))
	require.NoError(t, ZipMutWith[int, int, dimension.Ix1](a, rev, func(d *int, s int) { *d = *d*10 + s }))
	assert.Equal(t, []int{14, 23, 32, 41}, a.ToVec())
}

func TestSharesMemory(t *testing.T) {
	a := Must(FromShapeVec(dimension.Ix2{2, 4}, seq(8)))
	left := Must(a.Slice(dimension.Full(), dimension.Range(0, 2, 1)))
	right := Must(a.Slice(dimension.Full(), dimension.Range(2, 4, 1)))
	top := Must(a.Slice(dimension.Index(0), dimension.Full()))
	bottom := Must(a.Slice(dimension.Index(1), dimension.Full()))

	assert.True(t, SharesMemory[int, int](a, a.T()))
	assert.True(t, SharesMemory[int, int](left, right), "interleaved rows share an address range")
	assert.False(t, SharesMemory[int, int](top, bottom))
	assert.False(t, SharesMemory[int, int](a, a.ToOwned()))
	assert.False(t, SharesMemory[int, float64](a, Must(Zeros[float64](dimension.Ix2{2, 4}))))
	assert.False(t, SharesMemory[int, int](a, Must(a.Slice(dimension.Range(0, 0, 1), dimension.Full()))))
}
