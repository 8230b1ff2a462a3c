package ndarray

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/internal/dimension"
)

func TestArcCloneShares(t *testing.T) {
	a := Must(SharedFromShapeVec(dimension.Ix2{2, 3}, seq(6)))
	assert.True(t, a.IsUnique())

	b := a.Clone()
	assert.Equal(t, 2, a.RefCount())
	assert.False(t, b.IsUnique())
	assert.Same(t, &a.data[0], &b.data[0])

	b.Release()
	assert.Equal(t, 1, a.RefCount())
}

func TestEnsureUniqueIsolation(t *testing.T) {
	shapes := [][]int{{4}, {2, 3}, {2, 2, 2}, {3, 1, 2}}

	for _, shape := range shapes {
		n := dimension.Shape(shape).NumElements()
		a := Must(SharedFromShapeVec(dimension.Dim(shape...), seq(n)))
		want := a.ToVec()

		for ix := range dimension.Indices(shape, dimension.RowMajor) {
			b := a.Clone()
			b.EnsureUnique()
			assert.True(t, b.IsUnique())
			assert.True(t, a.IsUnique(), "the copy drops its reference to the original")

			b.Set(dimension.Dim(ix...), -1)
			assert.Equal(t, want, a.ToVec(), "shape %v index %v", shape, ix)
			assert.Equal(t, -1, b.At(dimension.Dim(ix...)))
			b.Release()
		}
	}
}

func TestArcMutationCopiesOnWrite(t *testing.T) {
	a := Must(SharedFromShapeVec(dimension.Ix1{3}, []int{1, 2, 3}))
	b := a.Clone()

	b.Fill(0)
	assert.Equal(t, []int{1, 2, 3}, a.ToVec())
	assert.Equal(t, []int{0, 0, 0}, b.ToVec())

	c := a.Clone()
	c.MapvInPlace(func(x int) int { return x * 10 })
	assert.Equal(t, []int{1, 2, 3}, a.ToVec())
	assert.Equal(t, []int{10, 20, 30}, c.ToVec())

	d := a.Clone()
	require.NoError(t, d.Assign(Scalar(7)))
	assert.Equal(t, []int{1, 2, 3}, a.ToVec())
	assert.Equal(t, []int{7, 7, 7}, d.ToVec())
}

func TestEnsureUniqueKeepsLayout(t *testing.T) {
	src := Must(FromShapeVec(dimension.Ix2{3, 4}, seq(12)))
	a := src.IntoShared()
	require.NoError(t, a.SliceCollapse(dimension.RangeFrom(0, 2), dimension.RangeFrom(1, 2)))
	a.InvertAxis(0)
	before := a.ToVec()
	strides := a.Strides()

	b := a.Clone()
	b.EnsureUnique()
	assert.Equal(t, before, b.ToVec())
	assert.Equal(t, strides, b.Strides())
}

func TestUniqueWriteDoesNotCopy(t *testing.T) {
	a := Must(SharedFromShapeVec(dimension.Ix1{2}, []int{1, 2}))
	p := &a.data[0]
	a.Set(dimension.Ix1{0}, 5)
	assert.Same(t, p, &a.data[0])
	assert.Equal(t, 5, *p)
}

func TestArcIntoOwned(t *testing.T) {
	a := Must(SharedFromShapeVec(dimension.Ix1{3}, []int{1, 2, 3}))
	p := &a.data[0]
	owned := a.IntoOwned()
	assert.Same(t, p, &owned.data[0], "unique buffer is taken over")

	s := owned.IntoShared()
	c := s.Clone()
	o2 := c.IntoOwned()
	o2.Set(dimension.Ix1{0}, 100)
	assert.Equal(t, []int{1, 2, 3}, s.ToVec())
	assert.Equal(t, 1, s.RefCount())
}

func TestEnsureUniqueConcurrent(t *testing.T) {
	a := Must(SharedFromShapeVec(dimension.Ix1{64}, seq(64)))
	b := a.Clone()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.EnsureUnique()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, a.RefCount())
	assert.Equal(t, 1, b.RefCount())
	b.Set(dimension.Ix1{0}, -1)
	assert.Equal(t, 0, a.At(dimension.Ix1{0}))
}

func TestArcAsSliceCopiesOnWrite(t *testing.T) {
	c := Must(SharedFromShapeVec(dimension.Ix1{3}, []int{1, 2, 3}))
	d := c.Clone()

	s, ok := c.AsSlice()
	require.True(t, ok)
	s[0] = 42
	assert.Equal(t, []int{42, 2, 3}, c.ToVec())
	assert.Equal(t, []int{1, 2, 3}, d.ToVec())
	assert.True(t, c.IsUnique())
	assert.True(t, d.IsUnique())

	e := d.Clone()
	f := e.T()
	m, ok := e.AsSliceMemoryOrder()
	require.True(t, ok)
	m[2] = -1
	assert.Equal(t, []int{1, 2, 3}, d.ToVec())
	assert.Equal(t, []int{1, 2, 3}, f.ToVec(), "views taken before the copy keep the old buffer")
	assert.Equal(t, []int{1, 2, -1}, e.ToVec())

	g := Must(SharedFromShapeVec(dimension.Ix2{2, 2}, []int{1, 2, 3, 4}))
	g.InvertAxis(1)
	h := g.Clone()
	_, ok = g.AsSlice()
	assert.False(t, ok)
	assert.Equal(t, 2, h.RefCount(), "no copy for a layout that cannot be sliced")
	_, ok = g.AsSliceOrder(dimension.ColumnMajor)
	assert.False(t, ok)
}

func TestArcViewMutAfterClone(t *testing.T) {
	a := Must(SharedFromShapeVec(dimension.Ix1{3}, []int{1, 2, 3}))
	b := a.Clone()

	vm := a.ViewMut()
	vm.Set(dimension.Ix1{0}, 99)
	assert.Equal(t, []int{99, 2, 3}, a.ToVec())
	assert.Equal(t, []int{1, 2, 3}, b.ToVec())
	assert.Equal(t, 1, b.RefCount())
}
