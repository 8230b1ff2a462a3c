package ndarray

import (
	"fmt"
	"strings"

	"github.com/born-ml/ndarray/internal/dimension"
)

// base is the strided layout shared by every container kind: a backing
// slice, the shape and strides (in elements, possibly negative or zero) and
// the offset of the logical first element in data.
//
// Methods on base are read-only with respect to elements and are promoted to
// Array, ArcArray, ArrayView and ArrayViewMut.
type base[A any, D dimension.Dimension] struct {
	data    []A
	shape   []int
	strides []int
	offset  int
}

func newBase[A any, D dimension.Dimension](data []A, shape, strides []int, offset int) base[A, D] {
	return base[A, D]{data: data, shape: shape, strides: strides, offset: offset}
}

// rebase reinterprets the layout under another dimension type. The caller
// guarantees that the rank fits D2.
func rebase[D2 dimension.Dimension, A any, D dimension.Dimension](b *base[A, D]) base[A, D2] {
	return base[A, D2]{
		data:    b.data,
		shape:   append([]int(nil), b.shape...),
		strides: append([]int(nil), b.strides...),
		offset:  b.offset,
	}
}

// cloneLayout returns a base sharing data with independent shape and strides.
func (b *base[A, D]) cloneLayout() base[A, D] {
	return rebase[D](b)
}

// Shape returns a copy of the axis lengths.
func (b *base[A, D]) Shape() dimension.Shape {
	return dimension.Dim(b.shape...)
}

// Dim returns the shape as the array's dimension type.
func (b *base[A, D]) Dim() D {
	return dimension.MustFromSlice[D](b.shape)
}

// Strides returns a copy of the strides, in elements.
func (b *base[A, D]) Strides() []int {
	return append([]int(nil), b.strides...)
}

// NDim returns the number of axes.
func (b *base[A, D]) NDim() int {
	return len(b.shape)
}

// Len returns the number of elements.
func (b *base[A, D]) Len() int {
	return dimension.Shape(b.shape).NumElements()
}

// LenOf returns the length of axis.
func (b *base[A, D]) LenOf(axis int) int {
	return b.shape[b.axis(axis)]
}

// IsEmpty reports whether the array has no elements.
func (b *base[A, D]) IsEmpty() bool {
	return b.Len() == 0
}

// Layout classifies the current shape and strides.
func (b *base[A, D]) Layout() dimension.Layout {
	return dimension.LayoutOf(b.shape, b.strides)
}

// IsContiguous reports whether the elements are laid out contiguously in
// order, ignoring the strides of axes of length one.
func (b *base[A, D]) IsContiguous(order dimension.Order) bool {
	return dimension.IsContiguous(b.shape, b.strides, order)
}

// IsStandardLayout reports C contiguity.
func (b *base[A, D]) IsStandardLayout() bool {
	return dimension.IsLayoutC(b.shape, b.strides)
}

// View returns a read-only view of the same elements.
func (b *base[A, D]) View() *ArrayView[A, D] {
	return &ArrayView[A, D]{base: b.cloneLayout()}
}

// IntoDyn returns a read-only view with dynamic rank.
func (b *base[A, D]) IntoDyn() *ArrayView[A, dimension.IxDyn] {
	return &ArrayView[A, dimension.IxDyn]{base: rebase[dimension.IxDyn](b)}
}

// ToOwned copies the elements into a new owned array. Arrays contiguous in
// column-major order keep that order; everything else becomes row-major.
func (b *base[A, D]) ToOwned() *Array[A, D] {
	order := dimension.RowMajor
	if !b.IsStandardLayout() && b.IsContiguous(dimension.ColumnMajor) {
		order = dimension.ColumnMajor
	}
	return b.toOwnedOrder(order)
}

func (b *base[A, D]) toOwnedOrder(order dimension.Order) *Array[A, D] {
	n := b.Len()
	data := make([]A, n)
	if order == dimension.ColumnMajor {
		t := b.reversedAxes()
		i := 0
		t.walkC(func(v A) {
			data[i] = v
			i++
		})
	} else if s, ok := b.AsSlice(); ok {
		copy(data, s)
	} else {
		i := 0
		b.walkC(func(v A) {
			data[i] = v
			i++
		})
	}
	shape := append([]int(nil), b.shape...)
	return &Array[A, D]{base: newBase[A, D](data, shape, dimension.DefaultStrides(shape, order), 0)}
}

// AsSlice returns the elements as a slice when the array is contiguous in
// row-major order, and false otherwise.
func (b *base[A, D]) AsSlice() ([]A, bool) {
	return b.AsSliceOrder(dimension.RowMajor)
}

// AsSliceOrder returns the elements as a slice when the array is contiguous
// in order, and false otherwise.
func (b *base[A, D]) AsSliceOrder(order dimension.Order) ([]A, bool) {
	if !b.IsContiguous(order) {
		return nil, false
	}
	return b.flatSlice(), true
}

// AsSliceMemoryOrder returns the elements in memory order when they occupy a
// gap-free block, whatever the axis order or stride signs.
func (b *base[A, D]) AsSliceMemoryOrder() ([]A, bool) {
	if !dimension.IsDense(b.shape, b.strides) {
		return nil, false
	}
	return b.flatSlice(), true
}

// flatSlice returns the block of data a dense layout occupies.
func (b *base[A, D]) flatSlice() []A {
	n := b.Len()
	if n == 0 {
		return b.data[:0:0]
	}
	low := b.offset - dimension.OffsetFromLowAddr(b.shape, b.strides)
	return b.data[low : low+n : low+n]
}

// axis resolves a possibly negative axis number, panicking when it is out of
// range.
func (b *base[A, D]) axis(axis int) int {
	ax, err := dimension.NormalizeAxis(axis, len(b.shape))
	if err != nil {
		panic(fmt.Sprintf("ndarray: %v (shape %v)", err, b.shape))
	}
	return ax
}

// String renders the elements as nested brackets, one row per line.
func (b *base[A, D]) String() string {
	var sb strings.Builder
	b.format(&sb, 0, b.offset)
	return sb.String()
}

func (b *base[A, D]) format(sb *strings.Builder, ax, off int) {
	if ax == len(b.shape) {
		fmt.Fprint(sb, b.data[off])
		return
	}
	sb.WriteByte('[')
	for i := 0; i < b.shape[ax]; i++ {
		if i > 0 {
			sb.WriteByte(',')
			if ax == len(b.shape)-1 {
				sb.WriteByte(' ')
			} else {
				sb.WriteString(strings.Repeat("\n", len(b.shape)-ax-1))
				sb.WriteString(strings.Repeat(" ", ax+1))
			}
		}
		b.format(sb, ax+1, off+i*b.strides[ax])
	}
	sb.WriteByte(']')
}
