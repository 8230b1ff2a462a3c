package ndarray

import (
	"fmt"
	"iter"

	"github.com/born-ml/ndarray/internal/dimension"
)

// Iter yields the elements in row-major logical order. A contiguous array is
// walked as one flat run; otherwise the last axis forms the inner loop.
func (b *base[A, D]) Iter() iter.Seq[A] {
	return func(yield func(A) bool) {
		walk(b.shape, [][]int{b.strides}, []int{b.offset}, walkLogical, func(offs, steps []int, n int) bool {
			o, s := offs[0], steps[0]
			for i := 0; i < n; i++ {
				if !yield(b.data[o]) {
					return false
				}
				o += s
			}
			return true
		})
	}
}

// IndexedIter yields (index, element) pairs in row-major logical order.
func (b *base[A, D]) IndexedIter() iter.Seq2[D, A] {
	return func(yield func(D, A) bool) {
		for ix := range dimension.Indices(b.shape, dimension.RowMajor) {
			v := b.data[b.offset+dimension.Offset(ix, b.strides)]
			if !yield(dimension.MustFromSlice[D](ix), v) {
				return
			}
		}
	}
}

// ToVec returns the elements in row-major logical order.
func (b *base[A, D]) ToVec() []A {
	out := make([]A, 0, b.Len())
	b.walkC(func(v A) {
		out = append(out, v)
	})
	return out
}

// IterMut yields a pointer to every element in row-major logical order.
func (v *ArrayViewMut[A, D]) IterMut() iter.Seq[*A] {
	return func(yield func(*A) bool) {
		walk(v.shape, [][]int{v.strides}, []int{v.offset}, walkLogical, func(offs, steps []int, n int) bool {
			o, s := offs[0], steps[0]
			for i := 0; i < n; i++ {
				if !yield(&v.data[o]) {
					return false
				}
				o += s
			}
			return true
		})
	}
}

// IndexedIterMut yields (index, pointer) pairs in row-major logical order.
func (v *ArrayViewMut[A, D]) IndexedIterMut() iter.Seq2[D, *A] {
	return func(yield func(D, *A) bool) {
		for ix := range dimension.Indices(v.shape, dimension.RowMajor) {
			p := &v.data[v.offset+dimension.Offset(ix, v.strides)]
			if !yield(dimension.MustFromSlice[D](ix), p) {
				return
			}
		}
	}
}

// grid yields one layout per position of an outer grid. Position p of the
// grid starts at offset + p·gridStrides and has the given inner shape and
// strides.
func (b *base[A, D]) grid(gridShape, gridStrides, innerShape, innerStrides []int) iter.Seq[base[A, D]] {
	return func(yield func(base[A, D]) bool) {
		for ix := range dimension.Indices(gridShape, dimension.RowMajor) {
			sub := newBase[A, D](b.data,
				append([]int(nil), innerShape...),
				append([]int(nil), innerStrides...),
				b.offset+dimension.Offset(ix, gridStrides))
			if !yield(sub) {
				return
			}
		}
	}
}

// without returns values with position ax removed.
func without(values []int, ax int) []int {
	out := make([]int, 0, len(values)-1)
	out = append(out, values[:ax]...)
	return append(out, values[ax+1:]...)
}

func (b *base[A, D]) lanes(axis int) iter.Seq[base[A, dimension.Ix1]] {
	ax := b.axis(axis)
	outer := &base[A, dimension.Ix1]{data: b.data, offset: b.offset}
	return outer.grid(without(b.shape, ax), without(b.strides, ax), []int{b.shape[ax]}, []int{b.strides[ax]})
}

// Lanes yields every one-dimensional lane along axis, in row-major order of
// the remaining axes.
func (b *base[A, D]) Lanes(axis int) iter.Seq[*ArrayView[A, dimension.Ix1]] {
	return func(yield func(*ArrayView[A, dimension.Ix1]) bool) {
		for l := range b.lanes(axis) {
			if !yield(&ArrayView[A, dimension.Ix1]{base: l}) {
				return
			}
		}
	}
}

// Rows yields the lanes along the last axis.
func (b *base[A, D]) Rows() iter.Seq[*ArrayView[A, dimension.Ix1]] {
	return b.Lanes(-1)
}

// Columns yields the lanes along the first axis.
func (b *base[A, D]) Columns() iter.Seq[*ArrayView[A, dimension.Ix1]] {
	return b.Lanes(0)
}

// LanesMut yields every lane along axis as a mutable view.
func (v *ArrayViewMut[A, D]) LanesMut(axis int) iter.Seq[*ArrayViewMut[A, dimension.Ix1]] {
	return func(yield func(*ArrayViewMut[A, dimension.Ix1]) bool) {
		for l := range v.lanes(axis) {
			if !yield(&ArrayViewMut[A, dimension.Ix1]{base: l}) {
				return
			}
		}
	}
}

func (b *base[A, D]) axisSubviews(axis int) iter.Seq[base[A, dimension.IxDyn]] {
	ax := b.axis(axis)
	outer := &base[A, dimension.IxDyn]{data: b.data, offset: b.offset}
	return outer.grid([]int{b.shape[ax]}, []int{b.strides[ax]}, without(b.shape, ax), without(b.strides, ax))
}

// AxisIter yields the subviews at each position along axis, each with that
// axis removed.
func (b *base[A, D]) AxisIter(axis int) iter.Seq[*ArrayView[A, dimension.IxDyn]] {
	return func(yield func(*ArrayView[A, dimension.IxDyn]) bool) {
		for s := range b.axisSubviews(axis) {
			if !yield(&ArrayView[A, dimension.IxDyn]{base: s}) {
				return
			}
		}
	}
}

// OuterIter is AxisIter(0).
func (b *base[A, D]) OuterIter() iter.Seq[*ArrayView[A, dimension.IxDyn]] {
	return b.AxisIter(0)
}

// AxisIterMut is AxisIter yielding mutable views.
func (v *ArrayViewMut[A, D]) AxisIterMut(axis int) iter.Seq[*ArrayViewMut[A, dimension.IxDyn]] {
	return func(yield func(*ArrayViewMut[A, dimension.IxDyn]) bool) {
		for s := range v.axisSubviews(axis) {
			if !yield(&ArrayViewMut[A, dimension.IxDyn]{base: s}) {
				return
			}
		}
	}
}

func (b *base[A, D]) axisChunks(axis, size int) iter.Seq[base[A, D]] {
	ax := b.axis(axis)
	if size <= 0 {
		panic(fmt.Sprintf("ndarray: chunk size must be positive, got %d", size))
	}
	return func(yield func(base[A, D]) bool) {
		n := b.shape[ax]
		for start := 0; start < n; start += size {
			sub := b.cloneLayout()
			sub.shape[ax] = min(size, n-start)
			sub.offset += start * b.strides[ax]
			if !yield(sub) {
				return
			}
		}
	}
}

// AxisChunksIter yields consecutive chunks of size positions along axis; the
// last chunk may be shorter. It panics if size is not positive.
func (b *base[A, D]) AxisChunksIter(axis, size int) iter.Seq[*ArrayView[A, D]] {
	chunks := b.axisChunks(axis, size)
	return func(yield func(*ArrayView[A, D]) bool) {
		for c := range chunks {
			if !yield(&ArrayView[A, D]{base: c}) {
				return
			}
		}
	}
}

// AxisChunksIterMut is AxisChunksIter yielding mutable views.
func (v *ArrayViewMut[A, D]) AxisChunksIterMut(axis, size int) iter.Seq[*ArrayViewMut[A, D]] {
	chunks := v.axisChunks(axis, size)
	return func(yield func(*ArrayViewMut[A, D]) bool) {
		for c := range chunks {
			if !yield(&ArrayViewMut[A, D]{base: c}) {
				return
			}
		}
	}
}

// ExactChunks yields the non-overlapping chunks of shape chunk that fit
// entirely inside the array, in row-major order; leftover positions at the
// end of each axis are skipped. It panics if chunk has a zero length or a
// rank other than the array's.
func (b *base[A, D]) ExactChunks(chunk D) iter.Seq[*ArrayView[A, D]] {
	c := chunk.Slice()
	if len(c) != len(b.shape) {
		panic(fmt.Sprintf("ndarray: chunk %v does not match the rank of shape %v", c, b.shape))
	}
	gridShape := make([]int, len(b.shape))
	gridStrides := make([]int, len(b.shape))
	for i, d := range b.shape {
		if c[i] <= 0 {
			panic(fmt.Sprintf("ndarray: chunk %v has a non-positive length", c))
		}
		gridShape[i] = d / c[i]
		gridStrides[i] = b.strides[i] * c[i]
	}
	return func(yield func(*ArrayView[A, D]) bool) {
		for sub := range b.grid(gridShape, gridStrides, c, b.strides) {
			if !yield(&ArrayView[A, D]{base: sub}) {
				return
			}
		}
	}
}

// Windows yields every overlapping window of shape window, advancing one
// position at a time in row-major order. No window is produced when window
// is larger than the array on some axis. It panics if window has a zero
// length or a rank other than the array's.
func (b *base[A, D]) Windows(window D) iter.Seq[*ArrayView[A, D]] {
	w := window.Slice()
	if len(w) != len(b.shape) {
		panic(fmt.Sprintf("ndarray: window %v does not match the rank of shape %v", w, b.shape))
	}
	gridShape := make([]int, len(b.shape))
	for i, d := range b.shape {
		if w[i] <= 0 {
			panic(fmt.Sprintf("ndarray: window %v has a non-positive length", w))
		}
		gridShape[i] = max(d-w[i]+1, 0)
	}
	return func(yield func(*ArrayView[A, D]) bool) {
		for sub := range b.grid(gridShape, b.strides, w, b.strides) {
			if !yield(&ArrayView[A, D]{base: sub}) {
				return
			}
		}
	}
}
