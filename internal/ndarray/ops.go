package ndarray

import (
	"github.com/born-ml/ndarray/internal/dimension"
)

// Map returns a new row-major array holding f applied to every element.
func Map[A, B any, D dimension.Dimension](a Data[A, D], f func(A) B) *Array[B, D] {
	v := a.View()
	out := &Array[B, D]{base: newBase[B, D](make([]B, v.Len()),
		append([]int(nil), v.shape...), dimension.DefaultStrides(v.shape, dimension.RowMajor), 0)}
	i := 0
	v.walkC(func(x A) {
		out.data[i] = f(x)
		i++
	})
	return out
}

// Fold folds every element into an accumulator, in no particular order.
func Fold[A, B any, D dimension.Dimension](a Data[A, D], init B, f func(B, A) B) B {
	acc := init
	a.View().ForEach(func(x A) {
		acc = f(acc, x)
	})
	return acc
}

// FoldAxis folds the lanes along axis, producing an array with that axis
// removed. Each lane starts from init.
func FoldAxis[A, B any, D dimension.Dimension](a Data[A, D], axis int, init B, f func(B, A) B) *Array[B, dimension.IxDyn] {
	return MapAxis(a, axis, func(lane *ArrayView[A, dimension.Ix1]) B {
		return Fold[A, B, dimension.Ix1](lane, init, f)
	})
}

// MapAxis applies f to every lane along axis, producing an array with that
// axis removed.
func MapAxis[A, B any, D dimension.Dimension](a Data[A, D], axis int, f func(*ArrayView[A, dimension.Ix1]) B) *Array[B, dimension.IxDyn] {
	v := a.View()
	ax := v.axis(axis)
	shape := without(v.shape, ax)
	out := &Array[B, dimension.IxDyn]{base: newBase[B, dimension.IxDyn](
		make([]B, dimension.Shape(shape).NumElements()), shape, dimension.DefaultStrides(shape, dimension.RowMajor), 0)}
	i := 0
	for lane := range v.Lanes(ax) {
		out.data[i] = f(lane)
		i++
	}
	return out
}

// Equal reports whether a and b have the same shape and equal elements.
func Equal[A comparable, D dimension.Dimension](a, b Data[A, D]) bool {
	va, vb := a.View(), b.View()
	if !dimension.Equal(va.shape, vb.shape) {
		return false
	}
	equal := true
	walk(va.shape, [][]int{va.strides, vb.strides}, []int{va.offset, vb.offset}, walkShared,
		func(offs, steps []int, n int) bool {
			oa, ob := offs[0], offs[1]
			for i := 0; i < n; i++ {
				if va.data[oa] != vb.data[ob] {
					equal = false
					return false
				}
				oa += steps[0]
				ob += steps[1]
			}
			return true
		})
	return equal
}
