package ndarray

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/dimension"
)

// ArrayView is a read-only view of another container's elements. Views are
// cheap to create and never own or copy data.
type ArrayView[A any, D dimension.Dimension] struct {
	base[A, D]
}

// ArrayViewMut is a view through which elements may be written. Two mutable
// views handed to different goroutines must not reach a common element.
type ArrayViewMut[A any, D dimension.Dimension] struct {
	base[A, D]
}

// ViewMut returns another mutable view of the same elements.
func (v *ArrayViewMut[A, D]) ViewMut() *ArrayViewMut[A, D] {
	return &ArrayViewMut[A, D]{base: v.cloneLayout()}
}

// IntoDynMut returns the view with dynamic rank.
func (v *ArrayViewMut[A, D]) IntoDynMut() *ArrayViewMut[A, dimension.IxDyn] {
	return &ArrayViewMut[A, dimension.IxDyn]{base: rebase[dimension.IxDyn](&v.base)}
}

// ViewFromSlice views data as a row-major array of the given shape. data may
// be longer than needed.
func ViewFromSlice[A any, D dimension.Dimension](shape D, data []A) (*ArrayView[A, D], error) {
	return ViewFromSliceOrder(shape, dimension.RowMajor, data)
}

// ViewFromSliceOrder views data as an array of the given shape laid out in
// order.
func ViewFromSliceOrder[A any, D dimension.Dimension](shape D, order dimension.Order, data []A) (*ArrayView[A, D], error) {
	sh := append([]int(nil), shape.Slice()...)
	b, err := layoutOver[A, D](data, sh, dimension.DefaultStrides(sh, order), false)
	if err != nil {
		return nil, err
	}
	return &ArrayView[A, D]{base: b}, nil
}

// ViewFromSliceStrides views data with custom strides, which may be negative.
// The lowest addressed element is data[0]. Strides that map two indices to
// one element are rejected.
func ViewFromSliceStrides[A any, D dimension.Dimension](shape D, strides []int, data []A) (*ArrayView[A, D], error) {
	b, err := layoutOver[A, D](data, append([]int(nil), shape.Slice()...), append([]int(nil), strides...), false)
	if err != nil {
		return nil, err
	}
	return &ArrayView[A, D]{base: b}, nil
}

// ViewMutFromSlice is ViewFromSlice for a mutable view.
func ViewMutFromSlice[A any, D dimension.Dimension](shape D, data []A) (*ArrayViewMut[A, D], error) {
	v, err := ViewFromSlice(shape, data)
	if err != nil {
		return nil, err
	}
	return &ArrayViewMut[A, D]{base: v.base}, nil
}

// ViewMutFromSliceStrides is ViewFromSliceStrides for a mutable view.
func ViewMutFromSliceStrides[A any, D dimension.Dimension](shape D, strides []int, data []A) (*ArrayViewMut[A, D], error) {
	v, err := ViewFromSliceStrides(shape, strides, data)
	if err != nil {
		return nil, err
	}
	return &ArrayViewMut[A, D]{base: v.base}, nil
}

// layoutOver validates shape and strides against data and places the logical
// first element so that the lowest addressed element is data[0].
func layoutOver[A any, D dimension.Dimension](data []A, shape, strides []int, allowAliasing bool) (base[A, D], error) {
	if r := dimension.Rank[D](); r >= 0 && r != len(shape) {
		return base[A, D]{}, dimension.NewError(dimension.IncompatibleShape,
			fmt.Sprintf("expected %d axes, got %d", r, len(shape)), shape)
	}
	if len(strides) != len(shape) {
		return base[A, D]{}, dimension.NewError(dimension.IncompatibleLayout,
			fmt.Sprintf("strides %v do not match rank", strides), shape)
	}
	offset := dimension.OffsetFromLowAddr(shape, strides)
	if dimension.Shape(shape).NumElements() == 0 {
		offset = 0
	}
	if err := dimension.CanIndexSlice(len(data), offset, shape, strides, allowAliasing); err != nil {
		return base[A, D]{}, err
	}
	return newBase[A, D](data, shape, strides, offset), nil
}
