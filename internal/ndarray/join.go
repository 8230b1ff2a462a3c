package ndarray

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/dimension"
)

// Concatenate joins arrays along an existing axis. All inputs must agree on
// every other axis. The result is row-major.
func Concatenate[A any, D dimension.Dimension](axis int, arrays ...Data[A, D]) (*Array[A, D], error) {
	if len(arrays) == 0 {
		return nil, dimension.NewError(dimension.Unsupported, "concatenate needs at least one array")
	}
	views := make([]*ArrayView[A, D], len(arrays))
	for i, a := range arrays {
		views[i] = a.View()
	}
	first := views[0]
	if first.NDim() == 0 {
		return nil, dimension.NewError(dimension.Unsupported, "cannot concatenate zero-dimensional arrays")
	}
	ax := first.axis(axis)
	shape := append([]int(nil), first.shape...)
	shape[ax] = 0
	for _, v := range views {
		if !sameExcept(first.shape, v.shape, ax) {
			return nil, dimension.NewError(dimension.IncompatibleShape,
				fmt.Sprintf("concatenate along axis %d", ax), first.shape, v.shape)
		}
		shape[ax] += v.shape[ax]
	}
	if _, err := dimension.SizeChecked(shape); err != nil {
		return nil, err
	}
	out := Must(Zeros[A](dimension.MustFromSlice[D](shape)))
	dst := out.ViewMut()
	start := 0
	for _, v := range views {
		part := dst.cloneLayout()
		part.shape[ax] = v.shape[ax]
		if v.Len() > 0 {
			part.offset += start * dst.strides[ax]
		}
		pv := &ArrayViewMut[A, D]{base: part}
		if err := pv.Assign(v); err != nil {
			return nil, err
		}
		start += v.shape[ax]
	}
	return out, nil
}

// Stack joins arrays of identical shape along a new axis inserted at
// position axis.
func Stack[A any, D dimension.Dimension](axis int, arrays ...Data[A, D]) (*Array[A, dimension.IxDyn], error) {
	if len(arrays) == 0 {
		return nil, dimension.NewError(dimension.Unsupported, "stack needs at least one array")
	}
	expanded := make([]Data[A, dimension.IxDyn], len(arrays))
	var shape []int
	for i, a := range arrays {
		v := a.View()
		if i == 0 {
			shape = v.shape
		} else if !dimension.Equal(shape, v.shape) {
			return nil, dimension.NewError(dimension.IncompatibleShape, "stack needs equal shapes", shape, v.shape)
		}
		if _, err := dimension.NormalizeAxis(axis, v.NDim()+1); err != nil {
			return nil, err
		}
		expanded[i] = v.InsertAxis(axis)
	}
	return Concatenate(axis, expanded...)
}

// Select gathers the subviews at indices along axis into a new array, in
// the given order; indices may repeat. It panics if an index is out of
// range.
func (b *base[A, D]) Select(axis int, indices ...int) *Array[A, D] {
	ax := b.axis(axis)
	shape := append([]int(nil), b.shape...)
	shape[ax] = len(indices)
	out := Must(Zeros[A](dimension.MustFromSlice[D](shape)))
	dst := out.ViewMut()
	for j, i := range indices {
		src := b.indexAxis(ax, i)
		row := dst.indexAxis(ax, j)
		_ = zipInto(&row, &src, func(d *A, s A) { *d = s })
	}
	return out
}

func sameExcept(a, b []int, ax int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if i != ax && a[i] != b[i] {
			return false
		}
	}
	return true
}
