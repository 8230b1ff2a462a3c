// Package ndarray implements strided N-dimensional arrays.
//
// Every container is a backing slice plus a shape, per-axis strides (in
// elements, possibly zero or negative) and the offset of the logical first
// element. The ownership mode decides what a container may do:
//
//   - Array owns its elements exclusively and may be written.
//   - ArcArray shares its elements copy-on-write with its clones; writes go
//     through EnsureUnique first.
//   - ArrayView reads another container's elements.
//   - ArrayViewMut reads and writes another container's elements.
//
// The rank is a type parameter: dimension.Ix1 through dimension.Ix6 fix it
// at compile time, dimension.IxDyn leaves it to run time. Operations that
// change the rank return dynamic-rank views; IntoDimensionality converts them
// back.
package ndarray

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/dimension"
)

// Array is an owned N-dimensional array.
type Array[A any, D dimension.Dimension] struct {
	base[A, D]
}

// FromShapeVec creates a row-major array of the given shape that takes
// ownership of data. It fails with IncompatibleShape unless len(data) equals
// the element count.
func FromShapeVec[A any, D dimension.Dimension](shape D, data []A) (*Array[A, D], error) {
	return FromShapeVecOrder(shape, dimension.RowMajor, data)
}

// FromShapeVecOrder is FromShapeVec with data laid out in order.
func FromShapeVecOrder[A any, D dimension.Dimension](shape D, order dimension.Order, data []A) (*Array[A, D], error) {
	sh := append([]int(nil), shape.Slice()...)
	n, err := dimension.SizeChecked(sh)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, dimension.NewError(dimension.IncompatibleShape,
			fmt.Sprintf("buffer has %d elements, shape needs %d", len(data), n), sh)
	}
	return &Array[A, D]{base: newBase[A, D](data, sh, dimension.DefaultStrides(sh, order), 0)}, nil
}

// FromShapeVecStrides creates an array with custom strides over data. The
// lowest addressed element is data[0]; negative strides are allowed but two
// indices may not share an element.
func FromShapeVecStrides[A any, D dimension.Dimension](shape D, strides []int, data []A) (*Array[A, D], error) {
	b, err := layoutOver[A, D](data, append([]int(nil), shape.Slice()...), append([]int(nil), strides...), false)
	if err != nil {
		return nil, err
	}
	return &Array[A, D]{base: b}, nil
}

// FromVec creates a one-dimensional array that owns data.
func FromVec[A any](data []A) *Array[A, dimension.Ix1] {
	return &Array[A, dimension.Ix1]{base: newBase[A, dimension.Ix1](data, []int{len(data)}, []int{1}, 0)}
}

// Scalar creates a zero-dimensional array holding v.
func Scalar[A any](v A) *Array[A, dimension.Ix0] {
	return &Array[A, dimension.Ix0]{base: newBase[A, dimension.Ix0]([]A{v}, []int{}, []int{}, 0)}
}

// Zeros creates a row-major array filled with the zero value of A.
func Zeros[A any, D dimension.Dimension](shape D) (*Array[A, D], error) {
	return ZerosOrder[A](shape, dimension.RowMajor)
}

// ZerosOrder is Zeros laid out in order.
func ZerosOrder[A any, D dimension.Dimension](shape D, order dimension.Order) (*Array[A, D], error) {
	n, err := dimension.SizeChecked(shape.Slice())
	if err != nil {
		return nil, err
	}
	return FromShapeVecOrder(shape, order, make([]A, n))
}

// FromElem creates a row-major array with every element set to v.
func FromElem[A any, D dimension.Dimension](shape D, v A) (*Array[A, D], error) {
	return FromElemOrder(shape, dimension.RowMajor, v)
}

// FromElemOrder is FromElem laid out in order.
func FromElemOrder[A any, D dimension.Dimension](shape D, order dimension.Order, v A) (*Array[A, D], error) {
	a, err := ZerosOrder[A](shape, order)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = v
	}
	return a, nil
}

// FromFn creates a row-major array whose element at each index is f(index).
// f is called in row-major order.
func FromFn[A any, D dimension.Dimension](shape D, f func(D) A) (*Array[A, D], error) {
	a, err := Zeros[A](shape)
	if err != nil {
		return nil, err
	}
	i := 0
	for ix := range dimension.IndicesOf[D](a.shape) {
		a.data[i] = f(ix)
		i++
	}
	return a, nil
}

// Must panics if err is not nil and returns v otherwise.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// ViewMut returns a mutable view of the array.
func (a *Array[A, D]) ViewMut() *ArrayViewMut[A, D] {
	return &ArrayViewMut[A, D]{base: a.cloneLayout()}
}

// IntoShared converts the array to a copy-on-write shared array without
// copying. The receiver is left empty.
func (a *Array[A, D]) IntoShared() *ArcArray[A, D] {
	s := &ArcArray[A, D]{base: a.base, buf: newBuffer(a.data)}
	a.base = base[A, D]{}
	return s
}

// IntoDynOwned converts the array to dynamic rank without copying. The receiver
// is left empty.
func (a *Array[A, D]) IntoDynOwned() *Array[A, dimension.IxDyn] {
	out := &Array[A, dimension.IxDyn]{base: rebase[dimension.IxDyn](&a.base)}
	a.base = base[A, D]{}
	return out
}

// IntoShape gives the array a new shape without moving elements, reading
// them in row-major order. It fails with IncompatibleShape when the element
// counts differ and with IncompatibleLayout when the current strides cannot
// express the new shape. On failure the receiver is unchanged.
func (a *Array[A, D]) IntoShape(shape ...int) (*Array[A, dimension.IxDyn], error) {
	strides, err := dimension.ReshapeStrides(a.shape, a.strides, shape, dimension.RowMajor)
	if err != nil {
		return nil, fmt.Errorf("into shape: %w", err)
	}
	out := &Array[A, dimension.IxDyn]{base: newBase[A, dimension.IxDyn](a.data, append([]int(nil), shape...), strides, a.offset)}
	a.base = base[A, D]{}
	return out, nil
}

// Set writes value at index. It panics with a *dimension.IndexError when the
// index is out of range.
func (a *Array[A, D]) Set(index D, value A) {
	a.data[a.offsetChecked(index)] = value
}

// Ptr returns a pointer to the element at index.
func (a *Array[A, D]) Ptr(index D) *A {
	return &a.data[a.offsetChecked(index)]
}

// AsSliceMut returns the elements as a writable slice when the array is
// row-major contiguous.
func (a *Array[A, D]) AsSliceMut() ([]A, bool) {
	return a.AsSlice()
}

// Fill sets every element to v.
func (a *Array[A, D]) Fill(v A) {
	a.ViewMut().Fill(v)
}

// Assign copies src into the array, broadcasting src to the array's shape.
func (a *Array[A, D]) Assign(src Source[A]) error {
	return a.ViewMut().Assign(src)
}

// MapInPlace calls f on a pointer to every element, in no particular order.
func (a *Array[A, D]) MapInPlace(f func(*A)) {
	a.ViewMut().MapInPlace(f)
}

// MapvInPlace replaces every element x with f(x), in no particular order.
func (a *Array[A, D]) MapvInPlace(f func(A) A) {
	a.ViewMut().MapvInPlace(f)
}

// SliceMut returns a mutable view of a slice of the array.
func (a *Array[A, D]) SliceMut(info ...dimension.SliceInfoElem) (*ArrayViewMut[A, dimension.IxDyn], error) {
	return a.ViewMut().SliceMut(info...)
}

// Clone returns a deep copy with the same layout.
func (a *Array[A, D]) Clone() *Array[A, D] {
	data := make([]A, len(a.data))
	copy(data, a.data)
	b := a.cloneLayout()
	b.data = data
	return &Array[A, D]{base: b}
}
