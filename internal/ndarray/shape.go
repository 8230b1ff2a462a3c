package ndarray

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/dimension"
)

// Reshape returns a view with a new shape, reading the elements in row-major
// order, without copying. It fails with IncompatibleShape when the element
// counts differ and with IncompatibleLayout when the strides cannot express
// the new shape; call ToOwned first to reshape through a copy.
func (b *base[A, D]) Reshape(shape ...int) (*ArrayView[A, dimension.IxDyn], error) {
	return b.ReshapeOrder(dimension.RowMajor, shape...)
}

// ReshapeOrder is Reshape reading the elements in order.
func (b *base[A, D]) ReshapeOrder(order dimension.Order, shape ...int) (*ArrayView[A, dimension.IxDyn], error) {
	r, err := b.reshaped(order, shape)
	if err != nil {
		return nil, err
	}
	return &ArrayView[A, dimension.IxDyn]{base: r}, nil
}

// ReshapeMut is Reshape returning a mutable view.
func (v *ArrayViewMut[A, D]) ReshapeMut(shape ...int) (*ArrayViewMut[A, dimension.IxDyn], error) {
	r, err := v.reshaped(dimension.RowMajor, shape)
	if err != nil {
		return nil, err
	}
	return &ArrayViewMut[A, dimension.IxDyn]{base: r}, nil
}

func (b *base[A, D]) reshaped(order dimension.Order, shape []int) (base[A, dimension.IxDyn], error) {
	strides, err := dimension.ReshapeStrides(b.shape, b.strides, shape, order)
	if err != nil {
		return base[A, dimension.IxDyn]{}, fmt.Errorf("reshape: %w", err)
	}
	return newBase[A, dimension.IxDyn](b.data, append([]int(nil), shape...), strides, b.offset), nil
}

// Broadcast returns a read-only view of the array stretched to shape: axes
// of length 1 and missing leading axes repeat with stride 0. It fails with
// IncompatibleShape when some axis can be neither matched nor stretched.
func (b *base[A, D]) Broadcast(shape ...int) (*ArrayView[A, dimension.IxDyn], error) {
	s, err := b.broadcastTo(shape)
	if err != nil {
		return nil, fmt.Errorf("broadcast: %w", err)
	}
	return &ArrayView[A, dimension.IxDyn]{base: s}, nil
}

// BroadcastMutAliased is Broadcast returning a mutable view. Every stretched
// axis aliases: one write changes every position that shares the element.
func (v *ArrayViewMut[A, D]) BroadcastMutAliased(shape ...int) (*ArrayViewMut[A, dimension.IxDyn], error) {
	s, err := v.broadcastTo(shape)
	if err != nil {
		return nil, fmt.Errorf("broadcast: %w", err)
	}
	return &ArrayViewMut[A, dimension.IxDyn]{base: s}, nil
}

// Transpose returns a view with the axes reversed. For two dimensions this
// is the matrix transpose.
func (b *base[A, D]) Transpose() *ArrayView[A, D] {
	return &ArrayView[A, D]{base: *b.reversedAxes()}
}

// T is short for Transpose.
func (b *base[A, D]) T() *ArrayView[A, D] {
	return b.Transpose()
}

// ReverseAxes reverses the axis order in place.
func (b *base[A, D]) ReverseAxes() {
	b.shape = dimension.Reversed(b.shape)
	b.strides = dimension.Reversed(b.strides)
}

// PermutedAxes returns a view whose axis i is the receiver's axis axes[i].
// It panics unless axes is a permutation of the axes.
func (b *base[A, D]) PermutedAxes(axes ...int) *ArrayView[A, D] {
	if err := dimension.CheckPermutation(axes, len(b.shape)); err != nil {
		panic(fmt.Sprintf("ndarray: %v", err))
	}
	return &ArrayView[A, D]{base: newBase[A, D](b.data,
		dimension.Permute(b.shape, axes), dimension.Permute(b.strides, axes), b.offset)}
}

// SwapAxes swaps two axes in place.
func (b *base[A, D]) SwapAxes(i, j int) {
	i, j = b.axis(i), b.axis(j)
	b.shape[i], b.shape[j] = b.shape[j], b.shape[i]
	b.strides[i], b.strides[j] = b.strides[j], b.strides[i]
}

// InvertAxis reverses the direction of axis in place.
func (b *base[A, D]) InvertAxis(axis int) {
	ax := b.axis(axis)
	if n := b.shape[ax]; n > 0 {
		b.offset += (n - 1) * b.strides[ax]
	}
	b.strides[ax] = -b.strides[ax]
}

// MergeAxes merges axis take into axis into in place when they can be
// traversed as one, leaving take with length 1.
func (b *base[A, D]) MergeAxes(take, into int) bool {
	return dimension.MergeAxes(b.shape, b.strides, b.axis(take), b.axis(into))
}

// InsertAxis returns a view with a new axis of length 1 at position axis.
func (b *base[A, D]) InsertAxis(axis int) *ArrayView[A, dimension.IxDyn] {
	ax, err := dimension.NormalizeAxis(axis, len(b.shape)+1)
	if err != nil {
		panic(fmt.Sprintf("ndarray: %v", err))
	}
	shape := make([]int, 0, len(b.shape)+1)
	shape = append(append(append(shape, b.shape[:ax]...), 1), b.shape[ax:]...)
	strides := make([]int, 0, len(b.strides)+1)
	strides = append(append(append(strides, b.strides[:ax]...), 0), b.strides[ax:]...)
	return &ArrayView[A, dimension.IxDyn]{base: newBase[A, dimension.IxDyn](b.data, shape, strides, b.offset)}
}

// RemoveAxis returns a view without axis, selecting its first position. It
// panics if the axis is empty.
func (b *base[A, D]) RemoveAxis(axis int) *ArrayView[A, dimension.IxDyn] {
	return b.IndexAxis(axis, 0)
}

// Diag returns the diagonal: the elements whose index components are all
// equal.
func (b *base[A, D]) Diag() *ArrayView[A, dimension.Ix1] {
	n := 1
	stride := 0
	for i, d := range b.shape {
		if i == 0 || d < n {
			n = d
		}
		stride += b.strides[i]
	}
	return &ArrayView[A, dimension.Ix1]{base: newBase[A, dimension.Ix1](b.data, []int{n}, []int{stride}, b.offset)}
}

// AsStandardLayout returns the array in row-major layout: a view when it
// already is, otherwise a view of a copy.
func (b *base[A, D]) AsStandardLayout() *ArrayView[A, D] {
	if b.IsStandardLayout() {
		return b.View()
	}
	return b.toOwnedOrder(dimension.RowMajor).View()
}

// Flatten returns the elements as a one-dimensional array in row-major
// order, copying only when the layout requires it.
func (b *base[A, D]) Flatten() *ArrayView[A, dimension.Ix1] {
	std := b.AsStandardLayout()
	n := std.Len()
	return &ArrayView[A, dimension.Ix1]{base: newBase[A, dimension.Ix1](std.data, []int{n}, []int{1}, std.offset)}
}

// IntoDimensionality converts a view to the dimension type D2. It fails with
// IncompatibleShape when D2 has a fixed rank that differs from the view's.
func IntoDimensionality[D2 dimension.Dimension, A any, D dimension.Dimension](v *ArrayView[A, D]) (*ArrayView[A, D2], error) {
	if err := checkRank[D2](v.shape); err != nil {
		return nil, err
	}
	return &ArrayView[A, D2]{base: rebase[D2](&v.base)}, nil
}

// IntoDimensionalityMut is IntoDimensionality for mutable views.
func IntoDimensionalityMut[D2 dimension.Dimension, A any, D dimension.Dimension](v *ArrayViewMut[A, D]) (*ArrayViewMut[A, D2], error) {
	if err := checkRank[D2](v.shape); err != nil {
		return nil, err
	}
	return &ArrayViewMut[A, D2]{base: rebase[D2](&v.base)}, nil
}

// IntoDimensionalityOwned is IntoDimensionality for owned arrays. The
// receiver is left empty on success.
func IntoDimensionalityOwned[D2 dimension.Dimension, A any, D dimension.Dimension](a *Array[A, D]) (*Array[A, D2], error) {
	if err := checkRank[D2](a.shape); err != nil {
		return nil, err
	}
	out := &Array[A, D2]{base: rebase[D2](&a.base)}
	a.base = base[A, D]{}
	return out, nil
}

func checkRank[D dimension.Dimension](shape []int) error {
	if r := dimension.Rank[D](); r >= 0 && r != len(shape) {
		return dimension.NewError(dimension.IncompatibleShape,
			fmt.Sprintf("cannot view %d axes as rank %d", len(shape), r), shape)
	}
	return nil
}
