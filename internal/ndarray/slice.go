package ndarray

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/dimension"
)

// checkSliceBounds panics with *dimension.IndexError on the first index or
// range bound of info that lies outside its axis. Malformed specifications
// are left for the slice arithmetic to report.
func (b *base[A, D]) checkSliceBounds(info []dimension.SliceInfoElem) {
	if dimension.SliceInNDim(info) != len(b.shape) {
		return
	}
	ax := 0
	for _, e := range info {
		switch e.Kind {
		case dimension.KindIndex:
			if i := dimension.AbsIndex(b.shape[ax], e.Index); uint(i) >= uint(b.shape[ax]) {
				panic(b.indexError(ax, e.Index))
			}
			ax++
		case dimension.KindRange:
			b.checkRangeBounds(ax, e)
			ax++
		}
	}
}

// checkRangeBounds allows bounds in [0, len], since a range may stop at the
// end of its axis.
func (b *base[A, D]) checkRangeBounds(ax int, e dimension.SliceInfoElem) {
	if e.Step == 0 {
		return
	}
	n := b.shape[ax]
	if i := dimension.AbsIndex(n, e.Start); i < 0 || i > n {
		panic(b.indexError(ax, e.Start))
	}
	if !e.HasEnd {
		return
	}
	if i := dimension.AbsIndex(n, e.End); i < 0 || i > n {
		panic(b.indexError(ax, e.End))
	}
}

func (b *base[A, D]) sliced(info []dimension.SliceInfoElem) (base[A, dimension.IxDyn], error) {
	b.checkSliceBounds(info)
	shape, strides, off, err := dimension.SliceDims(b.shape, b.strides, info)
	if err != nil {
		return base[A, dimension.IxDyn]{}, fmt.Errorf("slice %s: %w", dimension.FormatSlice(info), err)
	}
	if dimension.Shape(shape).NumElements() == 0 {
		// Nothing is reachable; keep an offset that is valid for the data.
		off = 0
	}
	return newBase[A, dimension.IxDyn](b.data, shape, strides, b.offset+off), nil
}

// Slice returns a view of the elements selected by info, one element per
// source axis plus any NewAxis elements. Index elements remove their axis.
//
// It fails with ErrInvalidSlice for a zero step or a wrong number of
// elements. A position outside its axis is a programmer error and panics
// with *dimension.IndexError.
func (b *base[A, D]) Slice(info ...dimension.SliceInfoElem) (*ArrayView[A, dimension.IxDyn], error) {
	s, err := b.sliced(info)
	if err != nil {
		return nil, err
	}
	return &ArrayView[A, dimension.IxDyn]{base: s}, nil
}

// SliceMut is Slice returning a mutable view.
func (v *ArrayViewMut[A, D]) SliceMut(info ...dimension.SliceInfoElem) (*ArrayViewMut[A, dimension.IxDyn], error) {
	s, err := v.sliced(info)
	if err != nil {
		return nil, err
	}
	return &ArrayViewMut[A, dimension.IxDyn]{base: s}, nil
}

// SliceCollapse slices the container in place. Index elements leave their
// axis with length 1, so the rank is unchanged; NewAxis is not allowed. On
// error the container is unchanged. Out-of-range positions panic as in
// Slice.
func (b *base[A, D]) SliceCollapse(info ...dimension.SliceInfoElem) error {
	if len(info) == len(b.shape) {
		b.checkSliceBounds(info)
	}
	shape := append([]int(nil), b.shape...)
	strides := append([]int(nil), b.strides...)
	off, err := dimension.CollapseDims(shape, strides, info)
	if err != nil {
		return fmt.Errorf("slice in place %s: %w", dimension.FormatSlice(info), err)
	}
	if dimension.Shape(shape).NumElements() == 0 {
		off = 0
	}
	b.shape, b.strides = shape, strides
	b.offset += off
	return nil
}

// SliceAxis returns a view restricted to the range elem along axis.
func (b *base[A, D]) SliceAxis(axis int, elem dimension.SliceInfoElem) (*ArrayView[A, D], error) {
	sub := b.cloneLayout()
	if err := sub.SliceAxisInPlace(axis, elem); err != nil {
		return nil, err
	}
	return &ArrayView[A, D]{base: sub}, nil
}

// SliceAxisMut is SliceAxis returning a mutable view.
func (v *ArrayViewMut[A, D]) SliceAxisMut(axis int, elem dimension.SliceInfoElem) (*ArrayViewMut[A, D], error) {
	sub := v.cloneLayout()
	if err := sub.SliceAxisInPlace(axis, elem); err != nil {
		return nil, err
	}
	return &ArrayViewMut[A, D]{base: sub}, nil
}

// SliceAxisInPlace restricts axis to the range elem. Bounds outside the
// axis panic as in Slice.
func (b *base[A, D]) SliceAxisInPlace(axis int, elem dimension.SliceInfoElem) error {
	ax := b.axis(axis)
	if elem.Kind == dimension.KindRange {
		b.checkRangeBounds(ax, elem)
	}
	d, s, off, err := dimension.DoSlice(b.shape[ax], b.strides[ax], elem)
	if err != nil {
		return fmt.Errorf("slice axis %d: %w", ax, err)
	}
	b.shape[ax], b.strides[ax] = d, s
	if b.Len() == 0 {
		return nil
	}
	b.offset += off
	return nil
}

// IndexAxis returns the subview at position index along axis, with that axis
// removed. It panics if index is out of range.
func (b *base[A, D]) IndexAxis(axis, index int) *ArrayView[A, dimension.IxDyn] {
	return &ArrayView[A, dimension.IxDyn]{base: b.indexAxis(axis, index)}
}

// IndexAxisMut is IndexAxis returning a mutable view.
func (v *ArrayViewMut[A, D]) IndexAxisMut(axis, index int) *ArrayViewMut[A, dimension.IxDyn] {
	return &ArrayViewMut[A, dimension.IxDyn]{base: v.indexAxis(axis, index)}
}

func (b *base[A, D]) indexAxis(axis, index int) base[A, dimension.IxDyn] {
	ax := b.axis(axis)
	i := dimension.AbsIndex(b.shape[ax], index)
	if uint(i) >= uint(b.shape[ax]) {
		panic(b.indexError(ax, index))
	}
	return newBase[A, dimension.IxDyn](b.data, without(b.shape, ax), without(b.strides, ax), b.offset+i*b.strides[ax])
}

// CollapseAxis selects position index along axis in place, leaving the axis
// with length 1. It panics if index is out of range.
func (b *base[A, D]) CollapseAxis(axis, index int) {
	ax := b.axis(axis)
	i := dimension.AbsIndex(b.shape[ax], index)
	if uint(i) >= uint(b.shape[ax]) {
		panic(b.indexError(ax, index))
	}
	b.offset += i * b.strides[ax]
	b.shape[ax] = 1
}

// SplitAt splits the array into the positions before index along axis and
// the rest. It panics if index is greater than the axis length.
func (b *base[A, D]) SplitAt(axis, index int) (*ArrayView[A, D], *ArrayView[A, D]) {
	l, r := b.splitAt(axis, index)
	return &ArrayView[A, D]{base: l}, &ArrayView[A, D]{base: r}
}

// SplitAtMut is SplitAt returning two disjoint mutable views.
func (v *ArrayViewMut[A, D]) SplitAtMut(axis, index int) (*ArrayViewMut[A, D], *ArrayViewMut[A, D]) {
	l, r := v.splitAt(axis, index)
	return &ArrayViewMut[A, D]{base: l}, &ArrayViewMut[A, D]{base: r}
}

func (b *base[A, D]) splitAt(axis, index int) (base[A, D], base[A, D]) {
	ax := b.axis(axis)
	n := b.shape[ax]
	if index < 0 || index > n {
		panic(fmt.Sprintf("ndarray: split index %d out of range for axis %d of length %d", index, ax, n))
	}
	left := b.cloneLayout()
	left.shape[ax] = index
	right := b.cloneLayout()
	right.shape[ax] = n - index
	if right.Len() > 0 {
		right.offset += index * b.strides[ax]
	}
	return left, right
}

// MultiSliceMut returns one mutable view per slice specification. It fails
// with ErrUnsupported when two specifications may select a common element.
func (v *ArrayViewMut[A, D]) MultiSliceMut(infos ...[]dimension.SliceInfoElem) ([]*ArrayViewMut[A, dimension.IxDyn], error) {
	if len(infos) > 1 && dimension.StrideOverlap(v.shape, v.strides) {
		return nil, dimension.NewError(dimension.Unsupported, "view aliases its own elements", v.shape, v.strides)
	}
	for i := range infos {
		for j := i + 1; j < len(infos); j++ {
			if dimension.SlicesIntersect(v.shape, infos[i], infos[j]) {
				return nil, dimension.NewError(dimension.Unsupported,
					fmt.Sprintf("slices %s and %s overlap", dimension.FormatSlice(infos[i]), dimension.FormatSlice(infos[j])),
					v.shape)
			}
		}
	}
	out := make([]*ArrayViewMut[A, dimension.IxDyn], len(infos))
	for i, info := range infos {
		s, err := v.SliceMut(info...)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
