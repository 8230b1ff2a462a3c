package ndarray

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/dimension"
)

// indexError builds the panic value for an out-of-range component.
func (b *base[A, D]) indexError(axis, index int) *dimension.IndexError {
	return &dimension.IndexError{
		Axis:  axis,
		Index: index,
		Len:   b.shape[axis],
		Shape: dimension.Dim(b.shape...),
	}
}

// offsetChecked returns the data offset of index, panicking with
// *dimension.IndexError on the first component (left to right) that is out
// of range.
func (b *base[A, D]) offsetChecked(index D) int {
	switch ix := any(index).(type) {
	case dimension.Ix1:
		if uint(ix[0]) >= uint(b.shape[0]) {
			panic(b.indexError(0, ix[0]))
		}
		return b.offset + ix[0]*b.strides[0]
	case dimension.Ix2:
		if uint(ix[0]) >= uint(b.shape[0]) {
			panic(b.indexError(0, ix[0]))
		}
		if uint(ix[1]) >= uint(b.shape[1]) {
			panic(b.indexError(1, ix[1]))
		}
		return b.offset + ix[0]*b.strides[0] + ix[1]*b.strides[1]
	case dimension.Ix3:
		if uint(ix[0]) >= uint(b.shape[0]) {
			panic(b.indexError(0, ix[0]))
		}
		if uint(ix[1]) >= uint(b.shape[1]) {
			panic(b.indexError(1, ix[1]))
		}
		if uint(ix[2]) >= uint(b.shape[2]) {
			panic(b.indexError(2, ix[2]))
		}
		return b.offset + ix[0]*b.strides[0] + ix[1]*b.strides[1] + ix[2]*b.strides[2]
	}
	off, err := b.offsetOf(index.Slice())
	if err != nil {
		panic(err)
	}
	return off
}

// offsetOf is the slice form of offsetChecked, returning the error instead
// of panicking.
func (b *base[A, D]) offsetOf(index []int) (int, error) {
	if len(index) != len(b.shape) {
		return 0, dimension.NewError(dimension.IncompatibleShape,
			fmt.Sprintf("index %v has %d components, array has %d axes", index, len(index), len(b.shape)), b.shape)
	}
	off := b.offset
	for i, ix := range index {
		if uint(ix) >= uint(b.shape[i]) {
			return 0, b.indexError(i, ix)
		}
		off += ix * b.strides[i]
	}
	return off, nil
}

// offsetUnchecked computes the data offset of index without any check.
func (b *base[A, D]) offsetUnchecked(index D) int {
	switch ix := any(index).(type) {
	case dimension.Ix1:
		return b.offset + ix[0]*b.strides[0]
	case dimension.Ix2:
		return b.offset + ix[0]*b.strides[0] + ix[1]*b.strides[1]
	case dimension.Ix3:
		return b.offset + ix[0]*b.strides[0] + ix[1]*b.strides[1] + ix[2]*b.strides[2]
	}
	return b.offset + dimension.Offset(index.Slice(), b.strides)
}

// At returns the element at index. It panics with a *dimension.IndexError
// naming the first out-of-range axis.
func (b *base[A, D]) At(index D) A {
	return b.data[b.offsetChecked(index)]
}

// Get returns the element at index, or false when index is out of range.
func (b *base[A, D]) Get(index D) (A, bool) {
	off, err := b.offsetOf(index.Slice())
	if err != nil {
		var zero A
		return zero, false
	}
	return b.data[off], true
}

// UncheckedAt returns the element at index without bounds checks.
//
// Precondition: every component of index is inside its axis. Violating it
// reads an unrelated element or panics on the backing slice.
func (b *base[A, D]) UncheckedAt(index D) A {
	return b.data[b.offsetUnchecked(index)]
}

// First returns the first element in logical order, or false if empty.
func (b *base[A, D]) First() (A, bool) {
	if b.IsEmpty() {
		var zero A
		return zero, false
	}
	return b.data[b.offset], true
}

// Ptr returns a pointer to the element at index. It panics like At.
func (v *ArrayViewMut[A, D]) Ptr(index D) *A {
	return &v.data[v.offsetChecked(index)]
}

// Set writes value at index. It panics with a *dimension.IndexError when the
// index is out of range.
func (v *ArrayViewMut[A, D]) Set(index D, value A) {
	v.data[v.offsetChecked(index)] = value
}

// UncheckedSet writes value at index without bounds checks.
//
// Precondition: every component of index is inside its axis.
func (v *ArrayViewMut[A, D]) UncheckedSet(index D, value A) {
	v.data[v.offsetUnchecked(index)] = value
}

// Swap exchanges the elements at i and j.
func (v *ArrayViewMut[A, D]) Swap(i, j D) {
	oi, oj := v.offsetChecked(i), v.offsetChecked(j)
	v.data[oi], v.data[oj] = v.data[oj], v.data[oi]
}
