// Package dimension implements shapes, strides and the index arithmetic
// shared by every array in the ndarray module.
//
// Arrays carry their rank either in the type (Ix0 through Ix6, fixed-size
// arrays of axis lengths) or at run time (IxDyn, a slice). Both satisfy the
// Dimension interface, and every algorithm in this package is written once
// against plain []int shape and stride slices.
package dimension

import (
	"fmt"
	"math"
)

// Dimension is implemented by the fixed-rank index types and IxDyn.
type Dimension interface {
	// NDim returns the number of axes.
	NDim() int
	// Slice returns the axis lengths (or index components) as a slice.
	// For fixed-rank values the slice refers to a copy.
	Slice() []int
	// Size returns the product of the axis lengths.
	Size() int
}

// Fixed-rank dimensions. The rank is part of the type, so an Ix2 array can
// only be indexed with an Ix2 index.
type (
	Ix0 [0]int
	Ix1 [1]int
	Ix2 [2]int
	Ix3 [3]int
	Ix4 [4]int
	Ix5 [5]int
	Ix6 [6]int
)

// Shape represents the dimensions of an array with dynamic rank.
type Shape []int

// IxDyn is the dynamic-rank dimension type.
type IxDyn = Shape

// Dim builds a dynamic-rank shape from axis lengths.
func Dim(axes ...int) Shape {
	return Shape(append([]int(nil), axes...))
}

func (Ix0) NDim() int { return 0 }
func (Ix1) NDim() int { return 1 }
func (Ix2) NDim() int { return 2 }
func (Ix3) NDim() int { return 3 }
func (Ix4) NDim() int { return 4 }
func (Ix5) NDim() int { return 5 }
func (Ix6) NDim() int { return 6 }

// NDim returns the number of axes.
func (s Shape) NDim() int { return len(s) }

func (d Ix0) Slice() []int { return d[:] }
func (d Ix1) Slice() []int { return d[:] }
func (d Ix2) Slice() []int { return d[:] }
func (d Ix3) Slice() []int { return d[:] }
func (d Ix4) Slice() []int { return d[:] }
func (d Ix5) Slice() []int { return d[:] }
func (d Ix6) Slice() []int { return d[:] }

// Slice returns the shape itself.
func (s Shape) Slice() []int { return s }

func (Ix0) Size() int     { return 1 }
func (d Ix1) Size() int   { return d[0] }
func (d Ix2) Size() int   { return d[0] * d[1] }
func (d Ix3) Size() int   { return d[0] * d[1] * d[2] }
func (d Ix4) Size() int   { return d[0] * d[1] * d[2] * d[3] }
func (d Ix5) Size() int   { return d[0] * d[1] * d[2] * d[3] * d[4] }
func (d Ix6) Size() int   { return d[0] * d[1] * d[2] * d[3] * d[4] * d[5] }
func (s Shape) Size() int { return s.NumElements() }

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	n := 1 // Scalar has 1 element
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape is usable: no negative axis lengths and an
// element count that fits in an int.
func (s Shape) Validate() error {
	_, err := SizeChecked(s)
	return err
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	return Equal(s, other)
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
func (s Shape) ComputeStrides() []int {
	return DefaultStrides(s, RowMajor)
}

// Equal reports whether two axis sequences are identical.
func Equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SizeChecked returns the element count of shape, failing with RangeLimited
// for negative lengths and Overflow when the product of the non-zero axis
// lengths does not fit in an int.
func SizeChecked(shape []int) (int, error) {
	nonZero := 1
	empty := false
	for i, d := range shape {
		if d < 0 {
			return 0, NewError(RangeLimited, fmt.Sprintf("axis %d has negative length %d", i, d), shape)
		}
		if d == 0 {
			empty = true
			continue
		}
		if nonZero > math.MaxInt/d {
			return 0, NewError(Overflow, "element count overflows int", shape)
		}
		nonZero *= d
	}
	if empty {
		return 0, nil
	}
	return nonZero, nil
}

// Rank returns the rank fixed by D, or -1 when D is IxDyn.
func Rank[D Dimension]() int {
	var d D
	switch any(d).(type) {
	case Shape:
		return -1
	default:
		return d.NDim()
	}
}

// FromSlice converts axis values to the dimension type D. It fails with
// IncompatibleShape when D has a fixed rank different from len(axes).
func FromSlice[D Dimension](axes []int) (D, error) {
	var d D
	if r := Rank[D](); r >= 0 && r != len(axes) {
		return d, NewError(IncompatibleShape,
			fmt.Sprintf("expected %d axes, got %d", r, len(axes)), axes)
	}
	switch p := any(&d).(type) {
	case *Ix0:
	case *Ix1:
		copy(p[:], axes)
	case *Ix2:
		copy(p[:], axes)
	case *Ix3:
		copy(p[:], axes)
	case *Ix4:
		copy(p[:], axes)
	case *Ix5:
		copy(p[:], axes)
	case *Ix6:
		copy(p[:], axes)
	case *Shape:
		*p = Dim(axes...)
	default:
		panic(fmt.Sprintf("dimension: unsupported dimension type %T", d))
	}
	return d, nil
}

// MustFromSlice is FromSlice for callers that have already checked the rank.
func MustFromSlice[D Dimension](axes []int) D {
	d, err := FromSlice[D](axes)
	if err != nil {
		panic(err)
	}
	return d
}

// Zeros returns a D of the given rank with all components zero.
func Zeros[D Dimension](ndim int) D {
	return MustFromSlice[D](make([]int, ndim))
}
