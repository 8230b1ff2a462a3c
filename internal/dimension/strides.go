package dimension

import (
	"sort"
	"strings"
)

// Order is a memory order for laying out or traversing array elements.
type Order int

// Memory orders.
const (
	// RowMajor (C order): the last axis varies fastest.
	RowMajor Order = iota
	// ColumnMajor (Fortran order): the first axis varies fastest.
	ColumnMajor
)

// Short names for the memory orders.
const (
	C = RowMajor
	F = ColumnMajor
)

// String returns "C" or "F".
func (o Order) String() string {
	if o == ColumnMajor {
		return "F"
	}
	return "C"
}

// Transpose returns the opposite order.
func (o Order) Transpose() Order {
	if o == ColumnMajor {
		return RowMajor
	}
	return ColumnMajor
}

// DefaultStrides returns the contiguous strides of shape in the given order.
// When any axis has length zero all strides are zero, since no element can
// ever be addressed.
func DefaultStrides(shape []int, order Order) []int {
	strides := make([]int, len(shape))
	for _, d := range shape {
		if d == 0 {
			return strides
		}
	}
	acc := 1
	if order == ColumnMajor {
		for i := range shape {
			strides[i] = acc
			acc *= shape[i]
		}
		return strides
	}
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}
	return strides
}

// Layout is a set of contiguity flags for a (shape, strides) pair.
type Layout uint8

// Layout flags.
const (
	LayoutC Layout = 1 << iota
	LayoutF

	LayoutNone Layout = 0
	LayoutBoth        = LayoutC | LayoutF
)

// Is reports whether any of the flags in f are set.
func (l Layout) Is(f Layout) bool {
	return l&f != 0
}

// Intersect keeps only the flags present in both layouts.
func (l Layout) Intersect(other Layout) Layout {
	return l & other
}

// Tendency is positive when the layout leans to C order, negative for F.
func (l Layout) Tendency() int {
	t := 0
	if l.Is(LayoutC) {
		t++
	}
	if l.Is(LayoutF) {
		t--
	}
	return t
}

// String renders the flags, e.g. "C|F" or "None".
func (l Layout) String() string {
	var parts []string
	if l.Is(LayoutC) {
		parts = append(parts, "C")
	}
	if l.Is(LayoutF) {
		parts = append(parts, "F")
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "|")
}

// IsLayoutC reports whether strides equal the C-order default strides on
// every axis of length greater than one.
func IsLayoutC(shape, strides []int) bool {
	for _, d := range shape {
		if d == 0 {
			return true
		}
	}
	contig := 1
	for i := len(shape) - 1; i >= 0; i-- {
		if shape[i] == 1 {
			continue
		}
		if strides[i] != contig {
			return false
		}
		contig *= shape[i]
	}
	return true
}

// IsLayoutF is IsLayoutC for column-major order.
func IsLayoutF(shape, strides []int) bool {
	for _, d := range shape {
		if d == 0 {
			return true
		}
	}
	contig := 1
	for i := range shape {
		if shape[i] == 1 {
			continue
		}
		if strides[i] != contig {
			return false
		}
		contig *= shape[i]
	}
	return true
}

// IsContiguous reports whether the layout is contiguous in order.
func IsContiguous(shape, strides []int, order Order) bool {
	if order == ColumnMajor {
		return IsLayoutF(shape, strides)
	}
	return IsLayoutC(shape, strides)
}

// LayoutOf classifies a layout. It must be recomputed whenever shape or
// strides change.
func LayoutOf(shape, strides []int) Layout {
	l := LayoutNone
	if IsLayoutC(shape, strides) {
		l |= LayoutC
	}
	if IsLayoutF(shape, strides) {
		l |= LayoutF
	}
	return l
}

// IsDense reports whether the elements occupy a gap-free block of memory in
// some axis order, allowing negative strides. Such arrays can be visited as
// one flat run when the visiting order does not matter.
func IsDense(shape, strides []int) bool {
	axes := make([]int, 0, len(shape))
	for i, d := range shape {
		if d == 0 {
			return true
		}
		if d > 1 {
			axes = append(axes, i)
		}
	}
	sort.Slice(axes, func(i, j int) bool {
		return abs(strides[axes[i]]) < abs(strides[axes[j]])
	})
	contig := 1
	for _, ax := range axes {
		if abs(strides[ax]) != contig {
			return false
		}
		contig *= shape[ax]
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
