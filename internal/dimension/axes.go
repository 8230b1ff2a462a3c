package dimension

import "fmt"

// NormalizeAxis resolves a possibly negative axis number against ndim.
func NormalizeAxis(axis, ndim int) (int, error) {
	if axis < 0 {
		axis += ndim
	}
	if axis < 0 || axis >= ndim {
		return 0, NewError(OutOfBounds, fmt.Sprintf("axis %d is out of range for %d axes", axis, ndim))
	}
	return axis, nil
}

// CheckPermutation verifies that axes is a permutation of 0..ndim-1.
func CheckPermutation(axes []int, ndim int) error {
	if len(axes) != ndim {
		return NewError(IncompatibleShape,
			fmt.Sprintf("permutation %v has %d axes, array has %d", axes, len(axes), ndim))
	}
	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim || seen[ax] {
			return NewError(IncompatibleShape, fmt.Sprintf("%v is not a permutation of the axes", axes))
		}
		seen[ax] = true
	}
	return nil
}

// Permute returns values reordered so that out[i] = values[axes[i]].
func Permute(values, axes []int) []int {
	out := make([]int, len(axes))
	for i, ax := range axes {
		out[i] = values[ax]
	}
	return out
}

// Reversed returns a reversed copy of values.
func Reversed(values []int) []int {
	out := make([]int, len(values))
	for i, v := range values {
		out[len(values)-1-i] = v
	}
	return out
}

// MinStrideAxis returns the axis with the smallest absolute stride among the
// axes longer than one, preferring the last such axis on ties. Arrays with
// no such axis report their last axis. It panics on rank 0.
func MinStrideAxis(shape, strides []int) int {
	n := len(shape)
	if n == 0 {
		panic("dimension: min stride axis of a zero-dimensional shape")
	}
	best := n - 1
	bestStride := -1
	for i := n - 1; i >= 0; i-- {
		if shape[i] <= 1 {
			continue
		}
		s := abs(strides[i])
		if bestStride < 0 || s < bestStride {
			best, bestStride = i, s
		}
	}
	return best
}

// MaxStrideAxis returns the axis with the largest absolute stride among the
// axes longer than one, preferring the first such axis on ties. Arrays with
// no such axis report axis 0. It panics on rank 0.
func MaxStrideAxis(shape, strides []int) int {
	if len(shape) == 0 {
		panic("dimension: max stride axis of a zero-dimensional shape")
	}
	best := 0
	bestStride := -1
	for i, d := range shape {
		if d <= 1 {
			continue
		}
		s := abs(strides[i])
		if s > bestStride {
			best, bestStride = i, s
		}
	}
	return best
}

// MergeAxes folds axis take into axis into when the two can be traversed as
// one, leaving take with length 1. It reports whether the merge happened.
func MergeAxes(shape, strides []int, take, into int) bool {
	intoLen, intoStride := shape[into], strides[into]
	takeLen, takeStride := shape[take], strides[take]
	merged := intoLen * takeLen
	switch {
	case takeLen <= 1:
	case intoLen <= 1:
		strides[into] = takeStride
	case takeStride == intoLen*intoStride:
	default:
		return false
	}
	shape[into] = merged
	shape[take] = 1
	return true
}

// InnerRun returns the number of elements reachable with unit stride at the
// innermost axis of order, merging outer axes while they stay contiguous.
func InnerRun(shape, strides []int, order Order) int {
	n := len(shape)
	if n == 0 {
		return 1
	}
	axis := func(i int) int { return n - 1 - i }
	if order == ColumnMajor {
		axis = func(i int) int { return i }
	}
	run := 1
	for i := 0; i < n; i++ {
		ax := axis(i)
		d := shape[ax]
		if d == 1 {
			continue
		}
		if strides[ax] != run {
			break
		}
		run *= d
	}
	return run
}
