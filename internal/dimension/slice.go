package dimension

import (
	"fmt"
	"strconv"
	"strings"
)

// SliceKind tags a SliceInfoElem.
type SliceKind uint8

// Slice element kinds.
const (
	// KindRange keeps the axis, restricting it to start..end by step.
	KindRange SliceKind = iota
	// KindIndex selects one position and removes the axis.
	KindIndex
	// KindNewAxis inserts a new axis of length 1.
	KindNewAxis
)

// SliceInfoElem describes what to do with one axis when slicing.
//
// Negative Start, End and Index count from the end of the axis. A negative
// Step walks the range from end-1 down towards start: Range(0, 4, -2) on
// [a b c d] gives [d b].
type SliceInfoElem struct {
	Kind   SliceKind
	Start  int
	End    int
	HasEnd bool // When false the range runs to the end of the axis.
	Step   int
	Index  int
}

// Range selects start..end (exclusive) by step.
func Range(start, end, step int) SliceInfoElem {
	return SliceInfoElem{Kind: KindRange, Start: start, End: end, HasEnd: true, Step: step}
}

// RangeFrom selects start.. to the end of the axis by step.
func RangeFrom(start, step int) SliceInfoElem {
	return SliceInfoElem{Kind: KindRange, Start: start, Step: step}
}

// Full keeps the whole axis.
func Full() SliceInfoElem {
	return RangeFrom(0, 1)
}

// Index collapses the axis at position i.
func Index(i int) SliceInfoElem {
	return SliceInfoElem{Kind: KindIndex, Index: i}
}

// NewAxis inserts a length-1 axis.
func NewAxis() SliceInfoElem {
	return SliceInfoElem{Kind: KindNewAxis}
}

// IsNewAxis reports whether e inserts an axis.
func (e SliceInfoElem) IsNewAxis() bool { return e.Kind == KindNewAxis }

// String renders e in Python slice notation.
func (e SliceInfoElem) String() string {
	switch e.Kind {
	case KindIndex:
		return strconv.Itoa(e.Index)
	case KindNewAxis:
		return "newaxis"
	}
	var b strings.Builder
	if e.Start != 0 {
		b.WriteString(strconv.Itoa(e.Start))
	}
	b.WriteByte(':')
	if e.HasEnd {
		b.WriteString(strconv.Itoa(e.End))
	}
	if e.Step != 1 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(e.Step))
	}
	return b.String()
}

// FormatSlice renders a full slice specification.
func FormatSlice(info []SliceInfoElem) string {
	parts := make([]string, len(info))
	for i, e := range info {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// AbsIndex resolves a possibly negative index against an axis length.
func AbsIndex(axisLen, index int) int {
	if index < 0 {
		return axisLen + index
	}
	return index
}

// ResolveRange resolves e (which must be a range) against an axis of
// length axisLen, returning absolute bounds with 0 <= start <= end <= axisLen.
// An end before start yields an empty range.
func ResolveRange(axisLen int, e SliceInfoElem) (start, end, step int, err error) {
	if e.Kind != KindRange {
		return 0, 0, 0, NewError(InvalidSlice, fmt.Sprintf("%v is not a range", e))
	}
	if e.Step == 0 {
		return 0, 0, 0, NewError(InvalidSlice, "slice step must not be zero")
	}
	start = AbsIndex(axisLen, e.Start)
	end = axisLen
	if e.HasEnd {
		end = AbsIndex(axisLen, e.End)
	}
	if start < 0 || start > axisLen {
		return 0, 0, 0, NewError(OutOfBounds,
			fmt.Sprintf("slice start %d is outside axis of length %d", e.Start, axisLen))
	}
	if end < 0 || end > axisLen {
		return 0, 0, 0, NewError(OutOfBounds,
			fmt.Sprintf("slice end %d is outside axis of length %d", e.End, axisLen))
	}
	if end < start {
		end = start
	}
	return start, end, e.Step, nil
}

// DoSlice applies a range to one axis with length dim and stride stride.
// It returns the new length, the new stride and the offset of the new first
// element relative to the old one.
func DoSlice(dim, stride int, e SliceInfoElem) (newDim, newStride, offset int, err error) {
	start, end, step, err := ResolveRange(dim, e)
	if err != nil {
		return 0, 0, 0, err
	}
	m := end - start
	switch {
	case m == 0:
		// Empty result: keep the pointer where it is, since start may be
		// one past the end of the axis.
		offset = 0
	case step < 0:
		offset = (end - 1) * stride
	default:
		offset = start * stride
	}
	absStep := step
	if absStep < 0 {
		absStep = -absStep
	}
	newDim = (m + absStep - 1) / absStep
	if newDim <= 1 {
		// The stride of an axis of length <= 1 is never read.
		newStride = stride
	} else {
		newStride = stride * step
	}
	return newDim, newStride, offset, nil
}

// SliceInNDim counts the source axes a specification consumes.
func SliceInNDim(info []SliceInfoElem) int {
	n := 0
	for _, e := range info {
		if !e.IsNewAxis() {
			n++
		}
	}
	return n
}

// SliceOutNDim counts the axes of the sliced result.
func SliceOutNDim(info []SliceInfoElem) int {
	n := 0
	for _, e := range info {
		if e.Kind != KindIndex {
			n++
		}
	}
	return n
}

// SliceDims computes the shape, strides and offset delta of a slice of an
// array with the given shape and strides. Index elements remove their axis
// and NewAxis elements insert a length-1 axis with stride 0.
func SliceDims(shape, strides []int, info []SliceInfoElem) (newShape, newStrides []int, offset int, err error) {
	if in := SliceInNDim(info); in != len(shape) {
		return nil, nil, 0, NewError(InvalidSlice,
			fmt.Sprintf("slice %s consumes %d axes, array has %d", FormatSlice(info), in, len(shape)), shape)
	}
	out := SliceOutNDim(info)
	newShape = make([]int, 0, out)
	newStrides = make([]int, 0, out)
	ax := 0
	for _, e := range info {
		switch e.Kind {
		case KindRange:
			d, s, off, err := DoSlice(shape[ax], strides[ax], e)
			if err != nil {
				return nil, nil, 0, fmt.Errorf("axis %d: %w", ax, err)
			}
			offset += off
			newShape = append(newShape, d)
			newStrides = append(newStrides, s)
			ax++
		case KindIndex:
			i := AbsIndex(shape[ax], e.Index)
			if i < 0 || i >= shape[ax] {
				return nil, nil, 0, NewError(OutOfBounds,
					fmt.Sprintf("axis %d: index %d is outside axis of length %d", ax, e.Index, shape[ax]), shape)
			}
			offset += i * strides[ax]
			ax++
		case KindNewAxis:
			newShape = append(newShape, 1)
			newStrides = append(newStrides, 0)
		}
	}
	return newShape, newStrides, offset, nil
}

// CollapseDims slices shape and strides in place without changing the rank:
// Index elements leave their axis with length 1. NewAxis elements are not
// allowed. It returns the offset delta.
func CollapseDims(shape, strides []int, info []SliceInfoElem) (int, error) {
	if len(info) != len(shape) {
		return 0, NewError(InvalidSlice,
			fmt.Sprintf("slice %s has %d elements, array has %d axes", FormatSlice(info), len(info), len(shape)), shape)
	}
	for _, e := range info {
		if e.IsNewAxis() {
			return 0, NewError(InvalidSlice, "in-place slicing cannot insert axes", shape)
		}
	}
	newShape := append([]int(nil), shape...)
	newStrides := append([]int(nil), strides...)
	offset := 0
	for ax, e := range info {
		switch e.Kind {
		case KindRange:
			d, s, off, err := DoSlice(shape[ax], strides[ax], e)
			if err != nil {
				return 0, fmt.Errorf("axis %d: %w", ax, err)
			}
			newShape[ax], newStrides[ax] = d, s
			offset += off
		case KindIndex:
			i := AbsIndex(shape[ax], e.Index)
			if i < 0 || i >= shape[ax] {
				return 0, NewError(OutOfBounds,
					fmt.Sprintf("axis %d: index %d is outside axis of length %d", ax, e.Index, shape[ax]), shape)
			}
			newShape[ax] = 1
			offset += i * strides[ax]
		}
	}
	copy(shape, newShape)
	copy(strides, newStrides)
	return offset, nil
}
