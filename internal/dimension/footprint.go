package dimension

import (
	"fmt"
	"math"
	"sort"
)

// Footprint is the inclusive range of element offsets, relative to the
// logical first element, that a (shape, strides) pair can reach.
type Footprint struct {
	Min int
	Max int
}

// Len is the number of buffer slots spanned by the footprint.
func (fp Footprint) Len() int {
	return fp.Max - fp.Min + 1
}

// Overlaps reports whether two absolute footprints share any slot.
func (fp Footprint) Overlaps(other Footprint) bool {
	return fp.Min <= other.Max && other.Min <= fp.Max
}

// Shift moves the footprint by base.
func (fp Footprint) Shift(base int) Footprint {
	return Footprint{Min: fp.Min + base, Max: fp.Max + base}
}

// FootprintOf computes the reachable offset range. The second result is
// false for empty arrays, which reach no element at all.
func FootprintOf(shape, strides []int) (Footprint, bool) {
	var fp Footprint
	for i, d := range shape {
		if d == 0 {
			return Footprint{}, false
		}
		span := (d - 1) * strides[i]
		if span < 0 {
			fp.Min += span
		} else {
			fp.Max += span
		}
	}
	return fp, true
}

// MaxAbsOffset returns the distance between the least and greatest offsets
// reachable by moving along all axes. It checks that shape and strides have
// the same rank and that neither the element count nor the distance
// overflows.
func MaxAbsOffset(shape, strides []int) (int, error) {
	if len(shape) != len(strides) {
		return 0, NewError(IncompatibleLayout,
			fmt.Sprintf("rank of strides %v does not match rank of shape", strides), shape)
	}
	if _, err := SizeChecked(shape); err != nil {
		return 0, err
	}
	maxOffset := 0
	for i, d := range shape {
		if d <= 1 {
			continue
		}
		s := abs(strides[i])
		if s != 0 && d-1 > math.MaxInt/s {
			return 0, NewError(Overflow, "stride offset overflows int", shape, strides)
		}
		off := (d - 1) * s
		if maxOffset > math.MaxInt-off {
			return 0, NewError(Overflow, "stride offset overflows int", shape, strides)
		}
		maxOffset += off
	}
	return maxOffset, nil
}

// CanIndexSlice checks that an array with the given shape and strides, whose
// logical first element is at offset in a buffer of dataLen elements, only
// ever addresses slots inside the buffer. When allowAliasing is false it also
// rejects strides that map two indices to one slot.
func CanIndexSlice(dataLen, offset int, shape, strides []int, allowAliasing bool) error {
	if _, err := MaxAbsOffset(shape, strides); err != nil {
		return err
	}
	fp, nonEmpty := FootprintOf(shape, strides)
	if !nonEmpty {
		if offset < 0 || offset > dataLen {
			return NewError(OutOfBounds,
				fmt.Sprintf("offset %d outside buffer of length %d", offset, dataLen), shape)
		}
		return nil
	}
	reach := fp.Shift(offset)
	if reach.Min < 0 || reach.Max >= dataLen {
		return NewError(OutOfBounds,
			fmt.Sprintf("footprint [%d, %d] outside buffer of length %d", reach.Min, reach.Max, dataLen),
			shape, strides)
	}
	if !allowAliasing && StrideOverlap(shape, strides) {
		return NewError(Unsupported, "strides alias distinct indices", shape, strides)
	}
	return nil
}

// StrideOverlap reports whether two distinct indices reach the same offset.
// Visiting axes in increasing stride order, there is overlap when a stride
// does not exceed the largest offset reachable along the previous axes.
// Axes of length at most one are ignored.
func StrideOverlap(shape, strides []int) bool {
	order := make([]int, len(shape))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return abs(strides[order[i]]) < abs(strides[order[j]])
	})
	sumPrev := 0
	for _, ax := range order {
		d := shape[ax]
		s := abs(strides[ax])
		switch d {
		case 0:
			return false
		case 1:
		default:
			if s <= sumPrev {
				return true
			}
			sumPrev += (d - 1) * s
		}
	}
	return false
}

// OffsetFromLowAddr returns the distance from the lowest addressed element to
// the logical first element. It is non-zero only with negative strides.
func OffsetFromLowAddr(shape, strides []int) int {
	off := 0
	for i, d := range shape {
		if strides[i] < 0 && d > 1 {
			off -= strides[i] * (d - 1)
		}
	}
	return off
}
