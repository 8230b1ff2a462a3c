package dimension

import "iter"

// FirstIndex returns the all-zero index of shape, or false if shape has no
// elements.
func FirstIndex(shape []int) ([]int, bool) {
	for _, d := range shape {
		if d == 0 {
			return nil, false
		}
	}
	return make([]int, len(shape)), true
}

// NextFor advances index to the next position in row-major order, in place.
// It returns false after the last position.
func NextFor(shape, index []int) bool {
	for i := len(shape) - 1; i >= 0; i-- {
		index[i]++
		if index[i] < shape[i] {
			return true
		}
		index[i] = 0
	}
	return false
}

// NextForF is NextFor in column-major order.
func NextForF(shape, index []int) bool {
	for i := range shape {
		index[i]++
		if index[i] < shape[i] {
			return true
		}
		index[i] = 0
	}
	return false
}

// Offset returns the sum of index[i]*strides[i].
func Offset(index, strides []int) int {
	off := 0
	for i, ix := range index {
		off += ix * strides[i]
	}
	return off
}

// CheckIndex returns an *IndexError for the first component of index that is
// outside its axis, or nil.
func CheckIndex(shape, index []int) error {
	if len(index) != len(shape) {
		return NewError(IncompatibleShape, "index rank does not match array rank", shape, index)
	}
	for i, ix := range index {
		if ix < 0 || ix >= shape[i] {
			return &IndexError{Axis: i, Index: ix, Len: shape[i], Shape: Dim(shape...)}
		}
	}
	return nil
}

// Indices yields every index of shape in the given order. The yielded slice
// is reused between iterations.
func Indices(shape []int, order Order) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		index, ok := FirstIndex(shape)
		if !ok {
			return
		}
		next := NextFor
		if order == ColumnMajor {
			next = NextForF
		}
		for {
			if !yield(index) {
				return
			}
			if !next(shape, index) {
				return
			}
		}
	}
}

// IndicesOf yields every typed index of a shape of rank D in row-major order.
func IndicesOf[D Dimension](shape []int) iter.Seq[D] {
	return func(yield func(D) bool) {
		for ix := range Indices(shape, RowMajor) {
			if !yield(MustFromSlice[D](ix)) {
				return
			}
		}
	}
}
