package dimension

import "fmt"

// ReshapeStrides computes strides that present the elements of an array with
// shape from and strides fromStrides, read in the given index order, as an
// array of shape to, without moving any element.
//
// It fails with IncompatibleShape when the element counts differ and with
// IncompatibleLayout when the elements cannot be reached from the existing
// memory with fixed strides. Empty shapes always succeed with the default
// strides of to.
func ReshapeStrides(from, fromStrides, to []int, order Order) ([]int, error) {
	fromSize, err := SizeChecked(from)
	if err != nil {
		return nil, err
	}
	toSize, err := SizeChecked(to)
	if err != nil {
		return nil, err
	}
	if fromSize != toSize {
		return nil, NewError(IncompatibleShape,
			fmt.Sprintf("cannot reshape %d elements into %d", fromSize, toSize), from, to)
	}
	if toSize == 0 {
		return DefaultStrides(to, order), nil
	}
	toStrides := make([]int, len(to))
	var seq func(n, i int) int
	if order == ColumnMajor {
		seq = func(n, i int) int { return n - 1 - i }
	} else {
		seq = func(_, i int) int { return i }
	}
	if err := reshapeDim(from, fromStrides, to, toStrides, seq); err != nil {
		if se, ok := err.(*ShapeError); ok {
			se.Shapes = [][]int{Dim(from...), Dim(to...)}
		}
		return nil, err
	}
	return toStrides, nil
}

// reshapeDim walks from and to together in row-major index order, reading
// axis k of each sequence at position seq(len, k). Groups of axes whose
// lengths multiply to the same value are matched; the from group must be
// contiguous with itself for its stride to be redistributed over the to group.
// Neither shape may contain a zero-length axis.
func reshapeDim(from, fromStrides, to, toStrides []int, seq func(n, i int) int) error {
	fromDim := func(i int) int { return from[seq(len(from), i)] }
	fromStride := func(i int) int { return fromStrides[seq(len(from), i)] }
	toDim := func(i int) int { return to[seq(len(to), i)] }
	setStride := func(i, s int) { toStrides[seq(len(to), i)] = s }

	fi, ti := 0, 0
	for fi < len(from) && ti < len(to) {
		fd := fromDim(fi)
		fs := fromStride(fi)
		td := toDim(ti)

		if fd == td {
			setStride(ti, fs)
			fi++
			ti++
			continue
		}
		if fd == 1 {
			fi++
			continue
		}
		if td == 1 {
			setStride(ti, 1)
			ti++
			continue
		}

		// The stride times the element count of the group is spread over the
		// matching group on the to side.
		whole := fs * fd
		fdProduct, tdProduct := fd, td
		for fdProduct != tdProduct {
			if fdProduct < tdProduct {
				fi++
				if fi >= len(from) {
					return NewError(IncompatibleShape, "axis groups do not match")
				}
				fd = fromDim(fi)
				fdProduct *= fd
				if fd > 1 {
					prev := fs
					fs = fromStride(fi)
					if prev != fd*fs {
						return NewError(IncompatibleLayout, "axes are not contiguous with each other")
					}
				}
			} else {
				whole /= td
				setStride(ti, whole)
				ti++
				if ti >= len(to) {
					return NewError(IncompatibleShape, "axis groups do not match")
				}
				td = toDim(ti)
				tdProduct *= td
			}
		}
		whole /= td
		setStride(ti, whole)
		fi++
		ti++
	}

	for fi < len(from) && fromDim(fi) == 1 {
		fi++
	}
	for ti < len(to) && toDim(ti) == 1 {
		setStride(ti, 1)
		ti++
	}
	if fi < len(from) || ti < len(to) {
		return NewError(IncompatibleShape, "axis groups do not match")
	}
	return nil
}
