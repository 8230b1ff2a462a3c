package dimension

import "fmt"

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Rules:
// 1. Compare shapes element-wise from right to left
// 2. Dimensions are compatible if:
//   - They are equal, OR
//   - One of them is 1
//
// 3. Missing dimensions are treated as 1
//
// Returns the broadcasted shape, a flag indicating if broadcasting is needed, and an
// IncompatibleShape error if the shapes cannot be combined.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5), true, nil
//	(1, 5) + (3, 5) → (3, 5), true, nil
//	(3, 5) + (3, 5) → (3, 5), false, nil
//	(1, 0) + (4, 1) → (4, 0), true, nil
//	(3, 4) + (3, 5) → nil, false, Error
func BroadcastShapes(a, b []int) (Shape, bool, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)
	needsBroadcast := len(a) != len(b)

	for i := 0; i < maxLen; i++ {
		aIdx := len(a) - 1 - i
		bIdx := len(b) - 1 - i

		aDim := 1
		if aIdx >= 0 {
			aDim = a[aIdx]
		}

		bDim := 1
		if bIdx >= 0 {
			bDim = b[bIdx]
		}

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
			needsBroadcast = true
		case bDim == 1:
			result[maxLen-1-i] = aDim
			needsBroadcast = true
		default:
			return nil, false, NewError(IncompatibleShape,
				fmt.Sprintf("axis %d: %d vs %d", maxLen-1-i, aDim, bDim), a, b)
		}
	}

	if _, err := SizeChecked(result); err != nil {
		return nil, false, err
	}
	return result, needsBroadcast, nil
}

// BroadcastAll folds BroadcastShapes over several shapes.
func BroadcastAll(shapes ...[]int) (Shape, error) {
	var out Shape
	for i, s := range shapes {
		if i == 0 {
			out = Dim(s...)
			continue
		}
		next, _, err := BroadcastShapes(out, s)
		if err != nil {
			return nil, err
		}
		out = next
	}
	return out, nil
}

// UpcastStrides computes strides that present an array of shape from (with
// strides fromStrides) as an array of shape to. Axes are aligned on the
// right. Prepended axes and stretched length-1 axes get stride 0, so every
// position along them reads the same element.
func UpcastStrides(to, from, fromStrides []int) ([]int, error) {
	if len(from) > len(to) {
		return nil, NewError(IncompatibleShape,
			fmt.Sprintf("cannot broadcast %d axes to %d", len(from), len(to)), from, to)
	}
	if _, err := SizeChecked(to); err != nil {
		return nil, err
	}
	strides := make([]int, len(to))
	lead := len(to) - len(from)
	for i, d := range from {
		switch td := to[lead+i]; {
		case d == td:
			strides[lead+i] = fromStrides[i]
		case d == 1:
			strides[lead+i] = 0
		default:
			return nil, NewError(IncompatibleShape,
				fmt.Sprintf("axis %d: cannot stretch length %d to %d", i, d, td), from, to)
		}
	}
	return strides, nil
}
