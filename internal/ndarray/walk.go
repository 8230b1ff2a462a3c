package ndarray

import (
	"sort"

	"github.com/born-ml/ndarray/internal/dimension"
)

// walkOrder selects how walk may reorder axes.
type walkOrder int

const (
	// walkLogical visits positions in row-major logical order.
	walkLogical walkOrder = iota
	// walkShared lets several operands pick one shared order: flat when
	// all are contiguous in the same order, otherwise row- or column-major,
	// whichever gives the longest unit-stride inner runs. Ties go to the
	// order most operands are laid out in.
	walkShared
	// walkAny visits in whatever order is cheapest for the first operand.
	walkAny
)

// walk visits every position of shape once, tracking one data offset per
// operand. Positions are delivered as inner runs: visit receives the offsets
// of the first element of the run, the per-operand step along it and its
// length, and returns false to stop. visit must not retain offs or steps.
func walk(shape []int, strides [][]int, offsets []int, order walkOrder, visit func(offs, steps []int, n int) bool) {
	nops := len(strides)
	size := dimension.Shape(shape).NumElements()
	if size == 0 {
		return
	}
	offs := append([]int(nil), offsets...)
	steps := make([]int, nops)

	// Flat fast path.
	common := dimension.LayoutBoth
	for _, st := range strides {
		common = common.Intersect(dimension.LayoutOf(shape, st))
	}
	if common.Is(dimension.LayoutC) || (order != walkLogical && common.Is(dimension.LayoutF)) {
		for i := range steps {
			steps[i] = 1
		}
		visit(offs, steps, size)
		return
	}
	if order == walkAny && nops == 1 && dimension.IsDense(shape, strides[0]) {
		offs[0] -= dimension.OffsetFromLowAddr(shape, strides[0])
		steps[0] = 1
		visit(offs, steps, size)
		return
	}

	sh := append([]int(nil), shape...)
	st := make([][]int, nops)
	for i := range strides {
		st[i] = append([]int(nil), strides[i]...)
	}

	switch order {
	case walkShared:
		runC, runF, tendency := 0, 0, 0
		for _, s := range strides {
			runC += dimension.InnerRun(shape, s, dimension.RowMajor)
			runF += dimension.InnerRun(shape, s, dimension.ColumnMajor)
			tendency += dimension.LayoutOf(shape, s).Tendency()
		}
		if runF > runC || (runF == runC && tendency < 0) {
			sh = dimension.Reversed(sh)
			for i := range st {
				st[i] = dimension.Reversed(st[i])
			}
		}
	case walkAny:
		perm := make([]int, len(sh))
		for i := range perm {
			perm[i] = i
		}
		lead := st[0]
		sort.SliceStable(perm, func(i, j int) bool {
			return abs(lead[perm[i]]) > abs(lead[perm[j]])
		})
		sh = dimension.Permute(sh, perm)
		for i := range st {
			st[i] = dimension.Permute(st[i], perm)
		}
	}

	sh, st = compactAxes(sh, st)
	if len(sh) == 0 {
		visit(offs, steps, 1)
		return
	}

	last := len(sh) - 1
	inner := sh[last]
	for i := range st {
		steps[i] = st[i][last]
	}
	index := make([]int, last)
	for {
		if !visit(offs, steps, inner) {
			return
		}
		ax := last - 1
		for ; ax >= 0; ax-- {
			index[ax]++
			for i := range offs {
				offs[i] += st[i][ax]
			}
			if index[ax] < sh[ax] {
				break
			}
			for i := range offs {
				offs[i] -= st[i][ax] * sh[ax]
			}
			index[ax] = 0
		}
		if ax < 0 {
			return
		}
	}
}

// compactAxes drops length-one axes and merges each axis into the next inner
// one when every operand steps uniformly across both. Traversal order is
// preserved.
func compactAxes(shape []int, strides [][]int) ([]int, [][]int) {
	outShape := make([]int, 0, len(shape))
	out := make([][]int, len(strides))
	for i := range out {
		out[i] = make([]int, 0, len(shape))
	}
	for ax, d := range shape {
		if d == 1 {
			continue
		}
		if last := len(outShape) - 1; last >= 0 {
			mergeable := true
			for i := range strides {
				if out[i][last] != strides[i][ax]*d {
					mergeable = false
					break
				}
			}
			if mergeable {
				outShape[last] *= d
				for i := range strides {
					out[i][last] = strides[i][ax]
				}
				continue
			}
		}
		outShape = append(outShape, d)
		for i := range strides {
			out[i] = append(out[i], strides[i][ax])
		}
	}
	return outShape, out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// walkC calls f on every element in row-major logical order.
func (b *base[A, D]) walkC(f func(A)) {
	walk(b.shape, [][]int{b.strides}, []int{b.offset}, walkLogical, func(offs, steps []int, n int) bool {
		o, s := offs[0], steps[0]
		if s == 1 {
			for _, v := range b.data[o : o+n] {
				f(v)
			}
			return true
		}
		for i := 0; i < n; i++ {
			f(b.data[o])
			o += s
		}
		return true
	})
}

// ForEach calls f on every element, in no particular order.
func (b *base[A, D]) ForEach(f func(A)) {
	walk(b.shape, [][]int{b.strides}, []int{b.offset}, walkAny, func(offs, steps []int, n int) bool {
		o, s := offs[0], steps[0]
		if s == 1 {
			for _, v := range b.data[o : o+n] {
				f(v)
			}
			return true
		}
		for i := 0; i < n; i++ {
			f(b.data[o])
			o += s
		}
		return true
	})
}

// reversedAxes returns the layout with the axis order reversed.
func (b *base[A, D]) reversedAxes() *base[A, D] {
	return &base[A, D]{
		data:    b.data,
		shape:   dimension.Reversed(b.shape),
		strides: dimension.Reversed(b.strides),
		offset:  b.offset,
	}
}
