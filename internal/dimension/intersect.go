package dimension

// SlicesIntersect reports whether two slice specifications of the same shape
// can select a common element. Index elements count as one-element ranges
// and NewAxis elements are skipped. Invalid specifications are reported as
// intersecting so that callers refuse them.
func SlicesIntersect(shape []int, a, b []SliceInfoElem) bool {
	if SliceInNDim(a) != len(shape) || SliceInNDim(b) != len(shape) {
		return true
	}
	i, j := 0, 0
	for _, d := range shape {
		for a[i].IsNewAxis() {
			i++
		}
		for b[j].IsNewAxis() {
			j++
		}
		lo1, hi1, s1, ok1 := selectedPositions(d, a[i])
		lo2, hi2, s2, ok2 := selectedPositions(d, b[j])
		if !ok1 || !ok2 {
			// An empty selection reaches nothing.
			return false
		}
		if !arithSeqIntersect(lo1, hi1, s1, lo2, hi2, s2) {
			return false
		}
		i++
		j++
	}
	return true
}

// selectedPositions describes the positions an element selects on an axis
// as the arithmetic sequence lo, lo+step, ..., hi. ok is false when nothing
// is selected. Out-of-range elements select the whole axis.
func selectedPositions(axisLen int, e SliceInfoElem) (lo, hi, step int, ok bool) {
	if e.Kind == KindIndex {
		i := AbsIndex(axisLen, e.Index)
		if i < 0 || i >= axisLen {
			return 0, axisLen - 1, 1, axisLen > 0
		}
		return i, i, 1, true
	}
	start, end, st, err := ResolveRange(axisLen, e)
	if err != nil {
		return 0, axisLen - 1, 1, axisLen > 0
	}
	m := end - start
	if m == 0 {
		return 0, 0, 1, false
	}
	step = abs(st)
	n := (m + step - 1) / step
	if st > 0 {
		return start, start + (n-1)*step, step, true
	}
	return end - 1 - (n-1)*step, end - 1, step, true
}

// arithSeqIntersect reports whether lo1 + k*s1 (up to hi1) and lo2 + k*s2
// (up to hi2) share a term. Steps are positive.
func arithSeqIntersect(lo1, hi1, s1, lo2, hi2, s2 int) bool {
	if lo1 > hi2 || lo2 > hi1 {
		return false
	}
	g, x, _ := extendedGCD(s1, s2)
	diff := lo2 - lo1
	if diff%g != 0 {
		return false
	}
	// Solve lo1 + k*s1 = lo2 (mod s2) for the smallest k >= 0.
	m := s2 / g
	k := mod(mod(x, m)*mod(diff/g, m), m)
	first := lo1 + k*s1
	period := s1 * m
	low := max(lo1, lo2)
	if first < low {
		first += ((low - first + period - 1) / period) * period
	}
	return first <= min(hi1, hi2)
}

// extendedGCD returns g = gcd(a, b) and x, y with a*x + b*y = g.
func extendedGCD(a, b int) (g, x, y int) {
	oldR, r := a, b
	oldS, s := 1, 0
	oldT, t := 0, 1
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}
	return oldR, oldS, oldT
}

func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
