package ndarray

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/born-ml/ndarray/internal/dimension"
)

// Number is the set of element types with arithmetic.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Real is the set of ordered numeric element types.
type Real interface {
	constraints.Integer | constraints.Float
}

// Ones creates a row-major array filled with 1.
func Ones[A Number, D dimension.Dimension](shape D) (*Array[A, D], error) {
	return FromElem(shape, A(1))
}

// Arange returns start, start+step, ... up to but excluding end. It panics
// if step is zero.
func Arange[A Real](start, end, step A) *Array[A, dimension.Ix1] {
	if step == 0 {
		panic("ndarray: arange step must not be zero")
	}
	n := math.Ceil((float64(end) - float64(start)) / float64(step))
	if n <= 0 {
		return FromVec([]A{})
	}
	data := make([]A, int(n))
	for i := range data {
		data[i] = start + A(i)*step
	}
	return FromVec(data)
}

// Linspace returns n evenly spaced values from start to end inclusive.
func Linspace[A constraints.Float](start, end A, n int) *Array[A, dimension.Ix1] {
	data := make([]A, max(n, 0))
	switch {
	case n == 1:
		data[0] = start
	case n > 1:
		step := (end - start) / A(n-1)
		for i := range data {
			data[i] = start + A(i)*step
		}
		data[n-1] = end
	}
	return FromVec(data)
}

// Eye returns the n×n identity matrix.
func Eye[A Number](n int) *Array[A, dimension.Ix2] {
	a := Must(Zeros[A](dimension.Ix2{n, n}))
	for i := 0; i < n; i++ {
		a.data[i*n+i] = 1
	}
	return a
}

// Sum adds all elements, in no particular order.
func Sum[A Number, D dimension.Dimension](a Data[A, D]) A {
	return Fold(a, A(0), func(acc, x A) A { return acc + x })
}

// Product multiplies all elements, in no particular order.
func Product[A Number, D dimension.Dimension](a Data[A, D]) A {
	return Fold(a, A(1), func(acc, x A) A { return acc * x })
}

// Mean returns the arithmetic mean, or false for an empty array.
func Mean[A constraints.Float, D dimension.Dimension](a Data[A, D]) (A, bool) {
	v := a.View()
	n := v.Len()
	if n == 0 {
		return 0, false
	}
	return Sum[A, D](v) / A(n), true
}

// SumAxis sums along axis, producing an array with that axis removed.
func SumAxis[A Number, D dimension.Dimension](a Data[A, D], axis int) *Array[A, dimension.IxDyn] {
	return FoldAxis(a, axis, A(0), func(acc, x A) A { return acc + x })
}

// MeanAxis averages along axis, or returns false when the axis is empty.
func MeanAxis[A constraints.Float, D dimension.Dimension](a Data[A, D], axis int) (*Array[A, dimension.IxDyn], bool) {
	v := a.View()
	n := v.LenOf(axis)
	if n == 0 {
		return nil, false
	}
	sum := SumAxis[A, D](v, axis)
	sum.ViewMut().MapvInPlace(func(x A) A { return x / A(n) })
	return sum, true
}

// Min returns the smallest element, or false for an empty array.
func Min[A Real, D dimension.Dimension](a Data[A, D]) (A, bool) {
	return extremum(a, func(x, best A) bool { return x < best })
}

// Max returns the largest element, or false for an empty array.
func Max[A Real, D dimension.Dimension](a Data[A, D]) (A, bool) {
	return extremum(a, func(x, best A) bool { return x > best })
}

func extremum[A Real, D dimension.Dimension](a Data[A, D], better func(x, best A) bool) (A, bool) {
	v := a.View()
	best, ok := v.First()
	if !ok {
		return best, false
	}
	v.ForEach(func(x A) {
		if better(x, best) {
			best = x
		}
	})
	return best, true
}

// AllClose reports whether a and b have the same shape and every pair of
// elements differs by at most tol.
func AllClose[A constraints.Float, D dimension.Dimension](a, b Data[A, D], tol A) bool {
	va, vb := a.View(), b.View()
	if !dimension.Equal(va.shape, vb.shape) {
		return false
	}
	ok := true
	_ = Zip2[A, A](va, vb, func(x, y A) {
		if math.Abs(float64(x-y)) > float64(tol) {
			ok = false
		}
	})
	return ok
}

func binary[A Number, D dimension.Dimension](op string, a, b Data[A, D], f func(A, A) A) (*Array[A, D], error) {
	out, err := Map2[A, A, A](a.View(), b.View(), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := checkRank[D](out.shape); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Array[A, D]{base: rebase[D](&out.base)}, nil
}

// Add returns a + b element-wise, broadcasting both operands.
func Add[A Number, D dimension.Dimension](a, b Data[A, D]) (*Array[A, D], error) {
	return binary("add", a, b, func(x, y A) A { return x + y })
}

// Sub returns a - b element-wise, broadcasting both operands.
func Sub[A Number, D dimension.Dimension](a, b Data[A, D]) (*Array[A, D], error) {
	return binary("sub", a, b, func(x, y A) A { return x - y })
}

// Mul returns a * b element-wise, broadcasting both operands.
func Mul[A Number, D dimension.Dimension](a, b Data[A, D]) (*Array[A, D], error) {
	return binary("mul", a, b, func(x, y A) A { return x * y })
}

// Div returns a / b element-wise, broadcasting both operands.
func Div[A Number, D dimension.Dimension](a, b Data[A, D]) (*Array[A, D], error) {
	return binary("div", a, b, func(x, y A) A { return x / y })
}

// Scale multiplies every element by k in place.
func Scale[A Number, D dimension.Dimension](a DataMut[A, D], k A) {
	a.ViewMut().MapvInPlace(func(x A) A { return x * k })
}
