// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"golang.org/x/exp/constraints"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// Map returns a new row-major array holding f(x) for every element x of a.
func Map[A, B any, D Dimension](a Data[A, D], f func(A) B) *Array[B, D] {
	return ndarray.Map(a, f)
}

// Map2 broadcasts a and b together and returns f applied pairwise.
func Map2[A, B, C any](a Source[A], b Source[B], f func(A, B) C) (*Array[C, IxDyn], error) {
	return ndarray.Map2(a, b, f)
}

// Zip2 calls f with matching elements of a and b broadcast together.
func Zip2[A, B any](a Source[A], b Source[B], f func(A, B)) error {
	return ndarray.Zip2(a, b, f)
}

// Zip3 is Zip2 for three operands.
func Zip3[A, B, C any](a Source[A], b Source[B], c Source[C], f func(A, B, C)) error {
	return ndarray.Zip3(a, b, c, f)
}

// ZipMutWith calls f with a pointer into dst and the matching element of
// src broadcast to dst's shape.
func ZipMutWith[A, B any, D Dimension](dst DataMut[A, D], src Source[B], f func(*A, B)) error {
	return ndarray.ZipMutWith(dst, src, f)
}

// CoBroadcast returns views of a and b stretched to their common shape.
func CoBroadcast[A, B any](a Source[A], b Source[B]) (*ArrayView[A, IxDyn], *ArrayView[B, IxDyn], error) {
	return ndarray.CoBroadcast(a, b)
}

// SharesMemory reports whether a and b may reach a common element.
func SharesMemory[A, B any](a Source[A], b Source[B]) bool {
	return ndarray.SharesMemory(a, b)
}

// Fold reduces a with f in an unspecified order.
func Fold[A, B any, D Dimension](a Data[A, D], init B, f func(B, A) B) B {
	return ndarray.Fold(a, init, f)
}

// FoldAxis folds every lane along axis.
func FoldAxis[A, B any, D Dimension](a Data[A, D], axis int, init B, f func(B, A) B) *Array[B, IxDyn] {
	return ndarray.FoldAxis(a, axis, init, f)
}

// MapAxis calls f with every lane along axis.
func MapAxis[A, B any, D Dimension](a Data[A, D], axis int, f func(*ArrayView[A, Ix1]) B) *Array[B, IxDyn] {
	return ndarray.MapAxis(a, axis, f)
}

// Equal reports whether a and b have the same shape and elements.
func Equal[A comparable, D Dimension](a, b Data[A, D]) bool {
	return ndarray.Equal(a, b)
}

// Concatenate joins arrays along axis.
func Concatenate[A any, D Dimension](axis int, arrays ...Data[A, D]) (*Array[A, D], error) {
	return ndarray.Concatenate(axis, arrays...)
}

// Stack joins arrays along a new axis.
func Stack[A any, D Dimension](axis int, arrays ...Data[A, D]) (*Array[A, IxDyn], error) {
	return ndarray.Stack(axis, arrays...)
}

// Ones returns a row-major array of shape filled with one.
func Ones[A Number, D Dimension](shape D) (*Array[A, D], error) {
	return ndarray.Ones[A](shape)
}

// Arange returns start, start+step, ... up to but excluding end.
func Arange[A Real](start, end, step A) *Array[A, Ix1] {
	return ndarray.Arange(start, end, step)
}

// Linspace returns n evenly spaced values from start to end inclusive.
func Linspace[A constraints.Float](start, end A, n int) *Array[A, Ix1] {
	return ndarray.Linspace(start, end, n)
}

// Eye returns the n by n identity matrix.
func Eye[A Number](n int) *Array[A, Ix2] {
	return ndarray.Eye[A](n)
}

// Sum adds every element.
func Sum[A Number, D Dimension](a Data[A, D]) A { return ndarray.Sum(a) }

// Product multiplies every element.
func Product[A Number, D Dimension](a Data[A, D]) A { return ndarray.Product(a) }

// Mean returns the arithmetic mean, or false for an empty array.
func Mean[A constraints.Float, D Dimension](a Data[A, D]) (A, bool) { return ndarray.Mean(a) }

// Min returns the smallest element, or false for an empty array.
func Min[A Real, D Dimension](a Data[A, D]) (A, bool) { return ndarray.Min(a) }

// Max returns the largest element, or false for an empty array.
func Max[A Real, D Dimension](a Data[A, D]) (A, bool) { return ndarray.Max(a) }

// SumAxis sums along axis, removing it.
func SumAxis[A Number, D Dimension](a Data[A, D], axis int) *Array[A, IxDyn] {
	return ndarray.SumAxis(a, axis)
}

// MeanAxis averages along axis, removing it. It returns false when the axis
// is empty.
func MeanAxis[A constraints.Float, D Dimension](a Data[A, D], axis int) (*Array[A, IxDyn], bool) {
	return ndarray.MeanAxis(a, axis)
}

// AllClose reports whether a and b have the same shape and every pair of
// elements differs by at most tol.
func AllClose[A constraints.Float, D Dimension](a, b Data[A, D], tol A) bool {
	return ndarray.AllClose(a, b, tol)
}

// Add returns a + b element-wise, broadcasting both operands.
func Add[A Number, D Dimension](a, b Data[A, D]) (*Array[A, D], error) { return ndarray.Add(a, b) }

// Sub returns a - b element-wise, broadcasting both operands.
func Sub[A Number, D Dimension](a, b Data[A, D]) (*Array[A, D], error) { return ndarray.Sub(a, b) }

// Mul returns a * b element-wise, broadcasting both operands.
func Mul[A Number, D Dimension](a, b Data[A, D]) (*Array[A, D], error) { return ndarray.Mul(a, b) }

// Div returns a / b element-wise, broadcasting both operands.
func Div[A Number, D Dimension](a, b Data[A, D]) (*Array[A, D], error) { return ndarray.Div(a, b) }

// Scale multiplies every element of a by k in place.
func Scale[A Number, D Dimension](a DataMut[A, D], k A) { ndarray.Scale(a, k) }
