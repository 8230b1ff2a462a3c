// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/dimension"
	"github.com/born-ml/ndarray/internal/ndarray"
)

// Dimension is implemented by the fixed-rank index types and IxDyn.
type Dimension = dimension.Dimension

// Fixed-rank dimensions.
type (
	Ix0 = dimension.Ix0
	Ix1 = dimension.Ix1
	Ix2 = dimension.Ix2
	Ix3 = dimension.Ix3
	Ix4 = dimension.Ix4
	Ix5 = dimension.Ix5
	Ix6 = dimension.Ix6
)

// Shape represents the dimensions of an array with dynamic rank.
type Shape = dimension.Shape

// IxDyn is the dynamic-rank dimension type.
type IxDyn = dimension.IxDyn

// Dim builds a dynamic-rank shape from axis lengths.
func Dim(axes ...int) Shape {
	return dimension.Dim(axes...)
}

// Order is a memory order for laying out elements.
type Order = dimension.Order

// Memory orders.
const (
	RowMajor    Order = dimension.RowMajor
	ColumnMajor Order = dimension.ColumnMajor
)

// Layout is a set of contiguity flags.
type Layout = dimension.Layout

// Containers.
type (
	Array[A any, D Dimension]        = ndarray.Array[A, D]
	ArcArray[A any, D Dimension]     = ndarray.ArcArray[A, D]
	ArrayView[A any, D Dimension]    = ndarray.ArrayView[A, D]
	ArrayViewMut[A any, D Dimension] = ndarray.ArrayViewMut[A, D]
)

// Capabilities.
type (
	Data[A any, D Dimension]      = ndarray.Data[A, D]
	DataMut[A any, D Dimension]   = ndarray.DataMut[A, D]
	DataOwned[A any, D Dimension] = ndarray.DataOwned[A, D]
	Source[A any]                 = ndarray.Source[A]
)

// Number is a constraint for element types with arithmetic.
type Number = ndarray.Number

// Real is a constraint for ordered numeric element types.
type Real = ndarray.Real

// Errors.
type (
	ShapeError = dimension.ShapeError
	IndexError = dimension.IndexError
	ErrorKind  = dimension.ErrorKind
)

// Error kinds.
const (
	IncompatibleShape  = dimension.IncompatibleShape
	IncompatibleLayout = dimension.IncompatibleLayout
	RangeLimited       = dimension.RangeLimited
	OutOfBounds        = dimension.OutOfBounds
	Unsupported        = dimension.Unsupported
	Overflow           = dimension.Overflow
	InvalidSlice       = dimension.InvalidSlice
)

// Sentinel errors matched by *ShapeError with errors.Is.
var (
	ErrIncompatibleShape  = dimension.ErrIncompatibleShape
	ErrIncompatibleLayout = dimension.ErrIncompatibleLayout
	ErrRangeLimited       = dimension.ErrRangeLimited
	ErrOutOfBounds        = dimension.ErrOutOfBounds
	ErrUnsupported        = dimension.ErrUnsupported
	ErrOverflow           = dimension.ErrOverflow
	ErrInvalidSlice       = dimension.ErrInvalidSlice
)

// KindOf reports the ErrorKind carried by err, or 0 if err is not a ShapeError.
func KindOf(err error) ErrorKind {
	return dimension.KindOf(err)
}

// SliceInfoElem is one element of a slice specification.
type SliceInfoElem = dimension.SliceInfoElem

// Range selects start..end by step. Negative start and end count from the
// end of the axis; a negative step walks the range backwards.
func Range(start, end, step int) SliceInfoElem { return dimension.Range(start, end, step) }

// RangeFrom selects start.. by step.
func RangeFrom(start, step int) SliceInfoElem { return dimension.RangeFrom(start, step) }

// Full selects a whole axis.
func Full() SliceInfoElem { return dimension.Full() }

// Index selects one position and removes the axis.
func Index(i int) SliceInfoElem { return dimension.Index(i) }

// NewAxis inserts an axis of length 1.
func NewAxis() SliceInfoElem { return dimension.NewAxis() }

// ParseSlice parses a slice specification in Python notation, such as
// "1:, ::-1, 0" or "[..., newaxis]", for an array with ndim axes.
func ParseSlice(s string, ndim int) ([]SliceInfoElem, error) {
	return dimension.ParseSlice(s, ndim)
}

// Must panics if err is non-nil and returns v otherwise.
func Must[T any](v T, err error) T {
	return ndarray.Must(v, err)
}

// Zeros returns a row-major array of shape filled with the zero value.
func Zeros[A any, D Dimension](shape D) (*Array[A, D], error) {
	return ndarray.Zeros[A](shape)
}

// ZerosOrder is Zeros with an explicit memory order.
func ZerosOrder[A any, D Dimension](shape D, order Order) (*Array[A, D], error) {
	return ndarray.ZerosOrder[A](shape, order)
}

// FromElem returns a row-major array of shape with every element v.
func FromElem[A any, D Dimension](shape D, v A) (*Array[A, D], error) {
	return ndarray.FromElem(shape, v)
}

// FromShapeVec takes ownership of data as a row-major array of shape.
func FromShapeVec[A any, D Dimension](shape D, data []A) (*Array[A, D], error) {
	return ndarray.FromShapeVec(shape, data)
}

// FromShapeVecOrder is FromShapeVec with an explicit memory order.
func FromShapeVecOrder[A any, D Dimension](shape D, order Order, data []A) (*Array[A, D], error) {
	return ndarray.FromShapeVecOrder(shape, order, data)
}

// FromShapeVecStrides takes ownership of data with custom strides.
func FromShapeVecStrides[A any, D Dimension](shape D, strides []int, data []A) (*Array[A, D], error) {
	return ndarray.FromShapeVecStrides(shape, strides, data)
}

// FromVec returns a one-dimensional array owning data.
func FromVec[A any](data []A) *Array[A, Ix1] {
	return ndarray.FromVec(data)
}

// Scalar returns a zero-dimensional array holding v.
func Scalar[A any](v A) *Array[A, Ix0] {
	return ndarray.Scalar(v)
}

// FromFn builds a row-major array by calling f with every index.
func FromFn[A any, D Dimension](shape D, f func(D) A) (*Array[A, D], error) {
	return ndarray.FromFn(shape, f)
}

// SharedFromShapeVec is FromShapeVec returning a shared array.
func SharedFromShapeVec[A any, D Dimension](shape D, data []A) (*ArcArray[A, D], error) {
	return ndarray.SharedFromShapeVec(shape, data)
}

// ViewFromSlice borrows data as a row-major view of shape.
func ViewFromSlice[A any, D Dimension](shape D, data []A) (*ArrayView[A, D], error) {
	return ndarray.ViewFromSlice(shape, data)
}

// ViewFromSliceStrides borrows data with custom strides.
func ViewFromSliceStrides[A any, D Dimension](shape D, strides []int, data []A) (*ArrayView[A, D], error) {
	return ndarray.ViewFromSliceStrides(shape, strides, data)
}

// ViewMutFromSlice borrows data as a mutable row-major view of shape.
func ViewMutFromSlice[A any, D Dimension](shape D, data []A) (*ArrayViewMut[A, D], error) {
	return ndarray.ViewMutFromSlice(shape, data)
}

// IntoDimensionality converts a view to the dimension type D2.
func IntoDimensionality[D2 Dimension, A any, D Dimension](v *ArrayView[A, D]) (*ArrayView[A, D2], error) {
	return ndarray.IntoDimensionality[D2](v)
}

// IntoDimensionalityOwned converts an owned array to the dimension type D2.
func IntoDimensionalityOwned[D2 Dimension, A any, D Dimension](a *Array[A, D]) (*Array[A, D2], error) {
	return ndarray.IntoDimensionalityOwned[D2](a)
}
