// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides n-dimensional arrays with arbitrary strides.
//
// # Overview
//
// An array is a buffer of elements plus a shape, a stride per axis and the
// offset of its first element. Slicing, transposing, broadcasting and most
// reshapes only change that description, so they never copy:
//   - Array[A, D]: owns its buffer
//   - ArcArray[A, D]: shares its buffer, copying it on the first write
//   - ArrayView[A, D], ArrayViewMut[A, D]: borrow another container's buffer
//
// D is the dimension type. Ix0 through Ix6 fix the rank in the type; IxDyn
// carries it at run time. Operations that change the rank return IxDyn.
//
// # Basic Usage
//
//	a := ndarray.Must(ndarray.FromShapeVec(ndarray.Ix2{2, 3}, []int{0, 1, 2, 3, 4, 5}))
//	col, _ := a.Slice(ndarray.Full(), ndarray.Index(1)) // [1, 4]
//	t := a.T()                                          // 3x2 view, no copy
//	sum, _ := ndarray.Add[int, ndarray.Ix2](a, a)
//
// # Errors
//
// Shape problems are returned as *ShapeError values that match one of the
// Err* sentinels with errors.Is. Checked element access or slicing with a
// position outside the shape panics with an *IndexError.
package ndarray
