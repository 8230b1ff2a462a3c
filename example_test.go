// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray_test

import (
	"fmt"

	"github.com/born-ml/ndarray"
)

func Example() {
	a := ndarray.Must(ndarray.FromShapeVec(ndarray.Ix2{2, 3}, []int{0, 1, 2, 3, 4, 5}))
	fmt.Println(a.T())
	// Output:
	// [[0, 3],
	//  [1, 4],
	//  [2, 5]]
}

func ExampleRange() {
	a := ndarray.Must(ndarray.FromShapeVec(ndarray.Ix2{2, 3}, []int{0, 1, 2, 3, 4, 5}))
	s := ndarray.Must(a.Slice(ndarray.Full(), ndarray.Range(0, 3, 2)))
	fmt.Println(s.Shape(), s.Strides())
	fmt.Println(s)
	// Output:
	// [2 2] [3 2]
	// [[0, 2],
	//  [3, 5]]
}

func ExampleMarshalArray() {
	a := ndarray.Must(ndarray.FromShapeVec(ndarray.Ix2{2, 3}, []int{0, 1, 2, 3, 4, 5}))
	b, err := ndarray.MarshalArray[int, ndarray.Ix2](ndarray.JSON, a.T())
	if err != nil {
		panic(err)
	}
	fmt.Println(string(b))
	// Output:
	// {"v":1,"dim":[3,2],"data":[0,3,1,4,2,5]}
}
