// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/d4l3k/go-bfloat16"
	"github.com/x448/float16"

	"github.com/born-ml/ndarray/internal/half"
)

// Float16 is an IEEE 754 half-precision element.
type Float16 = float16.Float16

// BFloat16 is a bfloat16 element.
type BFloat16 = bfloat16.BF16

// ToFloat16 converts a to half precision, rounding to nearest even.
func ToFloat16[D Dimension](a Data[float32, D]) *Array[Float16, D] {
	return half.ToFloat16[D](a)
}

// FromFloat16 widens a to float32.
func FromFloat16[D Dimension](a Data[Float16, D]) *Array[float32, D] {
	return half.FromFloat16[D](a)
}

// ToBFloat16 converts a to bfloat16 by truncating the mantissa.
func ToBFloat16[D Dimension](a Data[float32, D]) *Array[BFloat16, D] {
	return half.ToBFloat16[D](a)
}

// FromBFloat16 widens a to float32.
func FromBFloat16[D Dimension](a Data[BFloat16, D]) *Array[float32, D] {
	return half.FromBFloat16[D](a)
}

// EncodeFloat16 packs a as little-endian half-precision values in row-major
// order.
func EncodeFloat16[D Dimension](a Data[float32, D]) []byte {
	return half.EncodeFloat16[D](a)
}

// DecodeFloat16 reads an array of shape from little-endian half-precision
// values.
func DecodeFloat16[D Dimension](shape D, buf []byte) (*Array[float32, D], error) {
	return half.DecodeFloat16[D](shape, buf)
}

// EncodeBFloat16 packs a as little-endian bfloat16 values in row-major order.
func EncodeBFloat16[D Dimension](a Data[float32, D]) []byte {
	return half.EncodeBFloat16[D](a)
}

// DecodeBFloat16 reads an array of shape from little-endian bfloat16 values.
func DecodeBFloat16[D Dimension](shape D, buf []byte) (*Array[float32, D], error) {
	return half.DecodeBFloat16[D](shape, buf)
}
