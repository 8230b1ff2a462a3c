// Package half converts float32 arrays to and from 16-bit floating point
// element types: IEEE 754 binary16 and bfloat16.
package half

import (
	"encoding/binary"
	"fmt"

	"github.com/d4l3k/go-bfloat16"
	"github.com/x448/float16"

	"github.com/born-ml/ndarray/internal/dimension"
	"github.com/born-ml/ndarray/internal/ndarray"
)

// ToFloat16 rounds every element to the nearest binary16 value. The result
// has a's shape in standard layout.
func ToFloat16[D dimension.Dimension](a ndarray.Data[float32, D]) *ndarray.Array[float16.Float16, D] {
	return ndarray.Map[float32, float16.Float16, D](a, float16.Fromfloat32)
}

// FromFloat16 widens every element to float32. The conversion is exact.
func FromFloat16[D dimension.Dimension](a ndarray.Data[float16.Float16, D]) *ndarray.Array[float32, D] {
	return ndarray.Map[float16.Float16, float32, D](a, func(h float16.Float16) float32 {
		return h.Float32()
	})
}

// ToBFloat16 keeps the upper 16 bits of every element.
func ToBFloat16[D dimension.Dimension](a ndarray.Data[float32, D]) *ndarray.Array[bfloat16.BF16, D] {
	return ndarray.Map[float32, bfloat16.BF16, D](a, bfloat16.FromFloat32)
}

// FromBFloat16 widens every element to float32.
func FromBFloat16[D dimension.Dimension](a ndarray.Data[bfloat16.BF16, D]) *ndarray.Array[float32, D] {
	return ndarray.Map[bfloat16.BF16, float32, D](a, bfloat16.ToFloat32)
}

// EncodeFloat16 packs the elements of a, in row-major order, as little
// endian binary16 values.
func EncodeFloat16[D dimension.Dimension](a ndarray.Data[float32, D]) []byte {
	v := a.View()
	out := make([]byte, 0, 2*v.Len())
	for x := range v.Iter() {
		out = binary.LittleEndian.AppendUint16(out, float16.Fromfloat32(x).Bits())
	}
	return out
}

// DecodeFloat16 is the inverse of EncodeFloat16. buf must hold exactly two
// bytes per element of shape.
func DecodeFloat16[D dimension.Dimension](shape D, buf []byte) (*ndarray.Array[float32, D], error) {
	if err := checkLen(shape, buf); err != nil {
		return nil, err
	}
	data := make([]float32, len(buf)/2)
	for i := range data {
		data[i] = float16.Frombits(binary.LittleEndian.Uint16(buf[2*i:])).Float32()
	}
	return ndarray.FromShapeVec(shape, data)
}

// EncodeBFloat16 packs the elements of a, in row-major order, as little
// endian bfloat16 values.
func EncodeBFloat16[D dimension.Dimension](a ndarray.Data[float32, D]) []byte {
	return bfloat16.EncodeFloat32(a.View().ToVec())
}

// DecodeBFloat16 is the inverse of EncodeBFloat16.
func DecodeBFloat16[D dimension.Dimension](shape D, buf []byte) (*ndarray.Array[float32, D], error) {
	if err := checkLen(shape, buf); err != nil {
		return nil, err
	}
	data := bfloat16.DecodeFloat32(buf)
	if data == nil {
		data = []float32{}
	}
	return ndarray.FromShapeVec(shape, data)
}

func checkLen[D dimension.Dimension](shape D, buf []byte) error {
	n, err := dimension.SizeChecked(shape.Slice())
	if err != nil {
		return err
	}
	if len(buf) != 2*n {
		return dimension.NewError(dimension.IncompatibleShape,
			fmt.Sprintf("%d bytes cannot hold %d 16-bit elements", len(buf), n), shape.Slice())
	}
	return nil
}
