// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"context"
	"io"

	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/serialization"
)

// Codec selects the wire encoding of MarshalArray and UnmarshalArray.
type Codec = serialization.Codec

// Codecs.
const (
	JSON = serialization.JSON
	CBOR = serialization.CBOR
)

// MarshalArray encodes a as {"v": 1, "dim": [...], "data": [...]} with the
// elements in row-major order.
func MarshalArray[A any, D Dimension](c Codec, a Data[A, D]) ([]byte, error) {
	return serialization.Marshal(c, a)
}

// UnmarshalArray decodes an array written by MarshalArray.
func UnmarshalArray[A any, D Dimension](c Codec, b []byte) (*Array[A, D], error) {
	return serialization.Unmarshal[A, D](c, b)
}

// EncodeArray writes a to w.
func EncodeArray[A any, D Dimension](w io.Writer, c Codec, a Data[A, D]) error {
	return serialization.Encode(w, c, a)
}

// DecodeArray reads one array from r.
func DecodeArray[A any, D Dimension](r io.Reader, c Codec) (*Array[A, D], error) {
	return serialization.Decode[A, D](r, c)
}

// ParallelConfig controls the worker pool of the Par* functions.
type ParallelConfig = parallel.Config

// DefaultParallelConfig reads NDARRAY_NUM_THREADS and NDARRAY_MIN_CHUNK.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// ParMapInPlace replaces every element x of a with f(x), splitting the work
// over disjoint parts of a.
func ParMapInPlace[A any, D Dimension](ctx context.Context, a DataMut[A, D], cfg ParallelConfig, f func(A) A) error {
	return parallel.MapInPlace(ctx, a, cfg, f)
}

// ParZipMutWith is ZipMutWith split over disjoint parts of dst.
func ParZipMutWith[A, B any, D Dimension](ctx context.Context, dst DataMut[A, D], src Source[B], cfg ParallelConfig, f func(*A, B)) error {
	return parallel.ZipMutWith(ctx, dst, src, cfg, f)
}

// ParSum adds every element using one partial sum per worker.
func ParSum[A Number, D Dimension](ctx context.Context, a Data[A, D], cfg ParallelConfig) (A, error) {
	return parallel.Sum(ctx, a, cfg)
}
