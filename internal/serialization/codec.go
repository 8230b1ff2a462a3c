package serialization

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/born-ml/ndarray/internal/dimension"
	"github.com/born-ml/ndarray/internal/ndarray"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	decMode, err = cbor.DecOptions{ExtraReturnErrors: cbor.ExtraDecErrorUnknownField}.DecMode()
	if err != nil {
		panic(err)
	}
}

func newRecord[A any, D dimension.Dimension](a ndarray.Data[A, D]) *record[A] {
	v := a.View()
	version := FormatVersion
	dim := append([]int{}, v.Shape()...)
	data := v.ToVec()
	if data == nil {
		data = []A{}
	}
	return &record[A]{V: &version, Dim: &dim, Data: &data}
}

// Marshal encodes a with codec c. Elements are written in row-major order
// whatever a's memory layout.
func Marshal[A any, D dimension.Dimension](c Codec, a ndarray.Data[A, D]) ([]byte, error) {
	r := newRecord(a)
	switch c {
	case JSON:
		return json.Marshal(r)
	case CBOR:
		return encMode.Marshal(r)
	default:
		return nil, fmt.Errorf("marshal: %w: %v", ErrUnknownCodec, c)
	}
}

// Encode writes a to w with codec c.
func Encode[A any, D dimension.Dimension](w io.Writer, c Codec, a ndarray.Data[A, D]) error {
	r := newRecord(a)
	switch c {
	case JSON:
		return json.NewEncoder(w).Encode(r)
	case CBOR:
		return encMode.NewEncoder(w).Encode(r)
	default:
		return fmt.Errorf("encode: %w: %v", ErrUnknownCodec, c)
	}
}

// Unmarshal decodes an array encoded with codec c. It fails when a field is
// missing or unknown, when the version is not FormatVersion, when the
// element count does not match dim, and with IncompatibleShape when D has a
// fixed rank other than len(dim).
func Unmarshal[A any, D dimension.Dimension](c Codec, b []byte) (*ndarray.Array[A, D], error) {
	return Decode[A, D](bytes.NewReader(b), c)
}

// Decode reads one array from r. The decoder may read past the end of the
// value, so r should hold a single encoded array.
func Decode[A any, D dimension.Dimension](r io.Reader, c Codec) (*ndarray.Array[A, D], error) {
	var rec record[A]
	switch c {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case CBOR:
		if err := decMode.NewDecoder(r).Decode(&rec); err != nil {
			return nil, fmt.Errorf("decode cbor: %w", err)
		}
	default:
		return nil, fmt.Errorf("decode: %w: %v", ErrUnknownCodec, c)
	}
	return build[A, D](&rec)
}

func build[A any, D dimension.Dimension](r *record[A]) (*ndarray.Array[A, D], error) {
	if err := validate(r); err != nil {
		return nil, err
	}
	a, err := ndarray.FromShapeVec(dimension.Dim(*r.Dim...), *r.Data)
	if err != nil {
		return nil, err
	}
	return ndarray.IntoDimensionalityOwned[D](a)
}
