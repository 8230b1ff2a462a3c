package serialization

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/internal/dimension"
	"github.com/born-ml/ndarray/internal/ndarray"
)

func sample(t *testing.T) *ndarray.Array[int, dimension.Ix2] {
	t.Helper()
	a, err := ndarray.FromShapeVec(dimension.Ix2{2, 3}, []int{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)
	return a
}

func TestMarshalJSON(t *testing.T) {
	a := sample(t)

	b, err := Marshal[int, dimension.Ix2](JSON, a.T())
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":1,"dim":[3,2],"data":[0,3,1,4,2,5]}`, string(b))

	empty, err := ndarray.Zeros[int](dimension.Ix2{0, 3})
	require.NoError(t, err)
	b, err = Marshal[int, dimension.Ix2](JSON, empty)
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":1,"dim":[0,3],"data":[]}`, string(b))

	b, err = Marshal[float64, dimension.Ix0](JSON, ndarray.Scalar(2.5))
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":1,"dim":[],"data":[2.5]}`, string(b))
}

func TestRoundTrip(t *testing.T) {
	c, err := ndarray.FromShapeVecOrder(dimension.Ix2{2, 3}, dimension.ColumnMajor, []int{0, 3, 1, 4, 2, 5})
	require.NoError(t, err)

	tests := []struct {
		name string
		src  *ndarray.ArrayView[int, dimension.Ix2]
	}{
		{"standard", sample(t).View()},
		{"transposed", sample(t).T()},
		{"column major", c.View()},
	}

	for _, codec := range []Codec{JSON, CBOR} {
		for _, tt := range tests {
			t.Run(codec.String()+"/"+tt.name, func(t *testing.T) {
				b, err := Marshal[int, dimension.Ix2](codec, tt.src)
				require.NoError(t, err)

				got, err := Unmarshal[int, dimension.Ix2](codec, b)
				require.NoError(t, err)
				assert.Equal(t, tt.src.Dim(), got.Dim())
				assert.Equal(t, tt.src.ToVec(), got.ToVec())
				assert.True(t, got.IsStandardLayout())
			})
		}
	}
}

func TestUnmarshalDynamic(t *testing.T) {
	got, err := Unmarshal[float32, dimension.IxDyn](JSON, []byte(`{"v":1,"dim":[2,1,2],"data":[1,2,3,4]}`))
	require.NoError(t, err)
	assert.Equal(t, dimension.Dim(2, 1, 2), got.Shape())
	assert.Equal(t, []float32{1, 2, 3, 4}, got.ToVec())

	scalar, err := Unmarshal[int, dimension.Ix0](JSON, []byte(`{"v":1,"dim":[],"data":[7]}`))
	require.NoError(t, err)
	assert.Equal(t, 7, scalar.At(dimension.Ix0{}))
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
		field string
	}{
		{"missing version", `{"dim":[2],"data":[1,2]}`, ErrMissingField, "v"},
		{"missing dim", `{"v":1,"data":[1,2]}`, ErrMissingField, "dim"},
		{"null data", `{"v":1,"dim":[2],"data":null}`, ErrMissingField, "data"},
		{"future version", `{"v":2,"dim":[2],"data":[1,2]}`, ErrUnsupportedVersion, "v"},
		{"too few elements", `{"v":1,"dim":[2,2],"data":[1,2,3]}`, ErrSizeMismatch, "data"},
		{"too many elements", `{"v":1,"dim":[0],"data":[1]}`, ErrSizeMismatch, "data"},
		{"negative axis", `{"v":1,"dim":[-1],"data":[]}`, dimension.ErrRangeLimited, "dim"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal[int, dimension.IxDyn](JSON, []byte(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestUnmarshalVersionDetails(t *testing.T) {
	_, err := Unmarshal[int, dimension.IxDyn](JSON, []byte(`{"v":3,"dim":[],"data":[0]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown array version: 3")
}

func TestUnmarshalUnknownField(t *testing.T) {
	_, err := Unmarshal[int, dimension.IxDyn](JSON, []byte(`{"v":1,"dim":[1],"data":[1],"order":"C"}`))
	assert.Error(t, err)

	b, err := cbor.Marshal(map[string]any{"v": 1, "dim": []int{1}, "data": []int{1}, "order": "C"})
	require.NoError(t, err)
	_, err = Unmarshal[int, dimension.IxDyn](CBOR, b)
	assert.Error(t, err)
}

func TestUnmarshalRankMismatch(t *testing.T) {
	b, err := Marshal[int, dimension.Ix2](CBOR, sample(t))
	require.NoError(t, err)

	_, err = Unmarshal[int, dimension.Ix3](CBOR, b)
	assert.True(t, errors.Is(err, dimension.ErrIncompatibleShape))

	dyn, err := Unmarshal[int, dimension.IxDyn](CBOR, b)
	require.NoError(t, err)
	assert.Equal(t, dimension.Dim(2, 3), dyn.Shape())
}

func TestEncodeDecode(t *testing.T) {
	for _, codec := range []Codec{JSON, CBOR} {
		t.Run(codec.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode[int, dimension.Ix2](&buf, codec, sample(t).T()))

			got, err := Decode[int, dimension.Ix2](&buf, codec)
			require.NoError(t, err)
			assert.Equal(t, dimension.Ix2{3, 2}, got.Dim())
			assert.Equal(t, []int{0, 3, 1, 4, 2, 5}, got.ToVec())
		})
	}
}

func TestCBORIsCanonical(t *testing.T) {
	a, err := Marshal[int, dimension.Ix2](CBOR, sample(t))
	require.NoError(t, err)
	b, err := Marshal[int, dimension.Ix2](CBOR, sample(t).T().T())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParseCodec(t *testing.T) {
	tests := []struct {
		in   string
		want Codec
	}{
		{"json", JSON},
		{"JSON", JSON},
		{"cbor", CBOR},
		{"Cbor", CBOR},
	}
	for _, tt := range tests {
		got, err := ParseCodec(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseCodec("yaml")
	assert.True(t, errors.Is(err, ErrUnknownCodec))
	assert.True(t, strings.Contains(err.Error(), `"yaml"`))
}

func TestUnknownCodec(t *testing.T) {
	_, err := Marshal[int, dimension.Ix2](Codec(9), sample(t))
	assert.True(t, errors.Is(err, ErrUnknownCodec))

	err = Encode[int, dimension.Ix2](&bytes.Buffer{}, Codec(9), sample(t))
	assert.True(t, errors.Is(err, ErrUnknownCodec))

	_, err = Unmarshal[int, dimension.Ix2](Codec(9), nil)
	assert.True(t, errors.Is(err, ErrUnknownCodec))

	assert.Equal(t, "Codec(9)", Codec(9).String())
}
