// Package serialization encodes arrays as a version, a shape and the
// elements in row-major order:
//
//	{"v": 1, "dim": [2, 3], "data": [0, 1, 2, 3, 4, 5]}
//
// The same three fields are written as a CBOR map by the CBOR codec. Any
// memory layout can be written; decoding always yields a standard layout
// array.
//
// Example usage:
//
//	buf, err := serialization.Marshal(serialization.JSON, a)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	b, err := serialization.Unmarshal[float64, dimension.Ix2](serialization.JSON, buf)
package serialization
