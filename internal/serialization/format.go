package serialization

import (
	"fmt"
	"strings"
)

// FormatVersion is written to the "v" field and is the only version read.
const FormatVersion uint8 = 1

// Codec selects the wire encoding.
type Codec int

// Codecs.
const (
	JSON Codec = iota
	CBOR
)

// String returns the codec name.
func (c Codec) String() string {
	switch c {
	case JSON:
		return "json"
	case CBOR:
		return "cbor"
	default:
		return fmt.Sprintf("Codec(%d)", int(c))
	}
}

// ParseCodec maps a name such as "json" or "CBOR" to its codec.
func ParseCodec(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case "json":
		return JSON, nil
	case "cbor":
		return CBOR, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
}

// record is the encoded form. Pointer fields tell a missing field apart
// from a zero one.
type record[A any] struct {
	V    *uint8 `json:"v" cbor:"v"`
	Dim  *[]int `json:"dim" cbor:"dim"`
	Data *[]A   `json:"data" cbor:"data"`
}
