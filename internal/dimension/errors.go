package dimension

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a ShapeError.
type ErrorKind int

// Error kinds.
const (
	IncompatibleShape ErrorKind = iota + 1
	IncompatibleLayout
	RangeLimited
	OutOfBounds
	Unsupported
	Overflow
	InvalidSlice
)

// Sentinel errors, one per ErrorKind. A *ShapeError matches its kind's
// sentinel with errors.Is.
var (
	ErrIncompatibleShape  = errors.New("incompatible shapes")
	ErrIncompatibleLayout = errors.New("incompatible memory layout")
	ErrRangeLimited       = errors.New("the shape does not fit inside type limits")
	ErrOutOfBounds        = errors.New("out of bounds indexing")
	ErrUnsupported        = errors.New("unsupported operation: aliasing array elements")
	ErrOverflow           = errors.New("arithmetic overflow computing size or offset")
	ErrInvalidSlice       = errors.New("invalid slice specification")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case IncompatibleShape:
		return ErrIncompatibleShape
	case IncompatibleLayout:
		return ErrIncompatibleLayout
	case RangeLimited:
		return ErrRangeLimited
	case OutOfBounds:
		return ErrOutOfBounds
	case Unsupported:
		return ErrUnsupported
	case Overflow:
		return ErrOverflow
	case InvalidSlice:
		return ErrInvalidSlice
	default:
		return nil
	}
}

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case IncompatibleShape:
		return "IncompatibleShape"
	case IncompatibleLayout:
		return "IncompatibleLayout"
	case RangeLimited:
		return "RangeLimited"
	case OutOfBounds:
		return "OutOfBounds"
	case Unsupported:
		return "Unsupported"
	case Overflow:
		return "Overflow"
	case InvalidSlice:
		return "InvalidSlice"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ShapeError is the recoverable error returned by shape, layout and slicing
// operations.
type ShapeError struct {
	Kind    ErrorKind
	Shapes  [][]int // Operand shapes involved, when known.
	Details string
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.sentinel().Error())
	if len(e.Shapes) > 0 {
		b.WriteString(":")
		for i, s := range e.Shapes {
			if i > 0 {
				b.WriteString(" vs")
			}
			fmt.Fprintf(&b, " %v", s)
		}
	}
	if e.Details != "" {
		b.WriteString(": ")
		b.WriteString(e.Details)
	}
	return b.String()
}

// Unwrap returns the sentinel for the error's kind.
func (e *ShapeError) Unwrap() error {
	return e.Kind.sentinel()
}

// NewError creates a ShapeError of the given kind.
func NewError(kind ErrorKind, details string, shapes ...[]int) *ShapeError {
	cloned := make([][]int, len(shapes))
	for i, s := range shapes {
		cloned[i] = append([]int(nil), s...)
	}
	return &ShapeError{Kind: kind, Shapes: cloned, Details: details}
}

// KindOf reports the ErrorKind carried by err, or 0 if err is not a ShapeError.
func KindOf(err error) ErrorKind {
	var se *ShapeError
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}

// IndexError is the panic value raised by checked indexing when a position
// is outside its axis. It is a programmer error, not a recoverable condition.
type IndexError struct {
	Axis  int
	Index int
	Len   int
	Shape []int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d is out of bounds for axis %d with length %d (shape %v)",
		e.Index, e.Axis, e.Len, e.Shape)
}

// Unwrap lets errors.Is(err, ErrOutOfBounds) match recovered index panics.
func (e *IndexError) Unwrap() error {
	return ErrOutOfBounds
}
