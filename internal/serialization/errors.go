package serialization

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrMissingField       = errors.New("missing field")
	ErrSizeMismatch       = errors.New("data and dimension must match in size")
	ErrUnknownCodec       = errors.New("unknown codec")
)

// ValidationError provides detailed information about a rejected record.
type ValidationError struct {
	Field   string // Field involved ("v", "dim" or "data")
	Err     error  // One of the common errors
	Details string // Additional details
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Field, e.Err, e.Details)
}

// Unwrap returns the underlying common error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
