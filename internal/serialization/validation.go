package serialization

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/dimension"
)

// validate checks a decoded record before any array is built from it.
func validate[A any](r *record[A]) error {
	switch {
	case r.V == nil:
		return &ValidationError{Field: "v", Err: ErrMissingField}
	case r.Dim == nil:
		return &ValidationError{Field: "dim", Err: ErrMissingField}
	case r.Data == nil:
		return &ValidationError{Field: "data", Err: ErrMissingField}
	}

	if *r.V != FormatVersion {
		return &ValidationError{
			Field:   "v",
			Err:     ErrUnsupportedVersion,
			Details: fmt.Sprintf("unknown array version: %d", *r.V),
		}
	}

	size, err := dimension.SizeChecked(*r.Dim)
	if err != nil {
		return &ValidationError{Field: "dim", Err: err}
	}
	if size != len(*r.Data) {
		return &ValidationError{
			Field:   "data",
			Err:     ErrSizeMismatch,
			Details: fmt.Sprintf("dim %v holds %d elements, got %d", *r.Dim, size, len(*r.Data)),
		}
	}
	return nil
}
