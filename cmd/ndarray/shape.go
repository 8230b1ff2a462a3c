package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/ndarray"
)

// parseInts reads "2,3,4", "2x3x4" or "[2, 3, 4]". The empty string and
// "[]" are the zero-dimensional shape.
func parseInts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	if strings.TrimSpace(s) == "" {
		return []int{}, nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == 'x' || r == ' '
	})
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid axis %q in %q", f, s)
		}
		out[i] = n
	}
	return out, nil
}

func parseShape(s string) (ndarray.Shape, error) {
	axes, err := parseInts(s)
	if err != nil {
		return nil, err
	}
	for i, n := range axes {
		if n < 0 {
			return nil, fmt.Errorf("axis %d has negative length %d", i, n)
		}
	}
	return ndarray.Dim(axes...), nil
}

func parseOrder(s string) (ndarray.Order, error) {
	switch strings.ToLower(s) {
	case "c", "row", "row-major":
		return ndarray.RowMajor, nil
	case "f", "fortran", "col", "column-major":
		return ndarray.ColumnMajor, nil
	default:
		return 0, fmt.Errorf("unknown order %q", s)
	}
}

func orderFlag(cmd *cobra.Command, name string) (ndarray.Order, error) {
	s, err := cmd.Flags().GetString(name)
	if err != nil {
		return 0, err
	}
	return parseOrder(s)
}

func formatInts(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
