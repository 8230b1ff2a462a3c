package dimension

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSlice parses a slice specification written in Python notation, such
// as "1:, ::-1, 0" or "[..., newaxis]", for an array with ndim axes.
//
// Each comma-separated element is a range "start:end:step" (any part may be
// omitted), an integer index, "newaxis" (or "None"), or at most one "..."
// which expands to as many full ranges as needed. Missing trailing elements
// are full ranges.
func ParseSlice(s string, ndim int) ([]SliceInfoElem, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	var parts []string
	if strings.TrimSpace(s) != "" {
		parts = strings.Split(s, ",")
	}

	elems := make([]SliceInfoElem, 0, len(parts))
	ellipsis := -1
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "..." {
			if ellipsis >= 0 {
				return nil, NewError(InvalidSlice, "more than one ellipsis in "+strconv.Quote(s))
			}
			ellipsis = len(elems)
			continue
		}
		e, err := parseElem(p)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}

	missing := ndim - SliceInNDim(elems)
	if missing < 0 {
		return nil, NewError(InvalidSlice,
			fmt.Sprintf("%q indexes %d axes, array has %d", s, SliceInNDim(elems), ndim))
	}
	fill := make([]SliceInfoElem, missing)
	for i := range fill {
		fill[i] = Full()
	}
	if ellipsis < 0 {
		return append(elems, fill...), nil
	}
	out := make([]SliceInfoElem, 0, len(elems)+missing)
	out = append(out, elems[:ellipsis]...)
	out = append(out, fill...)
	return append(out, elems[ellipsis:]...), nil
}

func parseElem(p string) (SliceInfoElem, error) {
	switch p {
	case "newaxis", "None":
		return NewAxis(), nil
	case "":
		return SliceInfoElem{}, NewError(InvalidSlice, "empty slice element")
	}
	if !strings.Contains(p, ":") {
		i, err := strconv.Atoi(p)
		if err != nil {
			return SliceInfoElem{}, fmt.Errorf("%w: index %q: %v", ErrInvalidSlice, p, err)
		}
		return Index(i), nil
	}
	fields := strings.Split(p, ":")
	if len(fields) > 3 {
		return SliceInfoElem{}, NewError(InvalidSlice, fmt.Sprintf("too many colons in %q", p))
	}
	e := Full()
	var err error
	if f := strings.TrimSpace(fields[0]); f != "" {
		if e.Start, err = strconv.Atoi(f); err != nil {
			return SliceInfoElem{}, fmt.Errorf("%w: start %q: %v", ErrInvalidSlice, f, err)
		}
	}
	if f := strings.TrimSpace(fields[1]); f != "" {
		if e.End, err = strconv.Atoi(f); err != nil {
			return SliceInfoElem{}, fmt.Errorf("%w: end %q: %v", ErrInvalidSlice, f, err)
		}
		e.HasEnd = true
	}
	if len(fields) == 3 {
		if f := strings.TrimSpace(fields[2]); f != "" {
			if e.Step, err = strconv.Atoi(f); err != nil {
				return SliceInfoElem{}, fmt.Errorf("%w: step %q: %v", ErrInvalidSlice, f, err)
			}
			if e.Step == 0 {
				return SliceInfoElem{}, NewError(InvalidSlice, "slice step must not be zero")
			}
		}
	}
	return e, nil
}
