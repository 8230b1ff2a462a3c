package ndarray

import (
	"fmt"
	"unsafe"

	"github.com/born-ml/ndarray/internal/dimension"
)

// broadcastTo returns the layout of b stretched to shape.
func (b *base[A, D]) broadcastTo(shape []int) (base[A, dimension.IxDyn], error) {
	strides, err := dimension.UpcastStrides(shape, b.shape, b.strides)
	if err != nil {
		return base[A, dimension.IxDyn]{}, err
	}
	return newBase[A, dimension.IxDyn](b.data, append([]int(nil), shape...), strides, b.offset), nil
}

// overlapping reports whether a and b can reach a common element. Only
// operands of the same element type can share memory; their reachable
// ranges are compared as addresses in one backing array.
func overlapping[A, B any, D, E dimension.Dimension](a *base[A, D], b *base[B, E]) bool {
	bd, ok := any(b.data).([]A)
	if !ok || len(a.data) == 0 || len(bd) == 0 {
		return false
	}
	fa, ok := dimension.FootprintOf(a.shape, a.strides)
	if !ok {
		return false
	}
	fb, ok := dimension.FootprintOf(b.shape, b.strides)
	if !ok {
		return false
	}
	size := int(unsafe.Sizeof(a.data[0]))
	if size == 0 {
		return false
	}
	pa := int(uintptr(unsafe.Pointer(unsafe.SliceData(a.data))))
	pb := int(uintptr(unsafe.Pointer(unsafe.SliceData(bd))))
	if (pb-pa)%size != 0 {
		return false
	}
	shift := (pb - pa) / size
	return fa.Shift(a.offset).Overlaps(fb.Shift(b.offset + shift))
}

// SharesMemory reports whether a and b may reach a common element, so that
// writing through one can change what the other reads.
func SharesMemory[A, B any](a Source[A], b Source[B]) bool {
	return overlapping(&a.IntoDyn().base, &b.IntoDyn().base)
}

// zipInto walks dst and src (broadcast to dst's shape) in a shared order,
// calling f with a pointer into dst and the matching src element. A src that
// shares memory with dst is copied first, so every read sees the elements
// as they were before the call.
func zipInto[A, B any, D dimension.Dimension](dst *base[A, D], src *base[B, dimension.IxDyn], f func(*A, B)) error {
	if overlapping(dst, src) {
		src = &src.ToOwned().base
	}
	s, err := src.broadcastTo(dst.shape)
	if err != nil {
		return fmt.Errorf("zip: %w", err)
	}
	walk(dst.shape, [][]int{dst.strides, s.strides}, []int{dst.offset, s.offset}, walkShared,
		func(offs, steps []int, n int) bool {
			od, os := offs[0], offs[1]
			sd, ss := steps[0], steps[1]
			for i := 0; i < n; i++ {
				f(&dst.data[od], s.data[os])
				od += sd
				os += ss
			}
			return true
		})
	return nil
}

// ZipMutWith calls f on every element of dst together with the element of
// src at the same position. src is broadcast to dst's shape; dst itself is
// never stretched.
func ZipMutWith[A, B any, D dimension.Dimension](dst DataMut[A, D], src Source[B], f func(*A, B)) error {
	v := dst.ViewMut()
	return zipInto(&v.base, &src.IntoDyn().base, f)
}

// Zip2 calls f on the elements of a and b at every position of their
// broadcast shape, in a shared traversal order.
func Zip2[A, B any](a Source[A], b Source[B], f func(A, B)) error {
	va, vb, err := CoBroadcast(a, b)
	if err != nil {
		return err
	}
	walk(va.shape, [][]int{va.strides, vb.strides}, []int{va.offset, vb.offset}, walkShared,
		func(offs, steps []int, n int) bool {
			oa, ob := offs[0], offs[1]
			for i := 0; i < n; i++ {
				f(va.data[oa], vb.data[ob])
				oa += steps[0]
				ob += steps[1]
			}
			return true
		})
	return nil
}

// Zip3 is Zip2 for three operands.
func Zip3[A, B, C any](a Source[A], b Source[B], c Source[C], f func(A, B, C)) error {
	av, bv, cv := a.IntoDyn(), b.IntoDyn(), c.IntoDyn()
	shape, err := dimension.BroadcastAll(av.shape, bv.shape, cv.shape)
	if err != nil {
		return fmt.Errorf("zip: %w", err)
	}
	sa, err := av.broadcastTo(shape)
	if err != nil {
		return err
	}
	sb, err := bv.broadcastTo(shape)
	if err != nil {
		return err
	}
	sc, err := cv.broadcastTo(shape)
	if err != nil {
		return err
	}
	walk(shape, [][]int{sa.strides, sb.strides, sc.strides}, []int{sa.offset, sb.offset, sc.offset}, walkShared,
		func(offs, steps []int, n int) bool {
			oa, ob, oc := offs[0], offs[1], offs[2]
			for i := 0; i < n; i++ {
				f(sa.data[oa], sb.data[ob], sc.data[oc])
				oa += steps[0]
				ob += steps[1]
				oc += steps[2]
			}
			return true
		})
	return nil
}

// Map2 builds a new row-major array of the broadcast shape of a and b whose
// elements are f applied to the paired elements.
func Map2[A, B, C any](a Source[A], b Source[B], f func(A, B) C) (*Array[C, dimension.IxDyn], error) {
	va, vb, err := CoBroadcast(a, b)
	if err != nil {
		return nil, err
	}
	out, err := Zeros[C](dimension.Dim(va.shape...))
	if err != nil {
		return nil, err
	}
	walk(va.shape, [][]int{va.strides, vb.strides, out.strides}, []int{va.offset, vb.offset, 0}, walkShared,
		func(offs, steps []int, n int) bool {
			oa, ob, oc := offs[0], offs[1], offs[2]
			for i := 0; i < n; i++ {
				out.data[oc] = f(va.data[oa], vb.data[ob])
				oa += steps[0]
				ob += steps[1]
				oc += steps[2]
			}
			return true
		})
	return out, nil
}

// CoBroadcast stretches a and b to their common broadcast shape.
func CoBroadcast[A, B any](a Source[A], b Source[B]) (*ArrayView[A, dimension.IxDyn], *ArrayView[B, dimension.IxDyn], error) {
	av, bv := a.IntoDyn(), b.IntoDyn()
	shape, _, err := dimension.BroadcastShapes(av.shape, bv.shape)
	if err != nil {
		return nil, nil, fmt.Errorf("co-broadcast: %w", err)
	}
	sa, err := av.broadcastTo(shape)
	if err != nil {
		return nil, nil, err
	}
	sb, err := bv.broadcastTo(shape)
	if err != nil {
		return nil, nil, err
	}
	return &ArrayView[A, dimension.IxDyn]{base: sa}, &ArrayView[B, dimension.IxDyn]{base: sb}, nil
}

// Fill sets every element to x.
func (v *ArrayViewMut[A, D]) Fill(x A) {
	v.MapInPlace(func(p *A) { *p = x })
}

// Assign copies src into the view, broadcasting src to the view's shape. It
// fails with IncompatibleShape when src cannot be broadcast.
func (v *ArrayViewMut[A, D]) Assign(src Source[A]) error {
	return zipInto(&v.base, &src.IntoDyn().base, func(d *A, s A) { *d = s })
}

// MapInPlace calls f on a pointer to every element, in no particular order.
func (v *ArrayViewMut[A, D]) MapInPlace(f func(*A)) {
	walk(v.shape, [][]int{v.strides}, []int{v.offset}, walkAny, func(offs, steps []int, n int) bool {
		o, s := offs[0], steps[0]
		if s == 1 {
			seg := v.data[o : o+n]
			for i := range seg {
				f(&seg[i])
			}
			return true
		}
		for i := 0; i < n; i++ {
			f(&v.data[o])
			o += s
		}
		return true
	})
}

// MapvInPlace replaces every element x with f(x), in no particular order.
func (v *ArrayViewMut[A, D]) MapvInPlace(f func(A) A) {
	v.MapInPlace(func(p *A) { *p = f(*p) })
}

// AsSliceMut returns the elements as a writable slice when the view is
// row-major contiguous.
func (v *ArrayViewMut[A, D]) AsSliceMut() ([]A, bool) {
	return v.AsSlice()
}
