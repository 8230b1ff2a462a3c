package ndarray

import (
	"sync"

	"github.com/born-ml/ndarray/internal/dimension"
)

// ArcArray is an array whose elements are shared copy-on-write between
// clones. Clone is cheap; the first write through a handle whose buffer is
// still shared copies the buffer.
//
// A single handle may be used from several goroutines for EnsureUnique and
// Clone; element access through one handle from several goroutines needs
// external synchronization.
type ArcArray[A any, D dimension.Dimension] struct {
	base[A, D]
	buf *buffer[A]
	mu  sync.Mutex
}

// SharedFromShapeVec is FromShapeVec for a shared array.
func SharedFromShapeVec[A any, D dimension.Dimension](shape D, data []A) (*ArcArray[A, D], error) {
	a, err := FromShapeVec(shape, data)
	if err != nil {
		return nil, err
	}
	return a.IntoShared(), nil
}

// Clone returns a new handle sharing the same buffer (just increments the
// reference count).
func (s *ArcArray[A, D]) Clone() *ArcArray[A, D] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf.addRef()
	return &ArcArray[A, D]{base: s.cloneLayout(), buf: s.buf}
}

// Release drops this handle's reference. The handle must not be used
// afterwards.
func (s *ArcArray[A, D]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buf != nil {
		s.buf.release()
	}
	s.buf = nil
	s.base = base[A, D]{}
}

// IsUnique reports whether no other handle shares the buffer.
func (s *ArcArray[A, D]) IsUnique() bool {
	return s.buf.isUnique()
}

// RefCount returns the number of handles sharing the buffer.
func (s *ArcArray[A, D]) RefCount() int {
	return s.buf.refs()
}

// EnsureUnique copies the buffer if it is shared with another handle, so
// that writes through this handle cannot be observed through any other. It
// keeps the strides and offset. Concurrent callers on one handle serialize;
// at most one copy is made per handle.
func (s *ArcArray[A, D]) EnsureUnique() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buf.isUnique() {
		return
	}
	nb := s.buf.clone()
	s.buf.release()
	s.buf = nb
	s.data = nb.data
}

// ViewMut makes the buffer unique and returns a mutable view of it. The
// view does not hold a reference: after a later Clone the buffer is shared
// again and writes through the view reach every clone. Take a new view after
// cloning.
func (s *ArcArray[A, D]) ViewMut() *ArrayViewMut[A, D] {
	s.EnsureUnique()
	return &ArrayViewMut[A, D]{base: s.cloneLayout()}
}

// AsSlice makes the buffer unique and returns the elements as a slice when
// the array is contiguous in row-major order. The slice is writable and, like
// a view from ViewMut, is only private to this handle until the next Clone.
func (s *ArcArray[A, D]) AsSlice() ([]A, bool) {
	return s.AsSliceOrder(dimension.RowMajor)
}

// AsSliceOrder is AsSlice for a contiguous order.
func (s *ArcArray[A, D]) AsSliceOrder(order dimension.Order) ([]A, bool) {
	if !s.IsContiguous(order) {
		return nil, false
	}
	s.EnsureUnique()
	return s.base.AsSliceOrder(order)
}

// AsSliceMemoryOrder is AsSlice for any dense layout, in memory order.
func (s *ArcArray[A, D]) AsSliceMemoryOrder() ([]A, bool) {
	if !dimension.IsDense(s.shape, s.strides) {
		return nil, false
	}
	s.EnsureUnique()
	return s.base.AsSliceMemoryOrder()
}

// IntoShared returns the receiver.
func (s *ArcArray[A, D]) IntoShared() *ArcArray[A, D] {
	return s
}

// IntoOwned converts the handle to an owned array. A unique buffer is taken
// over without copying; a shared one is copied. The handle is released.
func (s *ArcArray[A, D]) IntoOwned() *Array[A, D] {
	s.mu.Lock()
	if s.buf.isUnique() {
		out := &Array[A, D]{base: s.base}
		s.buf = nil
		s.base = base[A, D]{}
		s.mu.Unlock()
		return out
	}
	s.mu.Unlock()
	out := s.ToOwned()
	s.Release()
	return out
}

// Set makes the buffer unique and writes value at index.
func (s *ArcArray[A, D]) Set(index D, value A) {
	s.EnsureUnique()
	s.data[s.offsetChecked(index)] = value
}

// Fill makes the buffer unique and sets every element to v.
func (s *ArcArray[A, D]) Fill(v A) {
	s.ViewMut().Fill(v)
}

// Assign makes the buffer unique and copies src into it, broadcasting src to
// the array's shape.
func (s *ArcArray[A, D]) Assign(src Source[A]) error {
	return s.ViewMut().Assign(src)
}

// MapInPlace makes the buffer unique and calls f on a pointer to every
// element, in no particular order.
func (s *ArcArray[A, D]) MapInPlace(f func(*A)) {
	s.ViewMut().MapInPlace(f)
}

// MapvInPlace makes the buffer unique and replaces every element x with f(x).
func (s *ArcArray[A, D]) MapvInPlace(f func(A) A) {
	s.ViewMut().MapvInPlace(f)
}
