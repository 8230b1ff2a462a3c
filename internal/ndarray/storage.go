package ndarray

import "sync/atomic"

// buffer is a reference-counted element buffer for copy-on-write sharing.
// Handles that share a buffer each hold one reference; a buffer with a
// single reference may be written in place.
type buffer[A any] struct {
	data     []A
	refCount atomic.Int32
}

// newBuffer wraps data (without copying) in a buffer with refCount = 1.
func newBuffer[A any](data []A) *buffer[A] {
	buf := &buffer[A]{data: data}
	buf.refCount.Store(1)
	return buf
}

// addRef increments the reference count (for Clone operations).
func (b *buffer[A]) addRef() {
	b.refCount.Add(1)
}

// release decrements the reference count and drops the data if it reaches 0.
// Views taken earlier keep their own reference to the slice.
func (b *buffer[A]) release() {
	if b.refCount.Add(-1) == 0 {
		b.data = nil
	}
}

// isUnique returns true if this buffer has only one reference.
func (b *buffer[A]) isUnique() bool {
	return b.refCount.Load() == 1
}

// refs returns the current reference count.
func (b *buffer[A]) refs() int {
	return int(b.refCount.Load())
}

// clone copies the elements into a new buffer with refCount = 1.
func (b *buffer[A]) clone() *buffer[A] {
	data := make([]A, len(b.data))
	copy(data, b.data)
	return newBuffer(data)
}
