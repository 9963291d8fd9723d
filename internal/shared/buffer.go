// Package shared implements the reference-counted storage behind lazy
// strings.
//
// A Buffer owns a contiguous run of elements followed by exactly one zero
// terminator. Any number of string values may hold the same Buffer; each
// holder accounts for itself with Retain and Release. The count is a plain
// int: holders sharing a Buffer must not be used from different goroutines
// without external synchronization.
package shared

// Element is the set of storage element types: narrow bytes and UTF-16 code
// units.
type Element interface {
	byte | uint16
}

// Buffer is a terminated element array plus the number of holders that
// currently reference it.
type Buffer[E Element] struct {
	data []E // len(data) == n+1, data[n] == 0
	refs int
}

// New allocates a zero-filled buffer with room for n content elements and
// a single holder.
func New[E Element](n int) *Buffer[E] {
	return &Buffer[E]{data: make([]E, n+1), refs: 1}
}

// From allocates a buffer holding the first n elements of src and a single
// holder. Elements of src past n are ignored; missing ones stay zero.
func From[E Element](src []E, n int) *Buffer[E] {
	b := New[E](n)
	copy(b.data[:n], src)
	return b
}

// Len returns the number of content elements, excluding the terminator.
func (b *Buffer[E]) Len() int {
	return len(b.data) - 1
}

// Data returns the storage including the terminator.
func (b *Buffer[E]) Data() []E {
	return b.data
}

// Content returns the storage without the terminator.
func (b *Buffer[E]) Content() []E {
	return b.data[:len(b.data)-1]
}

// Refs returns the current holder count.
func (b *Buffer[E]) Refs() int {
	return b.refs
}

// Unique reports whether exactly one holder references b. Only a uniquely
// held buffer may be written in place.
func (b *Buffer[E]) Unique() bool {
	return b.refs == 1
}

// Retain records an additional holder and returns b.
func (b *Buffer[E]) Retain() *Buffer[E] {
	b.refs++
	return b
}

// Release drops one holder. It reports whether that was the last one, after
// which the buffer must not be used again.
func (b *Buffer[E]) Release() bool {
	if b.refs <= 0 {
		panic("shared: release of unreferenced buffer")
	}
	b.refs--
	if b.refs == 0 {
		b.data = nil
		return true
	}
	return false
}

// Clone returns a uniquely held copy of b's content and terminator. The
// holder count of b is not changed.
func (b *Buffer[E]) Clone() *Buffer[E] {
	return From(b.data, b.Len())
}
