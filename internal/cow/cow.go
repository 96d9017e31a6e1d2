// Package cow implements a copy-on-write typed array over a byte slice,
// ported from sudachi.rs's util::cow_array::CowArray.
//
// A dictionary's connection-cost matrix and word-params table are
// reinterpreted in place from the mapped byte blob whenever the source
// bytes already satisfy the element type's alignment (zero-copy
// borrow); when they don't (the lexicon's internal sections are
// variable-length and not guaranteed aligned), the bytes are decoded
// once into an owned slice. Either way Array[T] reads like a plain
// []T; Set additionally upgrades a borrowed array to owned on first
// write, which is how the connection-cost-override plugins rewrite
// matrix entries without mutating the backing mmap.
package cow

import (
	"unsafe"
)

// Elem is the set of element types the dictionary format stores in
// fixed-width little-endian arrays.
type Elem interface {
	~int16 | ~uint32
}

// Array is a copy-on-write slice of T: it starts as a zero-copy borrow
// over someone else's bytes and, on first Set, upgrades to an owned
// backing slice it never shares again.
type Array[T Elem] struct {
	slice   []T
	owned   []T
	isOwned bool
}

// FromBytes builds an Array[T] over data[offset : offset+size*sizeof(T)],
// borrowing without copying when the slice is already aligned for T and
// copying element-by-element (decoding little-endian) otherwise.
func FromBytes[T Elem](data []byte, offset, size int) Array[T] {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	span := data[offset : offset+size*elemSize]

	ptr := unsafe.Pointer(unsafe.SliceData(span))
	if uintptr(ptr)%uintptr(elemSize) == 0 {
		return Array[T]{slice: unsafe.Slice((*T)(ptr), size)}
	}

	owned := make([]T, size)
	for i := 0; i < size; i++ {
		owned[i] = decodeLE[T](span[i*elemSize : (i+1)*elemSize])
	}
	return Array[T]{slice: owned, owned: owned, isOwned: true}
}

// FromOwned wraps an already-owned slice; Set never needs to copy it
// since the caller has already handed over sole ownership.
func FromOwned[T Elem](data []T) Array[T] {
	return Array[T]{slice: data, owned: data, isOwned: true}
}

// Len reports the number of elements.
func (a *Array[T]) Len() int { return len(a.slice) }

// Get returns the element at index i.
func (a *Array[T]) Get(i int) T { return a.slice[i] }

// Slice returns the whole backing slice for bulk iteration.
func (a *Array[T]) Slice() []T { return a.slice }

// Set writes value at index i, upgrading the array to an owned copy on
// the first call if it was still a borrow.
func (a *Array[T]) Set(i int, value T) {
	if !a.isOwned {
		owned := make([]T, len(a.slice))
		copy(owned, a.slice)
		a.owned = owned
		a.slice = owned
		a.isOwned = true
	}
	a.slice[i] = value
}

func decodeLE[T Elem](b []byte) T {
	var v any
	switch any(T(0)).(type) {
	case int16:
		v = int16(uint16(b[0]) | uint16(b[1])<<8)
	case uint32:
		v = uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	}
	return v.(T)
}
