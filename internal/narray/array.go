package narray

import "fmt"

// Array is a flat, resizable container of numeric elements. It owns a
// contiguous buffer that is never aliased between two live containers:
// Assign and Clone deep-copy, Take transfers ownership.
//
// Array is not safe for concurrent mutation; callers sharing one instance
// must serialize access externally.
type Array[T Number] struct {
	data []T
}

// New creates an Array with n zero-valued elements.
// n == 0 yields an empty container without allocation. Negative n panics.
func New[T Number](n int) *Array[T] {
	a := &Array[T]{}
	if n < 0 {
		panic(fmt.Sprintf("narray: negative size %d", n))
	}
	if n > 0 {
		a.data = make([]T, n)
	}
	return a
}

// FromSlice creates an Array that copies the given slice.
func FromSlice[T Number](values []T) *Array[T] {
	a := New[T](len(values))
	copy(a.data, values)
	return a
}

// Len returns the current element count.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// Resize changes the element count to n, preserving existing values at
// indices < min(old, n) and zero-filling any grown region.
// Resizing to the current size is a no-op. An allocation failure surfaces
// as a runtime panic and leaves the previous buffer intact.
func (a *Array[T]) Resize(n int) {
	if n < 0 {
		panic(fmt.Sprintf("narray: negative size %d", n))
	}
	if n == len(a.data) {
		return
	}
	if n == 0 {
		a.data = nil
		return
	}
	grown := make([]T, n)
	copy(grown, a.data)
	a.data = grown
}

// Clear zero-fills the entire buffer without changing the size.
func (a *Array[T]) Clear() {
	clear(a.data)
}

// At returns the element at index i. Panics if i is out of range.
func (a *Array[T]) At(i int) T {
	if i < 0 || i >= len(a.data) {
		panic(fmt.Sprintf("narray: index %d out of range [0, %d)", i, len(a.data)))
	}
	return a.data[i]
}

// Set stores v at index i. Panics if i is out of range.
func (a *Array[T]) Set(i int, v T) {
	if i < 0 || i >= len(a.data) {
		panic(fmt.Sprintf("narray: index %d out of range [0, %d)", i, len(a.data)))
	}
	a.data[i] = v
}

// Assign resizes the container to match src and deep-copies its contents.
func (a *Array[T]) Assign(src *Array[T]) {
	if a == src {
		return
	}
	if len(a.data) != len(src.data) {
		a.data = make([]T, len(src.data))
	}
	copy(a.data, src.data)
}

// Fill sets every element to v.
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Clone returns an independent deep copy.
func (a *Array[T]) Clone() *Array[T] {
	c := New[T](len(a.data))
	copy(c.data, a.data)
	return c
}

// Take transfers buffer ownership to a new Array and leaves the receiver
// empty (Len() == 0, no buffer). No data is copied or reallocated.
func (a *Array[T]) Take() *Array[T] {
	moved := &Array[T]{data: a.data}
	a.data = nil
	return moved
}

// Data returns the underlying buffer as a zero-copy slice view.
// Mutations through the returned slice modify the container.
func (a *Array[T]) Data() []T {
	return a.data
}
