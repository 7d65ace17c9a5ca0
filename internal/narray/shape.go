package narray

import "fmt"

// Shape represents the per-axis extents of a ranked container.
type Shape []int

// NumElements returns the total number of elements a shape addresses.
// A zero extent on any axis yields 0 (an empty container, not an error).
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that no extent is negative. Zero extents are legal and
// produce an empty container.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid extent at axis %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Strides computes the stride of each axis under the canonical layout:
// the first axis varies fastest, so stride[0] = 1 and
// stride[i] = stride[i-1] * s[i-1].
//
// The flat offset of coordinates (x0, ..., xR-1) is then
// x0 + x1*d0 + x2*d0*d1 + ... — the same formula for every rank.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	strides[0] = 1
	for i := 1; i < len(s); i++ {
		strides[i] = strides[i-1] * s[i-1]
	}
	return strides
}

// String renders the shape as (d0, d1, ...).
func (s Shape) String() string {
	out := "("
	for i, dim := range s {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%d", dim)
	}
	return out + ")"
}
