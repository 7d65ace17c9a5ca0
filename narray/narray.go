// Package narray provides the public API for the dense N-dimensional
// array family.
//
// The package defines a flat base container and ranked views over it:
//   - Array[T]: flat resizable buffer with scalar reductions
//   - Dense[T]: rank-parameterized container with multi-axis indexing
//   - Matrix[T], Cube[T], Tesseract[T]: fixed-arity 2D/3D/4D wrappers
//
// Example:
//
//	m := narray.NewMatrix[float64](20, 30)
//	m.Set(3.5, 4, 7)
//	total := m.Sum()
package narray

import (
	"github.com/narray-ml/narray/internal/narray"
)

// Type aliases for the public API

// Number is the constraint for supported element types.
// Supported types: float32, float64, int32, int64, uint8.
type Number = narray.Number

// DataType represents runtime type information for array elements.
type DataType = narray.DataType

// Data type constants.
const (
	Float32 DataType = narray.Float32
	Float64 DataType = narray.Float64
	Int32   DataType = narray.Int32
	Int64   DataType = narray.Int64
	Uint8   DataType = narray.Uint8
)

// Shape represents the per-axis extents of a ranked container.
// Example: Shape{20, 30} describes a 20x30 matrix.
type Shape = narray.Shape

// Array is a flat, resizable container of numeric elements.
//
// The buffer is exclusively owned: Assign and Clone deep-copy, Take
// transfers ownership and leaves the source empty. Resize preserves
// existing values and zero-fills any grown region. Reductions (Sum, Mean,
// Min, Max) return the element type's zero value on an empty container.
type Array[T Number] = narray.Array[T]

// Dense is a rank-parameterized dense container layering multi-axis
// indexing over the flat buffer. The first axis varies fastest. Resize is
// destructive: the buffer is zero-filled and the extents replaced.
type Dense[T Number] = narray.Dense[T]

// Matrix is a dense 2D container.
type Matrix[T Number] = narray.Matrix[T]

// Cube is a dense 3D container.
type Cube[T Number] = narray.Cube[T]

// Tesseract is a dense 4D container.
type Tesseract[T Number] = narray.Tesseract[T]

// Creation functions

// New creates an Array with n zero-valued elements.
//
// Example:
//
//	a := narray.New[float64](128)
func New[T Number](n int) *Array[T] {
	return narray.New[T](n)
}

// FromSlice creates an Array that copies the given slice.
//
// Example:
//
//	a := narray.FromSlice([]float64{1, 2, 3})
func FromSlice[T Number](values []T) *Array[T] {
	return narray.FromSlice(values)
}

// NewDense creates a zero-filled container with the given extents.
// Any zero extent yields an empty container without error.
//
// Example:
//
//	d := narray.NewDense[float32](2, 3, 4)
func NewDense[T Number](dims ...int) *Dense[T] {
	return narray.NewDense[T](dims...)
}

// NewMatrix creates a zero-filled (d0 x d1) matrix.
func NewMatrix[T Number](d0, d1 int) *Matrix[T] {
	return narray.NewMatrix[T](d0, d1)
}

// NewCube creates a zero-filled (d0 x d1 x d2) cube.
func NewCube[T Number](d0, d1, d2 int) *Cube[T] {
	return narray.NewCube[T](d0, d1, d2)
}

// NewTesseract creates a zero-filled (d0 x d1 x d2 x d3) tesseract.
func NewTesseract[T Number](d0, d1, d2, d3 int) *Tesseract[T] {
	return narray.NewTesseract[T](d0, d1, d2, d3)
}

// Utility functions

// InferDataType infers the DataType of a generic element type T.
func InferDataType[T Number](dummy T) DataType {
	return narray.InferDataType(dummy)
}

// ParseDataType converts a dtype name to a DataType.
func ParseDataType(s string) (DataType, bool) {
	return narray.ParseDataType(s)
}
