package narray

import "fmt"

// Dense is a rank-parameterized dense container. It layers a shape and a
// canonical linearization over the flat Array buffer; the reduction and
// lifecycle surface is inherited from Array unchanged.
//
// Layout: the first axis varies fastest (see Shape.Strides). One formula
// serves every rank, so 2D/3D/4D wrappers cannot drift apart.
type Dense[T Number] struct {
	Array[T]
	dims   Shape
	stride []int
}

// NewDense creates a zero-filled container with the given extents.
// Any zero extent yields an empty container (Len() == 0) without error.
// Negative extents panic.
func NewDense[T Number](dims ...int) *Dense[T] {
	shape := Shape(dims)
	if err := shape.Validate(); err != nil {
		panic("narray: " + err.Error())
	}
	d := &Dense[T]{
		dims:   shape.Clone(),
		stride: shape.Strides(),
	}
	d.Array = *New[T](shape.NumElements())
	return d
}

// Rank returns the number of axes.
func (d *Dense[T]) Rank() int {
	return len(d.dims)
}

// Dims returns a copy of the per-axis extents.
func (d *Dense[T]) Dims() Shape {
	return d.dims.Clone()
}

// Dim returns the extent along the given axis (0-indexed).
func (d *Dense[T]) Dim(axis int) int {
	if axis < 0 || axis >= len(d.dims) {
		panic(fmt.Sprintf("narray: axis %d out of range for rank %d", axis, len(d.dims)))
	}
	return d.dims[axis]
}

// Offset linearizes the given coordinates into a flat buffer index.
// Panics if the arity does not match the rank or any coordinate is out of
// range for its axis.
func (d *Dense[T]) Offset(ix ...int) int {
	if len(ix) != len(d.dims) {
		panic(fmt.Sprintf("narray: got %d indices for rank %d", len(ix), len(d.dims)))
	}
	offset := 0
	for axis, x := range ix {
		if x < 0 || x >= d.dims[axis] {
			panic(fmt.Sprintf("narray: index %d out of range for axis %d (extent %d)", x, axis, d.dims[axis]))
		}
		offset += x * d.stride[axis]
	}
	return offset
}

// At returns the element at the given coordinates.
func (d *Dense[T]) At(ix ...int) T {
	return d.Array.data[d.Offset(ix...)]
}

// Set stores v at the given coordinates.
func (d *Dense[T]) Set(v T, ix ...int) {
	d.Array.data[d.Offset(ix...)] = v
}

// Resize replaces the container with a zero-filled buffer of the new
// extents. Unlike Array.Resize this is destructive: previous contents are
// discarded entirely, because positions keyed to the old extents would be
// misleading under the new linearization.
func (d *Dense[T]) Resize(dims ...int) {
	shape := Shape(dims)
	if err := shape.Validate(); err != nil {
		panic("narray: " + err.Error())
	}
	n := shape.NumElements()
	if n == len(d.Array.data) && shape.Equal(d.dims) {
		// Same extents: contents are still discarded.
		d.Clear()
		return
	}
	d.dims = shape.Clone()
	d.stride = shape.Strides()
	if n == 0 {
		d.Array.data = nil
		return
	}
	d.Array.data = make([]T, n)
}

// Assign resizes the container to match src's extents and deep-copies its
// contents.
func (d *Dense[T]) Assign(src *Dense[T]) {
	if d == src {
		return
	}
	d.dims = src.dims.Clone()
	d.stride = src.dims.Strides()
	d.Array.Assign(&src.Array)
}

// Clone returns an independent deep copy including the extents.
func (d *Dense[T]) Clone() *Dense[T] {
	c := &Dense[T]{
		dims:   d.dims.Clone(),
		stride: d.dims.Strides(),
	}
	c.Array = *d.Array.Clone()
	return c
}

// Take transfers buffer ownership and extents to a new container, leaving
// the receiver empty (Len() == 0, rank preserved with all-zero extents).
func (d *Dense[T]) Take() *Dense[T] {
	moved := &Dense[T]{
		dims:   d.dims,
		stride: d.stride,
	}
	moved.Array = *d.Array.Take()
	empty := make(Shape, len(d.dims))
	d.dims = empty
	d.stride = empty.Strides()
	return moved
}

// String renders a short description of the container.
func (d *Dense[T]) String() string {
	var dummy T
	return fmt.Sprintf("Dense[%s]%s", InferDataType(dummy), d.dims)
}
