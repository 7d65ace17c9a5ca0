package narray

// Fixed-rank wrappers over Dense. Each pins the arity of construction,
// indexing and resizing at compile time; everything else (reductions,
// Fill, Clear, Assign, Clone, Take) comes from Dense and Array.

// Matrix is a dense 2D container.
type Matrix[T Number] struct {
	Dense[T]
}

// NewMatrix creates a zero-filled (d0 x d1) matrix.
func NewMatrix[T Number](d0, d1 int) *Matrix[T] {
	return &Matrix[T]{Dense: *NewDense[T](d0, d1)}
}

// At returns the element at (x, y).
func (m *Matrix[T]) At(x, y int) T {
	return m.Dense.At(x, y)
}

// Set stores v at (x, y).
func (m *Matrix[T]) Set(v T, x, y int) {
	m.Dense.Set(v, x, y)
}

// Resize discards all contents and yields a zero-filled (d0 x d1) buffer.
func (m *Matrix[T]) Resize(d0, d1 int) {
	m.Dense.Resize(d0, d1)
}

// Clone returns an independent deep copy.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{Dense: *m.Dense.Clone()}
}

// Take transfers ownership, leaving the receiver empty.
func (m *Matrix[T]) Take() *Matrix[T] {
	return &Matrix[T]{Dense: *m.Dense.Take()}
}

// Cube is a dense 3D container.
type Cube[T Number] struct {
	Dense[T]
}

// NewCube creates a zero-filled (d0 x d1 x d2) cube.
func NewCube[T Number](d0, d1, d2 int) *Cube[T] {
	return &Cube[T]{Dense: *NewDense[T](d0, d1, d2)}
}

// At returns the element at (x, y, z).
func (c *Cube[T]) At(x, y, z int) T {
	return c.Dense.At(x, y, z)
}

// Set stores v at (x, y, z).
func (c *Cube[T]) Set(v T, x, y, z int) {
	c.Dense.Set(v, x, y, z)
}

// Resize discards all contents and yields a zero-filled (d0 x d1 x d2) buffer.
func (c *Cube[T]) Resize(d0, d1, d2 int) {
	c.Dense.Resize(d0, d1, d2)
}

// Clone returns an independent deep copy.
func (c *Cube[T]) Clone() *Cube[T] {
	return &Cube[T]{Dense: *c.Dense.Clone()}
}

// Take transfers ownership, leaving the receiver empty.
func (c *Cube[T]) Take() *Cube[T] {
	return &Cube[T]{Dense: *c.Dense.Take()}
}

// Tesseract is a dense 4D container.
type Tesseract[T Number] struct {
	Dense[T]
}

// NewTesseract creates a zero-filled (d0 x d1 x d2 x d3) tesseract.
func NewTesseract[T Number](d0, d1, d2, d3 int) *Tesseract[T] {
	return &Tesseract[T]{Dense: *NewDense[T](d0, d1, d2, d3)}
}

// At returns the element at (x, y, z, w).
func (t *Tesseract[T]) At(x, y, z, w int) T {
	return t.Dense.At(x, y, z, w)
}

// Set stores v at (x, y, z, w).
func (t *Tesseract[T]) Set(v T, x, y, z, w int) {
	t.Dense.Set(v, x, y, z, w)
}

// Resize discards all contents and yields a zero-filled
// (d0 x d1 x d2 x d3) buffer.
func (t *Tesseract[T]) Resize(d0, d1, d2, d3 int) {
	t.Dense.Resize(d0, d1, d2, d3)
}

// Clone returns an independent deep copy.
func (t *Tesseract[T]) Clone() *Tesseract[T] {
	return &Tesseract[T]{Dense: *t.Dense.Clone()}
}

// Take transfers ownership, leaving the receiver empty.
func (t *Tesseract[T]) Take() *Tesseract[T] {
	return &Tesseract[T]{Dense: *t.Dense.Take()}
}
