package narray

import "testing"

func TestDenseCreateZeroFilled(t *testing.T) {
	d := NewDense[float64](20, 30)
	assertEqualInt(t, 2, d.Rank(), "Rank")
	assertEqualInt(t, 20, d.Dim(0), "Dim(0)")
	assertEqualInt(t, 30, d.Dim(1), "Dim(1)")
	assertEqualInt(t, 600, d.Len(), "Len")
	assertEqualFloat64(t, 0, d.Sum(), "Sum of fresh container")
}

func TestDenseZeroExtentIsEmpty(t *testing.T) {
	d := NewDense[float64](4, 0, 7)
	assertEqualInt(t, 0, d.Len(), "Len with zero extent")
	assertEqualFloat64(t, 0, d.Sum(), "Sum with zero extent")
	assertEqualInt(t, 3, d.Rank(), "Rank preserved with zero extent")
}

func TestDenseNegativeExtentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative extent")
		}
	}()
	NewDense[int32](3, -1)
}

func TestDenseOffsetLinearization(t *testing.T) {
	// offset = x0 + x1*d0 + x2*d0*d1, first axis fastest.
	d := NewDense[float64](2, 3, 4)
	tests := []struct {
		ix       []int
		expected int
	}{
		{[]int{0, 0, 0}, 0},
		{[]int{1, 0, 0}, 1},
		{[]int{0, 1, 0}, 2},
		{[]int{0, 0, 1}, 6},
		{[]int{1, 2, 3}, 1 + 2*2 + 3*6},
	}
	for _, tt := range tests {
		if got := d.Offset(tt.ix...); got != tt.expected {
			t.Errorf("Offset(%v) = %d, want %d", tt.ix, got, tt.expected)
		}
	}
}

func TestDenseAtSetRoundTrip(t *testing.T) {
	d := NewDense[float64](5, 6, 7)
	d.Set(42.5, 4, 5, 6)
	assertEqualFloat64(t, 42.5, d.At(4, 5, 6), "At after Set")
	d.Set(-1, 0, 0, 0)
	assertEqualFloat64(t, -1, d.At(0, 0, 0), "At origin after Set")
}

func TestDenseDistinctIndicesDistinctCells(t *testing.T) {
	d := NewDense[int64](3, 4)
	seen := make(map[int]bool)
	for y := 0; y < 4; y++ {
		for x := 0; x < 3; x++ {
			off := d.Offset(x, y)
			if seen[off] {
				t.Fatalf("offset %d addressed twice", off)
			}
			seen[off] = true
		}
	}
	assertEqualInt(t, 12, len(seen), "distinct offsets")
}

func TestDenseIndexArityPanics(t *testing.T) {
	d := NewDense[float64](2, 2)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for wrong index arity")
		}
	}()
	d.At(1)
}

func TestDenseIndexOutOfRangePanics(t *testing.T) {
	d := NewDense[float64](2, 3)
	for _, ix := range [][]int{{2, 0}, {0, 3}, {-1, 0}, {0, -1}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for index %v", ix)
				}
			}()
			d.At(ix...)
		}()
	}
}

func TestDenseResizeIsDestructive(t *testing.T) {
	d := NewDense[float64](3, 3)
	d.Fill(5)

	d.Resize(4, 2)
	assertEqualInt(t, 8, d.Len(), "Len after resize")
	assertEqualInt(t, 4, d.Dim(0), "Dim(0) after resize")
	assertEqualInt(t, 2, d.Dim(1), "Dim(1) after resize")
	assertEqualFloat64(t, 0, d.Sum(), "resize must zero the whole buffer")
}

func TestDenseResizeSameExtentsStillZeros(t *testing.T) {
	d := NewDense[float64](3, 3)
	d.Fill(1)
	d.Resize(3, 3)
	assertEqualFloat64(t, 0, d.Sum(), "same-extent resize must still zero")
}

func TestDenseResizeToZeroExtent(t *testing.T) {
	d := NewDense[int64](3, 3)
	d.Fill(2)
	d.Resize(3, 0)
	assertEqualInt(t, 0, d.Len(), "Len after zero-extent resize")
}

func TestDenseAssignDeepCopies(t *testing.T) {
	src := NewDense[float64](2, 3)
	src.Fill(4)
	dst := NewDense[float64](7, 7)

	dst.Assign(src)
	assertEqualInt(t, 2, dst.Dim(0), "Dim(0) after Assign")
	assertEqualInt(t, 3, dst.Dim(1), "Dim(1) after Assign")
	assertEqualFloat64(t, 24, dst.Sum(), "Sum after Assign")

	dst.Set(100, 0, 0)
	assertEqualFloat64(t, 4, src.At(0, 0), "source after mutating copy")
}

func TestDenseCloneCarriesDims(t *testing.T) {
	d := NewDense[int32](2, 5)
	d.Set(7, 1, 4)
	c := d.Clone()
	if c.Dim(0) != 2 || c.Dim(1) != 5 || c.At(1, 4) != 7 {
		t.Errorf("Clone mismatch: dims (%d,%d) value %d", c.Dim(0), c.Dim(1), c.At(1, 4))
	}
	c.Set(0, 1, 4)
	if d.At(1, 4) != 7 {
		t.Error("Clone is not independent")
	}
}

func TestDenseTakeLeavesEmpty(t *testing.T) {
	d := NewDense[float64](2, 3)
	d.Fill(1)
	buf := d.Data()

	moved := d.Take()
	assertEqualInt(t, 0, d.Len(), "source Len after Take")
	assertEqualInt(t, 2, d.Rank(), "source rank after Take")
	assertEqualInt(t, 0, d.Dim(0), "source extents zeroed after Take")
	assertEqualInt(t, 6, moved.Len(), "destination Len after Take")
	assertEqualFloat64(t, 6, moved.Sum(), "destination Sum after Take")
	if &buf[0] != &moved.Data()[0] {
		t.Error("Take reallocated the buffer")
	}
}

func TestDenseProductSumScenario(t *testing.T) {
	// at(i,j) = i*j over shape (20,30): sum == (Σi)(Σj).
	d := NewDense[int64](20, 30)
	for i := 0; i < 20; i++ {
		for j := 0; j < 30; j++ {
			d.Set(int64(i*j), i, j)
		}
	}
	want := eulerSum(19) * eulerSum(29)
	if got := d.Sum(); got != want {
		t.Errorf("Sum() = %d, want %d", got, want)
	}
}
