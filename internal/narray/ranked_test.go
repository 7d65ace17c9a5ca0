package narray

import "testing"

func TestMatrixRoundTrip(t *testing.T) {
	m := NewMatrix[float64](4, 5)
	m.Set(2.5, 3, 4)
	assertEqualFloat64(t, 2.5, m.At(3, 4), "At after Set")
	assertEqualInt(t, 20, m.Len(), "Len")
	assertEqualInt(t, 4, m.Dim(0), "Dim(0)")
	assertEqualInt(t, 5, m.Dim(1), "Dim(1)")
}

func TestMatrixResizeDestructive(t *testing.T) {
	m := NewMatrix[int64](3, 3)
	m.Fill(9)
	m.Resize(5, 2)
	assertEqualInt(t, 10, m.Len(), "Len after resize")
	if m.Sum() != 0 {
		t.Errorf("resize must zero the buffer, sum %d", m.Sum())
	}
}

func TestCubeProductSum(t *testing.T) {
	const n1, n2, n3 = 20, 30, 10
	c := NewCube[float64](n1, n2, n3)
	var want float64
	for i := 0; i < n1; i++ {
		for j := 0; j < n2; j++ {
			for k := 0; k < n3; k++ {
				c.Set(float64(i*j*k), i, j, k)
				want += float64(i * j * k)
			}
		}
	}
	assertEqualFloat64(t, want, c.Sum(), "Cube product sum")
}

func TestCubeZeroExtent(t *testing.T) {
	c := NewCube[float64](4, 0, 9)
	assertEqualInt(t, 0, c.Len(), "Len with zero extent")
	assertEqualFloat64(t, 0, c.Max(), "Max on empty cube")
}

func TestTesseractFillScenario(t *testing.T) {
	ts := NewTesseract[float64](20, 30, 10, 40)
	ts.Fill(1)
	assertEqualFloat64(t, 20*30*10*40, ts.Sum(), "Sum after Fill(1)")
	ts.Fill(0)
	assertEqualFloat64(t, 0, ts.Sum(), "Sum after Fill(0)")
}

func TestTesseractRoundTrip(t *testing.T) {
	ts := NewTesseract[int32](3, 4, 5, 6)
	ts.Set(-11, 2, 3, 4, 5)
	if got := ts.At(2, 3, 4, 5); got != -11 {
		t.Errorf("At = %d, want -11", got)
	}
}

func TestRankedCloneAndTake(t *testing.T) {
	m := NewMatrix[float64](2, 2)
	m.Fill(3)

	c := m.Clone()
	c.Set(0, 0, 0)
	assertEqualFloat64(t, 3, m.At(0, 0), "source after mutating clone")

	moved := m.Take()
	assertEqualInt(t, 0, m.Len(), "source Len after Take")
	assertEqualFloat64(t, 12, moved.Sum(), "moved Sum")
}

func TestRankedInheritedReductions(t *testing.T) {
	m := NewMatrix[int64](2, 3)
	vals := []int64{5, -1, 4, 2, 8, 0}
	for i, v := range vals {
		m.Data()[i] = v
	}
	if m.Sum() != 18 || m.Min() != -1 || m.Max() != 8 || m.Mean() != 3 {
		t.Errorf("reductions: sum=%d min=%d max=%d mean=%d",
			m.Sum(), m.Min(), m.Max(), m.Mean())
	}
}
