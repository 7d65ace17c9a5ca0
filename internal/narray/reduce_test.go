package narray

import "testing"

func TestReductionsOnEmptyReturnZero(t *testing.T) {
	a := New[float64](0)
	if a.Sum() != 0 || a.Mean() != 0 || a.Min() != 0 || a.Max() != 0 {
		t.Errorf("empty container reductions: sum=%v mean=%v min=%v max=%v, all want 0",
			a.Sum(), a.Mean(), a.Min(), a.Max())
	}
}

func TestSumMeanMinMax(t *testing.T) {
	a := FromSlice([]float64{4, -2, 10, 0})
	assertEqualFloat64(t, 12, a.Sum(), "Sum")
	assertEqualFloat64(t, 3, a.Mean(), "Mean")
	assertEqualFloat64(t, -2, a.Min(), "Min")
	assertEqualFloat64(t, 10, a.Max(), "Max")
}

func TestIntegerMeanTruncates(t *testing.T) {
	a := FromSlice([]int64{1, 2})
	if got := a.Mean(); got != 1 {
		t.Errorf("Mean() = %d, want 1 (truncating integer division)", got)
	}
}

func TestMinMaxSingleElement(t *testing.T) {
	a := FromSlice([]int32{-7})
	if a.Min() != -7 || a.Max() != -7 {
		t.Errorf("single element: min=%d max=%d, want -7", a.Min(), a.Max())
	}
}

func TestReductionsUint8(t *testing.T) {
	a := FromSlice([]uint8{3, 250, 7})
	if a.Sum() != 4 { // wraps mod 256, under the type's arithmetic
		t.Errorf("uint8 Sum() = %d, want 4", a.Sum())
	}
	if a.Mean() != 86 { // 260/3, accumulated wider than the element type
		t.Errorf("uint8 Mean() = %d, want 86", a.Mean())
	}
	if a.Min() != 3 || a.Max() != 250 {
		t.Errorf("uint8 min=%d max=%d", a.Min(), a.Max())
	}
}

func TestMeanUint8LargeBuffers(t *testing.T) {
	// 256 elements: a divisor computed in uint8 would be 0.
	a := New[uint8](256)
	a.Fill(10)
	if got := a.Mean(); got != 10 {
		t.Errorf("Mean() over 256 elements = %d, want 10", got)
	}

	// 300 elements: a divisor computed in uint8 would be 44, not 300.
	b := New[uint8](300)
	b.Fill(9)
	if got := b.Mean(); got != 9 {
		t.Errorf("Mean() over 300 elements = %d, want 9", got)
	}
}
