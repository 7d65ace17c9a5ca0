package narray

// Reductions collapse all elements to one scalar with a single linear scan
// over the buffer, regardless of rank.
//
// Every reduction returns the zero value of T on an empty container. This
// is a documented degenerate-case convention, not an error — including for
// Min and Max, where zero is returned even though no element exists.

// Sum returns the sum of all elements.
func (a *Array[T]) Sum() T {
	var sum T
	for _, v := range a.data {
		sum += v
	}
	return sum
}

// Mean returns the arithmetic mean of all elements. The sum is accumulated
// in a wide type and divided by the untruncated length, so narrow element
// types keep the exact divisor for any buffer size. Integer element types
// truncate the quotient.
func (a *Array[T]) Mean() T {
	n := len(a.data)
	if n == 0 {
		var zero T
		return zero
	}
	var dummy T
	switch InferDataType(dummy) {
	case Float32, Float64:
		var sum float64
		for _, v := range a.data {
			sum += float64(v)
		}
		return T(sum / float64(n))
	default:
		var sum int64
		for _, v := range a.data {
			sum += int64(v)
		}
		return T(sum / int64(n))
	}
}

// Min returns the smallest element.
func (a *Array[T]) Min() T {
	if len(a.data) == 0 {
		var zero T
		return zero
	}
	min := a.data[0]
	for _, v := range a.data[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest element.
func (a *Array[T]) Max() T {
	if len(a.data) == 0 {
		var zero T
		return zero
	}
	max := a.data[0]
	for _, v := range a.data[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
