package ndfile

import (
	"unsafe"

	"github.com/narray-ml/narray/internal/narray"
)

// The format stores raw element bytes and declares them little-endian;
// element slices are reinterpreted in place rather than encoded
// element-by-element.

// asBytes returns a zero-copy byte view of a typed element slice.
func asBytes[T narray.Number](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var dummy T
	size := narray.InferDataType(dummy).Size()
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*size)
}

// copyFromBytes copies raw element bytes into a typed destination slice.
// The byte length must equal len(dst) * sizeof(T).
func copyFromBytes[T narray.Number](dst []T, b []byte) {
	copy(asBytes(dst), b)
}
