package tbf

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// The wire format is little-endian. hostLittle selects whether in-place
// normalization of array and vector payloads is a no-op or a byte swap.
var hostLittle = func() bool {
	var probe uint16 = 1
	return *(*byte)(unsafe.Pointer(&probe)) == 1
}()

// fixedElement covers every type that can back a fixed-width wire element.
type fixedElement interface {
	constraints.Integer | constraints.Float | ~bool
}

func swapSlice16(b []byte) {
	for i := 0; i+1 < len(b); i += 2 {
		b[i], b[i+1] = b[i+1], b[i]
	}
}

func swapSlice32(b []byte) {
	for i := 0; i+3 < len(b); i += 4 {
		b[i], b[i+3] = b[i+3], b[i]
		b[i+1], b[i+2] = b[i+2], b[i+1]
	}
}

func swapSlice64(b []byte) {
	for i := 0; i+7 < len(b); i += 8 {
		b[i], b[i+7] = b[i+7], b[i]
		b[i+1], b[i+6] = b[i+6], b[i+1]
		b[i+2], b[i+5] = b[i+5], b[i+2]
		b[i+3], b[i+4] = b[i+4], b[i+3]
	}
}

// normalizeInPlace converts the packed elements in b between wire order and
// host order. Byte reversal is its own inverse, so the same call serves both
// directions; on little-endian hosts it does nothing.
func normalizeInPlace(b []byte, elemSize uint32) {
	if hostLittle || elemSize <= 1 {
		return
	}
	switch elemSize {
	case 2:
		swapSlice16(b)
	case 4:
		swapSlice32(b)
	case 8:
		swapSlice64(b)
	}
}

// elementBytes views the raw memory of a typed element slice. The caller must
// not let the view outlive s.
func elementBytes[T fixedElement](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(s[0])))
}

// elementSlice reinterprets host-order payload bytes as a typed element
// slice without copying. b must hold at least count elements.
func elementSlice[T fixedElement](b []byte, count uint32) []T {
	if count == 0 {
		return []T{}
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), count)
}

// byteString views payload bytes as a string without copying. The result
// aliases the decoder's buffer.
func byteString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
