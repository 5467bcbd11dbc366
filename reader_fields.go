package tbf

import (
	"encoding/binary"
	"math"

	"github.com/google/uuid"
)

// readBits returns the inline primitive payload for a tag of exactly the
// expected type.
func (o *ObjectReader) readBits(tag Tag, expected DataType) (uint64, bool) {
	entry, ok := o.find(tag)
	if !ok || entry.typ != expected {
		return 0, false
	}
	return entry.bits, true
}

// ---------------------------------
// Primitive readers
// ---------------------------------

func (o *ObjectReader) ReadInt8(tag Tag) (int8, bool) {
	bits, ok := o.readBits(tag, Int8)
	return int8(bits), ok
}

func (o *ObjectReader) ReadInt16(tag Tag) (int16, bool) {
	bits, ok := o.readBits(tag, Int16)
	return int16(bits), ok
}

func (o *ObjectReader) ReadInt32(tag Tag) (int32, bool) {
	bits, ok := o.readBits(tag, Int32)
	return int32(bits), ok
}

func (o *ObjectReader) ReadInt64(tag Tag) (int64, bool) {
	bits, ok := o.readBits(tag, Int64)
	return int64(bits), ok
}

// ReadUInt8 reads an unsigned 8-bit field.
//
// Deprecated: the format lists unsigned integer types as deprecated; they
// are kept for wire compatibility. Prefer the signed variants.
func (o *ObjectReader) ReadUInt8(tag Tag) (uint8, bool) {
	bits, ok := o.readBits(tag, UInt8)
	return uint8(bits), ok
}

// ReadUInt16 reads an unsigned 16-bit field.
//
// Deprecated: the format lists unsigned integer types as deprecated; they
// are kept for wire compatibility. Prefer the signed variants.
func (o *ObjectReader) ReadUInt16(tag Tag) (uint16, bool) {
	bits, ok := o.readBits(tag, UInt16)
	return uint16(bits), ok
}

// ReadUInt32 reads an unsigned 32-bit field.
//
// Deprecated: the format lists unsigned integer types as deprecated; they
// are kept for wire compatibility. Prefer the signed variants.
func (o *ObjectReader) ReadUInt32(tag Tag) (uint32, bool) {
	bits, ok := o.readBits(tag, UInt32)
	return uint32(bits), ok
}

// ReadUInt64 reads an unsigned 64-bit field.
//
// Deprecated: the format lists unsigned integer types as deprecated; they
// are kept for wire compatibility. Prefer the signed variants.
func (o *ObjectReader) ReadUInt64(tag Tag) (uint64, bool) {
	return o.readBits(tag, UInt64)
}

func (o *ObjectReader) ReadBoolean(tag Tag) (bool, bool) {
	bits, ok := o.readBits(tag, Boolean)
	return bits != 0, ok
}

// ReadFloat16 returns the opaque 16-bit half-precision pattern.
func (o *ObjectReader) ReadFloat16(tag Tag) (uint16, bool) {
	bits, ok := o.readBits(tag, Float16)
	return uint16(bits), ok
}

func (o *ObjectReader) ReadFloat32(tag Tag) (float32, bool) {
	bits, ok := o.readBits(tag, Float32)
	return math.Float32frombits(uint32(bits)), ok
}

func (o *ObjectReader) ReadFloat64(tag Tag) (float64, bool) {
	bits, ok := o.readBits(tag, Float64)
	return math.Float64frombits(bits), ok
}

// ReadString returns the field's UTF-8 payload as a string view aliasing the
// decoder's buffer.
func (o *ObjectReader) ReadString(tag Tag) (string, bool) {
	entry, ok := o.find(tag)
	if !ok || entry.typ != String {
		return "", false
	}
	p := o.data[entry.off:]
	length := binary.LittleEndian.Uint16(p)
	return byteString(p[2 : 2+uint32(length)]), true
}

// ReadBinary returns the field's payload as a sub-slice of the decoder's
// buffer.
func (o *ObjectReader) ReadBinary(tag Tag) ([]byte, bool) {
	entry, ok := o.find(tag)
	if !ok || entry.typ != Binary {
		return nil, false
	}
	p := o.data[entry.off:]
	size := binary.LittleEndian.Uint32(p)
	return p[4 : 4+size : 4+size], true
}

func (o *ObjectReader) ReadUUID(tag Tag) (uuid.UUID, bool) {
	entry, ok := o.find(tag)
	if !ok || entry.typ != UUID {
		return uuid.UUID{}, false
	}
	var id uuid.UUID
	copy(id[:], o.data[entry.off:entry.off+16])
	return id, true
}

// ReadObject returns a reader over the nested object's field region. The
// sub-reader shares the borrow and the tag mode; its own index builds lazily.
func (o *ObjectReader) ReadObject(tag Tag) (*ObjectReader, bool) {
	entry, ok := o.find(tag)
	if !ok || entry.typ != Object {
		return nil, false
	}
	return NewObjectReader(o.data[entry.off:], o.nameBased), true
}

// ---------------------------------
// Fixed-element array readers
// ---------------------------------

// readArray returns a typed zero-copy view over a fixed-element array
// payload. The bytes were normalized to host order during indexing. An array
// whose size is not a multiple of the element size reads as absent.
func readArray[T fixedElement](o *ObjectReader, tag Tag, expected DataType) ([]T, bool) {
	entry, ok := o.find(tag)
	if !ok || entry.typ != expected {
		return nil, false
	}
	p := o.data[entry.off:]
	size := binary.LittleEndian.Uint32(p)
	elemSize := expected.elemSize()
	count := size / elemSize
	if count*elemSize != size {
		return nil, false
	}
	return elementSlice[T](p[4:4+size], count), true
}

func (o *ObjectReader) ReadInt8Array(tag Tag) ([]int8, bool) {
	return readArray[int8](o, tag, Int8Array)
}

func (o *ObjectReader) ReadInt16Array(tag Tag) ([]int16, bool) {
	return readArray[int16](o, tag, Int16Array)
}

func (o *ObjectReader) ReadInt32Array(tag Tag) ([]int32, bool) {
	return readArray[int32](o, tag, Int32Array)
}

func (o *ObjectReader) ReadInt64Array(tag Tag) ([]int64, bool) {
	return readArray[int64](o, tag, Int64Array)
}

// ReadUInt8Array reads an unsigned 8-bit element array.
//
// Deprecated: the format lists unsigned integer types as deprecated; they
// are kept for wire compatibility. Prefer the signed variants.
func (o *ObjectReader) ReadUInt8Array(tag Tag) ([]uint8, bool) {
	return readArray[uint8](o, tag, UInt8Array)
}

// ReadUInt16Array reads an unsigned 16-bit element array.
//
// Deprecated: the format lists unsigned integer types as deprecated; they
// are kept for wire compatibility. Prefer the signed variants.
func (o *ObjectReader) ReadUInt16Array(tag Tag) ([]uint16, bool) {
	return readArray[uint16](o, tag, UInt16Array)
}

// ReadUInt32Array reads an unsigned 32-bit element array.
//
// Deprecated: the format lists unsigned integer types as deprecated; they
// are kept for wire compatibility. Prefer the signed variants.
func (o *ObjectReader) ReadUInt32Array(tag Tag) ([]uint32, bool) {
	return readArray[uint32](o, tag, UInt32Array)
}

// ReadUInt64Array reads an unsigned 64-bit element array.
//
// Deprecated: the format lists unsigned integer types as deprecated; they
// are kept for wire compatibility. Prefer the signed variants.
func (o *ObjectReader) ReadUInt64Array(tag Tag) ([]uint64, bool) {
	return readArray[uint64](o, tag, UInt64Array)
}

func (o *ObjectReader) ReadBooleanArray(tag Tag) ([]bool, bool) {
	return readArray[bool](o, tag, BooleanArray)
}

// ReadFloat16Array returns the opaque 16-bit half-precision patterns.
func (o *ObjectReader) ReadFloat16Array(tag Tag) ([]uint16, bool) {
	return readArray[uint16](o, tag, Float16Array)
}

func (o *ObjectReader) ReadFloat32Array(tag Tag) ([]float32, bool) {
	return readArray[float32](o, tag, Float32Array)
}

func (o *ObjectReader) ReadFloat64Array(tag Tag) ([]float64, bool) {
	return readArray[float64](o, tag, Float64Array)
}

// ---------------------------------
// Vector readers
// ---------------------------------

// readVector copies the vector's host-order elements into out. The payload
// has exactly dim elements; the count is implied by the type, never stored.
func readVector[T fixedElement](o *ObjectReader, tag Tag, expected DataType, out []T) bool {
	entry, ok := o.find(tag)
	if !ok || entry.typ != expected {
		return false
	}
	size := expected.Dimension() * expected.elemSize()
	copy(out, elementSlice[T](o.data[entry.off:entry.off+size], expected.Dimension()))
	return true
}

// Vector 2

func (o *ObjectReader) ReadVector2i8(tag Tag) ([2]int8, bool) {
	var v [2]int8
	ok := readVector(o, tag, Vector2i8, v[:])
	return v, ok
}

func (o *ObjectReader) ReadVector2i16(tag Tag) ([2]int16, bool) {
	var v [2]int16
	ok := readVector(o, tag, Vector2i16, v[:])
	return v, ok
}

func (o *ObjectReader) ReadVector2i32(tag Tag) ([2]int32, bool) {
	var v [2]int32
	ok := readVector(o, tag, Vector2i32, v[:])
	return v, ok
}

func (o *ObjectReader) ReadVector2i64(tag Tag) ([2]int64, bool) {
	var v [2]int64
	ok := readVector(o, tag, Vector2i64, v[:])
	return v, ok
}

func (o *ObjectReader) ReadVector2b(tag Tag) ([2]bool, bool) {
	var v [2]bool
	ok := readVector(o, tag, Vector2b, v[:])
	return v, ok
}

func (o *ObjectReader) ReadVector2f16(tag Tag) ([2]uint16, bool) {
	var v [2]uint16
	ok := readVector(o, tag, Vector2f16, v[:])
	return v, ok
}

func (o *ObjectReader) ReadVector2f32(tag Tag) ([2]float32, bool) {
	var v [2]float32
	ok := readVector(o, tag, Vector2f32, v[:])
	return v, ok
}

func (o *ObjectReader) ReadVector2f64(tag Tag) ([2]float64, bool) {
	var v [2]float64
	ok := readVector(o, tag, Vector2f64, v[:])
	return v, ok
}

// Vector 3

func (o *ObjectReader) ReadVector3i8(tag Tag) ([3]int8, bool) {
	var v [3]int8
	ok := readVector(o, tag, Vector3i8, v[:])
	return v, ok
}

func (o *ObjectReader) ReadVector3i16(tag Tag) ([3]int16, bool) {
	var v [3]int16
	ok := readVector(o, tag, Vector3i16, v[:])
	return v, ok
}

func (o *ObjectReader) ReadVector3i32(tag Tag) ([3]int32, bool) {
	var v [3]int32
	ok := readVector(o, tag, Vector3i32, v[:])
	return v, ok
}

func (o *ObjectReader) ReadVector3i64(tag Tag) ([3]int64, bool) {
	var v [3]int64
	ok := readVector(o, tag, Vector3i64, v[:])
	return v, ok
}

func (o *ObjectReader) ReadVector3b(tag Tag) ([3]bool, bool) {
	var v [3]bool
	ok := readVector(o, tag, Vector3b, v[:])
	return v, ok
}

func (o *ObjectReader) ReadVector3f16(tag Tag) ([3]uint16, bool) {
	var v [3]uint16
	ok := readVector(o, tag, Vector3f16, v[:])
	return v, ok
}

func (o *ObjectReader) ReadVector3f32(tag Tag) ([3]float32, bool) {
	var v [3]float32
	ok := readVector(o, tag, Vector3f32, v[:])
	return v, ok
}

func (o *ObjectReader) ReadVector3f64(tag Tag) ([3]float64, bool) {
	var v [3]float64
	ok := readVector(o, tag, Vector3f64, v[:])
	return v, ok
}

// Vector 4

func (o *ObjectReader) ReadVector4i8(tag Tag) ([4]int8, bool) {
	var v [4]int8
	ok := readVector(o, tag, Vector4i8, v[:])
	return v, ok
}

func (o *ObjectReader) ReadVector4i16(tag Tag) ([4]int16, bool) {
	var v [4]int16
	ok := readVector(o, tag, Vector4i16, v[:])
	return v, ok
}

func (o *ObjectReader) ReadVector4i32(tag Tag) ([4]int32, bool) {
	var v [4]int32
	ok := readVector(o, tag, Vector4i32, v[:])
	return v, ok
}

func (o *ObjectReader) ReadVector4i64(tag Tag) ([4]int64, bool) {
	var v [4]int64
	ok := readVector(o, tag, Vector4i64, v[:])
	return v, ok
}

func (o *ObjectReader) ReadVector4b(tag Tag) ([4]bool, bool) {
	var v [4]bool
	ok := readVector(o, tag, Vector4b, v[:])
	return v, ok
}

func (o *ObjectReader) ReadVector4f16(tag Tag) ([4]uint16, bool) {
	var v [4]uint16
	ok := readVector(o, tag, Vector4f16, v[:])
	return v, ok
}

func (o *ObjectReader) ReadVector4f32(tag Tag) ([4]float32, bool) {
	var v [4]float32
	ok := readVector(o, tag, Vector4f32, v[:])
	return v, ok
}

func (o *ObjectReader) ReadVector4f64(tag Tag) ([4]float64, bool) {
	var v [4]float64
	ok := readVector(o, tag, Vector4f64, v[:])
	return v, ok
}
