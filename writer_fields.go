package tbf

import (
	"math"

	"github.com/google/uuid"
)

// IsFinished reports whether this object scope has been closed.
func (o ObjectWriter) IsFinished() bool { return o.sc == nil || o.sc.finished }

// Finish closes the object scope and back-patches its size slot. Idempotent;
// any still-open child scopes are closed first.
func (o ObjectWriter) Finish() {
	if o.w != nil {
		o.w.finishScope(o.sc)
	}
}

// ---------------------------------
// Primitive fields
// ---------------------------------

func (o ObjectWriter) FieldInt8(tag Tag, value int8) {
	if !o.w.active(o.sc) {
		return
	}
	o.w.writeFieldHeader(tag, Int8)
	o.w.writeByte(byte(value))
}

func (o ObjectWriter) FieldInt16(tag Tag, value int16) {
	if !o.w.active(o.sc) {
		return
	}
	o.w.writeFieldHeader(tag, Int16)
	o.w.writeUint16(uint16(value))
}

func (o ObjectWriter) FieldInt32(tag Tag, value int32) {
	if !o.w.active(o.sc) {
		return
	}
	o.w.writeFieldHeader(tag, Int32)
	o.w.writeUint32(uint32(value))
}

func (o ObjectWriter) FieldInt64(tag Tag, value int64) {
	if !o.w.active(o.sc) {
		return
	}
	o.w.writeFieldHeader(tag, Int64)
	o.w.writeUint64(uint64(value))
}

// FieldUInt8 writes an unsigned 8-bit field.
//
// Deprecated: the format lists unsigned integer types as deprecated; they
// are kept for wire compatibility. Prefer the signed variants.
func (o ObjectWriter) FieldUInt8(tag Tag, value uint8) {
	if !o.w.active(o.sc) {
		return
	}
	o.w.writeFieldHeader(tag, UInt8)
	o.w.writeByte(value)
}

// FieldUInt16 writes an unsigned 16-bit field.
//
// Deprecated: the format lists unsigned integer types as deprecated; they
// are kept for wire compatibility. Prefer the signed variants.
func (o ObjectWriter) FieldUInt16(tag Tag, value uint16) {
	if !o.w.active(o.sc) {
		return
	}
	o.w.writeFieldHeader(tag, UInt16)
	o.w.writeUint16(value)
}

// FieldUInt32 writes an unsigned 32-bit field.
//
// Deprecated: the format lists unsigned integer types as deprecated; they
// are kept for wire compatibility. Prefer the signed variants.
func (o ObjectWriter) FieldUInt32(tag Tag, value uint32) {
	if !o.w.active(o.sc) {
		return
	}
	o.w.writeFieldHeader(tag, UInt32)
	o.w.writeUint32(value)
}

// FieldUInt64 writes an unsigned 64-bit field.
//
// Deprecated: the format lists unsigned integer types as deprecated; they
// are kept for wire compatibility. Prefer the signed variants.
func (o ObjectWriter) FieldUInt64(tag Tag, value uint64) {
	if !o.w.active(o.sc) {
		return
	}
	o.w.writeFieldHeader(tag, UInt64)
	o.w.writeUint64(value)
}

func (o ObjectWriter) FieldBoolean(tag Tag, value bool) {
	if !o.w.active(o.sc) {
		return
	}
	o.w.writeFieldHeader(tag, Boolean)
	if value {
		o.w.writeByte(1)
	} else {
		o.w.writeByte(0)
	}
}

// FieldFloat16 writes a half-precision field. The value is an opaque 16-bit
// pattern; the format defines no in-memory representation for it.
func (o ObjectWriter) FieldFloat16(tag Tag, value uint16) {
	if !o.w.active(o.sc) {
		return
	}
	o.w.writeFieldHeader(tag, Float16)
	o.w.writeUint16(value)
}

// FieldFloat32 writes a float field bit-exactly, including NaN payloads and
// the sign of zero.
func (o ObjectWriter) FieldFloat32(tag Tag, value float32) {
	if !o.w.active(o.sc) {
		return
	}
	o.w.writeFieldHeader(tag, Float32)
	o.w.writeUint32(math.Float32bits(value))
}

func (o ObjectWriter) FieldFloat64(tag Tag, value float64) {
	if !o.w.active(o.sc) {
		return
	}
	o.w.writeFieldHeader(tag, Float64)
	o.w.writeUint64(math.Float64bits(value))
}

// FieldUUID writes the UUID's 16 raw bytes as given.
func (o ObjectWriter) FieldUUID(tag Tag, value uuid.UUID) {
	if !o.w.active(o.sc) {
		return
	}
	o.w.writeFieldHeader(tag, UUID)
	o.w.writeBytes(value[:])
}

func (o ObjectWriter) FieldString(tag Tag, value string) {
	if !o.w.active(o.sc) {
		return
	}
	o.w.writeFieldHeader(tag, String)
	o.w.writeStringPayload(value)
}

func (o ObjectWriter) FieldBinary(tag Tag, data []byte) {
	if !o.w.active(o.sc) {
		return
	}
	o.w.writeFieldHeader(tag, Binary)
	o.w.writeBinaryPayload(data)
}

// FieldObject opens a nested object and returns its writer. The nested scope
// must be finished (explicitly, or implicitly by writing to this object
// again) before the enclosing object is complete.
func (o ObjectWriter) FieldObject(tag Tag) ObjectWriter {
	if !o.w.active(o.sc) {
		return ObjectWriter{}
	}
	o.w.writeFieldHeader(tag, Object)
	return ObjectWriter{w: o.w, sc: o.w.openScope()}
}

// ---------------------------------
// Fixed-element array fields
// ---------------------------------

// fieldArray writes the header, a u32 size of count*elemSize, and the raw
// element bytes, normalized to wire order in place.
func fieldArray[T fixedElement](o ObjectWriter, tag Tag, arrayType DataType, data []T) {
	if !o.w.active(o.sc) {
		return
	}
	o.w.writeFieldHeader(tag, arrayType)

	elemSize := arrayType.elemSize()
	o.w.writeUint32(uint32(len(data)) * elemSize)
	offset := len(o.w.buf)
	o.w.writeBytes(elementBytes(data))
	normalizeInPlace(o.w.buf[offset:], elemSize)
}

func (o ObjectWriter) FieldInt8Array(tag Tag, data []int8) {
	fieldArray(o, tag, Int8Array, data)
}

func (o ObjectWriter) FieldInt16Array(tag Tag, data []int16) {
	fieldArray(o, tag, Int16Array, data)
}

func (o ObjectWriter) FieldInt32Array(tag Tag, data []int32) {
	fieldArray(o, tag, Int32Array, data)
}

func (o ObjectWriter) FieldInt64Array(tag Tag, data []int64) {
	fieldArray(o, tag, Int64Array, data)
}

// FieldUInt8Array writes an unsigned 8-bit element array.
//
// Deprecated: the format lists unsigned integer types as deprecated; they
// are kept for wire compatibility. Prefer the signed variants.
func (o ObjectWriter) FieldUInt8Array(tag Tag, data []uint8) {
	fieldArray(o, tag, UInt8Array, data)
}

// FieldUInt16Array writes an unsigned 16-bit element array.
//
// Deprecated: the format lists unsigned integer types as deprecated; they
// are kept for wire compatibility. Prefer the signed variants.
func (o ObjectWriter) FieldUInt16Array(tag Tag, data []uint16) {
	fieldArray(o, tag, UInt16Array, data)
}

// FieldUInt32Array writes an unsigned 32-bit element array.
//
// Deprecated: the format lists unsigned integer types as deprecated; they
// are kept for wire compatibility. Prefer the signed variants.
func (o ObjectWriter) FieldUInt32Array(tag Tag, data []uint32) {
	fieldArray(o, tag, UInt32Array, data)
}

// FieldUInt64Array writes an unsigned 64-bit element array.
//
// Deprecated: the format lists unsigned integer types as deprecated; they
// are kept for wire compatibility. Prefer the signed variants.
func (o ObjectWriter) FieldUInt64Array(tag Tag, data []uint64) {
	fieldArray(o, tag, UInt64Array, data)
}

func (o ObjectWriter) FieldBooleanArray(tag Tag, data []bool) {
	fieldArray(o, tag, BooleanArray, data)
}

// FieldFloat16Array writes an array of opaque 16-bit half-precision patterns.
func (o ObjectWriter) FieldFloat16Array(tag Tag, data []uint16) {
	fieldArray(o, tag, Float16Array, data)
}

func (o ObjectWriter) FieldFloat32Array(tag Tag, data []float32) {
	fieldArray(o, tag, Float32Array, data)
}

func (o ObjectWriter) FieldFloat64Array(tag Tag, data []float64) {
	fieldArray(o, tag, Float64Array, data)
}

// ---------------------------------
// Vector fields
// ---------------------------------

// fieldVector writes the header and the raw element bytes of a fixed-dimension
// vector, normalized to wire order in place. The element count is implied by
// the vector type and never stored.
func fieldVector[T fixedElement](o ObjectWriter, tag Tag, vectorType DataType, data []T) {
	if !o.w.active(o.sc) {
		return
	}
	o.w.writeFieldHeader(tag, vectorType)

	offset := len(o.w.buf)
	o.w.writeBytes(elementBytes(data))
	normalizeInPlace(o.w.buf[offset:], vectorType.elemSize())
}

// Vector 2

func (o ObjectWriter) FieldVector2i8(tag Tag, v [2]int8)   { fieldVector(o, tag, Vector2i8, v[:]) }
func (o ObjectWriter) FieldVector2i16(tag Tag, v [2]int16) { fieldVector(o, tag, Vector2i16, v[:]) }
func (o ObjectWriter) FieldVector2i32(tag Tag, v [2]int32) { fieldVector(o, tag, Vector2i32, v[:]) }
func (o ObjectWriter) FieldVector2i64(tag Tag, v [2]int64) { fieldVector(o, tag, Vector2i64, v[:]) }

func (o ObjectWriter) FieldVector2b(tag Tag, v [2]bool)     { fieldVector(o, tag, Vector2b, v[:]) }
func (o ObjectWriter) FieldVector2f16(tag Tag, v [2]uint16) { fieldVector(o, tag, Vector2f16, v[:]) }
func (o ObjectWriter) FieldVector2f32(tag Tag, v [2]float32) {
	fieldVector(o, tag, Vector2f32, v[:])
}
func (o ObjectWriter) FieldVector2f64(tag Tag, v [2]float64) {
	fieldVector(o, tag, Vector2f64, v[:])
}

// Vector 3

func (o ObjectWriter) FieldVector3i8(tag Tag, v [3]int8)   { fieldVector(o, tag, Vector3i8, v[:]) }
func (o ObjectWriter) FieldVector3i16(tag Tag, v [3]int16) { fieldVector(o, tag, Vector3i16, v[:]) }
func (o ObjectWriter) FieldVector3i32(tag Tag, v [3]int32) { fieldVector(o, tag, Vector3i32, v[:]) }
func (o ObjectWriter) FieldVector3i64(tag Tag, v [3]int64) { fieldVector(o, tag, Vector3i64, v[:]) }

func (o ObjectWriter) FieldVector3b(tag Tag, v [3]bool)     { fieldVector(o, tag, Vector3b, v[:]) }
func (o ObjectWriter) FieldVector3f16(tag Tag, v [3]uint16) { fieldVector(o, tag, Vector3f16, v[:]) }
func (o ObjectWriter) FieldVector3f32(tag Tag, v [3]float32) {
	fieldVector(o, tag, Vector3f32, v[:])
}
func (o ObjectWriter) FieldVector3f64(tag Tag, v [3]float64) {
	fieldVector(o, tag, Vector3f64, v[:])
}

// Vector 4

func (o ObjectWriter) FieldVector4i8(tag Tag, v [4]int8)   { fieldVector(o, tag, Vector4i8, v[:]) }
func (o ObjectWriter) FieldVector4i16(tag Tag, v [4]int16) { fieldVector(o, tag, Vector4i16, v[:]) }
func (o ObjectWriter) FieldVector4i32(tag Tag, v [4]int32) { fieldVector(o, tag, Vector4i32, v[:]) }
func (o ObjectWriter) FieldVector4i64(tag Tag, v [4]int64) { fieldVector(o, tag, Vector4i64, v[:]) }

func (o ObjectWriter) FieldVector4b(tag Tag, v [4]bool)     { fieldVector(o, tag, Vector4b, v[:]) }
func (o ObjectWriter) FieldVector4f16(tag Tag, v [4]uint16) { fieldVector(o, tag, Vector4f16, v[:]) }
func (o ObjectWriter) FieldVector4f32(tag Tag, v [4]float32) {
	fieldVector(o, tag, Vector4f32, v[:])
}
func (o ObjectWriter) FieldVector4f64(tag Tag, v [4]float64) {
	fieldVector(o, tag, Vector4f64, v[:])
}
