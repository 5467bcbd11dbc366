package tbf

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// enumType maps an integral Go type to the wire type of matching width and
// signedness.
func enumType[T constraints.Integer]() DataType {
	var zero T
	signed := ^zero < zero
	switch unsafe.Sizeof(zero) {
	case 1:
		if signed {
			return Int8
		}
		return UInt8
	case 2:
		if signed {
			return Int16
		}
		return UInt16
	case 4:
		if signed {
			return Int32
		}
		return UInt32
	default:
		if signed {
			return Int64
		}
		return UInt64
	}
}

// WriteEnum writes an integral enum value as the integer field type matching
// its underlying width and signedness.
func WriteEnum[T constraints.Integer](o ObjectWriter, tag Tag, value T) {
	if !o.w.active(o.sc) {
		return
	}
	t := enumType[T]()
	o.w.writeFieldHeader(tag, t)
	switch t.Size() {
	case 1:
		o.w.writeByte(byte(value))
	case 2:
		o.w.writeUint16(uint16(value))
	case 4:
		o.w.writeUint32(uint32(value))
	default:
		o.w.writeUint64(uint64(value))
	}
}

// ReadEnum reads a field written by WriteEnum. The stored type must match
// the enum's underlying width and signedness exactly.
func ReadEnum[T constraints.Integer](o *ObjectReader, tag Tag) (T, bool) {
	t := enumType[T]()
	bits, ok := o.readBits(tag, t)
	if !ok {
		return 0, false
	}
	var zero T
	if ^zero < zero {
		shift := 64 - t.Size()*8
		bits = uint64(int64(bits<<shift) >> shift)
	}
	return T(bits), true
}
