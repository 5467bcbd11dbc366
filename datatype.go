package tbf

// DataType is the 1-byte wire type code of a field. The upper nibble selects
// the classification (raw value, vector, array) and the lower nibble the base
// type. Every multibyte value that follows a type byte is little-endian.
type DataType uint8

const (
	classificationMask DataType = 0xF0
	baseTypeMask       DataType = 0x0F
)

// Classifications.
const (
	Raw     DataType = 0x00
	Vector2 DataType = 0x20
	Vector3 DataType = 0x30
	Vector4 DataType = 0x40
	Array   DataType = 0xA0
)

// Base type groups, selected by the two high bits of the base nibble.
const (
	baseSignedInteger   DataType = 0b0000
	baseUnsignedInteger DataType = 0b0100
	baseFloatAndBool    DataType = 0b1000
	baseNonPrimitive    DataType = 0b1100
)

// Raw primitive and composite types.
const (
	Int8  DataType = Raw | baseSignedInteger | 0b00
	Int16 DataType = Raw | baseSignedInteger | 0b01
	Int32 DataType = Raw | baseSignedInteger | 0b10
	Int64 DataType = Raw | baseSignedInteger | 0b11

	UInt8  DataType = Raw | baseUnsignedInteger | 0b00
	UInt16 DataType = Raw | baseUnsignedInteger | 0b01
	UInt32 DataType = Raw | baseUnsignedInteger | 0b10
	UInt64 DataType = Raw | baseUnsignedInteger | 0b11

	Boolean DataType = Raw | baseFloatAndBool | 0b00
	Float16 DataType = Raw | baseFloatAndBool | 0b01
	Float32 DataType = Raw | baseFloatAndBool | 0b10
	Float64 DataType = Raw | baseFloatAndBool | 0b11

	UUID   DataType = Raw | baseNonPrimitive | 0b00
	String DataType = Raw | baseNonPrimitive | 0b01
	Binary DataType = Raw | baseNonPrimitive | 0b10
	Object DataType = Raw | baseNonPrimitive | 0b11
)

// Vector types. The dimension comes from the classification, the element from
// the base nibble; only primitive bases are legal.
const (
	Vector2i8  DataType = Vector2 | Int8
	Vector2i16 DataType = Vector2 | Int16
	Vector2i32 DataType = Vector2 | Int32
	Vector2i64 DataType = Vector2 | Int64

	Vector2b   DataType = Vector2 | Boolean
	Vector2f16 DataType = Vector2 | Float16
	Vector2f32 DataType = Vector2 | Float32
	Vector2f64 DataType = Vector2 | Float64

	Vector3i8  DataType = Vector3 | Int8
	Vector3i16 DataType = Vector3 | Int16
	Vector3i32 DataType = Vector3 | Int32
	Vector3i64 DataType = Vector3 | Int64

	Vector3b   DataType = Vector3 | Boolean
	Vector3f16 DataType = Vector3 | Float16
	Vector3f32 DataType = Vector3 | Float32
	Vector3f64 DataType = Vector3 | Float64

	Vector4i8  DataType = Vector4 | Int8
	Vector4i16 DataType = Vector4 | Int16
	Vector4i32 DataType = Vector4 | Int32
	Vector4i64 DataType = Vector4 | Int64

	Vector4b   DataType = Vector4 | Boolean
	Vector4f16 DataType = Vector4 | Float16
	Vector4f32 DataType = Vector4 | Float32
	Vector4f64 DataType = Vector4 | Float64
)

// Array types. Fixed-element arrays carry raw element bytes; the string,
// binary and object variants carry length-prefixed elements.
const (
	Int8Array  DataType = Array | Int8
	Int16Array DataType = Array | Int16
	Int32Array DataType = Array | Int32
	Int64Array DataType = Array | Int64

	UInt8Array  DataType = Array | UInt8
	UInt16Array DataType = Array | UInt16
	UInt32Array DataType = Array | UInt32
	UInt64Array DataType = Array | UInt64

	BooleanArray DataType = Array | Boolean
	Float16Array DataType = Array | Float16
	Float32Array DataType = Array | Float32
	Float64Array DataType = Array | Float64

	UUIDArray   DataType = Array | UUID
	StringArray DataType = Array | String
	BinaryArray DataType = Array | Binary
	ObjectArray DataType = Array | Object
)

// Invalid is the reserved error value; it never appears in a valid stream.
const Invalid DataType = 0xFF

// Classification returns the upper nibble of the type code.
func (t DataType) Classification() DataType { return t & classificationMask }

// Base returns the lower nibble of the type code, which for any legal type is
// the code of the corresponding raw primitive or composite type.
func (t DataType) Base() DataType { return t & baseTypeMask }

// IsPrimitive reports whether t is a raw (non-vector, non-array) field type.
func (t DataType) IsPrimitive() bool { return t.Classification() == Raw }

// hasPrimitiveBase reports whether the base nibble is a numeric or boolean
// primitive, i.e. not UUID/String/Binary/Object.
func (t DataType) hasPrimitiveBase() bool { return t&baseNonPrimitive != baseNonPrimitive }

// IsVector reports whether t is a 2-, 3- or 4-element vector of a primitive
// base type.
func (t DataType) IsVector() bool {
	c := t.Classification()
	return c >= Vector2 && c <= Vector4 && t.hasPrimitiveBase()
}

// IsArray reports whether t is any array type.
func (t DataType) IsArray() bool { return t.Classification() == Array }

// IsVariableArray reports whether t is one of the three array kinds whose
// elements are individually length-prefixed.
func (t DataType) IsVariableArray() bool {
	return t == StringArray || t == BinaryArray || t == ObjectArray
}

// IsFixedArray reports whether t is an array of fixed-width elements.
func (t DataType) IsFixedArray() bool { return t.IsArray() && !t.IsVariableArray() }

// IsValid reports whether t is a legal wire type code.
func (t DataType) IsValid() bool {
	switch t.Classification() {
	case Raw, Array:
		return true
	case Vector2, Vector3, Vector4:
		return t.hasPrimitiveBase()
	default:
		return false
	}
}

// ArrayType returns the array type whose elements are of raw type t: a
// fixed-element array for numeric, boolean and UUID bases, and the string,
// binary or object array for the variable-length bases.
func (t DataType) ArrayType() DataType { return t | Array }

// Size returns the payload width in bytes of a fixed-width base type, 16 for
// UUID, and 0 for variable-length types.
func (t DataType) Size() uint32 {
	switch t {
	case Int8, UInt8, Boolean:
		return 1
	case Int16, UInt16, Float16:
		return 2
	case Int32, UInt32, Float32:
		return 4
	case Int64, UInt64, Float64:
		return 8
	case UUID:
		return 16
	default:
		return 0
	}
}

// Dimension returns the element count of a vector type, or 0.
func (t DataType) Dimension() uint32 {
	switch t.Classification() {
	case Vector2:
		return 2
	case Vector3:
		return 3
	case Vector4:
		return 4
	default:
		return 0
	}
}

// elemSize returns the fixed element width of an array or vector type.
func (t DataType) elemSize() uint32 { return t.Base().Size() }

var baseTypeNames = [16]string{
	"Int8", "Int16", "Int32", "Int64",
	"UInt8", "UInt16", "UInt32", "UInt64",
	"Boolean", "Float16", "Float32", "Float64",
	"UUID", "String", "Binary", "Object",
}

func (t DataType) String() string {
	if t == Invalid || !t.IsValid() {
		return "Invalid"
	}
	base := baseTypeNames[t.Base()]
	switch t.Classification() {
	case Raw:
		return base
	case Vector2:
		return "Vector2" + base
	case Vector3:
		return "Vector3" + base
	case Vector4:
		return "Vector4" + base
	default:
		return base + "Array"
	}
}
