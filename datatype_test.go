package tbf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataTypeCodes(t *testing.T) {
	// Wire values are fixed by the format.
	assert.Equal(t, DataType(0x00), Int8)
	assert.Equal(t, DataType(0x0C), UUID)
	assert.Equal(t, DataType(0x0D), String)
	assert.Equal(t, DataType(0x0E), Binary)
	assert.Equal(t, DataType(0x0F), Object)
	assert.Equal(t, DataType(0x32), Vector3i32)
	assert.Equal(t, DataType(0x4A), Vector4f32)
	assert.Equal(t, DataType(0xA2), Int32Array)
	assert.Equal(t, DataType(0xAD), StringArray)
	assert.Equal(t, DataType(0xAE), BinaryArray)
	assert.Equal(t, DataType(0xAF), ObjectArray)
}

func TestDataTypeClassification(t *testing.T) {
	assert.Equal(t, Raw, Int32.Classification())
	assert.Equal(t, Vector3, Vector3f32.Classification())
	assert.Equal(t, Array, Float64Array.Classification())
	assert.Equal(t, Int32, Int32Array.Base())
	assert.Equal(t, Float32, Vector2f32.Base())
}

func TestDataTypePredicates(t *testing.T) {
	assert.True(t, Int64.IsPrimitive())
	assert.True(t, String.IsPrimitive())
	assert.False(t, Int64Array.IsPrimitive())

	assert.True(t, Vector2i8.IsVector())
	assert.True(t, Vector4f64.IsVector())
	assert.False(t, Int8.IsVector())
	// Vector of a non-primitive base is illegal.
	assert.False(t, (Vector2 | String).IsVector())

	assert.True(t, Int8Array.IsArray())
	assert.True(t, ObjectArray.IsArray())
	assert.False(t, Object.IsArray())

	assert.True(t, StringArray.IsVariableArray())
	assert.True(t, BinaryArray.IsVariableArray())
	assert.True(t, ObjectArray.IsVariableArray())
	assert.False(t, UUIDArray.IsVariableArray())
	assert.True(t, Float32Array.IsFixedArray())
	assert.False(t, StringArray.IsFixedArray())
}

func TestDataTypeIsValid(t *testing.T) {
	for _, valid := range []DataType{
		Int8, UInt64, Boolean, Float16, UUID, String, Binary, Object,
		Vector2i8, Vector3f32, Vector4b,
		Int8Array, Float64Array, StringArray, ObjectArray,
	} {
		assert.True(t, valid.IsValid(), "%#x", uint8(valid))
	}
	for _, invalid := range []DataType{
		Invalid,
		Vector2 | String,
		Vector3 | Object,
		Vector4 | UUID,
		0x10, // undefined classification
		0x50,
		0xB0,
	} {
		assert.False(t, invalid.IsValid(), "%#x", uint8(invalid))
	}
}

func TestDataTypeSize(t *testing.T) {
	assert.Equal(t, uint32(1), Int8.Size())
	assert.Equal(t, uint32(1), Boolean.Size())
	assert.Equal(t, uint32(2), Float16.Size())
	assert.Equal(t, uint32(4), UInt32.Size())
	assert.Equal(t, uint32(8), Float64.Size())
	assert.Equal(t, uint32(16), UUID.Size())
	assert.Equal(t, uint32(0), String.Size())
	assert.Equal(t, uint32(0), Object.Size())
}

func TestDataTypeDimension(t *testing.T) {
	assert.Equal(t, uint32(2), Vector2f32.Dimension())
	assert.Equal(t, uint32(3), Vector3i16.Dimension())
	assert.Equal(t, uint32(4), Vector4f64.Dimension())
	assert.Equal(t, uint32(0), Int32.Dimension())
	assert.Equal(t, uint32(0), Int32Array.Dimension())
}

func TestPrimitiveToArrayType(t *testing.T) {
	assert.Equal(t, Int32Array, Int32.ArrayType())
	assert.Equal(t, StringArray, String.ArrayType())
	assert.Equal(t, BooleanArray, Boolean.ArrayType())
}

func TestDataTypeString(t *testing.T) {
	assert.Equal(t, "Int32", Int32.String())
	assert.Equal(t, "Vector3Float32", Vector3f32.String())
	assert.Equal(t, "StringArray", StringArray.String())
	assert.Equal(t, "Invalid", Invalid.String())
	assert.Equal(t, "Invalid", DataType(0x10).String())
}
