package tbf

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedArrayRoundTrip(t *testing.T) {
	values := []int32{10, 20, 30, 40, 50}

	w := NewWriter(true)
	w.Root().FieldInt32Array(MustTag("int_array"), values)
	w.Finish()

	r := NewReader(w.Bytes(), true)
	require.True(t, r.IsValid())

	got, ok := r.Root().ReadInt32Array(MustTag("int_array"))
	require.True(t, ok)
	assert.Equal(t, values, got)

	// The field is stored with the Int32 array type.
	typ, _ := r.Root().TagType(MustTag("int_array"))
	assert.Equal(t, Int32Array, typ)

	// Reading with a different element width is a type mismatch.
	_, ok = r.Root().ReadInt16Array(MustTag("int_array"))
	assert.False(t, ok)
}

func TestFixedArraySizePrefix(t *testing.T) {
	w := NewWriter(true)
	w.Root().FieldInt32Array(MustTag("a"), []int32{10, 20, 30, 40, 50})
	w.Finish()
	buf := w.Bytes()

	// root prefix (4) + type (1) + nameLen (1) + name (1) = payload at 7.
	assert.EqualValues(t, 20, binary.LittleEndian.Uint32(buf[7:]))
}

func TestAllFixedArrayTypes(t *testing.T) {
	w := NewWriter(true)
	root := w.Root()
	root.FieldInt8Array(MustTag("i8"), []int8{-1, 0, 1})
	root.FieldInt16Array(MustTag("i16"), []int16{-300, 300})
	root.FieldInt64Array(MustTag("i64"), []int64{-1 << 62, 1 << 62})
	root.FieldUInt8Array(MustTag("u8"), []uint8{0, 255})
	root.FieldUInt16Array(MustTag("u16"), []uint16{0, 65535})
	root.FieldUInt32Array(MustTag("u32"), []uint32{0, 1 << 31})
	root.FieldUInt64Array(MustTag("u64"), []uint64{0, 1 << 63})
	root.FieldBooleanArray(MustTag("b"), []bool{true, false, true})
	root.FieldFloat16Array(MustTag("f16"), []uint16{0x3C00, 0xC000})
	root.FieldFloat32Array(MustTag("f32"), []float32{1.5, -2.5})
	root.FieldFloat64Array(MustTag("f64"), []float64{3.25, -4.75})
	w.Finish()

	r := NewReader(w.Bytes(), true)
	require.True(t, r.IsValid())
	root2 := r.Root()

	i8, ok := root2.ReadInt8Array(MustTag("i8"))
	require.True(t, ok)
	assert.Equal(t, []int8{-1, 0, 1}, i8)
	i16, ok := root2.ReadInt16Array(MustTag("i16"))
	require.True(t, ok)
	assert.Equal(t, []int16{-300, 300}, i16)
	i64, ok := root2.ReadInt64Array(MustTag("i64"))
	require.True(t, ok)
	assert.Equal(t, []int64{-1 << 62, 1 << 62}, i64)
	u8, ok := root2.ReadUInt8Array(MustTag("u8"))
	require.True(t, ok)
	assert.Equal(t, []uint8{0, 255}, u8)
	u16, ok := root2.ReadUInt16Array(MustTag("u16"))
	require.True(t, ok)
	assert.Equal(t, []uint16{0, 65535}, u16)
	u32, ok := root2.ReadUInt32Array(MustTag("u32"))
	require.True(t, ok)
	assert.Equal(t, []uint32{0, 1 << 31}, u32)
	u64, ok := root2.ReadUInt64Array(MustTag("u64"))
	require.True(t, ok)
	assert.Equal(t, []uint64{0, 1 << 63}, u64)
	b, ok := root2.ReadBooleanArray(MustTag("b"))
	require.True(t, ok)
	assert.Equal(t, []bool{true, false, true}, b)
	f16, ok := root2.ReadFloat16Array(MustTag("f16"))
	require.True(t, ok)
	assert.Equal(t, []uint16{0x3C00, 0xC000}, f16)
	f32, ok := root2.ReadFloat32Array(MustTag("f32"))
	require.True(t, ok)
	assert.Equal(t, []float32{1.5, -2.5}, f32)
	f64, ok := root2.ReadFloat64Array(MustTag("f64"))
	require.True(t, ok)
	assert.Equal(t, []float64{3.25, -4.75}, f64)
}

func TestEmptyFixedArray(t *testing.T) {
	w := NewWriter(true)
	w.Root().FieldInt32Array(MustTag("a"), nil)
	w.Finish()

	r := NewReader(w.Bytes(), true)
	require.True(t, r.IsValid())
	got, ok := r.Root().ReadInt32Array(MustTag("a"))
	require.True(t, ok)
	assert.Empty(t, got)
}

func TestIndivisibleFixedArrayReadsNone(t *testing.T) {
	w := NewWriter(true)
	w.Root().FieldInt32Array(MustTag("a"), []int32{1, 2})
	w.Finish()
	buf := w.Bytes()

	// Shrink the array size prefix to 7, not a multiple of 4. The root size
	// must shrink by one byte too so the frame still terminates exactly.
	buf[7] = 7
	binary.LittleEndian.PutUint32(buf, binary.LittleEndian.Uint32(buf)-1)
	buf = buf[:len(buf)-1]

	r := NewReader(buf, true)
	require.True(t, r.IsValid())
	_, ok := r.Root().ReadInt32Array(MustTag("a"))
	assert.False(t, ok)
}

func TestStringArrayRoundTrip(t *testing.T) {
	values := []string{"Hello", "World", "TBF", ""}

	w := NewWriter(true)
	arr := w.Root().FieldStringArray(MustTag("strs"))
	for _, v := range values {
		arr.Append(v)
	}
	arr.Finish()
	w.Finish()

	r := NewReader(w.Bytes(), true)
	require.True(t, r.IsValid())

	arrR, ok := r.Root().ReadStringArray(MustTag("strs"))
	require.True(t, ok)
	require.True(t, arrR.IsValid())
	require.Equal(t, len(values), arrR.Len())

	seen := 0
	for i, s := range arrR.All() {
		assert.Equal(t, values[i], s)
		seen++
	}
	assert.Equal(t, len(values), seen)

	s, ok := arrR.GetElement(2)
	require.True(t, ok)
	assert.Equal(t, "TBF", s)
	_, ok = arrR.GetElement(len(values))
	assert.False(t, ok)
}

func TestStringArrayValues(t *testing.T) {
	values := []string{"a", "bc", "def"}

	w := NewWriter(true)
	w.Root().FieldStringArrayValues(MustTag("strs"), values)
	w.Finish()

	r := NewReader(w.Bytes(), true)
	require.True(t, r.IsValid())
	arrR, ok := r.Root().ReadStringArray(MustTag("strs"))
	require.True(t, ok)
	require.Equal(t, 3, arrR.Len())
	for i, s := range arrR.All() {
		assert.Equal(t, values[i], s)
	}
}

func TestEmptyStringArray(t *testing.T) {
	w := NewWriter(true)
	w.Root().FieldInt8(MustTag("marker"), 1)
	arr := w.Root().FieldStringArray(MustTag("strs"))
	arr.Finish()
	w.Finish()

	r := NewReader(w.Bytes(), true)
	require.True(t, r.IsValid())

	arrR, ok := r.Root().ReadStringArray(MustTag("strs"))
	require.True(t, ok)
	assert.True(t, arrR.IsValid())
	assert.Equal(t, 0, arrR.Len())
	for range arrR.All() {
		t.Fatal("empty array yielded an element")
	}
}

func TestBinaryArrayRoundTrip(t *testing.T) {
	values := [][]byte{{1, 2, 3}, {}, {0xFF}}

	w := NewWriter(true)
	arr := w.Root().FieldBinaryArray(MustTag("bins"))
	for _, v := range values {
		arr.Append(v)
	}
	arr.Finish()
	w.Finish()

	r := NewReader(w.Bytes(), true)
	require.True(t, r.IsValid())

	arrR, ok := r.Root().ReadBinaryArray(MustTag("bins"))
	require.True(t, ok)
	require.Equal(t, 3, arrR.Len())
	for i, b := range arrR.All() {
		assert.Equal(t, values[i], append([]byte{}, b...))
	}

	b, ok := arrR.GetElement(0)
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, b)
}

func TestBinaryArrayValues(t *testing.T) {
	values := [][]byte{{9}, {8, 7}}

	w := NewWriter(true)
	w.Root().FieldBinaryArrayValues(MustTag("bins"), values)
	w.Finish()

	r := NewReader(w.Bytes(), true)
	require.True(t, r.IsValid())
	arrR, ok := r.Root().ReadBinaryArray(MustTag("bins"))
	require.True(t, ok)
	assert.Equal(t, 2, arrR.Len())
}

func TestMalformedVariableArrayYieldsNothing(t *testing.T) {
	w := NewWriter(true)
	arr := w.Root().FieldStringArray(MustTag("strs"))
	arr.Append("hello")
	arr.Finish()
	w.Finish()
	buf := w.Bytes()

	// Inflate the element's u16 length so the chain overruns the array size.
	// Array payload: root(4) + type(1) + nameLen(1) + name(4) + size(4).
	elemLen := 4 + 1 + 1 + 4 + 4
	binary.LittleEndian.PutUint16(buf[elemLen:], 600)

	r := NewReader(buf, true)
	require.True(t, r.IsValid()) // object structure is intact
	arrR, ok := r.Root().ReadStringArray(MustTag("strs"))
	require.True(t, ok)
	assert.False(t, arrR.IsValid())
	assert.Equal(t, 0, arrR.Len())
	for range arrR.All() {
		t.Fatal("malformed array yielded an element")
	}
}

func TestVariableArrayWrongKind(t *testing.T) {
	w := NewWriter(true)
	arr := w.Root().FieldStringArray(MustTag("strs"))
	arr.Append("x")
	arr.Finish()
	w.Finish()

	r := NewReader(w.Bytes(), true)
	_, ok := r.Root().ReadBinaryArray(MustTag("strs"))
	assert.False(t, ok)
	_, ok = r.Root().ReadObjectArray(MustTag("strs"))
	assert.False(t, ok)
}
