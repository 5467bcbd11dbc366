package tbf

import (
	"encoding/binary"
	"iter"
)

// variable-element arrays store no element count; readers walk the payload
// once at construction to count elements and check that the chain of
// length-prefixed elements terminates exactly at the payload end. A malformed
// payload yields an invalid reader with zero elements.

// scanElements counts prefix-delimited elements in data. prefixSize is 2 for
// string arrays and 4 for binary and object arrays.
func scanElements(data []byte, prefixSize int) (int, bool) {
	pos, count := 0, 0
	for pos < len(data) {
		if pos+prefixSize > len(data) {
			return 0, false
		}
		var elemSize int
		if prefixSize == 2 {
			elemSize = int(binary.LittleEndian.Uint16(data[pos:]))
		} else {
			elemSize = int(binary.LittleEndian.Uint32(data[pos:]))
		}
		pos += prefixSize
		if pos+elemSize > len(data) {
			return 0, false
		}
		pos += elemSize
		count++
	}
	return count, true
}

// elementAt walks to the index'th element and returns its payload bytes.
// Bounds were established by scanElements.
func elementAt(data []byte, prefixSize, index int) []byte {
	pos := 0
	for {
		var elemSize int
		if prefixSize == 2 {
			elemSize = int(binary.LittleEndian.Uint16(data[pos:]))
		} else {
			elemSize = int(binary.LittleEndian.Uint32(data[pos:]))
		}
		pos += prefixSize
		if index == 0 {
			return data[pos : pos+elemSize : pos+elemSize]
		}
		pos += elemSize
		index--
	}
}

// arrayReader is the shared state of the three variable-element array
// readers: the element region, the validated element count, and the prefix
// width that delimits elements.
type arrayReader struct {
	data       []byte
	count      int
	prefixSize int
	valid      bool
}

func newArrayReader(payload []byte, prefixSize int) arrayReader {
	size := binary.LittleEndian.Uint32(payload)
	a := arrayReader{data: payload[4 : 4+size], prefixSize: prefixSize}
	a.count, a.valid = scanElements(a.data, prefixSize)
	return a
}

// Len returns the element count, 0 for an invalid array.
func (a arrayReader) Len() int { return a.count }

// IsValid reports whether the element chain terminated exactly at the
// payload end.
func (a arrayReader) IsValid() bool { return a.valid }

// elements yields the payload bytes of each element in order.
func (a arrayReader) elements() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		if !a.valid {
			return
		}
		pos := 0
		for i := 0; i < a.count; i++ {
			var elemSize int
			if a.prefixSize == 2 {
				elemSize = int(binary.LittleEndian.Uint16(a.data[pos:]))
			} else {
				elemSize = int(binary.LittleEndian.Uint32(a.data[pos:]))
			}
			pos += a.prefixSize
			if !yield(i, a.data[pos:pos+elemSize:pos+elemSize]) {
				return
			}
			pos += elemSize
		}
	}
}

func (a arrayReader) element(index int) ([]byte, bool) {
	if !a.valid || index < 0 || index >= a.count {
		return nil, false
	}
	return elementAt(a.data, a.prefixSize, index), true
}

// StringArrayReader iterates a string array's u16-length-prefixed elements.
type StringArrayReader struct {
	arrayReader
}

// GetElement returns the index'th string, aliasing the decoder's buffer.
func (a StringArrayReader) GetElement(index int) (string, bool) {
	payload, ok := a.element(index)
	if !ok {
		return "", false
	}
	return byteString(payload), true
}

// All yields each string in order, for use with range.
func (a StringArrayReader) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, payload := range a.elements() {
			if !yield(i, byteString(payload)) {
				return
			}
		}
	}
}

// BinaryArrayReader iterates a binary array's u32-size-prefixed elements.
type BinaryArrayReader struct {
	arrayReader
}

// GetElement returns the index'th blob as a sub-slice of the decoder's buffer.
func (a BinaryArrayReader) GetElement(index int) ([]byte, bool) {
	return a.element(index)
}

// All yields each blob in order, for use with range.
func (a BinaryArrayReader) All() iter.Seq2[int, []byte] {
	return a.elements()
}

// ObjectArrayReader iterates an object array's u32-size-prefixed elements,
// presenting each as a nested object reader.
type ObjectArrayReader struct {
	arrayReader
	nameBased bool
}

// GetElement returns a reader over the index'th element object.
func (a ObjectArrayReader) GetElement(index int) (*ObjectReader, bool) {
	if !a.valid || index < 0 || index >= a.count {
		return nil, false
	}
	pos := 0
	for i := 0; i < index; i++ {
		pos += 4 + int(binary.LittleEndian.Uint32(a.data[pos:]))
	}
	return NewObjectReader(a.data[pos:], a.nameBased), true
}

// All yields a reader for each element object in order.
func (a ObjectArrayReader) All() iter.Seq2[int, *ObjectReader] {
	return func(yield func(int, *ObjectReader) bool) {
		if !a.valid {
			return
		}
		pos := 0
		for i := 0; i < a.count; i++ {
			size := int(binary.LittleEndian.Uint32(a.data[pos:]))
			if !yield(i, NewObjectReader(a.data[pos:pos+4+size], a.nameBased)) {
				return
			}
			pos += 4 + size
		}
	}
}

// ReadStringArray returns an iterator over a string array field.
func (o *ObjectReader) ReadStringArray(tag Tag) (StringArrayReader, bool) {
	entry, ok := o.find(tag)
	if !ok || entry.typ != StringArray {
		return StringArrayReader{}, false
	}
	return StringArrayReader{newArrayReader(o.data[entry.off:], 2)}, true
}

// ReadBinaryArray returns an iterator over a binary array field.
func (o *ObjectReader) ReadBinaryArray(tag Tag) (BinaryArrayReader, bool) {
	entry, ok := o.find(tag)
	if !ok || entry.typ != BinaryArray {
		return BinaryArrayReader{}, false
	}
	return BinaryArrayReader{newArrayReader(o.data[entry.off:], 4)}, true
}

// ReadObjectArray returns an iterator over an object array field.
func (o *ObjectReader) ReadObjectArray(tag Tag) (ObjectArrayReader, bool) {
	entry, ok := o.find(tag)
	if !ok || entry.typ != ObjectArray {
		return ObjectArrayReader{}, false
	}
	return ObjectArrayReader{newArrayReader(o.data[entry.off:], 4), o.nameBased}, true
}
