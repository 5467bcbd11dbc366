package tbf

import (
	"encoding/binary"

	"github.com/puzpuzpuz/xsync/v4"
)

// cacheEntry is one indexed field. Primitive values are decoded inline into
// bits; everything else records the payload offset within the object's field
// region (at the size/length prefix for sized payloads, at the element bytes
// for vectors and UUIDs).
type cacheEntry struct {
	typ  DataType
	bits uint64
	off  uint32
}

// Reader decodes one TBF stream. It is a thin handle over the root object.
type Reader struct {
	root ObjectReader
}

// NewReader borrows buf, which must start with the root object's u32 size
// prefix, and decodes in the given tag mode. The buffer is retained (and,
// during indexing, mutated — see ObjectReader) for the reader's lifetime.
func NewReader(buf []byte, nameBased bool) *Reader {
	r := &Reader{}
	r.root.init(buf, nameBased)
	return r
}

// Root returns the reader for the root object.
func (r *Reader) Root() *ObjectReader { return &r.root }

// IsValid reports whether the root object parsed cleanly.
func (r *Reader) IsValid() bool { return r.root.IsValid() }

// ObjectReader provides tag-addressed access to one object's fields. The tag
// index is built lazily on first access in a single validation pass over the
// field region and then memoized; lookups afterwards are O(1) average and
// safe for concurrent use.
//
// Indexing normalizes fixed-width array and vector payloads to host byte
// order in place: the borrowed buffer is mutated once so that every later
// read is a zero-copy view. Serialize the first access when sharing a reader
// across goroutines.
type ObjectReader struct {
	data      []byte // field region, size prefix stripped
	nameBased bool

	built      bool
	valid      bool
	normalized bool

	nameIndex *xsync.Map[string, cacheEntry]
	idIndex   *xsync.Map[uint16, cacheEntry]
}

// NewObjectReader is NewReader without the root wrapper.
func NewObjectReader(buf []byte, nameBased bool) *ObjectReader {
	o := &ObjectReader{}
	o.init(buf, nameBased)
	return o
}

// init points the reader at a buffer whose first 4 bytes are the object's
// size prefix. A prefix that overruns the buffer leaves the reader
// permanently invalid.
func (o *ObjectReader) init(buf []byte, nameBased bool) {
	o.nameBased = nameBased
	if len(buf) < 4 {
		return
	}
	size := binary.LittleEndian.Uint32(buf)
	if uint64(size)+4 > uint64(len(buf)) {
		return
	}
	o.data = buf[4 : 4+size]
}

// IsValid triggers the index build if needed and reports whether the object's
// field region parsed end to end without structural errors.
func (o *ObjectReader) IsValid() bool {
	if !o.built {
		o.buildIndex()
	}
	return o.valid
}

// CreateIndex builds the tag index eagerly. Useful to pre-trigger the
// buffer-mutating pass before sharing the reader across goroutines.
func (o *ObjectReader) CreateIndex() { o.IsValid() }

// Invalidate discards the index; the next access rebuilds it.
func (o *ObjectReader) Invalidate() {
	o.nameIndex = nil
	o.idIndex = nil
	o.built = false
	o.valid = false
}

// buildIndex walks the field region once, validating structure, normalizing
// fixed-width payloads to host order, and recording one entry per tag.
// Duplicate tags overwrite: the last occurrence wins. Any structural error
// discards the partial index and marks the object invalid.
func (o *ObjectReader) buildIndex() {
	o.built = true
	if len(o.data) == 0 {
		return
	}

	if o.nameBased {
		o.nameIndex = xsync.NewMap[string, cacheEntry]()
	} else {
		o.idIndex = xsync.NewMap[uint16, cacheEntry]()
	}

	data := o.data
	n := len(data)
	pos := 0
	ok := true

walk:
	for pos < n {
		t := DataType(data[pos])
		pos++
		if !t.IsValid() {
			ok = false
			break
		}

		// Tag, in the configured mode.
		var name string
		var id uint16
		if o.nameBased {
			if pos >= n {
				ok = false
				break
			}
			nameLen := int(data[pos])
			pos++
			if pos+nameLen > n {
				ok = false
				break
			}
			name = byteString(data[pos : pos+nameLen])
			pos += nameLen
		} else {
			if pos+2 > n {
				ok = false
				break
			}
			id = binary.LittleEndian.Uint16(data[pos:])
			pos += 2
		}

		entry := cacheEntry{typ: t}

		switch {
		case t.IsArray():
			entry.off = uint32(pos)
			if pos+4 > n {
				ok = false
				break walk
			}
			size := binary.LittleEndian.Uint32(data[pos:])
			pos += 4
			if uint64(pos)+uint64(size) > uint64(n) {
				ok = false
				break walk
			}
			// Normalize fixed elements once. An indivisible size is kept in
			// the index but the typed readers treat it as unreadable.
			elemSize := t.elemSize()
			if elemSize > 1 && size%elemSize == 0 && !o.normalized {
				normalizeInPlace(data[pos:pos+int(size)], elemSize)
			}
			pos += int(size)

		case t.IsVector():
			entry.off = uint32(pos)
			vecSize := int(t.Dimension() * t.elemSize())
			if pos+vecSize > n {
				ok = false
				break walk
			}
			if !o.normalized {
				normalizeInPlace(data[pos:pos+vecSize], t.elemSize())
			}
			pos += vecSize

		default: // raw
			switch t {
			case Int8, UInt8, Boolean:
				if pos+1 > n {
					ok = false
					break walk
				}
				entry.bits = uint64(data[pos])
				pos++
			case Int16, UInt16, Float16:
				if pos+2 > n {
					ok = false
					break walk
				}
				entry.bits = uint64(binary.LittleEndian.Uint16(data[pos:]))
				pos += 2
			case Int32, UInt32, Float32:
				if pos+4 > n {
					ok = false
					break walk
				}
				entry.bits = uint64(binary.LittleEndian.Uint32(data[pos:]))
				pos += 4
			case Int64, UInt64, Float64:
				if pos+8 > n {
					ok = false
					break walk
				}
				entry.bits = binary.LittleEndian.Uint64(data[pos:])
				pos += 8
			case UUID:
				entry.off = uint32(pos)
				if pos+16 > n {
					ok = false
					break walk
				}
				pos += 16
			case String:
				entry.off = uint32(pos)
				if pos+2 > n {
					ok = false
					break walk
				}
				length := binary.LittleEndian.Uint16(data[pos:])
				pos += 2
				if pos+int(length) > n {
					ok = false
					break walk
				}
				pos += int(length)
			default: // Binary, Object
				entry.off = uint32(pos)
				if pos+4 > n {
					ok = false
					break walk
				}
				size := binary.LittleEndian.Uint32(data[pos:])
				pos += 4
				if uint64(pos)+uint64(size) > uint64(n) {
					ok = false
					break walk
				}
				pos += int(size)
			}
		}

		if o.nameBased {
			o.nameIndex.Store(name, entry)
		} else {
			o.idIndex.Store(id, entry)
		}
	}

	o.normalized = true
	o.valid = ok && pos == n
	if !o.valid {
		o.nameIndex = nil
		o.idIndex = nil
	}
}

// find looks the tag up in the index, building it first if needed.
func (o *ObjectReader) find(tag Tag) (cacheEntry, bool) {
	if !o.IsValid() {
		return cacheEntry{}, false
	}
	if o.nameBased {
		return o.nameIndex.Load(tag.Name())
	}
	return o.idIndex.Load(tag.ID())
}

// ContainsTag reports whether the tag is present in the object.
func (o *ObjectReader) ContainsTag(tag Tag) bool {
	_, ok := o.find(tag)
	return ok
}

// TagType returns the wire type stored under the tag.
func (o *ObjectReader) TagType(tag Tag) (DataType, bool) {
	entry, ok := o.find(tag)
	if !ok {
		return Invalid, false
	}
	return entry.typ, true
}

// AssertType reports whether the tag is present with exactly the given type.
func (o *ObjectReader) AssertType(tag Tag, expected DataType) bool {
	entry, ok := o.find(tag)
	return ok && entry.typ == expected
}

// Tags returns every indexed tag. In name mode the tags carry names only; in
// id mode, ids only. Order is unspecified.
func (o *ObjectReader) Tags() []Tag {
	if !o.IsValid() {
		return nil
	}
	var tags []Tag
	if o.nameBased {
		o.nameIndex.Range(func(name string, _ cacheEntry) bool {
			tags = append(tags, TagWithName(name))
			return true
		})
	} else {
		o.idIndex.Range(func(id uint16, _ cacheEntry) bool {
			tags = append(tags, TagWithID(id))
			return true
		})
	}
	return tags
}
