package tbf

import (
	"encoding/binary"
	"io"
)

const (
	// MinBufferGrowSize is the smallest step the output buffer grows by.
	MinBufferGrowSize = 1024
	// DefaultBufferGrowSize is the grow step used by NewWriter.
	DefaultBufferGrowSize = 1024 * 1024
)

// Writer encodes a single root object field by field. It owns a growable
// output buffer and a stack of open scopes (the root object, nested objects
// and variable-element arrays); each scope reserves a 4-byte size slot at its
// start and back-patches it on close.
//
// Scopes are strictly LIFO: writing through a scope whose child is still open
// finishes the child first, so every reserved size slot is patched even when
// a sub-writer is abandoned without an explicit Finish. A Writer must not be
// used from multiple goroutines.
type Writer struct {
	buf      []byte
	growSize uint32

	nameBased bool

	scopes []*scope
	root   ObjectWriter
}

// scope is one open object or variable-element array. sizePos is the offset
// of its reserved 4-byte size slot.
type scope struct {
	sizePos  int
	finished bool
}

// ObjectWriter appends fields to one open object scope. The zero value is
// inert; obtain one from Writer.Root, FieldObject or AppendObject.
type ObjectWriter struct {
	w  *Writer
	sc *scope
}

// NewWriter creates a Writer with the default buffer grow size. nameBased
// selects how field tags are encoded: a length-prefixed name, or a 16-bit id.
// The mode is fixed for the lifetime of the writer.
func NewWriter(nameBased bool) *Writer {
	return NewWriterSize(nameBased, DefaultBufferGrowSize)
}

// NewWriterSize creates a Writer with a custom buffer grow size, clamped to
// MinBufferGrowSize.
func NewWriterSize(nameBased bool, growSize uint32) *Writer {
	w := &Writer{nameBased: nameBased}
	w.SetBufferGrowSize(growSize)
	w.buf = make([]byte, 0, w.growSize)
	w.root = ObjectWriter{w: w, sc: w.openScope()}
	return w
}

// SetBufferGrowSize adjusts the reserve step for future growth.
func (w *Writer) SetBufferGrowSize(growSize uint32) {
	if growSize > MinBufferGrowSize {
		w.growSize = growSize
	} else {
		w.growSize = MinBufferGrowSize
	}
}

// Root returns the writer for the root object.
func (w *Writer) Root() *ObjectWriter { return &w.root }

// NameBased reports the tag encoding mode fixed at construction.
func (w *Writer) NameBased() bool { return w.nameBased }

// Finish closes every open scope, root included, back-patching their size
// slots. It is idempotent; the buffer is a complete TBF stream afterwards.
func (w *Writer) Finish() {
	for len(w.scopes) > 0 {
		w.finishTop()
	}
}

// Bytes returns the encoded buffer. Call Finish first; the view is
// invalidated by further writes or Reset.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes encoded so far.
func (w *Writer) Len() int { return len(w.buf) }

// WriteTo finishes the stream and writes it to wr.
func (w *Writer) WriteTo(wr io.Writer) (int64, error) {
	w.Finish()
	n, err := wr.Write(w.buf)
	return int64(n), err
}

// Reset discards the encoded data, keeps the allocated buffer, and reopens
// the root scope.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
	w.scopes = w.scopes[:0]
	w.root = ObjectWriter{w: w, sc: w.openScope()}
}

// reserve ensures space for n more bytes, growing by at least the configured
// step so repeated small fields do not reallocate.
func (w *Writer) reserve(n int) {
	if cap(w.buf)-len(w.buf) >= n {
		return
	}
	grow := int(w.growSize)
	if n > grow {
		grow = n + int(w.growSize)
	}
	next := make([]byte, len(w.buf), cap(w.buf)+grow)
	copy(next, w.buf)
	w.buf = next
}

// openScope reserves a 4-byte size slot and pushes the new scope.
func (w *Writer) openScope() *scope {
	sc := &scope{sizePos: len(w.buf)}
	w.reserve(4)
	w.buf = append(w.buf, 0, 0, 0, 0)
	w.scopes = append(w.scopes, sc)
	return sc
}

// finishTop pops the innermost scope and back-patches its size slot with the
// byte count written after the slot.
func (w *Writer) finishTop() {
	sc := w.scopes[len(w.scopes)-1]
	w.scopes = w.scopes[:len(w.scopes)-1]
	binary.LittleEndian.PutUint32(w.buf[sc.sizePos:], uint32(len(w.buf)-sc.sizePos-4))
	sc.finished = true
}

// active prepares sc for writing. Scopes opened after it are finished first;
// writing through an already-finished scope is a no-op.
func (w *Writer) active(sc *scope) bool {
	if sc == nil || sc.finished {
		return false
	}
	for len(w.scopes) > 0 && w.scopes[len(w.scopes)-1] != sc {
		w.finishTop()
	}
	return len(w.scopes) > 0
}

// finishScope closes sc and everything opened inside it.
func (w *Writer) finishScope(sc *scope) {
	if w.active(sc) {
		w.finishTop()
	}
}

func (w *Writer) writeByte(b byte) {
	w.reserve(1)
	w.buf = append(w.buf, b)
}

func (w *Writer) writeBytes(p []byte) {
	w.reserve(len(p))
	w.buf = append(w.buf, p...)
}

func (w *Writer) writeUint16(v uint16) {
	w.reserve(2)
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

func (w *Writer) writeUint32(v uint32) {
	w.reserve(4)
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *Writer) writeUint64(v uint64) {
	w.reserve(8)
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

// writeFieldHeader emits the type byte and the tag in the configured mode.
func (w *Writer) writeFieldHeader(tag Tag, t DataType) {
	w.writeByte(byte(t))
	if w.nameBased {
		name := tag.Name()
		w.writeByte(byte(len(name)))
		w.reserve(len(name))
		w.buf = append(w.buf, name...)
	} else {
		w.writeUint16(tag.ID())
	}
}

// writeStringPayload emits a u16 length prefix and the string bytes. Strings
// beyond 65535 bytes violate the caller contract and are truncated.
func (w *Writer) writeStringPayload(s string) {
	if len(s) > 0xFFFF {
		s = s[:0xFFFF]
	}
	w.writeUint16(uint16(len(s)))
	w.reserve(len(s))
	w.buf = append(w.buf, s...)
}

// writeBinaryPayload emits a u32 size prefix and the raw bytes.
func (w *Writer) writeBinaryPayload(p []byte) {
	w.writeUint32(uint32(len(p)))
	w.writeBytes(p)
}
