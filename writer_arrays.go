package tbf

// arrayWriter is the shared scope handling of the three variable-element
// array writers. Like an object scope, the array reserves a u32 size slot
// that is back-patched when the scope closes.
type arrayWriter struct {
	w  *Writer
	sc *scope
}

// IsFinished reports whether this array scope has been closed.
func (a arrayWriter) IsFinished() bool { return a.sc == nil || a.sc.finished }

// Finish closes the array scope and back-patches its size slot. Idempotent.
func (a arrayWriter) Finish() {
	if a.w != nil {
		a.w.finishScope(a.sc)
	}
}

// StringArrayWriter appends u16-length-prefixed UTF-8 elements to an open
// string array field.
type StringArrayWriter struct {
	arrayWriter
}

// Append adds one string element. Appending after the scope has closed is a
// no-op.
func (a StringArrayWriter) Append(element string) {
	if a.w == nil || !a.w.active(a.sc) {
		return
	}
	a.w.writeStringPayload(element)
}

// BinaryArrayWriter appends u32-size-prefixed blobs to an open binary array
// field.
type BinaryArrayWriter struct {
	arrayWriter
}

// Append adds one binary element.
func (a BinaryArrayWriter) Append(element []byte) {
	if a.w == nil || !a.w.active(a.sc) {
		return
	}
	a.w.writeBinaryPayload(element)
}

// ObjectArrayWriter appends nested objects to an open object array field.
type ObjectArrayWriter struct {
	arrayWriter
}

// AppendObject opens the next element object and returns its writer. The
// element carries a size prefix but no tag of its own.
func (a ObjectArrayWriter) AppendObject() ObjectWriter {
	if a.w == nil || !a.w.active(a.sc) {
		return ObjectWriter{}
	}
	return ObjectWriter{w: a.w, sc: a.w.openScope()}
}

// FieldStringArray opens a string array field and returns its scoped writer.
func (o ObjectWriter) FieldStringArray(tag Tag) StringArrayWriter {
	if !o.w.active(o.sc) {
		return StringArrayWriter{}
	}
	o.w.writeFieldHeader(tag, StringArray)
	return StringArrayWriter{arrayWriter{w: o.w, sc: o.w.openScope()}}
}

// FieldStringArrayValues writes a complete string array field in one call.
func (o ObjectWriter) FieldStringArrayValues(tag Tag, values []string) {
	if !o.w.active(o.sc) {
		return
	}
	o.w.writeFieldHeader(tag, StringArray)
	sc := o.w.openScope()
	for _, v := range values {
		o.w.writeStringPayload(v)
	}
	o.w.finishScope(sc)
}

// FieldBinaryArray opens a binary array field and returns its scoped writer.
func (o ObjectWriter) FieldBinaryArray(tag Tag) BinaryArrayWriter {
	if !o.w.active(o.sc) {
		return BinaryArrayWriter{}
	}
	o.w.writeFieldHeader(tag, BinaryArray)
	return BinaryArrayWriter{arrayWriter{w: o.w, sc: o.w.openScope()}}
}

// FieldBinaryArrayValues writes a complete binary array field in one call.
func (o ObjectWriter) FieldBinaryArrayValues(tag Tag, values [][]byte) {
	if !o.w.active(o.sc) {
		return
	}
	o.w.writeFieldHeader(tag, BinaryArray)
	sc := o.w.openScope()
	for _, v := range values {
		o.w.writeBinaryPayload(v)
	}
	o.w.finishScope(sc)
}

// FieldObjectArray opens an object array field and returns its scoped writer.
func (o ObjectWriter) FieldObjectArray(tag Tag) ObjectArrayWriter {
	if !o.w.active(o.sc) {
		return ObjectArrayWriter{}
	}
	o.w.writeFieldHeader(tag, ObjectArray)
	return ObjectArrayWriter{arrayWriter{w: o.w, sc: o.w.openScope()}}
}
